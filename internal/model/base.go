package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ensureID assigns a fresh UUID when the caller did not provide one.
// Postgres also has a column default, SQLite does not.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}

func (b *Board) BeforeCreate(tx *gorm.DB) error {
	ensureID(&b.ID)
	return nil
}

func (s *BoardShare) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

func (c *Column) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}

func (l *Label) BeforeCreate(tx *gorm.DB) error {
	ensureID(&l.ID)
	return nil
}
