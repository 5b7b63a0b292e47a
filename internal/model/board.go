package model

import (
	"time"

	"github.com/google/uuid"
)

type Board struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"not null"`
	Description string
	OwnerID     uuid.UUID `gorm:"type:uuid;not null"`
	// GatedColumns overrides the server-wide gated column names for this
	// board. Comma separated; empty means "use the default".
	GatedColumns string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Owner User `gorm:"foreignKey:OwnerID"`
}
