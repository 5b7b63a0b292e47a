package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access level a user has on a shared board.
type Role string

const (
	RoleViewer Role = "viewer" // read only
	RoleEditor Role = "editor" // may change columns and tasks
)

// BoardShare links a user to a board they do not own.
type BoardShare struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Role      Role      `gorm:"not null;check:role IN ('viewer', 'editor')"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Board Board `gorm:"foreignKey:BoardID"`
	User  User  `gorm:"foreignKey:UserID"`
}
