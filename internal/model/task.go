package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ColumnID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	AssignedTo  *uuid.UUID `gorm:"type:uuid"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	DueDate     *time.Time
	Position    int `gorm:"not null"`
	// DependsOn is the single predecessor of this task, if any.
	DependsOn *uuid.UUID `gorm:"type:uuid;index"`

	Column   Column  `gorm:"foreignKey:ColumnID"`
	Assignee User    `gorm:"foreignKey:AssignedTo"`
	Creator  User    `gorm:"foreignKey:CreatedBy"`
	Labels   []Label `gorm:"many2many:task_labels"`
}
