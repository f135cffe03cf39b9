package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deliverable represents a named work item within a project ("Video 1",
// "Landing page") that sessions can be tagged against. Names are unique
// within a project among live rows.
type Deliverable struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string         `json:"name" gorm:"not null;uniqueIndex:uidx_project_deliverable_name,where:deleted_at IS NULL"`
	ProjectID   string         `json:"projectId" gorm:"type:uuid;not null;index;uniqueIndex:uidx_project_deliverable_name,where:deleted_at IS NULL"`
	Description string         `json:"description" gorm:"default:''"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project  Project        `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Sessions []TimerSession `json:"sessions,omitempty" gorm:"foreignKey:DeliverableID"`
}

// BeforeCreate assigns a UUID primary key
func (d *Deliverable) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
