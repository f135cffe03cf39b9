package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Project represents a body of work for a customer. Once completed, its
// timers can no longer open new sessions.
type Project struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name       string         `json:"name" gorm:"not null"`
	CustomerID string         `json:"customerId" gorm:"type:uuid;not null;index"`
	Status     ProjectStatus  `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Customer Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Timers   []Timer  `json:"timers,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
