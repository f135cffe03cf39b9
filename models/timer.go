package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Timer represents a billable task under a project. Its hourly rate prices
// every session recorded against it.
type Timer struct {
	ID         string          `json:"id" gorm:"primaryKey;type:uuid"`
	TaskName   string          `json:"taskName" gorm:"not null"`
	ProjectID  string          `json:"projectId" gorm:"type:uuid;not null;index"`
	HourlyRate decimal.Decimal `json:"hourlyRate" gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Project  Project        `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Sessions []TimerSession `json:"sessions,omitempty" gorm:"foreignKey:TimerID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key
func (t *Timer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
