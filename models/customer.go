package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a client that belongs to exactly one user. It is the
// root of the ownership chain: Customer -> Project -> Timer -> TimerSession.
type Customer struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string         `json:"name" gorm:"not null"`
	UserID    string         `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User     User      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns a UUID primary key
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
