package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimerSession represents one start-to-stop stretch of work on a timer.
// A nil EndTime marks the session as currently open. The partial unique
// index on TimerID enforces at most one open session per timer even under
// concurrent start requests.
type TimerSession struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid"`
	TimerID       string         `json:"timerId" gorm:"type:uuid;not null;index;uniqueIndex:uidx_timer_open_session,where:end_time IS NULL AND deleted_at IS NULL"`
	DeliverableID *string        `json:"deliverableId" gorm:"type:uuid;index;default:null"`
	StartTime     time.Time      `json:"startTime" gorm:"not null"`
	EndTime       *time.Time     `json:"endTime" gorm:"default:null"`
	Note          string         `json:"note" gorm:"default:''"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Timer       Timer        `json:"timer,omitempty" gorm:"foreignKey:TimerID;constraint:OnDelete:CASCADE"`
	Deliverable *Deliverable `json:"deliverable,omitempty" gorm:"foreignKey:DeliverableID"`
}

// BeforeCreate assigns a UUID primary key
func (s *TimerSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// IsOpen reports whether the session is still running
func (s *TimerSession) IsOpen() bool {
	return s.EndTime == nil
}
