package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PendingRegistration stores a sign-up awaiting manual approval. The
// approval token is a capability: whoever holds the link from the Telegram
// notification can approve or deny without logging in.
// Rows are removed outright on approval or denial, so a denied username can
// register again later.
type PendingRegistration struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	Username      string    `json:"username" gorm:"uniqueIndex;not null"`
	Email         string    `json:"email" gorm:"not null"`
	PasswordHash  string    `json:"-" gorm:"not null"`
	ApprovalToken string    `json:"-" gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID primary key and approval token
func (p *PendingRegistration) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.ApprovalToken == "" {
		p.ApprovalToken = uuid.NewString()
	}
	return nil
}
