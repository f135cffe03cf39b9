package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/timekeep-simple/config"
	"github.com/timekeep-simple/dto"
	"github.com/timekeep-simple/lib/telegram"
	"github.com/timekeep-simple/models"
	"github.com/timekeep-simple/repositories"
	"golang.org/x/crypto/bcrypt"
)

// RegistrationService manages the registration approval queue. Sign-ups are
// parked as pending registrations; an admin approves or denies them through
// capability URLs delivered over Telegram, and only approval creates the
// account.
type RegistrationService struct {
	pendingRepo *repositories.PendingRegistrationRepository
	userRepo    *repositories.UserRepository
	notifier    telegram.Notifier
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(notifier telegram.Notifier) *RegistrationService {
	return &RegistrationService{
		pendingRepo: repositories.NewPendingRegistrationRepository(),
		userRepo:    repositories.NewUserRepository(),
		notifier:    notifier,
	}
}

// approvalURLs builds the approve/deny links embedded in the Telegram message
func approvalURLs(token string) (string, string) {
	base := config.BaseURL()
	return fmt.Sprintf("%s/api/v1/registration/approve/%s", base, token),
		fmt.Sprintf("%s/api/v1/registration/deny/%s", base, token)
}

func (s *RegistrationService) notifyApprovalRequest(pending models.PendingRegistration) {
	if s.notifier == nil {
		log.Println("Warning: Telegram notifier not configured, approval request not sent")
		return
	}
	approveURL, denyURL := approvalURLs(pending.ApprovalToken)
	if err := s.notifier.SendApprovalRequest(pending.Username, pending.Email, approveURL, denyURL); err != nil {
		// Notification failure never fails the registration itself; the
		// request can be resent later.
		log.Printf("Warning: %v", err)
	}
}

func (s *RegistrationService) notify(text string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendMessage(text); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// Submit queues a registration for approval and notifies the admin channel
func (s *RegistrationService) Submit(req dto.RegisterRequest) (models.PendingRegistration, error) {
	// Reject usernames that already belong to an account
	taken, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return models.PendingRegistration{}, err
	}
	if taken {
		return models.PendingRegistration{}, errors.New("a user with this username already exists")
	}

	// Reject duplicates already waiting in the queue
	queued, err := s.pendingRepo.ExistsByUsername(req.Username)
	if err != nil {
		return models.PendingRegistration{}, err
	}
	if queued {
		return models.PendingRegistration{}, errors.New("a registration for this username is already pending approval")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.PendingRegistration{}, err
	}

	pending, err := s.pendingRepo.Create(models.PendingRegistration{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		return models.PendingRegistration{}, err
	}

	s.notifyApprovalRequest(pending)

	return pending, nil
}

// Approve creates the account for a pending registration and removes it
// from the queue
func (s *RegistrationService) Approve(token string) (models.User, error) {
	pending, err := s.pendingRepo.FindByToken(token)
	if err != nil {
		return models.User{}, mapNotFound(err)
	}

	user, err := s.userRepo.Create(models.User{
		Username: pending.Username,
		Email:    pending.Email,
		Password: pending.PasswordHash, // already hashed at submission
		Role:     models.RoleUser,
	})
	if err != nil {
		return models.User{}, err
	}

	if err := s.pendingRepo.Delete(pending.ID); err != nil {
		return models.User{}, err
	}

	s.notify(fmt.Sprintf(
		"✅ Registration approved!\n\nUsername: %s\nEmail: %s\n\nUser can now log in.",
		user.Username, user.Email,
	))

	return user, nil
}

// Deny removes a pending registration from the queue without creating an
// account
func (s *RegistrationService) Deny(token string) error {
	pending, err := s.pendingRepo.FindByToken(token)
	if err != nil {
		return mapNotFound(err)
	}

	if err := s.pendingRepo.Delete(pending.ID); err != nil {
		return err
	}

	s.notify(fmt.Sprintf(
		"❌ Registration denied\n\nUsername: %s\nEmail: %s",
		pending.Username, pending.Email,
	))

	return nil
}

// Resend re-sends the Telegram approval request for a pending registration
func (s *RegistrationService) Resend(token string) error {
	pending, err := s.pendingRepo.FindByToken(token)
	if err != nil {
		return mapNotFound(err)
	}
	s.notifyApprovalRequest(pending)
	return nil
}

// ListPending retrieves the approval queue for the admin view
func (s *RegistrationService) ListPending() ([]dto.PendingRegistrationResponse, error) {
	pending, err := s.pendingRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PendingRegistrationResponse, 0, len(pending))
	for _, p := range pending {
		responses = append(responses, dto.PendingRegistrationResponse{
			ID:        p.ID,
			Username:  p.Username,
			Email:     p.Email,
			CreatedAt: p.CreatedAt,
		})
	}
	return responses, nil
}
