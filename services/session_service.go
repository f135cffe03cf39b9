package services

import (
	"errors"
	"time"

	"github.com/timekeep-simple/database"
	"github.com/timekeep-simple/models"
	"github.com/timekeep-simple/repositories"
	"gorm.io/gorm"
)

// SessionService orchestrates the start/stop lifecycle of timer sessions.
// StartTimer and StopTimer are the only code paths that set or clear a
// session's end time.
type SessionService struct {
	timerRepo       *repositories.TimerRepository
	sessionRepo     *repositories.SessionRepository
	deliverableRepo *repositories.DeliverableRepository
}

// NewSessionService creates a new session service instance
func NewSessionService() *SessionService {
	return &SessionService{
		timerRepo:       repositories.NewTimerRepository(),
		sessionRepo:     repositories.NewSessionRepository(),
		deliverableRepo: repositories.NewDeliverableRepository(),
	}
}

// StartTimer opens a new session on the timer. It fails with
// ErrProjectCompleted if the owning project is completed and with
// ErrSessionAlreadyRunning if an open session already exists. The
// check-then-insert runs inside a transaction, and the partial unique index
// on open sessions backstops the race where two concurrent starts both pass
// the check: the losing insert comes back as a duplicate key.
func (s *SessionService) StartTimer(timerID string, userID string) (models.TimerSession, error) {
	timer, err := s.timerRepo.FindByID(timerID)
	if err != nil {
		return models.TimerSession{}, mapNotFound(err)
	}
	if timer.Project.Customer.UserID != userID {
		return models.TimerSession{}, ErrOwnershipViolation
	}

	var session models.TimerSession
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// Re-read the project inside the transaction: the completed gate is
		// checked on the idle-to-running transition only.
		var project models.Project
		if err := tx.First(&project, "id = ?", timer.ProjectID).Error; err != nil {
			return err
		}
		if project.Status == models.ProjectStatusCompleted {
			return ErrProjectCompleted
		}

		var open int64
		if err := tx.Model(&models.TimerSession{}).
			Where("timer_id = ? AND end_time IS NULL", timerID).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return ErrSessionAlreadyRunning
		}

		session = models.TimerSession{
			TimerID:   timerID,
			StartTime: time.Now(),
		}
		if err := tx.Create(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSessionAlreadyRunning
			}
			return err
		}
		return nil
	})
	if err != nil {
		return models.TimerSession{}, err
	}
	return session, nil
}

// StopTimer closes the timer's open session, attaching the note. It fails
// with ErrNoOpenSession if the timer is idle and with ErrInvalidTimeRange
// if the clock reads earlier than the session start. The close is a
// compare-and-set on "end_time IS NULL" so two concurrent stops cannot
// both claim the same session.
func (s *SessionService) StopTimer(timerID string, note string, userID string) (models.TimerSession, error) {
	timer, err := s.timerRepo.FindByID(timerID)
	if err != nil {
		return models.TimerSession{}, mapNotFound(err)
	}
	if timer.Project.Customer.UserID != userID {
		return models.TimerSession{}, ErrOwnershipViolation
	}

	now := time.Now()

	var session models.TimerSession
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		open, err := s.sessionRepo.FindOpenByTimerID(tx, timerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoOpenSession
			}
			return err
		}

		if now.Before(open.StartTime) {
			return ErrInvalidTimeRange
		}

		result := tx.Model(&models.TimerSession{}).
			Where("id = ? AND end_time IS NULL", open.ID).
			Updates(map[string]interface{}{"end_time": now, "note": note})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoOpenSession
		}

		session = open
		session.EndTime = &now
		session.Note = note
		return nil
	})
	if err != nil {
		return models.TimerSession{}, err
	}
	return session, nil
}

// ListSessions retrieves all sessions of one of the user's timers
func (s *SessionService) ListSessions(timerID string, userID string) ([]models.TimerSession, error) {
	timer, err := s.timerRepo.FindByID(timerID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if timer.Project.Customer.UserID != userID {
		return nil, ErrOwnershipViolation
	}
	return s.sessionRepo.FindByTimerID(timerID)
}

// ListRunningSessions retrieves all currently open sessions across the
// user's customers
func (s *SessionService) ListRunningSessions(userID string) ([]models.TimerSession, error) {
	return s.sessionRepo.FindRunningByUserID(userID)
}

// UpdateSessionNote edits a session's note. Historical sessions stay
// editable even after their project is completed.
func (s *SessionService) UpdateSessionNote(sessionID string, note string, userID string) (models.TimerSession, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return models.TimerSession{}, mapNotFound(err)
	}
	if session.Timer.Project.Customer.UserID != userID {
		return models.TimerSession{}, ErrOwnershipViolation
	}

	if err := s.sessionRepo.UpdateNote(session.ID, note); err != nil {
		return models.TimerSession{}, err
	}
	session.Note = note
	return session, nil
}

// AssignDeliverable tags a session with one of its project's deliverables,
// or clears the tag when deliverableID is nil
func (s *SessionService) AssignDeliverable(sessionID string, deliverableID *string, userID string) (models.TimerSession, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return models.TimerSession{}, mapNotFound(err)
	}
	if session.Timer.Project.Customer.UserID != userID {
		return models.TimerSession{}, ErrOwnershipViolation
	}

	if deliverableID != nil {
		deliverable, err := s.deliverableRepo.FindByID(*deliverableID)
		if err != nil {
			return models.TimerSession{}, mapNotFound(err)
		}
		// Deliverables only make sense within their own project
		if deliverable.ProjectID != session.Timer.ProjectID {
			return models.TimerSession{}, ErrInvalidDeliverable
		}
	}

	if err := s.sessionRepo.UpdateDeliverable(session.ID, deliverableID); err != nil {
		return models.TimerSession{}, err
	}
	session.DeliverableID = deliverableID
	return session, nil
}

// DeleteSession removes a single session
func (s *SessionService) DeleteSession(sessionID string, userID string) error {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return mapNotFound(err)
	}
	if session.Timer.Project.Customer.UserID != userID {
		return ErrOwnershipViolation
	}
	return s.sessionRepo.Delete(sessionID)
}
