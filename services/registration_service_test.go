package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/timekeep-simple/dto"
	"github.com/timekeep-simple/models"
)

type fakeNotifier struct {
	approvalRequests []string
	messages         []string
	err              error
}

func (f *fakeNotifier) SendApprovalRequest(username, email, approveURL, denyURL string) error {
	if f.err != nil {
		return f.err
	}
	f.approvalRequests = append(f.approvalRequests, username)
	return nil
}

func (f *fakeNotifier) SendMessage(text string) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, text)
	return nil
}

func registerRequest(username string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "s3cret-pass",
	}
}

func TestRegistrationSubmit(t *testing.T) {
	t.Run("queues the registration and notifies the admin", func(t *testing.T) {
		setupTestDB(t)
		notifier := &fakeNotifier{}
		svc := NewRegistrationService(notifier)

		pending, err := svc.Submit(registerRequest("carol"))
		require.NoError(t, err)
		assert.NotEmpty(t, pending.ID)
		assert.NotEmpty(t, pending.ApprovalToken)
		assert.Equal(t, []string{"carol"}, notifier.approvalRequests)

		// No account exists yet
		assert.EqualValues(t, 0, countRows(t, &models.User{}))
		assert.EqualValues(t, 1, countRows(t, &models.PendingRegistration{}))
	})

	t.Run("password is stored hashed, never in the clear", func(t *testing.T) {
		setupTestDB(t)
		svc := NewRegistrationService(&fakeNotifier{})

		pending, err := svc.Submit(registerRequest("carol"))
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-pass", pending.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(pending.PasswordHash), []byte("s3cret-pass")))
	})

	t.Run("rejects a username that already has an account", func(t *testing.T) {
		setupTestDB(t)
		createTestUser(t, "carol")
		svc := NewRegistrationService(&fakeNotifier{})

		_, err := svc.Submit(registerRequest("carol"))
		assert.Error(t, err)
		assert.EqualValues(t, 0, countRows(t, &models.PendingRegistration{}))
	})

	t.Run("rejects a username already waiting in the queue", func(t *testing.T) {
		setupTestDB(t)
		svc := NewRegistrationService(&fakeNotifier{})

		_, err := svc.Submit(registerRequest("carol"))
		require.NoError(t, err)
		_, err = svc.Submit(registerRequest("carol"))
		assert.Error(t, err)
		assert.EqualValues(t, 1, countRows(t, &models.PendingRegistration{}))
	})

	t.Run("a failing notifier does not fail the submission", func(t *testing.T) {
		setupTestDB(t)
		notifier := &fakeNotifier{err: errors.New("telegram unreachable")}
		svc := NewRegistrationService(notifier)

		_, err := svc.Submit(registerRequest("carol"))
		require.NoError(t, err)
		assert.EqualValues(t, 1, countRows(t, &models.PendingRegistration{}))
	})
}

func TestRegistrationApprove(t *testing.T) {
	t.Run("creates the account and clears the queue", func(t *testing.T) {
		setupTestDB(t)
		notifier := &fakeNotifier{}
		svc := NewRegistrationService(notifier)

		pending, err := svc.Submit(registerRequest("carol"))
		require.NoError(t, err)

		user, err := svc.Approve(pending.ApprovalToken)
		require.NoError(t, err)
		assert.Equal(t, "carol", user.Username)
		assert.Equal(t, models.RoleUser, user.Role)
		assert.EqualValues(t, 0, countRows(t, &models.PendingRegistration{}))
		assert.Len(t, notifier.messages, 1)

		// The bcrypt hash made at submission carries over, so the original
		// password logs in.
		created, err := GetUser(user.ID)
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret-pass")))
	})

	t.Run("unknown token reports not found", func(t *testing.T) {
		setupTestDB(t)
		svc := NewRegistrationService(&fakeNotifier{})

		_, err := svc.Approve("00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("a token cannot be approved twice", func(t *testing.T) {
		setupTestDB(t)
		svc := NewRegistrationService(&fakeNotifier{})

		pending, err := svc.Submit(registerRequest("carol"))
		require.NoError(t, err)

		_, err = svc.Approve(pending.ApprovalToken)
		require.NoError(t, err)
		_, err = svc.Approve(pending.ApprovalToken)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.EqualValues(t, 1, countRows(t, &models.User{}))
	})
}

func TestRegistrationDeny(t *testing.T) {
	setupTestDB(t)
	notifier := &fakeNotifier{}
	svc := NewRegistrationService(notifier)

	pending, err := svc.Submit(registerRequest("carol"))
	require.NoError(t, err)

	require.NoError(t, svc.Deny(pending.ApprovalToken))
	assert.EqualValues(t, 0, countRows(t, &models.PendingRegistration{}))
	assert.EqualValues(t, 0, countRows(t, &models.User{}))
	assert.Len(t, notifier.messages, 1)

	assert.ErrorIs(t, svc.Deny(pending.ApprovalToken), ErrNotFound)
}

func TestRegistrationResend(t *testing.T) {
	setupTestDB(t)
	notifier := &fakeNotifier{}
	svc := NewRegistrationService(notifier)

	pending, err := svc.Submit(registerRequest("carol"))
	require.NoError(t, err)

	require.NoError(t, svc.Resend(pending.ApprovalToken))
	assert.Equal(t, []string{"carol", "carol"}, notifier.approvalRequests)

	assert.ErrorIs(t, svc.Resend("not-a-token"), ErrNotFound)
}

func TestRegistrationListPending(t *testing.T) {
	setupTestDB(t)
	svc := NewRegistrationService(&fakeNotifier{})

	_, err := svc.Submit(registerRequest("carol"))
	require.NoError(t, err)
	_, err = svc.Submit(registerRequest("dave"))
	require.NoError(t, err)

	pending, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 2)

	usernames := []string{pending[0].Username, pending[1].Username}
	assert.ElementsMatch(t, []string{"carol", "dave"}, usernames)
}
