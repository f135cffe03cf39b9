package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timekeep-simple/database"
	"github.com/timekeep-simple/models"
)

func TestDeliverableCRUD(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	_, project, _ := createTestTree(t, user.ID, "75")

	svc := NewDeliverableService()

	deliverable, err := svc.CreateDeliverable(project.ID, "Landing page", "hero + pricing", user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, deliverable.ID)
	assert.Equal(t, project.ID, deliverable.ProjectID)

	deliverable, err = svc.UpdateDeliverable(deliverable.ID, "Landing page v2", "", user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Landing page v2", deliverable.Name)

	deliverables, err := svc.ListDeliverables(project.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, deliverables, 1)

	require.NoError(t, svc.DeleteDeliverable(deliverable.ID, user.ID))
	deliverables, err = svc.ListDeliverables(project.ID, user.ID)
	require.NoError(t, err)
	assert.Empty(t, deliverables)
}

func TestDeliverableNameUniquePerProject(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	customer, project, _ := createTestTree(t, user.ID, "75")

	svc := NewDeliverableService()
	_, err := svc.CreateDeliverable(project.ID, "Video 1", "", user.ID)
	require.NoError(t, err)

	_, err = svc.CreateDeliverable(project.ID, "Video 1", "", user.ID)
	assert.ErrorIs(t, err, ErrDuplicateDeliverable)

	// Same name under a different project is fine
	projectSvc := NewProjectService()
	other, err := projectSvc.CreateProject(customer.ID, "Channel B", user.ID)
	require.NoError(t, err)
	_, err = svc.CreateDeliverable(other.ID, "Video 1", "", user.ID)
	assert.NoError(t, err)

	// And the name frees up again once the deliverable is gone
	list, err := svc.ListDeliverables(project.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NoError(t, svc.DeleteDeliverable(list[0].ID, user.ID))
	_, err = svc.CreateDeliverable(project.ID, "Video 1", "", user.ID)
	assert.NoError(t, err)
}

func TestDeliverableOwnership(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "alice")
	intruder := createTestUser(t, "mallory")
	_, project, _ := createTestTree(t, owner.ID, "75")

	svc := NewDeliverableService()
	deliverable, err := svc.CreateDeliverable(project.ID, "Video 1", "", owner.ID)
	require.NoError(t, err)

	_, err = svc.CreateDeliverable(project.ID, "Video 2", "", intruder.ID)
	assert.ErrorIs(t, err, ErrOwnershipViolation)
	_, err = svc.ListDeliverables(project.ID, intruder.ID)
	assert.ErrorIs(t, err, ErrOwnershipViolation)
	_, err = svc.UpdateDeliverable(deliverable.ID, "Stolen", "", intruder.ID)
	assert.ErrorIs(t, err, ErrOwnershipViolation)
	err = svc.DeleteDeliverable(deliverable.ID, intruder.ID)
	assert.ErrorIs(t, err, ErrOwnershipViolation)
	_, err = svc.DeliverableTotal(deliverable.ID, intruder.ID)
	assert.ErrorIs(t, err, ErrOwnershipViolation)
}

func TestAssignDeliverable(t *testing.T) {
	t.Run("tags and untags a session", func(t *testing.T) {
		setupTestDB(t)
		user := createTestUser(t, "alice")
		_, project, timer := createTestTree(t, user.ID, "75")
		session := createClosedSession(t, timer.ID, time.Now().Add(-2*time.Hour), time.Hour)

		deliverableSvc := NewDeliverableService()
		deliverable, err := deliverableSvc.CreateDeliverable(project.ID, "Video 1", "", user.ID)
		require.NoError(t, err)

		sessionSvc := NewSessionService()
		tagged, err := sessionSvc.AssignDeliverable(session.ID, &deliverable.ID, user.ID)
		require.NoError(t, err)
		require.NotNil(t, tagged.DeliverableID)
		assert.Equal(t, deliverable.ID, *tagged.DeliverableID)

		untagged, err := sessionSvc.AssignDeliverable(session.ID, nil, user.ID)
		require.NoError(t, err)
		assert.Nil(t, untagged.DeliverableID)
	})

	t.Run("rejects a deliverable from another project", func(t *testing.T) {
		setupTestDB(t)
		user := createTestUser(t, "alice")
		customer, _, timer := createTestTree(t, user.ID, "75")
		session := createClosedSession(t, timer.ID, time.Now().Add(-2*time.Hour), time.Hour)

		projectSvc := NewProjectService()
		other, err := projectSvc.CreateProject(customer.ID, "Other project", user.ID)
		require.NoError(t, err)

		deliverableSvc := NewDeliverableService()
		foreign, err := deliverableSvc.CreateDeliverable(other.ID, "Video 1", "", user.ID)
		require.NoError(t, err)

		sessionSvc := NewSessionService()
		_, err = sessionSvc.AssignDeliverable(session.ID, &foreign.ID, user.ID)
		assert.ErrorIs(t, err, ErrInvalidDeliverable)
	})

	t.Run("tagging does not disturb the end time", func(t *testing.T) {
		setupTestDB(t)
		user := createTestUser(t, "alice")
		_, project, timer := createTestTree(t, user.ID, "75")
		session := createClosedSession(t, timer.ID, time.Now().Add(-2*time.Hour), time.Hour)

		deliverableSvc := NewDeliverableService()
		deliverable, err := deliverableSvc.CreateDeliverable(project.ID, "Video 1", "", user.ID)
		require.NoError(t, err)

		sessionSvc := NewSessionService()
		_, err = sessionSvc.AssignDeliverable(session.ID, &deliverable.ID, user.ID)
		require.NoError(t, err)

		var reloaded models.TimerSession
		require.NoError(t, database.DB.First(&reloaded, "id = ?", session.ID).Error)
		require.NotNil(t, reloaded.EndTime)
	})
}

func TestDeliverableTotal(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	_, project, timer := createTestTree(t, user.ID, "75")

	timerSvc := NewTimerService()
	cheapTimer, err := timerSvc.CreateTimer(project.ID, "Review", "30", user.ID)
	require.NoError(t, err)

	deliverableSvc := NewDeliverableService()
	deliverable, err := deliverableSvc.CreateDeliverable(project.ID, "Video 1", "", user.ID)
	require.NoError(t, err)

	sessionSvc := NewSessionService()

	// One hour at 75/hr and half an hour at 30/hr, both tagged
	base := time.Now().Add(-24 * time.Hour)
	s1 := createClosedSession(t, timer.ID, base, time.Hour)
	s2 := createClosedSession(t, cheapTimer.ID, base.Add(2*time.Hour), 30*time.Minute)
	_, err = sessionSvc.AssignDeliverable(s1.ID, &deliverable.ID, user.ID)
	require.NoError(t, err)
	_, err = sessionSvc.AssignDeliverable(s2.ID, &deliverable.ID, user.ID)
	require.NoError(t, err)

	// Untagged work does not count
	createClosedSession(t, timer.ID, base.Add(4*time.Hour), time.Hour)

	// Open sessions do not count until they are stopped
	open, err := sessionSvc.StartTimer(timer.ID, user.ID)
	require.NoError(t, err)
	_, err = sessionSvc.AssignDeliverable(open.ID, &deliverable.ID, user.ID)
	require.NoError(t, err)

	total, err := deliverableSvc.DeliverableTotal(deliverable.ID, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 5400, total.DurationSeconds)
	assert.Equal(t, "01:30:00", total.Duration)
	assert.Equal(t, "90.00", total.Cost)
}

func TestDeliverableDeleteUntagsSessions(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	_, project, timer := createTestTree(t, user.ID, "75")
	session := createClosedSession(t, timer.ID, time.Now().Add(-2*time.Hour), time.Hour)

	deliverableSvc := NewDeliverableService()
	deliverable, err := deliverableSvc.CreateDeliverable(project.ID, "Video 1", "", user.ID)
	require.NoError(t, err)

	sessionSvc := NewSessionService()
	_, err = sessionSvc.AssignDeliverable(session.ID, &deliverable.ID, user.ID)
	require.NoError(t, err)

	require.NoError(t, deliverableSvc.DeleteDeliverable(deliverable.ID, user.ID))

	// The session survives, untagged
	var reloaded models.TimerSession
	require.NoError(t, database.DB.First(&reloaded, "id = ?", session.ID).Error)
	assert.Nil(t, reloaded.DeliverableID)
	assert.NotNil(t, reloaded.EndTime)
}
