package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsOverview(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	customer, _, timer := createTestTree(t, user.ID, "75")

	projectSvc := NewProjectService()
	timerSvc := NewTimerService()
	sessionSvc := NewSessionService()

	// A second project, completed, with its own timer
	done, err := projectSvc.CreateProject(customer.ID, "Backend", user.ID)
	require.NoError(t, err)
	doneTimer, err := timerSvc.CreateTimer(done.ID, "API", "60", user.ID)
	require.NoError(t, err)
	_, err = projectSvc.CompleteProject(done.ID, user.ID)
	require.NoError(t, err)

	// Two hours at 75/hr plus half an hour at 60/hr
	base := time.Now().Add(-24 * time.Hour)
	createClosedSession(t, timer.ID, base, time.Hour)
	createClosedSession(t, timer.ID, base.Add(2*time.Hour), time.Hour)
	createClosedSession(t, doneTimer.ID, base, 30*time.Minute)

	// Running work must not count until stopped
	_, err = sessionSvc.StartTimer(timer.ID, user.ID)
	require.NoError(t, err)

	// Another user's tree must be invisible
	bob := createTestUser(t, "bob")
	_, _, bobTimer := createTestTree(t, bob.ID, "100")
	createClosedSession(t, bobTimer.ID, base, time.Hour)

	svc := NewStatsService()
	stats, err := svc.Overview(user.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalSessions)
	assert.EqualValues(t, 9000, stats.TotalDurationSeconds)
	assert.Equal(t, "02:30:00", stats.TotalDuration)
	assert.Equal(t, "180.00", stats.TotalCost)

	assert.Equal(t, 1, stats.TotalCustomers)
	assert.Equal(t, 2, stats.TotalTimers)
	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, 1, stats.CompletedProjects)

	// Rows are sorted by accumulated time, busiest first
	require.Len(t, stats.Timers, 2)
	assert.Equal(t, "Development", stats.Timers[0].Name)
	assert.EqualValues(t, 7200, stats.Timers[0].DurationSeconds)
	assert.Equal(t, 2, stats.Timers[0].SessionCount)
	assert.Equal(t, "API", stats.Timers[1].Name)
	assert.Equal(t, "30.00", stats.Timers[1].Cost)

	require.Len(t, stats.Projects, 2)
	assert.Equal(t, "Website", stats.Projects[0].Name)
	assert.Equal(t, "Acme", stats.Projects[0].CustomerName)
	assert.Equal(t, "completed", stats.Projects[1].Status)

	require.Len(t, stats.Customers, 1)
	assert.Equal(t, "Acme", stats.Customers[0].Name)
	assert.Equal(t, 2, stats.Customers[0].ProjectCount)
	assert.EqualValues(t, 9000, stats.Customers[0].DurationSeconds)
}

func TestStatsOverviewEmpty(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")

	svc := NewStatsService()
	stats, err := svc.Overview(user.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalSessions)
	assert.Equal(t, "00:00:00", stats.TotalDuration)
	assert.Equal(t, "0.00", stats.TotalCost)
	assert.Empty(t, stats.Timers)
	assert.Empty(t, stats.Projects)
	assert.Empty(t, stats.Customers)
}
