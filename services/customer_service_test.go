package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timekeep-simple/models"
)

func TestCustomerCRUD(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	svc := NewCustomerService()

	customer, err := svc.CreateCustomer("Acme", user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, user.ID, customer.UserID)

	customer, err = svc.UpdateCustomer(customer.ID, "Acme Corp", user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", customer.Name)

	customers, err := svc.ListCustomers(user.ID)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Acme Corp", customers[0].Name)

	require.NoError(t, svc.DeleteCustomer(customer.ID, user.ID))
	_, err = svc.GetCustomer(customer.ID, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerOwnership(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "alice")
	intruder := createTestUser(t, "mallory")
	customer, _, _ := createTestTree(t, owner.ID, "75")

	svc := NewCustomerService()

	_, err := svc.GetCustomer(customer.ID, intruder.ID)
	assert.ErrorIs(t, err, ErrOwnershipViolation)

	_, err = svc.UpdateCustomer(customer.ID, "Stolen", intruder.ID)
	assert.ErrorIs(t, err, ErrOwnershipViolation)

	err = svc.DeleteCustomer(customer.ID, intruder.ID)
	assert.ErrorIs(t, err, ErrOwnershipViolation)
	assert.EqualValues(t, 1, countRows(t, &models.Customer{}))

	// Listing only surfaces the caller's own customers
	customers, err := svc.ListCustomers(intruder.ID)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestCustomerDeleteCascades(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	customer, _, timer := createTestTree(t, user.ID, "75")
	createClosedSession(t, timer.ID, time.Now().Add(-2*time.Hour), time.Hour)

	// A second, unrelated tree that must survive the delete
	otherCustomer, _, otherTimer := createTestTree(t, user.ID, "50")
	createClosedSession(t, otherTimer.ID, time.Now().Add(-2*time.Hour), time.Hour)

	svc := NewCustomerService()
	require.NoError(t, svc.DeleteCustomer(customer.ID, user.ID))

	assert.EqualValues(t, 1, countRows(t, &models.Customer{}))
	assert.EqualValues(t, 1, countRows(t, &models.Project{}))
	assert.EqualValues(t, 1, countRows(t, &models.Timer{}))
	assert.EqualValues(t, 1, countRows(t, &models.TimerSession{}))

	_, err := svc.GetCustomer(otherCustomer.ID, user.ID)
	assert.NoError(t, err)
}

func TestProjectDeleteCascades(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	customer, project, timer := createTestTree(t, user.ID, "75")
	createClosedSession(t, timer.ID, time.Now().Add(-2*time.Hour), time.Hour)

	// Sibling project under the same customer
	projectSvc := NewProjectService()
	sibling, err := projectSvc.CreateProject(customer.ID, "Mobile app", user.ID)
	require.NoError(t, err)

	timerSvc := NewTimerService()
	siblingTimer, err := timerSvc.CreateTimer(sibling.ID, "Design", "60", user.ID)
	require.NoError(t, err)
	createClosedSession(t, siblingTimer.ID, time.Now().Add(-time.Hour), 30*time.Minute)

	require.NoError(t, projectSvc.DeleteProject(project.ID, user.ID))

	// The customer and the sibling subtree are untouched
	assert.EqualValues(t, 1, countRows(t, &models.Customer{}))
	assert.EqualValues(t, 1, countRows(t, &models.Project{}))
	assert.EqualValues(t, 1, countRows(t, &models.Timer{}))
	assert.EqualValues(t, 1, countRows(t, &models.TimerSession{}))

	got, err := projectSvc.GetProject(sibling.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mobile app", got.Name)
}

func TestProjectCompletion(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	_, project, _ := createTestTree(t, user.ID, "75")

	svc := NewProjectService()
	completed, err := svc.CompleteProject(project.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusCompleted, completed.Status)

	// Renaming a completed project stays allowed
	renamed, err := svc.UpdateProject(project.ID, "Website v2", user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Website v2", renamed.Name)
	assert.Equal(t, models.ProjectStatusCompleted, renamed.Status)
}

func TestTimerRateValidation(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	_, project, _ := createTestTree(t, user.ID, "75")

	svc := NewTimerService()

	_, err := svc.CreateTimer(project.ID, "Review", "-5", user.ID)
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = svc.CreateTimer(project.ID, "Review", "banana", user.ID)
	assert.ErrorIs(t, err, ErrInvalidRate)

	timer, err := svc.CreateTimer(project.ID, "Review", "0", user.ID)
	require.NoError(t, err)
	assert.True(t, timer.HourlyRate.IsZero())
}
