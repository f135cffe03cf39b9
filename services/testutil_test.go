package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/timekeep-simple/database"
	"github.com/timekeep-simple/models"
)

// setupTestDB points the global connection at a fresh in-memory sqlite
// database. A single pooled connection keeps the shared memory database
// alive and serializes concurrent transactions, which makes the
// concurrency tests deterministic.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.PendingRegistration{},
		&models.Customer{},
		&models.Project{},
		&models.Deliverable{},
		&models.Timer{},
		&models.TimerSession{},
	))

	database.DB = db
	t.Cleanup(func() {
		database.DB = nil
		sqlDB.Close()
	})
}

func createTestUser(t *testing.T, username string) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
		Role:     models.RoleUser,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

// createTestTree seeds a customer -> project -> timer chain for a user
func createTestTree(t *testing.T, userID string, rate string) (models.Customer, models.Project, models.Timer) {
	t.Helper()

	customer := models.Customer{Name: "Acme", UserID: userID}
	require.NoError(t, database.DB.Create(&customer).Error)

	project := models.Project{Name: "Website", CustomerID: customer.ID, Status: models.ProjectStatusActive}
	require.NoError(t, database.DB.Create(&project).Error)

	timer := models.Timer{TaskName: "Development", ProjectID: project.ID, HourlyRate: decimal.RequireFromString(rate)}
	require.NoError(t, database.DB.Create(&timer).Error)

	return customer, project, timer
}

// createClosedSession seeds a finished session of the given length
func createClosedSession(t *testing.T, timerID string, start time.Time, length time.Duration) models.TimerSession {
	t.Helper()

	end := start.Add(length)
	session := models.TimerSession{
		TimerID:   timerID,
		StartTime: start,
		EndTime:   &end,
	}
	require.NoError(t, database.DB.Create(&session).Error)
	return session
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, database.DB.Model(model).Count(&count).Error)
	return count
}
