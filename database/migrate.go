package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/timekeep-simple/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBConnection represents a standalone database connection, used by the
// migration script to move data between instances.
type DBConnection struct {
	DB     *gorm.DB
	Name   string
	DbURL  string
	Models []interface{}
}

// NewDBConnection creates a new database connection
func NewDBConnection(name, dbURL string) (*DBConnection, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	// Connect to database
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %v", name, err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB for %s: %v", name, err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Printf("✅ Connected to %s database", name)

	return &DBConnection{
		DB:    db,
		Name:  name,
		DbURL: dbURL,
		Models: []interface{}{
			&models.User{},
			&models.PendingRegistration{},
			&models.Customer{},
			&models.Project{},
			&models.Deliverable{},
			&models.Timer{},
			&models.TimerSession{},
		},
	}, nil
}

// Migrate migrates the database schema
func (c *DBConnection) Migrate() error {
	log.Printf("Migrating %s database schema...", c.Name)
	err := c.DB.AutoMigrate(c.Models...)
	if err != nil {
		return fmt.Errorf("failed to migrate %s database: %v", c.Name, err)
	}
	log.Printf("✅ %s database schema migrated", c.Name)
	return nil
}

// MigrateDataBetweenDatabases migrates data from source to target. Parents
// are copied before children so foreign keys stay valid.
func MigrateDataBetweenDatabases(source, target *DBConnection) error {
	log.Println("Starting data migration from source to target...")

	var users []models.User
	if err := source.DB.Find(&users).Error; err != nil {
		return fmt.Errorf("failed to fetch users: %v", err)
	}
	log.Printf("Found %d users to migrate", len(users))
	if len(users) > 0 {
		if err := target.DB.Create(&users).Error; err != nil {
			return fmt.Errorf("failed to migrate users: %v", err)
		}
	}

	var pending []models.PendingRegistration
	if err := source.DB.Find(&pending).Error; err != nil {
		return fmt.Errorf("failed to fetch pending registrations: %v", err)
	}
	log.Printf("Found %d pending registrations to migrate", len(pending))
	if len(pending) > 0 {
		if err := target.DB.Create(&pending).Error; err != nil {
			return fmt.Errorf("failed to migrate pending registrations: %v", err)
		}
	}

	var customers []models.Customer
	if err := source.DB.Find(&customers).Error; err != nil {
		return fmt.Errorf("failed to fetch customers: %v", err)
	}
	log.Printf("Found %d customers to migrate", len(customers))
	if len(customers) > 0 {
		if err := target.DB.Create(&customers).Error; err != nil {
			return fmt.Errorf("failed to migrate customers: %v", err)
		}
	}

	var projects []models.Project
	if err := source.DB.Find(&projects).Error; err != nil {
		return fmt.Errorf("failed to fetch projects: %v", err)
	}
	log.Printf("Found %d projects to migrate", len(projects))
	if len(projects) > 0 {
		if err := target.DB.Create(&projects).Error; err != nil {
			return fmt.Errorf("failed to migrate projects: %v", err)
		}
	}

	var deliverables []models.Deliverable
	if err := source.DB.Find(&deliverables).Error; err != nil {
		return fmt.Errorf("failed to fetch deliverables: %v", err)
	}
	log.Printf("Found %d deliverables to migrate", len(deliverables))
	if len(deliverables) > 0 {
		if err := target.DB.Create(&deliverables).Error; err != nil {
			return fmt.Errorf("failed to migrate deliverables: %v", err)
		}
	}

	var timers []models.Timer
	if err := source.DB.Find(&timers).Error; err != nil {
		return fmt.Errorf("failed to fetch timers: %v", err)
	}
	log.Printf("Found %d timers to migrate", len(timers))
	if len(timers) > 0 {
		if err := target.DB.Create(&timers).Error; err != nil {
			return fmt.Errorf("failed to migrate timers: %v", err)
		}
	}

	var sessions []models.TimerSession
	if err := source.DB.Find(&sessions).Error; err != nil {
		return fmt.Errorf("failed to fetch timer sessions: %v", err)
	}
	log.Printf("Found %d timer sessions to migrate", len(sessions))
	if len(sessions) > 0 {
		if err := target.DB.Create(&sessions).Error; err != nil {
			return fmt.Errorf("failed to migrate timer sessions: %v", err)
		}
	}

	log.Println("✅ Data migration completed successfully!")
	return nil
}
