// Package settings persists the operator's settings snapshot: profile,
// notification toggles, preferences, security options and property
// info. Entity data is never persisted here; only this flat record
// survives across sessions.
package settings

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Settings is the single-row settings record.
type Settings struct {
	ID uint `gorm:"primaryKey"`

	ProfileName  string
	ProfileEmail string
	ProfileRole  string

	EmailNotifications bool
	PaymentReminders   bool
	MaintenanceUpdates bool
	NewTenantAlerts    bool

	Language   string
	Currency   string
	DateFormat string
	Theme      string

	TwoFactorEnabled      bool
	SessionTimeoutMinutes int
	LoginNotifications    bool

	PropertyName    string
	PropertyAddress string
	PropertyCity    string
	PropertyPhone   string
	PropertyEmail   string

	UpdatedAt time.Time
}

// Defaults returns the initial settings for a fresh installation.
func Defaults() Settings {
	return Settings{
		ID:                    1,
		ProfileName:           "Admin User",
		ProfileEmail:          "admin@kostmanager.com",
		ProfileRole:           "admin",
		EmailNotifications:    true,
		PaymentReminders:      true,
		MaintenanceUpdates:    true,
		NewTenantAlerts:       true,
		Language:              "id",
		Currency:              "IDR",
		DateFormat:            "DD/MM/YYYY",
		Theme:                 "light",
		SessionTimeoutMinutes: 30,
		LoginNotifications:    true,
		PropertyName:          "KostManager Property",
		PropertyAddress:       "Jl. Example No. 123",
		PropertyCity:          "Jakarta",
		PropertyPhone:         "+62123456789",
		PropertyEmail:         "info@kostmanager.com",
	}
}

// Open connects to the settings database: Postgres when DATABASE_URL is
// set, otherwise a local SQLite file from KOSTMANAGER_DB (default
// kostmanager.db).
func Open() (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open settings database: %v", err)
		}
		return db, nil
	}

	path := os.Getenv("KOSTMANAGER_DB")
	if path == "" {
		path = "kostmanager.db"
	}
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings database %s: %v", path, err)
	}
	return db, nil
}

// Load migrates the settings table and returns the stored record, or
// the defaults when nothing has been saved yet.
func Load(db *gorm.DB) (Settings, error) {
	if err := db.AutoMigrate(&Settings{}); err != nil {
		return Settings{}, fmt.Errorf("failed to migrate settings table: %v", err)
	}
	var s Settings
	err := db.First(&s, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Defaults(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load settings: %v", err)
	}
	return s, nil
}

// Save upserts the single settings row.
func Save(db *gorm.DB, s Settings) error {
	if err := db.AutoMigrate(&Settings{}); err != nil {
		return fmt.Errorf("failed to migrate settings table: %v", err)
	}
	s.ID = 1
	if err := db.Save(&s).Error; err != nil {
		return fmt.Errorf("failed to save settings: %v", err)
	}
	return nil
}
