package services

import (
	"path/filepath"
	"testing"
	"time"

	model "github.com/kavyansh10/GraminSetu/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// FixedTime for consistent time patching
var FixedTime = time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)

// newTestDB opens a throwaway sqlite database with the full schema. The uuid
// hooks on the models keep them portable off Postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "crm_test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.UserProfile{},
		&model.Person{},
		&model.Household{},
		&model.Product{},
		&model.Interaction{},
		&model.Task{},
		&model.AutomationLog{},
		&model.Opportunity{},
		&model.Meeting{},
		&model.PhoneCall{},
		&model.RFP{},
		&model.Invoice{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}
	return db
}

func countRows(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(value).Count(&n).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}

func allTasks(t *testing.T, db *gorm.DB) []model.Task {
	t.Helper()
	var tasks []model.Task
	if err := db.Order("created_at asc").Find(&tasks).Error; err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	return tasks
}
