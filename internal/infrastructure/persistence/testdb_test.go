package persistence

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/academia/backend/internal/infrastructure/persistence/models"
)

// newTestDB opens an in-memory SQLite database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database keeps the schema alive across pooled
	// connections while staying isolated per test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.CourseModel{},
		&models.PersonModel{},
		&models.EnrollmentModel{},
		&models.CourseLinkModel{},
		&models.EnrollmentLinkModel{},
		&models.MessagingGroupModel{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
