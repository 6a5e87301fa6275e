package sqlite

import (
	"fmt"
	"time"

	"solid-example/infrastructure/persistence/sqlite/po"
	"solid-example/pkg/logger"

	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open opens dsn and migrates the users table. Use an in-memory dsn such as
// "file::memory:?cache=shared" to keep nothing past process exit.
func Open(dsn string, slowThreshold time.Duration) (*gorm.DB, error) {
	gormLogger := logger.NewGormLoggerAdapterWithConfig(gormlogger.Warn, &logger.GormLoggerConfig{
		SlowThreshold:             slowThreshold,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(sqlitedriver.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	if err := db.AutoMigrate(&po.UserPO{}); err != nil {
		return nil, fmt.Errorf("failed to migrate users: %w", err)
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
