package db

import (
	"fmt"
	"log"
	"time"

	"rentdesk-backend/internal/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to whichever backend the config selected. All three stores
// sit behind the same *gorm.DB gateway; callers never branch on the backend.
func Open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.SelectedBackend() {
	case config.BackendPostgres:
		return OpenGormWithDialector(postgres.Open(cfg.DatabaseURL))
	case config.BackendMySQL:
		return OpenGormWithDialector(mysql.Open(cfg.MySQLDSN()))
	case config.BackendSQLite:
		return OpenGormWithDialector(sqlite.Open(cfg.SQLitePath))
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.SelectedBackend())
}

// OpenGormWithDialector is the seam tests use to inject a mocked connection.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Printf("gorm: connected (%s)", dial.Name())
	return db, nil
}
