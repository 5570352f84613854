package database

import (
	"context"
	"fmt"
	"time"

	"github.com/csaba-schmidtmayer/trivia-api/internal/config"
	"github.com/csaba-schmidtmayer/trivia-api/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const retryInterval = 250 * time.Millisecond

var (
	newDialector = defaultDialector
	gormOpen     = func(dialector gorm.Dialector, cfg *gorm.Config) (*gorm.DB, error) {
		return gorm.Open(dialector, cfg)
	}
)

func defaultDialector(driver, dsn string) gorm.Dialector {
	if driver == config.DriverSQLite {
		return sqlite.Open(dsn)
	}
	return postgres.Open(dsn)
}

// Connect opens the configured database and retries until it answers a ping
// or cfg.ConnectTimeout elapses.
func Connect(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	gormLogger, err := newGormLogger(logger, cfg.GormLogLevel)
	if err != nil {
		logger.Warn("invalid gorm log level, using default", zap.String("value", cfg.GormLogLevel), zap.Error(err))
	}

	deadline := time.Now().Add(cfg.ConnectTimeout)
	var lastErr error
	for attempt := 1; ; attempt++ {
		db, err := open(cfg, gormLogger)
		if err == nil {
			return db, nil
		}
		lastErr = err
		logger.Warn("database not reachable yet",
			zap.String("driver", cfg.Driver),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if time.Now().Add(retryInterval).After(deadline) {
			break
		}
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("connect to %s database: %w", cfg.Driver, lastErr)
}

func open(cfg config.DatabaseConfig, gormLogger gormlogger.Interface) (*gorm.DB, error) {
	db, err := gormOpen(newDialector(cfg.Driver, cfg.DSN()), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates the categories and questions tables if they are missing.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Ping reports whether the database still answers.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
