package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// Options describes how to reach the store.
type Options struct {
	DSN          string
	ReplicaDSNs  []string
	MaxOpenConns int
	MaxIdleConns int
	SlowQuery    time.Duration
}

// NewLogger returns the gorm logger used across the app: warnings and slow
// queries only, record-not-found is an expected outcome and stays quiet.
func NewLogger(slow time.Duration) logger.Interface {
	if slow <= 0 {
		slow = 10 * time.Second
	}
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             slow,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

// Config is the gorm configuration shared by every dialect. Errors are
// translated so duplicates surface as gorm.ErrDuplicatedKey, and foreign keys
// are never created because category_id is a weak reference.
func Config(l logger.Interface) *gorm.Config {
	return &gorm.Config{
		PrepareStmt:                              false,
		Logger:                                   l,
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

// Open connects to PostgreSQL and, when replicas are configured, routes
// reads to them through dbresolver.
func Open(opts Options) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  opts.DSN,
		PreferSimpleProtocol: true,
	}), Config(NewLogger(opts.SlowQuery)))
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	if len(opts.ReplicaDSNs) > 0 {
		replicas := make([]gorm.Dialector, 0, len(opts.ReplicaDSNs))
		for _, dsn := range opts.ReplicaDSNs {
			replicas = append(replicas, postgres.New(postgres.Config{
				DSN:                  dsn,
				PreferSimpleProtocol: true,
			}))
		}
		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})
		if err := db.Use(resolver); err != nil {
			return nil, fmt.Errorf("database: register replicas: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: pool: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("database: test connection: %w", err)
	}

	return db, nil
}
