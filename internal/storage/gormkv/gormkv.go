// Package gormkv provides the GORM-backed key-value store, with SQLite as
// the default local backend and PostgreSQL as the networked alternative.
package gormkv

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/gravadigital/ideaboard/internal/config"
	"github.com/gravadigital/ideaboard/internal/logger"
)

// Record is one key-value row.
type Record struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value;type:text"`
}

// TableName overrides the table name used by GORM
func (Record) TableName() string {
	return "kv_records"
}

// Store is a KeyValue implementation over a GORM connection.
type Store struct {
	db *gorm.DB
}

// OpenSQLite opens (and migrates) a SQLite-backed store at the given path.
func OpenSQLite(cfg *config.Config) (*Store, error) {
	log := logger.Storage()

	db, err := gorm.Open(sqlite.Open(cfg.Storage.SQLitePath), gormConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	log.Debug("SQLite store opened", "path", cfg.Storage.SQLitePath)

	return migrate(db)
}

// OpenPostgres connects to PostgreSQL with retry and exponential backoff,
// then migrates the key-value table.
func OpenPostgres(cfg *config.Config) (*Store, error) {
	log := logger.Storage()

	dsn := cfg.GetDatabaseURL()
	log.Debug("Connecting to database", "host", cfg.DB.Host, "port", cfg.DB.Port, "database", cfg.DB.Name)

	var db *gorm.DB
	var err error
	maxRetries := 3
	retryDelay := time.Second * 2

	for attempt := 1; attempt <= maxRetries; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), gormConfig(cfg))
		if err == nil {
			break
		}

		log.Warn("Database connection failed", "attempt", attempt, "error", err)
		if attempt < maxRetries {
			time.Sleep(retryDelay)
			retryDelay *= 2
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
	}

	return migrate(db)
}

// Get returns the value stored under key, reporting absence without error.
func (s *Store) Get(key string) (string, bool, error) {
	var rec Record
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return rec.Value, true, nil
}

// Put stores the value under key, replacing any previous value.
func (s *Store) Put(key, value string) error {
	rec := Record{Key: key, Value: value}
	if err := s.db.Save(&rec).Error; err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if err := s.db.Delete(&Record{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func migrate(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv table: %w", err)
	}
	return &Store{db: db}, nil
}

func gormConfig(cfg *config.Config) *gorm.Config {
	level := gormLogger.Silent
	if cfg.Log.Level == "debug" {
		level = gormLogger.Info
	}
	return &gorm.Config{
		Logger: gormLogger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}
