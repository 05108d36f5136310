// Package storage is the persistence layer: a string-keyed store of JSON
// blobs. Callers always write whole values; the only atomicity guarantee is
// the backend's own single-key write.
package storage

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Well-known keys. Profiles live under one key per user.
const (
	UsersKey = "users"
	ThemeKey = "theme"
)

func ProfileKey(user string) string {
	return "userdata_" + user
}

// Store reads and writes JSON blobs by logical name. Read reports a missing
// key as (nil, false, nil); callers decide whether absence is an empty
// default or a precondition violation.
type Store interface {
	Read(key string) ([]byte, bool, error)
	Write(key string, value []byte) error
	Delete(key string) error
}

// Blob is one persisted key/value row.
type Blob struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// SQLStore keeps blobs in a local sqlite file.
type SQLStore struct {
	db *gorm.DB
}

// Open opens (creating if needed) the sqlite database at path and migrates
// the blobs table.
func Open(path string) (*SQLStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Read(key string) ([]byte, bool, error) {
	var b Blob
	err := s.db.First(&b, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(b.Value), true, nil
}

func (s *SQLStore) Write(key string, value []byte) error {
	b := Blob{Key: key, Value: string(value)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&b).Error
}

func (s *SQLStore) Delete(key string) error {
	return s.db.Delete(&Blob{}, "key = ?", key).Error
}
