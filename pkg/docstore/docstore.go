// Package docstore provides a small embedded key-document store backed by
// SQLite. Each key holds one opaque document; callers serialize whole
// collections into a single document and rewrite it on every mutation.
package docstore

import (
	"errors"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Document is one key/value row. The value is an opaque blob, usually JSON.
type Document struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

// TableName overrides the gorm default pluralization
func (Document) TableName() string {
	return "documents"
}

// Store is an embedded key-document store
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the store at the given file path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Get returns the document stored under key. The second return value reports
// whether the key exists.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var doc Document
	err := s.db.First(&doc, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc.Value, true, nil
}

// Put stores the document under key, replacing any previous value.
func (s *Store) Put(key string, value []byte) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Document{Key: key, Value: value}).Error
}

// Delete removes the document under key. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) error {
	return s.db.Delete(&Document{}, "key = ?", key).Error
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
