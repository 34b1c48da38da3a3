// Package store hides the persistence backend behind the narrow set of
// operations the application actually performs: single-row create,
// unfiltered newest-first list, single-row read by id, and the retention
// delete. Services depend on RecordStore, never on GORM directly, so the
// core flows stay transport-agnostic and testable.
package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound is returned by GetByID when no row matches the id
var ErrNotFound = errors.New("record not found")

// RecordStore is the persistence boundary the services depend on
type RecordStore interface {
	// Create inserts one row. record must be a pointer to a model struct.
	Create(ctx context.Context, record interface{}) error
	// ListNewestFirst reads an entire table ordered by created_at descending.
	// dest must be a pointer to a slice of a model struct.
	ListNewestFirst(ctx context.Context, dest interface{}) error
	// GetByID reads a single row by primary key into dest.
	GetByID(ctx context.Context, dest interface{}, id string) error
	// DeleteOlderThan removes rows of the given model created before cutoff
	// and reports how many were deleted.
	DeleteOlderThan(ctx context.Context, model interface{}, cutoff time.Time) (int64, error)
	// Transaction runs fn against a store bound to a database transaction.
	// If fn returns an error the transaction is rolled back.
	Transaction(ctx context.Context, fn func(tx RecordStore) error) error
}

// GormStore implements RecordStore on a GORM connection
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store backed by the given GORM connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, record interface{}) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *GormStore) ListNewestFirst(ctx context.Context, dest interface{}) error {
	return s.db.WithContext(ctx).Order("created_at DESC").Find(dest).Error
}

func (s *GormStore) GetByID(ctx context.Context, dest interface{}, id string) error {
	err := s.db.WithContext(ctx).First(dest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *GormStore) DeleteOlderThan(ctx context.Context, model interface{}, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(model)
	return result.RowsAffected, result.Error
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx RecordStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}
