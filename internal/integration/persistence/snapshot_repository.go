// Package persistence implements the snapshot stores and the in-memory
// profile repository.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
	"github.com/gap-tools/financial-tracker-backend/internal/integration/persistence/model"
)

// snapshotRepository implements adapter.SnapshotStore on a gorm database
// (sqlite for the local single-user setup, postgres when shared).
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new database-backed snapshot store.
func NewSnapshotRepository(db *gorm.DB) adapter.SnapshotStore {
	return &snapshotRepository{db: db}
}

// Put stores the payload under the key, replacing any previous document.
func (r *snapshotRepository) Put(ctx context.Context, key string, payload []byte) error {
	snapshot := model.SnapshotModel{
		Key:       key,
		Payload:   payload,
		UpdatedAt: time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&snapshot)
	return result.Error
}

// Get returns the payload stored under the key.
func (r *snapshotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var snapshot model.SnapshotModel
	result := r.db.WithContext(ctx).Where("key = ?", key).First(&snapshot)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSnapshotNotFound
		}
		return nil, result.Error
	}
	return snapshot.Payload, nil
}

// Delete removes the document stored under the key, if any.
func (r *snapshotRepository) Delete(ctx context.Context, key string) error {
	result := r.db.WithContext(ctx).Delete(&model.SnapshotModel{}, "key = ?", key)
	return result.Error
}
