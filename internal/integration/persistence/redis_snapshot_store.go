// Package persistence implements the snapshot stores and the in-memory
// profile repository.
package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

// redisSnapshotStore implements adapter.SnapshotStore as one redis document
// per key. This is the cloud persistence path; documents never expire.
type redisSnapshotStore struct {
	client *redis.Client
}

// NewRedisSnapshotStore creates a new redis-backed snapshot store.
func NewRedisSnapshotStore(client *redis.Client) adapter.SnapshotStore {
	return &redisSnapshotStore{client: client}
}

// Put stores the payload under the key, replacing any previous document.
func (s *redisSnapshotStore) Put(ctx context.Context, key string, payload []byte) error {
	return s.client.Set(ctx, key, payload, 0).Err()
}

// Get returns the payload stored under the key.
func (s *redisSnapshotStore) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrSnapshotNotFound
		}
		return nil, err
	}
	return payload, nil
}

// Delete removes the document stored under the key, if any.
func (s *redisSnapshotStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
