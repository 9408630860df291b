package leaderboard

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/octofit/octofit-backend/internal/apperrors"
	"github.com/octofit/octofit-backend/pkg/db"
	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

const activeKey = "leaderboard:active"
const snapshotPrefix = "leaderboard:snapshot:"

// SnapshotStore holds the leaderboard as an immutable versioned document.
// Publish writes a new version and then swaps the active pointer, so a
// concurrent reader sees either the old set or the new one, never a mix.
type SnapshotStore interface {
	Publish(entries []Entry) error
	Active() ([]Entry, error)
	Clear() error
}

type redisSnapshotStore struct{}

func NewSnapshotStore() SnapshotStore {
	return &redisSnapshotStore{}
}

func (s *redisSnapshotStore) Publish(entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return apperrors.NewAppError(500, "error serializing leaderboard snapshot", err)
	}

	old, err := db.Rdb.Get(ctx, activeKey).Result()
	if err == redis.Nil {
		old = ""
	} else if err != nil {
		return apperrors.NewAppError(500, "error reading active snapshot pointer", err)
	}

	key := snapshotPrefix + uuid.New().String()
	if err := db.Rdb.Set(ctx, key, data, 0).Err(); err != nil {
		return apperrors.NewAppError(500, "error saving leaderboard snapshot", err)
	}

	if err := db.Rdb.Set(ctx, activeKey, key, 0).Err(); err != nil {
		return apperrors.NewAppError(500, "error swapping active snapshot", err)
	}

	if old != "" {
		if err := db.Rdb.Del(ctx, old).Err(); err != nil {
			return apperrors.NewAppError(500, "error deleting stale snapshot", err)
		}
	}

	return nil
}

func (s *redisSnapshotStore) Active() ([]Entry, error) {
	key, err := db.Rdb.Get(ctx, activeKey).Result()
	if err == redis.Nil {
		return []Entry{}, nil
	} else if err != nil {
		return nil, apperrors.NewAppError(500, "error reading active snapshot pointer", err)
	}

	val, err := db.Rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return []Entry{}, nil
	} else if err != nil {
		return nil, apperrors.NewAppError(500, "error reading leaderboard snapshot", err)
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		return nil, apperrors.NewAppError(500, "error unmarshalling leaderboard snapshot", err)
	}

	return entries, nil
}

func (s *redisSnapshotStore) Clear() error {
	key, err := db.Rdb.Get(ctx, activeKey).Result()
	if err == redis.Nil {
		return nil
	} else if err != nil {
		return apperrors.NewAppError(500, "error reading active snapshot pointer", err)
	}

	if err := db.Rdb.Del(ctx, activeKey, key).Err(); err != nil {
		return apperrors.NewAppError(500, "error clearing leaderboard", err)
	}

	return nil
}
