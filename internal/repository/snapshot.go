package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

const snapshotKeyPrefix = "session:"

// SnapshotRepository mirrors the latest game state of each session to redis.
// The service never reads the mirror back; it is there for outside inspection.
type SnapshotRepository interface {
	Save(ctx context.Context, sessionID string, state entity.GameState) error
	GetBySessionID(ctx context.Context, sessionID string) (entity.GameState, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

type dbSnapshot struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotRepository keeps each snapshot for ttl after its last write. Zero means no expiry.
func NewSnapshotRepository(client *redis.Client, ttl time.Duration) SnapshotRepository {
	return &dbSnapshot{
		client: client,
		ttl:    ttl,
	}
}

func snapshotKey(sessionID string) string {
	return snapshotKeyPrefix + sessionID
}

func (that *dbSnapshot) Save(ctx context.Context, sessionID string, state entity.GameState) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not marshal game state: %w", err)
	}

	if err = that.client.Set(ctx, snapshotKey(sessionID), stateJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}

	return nil
}

func (that *dbSnapshot) GetBySessionID(ctx context.Context, sessionID string) (entity.GameState, error) {
	response, err := that.client.Get(ctx, snapshotKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return entity.GameState{}, ErrSnapshotNotFound
	}

	if err != nil {
		return entity.GameState{}, fmt.Errorf("failed to get snapshot by session id: %w", err)
	}

	var state entity.GameState
	if err = json.Unmarshal([]byte(response), &state); err != nil {
		return entity.GameState{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return state, nil
}

func (that *dbSnapshot) DeleteBySessionID(ctx context.Context, sessionID string) error {
	if err := that.client.Del(ctx, snapshotKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot by session id: %w", err)
	}

	return nil
}
