package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrRecordNotFound = errors.New("game record not found")

const (
	recordKeyPrefix = "record:"
	recentKey       = "records:recent"

	// recentLimit caps the recent-games list; older ids are trimmed away.
	recentLimit = 100
)

// GameRecord is the write-once archive entry of a finished game: the final
// board in snapshot form plus the outcome. Live game state is never read
// back from here.
type GameRecord struct {
	ID         string    `json:"id"`
	Board      string    `json:"board"`
	Winner     string    `json:"winner"`
	Difficulty string    `json:"difficulty"`
	FinishedAt time.Time `json:"finished_at"`
}

type RecordRepository interface {
	Save(ctx context.Context, record *GameRecord) error
	GetByID(ctx context.Context, id string) (*GameRecord, error)
	Recent(ctx context.Context, limit int64) ([]string, error)
}

type dbRecord struct {
	client *redis.Client
}

func NewRecordRepository(client *redis.Client) RecordRepository {
	return &dbRecord{
		client: client,
	}
}

func (that *dbRecord) Save(ctx context.Context, record *GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game record: %w", err)
	}

	recordKey := recordKeyPrefix + record.ID
	if err = that.client.Set(ctx, recordKey, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game record: %w", err)
	}

	if err = that.client.LPush(ctx, recentKey, record.ID).Err(); err != nil {
		return fmt.Errorf("failed to push record to recent list: %w", err)
	}

	if err = that.client.LTrim(ctx, recentKey, 0, recentLimit-1).Err(); err != nil {
		return fmt.Errorf("failed to trim recent list: %w", err)
	}

	return nil
}

func (that *dbRecord) GetByID(ctx context.Context, id string) (*GameRecord, error) {
	recordKey := recordKeyPrefix + id

	response, err := that.client.Get(ctx, recordKey).Result()

	if errors.Is(err, redis.Nil) {
		return &GameRecord{}, ErrRecordNotFound
	}

	if err != nil {
		return &GameRecord{}, fmt.Errorf("failed to get game record by ID: %w", err)
	}

	var existingRecord GameRecord
	if err = json.Unmarshal([]byte(response), &existingRecord); err != nil {
		return &GameRecord{}, fmt.Errorf("failed to unmarshal game record: %w", err)
	}

	return &existingRecord, nil
}

func (that *dbRecord) Recent(ctx context.Context, limit int64) ([]string, error) {
	ids, err := that.client.LRange(ctx, recentKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent records: %w", err)
	}

	return ids, nil
}
