package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	dbm "tourmuse/internal/models/db_models"
)

// PendingDraft carries an unconfirmed draft across the authentication detour,
// together with where to send the user afterwards.
type PendingDraft struct {
	Draft    dbm.TripDraft `json:"draft"`
	Redirect string        `json:"redirect"`
}

// DraftStaging is a single-slot handoff between the planning form and the
// itinerary page. Entries are write-once-read-once: Consume returns the draft
// at most once and clears it.
type DraftStaging interface {
	Stage(ctx context.Context, key string, pending *PendingDraft) error
	Consume(ctx context.Context, key string) (*PendingDraft, error)
}

type redisStaging struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStaging(client *redis.Client, ttl time.Duration) DraftStaging {
	return &redisStaging{client: client, ttl: ttl}
}

func stagingKey(key string) string {
	return "staging:draft:" + key
}

func (s *redisStaging) Stage(ctx context.Context, key string, pending *PendingDraft) error {
	payload, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, stagingKey(key), payload, s.ttl).Err()
}

// Consume uses GETDEL so two racing resumes cannot both win the draft.
func (s *redisStaging) Consume(ctx context.Context, key string) (*PendingDraft, error) {
	payload, err := s.client.GetDel(ctx, stagingKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var pending PendingDraft
	if err := json.Unmarshal(payload, &pending); err != nil {
		return nil, err
	}
	return &pending, nil
}
