// Package history persists per-session hand records to Redis so a
// player can review how a shoe was played. The advisor works fully
// without it; the store is only wired when enabled in config.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "advisor:session:"
	handsKeySuffix   = ":hands"

	// Session data expires after a day; this is a review aid, not an
	// archive.
	sessionExpiration = 24 * time.Hour
)

// HandRecord captures one decision point as the advisor saw it.
type HandRecord struct {
	PlayerHand      []string `json:"player_hand"`
	DealerUpcard    string   `json:"dealer_upcard"`
	Action          string   `json:"action"`
	Deviation       bool     `json:"deviation"`
	RunningCount    int      `json:"running_count"`
	TrueCount       float64  `json:"true_count"`
	BustProbability float64  `json:"bust_probability,omitempty"`
	RecordedAt      int64    `json:"recorded_at"`
}

// SessionSummary describes one shoe session.
type SessionSummary struct {
	SessionID    string  `json:"session_id"`
	NumDecks     int     `json:"num_decks"`
	HandsPlayed  int     `json:"hands_played"`
	FinalRunning int     `json:"final_running"`
	FinalTrue    float64 `json:"final_true"`
	StartedAt    int64   `json:"started_at"`
}

// Store is a Redis-backed hand history for one advisor session.
type Store struct {
	client    *redis.Client
	sessionID string
}

// NewStore creates a store under a fresh session ID.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client:    client,
		sessionID: uuid.NewString(),
	}
}

// SessionID returns the ID records are keyed under.
func (s *Store) SessionID() string {
	return s.sessionID
}

func (s *Store) handsKey() string {
	return sessionKeyPrefix + s.sessionID + handsKeySuffix
}

func (s *Store) summaryKey() string {
	return sessionKeyPrefix + s.sessionID
}

// AppendHand appends one decision record to the session's hand list.
func (s *Store) AppendHand(ctx context.Context, rec HandRecord) error {
	if rec.RecordedAt == 0 {
		rec.RecordedAt = time.Now().Unix()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to serialize hand record: %w", err)
	}

	key := s.handsKey()
	if err := s.client.RPush(ctx, key, data).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, sessionExpiration).Err()
}

// Hands returns all recorded hands for the session in order.
func (s *Store) Hands(ctx context.Context) ([]HandRecord, error) {
	items, err := s.client.LRange(ctx, s.handsKey(), 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	records := make([]HandRecord, 0, len(items))
	for _, item := range items {
		var rec HandRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("failed to deserialize hand record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// SaveSummary stores the session summary snapshot.
func (s *Store) SaveSummary(ctx context.Context, summary SessionSummary) error {
	summary.SessionID = s.sessionID

	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to serialize session summary: %w", err)
	}

	return s.client.Set(ctx, s.summaryKey(), data, sessionExpiration).Err()
}

// LoadSummary returns the stored summary, or nil when none exists.
func (s *Store) LoadSummary(ctx context.Context) (*SessionSummary, error) {
	data, err := s.client.Get(ctx, s.summaryKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var summary SessionSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to deserialize session summary: %w", err)
	}
	return &summary, nil
}
