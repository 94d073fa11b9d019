package booking

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"skylane/models"
	"skylane/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// KeyValueStore is the boundary the session store persists through. Redis is
// the production implementation; tests use an in-memory one.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// RedisKV adapts a go-redis client to the KeyValueStore boundary.
type RedisKV struct {
	Client *redis.Client
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (r *RedisKV) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	return r.Client.Del(ctx, key).Err()
}

func (r *RedisKV) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RedisKV) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return r.Client.Expire(ctx, key, ttl).Err()
}

// SessionStore persists booking session records with a sliding TTL. Saves are
// fatal on store failure because the caller has no safe fallback; reads,
// deletes and extends fail soft so an unreachable store degrades to "no
// session" instead of blocking the user.
type SessionStore struct {
	KV  KeyValueStore
	TTL time.Duration
}

// NewSessionStore returns a store with the standard sliding window.
func NewSessionStore(kv KeyValueStore) *SessionStore {
	return &SessionStore{KV: kv, TTL: utils.SessionTTL}
}

// GenerateSessionID produces a new session identifier. Timestamp plus a
// random suffix is unique enough here: a collision overwrites a stale record
// and self-heals.
func GenerateSessionID() string {
	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), hex.EncodeToString(suffix))
}

func sessionKey(sessionID string) string {
	return utils.BookingSessionPrefix + sessionID
}

// Save writes the record under its session key, fully replacing any previous
// record and resetting the TTL to the full window.
func (s *SessionStore) Save(ctx context.Context, sessionID string, rec *models.SessionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.KV.SetWithTTL(ctx, sessionKey(sessionID), data, s.TTL); err != nil {
		return fmt.Errorf("failed to save booking session: %w", err)
	}
	return nil
}

// Load reads and decodes the record for a session. Missing keys, store errors
// and structurally invalid payloads all report absent rather than failing.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (*models.SessionRecord, bool) {
	data, found, err := s.KV.Get(ctx, sessionKey(sessionID))
	if err != nil {
		zap.L().Warn("booking session load failed, treating as absent",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, false
	}
	if !found {
		return nil, false
	}
	var rec models.SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		zap.L().Warn("booking session record is malformed, treating as absent",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, false
	}
	return &rec, true
}

// Clear deletes the session. Clearing an absent or already-cleared session is
// a no-op, never an error.
func (s *SessionStore) Clear(ctx context.Context, sessionID string) {
	if err := s.KV.Delete(ctx, sessionKey(sessionID)); err != nil {
		zap.L().Warn("booking session clear failed",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}

// IsValid reports whether the session key currently exists in the store.
func (s *SessionStore) IsValid(ctx context.Context, sessionID string) bool {
	exists, err := s.KV.Exists(ctx, sessionKey(sessionID))
	if err != nil {
		zap.L().Warn("booking session existence check failed",
			zap.String("sessionID", sessionID), zap.Error(err))
		return false
	}
	return exists
}

// Extend resets the TTL to the full window without touching the content.
func (s *SessionStore) Extend(ctx context.Context, sessionID string) {
	if err := s.KV.Expire(ctx, sessionKey(sessionID), s.TTL); err != nil {
		zap.L().Warn("booking session extend failed",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}
