package gateway

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MemoryActiveSessions keeps the cashier → session pointers in process. It
// suits a single server instance and tests.
type MemoryActiveSessions struct {
	mu       sync.RWMutex
	sessions map[uint]uint
}

func NewMemoryActiveSessions() *MemoryActiveSessions {
	return &MemoryActiveSessions{sessions: make(map[uint]uint)}
}

func (m *MemoryActiveSessions) Current(_ context.Context, cashierID uint) (uint, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.sessions[cashierID]
	return id, ok, nil
}

func (m *MemoryActiveSessions) Set(_ context.Context, cashierID, sessionID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[cashierID] = sessionID
	return nil
}

func (m *MemoryActiveSessions) ClearIf(_ context.Context, cashierID, sessionID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.sessions[cashierID]; !ok || id != sessionID {
		return false, nil
	}
	delete(m.sessions, cashierID)
	return true, nil
}

const (
	activeSessionKeyPrefix = "cashdesk:active_session:"
	clearRetries           = 3
)

// RedisActiveSessions shares the cashier → session pointers between server
// instances. Keys are cashdesk:active_session:<cashier id>.
type RedisActiveSessions struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisActiveSessions uses client; a zero ttl keeps pointers until cleared.
func NewRedisActiveSessions(client *redis.Client, ttl time.Duration) *RedisActiveSessions {
	return &RedisActiveSessions{client: client, ttl: ttl}
}

func activeSessionKey(cashierID uint) string {
	return activeSessionKeyPrefix + strconv.FormatUint(uint64(cashierID), 10)
}

func (r *RedisActiveSessions) Current(ctx context.Context, cashierID uint) (uint, bool, error) {
	raw, err := r.client.Get(ctx, activeSessionKey(cashierID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis get active session of %d: %w", cashierID, err)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("active session of %d is %q: %w", cashierID, raw, err)
	}
	return uint(id), true, nil
}

func (r *RedisActiveSessions) Set(ctx context.Context, cashierID, sessionID uint) error {
	err := r.client.Set(ctx, activeSessionKey(cashierID), strconv.FormatUint(uint64(sessionID), 10), r.ttl).Err()
	if err != nil {
		return fmt.Errorf("redis set active session of %d: %w", cashierID, err)
	}
	return nil
}

// ClearIf deletes the pointer under WATCH, so a session opened concurrently
// by the same cashier is never cleared by mistake.
func (r *RedisActiveSessions) ClearIf(ctx context.Context, cashierID, sessionID uint) (bool, error) {
	key := activeSessionKey(cashierID)
	want := strconv.FormatUint(uint64(sessionID), 10)

	for attempt := 0; attempt < clearRetries; attempt++ {
		cleared := false
		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			cur, err := tx.Get(ctx, key).Result()
			if errors.Is(err, redis.Nil) {
				return nil
			}
			if err != nil {
				return err
			}
			if cur != want {
				return nil
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Del(ctx, key)
				return nil
			})
			if err == nil {
				cleared = true
			}
			return err
		}, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("redis clear active session of %d: %w", cashierID, err)
		}
		return cleared, nil
	}
	return false, fmt.Errorf("redis clear active session of %d: %w", cashierID, redis.TxFailedErr)
}
