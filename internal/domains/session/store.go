package session

import (
	"context"
	"sync"
	"time"

	"libreria-storefront/pkg/cache"
)

// Store holds the raw session token between requests. It is the only
// component allowed to mutate the stored session; everything else reads
// through the Gate.
type Store interface {
	// Token returns the stored token, or false when none is stored.
	Token(ctx context.Context) (string, bool)

	// Save replaces the stored token.
	Save(ctx context.Context, token string) error

	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}

// MemoryStore keeps the token in process memory, the client-side
// equivalent of browser storage.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token(_ context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.set
}

func (s *MemoryStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}

// RedisStore keeps the token in Redis keyed per client, for storefront
// instances that run server-side and serve more than one device.
type RedisStore struct {
	cache    cache.Cache
	clientID string
	ttl      time.Duration
}

func NewRedisStore(c cache.Cache, clientID string, ttl time.Duration) *RedisStore {
	return &RedisStore{cache: c, clientID: clientID, ttl: ttl}
}

func (s *RedisStore) key() string {
	return "session:" + s.clientID
}

func (s *RedisStore) Token(ctx context.Context) (string, bool) {
	var token string
	found, err := s.cache.Get(ctx, s.key(), &token)
	if err != nil || !found {
		// Fail-safe: an unreadable store is an anonymous session.
		return "", false
	}
	return token, true
}

func (s *RedisStore) Save(ctx context.Context, token string) error {
	return s.cache.Set(ctx, s.key(), token, s.ttl)
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.cache.Delete(ctx, s.key())
}
