package auth

import (
	"context"
	"time"

	"orderdash/internal/cache"
)

const revokedSessionKeyPrefix = "revoked:session:"

// SessionStoreInterface defines the interface for session revocation storage.
type SessionStoreInterface interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

// SessionStore records revoked sessions in Redis. A revoked entry lives only
// as long as the token it shadows would have.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// Revoke marks a session as logged out until its token expires.
func (s *SessionStore) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	key := revokedSessionKeyPrefix + sessionID
	// Store a simple marker
	return s.cache.Set(ctx, key, []byte("1"), ttl)
}

// IsRevoked checks if a session has been revoked.
func (s *SessionStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	key := revokedSessionKeyPrefix + sessionID
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false, nil // Not revoked if redis unavailable (fail open)
	}
	return data != nil, nil
}
