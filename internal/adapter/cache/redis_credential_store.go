package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/atharv2285/Stage-portdesign/internal/credential"
)

const credentialKey = "gateway:credential:fallback"

// RedisCredentialStore implements credential.Store backed by Redis, so the
// cached fallback credential survives restarts and is shared across replicas.
type RedisCredentialStore struct {
	client redis.UniversalClient
}

var _ credential.Store = (*RedisCredentialStore)(nil)

// NewRedisCredentialStore constructs a Redis-backed credential store.
func NewRedisCredentialStore(client redis.UniversalClient) *RedisCredentialStore {
	return &RedisCredentialStore{client: client}
}

// Get loads and decodes the cached credential, nil when absent.
func (s *RedisCredentialStore) Get(ctx context.Context) (*credential.Credential, error) {
	bytes, err := s.client.Get(ctx, credentialKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("load credential: %w", err)
	}
	var cred credential.Credential
	if err := json.Unmarshal(bytes, &cred); err != nil {
		return nil, fmt.Errorf("decode credential: %w", err)
	}
	return &cred, nil
}

// Set stores the encoded credential. Expiry is tracked inside the payload,
// not via a Redis TTL, so the resolver's clock stays the single authority.
func (s *RedisCredentialStore) Set(ctx context.Context, cred credential.Credential) error {
	payload, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("marshal credential: %w", err)
	}
	if err := s.client.Set(ctx, credentialKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}
	return nil
}
