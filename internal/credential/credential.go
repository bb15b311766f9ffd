// Package credential decides which bearer token an authenticated proxy call
// uses: the caller's own token when supplied, otherwise a process-wide
// fallback credential that may be cached, refreshed, or statically configured.
package credential

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/atharv2285/Stage-portdesign/internal/domain"
)

// Credential is a bearer token for an upstream API. A zero ExpiresAt means
// the token does not expire.
type Credential struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the credential is past its expiry at the given time.
func (c Credential) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Store holds the single cached fallback credential. Implementations must
// tolerate concurrent reads and redundant writes; last writer wins.
type Store interface {
	Get(ctx context.Context) (*Credential, error)
	Set(ctx context.Context, cred Credential) error
}

// Source fetches a fresh fallback credential, e.g. from a connector service.
type Source interface {
	Fetch(ctx context.Context) (Credential, error)
}

// MemoryStore is the in-process Store used when no Redis is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	cred *Credential
}

// NewMemoryStore creates an empty in-memory credential store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get returns the cached credential, or nil when none has been stored.
func (m *MemoryStore) Get(context.Context) (*Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.cred == nil {
		return nil, nil
	}
	cred := *m.cred
	return &cred, nil
}

// Set replaces the cached credential.
func (m *MemoryStore) Set(_ context.Context, cred Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cred = &cred
	return nil
}

// Resolver picks the credential for an authenticated upstream call.
type Resolver struct {
	store  Store
	source Source
	static string
	now    func() time.Time
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithSource attaches a refresher for the fallback credential.
func WithSource(source Source) Option {
	return func(r *Resolver) { r.source = source }
}

// WithStaticToken sets an environment-configured fallback token.
func WithStaticToken(token string) Option {
	return func(r *Resolver) { r.static = strings.TrimSpace(token) }
}

// WithClock injects the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// NewResolver creates a Resolver backed by the given store.
func NewResolver(store Store, opts ...Option) *Resolver {
	r := &Resolver{store: store, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the token to use upstream. Priority: inbound bearer token,
// cached unexpired fallback, refreshed fallback, static configured token.
// A refresh race between concurrent requests performs redundant fetches; both
// results are valid and the last write wins.
func (r *Resolver) Resolve(ctx context.Context, authorization string) (string, error) {
	if token, ok := bearerToken(authorization); ok {
		return token, nil
	}

	if r.store != nil {
		cred, err := r.store.Get(ctx)
		if err == nil && cred != nil && cred.Token != "" && !cred.Expired(r.now()) {
			return cred.Token, nil
		}
	}

	if r.source != nil {
		cred, err := r.source.Fetch(ctx)
		if err != nil {
			return "", domain.NewAuthentication("Failed to refresh fallback credential")
		}
		if r.store != nil {
			// Best effort: a failed cache write only costs the next request
			// another fetch.
			_ = r.store.Set(ctx, cred)
		}
		return cred.Token, nil
	}

	if r.static != "" {
		return r.static, nil
	}

	return "", domain.NewAuthentication("Authorization token required")
}

func bearerToken(authorization string) (string, bool) {
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
