package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
	"golang.org/x/sync/singleflight"
)

const defaultRoleCacheTTL = 5 * time.Minute

// RoleServiceOptions groups dependencies for RoleService.
type RoleServiceOptions struct {
	Backends ports.BackendProvider
	Logger   *slog.Logger

	// CacheTTL bounds how long a resolved role is reused before the
	// backend is consulted again. Zero uses the 5 minute default.
	CacheTTL time.Duration
}

// RoleService resolves a session's marketplace role from the backend
// user directory, keyed by email.
//
// Resolution is only attempted for settled sessions (concrete user ID
// and email); anything else resolves to RoleUnknown without a backend
// call. Concurrent resolutions for the same email are collapsed into a
// single backend request, and results are cached briefly so menu and
// route checks do not hammer the directory.
type RoleService struct {
	backends ports.BackendProvider
	logger   *slog.Logger
	cacheTTL time.Duration

	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]roleEntry
}

type roleEntry struct {
	role      domainauth.Role
	expiresAt time.Time
}

// NewRoleService constructs a RoleService.
func NewRoleService(opts RoleServiceOptions) *RoleService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = defaultRoleCacheTTL
	}
	return &RoleService{
		backends: opts.Backends,
		logger:   logger,
		cacheTTL: ttl,
		cache:    make(map[string]roleEntry),
	}
}

// Resolve returns the role for the session's email. Unsettled sessions
// resolve to RoleUnknown immediately.
func (s *RoleService) Resolve(ctx context.Context, sess domainauth.Session) (domainauth.Role, error) {
	if !sess.Settled() {
		return domainauth.RoleUnknown, nil
	}

	if role, ok := s.cached(sess.Email); ok {
		return role, nil
	}

	v, err, _ := s.group.Do(sess.Email, func() (any, error) {
		role, lookupErr := s.backends.For(&sess).Users.RoleOf(ctx, sess.Email)
		if lookupErr != nil {
			return domainauth.RoleUnknown, fmt.Errorf("look up role for %s: %w", sess.Email, lookupErr)
		}
		s.store(sess.Email, role)
		return role, nil
	})
	if err != nil {
		return domainauth.RoleUnknown, err
	}
	return v.(domainauth.Role), nil
}

// Invalidate drops the cached role for an email, forcing the next
// Resolve to consult the backend.
func (s *RoleService) Invalidate(email string) {
	s.mu.Lock()
	delete(s.cache, email)
	s.mu.Unlock()
}

func (s *RoleService) cached(email string) (domainauth.Role, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cache[email]
	if !ok || time.Now().After(entry.expiresAt) {
		return domainauth.RoleUnknown, false
	}
	return entry.role, true
}

func (s *RoleService) store(email string, role domainauth.Role) {
	s.mu.Lock()
	s.cache[email] = roleEntry{role: role, expiresAt: time.Now().Add(s.cacheTTL)}
	s.mu.Unlock()
}
