package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
	"github.com/google/uuid"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider ports.AuthProvider
	Sessions ports.SessionStore
	Roles    *RoleService
	Logger   *slog.Logger

	// SessionTTL caps session lifetime regardless of IdP token expiry.
	SessionTTL time.Duration
}

// AuthService orchestrates authentication flows by coordinating the
// provider, role resolution, and session persistence.
type AuthService struct {
	provider   ports.AuthProvider
	sessions   ports.SessionStore
	roles      *RoleService
	logger     *slog.Logger
	sessionTTL time.Duration
}

var errSessionExpired = errors.New("session expired")

// ErrSessionExpired reports whether err marks an expired session.
func ErrSessionExpired(err error) bool { return errors.Is(err, errSessionExpired) }

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AuthService{
		provider:   opts.Provider,
		sessions:   opts.Sessions,
		roles:      opts.Roles,
		logger:     logger,
		sessionTTL: ttl,
	}
}

// BeginLoginResult contains the result of beginning a login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin initiates an authentication flow and returns the provider auth URL with state and nonce.
func (s *AuthService) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, nonce, err := s.provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{
		AuthURL: authURL,
		State:   state,
		Nonce:   nonce,
	}, nil
}

// CompleteLoginInput groups parameters for completing a login flow.
type CompleteLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteLoginResult contains the result of completing a login flow.
type CompleteLoginResult struct {
	Session domainauth.Session
}

// CompleteLogin completes an authentication flow: it exchanges the code
// for an identity, resolves the marketplace role, and persists a session.
//
// Role resolution is best effort. If the backend cannot be reached the
// session is saved with RoleUnknown, which grants no role-specific
// capability; the role resolver retries lazily on the next request.
func (s *AuthService) CompleteLogin(ctx context.Context, input CompleteLoginInput) (*CompleteLoginResult, error) {
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}

	identity, err := s.provider.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	expiresAt := identity.ExpiresAt
	if limit := time.Now().Add(s.sessionTTL); expiresAt.IsZero() || expiresAt.After(limit) {
		expiresAt = limit
	}

	session := domainauth.Session{
		ID:         generateSessionID(),
		UserID:     identity.UserID,
		Name:       identity.Name,
		Email:      identity.Email,
		PictureURL: identity.PictureURL,
		Role:       domainauth.RoleUnknown,
		Token:      identity.Token,
		ExpiresAt:  expiresAt,
	}

	if s.roles != nil {
		role, roleErr := s.roles.Resolve(ctx, session)
		if roleErr != nil {
			s.logger.Warn("role resolution failed at login, continuing without role",
				"email", session.Email, "error", roleErr)
		} else {
			session.Role = role
		}
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &CompleteLoginResult{Session: session}, nil
}

// GetSession retrieves a session by ID.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// RefreshRole re-resolves the session's role and persists the result
// when it changed. Used after role-upgrade requests are accepted.
func (s *AuthService) RefreshRole(ctx context.Context, session domainauth.Session) (domainauth.Session, error) {
	if s.roles == nil {
		return session, nil
	}
	s.roles.Invalidate(session.Email)
	role, err := s.roles.Resolve(ctx, session)
	if err != nil {
		return session, fmt.Errorf("resolve role: %w", err)
	}
	if role == session.Role {
		return session, nil
	}
	session.Role = role
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return session, fmt.Errorf("save session: %w", saveErr)
	}
	return session, nil
}

// Logout removes a session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	return uuid.New().String()
}
