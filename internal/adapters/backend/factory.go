package backend

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
)

// Provider implements ports.BackendProvider. Each call to For builds a
// fresh session-scoped Client; the forced sign-out guard is held here,
// keyed by session ID, so the one-sign-out-per-session guarantee spans
// every client ever built for that session.
type Provider struct {
	cfg ClientConfig

	mu       sync.Mutex
	signOuts map[string]*sync.Once
}

// ProviderConfig holds the shared pieces for building session clients.
type ProviderConfig struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Tokens     ports.TokenSource
	SignOut    SignOutFunc
}

// NewProvider creates a backend provider.
func NewProvider(cfg ProviderConfig) *Provider {
	p := &Provider{signOuts: make(map[string]*sync.Once)}
	p.cfg = ClientConfig{
		BaseURL:    cfg.BaseURL,
		HTTPClient: cfg.HTTPClient,
		Logger:     cfg.Logger,
		Tokens:     cfg.Tokens,
		SignOut:    p.signOutOnce(cfg.SignOut),
	}
	return p
}

// signOutOnce wraps the sign-out callback so it fires at most once per
// session ID, no matter how many clients observe a credential rejection
// for that session. Guard entries are only created when a session's
// credentials are rejected; the session itself is gone right after, so
// the map stays proportional to forced sign-outs, not to traffic.
func (p *Provider) signOutOnce(signOut SignOutFunc) SignOutFunc {
	if signOut == nil {
		return nil
	}
	return func(ctx context.Context, sessionID string) {
		p.mu.Lock()
		once, ok := p.signOuts[sessionID]
		if !ok {
			once = new(sync.Once)
			p.signOuts[sessionID] = once
		}
		p.mu.Unlock()

		once.Do(func() { signOut(ctx, sessionID) })
	}
}

// For builds the typed API bundle for a session. A nil session yields
// an unauthenticated bundle usable for public endpoints only.
func (p *Provider) For(sess *domainauth.Session) ports.Backend {
	c := NewClient(p.cfg, sess)
	return ports.Backend{
		Meals:     &MealClient{c: c},
		Orders:    &OrderClient{c: c},
		Reviews:   &ReviewClient{c: c},
		Favorites: &FavoriteClient{c: c},
		Users:     &UserClient{c: c},
		Requests:  &RequestClient{c: c},
		Stats:     &StatsClient{c: c},
	}
}
