package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/SowvikSuvo/chefbazaar-gateway/config"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/adapters/devauth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/adapters/oidc"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
)

// AuthComponents bundles the identity provider with its token source.
// Both must come from the same provider so session token material stays
// consistent between login and backend calls.
type AuthComponents struct {
	Provider ports.AuthProvider
	Tokens   ports.TokenSource
}

// BuildAuthComponents creates the auth provider and token source for the
// configured auth mode.
func BuildAuthComponents(cfg config.AuthConfig, logger *slog.Logger) (*AuthComponents, error) {
	switch cfg.Mode {
	case config.AuthModeMock:
		return buildDevAuth(cfg, logger)
	case config.AuthModeOAuth:
		return buildOAuth(cfg)
	default:
		return nil, fmt.Errorf("unsupported auth mode %q", cfg.Mode)
	}
}

func buildDevAuth(cfg config.AuthConfig, logger *slog.Logger) (*AuthComponents, error) {
	if logger != nil {
		logger.Warn("mock auth enabled; do not use outside development",
			"user_id", cfg.DevAuth.UserID, "email", cfg.DevAuth.Email)
	}
	prov, err := devauth.NewProvider(devauth.Config{
		UserID: cfg.DevAuth.UserID,
		Email:  cfg.DevAuth.Email,
		Name:   cfg.DevAuth.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("create dev auth provider: %w", err)
	}
	return &AuthComponents{Provider: prov, Tokens: devauth.NewTokenSource()}, nil
}

func buildOAuth(cfg config.AuthConfig) (*AuthComponents, error) {
	oauth := cfg.OAuth
	if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
		return nil, fmt.Errorf("oauth mode requires OAUTH_DISCOVERY_URL, OAUTH_CLIENT_ID, and OAUTH_CLIENT_SECRET")
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  oauth.RedirectURL,
		Scope:        oauth.Scope,
		DiscoveryURL: oauth.DiscoveryURL,
		LogoutURL:    oauth.LogoutURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create OIDC provider: %w", err)
	}
	return &AuthComponents{Provider: prov, Tokens: oidc.NewTokenSource(prov)}, nil
}
