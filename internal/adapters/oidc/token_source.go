package oidc

import (
	"context"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	apperrors "github.com/SowvikSuvo/chefbazaar-gateway/internal/errors"
	"golang.org/x/oauth2"
)

// TokenSource mints bearer tokens for backend calls from a session's
// stored credential material. Every call builds a fresh oauth2 token
// source from the session; nothing is cached on the adapter, so a
// refresh performed by oauth2 under the hood is picked up immediately
// and a revoked credential fails at the very next call.
type TokenSource struct {
	config *oauth2.Config
}

// NewTokenSource creates a token source backed by the provider's oauth2 config.
func NewTokenSource(p *Provider) *TokenSource {
	return &TokenSource{config: p.OAuthConfig()}
}

func (ts *TokenSource) Token(ctx context.Context, sess domainauth.Session) (string, error) {
	seed := &oauth2.Token{
		AccessToken:  sess.Token.AccessToken,
		RefreshToken: sess.Token.RefreshToken,
		Expiry:       sess.Token.Expiry,
	}
	tok, err := ts.config.TokenSource(ctx, seed).Token()
	if err != nil {
		return "", apperrors.TokenRetrieval("mint bearer token", err)
	}
	if tok.AccessToken == "" {
		return "", apperrors.TokenRetrieval("mint bearer token", nil)
	}
	return tok.AccessToken, nil
}
