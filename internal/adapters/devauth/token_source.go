package devauth

import (
	"context"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	apperrors "github.com/SowvikSuvo/chefbazaar-gateway/internal/errors"
)

// TokenSource returns the session's stored dev token verbatim.
// The dev backend accepts any bearer of the dev-token-* shape.
type TokenSource struct{}

// NewTokenSource creates a dev token source.
func NewTokenSource() *TokenSource { return &TokenSource{} }

func (*TokenSource) Token(_ context.Context, sess domainauth.Session) (string, error) {
	if sess.Token.AccessToken == "" {
		return "", apperrors.TokenRetrieval("session has no dev token", nil)
	}
	return sess.Token.AccessToken, nil
}
