package devauth

import (
	"context"
	"strings"
	"testing"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
)

func TestProvider_BeginAndExchange(t *testing.T) {
	prov, err := NewProvider(Config{UserID: "dev-user", Email: "dev@example.com", Name: "Dev User"})
	if err != nil {
		t.Fatalf("NewProvider error: %v", err)
	}
	url, state, nonce, err := prov.Begin(context.Background(), ports.BeginInput{RedirectURL: "/"})
	if err != nil {
		t.Fatalf("Begin error: %v", err)
	}
	if !strings.HasPrefix(url, "/auth/callback?") {
		t.Fatalf("unexpected authURL: %s", url)
	}
	if state == "" || nonce == "" {
		t.Fatal("state and nonce should be generated")
	}
	id, err := prov.Exchange(context.Background(), ports.ExchangeInput{Code: "dev", State: state, Nonce: nonce})
	if err != nil {
		t.Fatalf("Exchange error: %v", err)
	}
	if id.UserID != "dev-user" || id.Email != "dev@example.com" {
		t.Fatalf("unexpected identity: %+v", id)
	}
	if id.Token.AccessToken == "" {
		t.Fatal("dev identity should carry token material")
	}
}

func TestTokenSource(t *testing.T) {
	ts := NewTokenSource()
	sess := domainauth.Session{Token: domainauth.TokenMaterial{AccessToken: "dev-token-x"}}

	tok, err := ts.Token(context.Background(), sess)
	if err != nil {
		t.Fatalf("Token error: %v", err)
	}
	if tok != "dev-token-x" {
		t.Fatalf("unexpected token: %s", tok)
	}

	if _, err := ts.Token(context.Background(), domainauth.Session{}); err == nil {
		t.Fatal("expected error for empty token material")
	}
}
