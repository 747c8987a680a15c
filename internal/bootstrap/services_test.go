package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SowvikSuvo/chefbazaar-gateway/config"
	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
	mocksauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/mocks/auth"
)

func testAppConfig() *config.AppConfig {
	return &config.AppConfig{
		Auth: config.AuthConfig{
			Mode:       config.AuthModeMock,
			SessionTTL: time.Hour,
			DevAuth: config.DevAuthConfig{
				UserID: "dev-user",
				Email:  "dev@example.com",
				Name:   "Dev User",
			},
		},
		Backend: config.BackendConfig{
			BaseURL: "http://localhost:5000",
			Timeout: time.Second,
		},
		SearchDebounce: 50 * time.Millisecond,
	}
}

func TestNewServices_BuildsFullContainer(t *testing.T) {
	cfg := testAppConfig()
	auth, err := BuildAuthComponents(cfg.Auth, nil)
	require.NoError(t, err)

	services := NewServices(&ServiceDeps{
		Config:   cfg,
		Sessions: mocksauth.NewMemorySessionStore(),
		Auth:     auth,
	})

	assert.NotNil(t, services.Auth)
	assert.NotNil(t, services.Roles)
	assert.NotNil(t, services.Meals)
	assert.NotNil(t, services.Orders)
	assert.NotNil(t, services.Reviews)
	assert.NotNil(t, services.Favorites)
	assert.NotNil(t, services.Users)
	assert.NotNil(t, services.Requests)
	assert.NotNil(t, services.Stats)
}

func TestNewServices_BackendRejectionDeletesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	cfg := testAppConfig()
	cfg.Backend.BaseURL = srv.URL

	auth, err := BuildAuthComponents(cfg.Auth, nil)
	require.NoError(t, err)

	sessions := mocksauth.NewMemorySessionStore()
	sess := domainauth.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		Email:     "user@example.com",
		Role:      domainauth.RoleUser,
		Token:     domainauth.TokenMaterial{AccessToken: "dev-token-1"},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, sessions.Save(context.Background(), sess))

	services := NewServices(&ServiceDeps{
		Config:   cfg,
		Sessions: sessions,
		Auth:     auth,
	})

	_, _, err = services.Orders.MyOrders(context.Background(), &sess, model.ListQuery{})
	require.Error(t, err)
	assert.Zero(t, sessions.Len(), "a backend credential rejection must remove the session")
}

func TestValidateServices(t *testing.T) {
	assert.NoError(t, ValidateServices())
}

func TestBuildHTTPHandler_ServesHealthz(t *testing.T) {
	cfg := testAppConfig()
	auth, err := BuildAuthComponents(cfg.Auth, nil)
	require.NoError(t, err)

	services := NewServices(&ServiceDeps{
		Config:   cfg,
		Sessions: mocksauth.NewMemorySessionStore(),
		Auth:     auth,
	})

	handler := BuildHTTPHandler(&HTTPServerConfig{Config: cfg, Services: services})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
