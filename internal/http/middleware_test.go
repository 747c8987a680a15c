package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/service"
)

// stubAuthService is a test double for AuthServiceInterface.
type stubAuthService struct {
	getSessionFunc func(ctx context.Context, sessionID string) (*domainauth.Session, error)
	beginFunc      func(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	completeFunc   func(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error)
	logoutFunc     func(ctx context.Context, sessionID string) error
	refreshFunc    func(ctx context.Context, session domainauth.Session) (domainauth.Session, error)
}

func (m *stubAuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if m.getSessionFunc != nil {
		return m.getSessionFunc(ctx, sessionID)
	}
	return &domainauth.Session{
		ID:        sessionID,
		UserID:    "test-user",
		Email:     "test@example.com",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (m *stubAuthService) BeginLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error) {
	if m.beginFunc != nil {
		return m.beginFunc(ctx, redirectURL)
	}
	return nil, errors.New("not implemented")
}

func (m *stubAuthService) CompleteLogin(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error) {
	if m.completeFunc != nil {
		return m.completeFunc(ctx, input)
	}
	return nil, errors.New("not implemented")
}

func (m *stubAuthService) RefreshRole(ctx context.Context, session domainauth.Session) (domainauth.Session, error) {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx, session)
	}
	return session, nil
}

func (m *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, sessionID)
	}
	return nil
}

func sessionWithRole(role domainauth.Role) func(context.Context, string) (*domainauth.Session, error) {
	return func(_ context.Context, sessionID string) (*domainauth.Session, error) {
		return &domainauth.Session{
			ID:        sessionID,
			UserID:    "test-user",
			Email:     "test@example.com",
			Role:      role,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil
	}
}

func noSession(context.Context, string) (*domainauth.Session, error) {
	return nil, errors.New("session not found")
}

func TestRequireSession_Success(t *testing.T) {
	handler := RequireSession(&stubAuthService{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := GetSessionFromContext(r.Context())
		require.NotNil(t, session)
		assert.Equal(t, "test-session-id", session.ID)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders/mine", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "test-session-id"})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireSession_APIRequestGets401(t *testing.T) {
	handler := RequireSession(&stubAuthService{getSessionFunc: noSession})(http.HandlerFunc(
		func(http.ResponseWriter, *http.Request) {
			t.Error("handler should not be called")
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders/mine", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication_required")
}

func TestRequireSession_BrowserRedirectsToLogin(t *testing.T) {
	handler := RequireSession(&stubAuthService{getSessionFunc: noSession})(http.HandlerFunc(
		func(http.ResponseWriter, *http.Request) {
			t.Error("handler should not be called")
		}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/my-orders?page=2", nil)
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	assert.Contains(t, location, "/auth/login?redirect_uri=")
	assert.Contains(t, location, "%2Fdashboard%2Fmy-orders%3Fpage%3D2",
		"the original URI survives the round trip through login")
}

func TestRequireRole_ExactMatchOnly(t *testing.T) {
	tests := []struct {
		name     string
		role     domainauth.Role
		required domainauth.Role
		want     int
	}{
		{name: "chef on chef route", role: domainauth.RoleChef, required: domainauth.RoleChef, want: http.StatusOK},
		{name: "admin on admin route", role: domainauth.RoleAdmin, required: domainauth.RoleAdmin, want: http.StatusOK},
		{name: "admin on chef route", role: domainauth.RoleAdmin, required: domainauth.RoleChef, want: http.StatusForbidden},
		{name: "customer on chef route", role: domainauth.RoleUser, required: domainauth.RoleChef, want: http.StatusForbidden},
		{name: "unresolved role on chef route", role: domainauth.RoleUnknown, required: domainauth.RoleChef, want: http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubAuthService{getSessionFunc: sessionWithRole(tc.role)}
			handler := RequireRole(svc, tc.required)(http.HandlerFunc(
				func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusOK)
				}))

			req := httptest.NewRequest(http.MethodGet, "/api/chef/meals", nil)
			req.AddCookie(&http.Cookie{Name: "session_id", Value: "s1"})
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRequireRole_NoSessionGets401(t *testing.T) {
	svc := &stubAuthService{getSessionFunc: noSession}
	handler := RequireRole(svc, domainauth.RoleAdmin)(http.HandlerFunc(
		func(http.ResponseWriter, *http.Request) {
			t.Error("handler should not be called")
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalSession(t *testing.T) {
	handler := OptionalSession(&stubAuthService{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess := GetSessionFromContext(r.Context()); sess != nil {
			WriteJSON(w, http.StatusOK, map[string]string{"user": sess.UserID})
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"user": ""})
	}))

	// With a cookie the session is attached
	req := httptest.NewRequest(http.MethodGet, "/api/meals", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "s1"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), "test-user")

	// Without a cookie the request continues anonymously
	req = httptest.NewRequest(http.MethodGet, "/api/meals", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"user":""`)
}

func TestIsBrowserRequest(t *testing.T) {
	api := httptest.NewRequest(http.MethodGet, "/api/meals", nil)
	api.Header.Set("Accept", "text/html")
	assert.False(t, isBrowserRequest(api), "API paths are never browser requests")

	page := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	page.Header.Set("Accept", "text/html,application/xhtml+xml")
	assert.True(t, isBrowserRequest(page))

	fetch := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	fetch.Header.Set("Accept", "application/json")
	assert.False(t, isBrowserRequest(fetch))
}
