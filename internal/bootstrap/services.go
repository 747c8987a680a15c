package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SowvikSuvo/chefbazaar-gateway/config"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/adapters/backend"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/search"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/service"
)

// ServiceContainer holds all gateway services.
type ServiceContainer struct {
	Auth      *service.AuthService
	Roles     *service.RoleService
	Meals     *service.MealService
	Orders    *service.OrderService
	Reviews   *service.ReviewService
	Favorites *service.FavoriteService
	Users     *service.UserAdminService
	Requests  *service.RoleRequestService
	Stats     *service.StatsService
}

// ServiceDeps groups what NewServices needs to assemble the container.
type ServiceDeps struct {
	Config   *config.AppConfig
	Sessions ports.SessionStore
	Auth     *AuthComponents
	Logger   *slog.Logger
}

// NewServices wires the full service graph.
//
// The backend provider's sign-out hook deletes the session directly in
// the store rather than going through the auth service; the auth
// service itself depends on role resolution, which depends on the
// backend provider, and the direct delete keeps that chain acyclic.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	signOut := func(ctx context.Context, sessionID string) {
		if err := deps.Sessions.Delete(ctx, sessionID); err != nil {
			logger.ErrorContext(ctx, "forced sign-out could not delete session",
				"session_id", sessionID, "error", err)
		}
	}

	timeout := cfg.Backend.Timeout
	if timeout <= 0 {
		timeout = defaultBackendTimeout
	}

	backends := backend.NewProvider(backend.ProviderConfig{
		BaseURL:    cfg.Backend.BaseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     logger,
		Tokens:     deps.Auth.Tokens,
		SignOut:    signOut,
	})

	roles := service.NewRoleService(service.RoleServiceOptions{
		Backends: backends,
		Logger:   logger,
	})

	auth := service.NewAuthService(service.AuthServiceOptions{
		Provider:   deps.Auth.Provider,
		Sessions:   deps.Sessions,
		Roles:      roles,
		Logger:     logger,
		SessionTTL: cfg.Auth.SessionTTL,
	})

	meals := service.NewMealService(service.MealServiceOptions{
		Backends: backends,
		Debounce: search.NewDebouncer(cfg.SearchDebounce),
		Logger:   logger,
	})

	return ServiceContainer{
		Auth:      auth,
		Roles:     roles,
		Meals:     meals,
		Orders:    service.NewOrderService(service.OrderServiceOptions{Backends: backends, Logger: logger}),
		Reviews:   service.NewReviewService(backends),
		Favorites: service.NewFavoriteService(backends),
		Users:     service.NewUserAdminService(service.UserAdminServiceOptions{Backends: backends, Roles: roles, Logger: logger}),
		Requests:  service.NewRoleRequestService(service.RoleRequestServiceOptions{Backends: backends, Roles: roles, Logger: logger}),
		Stats:     service.NewStatsService(backends),
	}
}

// ValidateServices runs startup sanity checks so a broken stats
// projection fails fast instead of surfacing as a 500 on the admin page.
func ValidateServices() error {
	return service.ValidateProjections()
}

// defaultBackendTimeout is used when the configured timeout is zero.
const defaultBackendTimeout = 30 * time.Second
