package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      AuthServiceInterface
	Meals     *service.MealService
	Orders    *service.OrderService
	Reviews   *service.ReviewService
	Favorites *service.FavoriteService
	Users     *service.UserAdminService
	Requests  *service.RoleRequestService
	Stats     *service.StatsService

	CookieDomain string
	Logger       *slog.Logger // Logger for HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router with browser middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	mealHandlers := &MealHandlers{Svc: services.Meals}
	orderHandlers := &OrderHandlers{Svc: services.Orders}
	reviewHandlers := &ReviewHandlers{Svc: services.Reviews}
	favoriteHandlers := &FavoriteHandlers{Svc: services.Favorites}
	userHandlers := &UserAdminHandlers{Svc: services.Users}
	requestHandlers := &RoleRequestHandlers{Svc: services.Requests}
	statsHandlers := &StatsHandlers{Svc: services.Stats}
	profileHandlers := &ProfileHandlers{Users: services.Users}
	authHandlers := &AuthHandlers{Svc: services.Auth, CookieDomain: services.CookieDomain, Logger: services.Logger}

	registerAuthRoutes(mux, authHandlers, services.Auth)
	registerMealRoutes(mux, mealHandlers, reviewHandlers, services.Auth)
	registerCustomerRoutes(mux, customerHandlers{
		Orders:    orderHandlers,
		Reviews:   reviewHandlers,
		Favorites: favoriteHandlers,
		Profile:   profileHandlers,
		Requests:  requestHandlers,
	}, services.Auth)
	registerChefRoutes(mux, mealHandlers, orderHandlers, services.Auth)
	registerAdminRoutes(mux, adminHandlers{
		Users:    userHandlers,
		Requests: requestHandlers,
		Stats:    statsHandlers,
	}, services.Auth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Browser detection drives the redirect-vs-401 decision in the
	// session middleware.
	return BrowserDetection()(mux)
}

// registerAuthRoutes wires the sign-in lifecycle endpoints.
func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, authSvc AuthServiceInterface) {
	mux.Handle("GET /auth/login", http.HandlerFunc(h.Login))
	mux.Handle("GET /auth/callback", http.HandlerFunc(h.Callback))
	mux.Handle("POST /auth/logout", http.HandlerFunc(h.Logout))
	mux.Handle("GET /auth/logout", http.HandlerFunc(h.Logout))
	mux.Handle("GET /auth/signed-out", http.HandlerFunc(h.SignedOut))
	mux.Handle("GET /auth/status", http.HandlerFunc(h.Status))
	mux.Handle("POST /auth/refresh-role", RequireSession(authSvc)(http.HandlerFunc(h.RefreshRole)))
}

// registerMealRoutes wires the public catalog. A session is attached when
// present so browsing stays anonymous-friendly while signed-in users get
// per-session search debouncing.
func registerMealRoutes(mux *http.ServeMux, meals *MealHandlers, reviews *ReviewHandlers, authSvc AuthServiceInterface) {
	optional := OptionalSession(authSvc)
	mux.Handle("GET /api/meals", optional(http.HandlerFunc(meals.List)))
	mux.Handle("GET /api/meals/{id}", optional(http.HandlerFunc(meals.Get)))
	mux.Handle("GET /api/meals/{id}/reviews", optional(http.HandlerFunc(reviews.ForMeal)))
}

// customerHandlers groups handlers behind the session gate.
type customerHandlers struct {
	Orders    *OrderHandlers
	Reviews   *ReviewHandlers
	Favorites *FavoriteHandlers
	Profile   *ProfileHandlers
	Requests  *RoleRequestHandlers
}

// registerCustomerRoutes wires endpoints any signed-in user may call.
func registerCustomerRoutes(mux *http.ServeMux, h customerHandlers, authSvc AuthServiceInterface) {
	gated := RequireSession(authSvc)

	mux.Handle("POST /api/orders", gated(http.HandlerFunc(h.Orders.Place)))
	mux.Handle("GET /api/orders/mine", gated(http.HandlerFunc(h.Orders.Mine)))
	mux.Handle("GET /api/orders/{id}", gated(http.HandlerFunc(h.Orders.Get)))
	mux.Handle("POST /api/orders/{id}/cancel", gated(http.HandlerFunc(h.Orders.Cancel)))

	mux.Handle("GET /api/reviews/mine", gated(http.HandlerFunc(h.Reviews.Mine)))
	mux.Handle("POST /api/reviews", gated(http.HandlerFunc(h.Reviews.Create)))
	mux.Handle("PATCH /api/reviews/{id}", gated(http.HandlerFunc(h.Reviews.Update)))
	mux.Handle("DELETE /api/reviews/{id}", gated(http.HandlerFunc(h.Reviews.Delete)))

	mux.Handle("GET /api/favorites", gated(http.HandlerFunc(h.Favorites.Mine)))
	mux.Handle("POST /api/favorites", gated(http.HandlerFunc(h.Favorites.Add)))
	mux.Handle("DELETE /api/favorites/{id}", gated(http.HandlerFunc(h.Favorites.Remove)))

	mux.Handle("GET /api/profile", gated(http.HandlerFunc(h.Profile.Profile)))
	mux.Handle("GET /api/menu", gated(http.HandlerFunc(h.Profile.Menu)))

	mux.Handle("POST /api/requests", gated(http.HandlerFunc(h.Requests.Submit)))
}

// registerChefRoutes wires endpoints restricted to the chef role.
func registerChefRoutes(mux *http.ServeMux, meals *MealHandlers, orders *OrderHandlers, authSvc AuthServiceInterface) {
	chefOnly := RequireRole(authSvc, domainauth.RoleChef)

	mux.Handle("GET /api/chef/meals", chefOnly(http.HandlerFunc(meals.MyMeals)))
	mux.Handle("POST /api/chef/meals", chefOnly(http.HandlerFunc(meals.Create)))
	mux.Handle("PATCH /api/chef/meals/{id}", chefOnly(http.HandlerFunc(meals.Update)))
	mux.Handle("DELETE /api/chef/meals/{id}", chefOnly(http.HandlerFunc(meals.Delete)))

	mux.Handle("GET /api/chef/orders", chefOnly(http.HandlerFunc(orders.ChefOrders)))
	mux.Handle("PATCH /api/orders/{id}/status", chefOnly(http.HandlerFunc(orders.UpdateStatus)))
}

// adminHandlers groups handlers behind the admin gate.
type adminHandlers struct {
	Users    *UserAdminHandlers
	Requests *RoleRequestHandlers
	Stats    *StatsHandlers
}

// registerAdminRoutes wires endpoints restricted to the admin role.
func registerAdminRoutes(mux *http.ServeMux, h adminHandlers, authSvc AuthServiceInterface) {
	adminOnly := RequireRole(authSvc, domainauth.RoleAdmin)

	mux.Handle("GET /api/admin/users", adminOnly(http.HandlerFunc(h.Users.List)))
	mux.Handle("PATCH /api/admin/users/{email}/fraud", adminOnly(http.HandlerFunc(h.Users.MarkFraud)))

	mux.Handle("GET /api/admin/requests", adminOnly(http.HandlerFunc(h.Requests.List)))
	mux.Handle("PATCH /api/admin/requests/{id}", adminOnly(http.HandlerFunc(h.Requests.Decide)))

	mux.Handle("GET /api/admin/stats", adminOnly(http.HandlerFunc(h.Stats.Summary)))
}
