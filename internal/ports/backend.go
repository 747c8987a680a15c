package ports

import (
	"context"
	"encoding/json"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
)

// MealAPI is the backend surface for meal listings.
type MealAPI interface {
	List(ctx context.Context, q model.ListQuery) ([]model.Meal, int, error)
	Get(ctx context.Context, id string) (model.Meal, error)
	ByChef(ctx context.Context, q model.ListQuery) ([]model.Meal, int, error)
	Create(ctx context.Context, meal model.Meal) (model.Meal, error)
	Update(ctx context.Context, id string, in model.MealInput) error
	Delete(ctx context.Context, id string) error
}

// OrderAPI is the backend surface for orders.
type OrderAPI interface {
	Place(ctx context.Context, order model.Order) (model.Order, error)
	MyOrders(ctx context.Context, q model.ListQuery) ([]model.Order, int, error)
	ByChef(ctx context.Context, q model.ListQuery) ([]model.Order, int, error)
	Get(ctx context.Context, id string) (model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
}

// ReviewAPI is the backend surface for reviews.
type ReviewAPI interface {
	ForMeal(ctx context.Context, mealID string) ([]model.Review, error)
	Mine(ctx context.Context, q model.ListQuery) ([]model.Review, int, error)
	Create(ctx context.Context, review model.Review) (model.Review, error)
	Update(ctx context.Context, id string, in model.ReviewInput) error
	Delete(ctx context.Context, id string) error
}

// FavoriteAPI is the backend surface for favorite meals.
type FavoriteAPI interface {
	Mine(ctx context.Context, q model.ListQuery) ([]model.Favorite, int, error)
	Add(ctx context.Context, mealID string) error
	Remove(ctx context.Context, id string) error
}

// UserAPI is the backend surface for user records, including the role
// directory consumed by role resolution.
type UserAPI interface {
	RoleOf(ctx context.Context, email string) (domainauth.Role, error)
	Profile(ctx context.Context, email string) (model.User, error)
	List(ctx context.Context, q model.ListQuery) ([]model.User, int, error)
	MarkFraud(ctx context.Context, email string) error
}

// RequestAPI is the backend surface for role-upgrade requests.
type RequestAPI interface {
	Create(ctx context.Context, req model.RoleRequest) error
	List(ctx context.Context, q model.ListQuery) ([]model.RoleRequest, int, error)
	Decide(ctx context.Context, id string, action model.RequestAction) error
}

// StatsAPI fetches the raw platform statistics document for admins.
type StatsAPI interface {
	Fetch(ctx context.Context) (json.RawMessage, error)
}

// Backend bundles the per-session typed backend APIs. All calls made
// through one Backend carry credentials for the same session.
type Backend struct {
	Meals     MealAPI
	Orders    OrderAPI
	Reviews   ReviewAPI
	Favorites FavoriteAPI
	Users     UserAPI
	Requests  RequestAPI
	Stats     StatsAPI
}

// BackendProvider builds a session-scoped Backend. A nil session yields
// an unauthenticated Backend (public endpoints only).
type BackendProvider interface {
	For(sess *domainauth.Session) Backend
}
