package backend

// Package backend contains hand-written fakes for the typed backend
// API bundle. Each fake dispatches to func fields, so tests only stub
// the calls they expect; unstubbed calls return zero values.

import (
	"context"
	"encoding/json"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.MealAPI         = (*FakeMealAPI)(nil)
	_ ports.OrderAPI        = (*FakeOrderAPI)(nil)
	_ ports.ReviewAPI       = (*FakeReviewAPI)(nil)
	_ ports.FavoriteAPI     = (*FakeFavoriteAPI)(nil)
	_ ports.UserAPI         = (*FakeUserAPI)(nil)
	_ ports.RequestAPI      = (*FakeRequestAPI)(nil)
	_ ports.StatsAPI        = (*FakeStatsAPI)(nil)
	_ ports.BackendProvider = (*FakeProvider)(nil)
)

// FakeProvider returns the same fake bundle for every session and
// records which sessions asked for one.
type FakeProvider struct {
	Backend  ports.Backend
	Sessions []*domainauth.Session
}

// NewFakeProvider builds a provider whose bundle is fully populated
// with empty fakes, ready for selective stubbing.
func NewFakeProvider() (*FakeProvider, *FakeMealAPI, *FakeOrderAPI, *FakeUserAPI) {
	meals := &FakeMealAPI{}
	orders := &FakeOrderAPI{}
	users := &FakeUserAPI{}
	p := &FakeProvider{Backend: ports.Backend{
		Meals:     meals,
		Orders:    orders,
		Reviews:   &FakeReviewAPI{},
		Favorites: &FakeFavoriteAPI{},
		Users:     users,
		Requests:  &FakeRequestAPI{},
		Stats:     &FakeStatsAPI{},
	}}
	return p, meals, orders, users
}

func (p *FakeProvider) For(sess *domainauth.Session) ports.Backend {
	p.Sessions = append(p.Sessions, sess)
	return p.Backend
}

// FakeMealAPI stubs ports.MealAPI.
type FakeMealAPI struct {
	ListFunc   func(ctx context.Context, q model.ListQuery) ([]model.Meal, int, error)
	GetFunc    func(ctx context.Context, id string) (model.Meal, error)
	ByChefFunc func(ctx context.Context, q model.ListQuery) ([]model.Meal, int, error)
	CreateFunc func(ctx context.Context, meal model.Meal) (model.Meal, error)
	UpdateFunc func(ctx context.Context, id string, in model.MealInput) error
	DeleteFunc func(ctx context.Context, id string) error
}

func (f *FakeMealAPI) List(ctx context.Context, q model.ListQuery) ([]model.Meal, int, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx, q)
	}
	return nil, 0, nil
}

func (f *FakeMealAPI) Get(ctx context.Context, id string) (model.Meal, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, id)
	}
	return model.Meal{}, nil
}

func (f *FakeMealAPI) ByChef(ctx context.Context, q model.ListQuery) ([]model.Meal, int, error) {
	if f.ByChefFunc != nil {
		return f.ByChefFunc(ctx, q)
	}
	return nil, 0, nil
}

func (f *FakeMealAPI) Create(ctx context.Context, meal model.Meal) (model.Meal, error) {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, meal)
	}
	return meal, nil
}

func (f *FakeMealAPI) Update(ctx context.Context, id string, in model.MealInput) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, id, in)
	}
	return nil
}

func (f *FakeMealAPI) Delete(ctx context.Context, id string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

// FakeOrderAPI stubs ports.OrderAPI.
type FakeOrderAPI struct {
	PlaceFunc        func(ctx context.Context, order model.Order) (model.Order, error)
	MyOrdersFunc     func(ctx context.Context, q model.ListQuery) ([]model.Order, int, error)
	ByChefFunc       func(ctx context.Context, q model.ListQuery) ([]model.Order, int, error)
	GetFunc          func(ctx context.Context, id string) (model.Order, error)
	UpdateStatusFunc func(ctx context.Context, id string, status model.OrderStatus) error
}

func (f *FakeOrderAPI) Place(ctx context.Context, order model.Order) (model.Order, error) {
	if f.PlaceFunc != nil {
		return f.PlaceFunc(ctx, order)
	}
	return order, nil
}

func (f *FakeOrderAPI) MyOrders(ctx context.Context, q model.ListQuery) ([]model.Order, int, error) {
	if f.MyOrdersFunc != nil {
		return f.MyOrdersFunc(ctx, q)
	}
	return nil, 0, nil
}

func (f *FakeOrderAPI) ByChef(ctx context.Context, q model.ListQuery) ([]model.Order, int, error) {
	if f.ByChefFunc != nil {
		return f.ByChefFunc(ctx, q)
	}
	return nil, 0, nil
}

func (f *FakeOrderAPI) Get(ctx context.Context, id string) (model.Order, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, id)
	}
	return model.Order{}, nil
}

func (f *FakeOrderAPI) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	if f.UpdateStatusFunc != nil {
		return f.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

// FakeReviewAPI stubs ports.ReviewAPI.
type FakeReviewAPI struct {
	ForMealFunc func(ctx context.Context, mealID string) ([]model.Review, error)
	MineFunc    func(ctx context.Context, q model.ListQuery) ([]model.Review, int, error)
	CreateFunc  func(ctx context.Context, review model.Review) (model.Review, error)
	UpdateFunc  func(ctx context.Context, id string, in model.ReviewInput) error
	DeleteFunc  func(ctx context.Context, id string) error
}

func (f *FakeReviewAPI) ForMeal(ctx context.Context, mealID string) ([]model.Review, error) {
	if f.ForMealFunc != nil {
		return f.ForMealFunc(ctx, mealID)
	}
	return nil, nil
}

func (f *FakeReviewAPI) Mine(ctx context.Context, q model.ListQuery) ([]model.Review, int, error) {
	if f.MineFunc != nil {
		return f.MineFunc(ctx, q)
	}
	return nil, 0, nil
}

func (f *FakeReviewAPI) Create(ctx context.Context, review model.Review) (model.Review, error) {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, review)
	}
	return review, nil
}

func (f *FakeReviewAPI) Update(ctx context.Context, id string, in model.ReviewInput) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, id, in)
	}
	return nil
}

func (f *FakeReviewAPI) Delete(ctx context.Context, id string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

// FakeFavoriteAPI stubs ports.FavoriteAPI.
type FakeFavoriteAPI struct {
	MineFunc   func(ctx context.Context, q model.ListQuery) ([]model.Favorite, int, error)
	AddFunc    func(ctx context.Context, mealID string) error
	RemoveFunc func(ctx context.Context, id string) error
}

func (f *FakeFavoriteAPI) Mine(ctx context.Context, q model.ListQuery) ([]model.Favorite, int, error) {
	if f.MineFunc != nil {
		return f.MineFunc(ctx, q)
	}
	return nil, 0, nil
}

func (f *FakeFavoriteAPI) Add(ctx context.Context, mealID string) error {
	if f.AddFunc != nil {
		return f.AddFunc(ctx, mealID)
	}
	return nil
}

func (f *FakeFavoriteAPI) Remove(ctx context.Context, id string) error {
	if f.RemoveFunc != nil {
		return f.RemoveFunc(ctx, id)
	}
	return nil
}

// FakeUserAPI stubs ports.UserAPI.
type FakeUserAPI struct {
	RoleOfFunc    func(ctx context.Context, email string) (domainauth.Role, error)
	ProfileFunc   func(ctx context.Context, email string) (model.User, error)
	ListFunc      func(ctx context.Context, q model.ListQuery) ([]model.User, int, error)
	MarkFraudFunc func(ctx context.Context, email string) error

	RoleOfCalls int
}

func (f *FakeUserAPI) RoleOf(ctx context.Context, email string) (domainauth.Role, error) {
	f.RoleOfCalls++
	if f.RoleOfFunc != nil {
		return f.RoleOfFunc(ctx, email)
	}
	return domainauth.RoleUnknown, nil
}

func (f *FakeUserAPI) Profile(ctx context.Context, email string) (model.User, error) {
	if f.ProfileFunc != nil {
		return f.ProfileFunc(ctx, email)
	}
	return model.User{}, nil
}

func (f *FakeUserAPI) List(ctx context.Context, q model.ListQuery) ([]model.User, int, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx, q)
	}
	return nil, 0, nil
}

func (f *FakeUserAPI) MarkFraud(ctx context.Context, email string) error {
	if f.MarkFraudFunc != nil {
		return f.MarkFraudFunc(ctx, email)
	}
	return nil
}

// FakeRequestAPI stubs ports.RequestAPI.
type FakeRequestAPI struct {
	CreateFunc func(ctx context.Context, req model.RoleRequest) error
	ListFunc   func(ctx context.Context, q model.ListQuery) ([]model.RoleRequest, int, error)
	DecideFunc func(ctx context.Context, id string, action model.RequestAction) error
}

func (f *FakeRequestAPI) Create(ctx context.Context, req model.RoleRequest) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, req)
	}
	return nil
}

func (f *FakeRequestAPI) List(ctx context.Context, q model.ListQuery) ([]model.RoleRequest, int, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx, q)
	}
	return nil, 0, nil
}

func (f *FakeRequestAPI) Decide(ctx context.Context, id string, action model.RequestAction) error {
	if f.DecideFunc != nil {
		return f.DecideFunc(ctx, id, action)
	}
	return nil
}

// FakeStatsAPI stubs ports.StatsAPI.
type FakeStatsAPI struct {
	FetchFunc func(ctx context.Context) (json.RawMessage, error)
}

func (f *FakeStatsAPI) Fetch(ctx context.Context) (json.RawMessage, error) {
	if f.FetchFunc != nil {
		return f.FetchFunc(ctx)
	}
	return json.RawMessage(`{}`), nil
}
