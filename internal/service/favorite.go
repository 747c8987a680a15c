package service

import (
	"context"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
	apperrors "github.com/SowvikSuvo/chefbazaar-gateway/internal/errors"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
)

// FavoriteService manages a customer's saved meals.
type FavoriteService struct {
	backends ports.BackendProvider
}

// NewFavoriteService constructs a FavoriteService.
func NewFavoriteService(backends ports.BackendProvider) *FavoriteService {
	return &FavoriteService{backends: backends}
}

// Mine lists the session user's favorites.
func (s *FavoriteService) Mine(ctx context.Context, sess *domainauth.Session, q model.ListQuery) ([]model.Favorite, int, error) {
	return s.backends.For(sess).Favorites.Mine(ctx, q.Normalize())
}

// Add saves a meal to the session user's favorites.
func (s *FavoriteService) Add(ctx context.Context, sess *domainauth.Session, mealID string) error {
	if mealID == "" {
		return apperrors.ValidationField("mealId", "meal id is required")
	}
	return s.backends.For(sess).Favorites.Add(ctx, mealID)
}

// Remove deletes a favorite by its own ID.
func (s *FavoriteService) Remove(ctx context.Context, sess *domainauth.Session, id string) error {
	if id == "" {
		return apperrors.ValidationField("id", "favorite id is required")
	}
	return s.backends.For(sess).Favorites.Remove(ctx, id)
}
