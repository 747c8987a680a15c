package service

import (
	"context"
	"time"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
	apperrors "github.com/SowvikSuvo/chefbazaar-gateway/internal/errors"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
)

// ReviewService lets customers review meals they ordered.
type ReviewService struct {
	backends ports.BackendProvider
}

// NewReviewService constructs a ReviewService.
func NewReviewService(backends ports.BackendProvider) *ReviewService {
	return &ReviewService{backends: backends}
}

// ForMeal lists the public reviews of a meal.
func (s *ReviewService) ForMeal(ctx context.Context, sess *domainauth.Session, mealID string) ([]model.Review, error) {
	if mealID == "" {
		return nil, apperrors.ValidationField("mealId", "meal id is required")
	}
	return s.backends.For(sess).Reviews.ForMeal(ctx, mealID)
}

// Mine lists the session user's own reviews.
func (s *ReviewService) Mine(ctx context.Context, sess *domainauth.Session, q model.ListQuery) ([]model.Review, int, error) {
	return s.backends.For(sess).Reviews.Mine(ctx, q.Normalize())
}

// Create posts a review. Reviewer identity is stamped from the session.
func (s *ReviewService) Create(ctx context.Context, sess *domainauth.Session, in model.ReviewInput) (model.Review, error) {
	if err := in.Validate(); err != nil {
		return model.Review{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}
	review := model.Review{
		MealID:    in.MealID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		UserEmail: sess.Email,
		UserName:  sess.Name,
		CreatedAt: time.Now().UTC(),
	}
	return s.backends.For(sess).Reviews.Create(ctx, review)
}

// Update edits one of the session user's reviews.
func (s *ReviewService) Update(ctx context.Context, sess *domainauth.Session, id string, in model.ReviewInput) error {
	if id == "" {
		return apperrors.ValidationField("id", "review id is required")
	}
	if err := in.Validate(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}
	return s.backends.For(sess).Reviews.Update(ctx, id, in)
}

// Delete removes one of the session user's reviews.
func (s *ReviewService) Delete(ctx context.Context, sess *domainauth.Session, id string) error {
	if id == "" {
		return apperrors.ValidationField("id", "review id is required")
	}
	return s.backends.For(sess).Reviews.Delete(ctx, id)
}
