package backend

import (
	"context"
	"net/url"

	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
)

// ReviewClient implements ports.ReviewAPI over the backend REST API.
type ReviewClient struct {
	c *Client
}

func (r *ReviewClient) ForMeal(ctx context.Context, mealID string) ([]model.Review, error) {
	var env ListEnvelope[model.Review]
	if err := r.c.get(ctx, "/reviews/meal/"+url.PathEscape(mealID), nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (r *ReviewClient) Mine(ctx context.Context, q model.ListQuery) ([]model.Review, int, error) {
	var env ListEnvelope[model.Review]
	if err := r.c.get(ctx, "/reviews/mine", q.Values(), &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Total, nil
}

func (r *ReviewClient) Create(ctx context.Context, review model.Review) (model.Review, error) {
	var created model.Review
	if err := r.c.post(ctx, "/reviews", review, &created); err != nil {
		return model.Review{}, err
	}
	return created, nil
}

func (r *ReviewClient) Update(ctx context.Context, id string, in model.ReviewInput) error {
	return r.c.patch(ctx, "/reviews/"+url.PathEscape(id), in)
}

func (r *ReviewClient) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, "/reviews/"+url.PathEscape(id))
}
