package backend

import (
	"context"
	"net/url"

	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
)

// FavoriteClient implements ports.FavoriteAPI over the backend REST API.
type FavoriteClient struct {
	c *Client
}

func (f *FavoriteClient) Mine(ctx context.Context, q model.ListQuery) ([]model.Favorite, int, error) {
	var env ListEnvelope[model.Favorite]
	if err := f.c.get(ctx, "/favorites", q.Values(), &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Total, nil
}

func (f *FavoriteClient) Add(ctx context.Context, mealID string) error {
	var res MutationResult
	if err := f.c.post(ctx, "/favorites", map[string]string{"mealId": mealID}, &res); err != nil {
		return err
	}
	if !res.Success {
		return conflictFromResult(res, "meal is already a favorite")
	}
	return nil
}

func (f *FavoriteClient) Remove(ctx context.Context, id string) error {
	return f.c.delete(ctx, "/favorites/"+url.PathEscape(id))
}
