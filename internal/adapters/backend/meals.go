package backend

import (
	"context"
	"net/url"

	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
)

// MealClient implements ports.MealAPI over the backend REST API.
type MealClient struct {
	c *Client
}

func (m *MealClient) List(ctx context.Context, q model.ListQuery) ([]model.Meal, int, error) {
	var env ListEnvelope[model.Meal]
	if err := m.c.get(ctx, "/meals", q.Values(), &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Total, nil
}

func (m *MealClient) Get(ctx context.Context, id string) (model.Meal, error) {
	var meal model.Meal
	if err := m.c.get(ctx, "/meals/"+url.PathEscape(id), nil, &meal); err != nil {
		return model.Meal{}, err
	}
	return meal, nil
}

// ByChef lists the calling chef's own meals; the backend derives the
// chef from the bearer token.
func (m *MealClient) ByChef(ctx context.Context, q model.ListQuery) ([]model.Meal, int, error) {
	var env ListEnvelope[model.Meal]
	if err := m.c.get(ctx, "/chef/meals", q.Values(), &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Total, nil
}

func (m *MealClient) Create(ctx context.Context, meal model.Meal) (model.Meal, error) {
	var created model.Meal
	if err := m.c.post(ctx, "/meals", meal, &created); err != nil {
		return model.Meal{}, err
	}
	return created, nil
}

func (m *MealClient) Update(ctx context.Context, id string, in model.MealInput) error {
	return m.c.patch(ctx, "/meals/"+url.PathEscape(id), in)
}

func (m *MealClient) Delete(ctx context.Context, id string) error {
	return m.c.delete(ctx, "/meals/"+url.PathEscape(id))
}
