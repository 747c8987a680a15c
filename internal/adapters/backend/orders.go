package backend

import (
	"context"
	"net/url"

	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
)

// OrderClient implements ports.OrderAPI over the backend REST API.
type OrderClient struct {
	c *Client
}

func (o *OrderClient) Place(ctx context.Context, order model.Order) (model.Order, error) {
	var placed model.Order
	if err := o.c.post(ctx, "/orders", order, &placed); err != nil {
		return model.Order{}, err
	}
	return placed, nil
}

func (o *OrderClient) MyOrders(ctx context.Context, q model.ListQuery) ([]model.Order, int, error) {
	var env ListEnvelope[model.Order]
	if err := o.c.get(ctx, "/orders/mine", q.Values(), &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Total, nil
}

// ByChef lists orders placed against the calling chef's meals.
func (o *OrderClient) ByChef(ctx context.Context, q model.ListQuery) ([]model.Order, int, error) {
	var env ListEnvelope[model.Order]
	if err := o.c.get(ctx, "/orders/chef", q.Values(), &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Total, nil
}

func (o *OrderClient) Get(ctx context.Context, id string) (model.Order, error) {
	var order model.Order
	if err := o.c.get(ctx, "/orders/"+url.PathEscape(id), nil, &order); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (o *OrderClient) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	body := map[string]string{"orderStatus": string(status)}
	return o.c.patch(ctx, "/orders/"+url.PathEscape(id)+"/status", body)
}
