package backend

import (
	"context"
	"net/url"

	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
)

// RequestClient implements ports.RequestAPI over the backend REST API.
type RequestClient struct {
	c *Client
}

func (r *RequestClient) Create(ctx context.Context, req model.RoleRequest) error {
	var res MutationResult
	if err := r.c.post(ctx, "/requests", req, &res); err != nil {
		return err
	}
	if !res.Success {
		return conflictFromResult(res, "a request is already pending")
	}
	return nil
}

func (r *RequestClient) List(ctx context.Context, q model.ListQuery) ([]model.RoleRequest, int, error) {
	var env ListEnvelope[model.RoleRequest]
	if err := r.c.get(ctx, "/requests", q.Values(), &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Total, nil
}

func (r *RequestClient) Decide(ctx context.Context, id string, action model.RequestAction) error {
	body := map[string]string{"action": string(action)}
	return r.c.patch(ctx, "/requests/"+url.PathEscape(id), body)
}
