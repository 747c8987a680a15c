package backend

import (
	"context"
	"net/url"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
)

// UserClient implements ports.UserAPI over the backend REST API.
type UserClient struct {
	c *Client
}

// roleResponse is the backend's role lookup payload.
type roleResponse struct {
	Role string `json:"role"`
}

// RoleOf resolves the backend-assigned role for an email address.
// An unrecognized role string collapses to RoleUnknown rather than
// erroring; the caller decides how much capability that grants (none).
func (u *UserClient) RoleOf(ctx context.Context, email string) (domainauth.Role, error) {
	var res roleResponse
	if err := u.c.get(ctx, "/users/"+url.PathEscape(email)+"/role", nil, &res); err != nil {
		return domainauth.RoleUnknown, err
	}
	return domainauth.ParseRole(res.Role), nil
}

func (u *UserClient) Profile(ctx context.Context, email string) (model.User, error) {
	var user model.User
	if err := u.c.get(ctx, "/users/"+url.PathEscape(email), nil, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (u *UserClient) List(ctx context.Context, q model.ListQuery) ([]model.User, int, error) {
	var env ListEnvelope[model.User]
	if err := u.c.get(ctx, "/users", q.Values(), &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Total, nil
}

func (u *UserClient) MarkFraud(ctx context.Context, email string) error {
	return u.c.patch(ctx, "/users/"+url.PathEscape(email)+"/fraud", nil)
}
