package backend

import (
	"context"
	"encoding/json"
)

// StatsClient implements ports.StatsAPI over the backend REST API.
// The stats document is passed through untyped; the service layer
// projects the fields it needs.
type StatsClient struct {
	c *Client
}

func (s *StatsClient) Fetch(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.c.get(ctx, "/admin/stats", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
