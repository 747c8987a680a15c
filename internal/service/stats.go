package service

import (
	"context"
	"encoding/json"
	"fmt"

	jmespath "github.com/jmespath-community/go-jmespath"
	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	apperrors "github.com/SowvikSuvo/chefbazaar-gateway/internal/errors"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
)

// StatsSummary is the platform statistics view served to admins.
type StatsSummary struct {
	TotalUsers     int            `json:"totalUsers"`
	TotalChefs     int            `json:"totalChefs"`
	TotalMeals     int            `json:"totalMeals"`
	TotalOrders    int            `json:"totalOrders"`
	TotalRevenue   float64        `json:"totalRevenue"`
	OrdersByStatus map[string]int `json:"ordersByStatus"`
	TopMeals       []TopMeal      `json:"topMeals"`
}

// TopMeal is one entry of the most-ordered meals leaderboard.
type TopMeal struct {
	Name   string  `json:"name"`
	Orders int     `json:"orders"`
	Rating float64 `json:"rating"`
}

// Projections over the backend stats document. The document shape is
// owned by the backend; the gateway extracts only what the admin
// dashboard renders.
const (
	exprTotalUsers     = "users.total"
	exprTotalChefs     = "users.chefs"
	exprTotalMeals     = "meals.total"
	exprTotalOrders    = "orders.total"
	exprTotalRevenue   = "orders.revenue"
	exprOrdersByStatus = "orders.byStatus"
	exprTopMeals       = "meals.top[:5].{name: foodName, orders: orderCount, rating: rating}"
)

// StatsService projects the backend's raw statistics document into the
// summary the admin dashboard consumes.
type StatsService struct {
	backends ports.BackendProvider
}

// NewStatsService constructs a StatsService.
func NewStatsService(backends ports.BackendProvider) *StatsService {
	return &StatsService{backends: backends}
}

// Summary fetches and projects platform statistics.
func (s *StatsService) Summary(ctx context.Context, sess *domainauth.Session) (StatsSummary, error) {
	raw, err := s.backends.For(sess).Stats.Fetch(ctx)
	if err != nil {
		return StatsSummary{}, err
	}
	return projectSummary(raw)
}

func projectSummary(raw json.RawMessage) (StatsSummary, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return StatsSummary{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode stats document")
	}

	var out StatsSummary
	out.TotalUsers = projectInt(doc, exprTotalUsers)
	out.TotalChefs = projectInt(doc, exprTotalChefs)
	out.TotalMeals = projectInt(doc, exprTotalMeals)
	out.TotalOrders = projectInt(doc, exprTotalOrders)
	out.TotalRevenue = projectFloat(doc, exprTotalRevenue)

	if v, err := jmespath.Search(exprOrdersByStatus, doc); err == nil {
		if m, ok := v.(map[string]any); ok {
			out.OrdersByStatus = make(map[string]int, len(m))
			for status, count := range m {
				if f, isNum := count.(float64); isNum {
					out.OrdersByStatus[status] = int(f)
				}
			}
		}
	}

	if v, err := jmespath.Search(exprTopMeals, doc); err == nil && v != nil {
		buf, marshalErr := json.Marshal(v)
		if marshalErr != nil {
			return out, apperrors.Wrap(marshalErr, apperrors.ErrCodeInternal, "encode top meals projection")
		}
		if unmarshalErr := json.Unmarshal(buf, &out.TopMeals); unmarshalErr != nil {
			return out, apperrors.Wrap(unmarshalErr, apperrors.ErrCodeInternal, "decode top meals projection")
		}
	}

	return out, nil
}

func projectInt(doc any, expr string) int {
	return int(projectFloat(doc, expr))
}

func projectFloat(doc any, expr string) float64 {
	v, err := jmespath.Search(expr, doc)
	if err != nil {
		return 0
	}
	f, ok := v.(float64)
	if !ok {
		return 0
	}
	return f
}

// ValidateProjections compiles every projection expression. Called from
// tests so a typo in an expression fails fast.
func ValidateProjections() error {
	for _, expr := range []string{
		exprTotalUsers, exprTotalChefs, exprTotalMeals,
		exprTotalOrders, exprTotalRevenue, exprOrdersByStatus, exprTopMeals,
	} {
		if _, err := jmespath.Compile(expr); err != nil {
			return fmt.Errorf("compile %q: %w", expr, err)
		}
	}
	return nil
}
