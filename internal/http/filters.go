package httpx

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/model"
)

// ParseListQuery extracts pagination, sorting, and search parameters from
// the request URL. It supports two sort formats:
// 1. Combined format: ?sort=field:dir (e.g., ?sort=price:desc)
// 2. Separate format: ?sortBy=field&sort=dir (e.g., ?sortBy=price&sort=desc)
//
// Out-of-range values are clamped by ListQuery.Normalize before the query
// reaches the backend.
func ParseListQuery(r *http.Request) model.ListQuery {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	sortBy, sortDir := parseSortParams(q)

	return model.ListQuery{
		Page:   page,
		Limit:  limit,
		Sort:   sortDir,
		SortBy: sortBy,
		Search: strings.TrimSpace(q.Get("search")),
	}.Normalize()
}

// parseSortParams resolves the sort field and direction from URL query values.
func parseSortParams(q url.Values) (string, model.SortOrder) {
	sortParam := strings.TrimSpace(q.Get("sort"))
	sortBy := strings.TrimSpace(q.Get("sortBy"))

	// Combined field:dir syntax takes precedence.
	if parts := strings.SplitN(sortParam, ":", 2); len(parts) == 2 {
		return strings.TrimSpace(parts[0]), model.ParseSortOrder(strings.ToLower(strings.TrimSpace(parts[1])))
	}

	if sortBy != "" {
		return sortBy, model.ParseSortOrder(strings.ToLower(sortParam))
	}

	// A bare sort param that is not a direction names the field.
	dir := strings.ToLower(sortParam)
	if dir == string(model.SortAsc) || dir == string(model.SortDesc) {
		return "", model.SortOrder(dir)
	}
	return sortParam, model.SortAsc
}
