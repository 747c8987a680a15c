package model

import (
	"net/url"
	"strconv"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// SortOrder is the direction of a list sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder returns the order for s, defaulting to ascending.
func ParseSortOrder(s string) SortOrder {
	if SortOrder(s) == SortDesc {
		return SortDesc
	}
	return SortAsc
}

// ListQuery describes pagination, sorting, and search for backend list
// endpoints. The backend accepts page/limit/sort/search query params and
// responds with a {data, total} envelope.
type ListQuery struct {
	Page   int
	Limit  int
	Sort   SortOrder
	SortBy string
	Search string
}

// Normalize clamps the query to safe bounds and fills defaults.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	if q.Sort == "" {
		q.Sort = SortAsc
	}
	return q
}

// Values encodes the query as backend URL parameters.
func (q ListQuery) Values() url.Values {
	q = q.Normalize()
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("sort", string(q.Sort))
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}
