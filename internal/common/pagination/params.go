package pagination

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

// Params represents resolved pagination parameters.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page
}

// ParseQueryParams reads "page" and "limit" from the request query string and
// resolves them against config. It never fails: missing or unparsable values
// are treated as absent, and out-of-range values are clamped (see Resolve).
func ParseQueryParams(r *http.Request, config Config) Params {
	query := r.URL.Query()
	params := Params{
		Page:  parseInt(query.Get("page")),
		Limit: parseInt(query.Get("limit")),
	}
	return params.Resolve(config)
}

// Resolve applies config to p:
//   - page < 1 becomes config.DefaultPage
//   - limit < 1 becomes config.DefaultLimit
//   - limit > config.MaxLimit is capped to config.MaxLimit
func (p Params) Resolve(config Config) Params {
	if p.Page < 1 {
		p.Page = config.DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = config.DefaultLimit
	}
	if p.Limit > config.MaxLimit {
		p.Limit = config.MaxLimit
	}
	return p
}

// Offset returns (page-1)*limit, the number of items to skip.
// It saturates at math.MaxInt instead of overflowing for absurd page numbers.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// parseInt returns 0 for empty or unparsable input so that callers fall back
// to defaults.
func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
