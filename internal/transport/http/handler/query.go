package handler

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/storefront-api-nosql/internal/pkg/page"
)

// parsePage reads offset/limit query parameters. Absent offset means 0,
// absent limit means no cap. Malformed or negative values are a bad request.
func parsePage(q url.Values) (offset, limit int, err error) {
	offset, err = nonNegativeInt(q, "offset", 0)
	if err != nil {
		return 0, 0, err
	}
	limit, err = nonNegativeInt(q, "limit", page.NoLimit)
	if err != nil {
		return 0, 0, err
	}
	return offset, limit, nil
}

func nonNegativeInt(q url.Values, key string, fallback int) (int, error) {
	if !q.Has(key) {
		return fallback, nil
	}
	n, err := strconv.Atoi(q.Get(key))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("query parameter '%s' must be a non-negative integer", key)
	}
	return n, nil
}

// optString returns a pointer to the parameter value when present, nil when
// absent. Presence is checked on the query map, never on a stringified
// value, so a literal "undefined" filter value still works.
func optString(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	v := q.Get(key)
	return &v
}
