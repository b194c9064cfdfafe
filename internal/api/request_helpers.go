package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	defaultListLimit  = 50
	defaultListOffset = 0
)

// parseIDParam extracts the numeric {id} path parameter. A non-numeric
// value is a client error, reported as ok=false.
func parseIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// parseListParams reads limit/offset query parameters leniently:
// missing, non-numeric, non-positive limit or negative offset all fall
// back to the defaults rather than erroring.
func parseListParams(r *http.Request) (limit, offset int) {
	limit, offset = defaultListLimit, defaultListOffset
	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if raw := q.Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
