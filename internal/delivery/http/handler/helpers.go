package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// parseUintParam reads a numeric path variable. Returns 0 when the
// variable is absent or malformed; callers treat that as not found.
func parseUintParam(r *http.Request, name string) uint {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// parsePagination reads ?page and ?limit with sane fallbacks.
func parsePagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 0
	}
	return page, limit
}
