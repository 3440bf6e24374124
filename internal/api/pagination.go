package api

import (
	"fitmanager/routine-service/internal/repository"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultExercisePageSize = 20
	defaultPageSize         = 10
	maxPageSize             = 100
)

const dateOnlyLayout = "2006-01-02"

// PageResponse is embedded in every paginated list response.
type PageResponse struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
}

func newPageResponse(page repository.Page, total int64) PageResponse {
	var totalPages int64
	if page.Size > 0 {
		totalPages = (total + int64(page.Size) - 1) / int64(page.Size)
	}
	return PageResponse{Total: total, CurrentPage: page.Number, TotalPages: totalPages}
}

// parsePage reads ?page and ?limit. Both default when absent and must be integers >= 1;
// limit is capped at maxPageSize.
func parsePage(c *gin.Context, defaultSize int) (repository.Page, bool) {
	number, ok := queryInt(c, "page", 1, 0)
	if !ok {
		return repository.Page{}, false
	}
	size, ok := queryInt(c, "limit", defaultSize, maxPageSize)
	if !ok {
		return repository.Page{}, false
	}
	return repository.Page{Number: number, Size: size}, true
}

// parseLimit reads ?limit alone, for lists that are not paginated.
func parseLimit(c *gin.Context, defaultSize int) (int, bool) {
	return queryInt(c, "limit", defaultSize, maxPageSize)
}

func queryInt(c *gin.Context, name string, fallback, max int) (int, bool) {
	raw, present := c.GetQuery(name)
	if !present || raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("%q must be an integer", name))
		return 0, false
	}
	if n < 1 {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("%q must be greater than or equal to 1", name))
		return 0, false
	}
	if max > 0 && n > max {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("%q must be less than or equal to %d", name, max))
		return 0, false
	}
	return n, true
}

// queryBool parses an optional boolean; absent means no constraint.
func queryBool(c *gin.Context, name string) (*bool, bool) {
	raw, present := c.GetQuery(name)
	if !present || raw == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("%q must be a boolean", name))
		return nil, false
	}
	return &b, true
}

// queryDate accepts RFC 3339 or YYYY-MM-DD (midnight UTC).
func queryDate(c *gin.Context, name string) (*time.Time, bool) {
	raw, present := c.GetQuery(name)
	if !present || raw == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, true
	}
	if t, err := time.Parse(dateOnlyLayout, raw); err == nil {
		return &t, true
	}
	abortWithError(c, http.StatusBadRequest, fmt.Sprintf("%q must be a valid date", name))
	return nil, false
}
