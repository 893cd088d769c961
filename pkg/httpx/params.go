package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wheelshare/carpool-api/pkg/pagination"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParsePagination reads ?page= and ?limit= with clamping instead of errors:
// a malformed or out-of-range value falls back to a sane bound, so listing
// endpoints never 400 on pagination alone.
func ParsePagination(c *gin.Context) pagination.Params {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return pagination.Params{Page: page, Limit: limit}
}
