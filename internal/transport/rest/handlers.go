package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/internal/domain"
	"github.com/wheelshare/carpool-api/pkg/httpx"
)

// pathID parses the :id segment. A malformed value fails the request with
// INVALID_INPUT before any repository is consulted.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.Fail(c, domain.NewError(domain.CodeInvalidInput, "invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body, mapping decode failures to
// INVALID_INPUT.
func bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		httpx.Fail(c, domain.NewError(domain.CodeInvalidInput, "malformed request body"))
		return false
	}
	return true
}
