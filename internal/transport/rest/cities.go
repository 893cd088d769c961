package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/wheelshare/carpool-api/internal/repository"
	"github.com/wheelshare/carpool-api/pkg/httpx"
)

type cityHandler struct {
	repo repository.CityRepository
}

// list serves both the full catalog and ?q= name search on one route.
func (h cityHandler) list(c *gin.Context) {
	p := httpx.ParsePagination(c)
	ctx := c.Request.Context()

	if q := c.Query("q"); q != "" {
		page, err := h.repo.SearchByName(ctx, q, p)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, 0, page)
		return
	}

	page, err := h.repo.FindAll(ctx, p)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, 0, page)
}

func (h cityHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	city, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, 0, city)
}
