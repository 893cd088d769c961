package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/wheelshare/carpool-api/internal/repository"
	"github.com/wheelshare/carpool-api/pkg/httpx"
)

type brandHandler struct {
	repo repository.BrandRepository
}

func (h brandHandler) list(c *gin.Context) {
	brands, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, 0, brands)
}

func (h brandHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	brand, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, 0, brand)
}

func (h brandHandler) models(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	models, err := h.repo.FindModels(c.Request.Context(), id)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, 0, models)
}
