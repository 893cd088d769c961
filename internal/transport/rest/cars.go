package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/wheelshare/carpool-api/internal/repository"
	"github.com/wheelshare/carpool-api/pkg/httpx"
)

type carHandler struct {
	repo repository.CarRepository
}

func (h carHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	car, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, 0, car)
}
