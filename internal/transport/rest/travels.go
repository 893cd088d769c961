package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/internal/domain"
	"github.com/wheelshare/carpool-api/internal/repository"
	"github.com/wheelshare/carpool-api/pkg/httpx"
)

type travelHandler struct {
	repo repository.TravelRepository
}

// createTravelRequest is the publish-travel payload. Field-level validation
// happens upstream; handlers only bind the shape.
type createTravelRequest struct {
	DriverID      uuid.UUID `json:"driverId"`
	CarID         uuid.UUID `json:"carId"`
	OriginID      uuid.UUID `json:"originId"`
	DestinationID uuid.UUID `json:"destinationId"`
	DepartureAt   time.Time `json:"departureAt"`
	PricePerSeat  int64     `json:"pricePerSeat"`
	SeatsTotal    int       `json:"seatsTotal"`
}

func (h travelHandler) search(c *gin.Context) {
	q := repository.TravelQuery{Date: c.Query("date")}
	if s := c.Query("origin"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			httpx.Fail(c, domain.NewError(domain.CodeInvalidInput, "invalid origin id"))
			return
		}
		q.OriginID = id
	}
	if s := c.Query("destination"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			httpx.Fail(c, domain.NewError(domain.CodeInvalidInput, "invalid destination id"))
			return
		}
		q.DestinationID = id
	}

	page, err := h.repo.Search(c.Request.Context(), q, httpx.ParsePagination(c))
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, 0, page)
}

func (h travelHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	travel, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, 0, travel)
}

func (h travelHandler) create(c *gin.Context) {
	var req createTravelRequest
	if !bindJSON(c, &req) {
		return
	}
	travel := &domain.Travel{
		ID:            uuid.New(),
		DriverID:      req.DriverID,
		CarID:         req.CarID,
		OriginID:      req.OriginID,
		DestinationID: req.DestinationID,
		DepartureAt:   req.DepartureAt,
		PricePerSeat:  req.PricePerSeat,
		SeatsTotal:    req.SeatsTotal,
		SeatsFree:     req.SeatsTotal,
		Status:        domain.TravelOpen,
	}
	if err := h.repo.Create(c.Request.Context(), travel); err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, http.StatusCreated, travel)
}

func (h travelHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req createTravelRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	travel, err := h.repo.FindByID(ctx, id)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	travel.CarID = req.CarID
	travel.OriginID = req.OriginID
	travel.DestinationID = req.DestinationID
	travel.DepartureAt = req.DepartureAt
	travel.PricePerSeat = req.PricePerSeat
	travel.SeatsTotal = req.SeatsTotal

	if err := h.repo.Update(ctx, travel); err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, 0, travel)
}

func (h travelHandler) remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, 0, gin.H{"deleted": id})
}
