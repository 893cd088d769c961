package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wheelshare/carpool-api/internal/domain"
	"github.com/wheelshare/carpool-api/internal/repository"
	"github.com/wheelshare/carpool-api/pkg/httpx"
)

type inscriptionHandler struct {
	repo    repository.InscriptionRepository
	travels repository.TravelRepository
}

type createInscriptionRequest struct {
	PassengerID uuid.UUID `json:"passengerId"`
	Seats       int       `json:"seats"`
}

type updateInscriptionRequest struct {
	Status domain.InscriptionStatus `json:"status"`
}

func (h inscriptionHandler) listByTravel(c *gin.Context) {
	travelID, ok := pathID(c)
	if !ok {
		return
	}
	page, err := h.repo.FindByTravel(c.Request.Context(), travelID, httpx.ParsePagination(c))
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, 0, page)
}

// create books seats on a travel. The travel must exist, have room, and not
// already carry a booking for the same passenger.
func (h inscriptionHandler) create(c *gin.Context) {
	travelID, ok := pathID(c)
	if !ok {
		return
	}
	var req createInscriptionRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	travel, err := h.travels.FindByID(ctx, travelID)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	if travel.SeatsFree < req.Seats {
		httpx.Fail(c, domain.NewError(domain.CodeTravelFull, "not enough free seats"))
		return
	}

	taken, err := h.repo.ExistsByTravelAndPassenger(ctx, travelID, req.PassengerID)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	if taken {
		httpx.Fail(c, domain.NewError(domain.CodeAlreadyInscribed, "passenger already inscribed on this travel"))
		return
	}

	inscription := &domain.Inscription{
		ID:          uuid.New(),
		TravelID:    travelID,
		PassengerID: req.PassengerID,
		Seats:       req.Seats,
		Status:      domain.InscriptionPending,
	}
	if err := h.repo.Create(ctx, inscription); err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, http.StatusCreated, inscription)
}

func (h inscriptionHandler) updateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateInscriptionRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.repo.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, 0, gin.H{"id": id, "status": req.Status})
}

func (h inscriptionHandler) remove(c *gin.Context) {
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
