package api

import (
	"net/http"

	reqdto "resource-scheduler/internal/handler/dto/request"
	resdto "resource-scheduler/internal/handler/dto/response"
	"resource-scheduler/internal/handler/httperr"
	"resource-scheduler/internal/usecase/commands"
	"resource-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UnavailabilityHandler struct {
	commands commands.BookingCommands
	queries  queries.ScheduleQueries
}

func NewUnavailabilityHandler(cmd commands.BookingCommands, q queries.ScheduleQueries) *UnavailabilityHandler {
	return &UnavailabilityHandler{commands: cmd, queries: q}
}

// @Summary Block resource
// @Description Declare a one-off unavailability. It may not overlap existing occupancy.
// @Tags unavailabilities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUnavailabilityRequest true "Unavailability"
// @Success 201 {object} resdto.UnavailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response{detail=httperr.ConflictDetail}
// @Router /unavailabilities [post]
func (h *UnavailabilityHandler) Create(c *gin.Context) {
	agencyID, ok := agencyOf(c)
	if !ok {
		return
	}
	var req reqdto.CreateUnavailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.commands.ReserveUnavailability(c.Request.Context(), agencyID, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to block resource")
		return
	}

	c.Header("Location", "/api/unavailabilities/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromUnavailabilityView(view))
}

// @Summary Get unavailability
// @Tags unavailabilities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unavailability ID"
// @Success 200 {object} resdto.UnavailabilityResponse
// @Failure 404 {object} httperr.Response
// @Router /unavailabilities/{id} [get]
func (h *UnavailabilityHandler) Get(c *gin.Context) {
	agencyID, ok := agencyOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "unavailability")
	if !ok {
		return
	}

	view, err := h.queries.GetUnavailability(c.Request.Context(), agencyID, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to get unavailability")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnavailabilityView(view))
}

// @Summary Update unavailability
// @Tags unavailabilities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unavailability ID"
// @Param request body reqdto.UpdateUnavailabilityRequest true "Changes"
// @Success 200 {object} resdto.UnavailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response{detail=httperr.ConflictDetail}
// @Router /unavailabilities/{id} [patch]
func (h *UnavailabilityHandler) Update(c *gin.Context) {
	agencyID, ok := agencyOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "unavailability")
	if !ok {
		return
	}
	var req reqdto.UpdateUnavailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.commands.UpdateUnavailability(c.Request.Context(), agencyID, id, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to update unavailability")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnavailabilityView(view))
}

// @Summary Delete unavailability
// @Tags unavailabilities
// @Security BearerAuth
// @Param id path string true "Unavailability ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /unavailabilities/{id} [delete]
func (h *UnavailabilityHandler) Delete(c *gin.Context) {
	agencyID, ok := agencyOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "unavailability")
	if !ok {
		return
	}

	if err := h.commands.DeleteUnavailability(c.Request.Context(), agencyID, id); err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to delete unavailability")
		return
	}
	c.Status(http.StatusNoContent)
}
