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

type InterventionHandler struct {
	commands commands.BookingCommands
	queries  queries.ScheduleQueries
}

func NewInterventionHandler(cmd commands.BookingCommands, q queries.ScheduleQueries) *InterventionHandler {
	return &InterventionHandler{commands: cmd, queries: q}
}

// @Summary Reserve intervention
// @Description Book a resource for [start, end). Rejected with 409 when the span overlaps existing occupancy.
// @Tags interventions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateInterventionRequest true "Intervention"
// @Success 201 {object} resdto.InterventionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response{detail=httperr.ConflictDetail}
// @Router /interventions [post]
func (h *InterventionHandler) Create(c *gin.Context) {
	agencyID, ok := agencyOf(c)
	if !ok {
		return
	}
	var req reqdto.CreateInterventionRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.commands.ReserveIntervention(c.Request.Context(), agencyID, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to reserve intervention")
		return
	}

	c.Header("Location", "/api/interventions/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromInterventionView(view))
}

// @Summary Get intervention
// @Tags interventions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Intervention ID"
// @Success 200 {object} resdto.InterventionResponse
// @Failure 404 {object} httperr.Response
// @Router /interventions/{id} [get]
func (h *InterventionHandler) Get(c *gin.Context) {
	agencyID, ok := agencyOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "intervention")
	if !ok {
		return
	}

	view, err := h.queries.GetIntervention(c.Request.Context(), agencyID, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to get intervention")
		return
	}
	c.JSON(http.StatusOK, resdto.FromInterventionView(view))
}

// @Summary Update intervention
// @Description Move, resize or edit an intervention. The new span is checked against everything but itself.
// @Tags interventions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Intervention ID"
// @Param request body reqdto.UpdateInterventionRequest true "Changes"
// @Success 200 {object} resdto.InterventionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response{detail=httperr.ConflictDetail}
// @Router /interventions/{id} [patch]
func (h *InterventionHandler) Update(c *gin.Context) {
	agencyID, ok := agencyOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "intervention")
	if !ok {
		return
	}
	var req reqdto.UpdateInterventionRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.commands.UpdateIntervention(c.Request.Context(), agencyID, id, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to update intervention")
		return
	}
	c.JSON(http.StatusOK, resdto.FromInterventionView(view))
}

// @Summary Cancel intervention
// @Tags interventions
// @Security BearerAuth
// @Param id path string true "Intervention ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /interventions/{id} [delete]
func (h *InterventionHandler) Delete(c *gin.Context) {
	agencyID, ok := agencyOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "intervention")
	if !ok {
		return
	}

	if err := h.commands.DeleteIntervention(c.Request.Context(), agencyID, id); err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to cancel intervention")
		return
	}
	c.Status(http.StatusNoContent)
}
