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

type RuleHandler struct {
	commands commands.RuleCommands
	queries  queries.ScheduleQueries
}

func NewRuleHandler(cmd commands.RuleCommands, q queries.ScheduleQueries) *RuleHandler {
	return &RuleHandler{commands: cmd, queries: q}
}

// @Summary List recurring rules
// @Tags rules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {array} resdto.RecurringRuleResponse
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/rules [get]
func (h *RuleHandler) List(c *gin.Context) {
	agencyID, ok := agencyOf(c)
	if !ok {
		return
	}
	resourceID, ok := pathID(c, "resource")
	if !ok {
		return
	}

	views, err := h.queries.ListRecurringRules(c.Request.Context(), agencyID, resourceID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to list recurring rules")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecurringRuleViews(views))
}

// @Summary Create recurring rule
// @Description Block the resource every week on one day between two local times
// @Tags rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.CreateRecurringRuleRequest true "Rule"
// @Success 201 {object} resdto.RecurringRuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /resources/{id}/rules [post]
func (h *RuleHandler) Create(c *gin.Context) {
	agencyID, ok := agencyOf(c)
	if !ok {
		return
	}
	resourceID, ok := pathID(c, "resource")
	if !ok {
		return
	}
	var req reqdto.CreateRecurringRuleRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.commands.CreateRecurringRule(c.Request.Context(), agencyID, req.ToCommand(resourceID))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to create recurring rule")
		return
	}

	c.Header("Location", "/api/rules/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromRecurringRuleView(view))
}

// @Summary Delete recurring rule
// @Tags rules
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /rules/{id} [delete]
func (h *RuleHandler) Delete(c *gin.Context) {
	agencyID, ok := agencyOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "rule")
	if !ok {
		return
	}

	if err := h.commands.DeleteRecurringRule(c.Request.Context(), agencyID, id); err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to delete recurring rule")
		return
	}
	c.Status(http.StatusNoContent)
}
