package api

import (
	"net/http"

	"resource-scheduler/internal/domain/schedule"
	reqdto "resource-scheduler/internal/handler/dto/request"
	resdto "resource-scheduler/internal/handler/dto/response"
	"resource-scheduler/internal/handler/httperr"
	"resource-scheduler/internal/infra/calendar"
	"resource-scheduler/internal/pkg/clock"
	"resource-scheduler/internal/pkg/errs"
	"resource-scheduler/internal/usecase/commands"
	"resource-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	resources commands.ResourceCommands
	bookings  commands.BookingCommands
	queries   queries.ScheduleQueries
	exporter  *calendar.Exporter
	clock     clock.Clock
}

func NewResourceHandler(
	resources commands.ResourceCommands,
	bookings commands.BookingCommands,
	q queries.ScheduleQueries,
	exporter *calendar.Exporter,
	clk clock.Clock,
) *ResourceHandler {
	return &ResourceHandler{
		resources: resources,
		bookings:  bookings,
		queries:   q,
		exporter:  exporter,
		clock:     clk,
	}
}

// @Summary Create resource
// @Description Register a machine, vehicle or driver in the caller's agency
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateResourceRequest true "Resource"
// @Success 201 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /resources [post]
func (h *ResourceHandler) Create(c *gin.Context) {
	agencyID, ok := agencyOf(c)
	if !ok {
		return
	}
	var req reqdto.CreateResourceRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.resources.CreateResource(c.Request.Context(), agencyID, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to create resource")
		return
	}

	c.Header("Location", "/api/resources/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromResourceView(view))
}

// @Summary Get resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 404 {object} httperr.Response
// @Router /resources/{id} [get]
func (h *ResourceHandler) Get(c *gin.Context) {
	agencyID, ok := agencyOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "resource")
	if !ok {
		return
	}

	view, err := h.queries.GetResource(c.Request.Context(), agencyID, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to get resource")
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

// @Summary Resource occupancy
// @Description Interventions, unavailabilities and expanded recurring rules overlapping [from, to), sorted by start
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param from query string true "Window start (RFC 3339)"
// @Param to query string true "Window end (RFC 3339)"
// @Success 200 {object} resdto.OccupancyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/occupancy [get]
func (h *ResourceHandler) Occupancy(c *gin.Context) {
	agencyID, ok := agencyOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "resource")
	if !ok {
		return
	}
	var q reqdto.WindowQuery
	if !bindQuery(c, &q) {
		return
	}

	view, err := h.queries.Occupancy(c.Request.Context(), agencyID, id, q.From, q.To)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to load occupancy")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOccupancyView(view))
}

// @Summary Check availability
// @Description Reports whether [start, end) is free, optionally ignoring one intervention or unavailability
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param start query string true "Candidate start (RFC 3339)"
// @Param end query string true "Candidate end (RFC 3339)"
// @Param exclude query string false "ID to ignore"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/availability [get]
func (h *ResourceHandler) Availability(c *gin.Context) {
	agencyID, ok := agencyOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "resource")
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if !bindQuery(c, &q) {
		return
	}
	candidate, err := schedule.NewTimeSpan(q.Start, q.End)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Invalid time span")
		return
	}

	err = h.bookings.CheckAvailable(c.Request.Context(), agencyID, id, candidate, q.ExcludeID())
	var conflict *schedule.ConflictError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, resdto.AvailabilityResponse{Available: true})
	case errs.As(err, &conflict):
		span := httperr.NewConflictSpan(conflict.Conflicting)
		c.JSON(http.StatusOK, resdto.AvailabilityResponse{Available: false, Conflict: &span})
	default:
		httperr.AbortWithDomainError(c, err, "Failed to check availability")
	}
}

// @Summary Export occupancy as iCalendar
// @Tags resources
// @Produce text/calendar
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param from query string true "Window start (RFC 3339)"
// @Param to query string true "Window end (RFC 3339)"
// @Success 200 {string} string "VCALENDAR"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/calendar.ics [get]
func (h *ResourceHandler) Calendar(c *gin.Context) {
	agencyID, ok := agencyOf(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "resource")
	if !ok {
		return
	}
	var q reqdto.WindowQuery
	if !bindQuery(c, &q) {
		return
	}

	feed, err := h.queries.Calendar(c.Request.Context(), agencyID, id, q.From, q.To)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to export calendar")
		return
	}

	c.Header("Content-Type", "text/calendar; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+feed.Resource.ID.String()+`.ics"`)
	c.Status(http.StatusOK)
	err = h.exporter.Write(c.Writer, calendar.Feed{
		ResourceID:   feed.Resource.ID,
		ResourceName: feed.Resource.Name,
		Spans:        feed.Spans,
		GeneratedAt:  h.clock.Now(),
	})
	if err != nil {
		_ = c.Error(err)
	}
}
