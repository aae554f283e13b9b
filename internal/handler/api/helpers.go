package api

import (
	"net/http"

	"resource-scheduler/internal/handler/httperr"
	"resource-scheduler/internal/handler/middleware"
	"resource-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingPrincipal = errs.New("authenticated agency missing from context")

// agencyOf returns the caller's agency; it aborts with 500 when auth did not run.
func agencyOf(c *gin.Context) (uuid.UUID, bool) {
	agencyID, ok := middleware.GetAgencyID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingPrincipal, "Internal server error", nil)
		return uuid.Nil, false
	}
	return agencyID, true
}

func pathID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+what+" ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return false
	}
	return true
}
