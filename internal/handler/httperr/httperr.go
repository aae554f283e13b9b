package httperr

import (
	"net/http"
	"time"

	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// ConflictDetail identifies the span a rejected request overlaps.
type ConflictDetail struct {
	Conflict ConflictSpan `json:"conflict"`
}

type ConflictSpan struct {
	ID         uuid.UUID `json:"id"`
	Kind       string    `json:"kind"`
	ResourceID uuid.UUID `json:"resource_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

func NewConflictSpan(s schedule.Span) ConflictSpan {
	return ConflictSpan{
		ID:         s.ID(),
		Kind:       s.Kind().String(),
		ResourceID: s.ResourceID(),
		Start:      s.TimeSpan().Start(),
		End:        s.TimeSpan().End(),
	}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps the error taxonomy onto HTTP: validation 400, not found 404,
// conflict 409 with the conflicting span, anything else 500.
func AbortWithDomainError(c *gin.Context, err error, fallbackMsg string) {
	var conflict *schedule.ConflictError
	switch {
	case errs.As(err, &conflict):
		AbortWithError(c, http.StatusConflict, err, conflict.Error(), ConflictDetail{Conflict: NewConflictSpan(conflict.Conflicting)})
	case errs.IsConflict(err):
		AbortWithError(c, http.StatusConflict, err, "Time span conflicts with existing occupancy", nil)
	case errs.IsValidation(err):
		AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.IsNotFound(err):
		AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, fallbackMsg, nil)
	}
}
