//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/domain/unavailability"
	"resource-scheduler/internal/handler/api"
	"resource-scheduler/internal/handler/dto/request"
	resdto "resource-scheduler/internal/handler/dto/response"
	"resource-scheduler/internal/usecase/queries"
	"resource-scheduler/tests/common/builder"
	"resource-scheduler/tests/common/httptest"
	commandsmock "resource-scheduler/tests/mock/commands"
	queriesmock "resource-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UnavailabilityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockScheduleQueries
	agencyID     uuid.UUID
}

func (s *UnavailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	request.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	h := api.NewUnavailabilityHandler(s.mockCommands, s.mockQueries)
	s.agencyID = uuid.New()

	auth := fakeAuth(s.agencyID)
	s.router.POST("/unavailabilities", auth, h.Create)
	s.router.GET("/unavailabilities/:id", auth, h.Get)
	s.router.PATCH("/unavailabilities/:id", auth, h.Update)
	s.router.DELETE("/unavailabilities/:id", auth, h.Delete)
}

func (s *UnavailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUnavailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(UnavailabilityHandlerTestSuite))
}

func (s *UnavailabilityHandlerTestSuite) TestCreate() {
	resourceID := uuid.New()
	reqBody := request.CreateUnavailabilityRequest{
		ResourceID: resourceID, Start: builder.Jan1(8, 0), End: builder.Jan1(12, 0), Reason: "maintenance",
	}
	now := time.Now()
	view := &queries.UnavailabilityView{
		ID: uuid.New(), ResourceID: resourceID, Start: reqBody.Start, End: reqBody.End,
		Reason: "maintenance", CreatedAt: now, UpdatedAt: now,
	}

	s.Run("success", func() {
		s.mockCommands.EXPECT().ReserveUnavailability(gomock.Any(), s.agencyID, reqBody.ToCommand()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/unavailabilities", reqBody, "bearer-token")
		var body resdto.UnavailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("maintenance", body.Reason)
	})

	s.Run("error: reason longer than 500 chars", func() {
		long := reqBody
		long.Reason = strings.Repeat("x", 501)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/unavailabilities", long, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 over a booked intervention", func() {
		booked := schedule.InterventionSpan(uuid.New(), resourceID,
			builder.MustTimeSpan(s.T(), builder.Jan1(9, 0), builder.Jan1(10, 0)), "dig")
		s.mockCommands.EXPECT().ReserveUnavailability(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, schedule.NewConflictError(booked)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/unavailabilities", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *UnavailabilityHandlerTestSuite) TestUpdateGetDelete() {
	id := uuid.New()
	reason := "inspection"

	s.Run("update", func() {
		s.mockCommands.EXPECT().UpdateUnavailability(gomock.Any(), s.agencyID, id, gomock.Any()).
			Return(&queries.UnavailabilityView{ID: id, Reason: reason}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/unavailabilities/"+id.String(),
			request.UpdateUnavailabilityRequest{Reason: &reason}, "bearer-token")
		var body resdto.UnavailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(reason, body.Reason)
	})

	s.Run("get: 404", func() {
		s.mockQueries.EXPECT().GetUnavailability(gomock.Any(), s.agencyID, id).
			Return(nil, unavailability.ErrUnavailabilityNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/unavailabilities/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("delete", func() {
		s.mockCommands.EXPECT().DeleteUnavailability(gomock.Any(), s.agencyID, id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/unavailabilities/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
