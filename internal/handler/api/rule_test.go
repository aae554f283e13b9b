//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/domain/unavailability"
	"resource-scheduler/internal/handler/api"
	"resource-scheduler/internal/handler/dto/request"
	resdto "resource-scheduler/internal/handler/dto/response"
	"resource-scheduler/internal/usecase/commands"
	"resource-scheduler/internal/usecase/queries"
	"resource-scheduler/tests/common/builder"
	"resource-scheduler/tests/common/httptest"
	"resource-scheduler/tests/common/testutil"
	commandsmock "resource-scheduler/tests/mock/commands"
	queriesmock "resource-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RuleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRuleCommands
	mockQueries  *queriesmock.MockScheduleQueries
	agencyID     uuid.UUID
	resourceID   uuid.UUID
}

func (s *RuleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	request.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRuleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	h := api.NewRuleHandler(s.mockCommands, s.mockQueries)
	s.agencyID = uuid.New()
	s.resourceID = uuid.New()

	auth := fakeAuth(s.agencyID)
	s.router.GET("/resources/:id/rules", auth, h.List)
	s.router.POST("/resources/:id/rules", auth, h.Create)
	s.router.DELETE("/rules/:id", auth, h.Delete)
}

func (s *RuleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRuleHandlerSuite(t *testing.T) {
	suite.Run(t, new(RuleHandlerTestSuite))
}

func (s *RuleHandlerTestSuite) TestCreate() {
	url := "/resources/" + s.resourceID.String() + "/rules"
	reqBody := request.CreateRecurringRuleRequest{DayOfWeek: 1, StartTime: "12:00", EndTime: "13:00", Reason: "lunch"}
	view := &queries.RecurringRuleView{
		ID: uuid.New(), ResourceID: s.resourceID, DayOfWeek: 1,
		StartTime: "12:00:00", EndTime: "13:00:00", Reason: "lunch", CreatedAt: time.Now(),
	}

	s.Run("success: resource comes from the path", func() {
		s.mockCommands.EXPECT().
			CreateRecurringRule(gomock.Any(), s.agencyID, commands.CreateRecurringRuleRequest{
				ResourceID: s.resourceID, DayOfWeek: 1, StartTime: "12:00", EndTime: "13:00", Reason: "lunch",
			}).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		var body resdto.RecurringRuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(1, body.DayOfWeek)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/rules/" + view.ID.String()})
	})

	invalid := []testCaseIntervention{
		{name: "day_of_week 0", mutate: testutil.Field("day_of_week", 0), expectCode: http.StatusBadRequest},
		{name: "day_of_week 8", mutate: testutil.Field("day_of_week", 8), expectCode: http.StatusBadRequest},
		{name: "start_time not a clock time", mutate: testutil.Field("start_time", "noon"), expectCode: http.StatusBadRequest},
		{name: "end_time 24:00", mutate: testutil.Field("end_time", "24:00"), expectCode: http.StatusBadRequest},
		{name: "missing start_time", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
	}
	for _, tc := range invalid {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
		})
	}

	s.Run("error: 400 when end is not after start", func() {
		s.mockCommands.EXPECT().CreateRecurringRule(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, unavailability.ErrRuleEndNotAfterStart).Times(1)
		body := reqBody
		body.EndTime = "11:00"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 when an occurrence overlaps a booking", func() {
		booked := schedule.InterventionSpan(uuid.New(), s.resourceID,
			builder.MustTimeSpan(s.T(), builder.Jan1(12, 30), builder.Jan1(14, 0)), "dig")
		s.mockCommands.EXPECT().CreateRecurringRule(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, schedule.NewConflictError(booked)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *RuleHandlerTestSuite) TestListAndDelete() {
	ruleID := uuid.New()

	s.Run("list", func() {
		s.mockQueries.EXPECT().ListRecurringRules(gomock.Any(), s.agencyID, s.resourceID).
			Return([]*queries.RecurringRuleView{{ID: ruleID, ResourceID: s.resourceID, DayOfWeek: 5, StartTime: "08:00:00", EndTime: "09:00:00"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/"+s.resourceID.String()+"/rules", nil, "bearer-token")
		var body []resdto.RecurringRuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(ruleID.String(), body[0].ID)
	})

	s.Run("delete", func() {
		s.mockCommands.EXPECT().DeleteRecurringRule(gomock.Any(), s.agencyID, ruleID).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rules/"+ruleID.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("delete: 404", func() {
		s.mockCommands.EXPECT().DeleteRecurringRule(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(unavailability.ErrRecurringRuleNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rules/"+ruleID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
