//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"slotbook/internal/handler/api"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	"slotbook/tests/common/httptest"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockBookingQueries
	handler     *api.ScheduleHandler
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewScheduleHandler(s.mockQueries)

	s.router.GET("/providers/:id/slots", s.handler.AvailableSlots)
	s.router.GET("/statuses/:status/transitions", s.handler.AllowedTransitions)
}

func (s *ScheduleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

// ================================================================================
// TestAvailableSlots
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestAvailableSlots() {
	providerID := uuid.New()
	serviceID := uuid.New()
	baseURL := "/providers/" + providerID.String() + "/slots"
	url := baseURL + "?date=2025-03-10&service_id=" + serviceID.String()

	slots := []string{"09:00", "09:30", "10:45"}

	s.Run("success: returns 200 OK with slots for the parsed UTC date", func() {
		expectedDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().AvailableSlots(gomock.Any(), providerID, expectedDate, serviceID).
			Return(slots, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.SlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(providerID, response.ProviderID)
		s.Equal("2025-03-10", response.Date)
		s.Equal(slots, response.Slots)
	})

	s.Run("success: fully booked day returns an empty list", func() {
		s.mockQueries.EXPECT().AvailableSlots(gomock.Any(), providerID, gomock.Any(), serviceID).
			Return([]string{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.SlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Slots)
	})

	s.Run("error: 400 Bad Request for invalid provider UUID", func() {
		invalidURL := "/providers/invalid-uuid/slots?date=2025-03-10&service_id=" + serviceID.String()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, invalidURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid provider ID")
	})

	s.Run("error: 400 Bad Request for malformed date", func() {
		testCases := []string{"", "10-03-2025", "2025-3-10", "tomorrow"}
		for _, d := range testCases {
			s.Run("date="+d, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
					baseURL+"?date="+d+"&service_id="+serviceID.String(), nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
			})
		}
	})

	s.Run("error: 400 Bad Request for missing service_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?date=2025-03-10", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "service not found",
				queriesError:   errs.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "provider not found",
				queriesError:   errs.ErrProviderNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Provider not found",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("store failure"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().AvailableSlots(gomock.Any(), providerID, gomock.Any(), serviceID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestAllowedTransitions
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestAllowedTransitions() {
	s.Run("success: returns options with metadata", func() {
		options := []queries.TransitionOption{
			{To: "confirmed", RequiresReason: false, DisplayName: "Confirm", Description: "Confirm the booking"},
			{To: "cancelled", RequiresReason: true, DisplayName: "Cancel", Description: "Cancel the booking"},
		}
		s.mockQueries.EXPECT().AllowedTransitions("pending").
			Return(options, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/statuses/pending/transitions", nil, "")

		var response struct {
			Transitions []resdto.TransitionOptionResponse `json:"transitions"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Transitions, 2)
		s.Equal("confirmed", response.Transitions[0].To)
		s.True(response.Transitions[1].RequiresReason)
	})

	s.Run("success: terminal status returns an empty list", func() {
		s.mockQueries.EXPECT().AllowedTransitions("completed").
			Return([]queries.TransitionOption{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/statuses/completed/transitions", nil, "")

		var response struct {
			Transitions []resdto.TransitionOptionResponse `json:"transitions"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Transitions)
	})

	s.Run("error: 422 Unprocessable Entity for unknown status", func() {
		s.mockQueries.EXPECT().AllowedTransitions("canceled").
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/statuses/canceled/transitions", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Unknown booking status")
	})
}
