//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/user"
	"court-booking/internal/handler/api"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/availability"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"
	"court-booking/tests/common/httptest"
	availabilitymock "court-booking/tests/mock/availability"
	commandsmock "court-booking/tests/mock/commands"
	queriesmock "court-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockBookingCommands
	mockQueries      *queriesmock.MockBookingQueries
	mockQuote        *queriesmock.MockQuoteQueries
	mockAvailability *availabilitymock.MockService
	handler          *api.BookingHandler
	userID           uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockQuote = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.mockAvailability = availabilitymock.NewMockService(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, s.mockQuote, s.mockAvailability)
	s.userID = uuid.New()

	authed := func(handler gin.HandlerFunc) gin.HandlerFunc {
		// Mock middleware behavior for authenticated routes
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
				c.Set("user_role", user.RoleUser)
			}
			handler(c)
		}
	}

	s.router.POST("/api/bookings", authed(s.handler.CreateBooking))
	s.router.GET("/api/bookings/:id", authed(s.handler.GetBooking))
	s.router.PUT("/api/bookings/:id/cancel", authed(s.handler.CancelBooking))
	s.router.POST("/api/bookings/check-availability", s.handler.CheckAvailability)
	s.router.POST("/api/bookings/calculate-price", s.handler.CalculatePrice)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) bookingView(id uuid.UUID) *queries.BookingView {
	return &queries.BookingView{
		ID:          id,
		UserID:      s.userID,
		UserName:    "Test Player",
		UserEmail:   "player@example.com",
		CourtID:     uuid.New(),
		CourtName:   "Center Court",
		BookingDate: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "12:00",
		Equipment:   []queries.EquipmentLineView{},
		Breakdown: pricing.Breakdown{
			BasePrice:    2000,
			Total:        2000,
			AppliedRules: []string{},
		},
		Status:        "confirmed",
		PaymentStatus: "pending",
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/api/bookings"
	courtID := uuid.New()

	body := map[string]any{
		"court_id":     courtID.String(),
		"booking_date": "2025-06-16",
		"start_time":   "10:00",
		"end_time":     "12:00",
	}

	s.Run("success: returns 201 with the created booking", func() {
		view := s.bookingView(uuid.New())
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 400 with details when resources are unavailable", func() {
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, &commands.ResourceUnavailableError{
				Messages: []string{"Court is already booked from 10:00 to 11:00"},
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Resources not available")
		s.Contains(rec.Body.String(), "Court is already booked")
	})

	s.Run("error: 404 for an unknown court", func() {
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, errs.ErrCourtNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Court not found or inactive")
	})

	s.Run("error: 400 for a malformed booking date", func() {
		bad := map[string]any{
			"court_id":     courtID.String(),
			"booking_date": "16/06/2025",
			"start_time":   "10:00",
			"end_time":     "12:00",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking date format")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/api/bookings/" + bookingID.String()

	s.Run("success: returns the booking", func() {
		view := s.bookingView(bookingID)
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), queries.Actor{ID: s.userID, Role: user.RoleUser}, bookingID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
	})

	s.Run("error: 404 for an unknown booking", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), gomock.Any(), bookingID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 for somebody else's booking", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), gomock.Any(), bookingID).
			Return(nil, errs.ErrAccessDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not authorized")
	})

	s.Run("error: 400 for a malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/api/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: returns the cancelled booking", func() {
		view := s.bookingView(bookingID)
		view.Status = "cancelled"
		s.mockCommands.EXPECT().
			CancelBooking(gomock.Any(), queries.Actor{ID: s.userID, Role: user.RoleUser}, bookingID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 400 when already cancelled", func() {
		s.mockCommands.EXPECT().
			CancelBooking(gomock.Any(), gomock.Any(), bookingID).
			Return(nil, errs.ErrBookingCancelled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already cancelled")
	})
}

func (s *BookingHandlerTestSuite) TestCheckAvailability() {
	url := "/api/bookings/check-availability"
	courtID := uuid.New()

	body := map[string]any{
		"court_id":     courtID.String(),
		"booking_date": "2025-06-16",
		"start_time":   "10:00",
		"end_time":     "12:00",
	}

	s.Run("success: reports availability with messages", func() {
		s.mockAvailability.EXPECT().
			Check(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params availability.CheckParams) (*availability.CheckResult, error) {
				s.Equal(courtID, params.CourtID)
				s.Equal("10:00", params.StartTime)
				return &availability.CheckResult{
					Available: true,
					Messages:  []string{availability.AllAvailableMessage},
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
		s.Equal([]string{availability.AllAvailableMessage}, response.Messages)
	})

	s.Run("success: an occupied slot is still a 200", func() {
		s.mockAvailability.EXPECT().
			Check(gomock.Any(), gomock.Any()).
			Return(&availability.CheckResult{
				Available: false,
				Messages:  []string{"Court is already booked from 10:00 to 11:00"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
	})

	s.Run("error: 400 for a bad time format", func() {
		s.mockAvailability.EXPECT().
			Check(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidTimeFormat).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid time format")
	})
}

func (s *BookingHandlerTestSuite) TestCalculatePrice() {
	url := "/api/bookings/calculate-price"
	courtID := uuid.New()

	body := map[string]any{
		"court_id":     courtID.String(),
		"booking_date": "2025-06-21",
		"start_time":   "18:00",
		"end_time":     "20:00",
	}

	s.Run("success: returns the itemized breakdown", func() {
		s.mockQuote.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			Return(&pricing.Breakdown{
				BasePrice:    2000,
				PeakHourFee:  600,
				Total:        2600,
				AppliedRules: []string{"Evening Peak"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2600.0, response.Breakdown.Total)
		s.Equal([]string{"Evening Peak"}, response.Breakdown.AppliedRules)
	})

	s.Run("error: 404 for an unknown court", func() {
		s.mockQuote.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrCourtNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Court not found")
	})

	s.Run("error: 400 for an inverted time range", func() {
		s.mockQuote.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidTimeRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid time range")
	})
}
