package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/availability"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	quoteQueries    queries.QuoteQueries
	availability    availability.Service
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	quoteQueries queries.QuoteQueries,
	availabilityService availability.Service,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		quoteQueries:    quoteQueries,
		availability:    availabilityService,
	}
}

// @Summary Create booking
// @Description Book a court with optional coach and equipment
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking date format, expected YYYY-MM-DD",
		})
		return
	}

	input := commands.CreateBookingInput{
		CourtID:   req.CourtID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CoachID:   req.CoachID,
		Notes:     req.Notes,
	}
	for _, item := range req.Equipment {
		input.Equipment = append(input.Equipment, commands.EquipmentItem{
			EquipmentID: item.EquipmentID,
			Quantity:    item.Quantity,
		})
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), input, userID)
	if err != nil {
		var unavailable *commands.ResourceUnavailableError
		switch {
		case errors.As(err, &unavailable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Resources not available",
				"details": unavailable.Messages,
			})
		case errors.Is(err, errs.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found or inactive",
			})
		case errors.Is(err, errs.ErrInvalidTimeFormat):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time format, expected HH:MM",
			})
		case errors.Is(err, errs.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time range. End time must be after start time.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromBookingView(view)
	respondView(c, http.StatusCreated, resp, err)
}

// @Summary List bookings
// @Description List all bookings with optional filters (admin)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status"
// @Param date query string false "Booking date (YYYY-MM-DD)"
// @Param court_id query string false "Court ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var filter queries.BookingListFilter

	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		filter.Date = &date
	}
	if courtIDStr := c.Query("court_id"); courtIDStr != "" {
		courtID, err := uuid.Parse(courtIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid court ID format",
			})
			return
		}
		filter.CourtID = &courtID
	}

	views, err := h.bookingQueries.ListAll(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromBookingViews(views)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary List user bookings
// @Description List bookings for a user; users may only see their own
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /bookings/user/{userId} [get]
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), actor, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not authorized to view these bookings",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromBookingViews(views)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Get booking
// @Description Get a booking by ID; users may only see their own
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	resp, err := resdto.FromBookingView(view)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Cancel booking
// @Description Cancel a booking; users may only cancel their own
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/cancel [put]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingCommands.CancelBooking(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingCancelled):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Booking is already cancelled",
			})
		default:
			h.writeBookingError(c, err)
		}
		return
	}

	resp, err := resdto.FromBookingView(view)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Update booking status
// @Description Update a booking's status (admin)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status update"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/status [put]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.UpdateBookingStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking status",
			})
		default:
			h.writeBookingError(c, err)
		}
		return
	}

	resp, err := resdto.FromBookingView(view)
	respondView(c, http.StatusOK, resp, err)
}

// @Summary Check availability
// @Description Check court, coach and equipment availability for a slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Availability request"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /bookings/check-availability [post]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking date format, expected YYYY-MM-DD",
		})
		return
	}

	params := availability.CheckParams{
		CourtID:   req.CourtID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CoachID:   req.CoachID,
	}
	for _, item := range req.Equipment {
		params.Equipment = append(params.Equipment, availability.EquipmentRequest{
			EquipmentID: item.EquipmentID,
			Quantity:    item.Quantity,
		})
	}

	result, err := h.availability.Check(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidTimeFormat):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time format, expected HH:MM",
			})
		case errors.Is(err, errs.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time range. End time must be after start time.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		Available: result.Available,
		Messages:  result.Messages,
	})
}

// @Summary Calculate price
// @Description Compute an itemized price quote for a candidate booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CalculatePriceRequest true "Price request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/calculate-price [post]
func (h *BookingHandler) CalculatePrice(c *gin.Context) {
	var req reqdto.CalculatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking date format, expected YYYY-MM-DD",
		})
		return
	}

	params := queries.QuoteParams{
		CourtID:   req.CourtID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CoachID:   req.CoachID,
	}
	for _, item := range req.Equipment {
		params.Equipment = append(params.Equipment, queries.QuoteEquipmentItem{
			EquipmentID: item.EquipmentID,
			Quantity:    item.Quantity,
		})
	}

	breakdown, err := h.quoteQueries.Quote(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		case errors.Is(err, errs.ErrInvalidTimeFormat):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time format, expected HH:MM",
			})
		case errors.Is(err, errs.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time range. End time must be after start time.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.QuoteResponse{Breakdown: *breakdown})
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, errs.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not authorized to access this booking",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func currentActor(c *gin.Context) (queries.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return queries.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return queries.Actor{}, false
	}
	return queries.Actor{ID: userID, Role: role}, true
}
