package request

import (
	"time"

	"github.com/google/uuid"
)

const bookingDateLayout = "2006-01-02"

type EquipmentItemRequest struct {
	EquipmentID uuid.UUID `json:"equipment_id" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,min=1"`
}

type CreateBookingRequest struct {
	CourtID     uuid.UUID              `json:"court_id" binding:"required"`
	BookingDate string                 `json:"booking_date" binding:"required"`
	StartTime   string                 `json:"start_time" binding:"required"`
	EndTime     string                 `json:"end_time" binding:"required"`
	CoachID     *uuid.UUID             `json:"coach_id,omitempty"`
	Equipment   []EquipmentItemRequest `json:"equipment,omitempty"`
	Notes       string                 `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ParseDate() (time.Time, error) {
	return time.Parse(bookingDateLayout, r.BookingDate)
}

// CheckAvailabilityRequest is the public availability probe; same shape as
// a booking intent, minus notes.
type CheckAvailabilityRequest struct {
	CourtID     uuid.UUID              `json:"court_id" binding:"required"`
	BookingDate string                 `json:"booking_date" binding:"required"`
	StartTime   string                 `json:"start_time" binding:"required"`
	EndTime     string                 `json:"end_time" binding:"required"`
	CoachID     *uuid.UUID             `json:"coach_id,omitempty"`
	Equipment   []EquipmentItemRequest `json:"equipment,omitempty"`
}

func (r CheckAvailabilityRequest) ParseDate() (time.Time, error) {
	return time.Parse(bookingDateLayout, r.BookingDate)
}

type CalculatePriceRequest struct {
	CourtID     uuid.UUID              `json:"court_id" binding:"required"`
	BookingDate string                 `json:"booking_date" binding:"required"`
	StartTime   string                 `json:"start_time" binding:"required"`
	EndTime     string                 `json:"end_time" binding:"required"`
	CoachID     *uuid.UUID             `json:"coach_id,omitempty"`
	Equipment   []EquipmentItemRequest `json:"equipment,omitempty"`
}

func (r CalculatePriceRequest) ParseDate() (time.Time, error) {
	return time.Parse(bookingDateLayout, r.BookingDate)
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
