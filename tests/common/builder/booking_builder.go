//go:build unit || e2e

package builder

import (
	"time"

	dombooking "court-booking/internal/domain/booking"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID    uuid.UUID
	CourtID   uuid.UUID
	CoachID   *uuid.UUID
	Date      time.Time
	StartTime string
	EndTime   string
	Equipment []dombooking.EquipmentLine
	Breakdown pricing.Breakdown
	Notes     string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:    uuid.New(),
		CourtID:   uuid.New(),
		Date:      time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "12:00",
		Equipment: []dombooking.EquipmentLine{
			{EquipmentID: uuid.New(), Quantity: 2},
		},
		Breakdown: pricing.Breakdown{
			BasePrice:    2000,
			Total:        2000,
			AppliedRules: []string{},
		},
		Notes: "Evening practice session",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithCoach(id uuid.UUID) *BookingBuilder {
	b.CoachID = &id
	return b
}

func (b *BookingBuilder) WithEquipment(lines ...dombooking.EquipmentLine) *BookingBuilder {
	b.Equipment = lines
	return b
}

func (b *BookingBuilder) Window() schedule.Window {
	w, err := schedule.NewWindow(
		b.Date,
		schedule.MustParseTimeOfDay(b.StartTime),
		schedule.MustParseTimeOfDay(b.EndTime),
	)
	if err != nil {
		panic(err)
	}
	return w
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.UserID, b.CourtID, b.CoachID, b.Window(), b.Equipment, b.Breakdown, b.Notes)
}
