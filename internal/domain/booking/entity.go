package booking

import (
	"errors"
	"time"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity  = errors.New("equipment quantity must be positive")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrInvalidStatus    = errors.New("invalid booking status")
)

// EquipmentLine is one equipment reservation on a booking.
type EquipmentLine struct {
	EquipmentID uuid.UUID
	Quantity    int
}

type Booking struct {
	id            uuid.UUID
	userID        uuid.UUID
	courtID       uuid.UUID
	coachID       *uuid.UUID
	window        schedule.Window
	equipment     []EquipmentLine
	breakdown     pricing.Breakdown
	status        Status
	paymentStatus PaymentStatus
	notes         string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking freezes the given price breakdown into a confirmed booking.
func NewBooking(
	userID, courtID uuid.UUID,
	coachID *uuid.UUID,
	window schedule.Window,
	equipment []EquipmentLine,
	breakdown pricing.Breakdown,
	notes string,
) (*Booking, error) {
	for _, line := range equipment {
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	return &Booking{
		id:            uuid.New(),
		userID:        userID,
		courtID:       courtID,
		coachID:       coachID,
		window:        window,
		equipment:     equipment,
		breakdown:     breakdown,
		status:        StatusConfirmed,
		paymentStatus: PaymentPending,
		notes:         notes,
	}, nil
}

func ReconstructBooking(
	id, userID, courtID uuid.UUID,
	coachID *uuid.UUID,
	window schedule.Window,
	equipment []EquipmentLine,
	breakdown pricing.Breakdown,
	status Status,
	paymentStatus PaymentStatus,
	notes string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		userID:        userID,
		courtID:       courtID,
		coachID:       coachID,
		window:        window,
		equipment:     equipment,
		breakdown:     breakdown,
		status:        status,
		paymentStatus: paymentStatus,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Cancel marks the booking cancelled; from that moment it no longer counts
// toward any availability or stock arithmetic.
func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) SetStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	b.status = s
	return nil
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) UserID() uuid.UUID             { return b.userID }
func (b *Booking) CourtID() uuid.UUID            { return b.courtID }
func (b *Booking) CoachID() *uuid.UUID           { return b.coachID }
func (b *Booking) Window() schedule.Window       { return b.window }
func (b *Booking) Equipment() []EquipmentLine    { return b.equipment }
func (b *Booking) Breakdown() pricing.Breakdown  { return b.breakdown }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus  { return b.paymentStatus }
func (b *Booking) Notes() string                 { return b.notes }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time          { return b.updatedAt }
