package shared

import (
	"context"
	"time"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

// Write-side snapshots keep the usecases off the read-side query types.

type CourtSnapshot struct {
	ID        uuid.UUID
	Name      string
	Type      string // indoor|outdoor
	Sport     string
	BasePrice float64
	IsActive  bool
}

type CoachSnapshot struct {
	ID           uuid.UUID
	Name         string
	PricePerHour float64
	IsActive     bool
}

type EquipmentSnapshot struct {
	ID           uuid.UUID
	Name         string
	TotalStock   int
	PricePerHour float64
	IsActive     bool
}

// Reservation is the read-only view of an existing non-cancelled booking's
// claim on one resource. Quantity is meaningful for equipment only.
type Reservation struct {
	Start    schedule.TimeOfDay
	End      schedule.TimeOfDay
	Quantity int
}

// CatalogReadStore resolves catalog resources. Absent resources come back
// as (nil, nil); errors are infrastructure failures only.
type CatalogReadStore interface {
	FindCourt(ctx context.Context, id uuid.UUID) (*CourtSnapshot, error)
	FindCoach(ctx context.Context, id uuid.UUID) (*CoachSnapshot, error)
	FindEquipment(ctx context.Context, id uuid.UUID) (*EquipmentSnapshot, error)
}

// ReservationReadStore returns every non-cancelled reservation touching a
// resource on a calendar day.
type ReservationReadStore interface {
	CourtReservations(ctx context.Context, courtID uuid.UUID, day time.Time) ([]Reservation, error)
	CoachReservations(ctx context.Context, coachID uuid.UUID, day time.Time) ([]Reservation, error)
	EquipmentReservations(ctx context.Context, equipmentID uuid.UUID, day time.Time) ([]Reservation, error)
}

// RuleSource supplies the active pricing rules in store order.
type RuleSource interface {
	ActiveRules(ctx context.Context) ([]pricing.Rule, error)
}
