package availability

import (
	"context"
	"fmt"

	"court-booking/internal/domain/schedule"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// AllAvailableMessage is the sentinel returned when every requested
// resource is free.
const AllAvailableMessage = "All resources available"

// Result is a single checker's verdict. Unavailability is a modeled
// outcome, never an error; errors are infrastructure failures only.
type Result struct {
	Available bool
	Message   string
}

// CheckResult aggregates the per-resource checks.
type CheckResult struct {
	Available bool
	Messages  []string
}

// EquipmentRequest is one requested equipment line.
type EquipmentRequest struct {
	EquipmentID uuid.UUID
	Quantity    int
}

// CheckInput is a booking intent to test against existing reservations.
type CheckInput struct {
	CourtID   uuid.UUID
	CoachID   *uuid.UUID
	Equipment []EquipmentRequest
	Window    schedule.Window
}

type Checker interface {
	CheckCourt(ctx context.Context, courtID uuid.UUID, w schedule.Window) (Result, error)
	CheckCoach(ctx context.Context, coachID *uuid.UUID, w schedule.Window) (Result, error)
	CheckEquipment(ctx context.Context, items []EquipmentRequest, w schedule.Window) (Result, error)
	CheckAll(ctx context.Context, in CheckInput) (*CheckResult, error)
}

type checkerImpl struct {
	reservations shared.ReservationReadStore
	catalog      shared.CatalogReadStore
}

func NewChecker(reservations shared.ReservationReadStore, catalog shared.CatalogReadStore) Checker {
	return &checkerImpl{
		reservations: reservations,
		catalog:      catalog,
	}
}

// CheckCourt scans the court's reservations for the day; the first overlap
// blocks, since a court serves at most one booking at a time.
func (c *checkerImpl) CheckCourt(ctx context.Context, courtID uuid.UUID, w schedule.Window) (Result, error) {
	existing, err := c.reservations.CourtReservations(ctx, courtID, w.Date())
	if err != nil {
		return Result{}, err
	}

	for _, r := range existing {
		if w.OverlapsTimes(r.Start, r.End) {
			return Result{
				Available: false,
				Message:   fmt.Sprintf("Court is already booked from %s to %s", r.Start, r.End),
			}, nil
		}
	}

	return Result{Available: true, Message: "Court is available"}, nil
}

// CheckCoach is trivially available when no coach is requested. A missing
// or inactive coach fails fast; otherwise the same exclusive overlap scan
// applies, restricted to that coach's reservations.
func (c *checkerImpl) CheckCoach(ctx context.Context, coachID *uuid.UUID, w schedule.Window) (Result, error) {
	if coachID == nil {
		return Result{Available: true, Message: "No coach selected"}, nil
	}

	coach, err := c.catalog.FindCoach(ctx, *coachID)
	if err != nil {
		return Result{}, err
	}
	if coach == nil || !coach.IsActive {
		return Result{Available: false, Message: "Coach not available"}, nil
	}

	existing, err := c.reservations.CoachReservations(ctx, *coachID, w.Date())
	if err != nil {
		return Result{}, err
	}

	for _, r := range existing {
		if w.OverlapsTimes(r.Start, r.End) {
			return Result{
				Available: false,
				Message:   fmt.Sprintf("Coach is already booked from %s to %s", r.Start, r.End),
			}, nil
		}
	}

	return Result{Available: true, Message: "Coach is available"}, nil
}

// CheckEquipment accounts for shared, quantity-partitioned stock: the
// remaining quantity for a window is total stock minus the summed
// quantities of overlapping reservations, never a stored counter. Two
// bookings in disjoint windows may each take the full stock.
func (c *checkerImpl) CheckEquipment(ctx context.Context, items []EquipmentRequest, w schedule.Window) (Result, error) {
	if len(items) == 0 {
		return Result{Available: true, Message: "No equipment selected"}, nil
	}

	for _, item := range items {
		equipment, err := c.catalog.FindEquipment(ctx, item.EquipmentID)
		if err != nil {
			return Result{}, err
		}
		if equipment == nil || !equipment.IsActive {
			return Result{
				Available: false,
				Message:   fmt.Sprintf("Equipment %s not available", item.EquipmentID),
			}, nil
		}

		// Static capacity violation: unsatisfiable regardless of schedule.
		if item.Quantity > equipment.TotalStock {
			return Result{
				Available: false,
				Message:   fmt.Sprintf("Only %d %s available in total", equipment.TotalStock, equipment.Name),
			}, nil
		}

		existing, err := c.reservations.EquipmentReservations(ctx, item.EquipmentID, w.Date())
		if err != nil {
			return Result{}, err
		}

		bookedQuantity := 0
		for _, r := range existing {
			if w.OverlapsTimes(r.Start, r.End) {
				bookedQuantity += r.Quantity
			}
		}

		remaining := equipment.TotalStock - bookedQuantity
		if item.Quantity > remaining {
			return Result{
				Available: false,
				Message:   fmt.Sprintf("Only %d %s available during this time slot", remaining, equipment.Name),
			}, nil
		}
	}

	return Result{Available: true, Message: "All equipment available"}, nil
}

// CheckAll runs the three checks independently so the caller sees every
// problem at once. Messages keep court→coach→equipment order; full success
// collapses to the single sentinel message.
func (c *checkerImpl) CheckAll(ctx context.Context, in CheckInput) (*CheckResult, error) {
	result := &CheckResult{Available: true, Messages: []string{}}

	courtResult, err := c.CheckCourt(ctx, in.CourtID, in.Window)
	if err != nil {
		return nil, err
	}
	if !courtResult.Available {
		result.Available = false
		result.Messages = append(result.Messages, courtResult.Message)
	}

	coachResult, err := c.CheckCoach(ctx, in.CoachID, in.Window)
	if err != nil {
		return nil, err
	}
	if !coachResult.Available {
		result.Available = false
		result.Messages = append(result.Messages, coachResult.Message)
	}

	equipmentResult, err := c.CheckEquipment(ctx, in.Equipment, in.Window)
	if err != nil {
		return nil, err
	}
	if !equipmentResult.Available {
		result.Available = false
		result.Messages = append(result.Messages, equipmentResult.Message)
	}

	if result.Available {
		result.Messages = append(result.Messages, AllAvailableMessage)
	}

	return result, nil
}
