package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/schedule"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/availability"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResourceUnavailableError carries the per-resource diagnostics of a failed
// availability check. It is a modeled outcome, not an infrastructure error.
type ResourceUnavailableError struct {
	Messages []string
}

func (e *ResourceUnavailableError) Error() string {
	return "resources not available"
}

type EquipmentItem struct {
	EquipmentID uuid.UUID
	Quantity    int
}

type CreateBookingInput struct {
	CourtID   uuid.UUID
	Date      time.Time
	StartTime string
	EndTime   string
	CoachID   *uuid.UUID
	Equipment []EquipmentItem
	Notes     string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput, userID uuid.UUID) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, actor queries.Actor, id uuid.UUID) (*queries.BookingView, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo  BookingRepository
	catalog      shared.CatalogReadStore
	rules        shared.RuleSource
	checker      availability.Checker
	locks        LockManager
	bookingViews queries.BookingReadStore
	db           *pgxpool.Pool
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	catalog shared.CatalogReadStore,
	rules shared.RuleSource,
	checker availability.Checker,
	locks LockManager,
	bookingViews queries.BookingReadStore,
	db *pgxpool.Pool,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		rules:        rules,
		checker:      checker,
		locks:        locks,
		bookingViews: bookingViews,
		db:           db,
	}
}

func (u *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	in CreateBookingInput,
	userID uuid.UUID,
) (*queries.BookingView, error) {
	window, err := u.parseWindow(in)
	if err != nil {
		return nil, err
	}

	court, err := u.catalog.FindCourt(ctx, in.CourtID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if court == nil || !court.IsActive {
		return nil, errs.ErrCourtNotFound
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	// Serialize competing writers for this court-day before checking, so no
	// two callers can both observe "available" and both insert.
	if err := u.locks.AcquireCourtDay(ctx, tx, in.CourtID, window.Date()); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	checkInput := availability.CheckInput{
		CourtID: in.CourtID,
		CoachID: in.CoachID,
		Window:  window,
	}
	for _, item := range in.Equipment {
		checkInput.Equipment = append(checkInput.Equipment, availability.EquipmentRequest{
			EquipmentID: item.EquipmentID,
			Quantity:    item.Quantity,
		})
	}

	checkResult, err := u.checker.CheckAll(ctx, checkInput)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !checkResult.Available {
		return nil, &ResourceUnavailableError{Messages: checkResult.Messages}
	}

	breakdown, err := u.priceBooking(ctx, court, window, in)
	if err != nil {
		return nil, err
	}

	lines := make([]booking.EquipmentLine, 0, len(in.Equipment))
	for _, item := range in.Equipment {
		lines = append(lines, booking.EquipmentLine{
			EquipmentID: item.EquipmentID,
			Quantity:    item.Quantity,
		})
	}

	entity, err := booking.NewBooking(userID, in.CourtID, in.CoachID, window, lines, *breakdown, in.Notes)
	if err != nil {
		return nil, err
	}

	bookingID, err := u.bookingRepo.Create(ctx, tx, entity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, errs.ErrDatabaseOperationFailed)
	}

	view, err := u.bookingViews.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *bookingCommandsImpl) parseWindow(in CreateBookingInput) (schedule.Window, error) {
	start, err := schedule.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return schedule.Window{}, errs.Mark(err, errs.ErrInvalidTimeFormat)
	}
	end, err := schedule.ParseTimeOfDay(in.EndTime)
	if err != nil {
		return schedule.Window{}, errs.Mark(err, errs.ErrInvalidTimeFormat)
	}
	window, err := schedule.NewWindow(in.Date, start, end)
	if err != nil {
		return schedule.Window{}, errs.Mark(err, errs.ErrInvalidTimeRange)
	}
	return window, nil
}

// priceBooking resolves rates and computes the breakdown that gets frozen
// onto the booking. Unresolvable coach/equipment refs are skipped without a
// fee; the availability check has already rejected missing or inactive
// resources for actual bookings.
func (u *bookingCommandsImpl) priceBooking(
	ctx context.Context,
	court *shared.CourtSnapshot,
	window schedule.Window,
	in CreateBookingInput,
) (*pricing.Breakdown, error) {
	rules, err := u.rules.ActiveRules(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	input := pricing.QuoteInput{
		BasePrice:     court.BasePrice,
		Date:          window.Date(),
		Start:         window.Start(),
		CourtType:     court.Type,
		DurationHours: window.DurationHours(),
		Rules:         rules,
	}

	if in.CoachID != nil {
		coach, err := u.catalog.FindCoach(ctx, *in.CoachID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if coach != nil {
			rate := coach.PricePerHour
			input.CoachRate = &rate
		}
	}

	for _, item := range in.Equipment {
		equipment, err := u.catalog.FindEquipment(ctx, item.EquipmentID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if equipment == nil {
			continue
		}
		input.Equipment = append(input.Equipment, pricing.EquipmentCharge{
			RatePerHour: equipment.PricePerHour,
			Quantity:    item.Quantity,
		})
	}

	breakdown := pricing.Compute(input)
	return &breakdown, nil
}

func (u *bookingCommandsImpl) CancelBooking(
	ctx context.Context,
	actor queries.Actor,
	id uuid.UUID,
) (*queries.BookingView, error) {
	entity, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !entity.IsOwnedBy(actor.ID) && actor.Role != user.RoleAdmin {
		return nil, errs.ErrAccessDenied
	}

	if err := entity.Cancel(); err != nil {
		return nil, errs.Mark(err, errs.ErrBookingCancelled)
	}

	if err := u.bookingRepo.UpdateStatus(ctx, id, entity.Status()); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return u.bookingViews.FindByID(ctx, id)
}

func (u *bookingCommandsImpl) UpdateBookingStatus(
	ctx context.Context,
	id uuid.UUID,
	status string,
) (*queries.BookingView, error) {
	next := booking.Status(status)
	if !next.IsValid() {
		return nil, errs.ErrInvalidStatus
	}

	entity, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := entity.SetStatus(next); err != nil {
		return nil, errs.ErrInvalidStatus
	}

	if err := u.bookingRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return u.bookingViews.FindByID(ctx, id)
}
