package queries

import (
	"context"
	"time"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/schedule"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuoteParams struct {
	CourtID   uuid.UUID
	Date      time.Time
	StartTime string
	EndTime   string
	CoachID   *uuid.UUID
	Equipment []QuoteEquipmentItem
}

type QuoteEquipmentItem struct {
	EquipmentID uuid.UUID
	Quantity    int
}

type QuoteQueries interface {
	Quote(ctx context.Context, params QuoteParams) (*pricing.Breakdown, error)
}

type quoteQueriesImpl struct {
	catalog shared.CatalogReadStore
	rules   shared.RuleSource
}

func NewQuoteQueries(catalog shared.CatalogReadStore, rules shared.RuleSource) QuoteQueries {
	return &quoteQueriesImpl{
		catalog: catalog,
		rules:   rules,
	}
}

// Quote computes the itemized price for a candidate booking without
// touching availability. Coach or equipment references that do not resolve
// are skipped without a fee and without an error; callers needing strict
// validation must pre-check existence themselves.
func (q *quoteQueriesImpl) Quote(ctx context.Context, params QuoteParams) (*pricing.Breakdown, error) {
	start, err := schedule.ParseTimeOfDay(params.StartTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeFormat)
	}
	end, err := schedule.ParseTimeOfDay(params.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeFormat)
	}

	duration := schedule.DurationHours(start, end)
	if duration <= 0 {
		return nil, errs.ErrInvalidTimeRange
	}

	court, err := q.catalog.FindCourt(ctx, params.CourtID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if court == nil || !court.IsActive {
		return nil, errs.ErrCourtNotFound
	}

	rules, err := q.rules.ActiveRules(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	input := pricing.QuoteInput{
		BasePrice:     court.BasePrice,
		Date:          params.Date,
		Start:         start,
		CourtType:     court.Type,
		DurationHours: duration,
		Rules:         rules,
	}

	if params.CoachID != nil {
		coach, err := q.catalog.FindCoach(ctx, *params.CoachID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if coach != nil {
			rate := coach.PricePerHour
			input.CoachRate = &rate
		}
	}

	for _, item := range params.Equipment {
		equipment, err := q.catalog.FindEquipment(ctx, item.EquipmentID)
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
