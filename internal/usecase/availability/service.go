package availability

import (
	"context"
	"time"

	"court-booking/internal/domain/schedule"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// CheckParams is the raw, unparsed form of a check request as it arrives
// over the API.
type CheckParams struct {
	CourtID   uuid.UUID
	Date      time.Time
	StartTime string
	EndTime   string
	CoachID   *uuid.UUID
	Equipment []EquipmentRequest
}

type Service interface {
	Check(ctx context.Context, params CheckParams) (*CheckResult, error)
}

type serviceImpl struct {
	checker Checker
}

func NewService(checker Checker) Service {
	return &serviceImpl{checker: checker}
}

func (s *serviceImpl) Check(ctx context.Context, params CheckParams) (*CheckResult, error) {
	start, err := schedule.ParseTimeOfDay(params.StartTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeFormat)
	}
	end, err := schedule.ParseTimeOfDay(params.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeFormat)
	}
	window, err := schedule.NewWindow(params.Date, start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeRange)
	}

	return s.checker.CheckAll(ctx, CheckInput{
		CourtID:   params.CourtID,
		CoachID:   params.CoachID,
		Equipment: params.Equipment,
		Window:    window,
	})
}
