package commands

import (
	"context"

	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogCommands interface {
	CreateCourt(ctx context.Context, in CourtInput) (*queries.CourtView, error)
	UpdateCourt(ctx context.Context, id uuid.UUID, in CourtInput) (*queries.CourtView, error)
	DeleteCourt(ctx context.Context, id uuid.UUID) error

	CreateCoach(ctx context.Context, in CoachInput) (*queries.CoachView, error)
	UpdateCoach(ctx context.Context, id uuid.UUID, in CoachInput) (*queries.CoachView, error)
	UpdateCoachAvailability(ctx context.Context, id uuid.UUID, days []CoachAvailabilityDay) (*queries.CoachView, error)
	DeleteCoach(ctx context.Context, id uuid.UUID) error

	CreateEquipment(ctx context.Context, in EquipmentInput) (*queries.EquipmentView, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, in EquipmentInput) (*queries.EquipmentView, error)
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	repo  CatalogRepository
	views queries.CatalogViewStore
}

func NewCatalogCommands(repo CatalogRepository, views queries.CatalogViewStore) CatalogCommands {
	return &catalogCommandsImpl{repo: repo, views: views}
}

func (u *catalogCommandsImpl) CreateCourt(ctx context.Context, in CourtInput) (*queries.CourtView, error) {
	id, err := u.repo.CreateCourt(ctx, in)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicateName
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u.views.FindCourtView(ctx, id)
}

func (u *catalogCommandsImpl) UpdateCourt(ctx context.Context, id uuid.UUID, in CourtInput) (*queries.CourtView, error) {
	if err := u.repo.UpdateCourt(ctx, id, in); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCourtNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u.views.FindCourtView(ctx, id)
}

func (u *catalogCommandsImpl) DeleteCourt(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.DeleteCourt(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrCourtNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *catalogCommandsImpl) CreateCoach(ctx context.Context, in CoachInput) (*queries.CoachView, error) {
	id, err := u.repo.CreateCoach(ctx, in)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicateName
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u.views.FindCoachView(ctx, id)
}

func (u *catalogCommandsImpl) UpdateCoach(ctx context.Context, id uuid.UUID, in CoachInput) (*queries.CoachView, error) {
	if err := u.repo.UpdateCoach(ctx, id, in); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCoachNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u.views.FindCoachView(ctx, id)
}

func (u *catalogCommandsImpl) UpdateCoachAvailability(ctx context.Context, id uuid.UUID, days []CoachAvailabilityDay) (*queries.CoachView, error) {
	if err := u.repo.UpdateCoachAvailability(ctx, id, days); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCoachNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u.views.FindCoachView(ctx, id)
}

func (u *catalogCommandsImpl) DeleteCoach(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.DeleteCoach(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrCoachNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *catalogCommandsImpl) CreateEquipment(ctx context.Context, in EquipmentInput) (*queries.EquipmentView, error) {
	id, err := u.repo.CreateEquipment(ctx, in)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicateName
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u.views.FindEquipmentView(ctx, id)
}

func (u *catalogCommandsImpl) UpdateEquipment(ctx context.Context, id uuid.UUID, in EquipmentInput) (*queries.EquipmentView, error) {
	if err := u.repo.UpdateEquipment(ctx, id, in); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEquipmentNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u.views.FindEquipmentView(ctx, id)
}

func (u *catalogCommandsImpl) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.DeleteEquipment(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrEquipmentNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
