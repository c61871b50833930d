package commands

import (
	"context"
	"log/slog"

	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PricingRuleCommands interface {
	Create(ctx context.Context, in PricingRuleInput) (*queries.PricingRuleView, error)
	Update(ctx context.Context, id uuid.UUID, in PricingRuleInput) (*queries.PricingRuleView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type pricingRuleCommandsImpl struct {
	repo  PricingRuleRepository
	views queries.PricingRuleReadStore
	cache RuleCacheInvalidator
}

func NewPricingRuleCommands(
	repo PricingRuleRepository,
	views queries.PricingRuleReadStore,
	cache RuleCacheInvalidator,
) PricingRuleCommands {
	return &pricingRuleCommandsImpl{repo: repo, views: views, cache: cache}
}

func (u *pricingRuleCommandsImpl) Create(ctx context.Context, in PricingRuleInput) (*queries.PricingRuleView, error) {
	if err := validateRuleInput(in); err != nil {
		return nil, err
	}

	id, err := u.repo.Create(ctx, in)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicateName
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	u.invalidateCache(ctx)
	return u.views.FindByID(ctx, id)
}

func (u *pricingRuleCommandsImpl) Update(ctx context.Context, id uuid.UUID, in PricingRuleInput) (*queries.PricingRuleView, error) {
	if err := validateRuleInput(in); err != nil {
		return nil, err
	}

	if err := u.repo.Update(ctx, id, in); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRuleNotFound
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicateName
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	u.invalidateCache(ctx)
	return u.views.FindByID(ctx, id)
}

func (u *pricingRuleCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrRuleNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	u.invalidateCache(ctx)
	return nil
}

// Cache invalidation is best-effort: a stale entry expires on its TTL, and
// rule evaluation itself never reads through the cache layer directly.
func (u *pricingRuleCommandsImpl) invalidateCache(ctx context.Context) {
	if err := u.cache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate rule cache", "error", err)
	}
}

func validateRuleInput(in PricingRuleInput) error {
	if !in.Type.IsValid() {
		return errs.ErrInvalidRuleType
	}
	if in.Multiplier < 0 {
		return errs.ErrInvalidMultiplier
	}
	return nil
}
