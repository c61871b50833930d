package repository

import (
	"context"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PricingRuleRepository struct {
	pool *pgxpool.Pool
}

func NewPricingRuleRepository(pool *pgxpool.Pool) *PricingRuleRepository {
	return &PricingRuleRepository{pool: pool}
}

func (r *PricingRuleRepository) Create(ctx context.Context, in commands.PricingRuleInput) (uuid.UUID, error) {
	conditions, err := pricing.EncodeConditions(in.Conditions)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode rule conditions", err)
	}

	var id uuid.UUID
	err = r.pool.QueryRow(ctx, `
		INSERT INTO pricing_rules (name, rule_type, multiplier, conditions, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		in.Name, string(in.Type), in.Multiplier, conditions, in.IsActive,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("rule name already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create pricing rule", err)
	}
	return id, nil
}

func (r *PricingRuleRepository) Update(ctx context.Context, id uuid.UUID, in commands.PricingRuleInput) error {
	conditions, err := pricing.EncodeConditions(in.Conditions)
	if err != nil {
		return infra.WrapRepoErr("failed to encode rule conditions", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE pricing_rules
		SET name = $2, rule_type = $3, multiplier = $4, conditions = $5,
		    is_active = $6, updated_at = now()
		WHERE id = $1`,
		id, in.Name, string(in.Type), in.Multiplier, conditions, in.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("rule name already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update pricing rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pricing rule not found", errs.ErrRuleNotFound, infra.KindNotFound)
	}
	return nil
}

func (r *PricingRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pricing_rules WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pricing rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pricing rule not found", errs.ErrRuleNotFound, infra.KindNotFound)
	}
	return nil
}
