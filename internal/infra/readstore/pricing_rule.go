package readstore

import (
	"context"
	"errors"
	"log/slog"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/infra"
	"court-booking/internal/infra/rulecache"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RuleCache is the read-through cache in front of the active rule set.
type RuleCache interface {
	Get(ctx context.Context) ([]pricing.Rule, error)
	Set(ctx context.Context, rules []pricing.Rule) error
}

type PricingRuleReadStore struct {
	pool  *pgxpool.Pool
	cache RuleCache
}

func NewPricingRuleReadStore(pool *pgxpool.Pool, cache RuleCache) *PricingRuleReadStore {
	return &PricingRuleReadStore{pool: pool, cache: cache}
}

func (r *PricingRuleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PricingRuleView, error) {
	var v queries.PricingRuleView
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, rule_type, multiplier, conditions, is_active, created_at, updated_at
		FROM pricing_rules
		WHERE id = $1`, id,
	).Scan(&v.ID, &v.Name, &v.Type, &v.Multiplier, &v.Conditions,
		&v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("pricing rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pricing rule by ID", err)
	}
	return &v, nil
}

func (r *PricingRuleReadStore) List(ctx context.Context, filter queries.PricingRuleListFilter) ([]*queries.PricingRuleView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, rule_type, multiplier, conditions, is_active, created_at, updated_at
		FROM pricing_rules
		WHERE ($1::text IS NULL OR rule_type = $1)
		  AND ($2::boolean IS NULL OR is_active = $2)
		ORDER BY created_at`,
		filter.Type, filter.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	defer rows.Close()

	var views []*queries.PricingRuleView
	for rows.Next() {
		var v queries.PricingRuleView
		if err := rows.Scan(&v.ID, &v.Name, &v.Type, &v.Multiplier, &v.Conditions,
			&v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	return views, nil
}

// ActiveRules serves the cached rule set when present, otherwise loads from
// the store in creation order and repopulates the cache. Cache write
// failures are logged and swallowed; the store result still stands.
func (r *PricingRuleReadStore) ActiveRules(ctx context.Context) ([]pricing.Rule, error) {
	cached, err := r.cache.Get(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, rulecache.ErrCacheMiss) {
		slog.Warn("rule cache read failed, falling back to store", "error", err)
	}

	rules, err := r.loadActiveRules(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, rules); err != nil {
		slog.Warn("rule cache write failed", "error", err)
	}
	return rules, nil
}

func (r *PricingRuleReadStore) loadActiveRules(ctx context.Context) ([]pricing.Rule, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, rule_type, multiplier, conditions
		FROM pricing_rules
		WHERE is_active = true
		ORDER BY created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load active pricing rules", err)
	}
	defer rows.Close()

	var rules []pricing.Rule
	for rows.Next() {
		var (
			id            uuid.UUID
			name          string
			ruleType      string
			multiplier    float64
			conditionsRaw []byte
		)
		if err := rows.Scan(&id, &name, &ruleType, &multiplier, &conditionsRaw); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule row", err)
		}

		conditions, err := pricing.DecodeConditions(pricing.RuleType(ruleType), conditionsRaw)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode rule conditions", err)
		}

		rules = append(rules, pricing.Rule{
			ID:         id,
			Name:       name,
			Type:       pricing.RuleType(ruleType),
			Multiplier: multiplier,
			Conditions: conditions,
			IsActive:   true,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load active pricing rules", err)
	}
	return rules, nil
}
