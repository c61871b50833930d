package queries

import (
	"context"
	"encoding/json"
	"time"

	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type PricingRuleView struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Multiplier float64         `json:"multiplier"`
	Conditions json.RawMessage `json:"conditions"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type PricingRuleListFilter struct {
	Type     *string
	IsActive *bool
}

type PricingRuleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PricingRuleView, error)
	List(ctx context.Context, filter PricingRuleListFilter) ([]*PricingRuleView, error)
}

type PricingRuleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PricingRuleView, error)
	List(ctx context.Context, filter PricingRuleListFilter) ([]*PricingRuleView, error)
}

type pricingRuleQueriesImpl struct {
	store PricingRuleReadStore
}

func NewPricingRuleQueries(store PricingRuleReadStore) PricingRuleQueries {
	return &pricingRuleQueriesImpl{store: store}
}

func (q *pricingRuleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PricingRuleView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRuleNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *pricingRuleQueriesImpl) List(ctx context.Context, filter PricingRuleListFilter) ([]*PricingRuleView, error) {
	return q.store.List(ctx, filter)
}
