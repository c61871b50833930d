package queries

import (
	"context"
	"encoding/json"
	"time"

	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type CourtView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Sport       string    `json:"sport"`
	BasePrice   float64   `json:"base_price"`
	Capacity    int       `json:"capacity"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CoachView struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Specialization string          `json:"specialization"`
	Experience     int             `json:"experience"`
	PricePerHour   float64         `json:"price_per_hour"`
	Availability   json.RawMessage `json:"availability"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type EquipmentView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	TotalStock   int       `json:"total_stock"`
	PricePerHour float64   `json:"price_per_hour"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CourtListFilter struct {
	Type  *string
	Sport *string
}

type CatalogQueries interface {
	GetCourt(ctx context.Context, id uuid.UUID) (*CourtView, error)
	ListCourts(ctx context.Context, filter CourtListFilter) ([]*CourtView, error)
	GetCoach(ctx context.Context, id uuid.UUID) (*CoachView, error)
	ListCoaches(ctx context.Context) ([]*CoachView, error)
	GetEquipment(ctx context.Context, id uuid.UUID) (*EquipmentView, error)
	ListEquipment(ctx context.Context) ([]*EquipmentView, error)
}

type CatalogViewStore interface {
	FindCourtView(ctx context.Context, id uuid.UUID) (*CourtView, error)
	ListCourtViews(ctx context.Context, filter CourtListFilter) ([]*CourtView, error)
	FindCoachView(ctx context.Context, id uuid.UUID) (*CoachView, error)
	ListCoachViews(ctx context.Context) ([]*CoachView, error)
	FindEquipmentView(ctx context.Context, id uuid.UUID) (*EquipmentView, error)
	ListEquipmentViews(ctx context.Context) ([]*EquipmentView, error)
}

type catalogQueriesImpl struct {
	store CatalogViewStore
}

func NewCatalogQueries(store CatalogViewStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) GetCourt(ctx context.Context, id uuid.UUID) (*CourtView, error) {
	view, err := q.store.FindCourtView(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCourtNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListCourts(ctx context.Context, filter CourtListFilter) ([]*CourtView, error) {
	return q.store.ListCourtViews(ctx, filter)
}

func (q *catalogQueriesImpl) GetCoach(ctx context.Context, id uuid.UUID) (*CoachView, error) {
	view, err := q.store.FindCoachView(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCoachNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListCoaches(ctx context.Context) ([]*CoachView, error) {
	return q.store.ListCoachViews(ctx)
}

func (q *catalogQueriesImpl) GetEquipment(ctx context.Context, id uuid.UUID) (*EquipmentView, error) {
	view, err := q.store.FindEquipmentView(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEquipmentNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListEquipment(ctx context.Context) ([]*EquipmentView, error) {
	return q.store.ListEquipmentViews(ctx)
}
