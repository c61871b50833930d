package queries

import (
	"context"
	"time"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID            uuid.UUID           `json:"id"`
	UserID        uuid.UUID           `json:"user_id"`
	UserName      string              `json:"user_name"`
	UserEmail     string              `json:"user_email"`
	CourtID       uuid.UUID           `json:"court_id"`
	CourtName     string              `json:"court_name"`
	CoachID       *uuid.UUID          `json:"coach_id,omitempty"`
	CoachName     *string             `json:"coach_name,omitempty"`
	BookingDate   time.Time           `json:"booking_date"`
	StartTime     string              `json:"start_time"`
	EndTime       string              `json:"end_time"`
	Equipment     []EquipmentLineView `json:"equipment"`
	Breakdown     pricing.Breakdown   `json:"breakdown"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	Notes         *string             `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type EquipmentLineView struct {
	EquipmentID uuid.UUID `json:"equipment_id"`
	Quantity    int       `json:"quantity"`
}

// Actor identifies who is asking, for ownership checks.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

type BookingListFilter struct {
	Status  *string
	Date    *time.Time
	CourtID *uuid.UUID
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*BookingView, error)
	ListAll(ctx context.Context, filter BookingListFilter) ([]*BookingView, error)
	ListByUser(ctx context.Context, actor Actor, userID uuid.UUID) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingListFilter) ([]*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if view.UserID != actor.ID && actor.Role != user.RoleAdmin {
		return nil, errs.ErrAccessDenied
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, filter BookingListFilter) ([]*BookingView, error) {
	return q.store.List(ctx, filter)
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, actor Actor, userID uuid.UUID) ([]*BookingView, error) {
	if userID != actor.ID && actor.Role != user.RoleAdmin {
		return nil, errs.ErrAccessDenied
	}
	return q.store.ListByUser(ctx, userID)
}
