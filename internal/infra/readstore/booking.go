package readstore

import (
	"context"
	"encoding/json"
	"errors"

	"court-booking/internal/infra"
	"court-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

// Catalog joins are LEFT JOINs: courts and coaches can be hard-deleted
// while their historical bookings remain readable.
const bookingViewSelect = `
	SELECT b.id, b.user_id, u.name, u.email,
	       b.court_id, COALESCE(c.name, ''),
	       b.coach_id, co.name,
	       b.booking_date, b.start_time, b.end_time,
	       b.equipment, b.price_breakdown,
	       b.status, b.payment_status, b.notes,
	       b.created_at, b.updated_at
	FROM bookings b
	JOIN users u ON u.id = b.user_id
	LEFT JOIN courts c ON c.id = b.court_id
	LEFT JOIN coaches co ON co.id = b.coach_id`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.pool.QueryRow(ctx, bookingViewSelect+` WHERE b.id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingListFilter) ([]*queries.BookingView, error) {
	rows, err := r.pool.Query(ctx, bookingViewSelect+`
		WHERE ($1::text IS NULL OR b.status = $1)
		  AND ($2::date IS NULL OR b.booking_date = $2)
		  AND ($3::uuid IS NULL OR b.court_id = $3)
		ORDER BY b.booking_date DESC, b.start_time`,
		filter.Status, filter.Date, filter.CourtID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return collectBookingViews(rows)
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.pool.Query(ctx, bookingViewSelect+`
		WHERE b.user_id = $1
		ORDER BY b.booking_date DESC, b.start_time`,
		userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	return collectBookingViews(rows)
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		v            queries.BookingView
		equipmentRaw []byte
		breakdownRaw []byte
		notes        string
	)

	err := row.Scan(&v.ID, &v.UserID, &v.UserName, &v.UserEmail,
		&v.CourtID, &v.CourtName,
		&v.CoachID, &v.CoachName,
		&v.BookingDate, &v.StartTime, &v.EndTime,
		&equipmentRaw, &breakdownRaw,
		&v.Status, &v.PaymentStatus, &notes,
		&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(equipmentRaw) > 0 {
		if err := json.Unmarshal(equipmentRaw, &v.Equipment); err != nil {
			return nil, err
		}
	}
	if v.Equipment == nil {
		v.Equipment = []queries.EquipmentLineView{}
	}

	if err := json.Unmarshal(breakdownRaw, &v.Breakdown); err != nil {
		return nil, err
	}

	if notes != "" {
		v.Notes = &notes
	}

	return &v, nil
}
