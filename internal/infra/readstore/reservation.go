package readstore

import (
	"context"
	"time"

	"court-booking/internal/domain/schedule"
	"court-booking/internal/infra"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationReadStore projects non-cancelled bookings into per-resource
// reservation snapshots for availability checks. Cancelled bookings are
// filtered here, so callers never see them.
type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

func (r *ReservationReadStore) CourtReservations(ctx context.Context, courtID uuid.UUID, day time.Time) ([]shared.Reservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_time, end_time
		FROM bookings
		WHERE court_id = $1 AND booking_date = $2 AND status <> 'cancelled'
		ORDER BY start_time`,
		courtID, day)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load court reservations", err)
	}
	return collectReservations(rows, false)
}

func (r *ReservationReadStore) CoachReservations(ctx context.Context, coachID uuid.UUID, day time.Time) ([]shared.Reservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_time, end_time
		FROM bookings
		WHERE coach_id = $1 AND booking_date = $2 AND status <> 'cancelled'
		ORDER BY start_time`,
		coachID, day)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load coach reservations", err)
	}
	return collectReservations(rows, false)
}

func (r *ReservationReadStore) EquipmentReservations(ctx context.Context, equipmentID uuid.UUID, day time.Time) ([]shared.Reservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT b.start_time, b.end_time, (line->>'quantity')::int
		FROM bookings b, jsonb_array_elements(b.equipment) line
		WHERE b.booking_date = $2
		  AND b.status <> 'cancelled'
		  AND (line->>'equipment_id')::uuid = $1
		ORDER BY b.start_time`,
		equipmentID, day)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load equipment reservations", err)
	}
	return collectReservations(rows, true)
}

func collectReservations(rows pgx.Rows, withQuantity bool) ([]shared.Reservation, error) {
	defer rows.Close()

	var reservations []shared.Reservation
	for rows.Next() {
		var (
			startRaw string
			endRaw   string
			quantity int
		)
		if withQuantity {
			if err := rows.Scan(&startRaw, &endRaw, &quantity); err != nil {
				return nil, infra.WrapRepoErr("failed to scan reservation row", err)
			}
		} else {
			if err := rows.Scan(&startRaw, &endRaw); err != nil {
				return nil, infra.WrapRepoErr("failed to scan reservation row", err)
			}
		}

		start, err := schedule.ParseTimeOfDay(startRaw)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored start time", err)
		}
		end, err := schedule.ParseTimeOfDay(endRaw)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored end time", err)
		}

		reservations = append(reservations, shared.Reservation{
			Start:    start,
			End:      end,
			Quantity: quantity,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load reservations", err)
	}
	return reservations, nil
}
