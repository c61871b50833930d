package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/schedule"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// equipmentLineDoc is the jsonb shape of one equipment line on a booking.
type equipmentLineDoc struct {
	EquipmentID uuid.UUID `json:"equipment_id"`
	Quantity    int       `json:"quantity"`
}

func encodeEquipment(lines []booking.EquipmentLine) ([]byte, error) {
	docs := make([]equipmentLineDoc, 0, len(lines))
	for _, l := range lines {
		docs = append(docs, equipmentLineDoc{EquipmentID: l.EquipmentID, Quantity: l.Quantity})
	}
	return json.Marshal(docs)
}

func decodeEquipment(raw []byte) ([]booking.EquipmentLine, error) {
	var docs []equipmentLineDoc
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &docs); err != nil {
			return nil, err
		}
	}
	lines := make([]booking.EquipmentLine, 0, len(docs))
	for _, d := range docs {
		lines = append(lines, booking.EquipmentLine{EquipmentID: d.EquipmentID, Quantity: d.Quantity})
	}
	return lines, nil
}

func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) (uuid.UUID, error) {
	equipmentJSON, err := encodeEquipment(b.Equipment())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode booking equipment", err)
	}

	breakdownJSON, err := json.Marshal(b.Breakdown())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode price breakdown", err)
	}

	var id uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (
			id, user_id, court_id, coach_id, booking_date, start_time, end_time,
			equipment, price_breakdown, total_price, status, payment_status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`,
		b.ID(), b.UserID(), b.CourtID(), b.CoachID(),
		b.Window().Date(), b.Window().Start().String(), b.Window().End().String(),
		equipmentJSON, breakdownJSON, b.Breakdown().Total,
		string(b.Status()), string(b.PaymentStatus()), b.Notes(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		userID        uuid.UUID
		courtID       uuid.UUID
		coachID       *uuid.UUID
		bookingDate   time.Time
		startTime     string
		endTime       string
		equipmentRaw  []byte
		breakdownRaw  []byte
		status        string
		paymentStatus string
		notes         string
		createdAt     time.Time
		updatedAt     time.Time
	)

	err := r.pool.QueryRow(ctx, `
		SELECT user_id, court_id, coach_id, booking_date, start_time, end_time,
		       equipment, price_breakdown, status, payment_status, notes,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1`, id,
	).Scan(&userID, &courtID, &coachID, &bookingDate, &startTime, &endTime,
		&equipmentRaw, &breakdownRaw, &status, &paymentStatus, &notes,
		&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	start, err := schedule.ParseTimeOfDay(startTime)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored start time", err)
	}
	end, err := schedule.ParseTimeOfDay(endTime)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored end time", err)
	}
	window, err := schedule.NewWindow(bookingDate, start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored booking window", err)
	}

	equipment, err := decodeEquipment(equipmentRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking equipment", err)
	}

	var breakdown pricing.Breakdown
	if err := json.Unmarshal(breakdownRaw, &breakdown); err != nil {
		return nil, infra.WrapRepoErr("failed to decode price breakdown", err)
	}

	return booking.ReconstructBooking(
		id, userID, courtID, coachID, window, equipment, breakdown,
		booking.Status(status), booking.PaymentStatus(paymentStatus),
		notes, createdAt, updatedAt,
	), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", errs.ErrBookingNotFound, infra.KindNotFound)
	}
	return nil
}

type LockManager struct{}

func NewLockManager() *LockManager {
	return &LockManager{}
}

// AcquireCourtDay takes a transaction-scoped advisory lock keyed on the
// court and calendar day, so concurrent bookings for the same slot queue
// up behind each other instead of both passing the availability check.
func (m *LockManager) AcquireCourtDay(ctx context.Context, tx pgx.Tx, courtID uuid.UUID, day time.Time) error {
	key := courtID.String() + ":" + day.Format("2006-01-02")
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return infra.WrapRepoErr("failed to acquire court-day lock", err)
	}
	return nil
}
