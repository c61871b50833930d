//go:build e2e

package readstore_test

import (
	"context"
	"testing"
	"time"

	"court-booking/internal/domain/schedule"
	"court-booking/internal/infra/readstore"
	"court-booking/internal/usecase/availability"
	"court-booking/internal/usecase/shared"
	"court-booking/tests/common/dbtest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReservationReadStoreSuite struct {
	suite.Suite
	pool   *pgxpool.Pool
	store  *readstore.ReservationReadStore
	userID uuid.UUID
	day    time.Time
}

func (s *ReservationReadStoreSuite) SetupSuite() {
	s.pool = dbtest.NewPool(s.T())
	s.store = readstore.NewReservationReadStore(s.pool)
	s.userID = dbtest.SeedUser(s.T(), s.pool, "player@example.com")
	s.day = time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
}

func TestReservationReadStoreSuite(t *testing.T) {
	suite.Run(t, new(ReservationReadStoreSuite))
}

type bookingRow struct {
	courtID   uuid.UUID
	coachID   *uuid.UUID
	startTime string
	endTime   string
	equipment string // jsonb document, "[]" when absent
	status    string
}

func (s *ReservationReadStoreSuite) insertBooking(row bookingRow) {
	t := s.T()
	t.Helper()

	if row.equipment == "" {
		row.equipment = "[]"
	}
	_, err := s.pool.Exec(context.Background(), `
		INSERT INTO bookings
			(user_id, court_id, coach_id, booking_date, start_time, end_time,
			 equipment, price_breakdown, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, '{}', 100, $8)`,
		s.userID, row.courtID, row.coachID, s.day,
		row.startTime, row.endTime, row.equipment, row.status)
	require.NoError(t, err, "booking fixture insert failed")
}

func reservation(start, end string, quantity int) shared.Reservation {
	return shared.Reservation{
		Start:    schedule.MustParseTimeOfDay(start),
		End:      schedule.MustParseTimeOfDay(end),
		Quantity: quantity,
	}
}

// =============================================================================
// Court reservations
// =============================================================================

func (s *ReservationReadStoreSuite) TestCourtReservations() {
	s.Run("Normal case: cancelled bookings are excluded, rest ordered by start time", func() {
		t := s.T()
		courtID := uuid.New()

		s.insertBooking(bookingRow{courtID: courtID, startTime: "14:00", endTime: "15:00", status: "confirmed"})
		s.insertBooking(bookingRow{courtID: courtID, startTime: "10:00", endTime: "11:00", status: "cancelled"})
		s.insertBooking(bookingRow{courtID: courtID, startTime: "09:00", endTime: "10:00", status: "completed"})

		got, err := s.store.CourtReservations(context.Background(), courtID, s.day)
		require.NoError(t, err)

		want := []shared.Reservation{
			reservation("09:00", "10:00", 0),
			reservation("14:00", "15:00", 0),
		}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(schedule.TimeOfDay{})); diff != "" {
			t.Errorf("court reservations mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: a court with only cancelled bookings has no reservations", func() {
		t := s.T()
		courtID := uuid.New()

		s.insertBooking(bookingRow{courtID: courtID, startTime: "10:00", endTime: "11:00", status: "cancelled"})

		got, err := s.store.CourtReservations(context.Background(), courtID, s.day)
		require.NoError(t, err)
		require.Empty(t, got, "cancelled bookings must not reserve the court")
	})

	s.Run("Normal case: other courts and other days are not picked up", func() {
		t := s.T()
		courtID := uuid.New()

		s.insertBooking(bookingRow{courtID: uuid.New(), startTime: "10:00", endTime: "11:00", status: "confirmed"})

		otherDay := s.day.AddDate(0, 0, 1)
		_, err := s.pool.Exec(context.Background(), `
			INSERT INTO bookings
				(user_id, court_id, booking_date, start_time, end_time,
				 equipment, price_breakdown, total_price, status)
			VALUES ($1, $2, $3, '10:00', '11:00', '[]', '{}', 100, 'confirmed')`,
			s.userID, courtID, otherDay)
		require.NoError(t, err)

		got, err := s.store.CourtReservations(context.Background(), courtID, s.day)
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

// =============================================================================
// Coach reservations
// =============================================================================

func (s *ReservationReadStoreSuite) TestCoachReservations() {
	s.Run("Normal case: cancelled coach bookings are excluded", func() {
		t := s.T()
		coachID := uuid.New()

		s.insertBooking(bookingRow{courtID: uuid.New(), coachID: &coachID, startTime: "10:00", endTime: "11:00", status: "cancelled"})
		s.insertBooking(bookingRow{courtID: uuid.New(), coachID: &coachID, startTime: "12:00", endTime: "13:00", status: "confirmed"})

		got, err := s.store.CoachReservations(context.Background(), coachID, s.day)
		require.NoError(t, err)

		want := []shared.Reservation{reservation("12:00", "13:00", 0)}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(schedule.TimeOfDay{})); diff != "" {
			t.Errorf("coach reservations mismatch (-want +got):\n%s", diff)
		}
	})
}

// =============================================================================
// Equipment reservations
// =============================================================================

func (s *ReservationReadStoreSuite) TestEquipmentReservations() {
	s.Run("Normal case: quantity is projected per matching equipment line", func() {
		t := s.T()
		equipmentID := uuid.New()
		otherEquipmentID := uuid.New()

		s.insertBooking(bookingRow{
			courtID:   uuid.New(),
			startTime: "10:00",
			endTime:   "11:00",
			equipment: `[{"equipment_id": "` + equipmentID.String() + `", "quantity": 3},
			             {"equipment_id": "` + otherEquipmentID.String() + `", "quantity": 5}]`,
			status: "confirmed",
		})
		s.insertBooking(bookingRow{
			courtID:   uuid.New(),
			startTime: "09:00",
			endTime:   "10:30",
			equipment: `[{"equipment_id": "` + equipmentID.String() + `", "quantity": 2}]`,
			status:    "confirmed",
		})

		got, err := s.store.EquipmentReservations(context.Background(), equipmentID, s.day)
		require.NoError(t, err)

		want := []shared.Reservation{
			reservation("09:00", "10:30", 2),
			reservation("10:00", "11:00", 3),
		}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(schedule.TimeOfDay{})); diff != "" {
			t.Errorf("equipment reservations mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: cancelled bookings do not hold equipment stock", func() {
		t := s.T()
		equipmentID := uuid.New()

		s.insertBooking(bookingRow{
			courtID:   uuid.New(),
			startTime: "10:00",
			endTime:   "11:00",
			equipment: `[{"equipment_id": "` + equipmentID.String() + `", "quantity": 4}]`,
			status:    "cancelled",
		})

		got, err := s.store.EquipmentReservations(context.Background(), equipmentID, s.day)
		require.NoError(t, err)
		require.Empty(t, got, "cancelled bookings must not hold stock")
	})

	s.Run("Normal case: bookings without the requested equipment are skipped", func() {
		t := s.T()
		equipmentID := uuid.New()

		s.insertBooking(bookingRow{courtID: uuid.New(), startTime: "10:00", endTime: "11:00", status: "confirmed"})

		got, err := s.store.EquipmentReservations(context.Background(), equipmentID, s.day)
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

// =============================================================================
// Availability over real reservations
// =============================================================================

func (s *ReservationReadStoreSuite) TestAvailabilityOverStoredBookings() {
	s.Run("Normal case: a cancelled overlapping booking leaves the slot available", func() {
		t := s.T()

		var courtID uuid.UUID
		err := s.pool.QueryRow(context.Background(), `
			INSERT INTO courts (name, court_type, sport, base_price)
			VALUES ('Center Court', 'indoor', 'tennis', 50)
			RETURNING id`).Scan(&courtID)
		require.NoError(t, err)

		s.insertBooking(bookingRow{courtID: courtID, startTime: "10:00", endTime: "11:00", status: "cancelled"})

		service := availability.NewService(availability.NewChecker(s.store, readstore.NewCatalogReadStore(s.pool)))

		result, err := service.Check(context.Background(), availability.CheckParams{
			CourtID:   courtID,
			Date:      s.day,
			StartTime: "10:30",
			EndTime:   "11:30",
		})
		require.NoError(t, err)
		require.True(t, result.Available, "slot overlapping only a cancelled booking must stay available")
		require.Equal(t, []string{availability.AllAvailableMessage}, result.Messages)
	})

	s.Run("Normal case: a confirmed overlapping booking blocks the slot", func() {
		t := s.T()

		var courtID uuid.UUID
		err := s.pool.QueryRow(context.Background(), `
			INSERT INTO courts (name, court_type, sport, base_price)
			VALUES ('Court 2', 'outdoor', 'tennis', 40)
			RETURNING id`).Scan(&courtID)
		require.NoError(t, err)

		s.insertBooking(bookingRow{courtID: courtID, startTime: "10:00", endTime: "11:00", status: "confirmed"})

		service := availability.NewService(availability.NewChecker(s.store, readstore.NewCatalogReadStore(s.pool)))

		result, err := service.Check(context.Background(), availability.CheckParams{
			CourtID:   courtID,
			Date:      s.day,
			StartTime: "10:30",
			EndTime:   "11:30",
		})
		require.NoError(t, err)
		require.False(t, result.Available, "slot overlapping a confirmed booking must be blocked")
	})
}
