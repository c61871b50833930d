//go:build unit

package availability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-booking/internal/domain/schedule"
	"court-booking/internal/usecase/availability"
	"court-booking/internal/usecase/shared"
	sharedmock "court-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func testWindow(t *testing.T, start, end string) schedule.Window {
	t.Helper()
	w, err := schedule.NewWindow(
		time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		schedule.MustParseTimeOfDay(start),
		schedule.MustParseTimeOfDay(end),
	)
	require.NoError(t, err)
	return w
}

func reservation(start, end string, quantity int) shared.Reservation {
	return shared.Reservation{
		Start:    schedule.MustParseTimeOfDay(start),
		End:      schedule.MustParseTimeOfDay(end),
		Quantity: quantity,
	}
}

func TestChecker_CheckCourt(t *testing.T) {
	ctx := context.Background()
	courtID := uuid.New()

	testCases := []struct {
		name          string
		existing      []shared.Reservation
		storeErr      error
		wantAvailable bool
		wantMessage   string
		wantErr       bool
	}{
		{
			name:          "no reservations",
			existing:      nil,
			wantAvailable: true,
			wantMessage:   "Court is available",
		},
		{
			name:          "disjoint reservation",
			existing:      []shared.Reservation{reservation("08:00", "09:00", 0)},
			wantAvailable: true,
			wantMessage:   "Court is available",
		},
		{
			name:          "back to back reservation",
			existing:      []shared.Reservation{reservation("12:00", "14:00", 0)},
			wantAvailable: true,
			wantMessage:   "Court is available",
		},
		{
			name:          "overlapping reservation",
			existing:      []shared.Reservation{reservation("11:00", "13:00", 0)},
			wantAvailable: false,
			wantMessage:   "Court is already booked from 11:00 to 13:00",
		},
		{
			name:     "store failure",
			storeErr: errDBConnectionLost,
			wantErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reservations := sharedmock.NewMockReservationReadStore(ctrl)
			catalog := sharedmock.NewMockCatalogReadStore(ctrl)
			checker := availability.NewChecker(reservations, catalog)

			w := testWindow(t, "10:00", "12:00")
			reservations.EXPECT().
				CourtReservations(ctx, courtID, w.Date()).
				Return(tc.existing, tc.storeErr)

			actual, err := checker.CheckCourt(ctx, courtID, w)
			if tc.wantErr {
				require.ErrorIs(t, err, errDBConnectionLost)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantAvailable, actual.Available)
			assert.Equal(t, tc.wantMessage, actual.Message)
		})
	}
}

func TestChecker_CheckCoach(t *testing.T) {
	ctx := context.Background()
	coachID := uuid.New()

	t.Run("no coach requested", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checker := availability.NewChecker(
			sharedmock.NewMockReservationReadStore(ctrl),
			sharedmock.NewMockCatalogReadStore(ctrl),
		)

		actual, err := checker.CheckCoach(ctx, nil, testWindow(t, "10:00", "12:00"))
		require.NoError(t, err)
		assert.True(t, actual.Available)
		assert.Equal(t, "No coach selected", actual.Message)
	})

	t.Run("unknown coach", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := sharedmock.NewMockCatalogReadStore(ctrl)
		checker := availability.NewChecker(sharedmock.NewMockReservationReadStore(ctrl), catalog)

		catalog.EXPECT().FindCoach(ctx, coachID).Return(nil, nil)

		actual, err := checker.CheckCoach(ctx, &coachID, testWindow(t, "10:00", "12:00"))
		require.NoError(t, err)
		assert.False(t, actual.Available)
		assert.Equal(t, "Coach not available", actual.Message)
	})

	t.Run("inactive coach", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := sharedmock.NewMockCatalogReadStore(ctrl)
		checker := availability.NewChecker(sharedmock.NewMockReservationReadStore(ctrl), catalog)

		catalog.EXPECT().FindCoach(ctx, coachID).
			Return(&shared.CoachSnapshot{ID: coachID, Name: "Sato", IsActive: false}, nil)

		actual, err := checker.CheckCoach(ctx, &coachID, testWindow(t, "10:00", "12:00"))
		require.NoError(t, err)
		assert.False(t, actual.Available)
		assert.Equal(t, "Coach not available", actual.Message)
	})

	t.Run("coach double booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := sharedmock.NewMockCatalogReadStore(ctrl)
		reservations := sharedmock.NewMockReservationReadStore(ctrl)
		checker := availability.NewChecker(reservations, catalog)

		w := testWindow(t, "10:00", "12:00")
		catalog.EXPECT().FindCoach(ctx, coachID).
			Return(&shared.CoachSnapshot{ID: coachID, Name: "Sato", IsActive: true}, nil)
		reservations.EXPECT().CoachReservations(ctx, coachID, w.Date()).
			Return([]shared.Reservation{reservation("09:00", "11:00", 0)}, nil)

		actual, err := checker.CheckCoach(ctx, &coachID, w)
		require.NoError(t, err)
		assert.False(t, actual.Available)
		assert.Equal(t, "Coach is already booked from 09:00 to 11:00", actual.Message)
	})

	t.Run("coach free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := sharedmock.NewMockCatalogReadStore(ctrl)
		reservations := sharedmock.NewMockReservationReadStore(ctrl)
		checker := availability.NewChecker(reservations, catalog)

		w := testWindow(t, "10:00", "12:00")
		catalog.EXPECT().FindCoach(ctx, coachID).
			Return(&shared.CoachSnapshot{ID: coachID, Name: "Sato", IsActive: true}, nil)
		reservations.EXPECT().CoachReservations(ctx, coachID, w.Date()).
			Return([]shared.Reservation{reservation("13:00", "14:00", 0)}, nil)

		actual, err := checker.CheckCoach(ctx, &coachID, w)
		require.NoError(t, err)
		assert.True(t, actual.Available)
		assert.Equal(t, "Coach is available", actual.Message)
	})
}

func TestChecker_CheckEquipment(t *testing.T) {
	ctx := context.Background()
	equipmentID := uuid.New()
	racket := &shared.EquipmentSnapshot{
		ID:           equipmentID,
		Name:         "Racket",
		TotalStock:   5,
		PricePerHour: 100,
		IsActive:     true,
	}

	t.Run("no equipment requested", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		checker := availability.NewChecker(
			sharedmock.NewMockReservationReadStore(ctrl),
			sharedmock.NewMockCatalogReadStore(ctrl),
		)

		actual, err := checker.CheckEquipment(ctx, nil, testWindow(t, "10:00", "12:00"))
		require.NoError(t, err)
		assert.True(t, actual.Available)
		assert.Equal(t, "No equipment selected", actual.Message)
	})

	t.Run("request above total stock fails without a schedule scan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := sharedmock.NewMockCatalogReadStore(ctrl)
		checker := availability.NewChecker(sharedmock.NewMockReservationReadStore(ctrl), catalog)

		catalog.EXPECT().FindEquipment(ctx, equipmentID).Return(racket, nil)

		actual, err := checker.CheckEquipment(ctx,
			[]availability.EquipmentRequest{{EquipmentID: equipmentID, Quantity: 6}},
			testWindow(t, "10:00", "12:00"))
		require.NoError(t, err)
		assert.False(t, actual.Available)
		assert.Equal(t, "Only 5 Racket available in total", actual.Message)
	})

	t.Run("disjoint windows can each take the full stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := sharedmock.NewMockCatalogReadStore(ctrl)
		reservations := sharedmock.NewMockReservationReadStore(ctrl)
		checker := availability.NewChecker(reservations, catalog)

		w := testWindow(t, "10:00", "12:00")
		catalog.EXPECT().FindEquipment(ctx, equipmentID).Return(racket, nil)
		reservations.EXPECT().EquipmentReservations(ctx, equipmentID, w.Date()).
			Return([]shared.Reservation{reservation("08:00", "10:00", 5)}, nil)

		actual, err := checker.CheckEquipment(ctx,
			[]availability.EquipmentRequest{{EquipmentID: equipmentID, Quantity: 5}}, w)
		require.NoError(t, err)
		assert.True(t, actual.Available)
		assert.Equal(t, "All equipment available", actual.Message)
	})

	t.Run("overlapping quantities are summed against stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := sharedmock.NewMockCatalogReadStore(ctrl)
		reservations := sharedmock.NewMockReservationReadStore(ctrl)
		checker := availability.NewChecker(reservations, catalog)

		w := testWindow(t, "10:00", "12:00")
		catalog.EXPECT().FindEquipment(ctx, equipmentID).Return(racket, nil)
		reservations.EXPECT().EquipmentReservations(ctx, equipmentID, w.Date()).
			Return([]shared.Reservation{
				reservation("09:00", "11:00", 2),
				reservation("11:00", "13:00", 1),
			}, nil)

		actual, err := checker.CheckEquipment(ctx,
			[]availability.EquipmentRequest{{EquipmentID: equipmentID, Quantity: 3}}, w)
		require.NoError(t, err)
		assert.False(t, actual.Available)
		assert.Equal(t, "Only 2 Racket available during this time slot", actual.Message)
	})

	t.Run("inactive equipment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := sharedmock.NewMockCatalogReadStore(ctrl)
		checker := availability.NewChecker(sharedmock.NewMockReservationReadStore(ctrl), catalog)

		inactive := *racket
		inactive.IsActive = false
		catalog.EXPECT().FindEquipment(ctx, equipmentID).Return(&inactive, nil)

		actual, err := checker.CheckEquipment(ctx,
			[]availability.EquipmentRequest{{EquipmentID: equipmentID, Quantity: 1}},
			testWindow(t, "10:00", "12:00"))
		require.NoError(t, err)
		assert.False(t, actual.Available)
	})
}

func TestChecker_CheckAll(t *testing.T) {
	ctx := context.Background()
	courtID := uuid.New()
	coachID := uuid.New()

	t.Run("everything free collapses to the single sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := sharedmock.NewMockCatalogReadStore(ctrl)
		reservations := sharedmock.NewMockReservationReadStore(ctrl)
		checker := availability.NewChecker(reservations, catalog)

		w := testWindow(t, "10:00", "12:00")
		reservations.EXPECT().CourtReservations(ctx, courtID, w.Date()).Return(nil, nil)

		actual, err := checker.CheckAll(ctx, availability.CheckInput{CourtID: courtID, Window: w})
		require.NoError(t, err)
		assert.True(t, actual.Available)
		assert.Equal(t, []string{availability.AllAvailableMessage}, actual.Messages)
	})

	t.Run("all failures are reported in court coach equipment order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := sharedmock.NewMockCatalogReadStore(ctrl)
		reservations := sharedmock.NewMockReservationReadStore(ctrl)
		checker := availability.NewChecker(reservations, catalog)

		w := testWindow(t, "10:00", "12:00")
		equipmentID := uuid.New()

		reservations.EXPECT().CourtReservations(ctx, courtID, w.Date()).
			Return([]shared.Reservation{reservation("10:00", "11:00", 0)}, nil)
		catalog.EXPECT().FindCoach(ctx, coachID).Return(nil, nil)
		catalog.EXPECT().FindEquipment(ctx, equipmentID).Return(nil, nil)

		actual, err := checker.CheckAll(ctx, availability.CheckInput{
			CourtID:   courtID,
			CoachID:   &coachID,
			Equipment: []availability.EquipmentRequest{{EquipmentID: equipmentID, Quantity: 1}},
			Window:    w,
		})
		require.NoError(t, err)
		assert.False(t, actual.Available)
		require.Len(t, actual.Messages, 3)
		assert.Equal(t, "Court is already booked from 10:00 to 11:00", actual.Messages[0])
		assert.Equal(t, "Coach not available", actual.Messages[1])
		assert.Contains(t, actual.Messages[2], "not available")
	})

	t.Run("store failure aborts the whole check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := sharedmock.NewMockCatalogReadStore(ctrl)
		reservations := sharedmock.NewMockReservationReadStore(ctrl)
		checker := availability.NewChecker(reservations, catalog)

		w := testWindow(t, "10:00", "12:00")
		reservations.EXPECT().CourtReservations(ctx, courtID, w.Date()).
			Return(nil, errDBConnectionLost)

		actual, err := checker.CheckAll(ctx, availability.CheckInput{CourtID: courtID, Window: w})
		require.ErrorIs(t, err, errDBConnectionLost)
		assert.Nil(t, actual)
	})
}
