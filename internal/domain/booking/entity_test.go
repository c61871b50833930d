//go:build unit

package booking_test

import (
	"testing"

	"court-booking/internal/domain/booking"
	"court-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.Equal(t, booking.PaymentPending, actual.PaymentStatus())
		assert.Equal(t, 2.0, actual.Window().DurationHours())
		assert.Equal(t, 2000.0, actual.Breakdown().Total)
	})

	t.Run("equipment quantity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "minimum valid quantity",
				mutate: func(b *builder.BookingBuilder) {
					b.WithEquipment(booking.EquipmentLine{EquipmentID: uuid.New(), Quantity: 1})
				},
			},
			{
				name: "zero quantity",
				mutate: func(b *builder.BookingBuilder) {
					b.WithEquipment(booking.EquipmentLine{EquipmentID: uuid.New(), Quantity: 0})
				},
				errIs: booking.ErrInvalidQuantity,
			},
			{
				name: "negative quantity",
				mutate: func(b *builder.BookingBuilder) {
					b.WithEquipment(booking.EquipmentLine{EquipmentID: uuid.New(), Quantity: -3})
				},
				errIs: booking.ErrInvalidQuantity,
			},
			{
				name: "one bad line among good ones",
				mutate: func(b *builder.BookingBuilder) {
					b.WithEquipment(
						booking.EquipmentLine{EquipmentID: uuid.New(), Quantity: 2},
						booking.EquipmentLine{EquipmentID: uuid.New(), Quantity: 0},
					)
				},
				errIs: booking.ErrInvalidQuantity,
			},
			{
				name:   "no equipment at all",
				mutate: func(b *builder.BookingBuilder) { b.WithEquipment() },
			},
		})
	})

	t.Run("cancel", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, actual.Cancel())
		assert.Equal(t, booking.StatusCancelled, actual.Status())

		err = actual.Cancel()
		require.ErrorIs(t, err, booking.ErrAlreadyCancelled)
		assert.Equal(t, booking.StatusCancelled, actual.Status())
	})

	t.Run("set status", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, actual.SetStatus(booking.StatusCompleted))
		assert.Equal(t, booking.StatusCompleted, actual.Status())

		err = actual.SetStatus(booking.Status("shipped"))
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
		assert.Equal(t, booking.StatusCompleted, actual.Status())
	})

	t.Run("ownership", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.IsOwnedBy(b.UserID))
		assert.False(t, actual.IsOwnedBy(uuid.New()))
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		booking1, err1 := b.BuildDomain()
		booking2, err2 := b.BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, booking1.ID(), booking2.ID())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
