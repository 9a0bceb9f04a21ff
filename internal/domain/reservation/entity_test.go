//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"foodies-api/internal/domain/reservation"
	"foodies-api/internal/pkg/clock"
	"foodies-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.Equal(t, "T1", actual.TableID().Value())
		assert.Equal(t, 2, actual.PartySize().Value())
		assert.Equal(t, b.Now, actual.CreatedAt())
		assert.Equal(t, b.Now, actual.UpdatedAt())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty table id",
				mutate: func(b *builder.ReservationBuilder) { b.WithTableID("") },
				errIs:  reservation.ErrEmptyTableID,
			},
			{
				name:   "whitespace table id",
				mutate: func(b *builder.ReservationBuilder) { b.WithTableID("   ") },
				errIs:  reservation.ErrEmptyTableID,
			},
			{
				name:   "zero party size",
				mutate: func(b *builder.ReservationBuilder) { b.WithPartySize(0) },
				errIs:  reservation.ErrInvalidPartySize,
			},
			{
				name:   "negative party size",
				mutate: func(b *builder.ReservationBuilder) { b.WithPartySize(-3) },
				errIs:  reservation.ErrInvalidPartySize,
			},
			{
				name:   "party size above maximum",
				mutate: func(b *builder.ReservationBuilder) { b.WithPartySize(reservation.MaxPartySize + 1) },
				errIs:  reservation.ErrInvalidPartySize,
			},
			{
				name:   "maximum party size",
				mutate: func(b *builder.ReservationBuilder) { b.WithPartySize(reservation.MaxPartySize) },
			},
			{
				name:   "zero reservation date",
				mutate: func(b *builder.ReservationBuilder) { b.WithReservedAt(time.Time{}) },
				errIs:  reservation.ErrMissingReservedAt,
			},
			{
				name: "reservation date in the past is accepted",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithReservedAt(b.Now.Add(-time.Hour))
				},
			},
			{
				name: "reservation date equal to now is accepted",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithReservedAt(b.Now)
				},
			},
		})
	})

	t.Run("status transitions", func(t *testing.T) {
		newPending := func(t *testing.T) *reservation.Reservation {
			t.Helper()
			r, err := builder.NewReservationBuilder().BuildDomain()
			require.NoError(t, err)
			return r
		}

		t.Run("pending to confirmed", func(t *testing.T) {
			r := newPending(t)
			require.NoError(t, r.TransitionTo(reservation.StatusConfirmed))
			assert.Equal(t, reservation.StatusConfirmed, r.Status())
		})

		t.Run("pending to cancelled", func(t *testing.T) {
			r := newPending(t)
			require.NoError(t, r.TransitionTo(reservation.StatusCancelled))
			assert.Equal(t, reservation.StatusCancelled, r.Status())
		})

		t.Run("confirmed to cancelled", func(t *testing.T) {
			r := newPending(t)
			require.NoError(t, r.TransitionTo(reservation.StatusConfirmed))
			require.NoError(t, r.TransitionTo(reservation.StatusCancelled))
			assert.Equal(t, reservation.StatusCancelled, r.Status())
		})

		t.Run("confirmed to pending is rejected", func(t *testing.T) {
			r := newPending(t)
			require.NoError(t, r.TransitionTo(reservation.StatusConfirmed))
			require.ErrorIs(t, r.TransitionTo(reservation.StatusPending), reservation.ErrInvalidTransition)
		})

		t.Run("cancelled is final", func(t *testing.T) {
			r := newPending(t)
			require.NoError(t, r.TransitionTo(reservation.StatusCancelled))
			require.ErrorIs(t, r.TransitionTo(reservation.StatusConfirmed), reservation.ErrReservationFinished)
		})

		t.Run("unknown status", func(t *testing.T) {
			r := newPending(t)
			require.ErrorIs(t, r.TransitionTo(reservation.Status("seated")), reservation.ErrInvalidStatus)
		})
	})

	t.Run("same calendar day check", func(t *testing.T) {
		mc := clock.NewMockClock(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
		reservedAt := reservation.ReconstructReservedAt(time.Date(2025, 6, 10, 19, 30, 0, 0, time.UTC))

		assert.True(t, reservedAt.SameCalendarDay(mc.Now(), time.UTC))

		mc.Set(time.Date(2025, 6, 11, 0, 0, 1, 0, time.UTC))
		assert.False(t, reservedAt.SameCalendarDay(mc.Now(), time.UTC))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()

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
