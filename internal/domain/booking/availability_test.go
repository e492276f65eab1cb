//go:build unit

package booking_test

import (
	"testing"
	"time"

	"giggo-server/internal/domain/booking"
	"giggo-server/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedSlotTableWindow(t *testing.T) {
	kolkata := time.FixedZone("IST", 19800)
	now := time.Date(2025, 6, 10, 23, 45, 0, 0, kolkata)
	mock := clock.NewMockClock(now)

	window := booking.NewFixedSlotTable().WindowFor("1", mock.Now())

	t.Run("window spans seven days starting today", func(t *testing.T) {
		days := window.Days()
		require.Len(t, days, booking.WindowDays)

		assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, kolkata), days[0])
		assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, kolkata), days[6])
	})

	t.Run("nine hourly slots with a lunch gap", func(t *testing.T) {
		times := window.Times()
		require.Len(t, times, 9)
		assert.Equal(t, "9:00 AM", times[0])
		assert.Equal(t, "12:00 PM", times[3])
		assert.Equal(t, "2:00 PM", times[4])
		assert.Equal(t, "6:00 PM", times[8])
		assert.False(t, window.HasTime("1:00 PM"))
	})

	t.Run("date index resolves within bounds only", func(t *testing.T) {
		first, ok := window.DateAt(0)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, kolkata), first)

		_, ok = window.DateAt(booking.WindowDays)
		assert.False(t, ok)
		_, ok = window.DateAt(-1)
		assert.False(t, ok)
	})

	t.Run("window tracks the clock across midnight", func(t *testing.T) {
		mock.Add(30 * time.Minute)
		next := booking.NewFixedSlotTable().WindowFor("1", mock.Now())
		first, ok := next.DateAt(0)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, kolkata), first)
	})
}
