//go:build unit

package booking_test

import (
	"testing"
	"time"

	"giggo-server/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow(t *testing.T) booking.Window {
	t.Helper()
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	return booking.NewFixedSlotTable().WindowFor("1", now)
}

func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }

func TestDraftValidate(t *testing.T) {
	window := testWindow(t)

	valid := func() booking.Draft {
		d := booking.NewDraft("1")
		d.DateIndex = intPtr(2)
		d.TimeSlot = strPtr("10:00 AM")
		d.Address = "12 MG Road, Bengaluru"
		return d
	}

	t.Run("valid draft passes", func(t *testing.T) {
		require.NoError(t, valid().Validate(window))
	})

	t.Run("day zero is a valid selection", func(t *testing.T) {
		d := valid()
		d.DateIndex = intPtr(0)
		assert.NoError(t, d.Validate(window))
	})

	t.Run("missing date reported before anything else", func(t *testing.T) {
		d := valid()
		d.DateIndex = nil
		d.TimeSlot = nil
		d.Address = ""
		assert.ErrorIs(t, d.Validate(window), booking.ErrDateNotSelected)
	})

	t.Run("date outside window", func(t *testing.T) {
		for _, idx := range []int{-1, booking.WindowDays, 100} {
			d := valid()
			d.DateIndex = intPtr(idx)
			assert.ErrorIs(t, d.Validate(window), booking.ErrDateOutOfWindow)
		}
	})

	t.Run("missing time reported before missing address", func(t *testing.T) {
		d := valid()
		d.TimeSlot = nil
		d.Address = ""
		assert.ErrorIs(t, d.Validate(window), booking.ErrTimeNotSelected)
	})

	t.Run("empty time slot counts as not selected", func(t *testing.T) {
		d := valid()
		d.TimeSlot = strPtr("")
		assert.ErrorIs(t, d.Validate(window), booking.ErrTimeNotSelected)
	})

	t.Run("unknown time slot", func(t *testing.T) {
		d := valid()
		d.TimeSlot = strPtr("1:00 PM")
		assert.ErrorIs(t, d.Validate(window), booking.ErrUnknownTimeSlot)
	})

	t.Run("missing address", func(t *testing.T) {
		d := valid()
		d.Address = ""
		assert.ErrorIs(t, d.Validate(window), booking.ErrAddressMissing)
	})

	t.Run("whitespace only address counts as missing", func(t *testing.T) {
		d := valid()
		d.Address = "   \t  "
		assert.ErrorIs(t, d.Validate(window), booking.ErrAddressMissing)
	})

	t.Run("failed validation leaves the draft untouched", func(t *testing.T) {
		d := valid()
		d.Address = ""
		before := d
		_ = d.Validate(window)
		assert.Equal(t, before, d)
	})
}

func TestNewDraftDefaults(t *testing.T) {
	d := booking.NewDraft("3")

	assert.Equal(t, "3", d.ListingID)
	assert.Nil(t, d.DateIndex)
	assert.Nil(t, d.TimeSlot)
	assert.Equal(t, booking.DefaultPaymentMethod, d.Payment)
}
