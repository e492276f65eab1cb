//go:build unit

package booking_test

import (
	"testing"
	"time"

	"giggo-server/internal/domain/booking"
	"giggo-server/internal/domain/listing"
	"giggo-server/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tutoringListing(t *testing.T) *listing.Listing {
	t.Helper()
	l, err := listing.New(listing.Spec{
		ID:          "3",
		Title:       "Math & Science Tutoring",
		Category:    "tutoring",
		PriceRupees: 599,
		PriceUnit:   "per session",
		Provider:    listing.Provider{ID: "p3", Name: "Anita Desai", Rating: 4.9},
	})
	require.NoError(t, err)
	return l
}

func TestFactoryCreateBooking(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	factory := booking.NewFactory(clock.NewMockClock(now), booking.NewFixedSlotTable())
	userID := uuid.New()

	draft := booking.NewDraft("3")
	draft.DateIndex = intPtr(1)
	draft.TimeSlot = strPtr("10:00 AM")
	draft.Address = " 12 MG Road, Bengaluru "

	t.Run("denormalizes the listing into the booking", func(t *testing.T) {
		b, err := factory.CreateBooking(tutoringListing(t), userID, draft)
		require.NoError(t, err)

		assert.Equal(t, userID, b.UserID())
		assert.Equal(t, "3", b.ListingID())
		assert.Equal(t, "Math & Science Tutoring", b.Title())
		assert.Equal(t, "Anita Desai", b.ProviderName())
		assert.Equal(t, int64(599), b.Price().Rupees())
		assert.Equal(t, "2025-06-11", b.DateISO())
		assert.Equal(t, "10:00 AM", b.TimeSlot())
		assert.Equal(t, "12 MG Road, Bengaluru", b.Address().String())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("persisted price excludes the platform fee", func(t *testing.T) {
		quote := booking.NewPlatformFeeCalculator().Quote(listing.NewMoney(599))
		assert.Equal(t, int64(648), quote.Total.Rupees())

		b, err := factory.CreateBooking(tutoringListing(t), userID, draft)
		require.NoError(t, err)
		assert.Equal(t, quote.Base.Rupees(), b.Price().Rupees())
	})

	t.Run("validation failures surface unchanged", func(t *testing.T) {
		bad := draft
		bad.TimeSlot = nil
		_, err := factory.CreateBooking(tutoringListing(t), userID, bad)
		assert.ErrorIs(t, err, booking.ErrTimeNotSelected)
	})

	t.Run("each booking gets its own identity", func(t *testing.T) {
		b1, err := factory.CreateBooking(tutoringListing(t), userID, draft)
		require.NoError(t, err)
		b2, err := factory.CreateBooking(tutoringListing(t), userID, draft)
		require.NoError(t, err)
		assert.NotEqual(t, b1.ID(), b2.ID())
	})
}

func TestPlatformFeeQuote(t *testing.T) {
	quote := booking.NewPlatformFeeCalculator().Quote(listing.NewMoney(599))

	assert.Equal(t, int64(599), quote.Base.Rupees())
	assert.Equal(t, int64(booking.PlatformFeeRupees), quote.Fee.Rupees())
	assert.Equal(t, int64(648), quote.Total.Rupees())
	assert.Equal(t, "₹648", quote.Total.String())
}
