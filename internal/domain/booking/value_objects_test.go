//go:build unit

package booking_test

import (
	"testing"

	"giggo-server/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentMethod(t *testing.T) {
	t.Run("known methods", func(t *testing.T) {
		for _, v := range []string{"cod", "online", "wallet"} {
			got, err := booking.NewPaymentMethod(v)
			require.NoError(t, err)
			assert.Equal(t, v, got.String())
		}
	})

	t.Run("empty selects the default", func(t *testing.T) {
		got, err := booking.NewPaymentMethod("")
		require.NoError(t, err)
		assert.Equal(t, booking.PaymentCashOnCompletion, got)
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		_, err := booking.NewPaymentMethod("bitcoin")
		assert.ErrorIs(t, err, booking.ErrInvalidPaymentMethod)
	})
}

func TestAddress(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		a := booking.NewAddress("  12 MG Road  ")
		assert.Equal(t, "12 MG Road", a.String())
		assert.False(t, a.IsEmpty())
	})

	t.Run("whitespace only is empty", func(t *testing.T) {
		assert.True(t, booking.NewAddress(" \t\n ").IsEmpty())
	})
}
