package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data for authenticated flows
type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingView represents read-optimized booking data for the detail screen
type BookingView struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	ListingID     string    `json:"listing_id"`
	Title         string    `json:"title"`
	ProviderName  string    `json:"provider_name"`
	PriceRupees   int64     `json:"price_rupees"`
	BookingDate   string    `json:"booking_date"`
	BookingTime   string    `json:"booking_time"`
	Address       string    `json:"address"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookingListItem represents a row in the booking history list
type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	BookingDate string    `json:"booking_date"`
	BookingTime string    `json:"booking_time"`
	PriceRupees int64     `json:"price_rupees"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingStats aggregates a user's booking activity for the profile screen
type BookingStats struct {
	TotalBookings    int64 `json:"total_bookings"`
	TotalSpentRupees int64 `json:"total_spent_rupees"`
}
