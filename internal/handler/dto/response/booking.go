package response

import (
	"time"

	"giggo-server/internal/domain/booking"
	"giggo-server/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingResponse is the confirmation summary. Total is the displayed figure
// with the platform fee on top; price is what was persisted.
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	ListingID     string    `json:"listingId"`
	Title         string    `json:"title"`
	ProviderName  string    `json:"providerName"`
	PriceRupees   int64     `json:"price"`
	PlatformFee   int64     `json:"platformFee"`
	TotalRupees   int64     `json:"total"`
	BookingDate   string    `json:"date"`
	BookingTime   string    `json:"time"`
	Address       string    `json:"address"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	BookingDate string    `json:"date"`
	BookingTime string    `json:"time"`
	PriceRupees int64     `json:"price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:            view.ID,
		ListingID:     view.ListingID,
		Title:         view.Title,
		ProviderName:  view.ProviderName,
		PriceRupees:   view.PriceRupees,
		PlatformFee:   booking.PlatformFeeRupees,
		TotalRupees:   view.PriceRupees + booking.PlatformFeeRupees,
		BookingDate:   view.BookingDate,
		BookingTime:   view.BookingTime,
		Address:       view.Address,
		PaymentMethod: view.PaymentMethod,
		Status:        view.Status,
		CreatedAt:     view.CreatedAt,
	}
}

func FromBookingListItem(item queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:          item.ID,
		Title:       item.Title,
		BookingDate: item.BookingDate,
		BookingTime: item.BookingTime,
		PriceRupees: item.PriceRupees,
		Status:      item.Status,
		CreatedAt:   item.CreatedAt,
	}
}
