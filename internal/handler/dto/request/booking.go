package request

import (
	"giggo-server/internal/domain/booking"
)

// CreateBookingRequest carries a booking draft. DateIndex and TimeSlot are
// pointers so "not selected" is distinguishable from day zero and from an
// empty string; validation of the actual values happens in the domain.
type CreateBookingRequest struct {
	ListingID     string  `json:"listing_id" binding:"required"`
	DateIndex     *int    `json:"date_index"`
	TimeSlot      *string `json:"time_slot"`
	Address       string  `json:"address"`
	PaymentMethod string  `json:"payment_method"`
}

func (r CreateBookingRequest) ToDomain() (booking.Draft, error) {
	payment, err := booking.NewPaymentMethod(r.PaymentMethod)
	if err != nil {
		return booking.Draft{}, err
	}

	draft := booking.NewDraft(r.ListingID)
	draft.DateIndex = r.DateIndex
	draft.TimeSlot = r.TimeSlot
	draft.Address = r.Address
	draft.Payment = payment
	return draft, nil
}
