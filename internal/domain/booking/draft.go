package booking

import "errors"

var (
	ErrDateNotSelected = errors.New("date not selected")
	ErrTimeNotSelected = errors.New("time slot not selected")
	ErrAddressMissing  = errors.New("address missing")
	ErrDateOutOfWindow = errors.New("date outside booking window")
	ErrUnknownTimeSlot = errors.New("unknown time slot")
)

// Draft holds one booking session's in-progress selections. DateIndex and
// TimeSlot are pointers because "nothing chosen yet" must stay distinguishable
// from a chosen zero value: index 0 means today and is a valid selection.
type Draft struct {
	ListingID string
	DateIndex *int
	TimeSlot  *string
	Address   string
	Payment   PaymentMethod
}

func NewDraft(listingID string) Draft {
	return Draft{
		ListingID: listingID,
		Payment:   DefaultPaymentMethod,
	}
}

// Validate checks the draft against a window in the workflow's fixed order,
// stopping at the first gap. Each sentinel maps to a distinct user-facing
// message; the draft itself is never modified on failure.
func (d Draft) Validate(window Window) error {
	if d.DateIndex == nil {
		return ErrDateNotSelected
	}
	if _, ok := window.DateAt(*d.DateIndex); !ok {
		return ErrDateOutOfWindow
	}
	if d.TimeSlot == nil || *d.TimeSlot == "" {
		return ErrTimeNotSelected
	}
	if !window.HasTime(*d.TimeSlot) {
		return ErrUnknownTimeSlot
	}
	if NewAddress(d.Address).IsEmpty() {
		return ErrAddressMissing
	}
	return nil
}
