package booking

import (
	"giggo-server/internal/domain/listing"
	"giggo-server/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory turns a validated draft plus its listing into a Booking. The window
// is recomputed from the clock on every call so the 7-day horizon tracks the
// moment of submission, not the moment the process started.
type Factory struct {
	Clock        clock.Clock
	Availability AvailabilitySource
}

func NewFactory(clk clock.Clock, availability AvailabilitySource) *Factory {
	return &Factory{
		Clock:        clk,
		Availability: availability,
	}
}

func (f *Factory) CreateBooking(l *listing.Listing, userID uuid.UUID, draft Draft) (*Booking, error) {
	now := f.Clock.Now()
	window := f.Availability.WindowFor(l.ID(), now)

	if err := draft.Validate(window); err != nil {
		return nil, err
	}

	date, _ := window.DateAt(*draft.DateIndex)

	return &Booking{
		id:           uuid.New(),
		userID:       userID,
		listingID:    l.ID(),
		title:        l.Title(),
		providerName: l.Provider().Name,
		price:        l.Price(),
		date:         date,
		timeSlot:     *draft.TimeSlot,
		address:      NewAddress(draft.Address),
		payment:      draft.Payment,
		status:       StatusConfirmed,
		createdAt:    now,
	}, nil
}
