package booking

import (
	"time"

	"giggo-server/internal/domain/listing"

	"github.com/google/uuid"
)

// Booking is the persisted outcome of one confirmed draft. Title, provider
// name and price are denormalized from the listing so history stays readable
// even if the catalog changes underneath it. The stored price is the base
// listing price; the platform fee is display-only and never persisted.
type Booking struct {
	id           uuid.UUID
	userID       uuid.UUID
	listingID    string
	title        string
	providerName string
	price        listing.Money
	date         time.Time
	timeSlot     string
	address      Address
	payment      PaymentMethod
	status       Status
	createdAt    time.Time
}

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

func ReconstructBooking(
	id, userID uuid.UUID,
	listingID, title, providerName string,
	price listing.Money,
	date time.Time,
	timeSlot string,
	address Address,
	payment PaymentMethod,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		userID:       userID,
		listingID:    listingID,
		title:        title,
		providerName: providerName,
		price:        price,
		date:         date,
		timeSlot:     timeSlot,
		address:      address,
		payment:      payment,
		status:       status,
		createdAt:    createdAt,
	}
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) UserID() uuid.UUID      { return b.userID }
func (b *Booking) ListingID() string      { return b.listingID }
func (b *Booking) Title() string          { return b.title }
func (b *Booking) ProviderName() string   { return b.providerName }
func (b *Booking) Price() listing.Money   { return b.price }
func (b *Booking) Date() time.Time        { return b.date }
func (b *Booking) TimeSlot() string       { return b.timeSlot }
func (b *Booking) Address() Address       { return b.address }
func (b *Booking) Payment() PaymentMethod { return b.payment }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }

func (b *Booking) DateISO() string {
	return b.date.Format(DateLayout)
}
