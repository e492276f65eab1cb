package queries

import (
	"time"

	"giggo-server/internal/domain/booking"
	"giggo-server/internal/domain/listing"
	"giggo-server/internal/infra/catalog"
	"giggo-server/internal/pkg/clock"
	"giggo-server/internal/pkg/errs"
)

var ErrListingNotFound = errs.New("listing not found")

// ListingsResult is the explore page envelope. Query is echoed back verbatim
// so clients can confirm which search produced the result set.
type ListingsResult struct {
	Listings []*listing.Listing
	Category *string
	Query    string
	Total    int
}

// AvailabilityView is one listing's bookable window plus the price quote the
// client shows alongside it.
type AvailabilityView struct {
	ListingID string
	Days      []time.Time
	Times     []string
	Quote     booking.Quote
}

type CatalogQueries interface {
	ListListings(category *string, query string) *ListingsResult
	ListCategories() []listing.Category
	GetListing(id string) (*listing.Listing, error)
	Featured() []*listing.Listing
	Nearby() []*listing.Listing
	Availability(listingID string) (*AvailabilityView, error)
}

type catalogQueriesImpl struct {
	store      *catalog.Store
	slots      booking.AvailabilitySource
	calculator booking.PriceCalculator
	clock      clock.Clock
}

func NewCatalogQueries(
	store *catalog.Store,
	slots booking.AvailabilitySource,
	calculator booking.PriceCalculator,
	clk clock.Clock,
) CatalogQueries {
	return &catalogQueriesImpl{
		store:      store,
		slots:      slots,
		calculator: calculator,
		clock:      clk,
	}
}

func (q *catalogQueriesImpl) ListListings(category *string, query string) *ListingsResult {
	filtered := catalog.NewFilter(category).Apply(q.store)

	return &ListingsResult{
		Listings: filtered,
		Category: category,
		Query:    query,
		Total:    len(filtered),
	}
}

func (q *catalogQueriesImpl) ListCategories() []listing.Category {
	return q.store.Categories()
}

func (q *catalogQueriesImpl) GetListing(id string) (*listing.Listing, error) {
	l, ok := q.store.FindByID(id)
	if !ok {
		return nil, ErrListingNotFound
	}
	return l, nil
}

func (q *catalogQueriesImpl) Featured() []*listing.Listing {
	return q.store.Featured()
}

// Nearby serves the map surface: every listing that carries coordinates.
func (q *catalogQueriesImpl) Nearby() []*listing.Listing {
	var located []*listing.Listing
	for _, l := range q.store.All() {
		loc := l.Location()
		if loc.Lat != 0 || loc.Lng != 0 {
			located = append(located, l)
		}
	}
	return located
}

func (q *catalogQueriesImpl) Availability(listingID string) (*AvailabilityView, error) {
	l, ok := q.store.FindByID(listingID)
	if !ok {
		return nil, ErrListingNotFound
	}

	window := q.slots.WindowFor(listingID, q.clock.Now())

	return &AvailabilityView{
		ListingID: listingID,
		Days:      window.Days(),
		Times:     window.Times(),
		Quote:     q.calculator.Quote(l.Price()),
	}, nil
}
