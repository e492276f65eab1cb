package response

import (
	"giggo-server/internal/domain/booking"
	"giggo-server/internal/domain/listing"
	"giggo-server/internal/usecase/queries"
)

type ProviderResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Avatar        string  `json:"avatar"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
	Verified      bool    `json:"verified"`
	CompletedGigs int     `json:"completedGigs"`
}

type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ListingResponse struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Category     string           `json:"category"`
	CategoryIcon string           `json:"categoryIcon"`
	Description  string           `json:"description"`
	PriceRupees  int64            `json:"price"`
	PriceUnit    string           `json:"priceUnit"`
	Provider     ProviderResponse `json:"provider"`
	Location     LocationResponse `json:"location"`
	Distance     string           `json:"distance"`
	Duration     string           `json:"duration"`
	Tags         []string         `json:"tags"`
	Featured     bool             `json:"featured"`
}

type ListingsResponse struct {
	Listings []*ListingResponse `json:"listings"`
	Category *string            `json:"category,omitempty"`
	Query    string             `json:"query,omitempty"`
	Total    int                `json:"total"`
}

type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	GigCount int    `json:"gigCount"`
}

type QuoteResponse struct {
	BaseRupees  int64 `json:"base"`
	FeeRupees   int64 `json:"platformFee"`
	TotalRupees int64 `json:"total"`
}

type AvailabilityResponse struct {
	ListingID string        `json:"listingId"`
	Days      []string      `json:"days"`
	Times     []string      `json:"times"`
	Quote     QuoteResponse `json:"quote"`
}

func FromListing(l *listing.Listing) *ListingResponse {
	provider := l.Provider()
	location := l.Location()

	return &ListingResponse{
		ID:           l.ID(),
		Title:        l.Title(),
		Category:     l.Category(),
		CategoryIcon: l.CategoryIcon(),
		Description:  l.Description(),
		PriceRupees:  l.Price().Rupees(),
		PriceUnit:    l.PriceUnit(),
		Provider: ProviderResponse{
			ID:            provider.ID,
			Name:          provider.Name,
			Avatar:        provider.Avatar,
			Rating:        provider.Rating,
			ReviewCount:   provider.ReviewCount,
			Verified:      provider.Verified,
			CompletedGigs: provider.CompletedGigs,
		},
		Location: LocationResponse{Lat: location.Lat, Lng: location.Lng},
		Distance: l.Distance(),
		Duration: l.Duration(),
		Tags:     l.Tags(),
		Featured: l.Featured(),
	}
}

func FromListingsResult(result *queries.ListingsResult) *ListingsResponse {
	listings := make([]*ListingResponse, 0, len(result.Listings))
	for _, l := range result.Listings {
		listings = append(listings, FromListing(l))
	}

	return &ListingsResponse{
		Listings: listings,
		Category: result.Category,
		Query:    result.Query,
		Total:    result.Total,
	}
}

func FromCategory(c listing.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Icon:     c.Icon,
		GigCount: c.GigCount,
	}
}

func FromQuote(q booking.Quote) QuoteResponse {
	return QuoteResponse{
		BaseRupees:  q.Base.Rupees(),
		FeeRupees:   q.Fee.Rupees(),
		TotalRupees: q.Total.Rupees(),
	}
}

func FromAvailabilityView(view *queries.AvailabilityView) *AvailabilityResponse {
	days := make([]string, 0, len(view.Days))
	for _, d := range view.Days {
		days = append(days, d.Format(booking.DateLayout))
	}

	return &AvailabilityResponse{
		ListingID: view.ListingID,
		Days:      days,
		Times:     view.Times,
		Quote:     FromQuote(view.Quote),
	}
}
