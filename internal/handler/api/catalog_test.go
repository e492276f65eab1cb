//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"giggo-server/internal/domain/booking"
	"giggo-server/internal/handler/api"
	resdto "giggo-server/internal/handler/dto/response"
	"giggo-server/internal/infra/catalog"
	"giggo-server/internal/pkg/clock"
	"giggo-server/internal/usecase/queries"
	commonhttp "giggo-server/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// Catalog handlers run against the real in-memory store; there is no
// database to fake.
type CatalogHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *catalog.Store
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	store, err := catalog.NewStore()
	require.NoError(s.T(), err)
	s.store = store

	mockClock := clock.NewMockClock(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
	catalogQueries := queries.NewCatalogQueries(
		store,
		booking.NewFixedSlotTable(),
		booking.NewPlatformFeeCalculator(),
		mockClock,
	)
	handler := api.NewCatalogHandler(catalogQueries)

	s.router.GET("/categories", handler.ListCategories)
	s.router.GET("/gigs", handler.ListGigs)
	s.router.GET("/gigs/featured", handler.Featured)
	s.router.GET("/gigs/nearby", handler.Nearby)
	s.router.GET("/gigs/:id", handler.GetGig)
	s.router.GET("/gigs/:id/availability", handler.Availability)
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListGigs() {
	s.Run("no filter returns the whole catalog", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/gigs", nil, nil)

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.ListingsResponse
		commonhttp.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal(len(s.store.All()), resp.Total)
		s.Nil(resp.Category)
	})

	s.Run("category filter narrows the result", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/gigs?category=tutoring", nil, nil)

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.ListingsResponse
		commonhttp.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Positive(resp.Total)
		for _, l := range resp.Listings {
			s.Equal("tutoring", l.Category)
		}
	})

	s.Run("unknown category yields empty set with total zero", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/gigs?category=nope", nil, nil)

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.ListingsResponse
		commonhttp.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Zero(resp.Total)
		s.NotNil(resp.Listings)
		s.Empty(resp.Listings)
	})

	s.Run("search text is echoed but does not filter", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/gigs?q=plumber", nil, nil)

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.ListingsResponse
		commonhttp.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal("plumber", resp.Query)
		s.Equal(len(s.store.All()), resp.Total)
	})
}

func (s *CatalogHandlerTestSuite) TestGetGig() {
	s.Run("known gig", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/gigs/3", nil, nil)

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.ListingResponse
		commonhttp.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal("Math & Science Tutoring", resp.Title)
		s.Equal(int64(599), resp.PriceRupees)
		s.Equal("Anita Desai", resp.Provider.Name)
	})

	s.Run("unknown gig gets a 404 view, not a crash", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/gigs/999", nil, nil)
		s.Equal(http.StatusNotFound, w.Code)
		s.Contains(w.Body.String(), "Gig not found")
	})
}

func (s *CatalogHandlerTestSuite) TestAvailability() {
	s.Run("window, slots and quote for a known gig", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/gigs/3/availability", nil, nil)

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.AvailabilityResponse
		commonhttp.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Len(resp.Days, 7)
		s.Equal("2025-06-10", resp.Days[0])
		s.Len(resp.Times, 9)
		s.Equal(int64(599), resp.Quote.BaseRupees)
		s.Equal(int64(49), resp.Quote.FeeRupees)
		s.Equal(int64(648), resp.Quote.TotalRupees)
	})

	s.Run("unknown gig", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/gigs/999/availability", nil, nil)
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *CatalogHandlerTestSuite) TestListCategories() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/categories", nil, nil)

	s.Equal(http.StatusOK, w.Code)
	var resp []resdto.CategoryResponse
	commonhttp.DecodeResponseBody(s.T(), w.Body, &resp)
	s.Len(resp, 12)
}

func (s *CatalogHandlerTestSuite) TestFeatured() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/gigs/featured", nil, nil)

	s.Equal(http.StatusOK, w.Code)
	var resp []resdto.ListingResponse
	commonhttp.DecodeResponseBody(s.T(), w.Body, &resp)
	s.NotEmpty(resp)
	s.Less(len(resp), 8, "featured should be a strict subset of the catalog")
}

func (s *CatalogHandlerTestSuite) TestNearby() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/gigs/nearby", nil, nil)

	s.Equal(http.StatusOK, w.Code)
	var resp []resdto.ListingResponse
	commonhttp.DecodeResponseBody(s.T(), w.Body, &resp)
	s.NotEmpty(resp)
	for _, l := range resp {
		s.False(l.Location.Lat == 0 && l.Location.Lng == 0)
	}
}
