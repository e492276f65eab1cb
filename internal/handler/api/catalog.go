package api

import (
	"errors"
	"net/http"

	resdto "giggo-server/internal/handler/dto/response"
	"giggo-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories := h.catalogQueries.ListCategories()

	responses := make([]*resdto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, resdto.FromCategory(category))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary List gigs
// @Description List gigs, optionally narrowed to one category
// @Tags catalog
// @Produce json
// @Param category query string false "Category ID"
// @Param q query string false "Search text (echoed back)"
// @Success 200 {object} resdto.ListingsResponse
// @Router /gigs [get]
func (h *CatalogHandler) ListGigs(c *gin.Context) {
	var category *string
	if raw, exists := c.GetQuery("category"); exists && raw != "" {
		category = &raw
	}

	result := h.catalogQueries.ListListings(category, c.Query("q"))
	c.JSON(http.StatusOK, resdto.FromListingsResult(result))
}

// @Summary List featured gigs
// @Description The curated subset shown on the home surface
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ListingResponse
// @Router /gigs/featured [get]
func (h *CatalogHandler) Featured(c *gin.Context) {
	listings := h.catalogQueries.Featured()

	responses := make([]*resdto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		responses = append(responses, resdto.FromListing(l))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary List nearby gigs
// @Description Gigs with coordinates, for the map surface
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ListingResponse
// @Router /gigs/nearby [get]
func (h *CatalogHandler) Nearby(c *gin.Context) {
	listings := h.catalogQueries.Nearby()

	responses := make([]*resdto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		responses = append(responses, resdto.FromListing(l))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get gig detail
// @Tags catalog
// @Produce json
// @Param id path string true "Gig ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 404 {object} map[string]string
// @Router /gigs/{id} [get]
func (h *CatalogHandler) GetGig(c *gin.Context) {
	l, err := h.catalogQueries.GetListing(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Gig not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromListing(l))
}

// @Summary Get gig availability
// @Description The 7-day booking window, slot table and price quote
// @Tags catalog
// @Produce json
// @Param id path string true "Gig ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} map[string]string
// @Router /gigs/{id}/availability [get]
func (h *CatalogHandler) Availability(c *gin.Context) {
	view, err := h.catalogQueries.Availability(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Gig not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
