package api

import (
	"errors"
	"net/http"

	"giggo-server/internal/domain/booking"
	reqdto "giggo-server/internal/handler/dto/request"
	resdto "giggo-server/internal/handler/dto/response"
	"giggo-server/internal/handler/middleware"
	"giggo-server/internal/pkg/errs"
	"giggo-server/internal/usecase/commands"
	"giggo-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create a booking
// @Description Confirm a booking draft. Requires an Idempotency-Key header.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key (UUID)"
// @Param request body reqdto.CreateBookingRequest true "Booking draft"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	idempotencyKey, err := h.getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), req, userID, idempotencyKey)
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingView(result.Booking))
}

func (h *BookingHandler) respondCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrListingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Gig not found",
		})
	case errors.Is(err, booking.ErrDateNotSelected):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Please select a date",
		})
	case errors.Is(err, booking.ErrTimeNotSelected):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Please select a time slot",
		})
	case errors.Is(err, booking.ErrAddressMissing):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Please enter your address",
		})
	case errors.Is(err, booking.ErrDateOutOfWindow):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Selected date is outside the booking window",
		})
	case errors.Is(err, booking.ErrUnknownTimeSlot):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Selected time slot is not available",
		})
	case errors.Is(err, booking.ErrInvalidPaymentMethod):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown payment method",
		})
	case errors.Is(err, commands.ErrDuplicateBooking):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Duplicate booking request with different parameters",
		})
	case errors.Is(err, commands.ErrIdempotencyInProgress):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking request is currently being processed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description The caller's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.BookingListResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, resdto.FromBookingListItem(item))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *BookingHandler) getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		return uuid.Nil, errs.New("Idempotency-Key header is required")
	}

	key, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.New("Idempotency-Key must be a valid UUID")
	}

	return key, nil
}
