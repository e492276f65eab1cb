package api

import (
	"errors"
	"net/http"

	resdto "giggo-server/internal/handler/dto/response"
	"giggo-server/internal/handler/middleware"
	"giggo-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	userQueries queries.UserQueries
}

func NewProfileHandler(userQueries queries.UserQueries) *ProfileHandler {
	return &ProfileHandler{
		userQueries: userQueries,
	}
}

// @Summary Get profile
// @Description Account data joined with booking stats
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	profile, err := h.userQueries.GetProfile(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileView(profile))
}
