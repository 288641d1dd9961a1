package subscription

import (
	"net/http"

	"storyreel/internal/api"
	"storyreel/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		repo: NewRepository(db),
	}
}

// @Summary      Get subscription status
// @Tags         subscription
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Status
// @Failure      401 {object} api.ErrorResponse
// @Router       /subscription [get]
func (h *Handler) GetStatus(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	status, err := h.repo.GetStatus(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load subscription status"})
		return
	}

	c.JSON(http.StatusOK, status)
}
