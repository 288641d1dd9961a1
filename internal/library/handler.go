package library

import (
	"context"
	"net/http"
	"strconv"

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

// ToggleResponse reports the state after a toggle.
type ToggleResponse struct {
	Active bool `json:"active"`
}

// @Summary      Toggle a unit bookmark
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Param        unitID path int true "Unit ID"
// @Success      200 {object} ToggleResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /units/{unitID}/bookmark [post]
func (h *Handler) ToggleBookmark(c *gin.Context) {
	h.toggle(c, h.repo.ToggleBookmark)
}

// @Summary      Toggle a unit rating
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Param        unitID path int true "Unit ID"
// @Success      200 {object} ToggleResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /units/{unitID}/rate [post]
func (h *Handler) ToggleRating(c *gin.Context) {
	h.toggle(c, h.repo.ToggleRating)
}

func (h *Handler) toggle(c *gin.Context, fn func(ctx context.Context, userID, unitID int) (bool, error)) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	unitID, err := strconv.Atoi(c.Param("unitID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid unit id"})
		return
	}

	active, err := fn(c.Request.Context(), userID, unitID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to toggle"})
		return
	}

	c.JSON(http.StatusOK, ToggleResponse{Active: active})
}
