package history

import (
	"net/http"
	"strconv"

	"storyreel/internal/api"
	"storyreel/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

const defaultListLimit = 20

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		repo: NewRepository(db),
	}
}

// @Summary      List recently viewed works
// @Tags         history
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Max entries" default(20)
// @Success      200 {array} Entry
// @Failure      401 {object} api.ErrorResponse
// @Router       /history [get]
func (h *Handler) List(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = parsed
	}

	entries, err := h.repo.List(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
