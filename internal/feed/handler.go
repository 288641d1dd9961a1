package feed

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storyreel/internal/api"
	"storyreel/internal/auth"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Personalized feed of free units
// @Description  Interleaves free units from the categories the user most recently consumed
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        offset query int false "Offset into the materialized sequence" default(0)
// @Param        limit  query int false "Page size" default(20)
// @Success      200 {object} Page
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /foryou [get]
func (h *Handler) ForYou(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid offset"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid limit"})
		return
	}

	page, err := h.service.ForYou(c.Request.Context(), userID, offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to build feed"})
		return
	}

	c.JSON(http.StatusOK, page)
}
