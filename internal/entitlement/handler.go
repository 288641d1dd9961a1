package entitlement

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storyreel/internal/api"
	"storyreel/internal/auth"
	"storyreel/internal/catalog"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// @Summary      View a content unit
// @Description  Evaluates entitlement for the unit (or its neighbor when navigating) and unlocks it if an unlock flag is set
// @Tags         entitlement
// @Produce      json
// @Security     BearerAuth
// @Param        unitID     path  int    true  "Unit ID"
// @Param        up         query bool   false "Navigate to the next unit"
// @Param        down       query bool   false "Navigate to the previous unit"
// @Param        autoUnlock query bool   false "Spend coins automatically if the unit is locked"
// @Param        unlockNow  query bool   false "Spend coins on this unit"
// @Param        addWatched query bool   false "Unlock via the daily ad-view quota"
// @Success      200 {object} Decision
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      402 {object} Decision "payment required or insufficient funds"
// @Failure      403 {object} Decision "ad-view quota exhausted"
// @Failure      404 {object} api.ErrorResponse
// @Router       /units/{unitID}/view [get]
func (h *Handler) View(c *gin.Context) {
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

	action := Action{
		AutoUnlock: boolQuery(c, "autoUnlock"),
		UnlockNow:  boolQuery(c, "unlockNow"),
		AddWatched: boolQuery(c, "addWatched"),
		Up:         boolQuery(c, "up"),
		Down:       boolQuery(c, "down"),
	}

	decision, err := h.service.View(c.Request.Context(), userID, unitID, action)
	if err != nil {
		switch {
		case errors.Is(err, ErrConflictingFlags):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, catalog.ErrUnitNotFound), errors.Is(err, catalog.ErrEndOfSequence):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to evaluate entitlement"})
		}
		return
	}

	c.JSON(statusFor(decision), decision)
}

func statusFor(d *Decision) int {
	if d.Granted {
		return http.StatusOK
	}
	switch d.Reason {
	case ReasonQuotaExceeded:
		return http.StatusForbidden
	default:
		return http.StatusPaymentRequired
	}
}

func boolQuery(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(c.DefaultQuery(name, "false"))
	return err == nil && v
}
