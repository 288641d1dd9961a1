package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storyreel/internal/api"
	"storyreel/internal/auth"
	"storyreel/internal/purchase"
	"storyreel/internal/subscription"
)

type Handler struct {
	repo          Repository
	subscriptions subscription.Repository
	purchases     purchase.Repository
}

func NewHandler(repo Repository, subscriptionRepo subscription.Repository, purchaseRepo purchase.Repository) *Handler {
	return &Handler{
		repo:          repo,
		subscriptions: subscriptionRepo,
		purchases:     purchaseRepo,
	}
}

// @Summary      Get a work
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        workID path int true "Work ID"
// @Success      200 {object} Work
// @Failure      404 {object} api.ErrorResponse
// @Router       /works/{workID} [get]
func (h *Handler) GetWork(c *gin.Context) {
	workID, err := strconv.Atoi(c.Param("workID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid work id"})
		return
	}

	work, err := h.repo.GetWorkByID(c.Request.Context(), workID)
	if err != nil {
		if errors.Is(err, ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load work"})
		return
	}

	c.JSON(http.StatusOK, work)
}

// @Summary      List a work's units for the requesting user
// @Description  Paid units the user owns or can see via subscription surface as free; can_unlock marks the first still-locked unit
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        workID path int true "Work ID"
// @Success      200 {array} UnitListing
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /works/{workID}/units [get]
func (h *Handler) ListUnits(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	workID, err := strconv.Atoi(c.Param("workID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid work id"})
		return
	}

	ctx := c.Request.Context()

	if _, err := h.repo.GetWorkByID(ctx, workID); err != nil {
		if errors.Is(err, ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load work"})
		return
	}

	units, err := h.repo.ListUnitsByWork(ctx, workID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load units"})
		return
	}

	subscribed, err := h.subscriptions.IsSubscribed(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load subscription status"})
		return
	}

	ownedIDs, err := h.purchases.ListUnitIDs(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load purchases"})
		return
	}

	c.JSON(http.StatusOK, AnnotateUnits(units, subscribed, ownedIDs))
}

// AnnotateUnits resolves each unit's effective access for one user and marks
// the first still-locked paid unit as the unlock candidate.
func AnnotateUnits(units []Unit, subscribed bool, ownedIDs []int) []UnitListing {
	owned := make(map[int]bool, len(ownedIDs))
	for _, id := range ownedIDs {
		owned[id] = true
	}

	listings := make([]UnitListing, 0, len(units))
	marked := false
	for _, unit := range units {
		listing := UnitListing{Unit: unit, EffectiveAccess: unit.Access}

		if unit.Access == AccessPaid && (subscribed || owned[unit.ID]) {
			listing.EffectiveAccess = AccessFree
		}
		if listing.EffectiveAccess == AccessPaid && !marked {
			listing.CanUnlock = true
			marked = true
		}

		listings = append(listings, listing)
	}

	return listings
}
