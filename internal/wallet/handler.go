package wallet

import (
	"net/http"
	"strconv"

	"storyreel/internal/api"
	"storyreel/internal/auth"
	"storyreel/internal/metrics"

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

// CreditRequest carries a credit event from the payment-confirmation or
// reward-claim collaborator.
type CreditRequest struct {
	RefillCoins int64 `json:"refill_coins" binding:"gte=0"`
	BonusCoins  int64 `json:"bonus_coins" binding:"gte=0"`
}

// @Summary      Get coin balance
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Wallet
// @Failure      401 {object} api.ErrorResponse
// @Router       /wallet [get]
func (h *Handler) GetBalance(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	w, err := h.repo.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load wallet"})
		return
	}

	c.JSON(http.StatusOK, w)
}

// @Summary      Credit coins from a confirmed top-up
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreditRequest true "Coin amounts"
// @Success      200 {object} Wallet
// @Failure      400 {object} api.ErrorResponse
// @Router       /wallet/topup [post]
func (h *Handler) TopUp(c *gin.Context) {
	h.credit(c, "topup")
}

// @Summary      Credit bonus coins from a claimed reward
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreditRequest true "Coin amounts"
// @Success      200 {object} Wallet
// @Failure      400 {object} api.ErrorResponse
// @Router       /wallet/reward [post]
func (h *Handler) ClaimReward(c *gin.Context) {
	h.credit(c, "reward")
}

func (h *Handler) credit(c *gin.Context, reason string) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	var req CreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "coin amounts must be non-negative"})
		return
	}
	if req.RefillCoins == 0 && req.BonusCoins == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "at least one coin amount is required"})
		return
	}

	w, err := h.repo.Credit(c.Request.Context(), userID, req.RefillCoins, req.BonusCoins, reason)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to credit wallet"})
		return
	}

	metrics.RecordWalletCredit(reason)

	c.JSON(http.StatusOK, w)
}

// @Summary      List coin transactions
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Page size" default(50)
// @Param        offset query int false "Offset" default(0)
// @Success      200 {array} Transaction
// @Router       /wallet/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	txs, err := h.repo.ListTransactions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load transactions"})
		return
	}

	c.JSON(http.StatusOK, txs)
}
