package entitlement

import (
	"errors"

	"storyreel/internal/catalog"
	"storyreel/internal/library"
	"storyreel/internal/wallet"
)

// ErrConflictingFlags is returned before any read when the request combines
// flags that cannot be honored together.
var ErrConflictingFlags = errors.New("conflicting view flags")

// Action carries the request's view flags. Up/Down navigate to a neighboring
// unit; AutoUnlock, UnlockNow and AddWatched pick the unlock method for a paid
// unit. UnlockNow and AddWatched apply only to the directly addressed unit, so
// they conflict with navigation; AutoUnlock is a standing preference and may
// accompany it.
type Action struct {
	AutoUnlock bool
	UnlockNow  bool
	AddWatched bool
	Up         bool
	Down       bool
}

// Validate rejects conflicting flag combinations. Runs before any I/O.
func (a Action) Validate() error {
	if a.Up && a.Down {
		return ErrConflictingFlags
	}
	if (a.Up || a.Down) && (a.UnlockNow || a.AddWatched) {
		return ErrConflictingFlags
	}
	if a.UnlockNow && a.AddWatched {
		return ErrConflictingFlags
	}
	return nil
}

type Reason string

const (
	ReasonFree       Reason = "free"
	ReasonSubscribed Reason = "subscribed"
	ReasonPurchased  Reason = "purchased"
	ReasonAdUnlock   Reason = "ad_unlock"
	ReasonCoinUnlock Reason = "coin_unlock"

	ReasonPaymentRequired   Reason = "payment_required"
	ReasonInsufficientFunds Reason = "insufficient_funds"
	ReasonQuotaExceeded     Reason = "quota_exceeded"
)

// Decision is the evaluator's result. Exactly one of the grant reasons or the
// denial reasons is set; denial payloads for coin outcomes carry the wallet
// snapshot and price so the client can offer an unlock method.
type Decision struct {
	Granted bool           `json:"granted"`
	Reason  Reason         `json:"reason"`
	Unit    *catalog.Unit  `json:"unit,omitempty"`
	Price   int64          `json:"price,omitempty"`
	Wallet  *wallet.Wallet `json:"wallet,omitempty"`
	Flags   library.Flags  `json:"flags"`

	// AdViewsUsed reports the quota count after an ad unlock, or the
	// exhausted count on a quota denial.
	AdViewsUsed int `json:"ad_views_used,omitempty"`
}
