package entitlement

import (
	"context"
	"errors"

	"storyreel/internal/adquota"
	"storyreel/internal/catalog"
	"storyreel/internal/library"
	"storyreel/internal/logger"
	"storyreel/internal/metrics"
	"storyreel/internal/purchase"
	"storyreel/internal/subscription"
	"storyreel/internal/wallet"
)

// Recorder receives consumption facts for granted views.
type Recorder interface {
	Enqueue(ctx context.Context, userID, unitID, workID, categoryID int) error
}

// Service is the entitlement evaluator. It owns the decision order and is the
// only writer of the purchase ledger and the wallet's unlock debits.
type Service struct {
	catalog       catalog.Repository
	subscriptions subscription.Repository
	purchases     purchase.Repository
	quota         adquota.Repository
	wallets       wallet.Repository
	library       library.Repository
	recorder      Recorder
}

func NewService(
	catalogRepo catalog.Repository,
	subscriptionRepo subscription.Repository,
	purchaseRepo purchase.Repository,
	quotaRepo adquota.Repository,
	walletRepo wallet.Repository,
	libraryRepo library.Repository,
	rec Recorder,
) *Service {
	return &Service{
		catalog:       catalogRepo,
		subscriptions: subscriptionRepo,
		purchases:     purchaseRepo,
		quota:         quotaRepo,
		wallets:       walletRepo,
		library:       libraryRepo,
		recorder:      rec,
	}
}

// View resolves the target unit (navigating first if asked) and evaluates
// entitlement on it. Navigation never transfers access from the current unit;
// the target is evaluated from scratch.
func (s *Service) View(ctx context.Context, userID, unitID int, action Action) (*Decision, error) {
	if err := action.Validate(); err != nil {
		return nil, err
	}

	unit, err := s.catalog.GetUnitByID(ctx, unitID)
	if err != nil {
		return nil, err
	}

	if action.Up {
		unit, err = s.catalog.NextUnit(ctx, unit)
	} else if action.Down {
		unit, err = s.catalog.PrevUnit(ctx, unit)
	}
	if err != nil {
		return nil, err
	}

	work, err := s.catalog.GetWorkByID(ctx, unit.WorkID)
	if err != nil {
		return nil, err
	}

	decision, err := s.evaluate(ctx, userID, unit, work, action)
	if err != nil {
		return nil, err
	}

	if decision.Granted {
		metrics.RecordUnlock(string(decision.Reason))
		if err := s.recorder.Enqueue(ctx, userID, unit.ID, work.ID, work.CategoryID); err != nil {
			logger.Errorf("Failed to enqueue view event for user %d unit %d: %v", userID, unit.ID, err)
		}
	} else {
		metrics.RecordDenial(string(decision.Reason))
	}

	flags, err := s.library.FlagsFor(ctx, userID, unit.ID)
	if err != nil {
		logger.Errorf("Failed to resolve library flags for user %d unit %d: %v", userID, unit.ID, err)
	} else {
		decision.Flags = flags
	}

	return decision, nil
}

// evaluate applies the fixed decision order. At most one ledger or quota
// mutation happens per granted decision, and the owned/subscribed checks run
// before any paying path so already-unlocked content is never re-charged.
func (s *Service) evaluate(ctx context.Context, userID int, unit *catalog.Unit, work *catalog.Work, action Action) (*Decision, error) {
	if unit.Access == catalog.AccessFree && unit.PriceCoins == 0 {
		return &Decision{Granted: true, Reason: ReasonFree, Unit: unit}, nil
	}

	subscribed, err := s.subscriptions.IsSubscribed(ctx, userID)
	if err != nil {
		return nil, err
	}
	if subscribed {
		return &Decision{Granted: true, Reason: ReasonSubscribed, Unit: unit}, nil
	}

	owned, err := s.purchases.HasPurchased(ctx, userID, unit.ID)
	if err != nil {
		return nil, err
	}
	if owned {
		return &Decision{Granted: true, Reason: ReasonPurchased, Unit: unit}, nil
	}

	if action.AddWatched {
		count, err := s.quota.Increment(ctx, userID, work.ID)
		if errors.Is(err, adquota.ErrQuotaExceeded) {
			used, _ := s.quota.GetCount(ctx, userID, work.ID)
			return &Decision{
				Granted:     false,
				Reason:      ReasonQuotaExceeded,
				Unit:        unit,
				Price:       unit.PriceCoins,
				AdViewsUsed: used,
			}, nil
		}
		if err != nil {
			return nil, err
		}
		if err := s.purchases.RecordPurchase(ctx, userID, unit.ID); err != nil {
			return nil, err
		}
		return &Decision{
			Granted:     true,
			Reason:      ReasonAdUnlock,
			Unit:        unit,
			AdViewsUsed: count,
		}, nil
	}

	if action.UnlockNow || action.AutoUnlock {
		w, err := s.purchases.UnlockWithCoins(ctx, userID, unit.ID, unit.PriceCoins)
		if errors.Is(err, wallet.ErrInsufficientFunds) {
			return &Decision{
				Granted: false,
				Reason:  ReasonInsufficientFunds,
				Unit:    unit,
				Price:   unit.PriceCoins,
				Wallet:  w,
			}, nil
		}
		if err != nil {
			return nil, err
		}
		metrics.RecordCoinsSpent(unit.PriceCoins)
		return &Decision{
			Granted: true,
			Reason:  ReasonCoinUnlock,
			Unit:    unit,
			Price:   unit.PriceCoins,
			Wallet:  w,
		}, nil
	}

	w, err := s.wallets.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Decision{
		Granted: false,
		Reason:  ReasonPaymentRequired,
		Unit:    unit,
		Price:   unit.PriceCoins,
		Wallet:  w,
	}, nil
}
