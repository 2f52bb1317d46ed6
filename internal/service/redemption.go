package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/treasuretrails/park-api/internal/clock"
	"github.com/treasuretrails/park-api/internal/domain"
)

var (
	ErrActivityNotActive         = errors.New("activity is not active")
	ErrChallengeAlreadyCompleted = errors.New("challenge already completed")
)

// RedemptionService orchestrates every holder operation that moves credits:
// challenge completions, attraction entrances/exits and batched meal or
// product purchases. Each operation validates inside a transaction and only
// then commits balance, counters and journal together.
type RedemptionService struct {
	catalogRepo CatalogRepository
	holderRepo  HolderRepository
	clock       clock.Clock
}

func NewRedemptionService(catalogRepo CatalogRepository, holderRepo HolderRepository, clk clock.Clock) *RedemptionService {
	return &RedemptionService{
		catalogRepo: catalogRepo,
		holderRepo:  holderRepo,
		clock:       clk,
	}
}

// PurchaseReceipt summarizes a batched meal/product purchase.
type PurchaseReceipt struct {
	TotalDebited     int `json:"total_debited"`
	RemainingCredits int `json:"remaining_credits"`
}

// CompleteChallenge credits the challenge reward once per holder. The
// completion mark and the balance change commit atomically, so a challenge
// can never pay out twice.
func (s *RedemptionService) CompleteChallenge(ctx context.Context, userID, activityID uint) (domain.HolderAccount, error) {
	var account domain.HolderAccount

	err := s.holderRepo.WithTx(ctx, func(txCtx context.Context) error {
		activity, err := s.activeActivity(txCtx, activityID, domain.ActivityTypeChallenge)
		if err != nil {
			return err
		}

		holder, err := s.holderRepo.FindAccountForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("s.holderRepo.FindAccountForUpdate -> %w", err)
		}

		completed, err := s.holderRepo.HasCompletedChallenge(txCtx, userID, activityID)
		if err != nil {
			return fmt.Errorf("s.holderRepo.HasCompletedChallenge -> %w", err)
		}
		if completed {
			return ErrChallengeAlreadyCompleted
		}

		holder.Credits += activity.EarnCredits
		if err := s.holderRepo.SaveAccount(txCtx, holder); err != nil {
			return fmt.Errorf("s.holderRepo.SaveAccount -> %w", err)
		}

		if err := s.holderRepo.MarkChallengeCompleted(txCtx, userID, activityID); err != nil {
			return fmt.Errorf("s.holderRepo.MarkChallengeCompleted -> %w", err)
		}

		if err := s.journal(txCtx, userID, &activity.ID, activity.EarnCredits, domain.LedgerEntryChallengeReward); err != nil {
			return err
		}

		account = holder

		return nil
	})
	if err != nil {
		return domain.HolderAccount{}, err
	}

	return account, nil
}

// EnterAttraction debits the attraction discount and bumps the entrance
// counter in one step; neither changes when the balance is short.
func (s *RedemptionService) EnterAttraction(ctx context.Context, userID, activityID uint) (domain.HolderAccount, error) {
	var account domain.HolderAccount

	err := s.holderRepo.WithTx(ctx, func(txCtx context.Context) error {
		activity, err := s.activeActivity(txCtx, activityID, domain.ActivityTypeAttraction)
		if err != nil {
			return err
		}

		holder, err := s.holderRepo.FindAccountForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("s.holderRepo.FindAccountForUpdate -> %w", err)
		}

		if holder.Credits < activity.DiscountCredits {
			return ErrInsufficientCredits
		}

		holder.Credits -= activity.DiscountCredits
		if err := s.holderRepo.SaveAccount(txCtx, holder); err != nil {
			return fmt.Errorf("s.holderRepo.SaveAccount -> %w", err)
		}

		if err := s.holderRepo.RecordEntrance(txCtx, userID, activityID); err != nil {
			return fmt.Errorf("s.holderRepo.RecordEntrance -> %w", err)
		}

		if err := s.journal(txCtx, userID, &activity.ID, -activity.DiscountCredits, domain.LedgerEntryAttractionEntrance); err != nil {
			return err
		}

		account = holder

		return nil
	})
	if err != nil {
		return domain.HolderAccount{}, err
	}

	return account, nil
}

// ExitAttraction credits the attraction reward and bumps the exit counter.
// Exits are not required to follow an entrance.
func (s *RedemptionService) ExitAttraction(ctx context.Context, userID, activityID uint) (domain.HolderAccount, error) {
	var account domain.HolderAccount

	err := s.holderRepo.WithTx(ctx, func(txCtx context.Context) error {
		activity, err := s.activeActivity(txCtx, activityID, domain.ActivityTypeAttraction)
		if err != nil {
			return err
		}

		holder, err := s.holderRepo.FindAccountForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("s.holderRepo.FindAccountForUpdate -> %w", err)
		}

		holder.Credits += activity.EarnCredits
		if err := s.holderRepo.SaveAccount(txCtx, holder); err != nil {
			return fmt.Errorf("s.holderRepo.SaveAccount -> %w", err)
		}

		if err := s.holderRepo.RecordExit(txCtx, userID, activityID); err != nil {
			return fmt.Errorf("s.holderRepo.RecordExit -> %w", err)
		}

		if err := s.journal(txCtx, userID, &activity.ID, activity.EarnCredits, domain.LedgerEntryAttractionExit); err != nil {
			return err
		}

		account = holder

		return nil
	})
	if err != nil {
		return domain.HolderAccount{}, err
	}

	return account, nil
}

// BuyMeals debits the summed discount of the given meal activities in one
// atomic step. Ids only need to be existing, active MEAL activities;
// membership in the restaurant's configured menu is not re-validated.
func (s *RedemptionService) BuyMeals(ctx context.Context, userID, restaurantID uint, activityIDs []uint) (PurchaseReceipt, error) {
	var receipt PurchaseReceipt

	err := s.holderRepo.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.catalogRepo.FindRestaurantByID(txCtx, restaurantID); err != nil {
			return fmt.Errorf("s.catalogRepo.FindRestaurantByID -> %w", err)
		}

		total, err := s.batchTotal(txCtx, activityIDs, domain.ActivityTypeMeal)
		if err != nil {
			return err
		}

		remaining, err := s.debit(txCtx, userID, total, domain.LedgerEntryMealPurchase)
		if err != nil {
			return err
		}

		receipt = PurchaseReceipt{TotalDebited: total, RemainingCredits: remaining}

		return nil
	})
	if err != nil {
		return PurchaseReceipt{}, err
	}

	return receipt, nil
}

// BuyProducts is BuyMeals for store products.
func (s *RedemptionService) BuyProducts(ctx context.Context, userID, storeID uint, activityIDs []uint) (PurchaseReceipt, error) {
	var receipt PurchaseReceipt

	err := s.holderRepo.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.catalogRepo.FindStoreByID(txCtx, storeID); err != nil {
			return fmt.Errorf("s.catalogRepo.FindStoreByID -> %w", err)
		}

		total, err := s.batchTotal(txCtx, activityIDs, domain.ActivityTypeProduct)
		if err != nil {
			return err
		}

		remaining, err := s.debit(txCtx, userID, total, domain.LedgerEntryProductPurchase)
		if err != nil {
			return err
		}

		receipt = PurchaseReceipt{TotalDebited: total, RemainingCredits: remaining}

		return nil
	})
	if err != nil {
		return PurchaseReceipt{}, err
	}

	return receipt, nil
}

func (s *RedemptionService) GetEntranceCount(ctx context.Context, userID, activityID uint) (int, error) {
	counter, err := s.holderRepo.AccessCounter(ctx, userID, activityID)
	if err != nil {
		return 0, fmt.Errorf("s.holderRepo.AccessCounter -> %w", err)
	}

	return counter.Entrances, nil
}

func (s *RedemptionService) GetExitCount(ctx context.Context, userID, activityID uint) (int, error) {
	counter, err := s.holderRepo.AccessCounter(ctx, userID, activityID)
	if err != nil {
		return 0, fmt.Errorf("s.holderRepo.AccessCounter -> %w", err)
	}

	return counter.Exits, nil
}

// activeActivity resolves an activity and checks type and active state, in
// that order.
func (s *RedemptionService) activeActivity(ctx context.Context, activityID uint, want domain.ActivityType) (domain.Activity, error) {
	activity, err := s.catalogRepo.FindActivityByID(ctx, activityID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.catalogRepo.FindActivityByID -> %w", err)
	}

	if activity.Type != want {
		return domain.Activity{}, ErrWrongActivityType
	}
	if !activity.IsActive {
		return domain.Activity{}, ErrActivityNotActive
	}

	return activity, nil
}

func (s *RedemptionService) batchTotal(ctx context.Context, activityIDs []uint, want domain.ActivityType) (int, error) {
	total := 0
	for _, activityID := range activityIDs {
		activity, err := s.activeActivity(ctx, activityID, want)
		if err != nil {
			return 0, err
		}
		total += activity.DiscountCredits
	}

	return total, nil
}

func (s *RedemptionService) debit(ctx context.Context, userID uint, amount int, kind domain.LedgerEntryKind) (int, error) {
	holder, err := s.holderRepo.FindAccountForUpdate(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("s.holderRepo.FindAccountForUpdate -> %w", err)
	}

	if holder.Credits < amount {
		return 0, ErrInsufficientCredits
	}

	holder.Credits -= amount
	if err := s.holderRepo.SaveAccount(ctx, holder); err != nil {
		return 0, fmt.Errorf("s.holderRepo.SaveAccount -> %w", err)
	}

	if err := s.journal(ctx, userID, nil, -amount, kind); err != nil {
		return 0, err
	}

	return holder.Credits, nil
}

func (s *RedemptionService) journal(ctx context.Context, holderID uint, activityID *uint, amount int, kind domain.LedgerEntryKind) error {
	if _, err := s.holderRepo.CreateLedgerEntry(ctx, domain.LedgerEntry{
		Reference:  uuid.NewString(),
		HolderID:   holderID,
		ActivityID: activityID,
		Amount:     amount,
		Kind:       kind,
		CreatedAt:  s.clock.Now(),
	}); err != nil {
		return fmt.Errorf("s.holderRepo.CreateLedgerEntry -> %w", err)
	}

	return nil
}
