package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treasuretrails/park-api/internal/clock"
	"github.com/treasuretrails/park-api/internal/domain"
)

func newRedemptionService() (*RedemptionService, *fakeCatalogRepo, *fakeHolderRepo) {
	catalogRepo := newFakeCatalogRepo()
	holderRepo := newFakeHolderRepo()
	svc := NewRedemptionService(catalogRepo, holderRepo, clock.NewFixed(testNow))
	return svc, catalogRepo, holderRepo
}

func seedActivity(t *testing.T, catalogRepo *fakeCatalogRepo, name string, activityType domain.ActivityType, earn, discount int, active bool) domain.Activity {
	t.Helper()

	activity, err := catalogRepo.CreateActivity(context.Background(), domain.Activity{
		Name:            name,
		EarnCredits:     earn,
		DiscountCredits: discount,
		AvailableUntil:  time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		Type:            activityType,
		IsActive:        active,
	})
	require.NoError(t, err)

	return activity
}

func seedHolder(t *testing.T, holderRepo *fakeHolderRepo, userID uint, credits int) {
	t.Helper()

	ticketID := uint(1)
	_, err := holderRepo.CreateAccount(context.Background(), domain.HolderAccount{
		UserID:   userID,
		TicketID: &ticketID,
		Credits:  credits,
	})
	require.NoError(t, err)
}

func TestRedemptionService_CompleteChallenge(t *testing.T) {
	t.Parallel()

	t.Run("credits the reward exactly once", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newRedemptionService()
		challenge := seedActivity(t, catalogRepo, "Gold Rush", domain.ActivityTypeChallenge, 30, 0, true)
		seedHolder(t, holderRepo, 7, 50)

		account, err := svc.CompleteChallenge(context.Background(), 7, challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, 80, account.Credits)

		require.Len(t, holderRepo.entries, 1)
		assert.Equal(t, domain.LedgerEntryChallengeReward, holderRepo.entries[0].Kind)
		assert.Equal(t, 30, holderRepo.entries[0].Amount)

		_, err = svc.CompleteChallenge(context.Background(), 7, challenge.ID)
		require.ErrorIs(t, err, ErrChallengeAlreadyCompleted)
		assert.Equal(t, 80, holderRepo.accounts[7].Credits)
		assert.Len(t, holderRepo.entries, 1)
	})

	t.Run("different holders can complete the same challenge", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newRedemptionService()
		challenge := seedActivity(t, catalogRepo, "Gold Rush", domain.ActivityTypeChallenge, 30, 0, true)
		seedHolder(t, holderRepo, 7, 0)
		seedHolder(t, holderRepo, 8, 0)

		_, err := svc.CompleteChallenge(context.Background(), 7, challenge.ID)
		require.NoError(t, err)

		account, err := svc.CompleteChallenge(context.Background(), 8, challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, 30, account.Credits)
	})

	t.Run("inactive challenge", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newRedemptionService()
		challenge := seedActivity(t, catalogRepo, "Gold Rush", domain.ActivityTypeChallenge, 30, 0, false)
		seedHolder(t, holderRepo, 7, 50)

		_, err := svc.CompleteChallenge(context.Background(), 7, challenge.ID)
		require.ErrorIs(t, err, ErrActivityNotActive)
	})

	t.Run("wrong activity type", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newRedemptionService()
		attraction := seedActivity(t, catalogRepo, "Kraken Drop", domain.ActivityTypeAttraction, 10, 10, true)
		seedHolder(t, holderRepo, 7, 50)

		_, err := svc.CompleteChallenge(context.Background(), 7, attraction.ID)
		require.ErrorIs(t, err, ErrWrongActivityType)
	})

	t.Run("requires a holder account", func(t *testing.T) {
		svc, catalogRepo, _ := newRedemptionService()
		challenge := seedActivity(t, catalogRepo, "Gold Rush", domain.ActivityTypeChallenge, 30, 0, true)

		_, err := svc.CompleteChallenge(context.Background(), 7, challenge.ID)
		require.ErrorIs(t, err, ErrHolderNotFound)
	})
}

func TestRedemptionService_EnterAttraction(t *testing.T) {
	t.Parallel()

	t.Run("debits the discount and bumps the counter together", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newRedemptionService()
		attraction := seedActivity(t, catalogRepo, "Kraken Drop", domain.ActivityTypeAttraction, 10, 10, true)
		seedHolder(t, holderRepo, 7, 50)

		account, err := svc.EnterAttraction(context.Background(), 7, attraction.ID)
		require.NoError(t, err)
		assert.Equal(t, 40, account.Credits)

		entrances, err := svc.GetEntranceCount(context.Background(), 7, attraction.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, entrances)

		require.Len(t, holderRepo.entries, 1)
		assert.Equal(t, domain.LedgerEntryAttractionEntrance, holderRepo.entries[0].Kind)
		assert.Equal(t, -10, holderRepo.entries[0].Amount)
	})

	t.Run("a short balance moves nothing", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newRedemptionService()
		attraction := seedActivity(t, catalogRepo, "Kraken Drop", domain.ActivityTypeAttraction, 10, 10, true)
		seedHolder(t, holderRepo, 7, 9)

		_, err := svc.EnterAttraction(context.Background(), 7, attraction.ID)
		require.ErrorIs(t, err, ErrInsufficientCredits)

		assert.Equal(t, 9, holderRepo.accounts[7].Credits)
		entrances, err := svc.GetEntranceCount(context.Background(), 7, attraction.ID)
		require.NoError(t, err)
		assert.Zero(t, entrances)
		assert.Empty(t, holderRepo.entries)
	})
}

func TestRedemptionService_ExitAttraction(t *testing.T) {
	t.Parallel()

	t.Run("credits the reward and bumps the exit counter", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newRedemptionService()
		attraction := seedActivity(t, catalogRepo, "Kraken Drop", domain.ActivityTypeAttraction, 10, 10, true)
		seedHolder(t, holderRepo, 7, 40)

		account, err := svc.ExitAttraction(context.Background(), 7, attraction.ID)
		require.NoError(t, err)
		assert.Equal(t, 50, account.Credits)

		exits, err := svc.GetExitCount(context.Background(), 7, attraction.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, exits)
	})

	t.Run("an entrance and an exit with matching rates are net zero", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newRedemptionService()
		attraction := seedActivity(t, catalogRepo, "Kraken Drop", domain.ActivityTypeAttraction, 10, 10, true)
		seedHolder(t, holderRepo, 7, 50)

		_, err := svc.EnterAttraction(context.Background(), 7, attraction.ID)
		require.NoError(t, err)

		account, err := svc.ExitAttraction(context.Background(), 7, attraction.ID)
		require.NoError(t, err)
		assert.Equal(t, 50, account.Credits)
	})
}

func TestRedemptionService_BuyMeals(t *testing.T) {
	t.Parallel()

	newRestaurant := func(t *testing.T, catalogRepo *fakeCatalogRepo) domain.Restaurant {
		t.Helper()
		restaurant, err := catalogRepo.CreateRestaurant(context.Background(), domain.Restaurant{Name: "The Galley"})
		require.NoError(t, err)
		return restaurant
	}

	t.Run("debits the summed discounts in one step", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newRedemptionService()
		restaurant := newRestaurant(t, catalogRepo)
		stew := seedActivity(t, catalogRepo, "Stew", domain.ActivityTypeMeal, 0, 8, true)
		grog := seedActivity(t, catalogRepo, "Grog", domain.ActivityTypeMeal, 0, 4, true)
		seedHolder(t, holderRepo, 7, 50)

		receipt, err := svc.BuyMeals(context.Background(), 7, restaurant.ID, []uint{stew.ID, grog.ID})
		require.NoError(t, err)
		assert.Equal(t, 12, receipt.TotalDebited)
		assert.Equal(t, 38, receipt.RemainingCredits)

		require.Len(t, holderRepo.entries, 1)
		assert.Equal(t, domain.LedgerEntryMealPurchase, holderRepo.entries[0].Kind)
		assert.Equal(t, -12, holderRepo.entries[0].Amount)
	})

	t.Run("a wrong-typed id fails the whole batch", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newRedemptionService()
		restaurant := newRestaurant(t, catalogRepo)
		stew := seedActivity(t, catalogRepo, "Stew", domain.ActivityTypeMeal, 0, 8, true)
		hat := seedActivity(t, catalogRepo, "Pirate Hat", domain.ActivityTypeProduct, 0, 12, true)
		seedHolder(t, holderRepo, 7, 50)

		_, err := svc.BuyMeals(context.Background(), 7, restaurant.ID, []uint{stew.ID, hat.ID})
		require.ErrorIs(t, err, ErrWrongActivityType)
		assert.Equal(t, 50, holderRepo.accounts[7].Credits)
		assert.Empty(t, holderRepo.entries)
	})

	t.Run("an inactive meal fails the whole batch", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newRedemptionService()
		restaurant := newRestaurant(t, catalogRepo)
		stew := seedActivity(t, catalogRepo, "Stew", domain.ActivityTypeMeal, 0, 8, false)
		seedHolder(t, holderRepo, 7, 50)

		_, err := svc.BuyMeals(context.Background(), 7, restaurant.ID, []uint{stew.ID})
		require.ErrorIs(t, err, ErrActivityNotActive)
		assert.Equal(t, 50, holderRepo.accounts[7].Credits)
	})

	t.Run("insufficient credits for the batch", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newRedemptionService()
		restaurant := newRestaurant(t, catalogRepo)
		stew := seedActivity(t, catalogRepo, "Stew", domain.ActivityTypeMeal, 0, 8, true)
		seedHolder(t, holderRepo, 7, 7)

		_, err := svc.BuyMeals(context.Background(), 7, restaurant.ID, []uint{stew.ID})
		require.ErrorIs(t, err, ErrInsufficientCredits)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		svc, _, holderRepo := newRedemptionService()
		seedHolder(t, holderRepo, 7, 50)

		_, err := svc.BuyMeals(context.Background(), 7, 99, []uint{1})
		require.ErrorIs(t, err, ErrRestaurantNotFound)
	})
}

func TestRedemptionService_BuyProducts(t *testing.T) {
	t.Parallel()

	t.Run("debits the summed discounts", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newRedemptionService()
		store, err := catalogRepo.CreateStore(context.Background(), domain.Store{Name: "Trinkets & Co"})
		require.NoError(t, err)
		hat := seedActivity(t, catalogRepo, "Pirate Hat", domain.ActivityTypeProduct, 0, 12, true)
		seedHolder(t, holderRepo, 7, 50)

		receipt, err := svc.BuyProducts(context.Background(), 7, store.ID, []uint{hat.ID})
		require.NoError(t, err)
		assert.Equal(t, 12, receipt.TotalDebited)
		assert.Equal(t, 38, receipt.RemainingCredits)

		require.Len(t, holderRepo.entries, 1)
		assert.Equal(t, domain.LedgerEntryProductPurchase, holderRepo.entries[0].Kind)
	})

	t.Run("meals cannot be bought at a store", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newRedemptionService()
		store, err := catalogRepo.CreateStore(context.Background(), domain.Store{Name: "Trinkets & Co"})
		require.NoError(t, err)
		stew := seedActivity(t, catalogRepo, "Stew", domain.ActivityTypeMeal, 0, 8, true)
		seedHolder(t, holderRepo, 7, 50)

		_, err = svc.BuyProducts(context.Background(), 7, store.ID, []uint{stew.ID})
		require.ErrorIs(t, err, ErrWrongActivityType)
		assert.Equal(t, 50, holderRepo.accounts[7].Credits)
	})
}
