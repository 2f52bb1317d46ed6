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

var testNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func newLedgerService() (*LedgerService, *fakeCatalogRepo, *fakeHolderRepo) {
	catalogRepo := newFakeCatalogRepo()
	holderRepo := newFakeHolderRepo()
	svc := NewLedgerService(catalogRepo, holderRepo, clock.NewFixed(testNow))
	return svc, catalogRepo, holderRepo
}

func mustCreateTicket(t *testing.T, catalogRepo *fakeCatalogRepo, price int64, initialCredits int) domain.Ticket {
	t.Helper()

	ticket, err := catalogRepo.CreateTicket(context.Background(), domain.Ticket{
		Name:           "Day Pass",
		Price:          price,
		DurationDays:   1,
		InitialCredits: initialCredits,
	})
	require.NoError(t, err)

	return ticket
}

func TestLedgerService_BuyTicket(t *testing.T) {
	t.Parallel()

	t.Run("first purchase opens the account with the initial credits", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newLedgerService()
		ticket := mustCreateTicket(t, catalogRepo, 150, 50)

		account, err := svc.BuyTicket(context.Background(), 7, ticket.ID, 150)
		require.NoError(t, err)
		require.NotNil(t, account.TicketID)
		assert.Equal(t, ticket.ID, *account.TicketID)
		assert.Equal(t, 50, account.Credits)

		require.Len(t, holderRepo.entries, 1)
		entry := holderRepo.entries[0]
		assert.Equal(t, domain.LedgerEntryTicketPurchase, entry.Kind)
		assert.Equal(t, 50, entry.Amount)
		assert.NotEmpty(t, entry.Reference)
		assert.Equal(t, testNow, entry.CreatedAt)
	})

	t.Run("overpayment is accepted", func(t *testing.T) {
		svc, catalogRepo, _ := newLedgerService()
		ticket := mustCreateTicket(t, catalogRepo, 150, 50)

		_, err := svc.BuyTicket(context.Background(), 7, ticket.ID, 1000)
		require.NoError(t, err)
	})

	t.Run("insufficient payment leaves no account behind", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newLedgerService()
		ticket := mustCreateTicket(t, catalogRepo, 150, 50)

		_, err := svc.BuyTicket(context.Background(), 7, ticket.ID, 149)
		require.ErrorIs(t, err, ErrInsufficientPayment)
		assert.Empty(t, holderRepo.accounts)
		assert.Empty(t, holderRepo.entries)
	})

	t.Run("a holder can only ever buy one ticket", func(t *testing.T) {
		svc, catalogRepo, holderRepo := newLedgerService()
		ticket := mustCreateTicket(t, catalogRepo, 150, 50)
		other := mustCreateTicket(t, catalogRepo, 300, 100)

		_, err := svc.BuyTicket(context.Background(), 7, ticket.ID, 150)
		require.NoError(t, err)

		_, err = svc.BuyTicket(context.Background(), 7, other.ID, 300)
		require.ErrorIs(t, err, ErrTicketAlreadyPurchased)

		account := holderRepo.accounts[7]
		assert.Equal(t, ticket.ID, *account.TicketID)
		assert.Equal(t, 50, account.Credits)
		assert.Len(t, holderRepo.entries, 1)
	})

	t.Run("losing a racing first purchase reads as already purchased", func(t *testing.T) {
		catalogRepo := newFakeCatalogRepo()
		holderRepo := newFakeHolderRepo()
		svc := NewLedgerService(catalogRepo, &racingHolderRepo{fakeHolderRepo: holderRepo}, clock.NewFixed(testNow))
		ticket := mustCreateTicket(t, catalogRepo, 150, 50)

		_, err := svc.BuyTicket(context.Background(), 7, ticket.ID, 150)
		require.ErrorIs(t, err, ErrTicketAlreadyPurchased)
		assert.Empty(t, holderRepo.entries)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		svc, _, _ := newLedgerService()

		_, err := svc.BuyTicket(context.Background(), 7, 99, 150)
		require.ErrorIs(t, err, ErrTicketNotFound)
	})
}

// racingHolderRepo lands a competing first purchase between the account
// lookup and the insert, as two overlapping transactions would.
type racingHolderRepo struct {
	*fakeHolderRepo
}

func (r *racingHolderRepo) FindAccountForUpdate(ctx context.Context, userID uint) (domain.HolderAccount, error) {
	account, err := r.fakeHolderRepo.FindAccountForUpdate(ctx, userID)
	if err == nil {
		return account, nil
	}

	competingTicket := uint(1)
	r.accounts[userID] = domain.HolderAccount{UserID: userID, TicketID: &competingTicket, Credits: 50}

	return domain.HolderAccount{}, err
}

func TestLedgerService_GetCredits(t *testing.T) {
	t.Parallel()

	t.Run("zero for users without an account", func(t *testing.T) {
		svc, _, _ := newLedgerService()

		credits, err := svc.GetCredits(context.Background(), 7)
		require.NoError(t, err)
		assert.Zero(t, credits)
	})

	t.Run("balance after a purchase", func(t *testing.T) {
		svc, catalogRepo, _ := newLedgerService()
		ticket := mustCreateTicket(t, catalogRepo, 150, 50)

		_, err := svc.BuyTicket(context.Background(), 7, ticket.ID, 150)
		require.NoError(t, err)

		credits, err := svc.GetCredits(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, 50, credits)
	})
}

func TestLedgerService_GetMyTickets(t *testing.T) {
	t.Parallel()

	t.Run("empty without an account", func(t *testing.T) {
		svc, _, _ := newLedgerService()

		tickets, err := svc.GetMyTickets(context.Background(), 7)
		require.NoError(t, err)
		assert.Empty(t, tickets)
	})

	t.Run("returns the held ticket", func(t *testing.T) {
		svc, catalogRepo, _ := newLedgerService()
		ticket := mustCreateTicket(t, catalogRepo, 150, 50)

		_, err := svc.BuyTicket(context.Background(), 7, ticket.ID, 150)
		require.NoError(t, err)

		tickets, err := svc.GetMyTickets(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, ticket.ID, tickets[0].ID)
	})
}
