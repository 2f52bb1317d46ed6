package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/treasuretrails/park-api/internal/clock"
	"github.com/treasuretrails/park-api/internal/domain"
	"github.com/treasuretrails/park-api/internal/repository"
)

var (
	ErrHolderNotFound         = repository.ErrHolderNotFound
	ErrTicketAlreadyPurchased = errors.New("holder already purchased a ticket")
	ErrInsufficientPayment    = errors.New("payment does not cover the ticket price")
	ErrInsufficientCredits    = errors.New("insufficient credits")
)

type HolderRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	FindAccount(ctx context.Context, userID uint) (domain.HolderAccount, error)
	FindAccountForUpdate(ctx context.Context, userID uint) (domain.HolderAccount, error)
	CreateAccount(ctx context.Context, account domain.HolderAccount) (domain.HolderAccount, error)
	SaveAccount(ctx context.Context, account domain.HolderAccount) error
	HasCompletedChallenge(ctx context.Context, holderID, activityID uint) (bool, error)
	MarkChallengeCompleted(ctx context.Context, holderID, activityID uint) error
	AccessCounter(ctx context.Context, holderID, activityID uint) (domain.AccessCounter, error)
	RecordEntrance(ctx context.Context, holderID, activityID uint) error
	RecordExit(ctx context.Context, holderID, activityID uint) error
	CreateLedgerEntry(ctx context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error)
	ListLedgerEntries(ctx context.Context, holderID uint) ([]domain.LedgerEntry, error)
}

// LedgerService owns ticket purchases and balance reads. Balance mutations
// for redemptions live in RedemptionService; both go through the same
// holder repository and the same transactional journal.
type LedgerService struct {
	catalogRepo CatalogRepository
	holderRepo  HolderRepository
	clock       clock.Clock
}

func NewLedgerService(catalogRepo CatalogRepository, holderRepo HolderRepository, clk clock.Clock) *LedgerService {
	return &LedgerService{
		catalogRepo: catalogRepo,
		holderRepo:  holderRepo,
		clock:       clk,
	}
}

// BuyTicket sells a ticket to a holder. The holder account is created lazily
// on the first purchase; a holder can ever own one ticket. Payment is checked
// against the ticket price before any state moves.
func (s *LedgerService) BuyTicket(ctx context.Context, userID, ticketID uint, payment int64) (domain.HolderAccount, error) {
	var account domain.HolderAccount

	err := s.holderRepo.WithTx(ctx, func(txCtx context.Context) error {
		ticket, err := s.catalogRepo.FindTicketByID(txCtx, ticketID)
		if err != nil {
			return fmt.Errorf("s.catalogRepo.FindTicketByID -> %w", err)
		}

		existing, err := s.holderRepo.FindAccountForUpdate(txCtx, userID)
		exists := err == nil
		if err != nil && !errors.Is(err, ErrHolderNotFound) {
			return fmt.Errorf("s.holderRepo.FindAccountForUpdate -> %w", err)
		}

		if exists && existing.HasTicket() {
			return ErrTicketAlreadyPurchased
		}
		if payment < ticket.Price {
			return ErrInsufficientPayment
		}

		if exists {
			existing.TicketID = &ticket.ID
			existing.Credits = ticket.InitialCredits
			if err := s.holderRepo.SaveAccount(txCtx, existing); err != nil {
				return fmt.Errorf("s.holderRepo.SaveAccount -> %w", err)
			}
			account = existing
		} else {
			created, err := s.holderRepo.CreateAccount(txCtx, domain.HolderAccount{
				UserID:   userID,
				TicketID: &ticket.ID,
				Credits:  ticket.InitialCredits,
			})
			if err != nil {
				// A concurrent first purchase can land between the
				// existence check and the insert; the loser reads as a
				// repeat purchase, not as an internal error.
				if errors.Is(err, repository.ErrHolderAccountExists) {
					return ErrTicketAlreadyPurchased
				}

				return fmt.Errorf("s.holderRepo.CreateAccount -> %w", err)
			}
			account = created
		}

		if _, err := s.holderRepo.CreateLedgerEntry(txCtx, domain.LedgerEntry{
			Reference: uuid.NewString(),
			HolderID:  userID,
			Amount:    ticket.InitialCredits,
			Kind:      domain.LedgerEntryTicketPurchase,
			CreatedAt: s.clock.Now(),
		}); err != nil {
			return fmt.Errorf("s.holderRepo.CreateLedgerEntry -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.HolderAccount{}, err
	}

	return account, nil
}

// GetCredits returns the holder balance, zero for callers that never bought
// a ticket.
func (s *LedgerService) GetCredits(ctx context.Context, userID uint) (int, error) {
	account, err := s.holderRepo.FindAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrHolderNotFound) {
			return 0, nil
		}

		return 0, fmt.Errorf("s.holderRepo.FindAccount -> %w", err)
	}

	return account.Credits, nil
}

func (s *LedgerService) GetMyTickets(ctx context.Context, userID uint) ([]domain.Ticket, error) {
	account, err := s.holderRepo.FindAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrHolderNotFound) {
			return []domain.Ticket{}, nil
		}

		return nil, fmt.Errorf("s.holderRepo.FindAccount -> %w", err)
	}

	if !account.HasTicket() {
		return []domain.Ticket{}, nil
	}

	ticket, err := s.catalogRepo.FindTicketByID(ctx, *account.TicketID)
	if err != nil {
		return nil, fmt.Errorf("s.catalogRepo.FindTicketByID -> %w", err)
	}

	return []domain.Ticket{ticket}, nil
}

func (s *LedgerService) GetLedgerEntries(ctx context.Context, userID uint) ([]domain.LedgerEntry, error) {
	entries, err := s.holderRepo.ListLedgerEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.holderRepo.ListLedgerEntries -> %w", err)
	}

	return entries, nil
}
