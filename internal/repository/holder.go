package repository

import (
	"context"

	"github.com/treasuretrails/park-api/internal/domain"
	"github.com/treasuretrails/park-api/internal/repository/dao"
)

var (
	ErrHolderNotFound      = dao.ErrHolderNotFound
	ErrHolderAccountExists = dao.ErrHolderAccountExists
)

type HolderDAO interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	FindAccount(ctx context.Context, userID uint) (dao.HolderAccount, error)
	FindAccountForUpdate(ctx context.Context, userID uint) (dao.HolderAccount, error)
	InsertAccount(ctx context.Context, account dao.HolderAccount) (dao.HolderAccount, error)
	SaveAccount(ctx context.Context, account dao.HolderAccount) error
	HasCompletedChallenge(ctx context.Context, holderID, activityID uint) (bool, error)
	InsertChallengeCompletion(ctx context.Context, holderID, activityID uint) error
	FindAccessCounter(ctx context.Context, holderID, activityID uint) (dao.AccessCounter, error)
	IncrementEntrance(ctx context.Context, holderID, activityID uint) error
	IncrementExit(ctx context.Context, holderID, activityID uint) error
	InsertLedgerEntry(ctx context.Context, entry dao.LedgerEntry) (dao.LedgerEntry, error)
	ListLedgerEntries(ctx context.Context, holderID uint) ([]dao.LedgerEntry, error)
}

type HolderRepository struct {
	dao HolderDAO
}

func NewHolderRepository(dao HolderDAO) *HolderRepository {
	return &HolderRepository{
		dao: dao,
	}
}

func (r *HolderRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.dao.WithTx(ctx, fn)
}

func (r *HolderRepository) FindAccount(ctx context.Context, userID uint) (domain.HolderAccount, error) {
	account, err := r.dao.FindAccount(ctx, userID)
	if err != nil {
		return domain.HolderAccount{}, err
	}

	return accountDaoToDomain(account), nil
}

func (r *HolderRepository) FindAccountForUpdate(ctx context.Context, userID uint) (domain.HolderAccount, error) {
	account, err := r.dao.FindAccountForUpdate(ctx, userID)
	if err != nil {
		return domain.HolderAccount{}, err
	}

	return accountDaoToDomain(account), nil
}

func (r *HolderRepository) CreateAccount(ctx context.Context, account domain.HolderAccount) (domain.HolderAccount, error) {
	created, err := r.dao.InsertAccount(ctx, accountDomainToDao(account))
	if err != nil {
		return domain.HolderAccount{}, err
	}

	return accountDaoToDomain(created), nil
}

func (r *HolderRepository) SaveAccount(ctx context.Context, account domain.HolderAccount) error {
	return r.dao.SaveAccount(ctx, accountDomainToDao(account))
}

func (r *HolderRepository) HasCompletedChallenge(ctx context.Context, holderID, activityID uint) (bool, error) {
	return r.dao.HasCompletedChallenge(ctx, holderID, activityID)
}

func (r *HolderRepository) MarkChallengeCompleted(ctx context.Context, holderID, activityID uint) error {
	return r.dao.InsertChallengeCompletion(ctx, holderID, activityID)
}

func (r *HolderRepository) AccessCounter(ctx context.Context, holderID, activityID uint) (domain.AccessCounter, error) {
	counter, err := r.dao.FindAccessCounter(ctx, holderID, activityID)
	if err != nil {
		return domain.AccessCounter{}, err
	}

	return domain.AccessCounter{
		ActivityID: counter.ActivityID,
		Entrances:  counter.Entrances,
		Exits:      counter.Exits,
	}, nil
}

func (r *HolderRepository) RecordEntrance(ctx context.Context, holderID, activityID uint) error {
	return r.dao.IncrementEntrance(ctx, holderID, activityID)
}

func (r *HolderRepository) RecordExit(ctx context.Context, holderID, activityID uint) error {
	return r.dao.IncrementExit(ctx, holderID, activityID)
}

func (r *HolderRepository) CreateLedgerEntry(ctx context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error) {
	created, err := r.dao.InsertLedgerEntry(ctx, dao.LedgerEntry{
		Reference:  entry.Reference,
		HolderID:   entry.HolderID,
		ActivityID: entry.ActivityID,
		Amount:     entry.Amount,
		Kind:       string(entry.Kind),
		CreatedAt:  entry.CreatedAt,
	})
	if err != nil {
		return domain.LedgerEntry{}, err
	}

	return entryDaoToDomain(created), nil
}

func (r *HolderRepository) ListLedgerEntries(ctx context.Context, holderID uint) ([]domain.LedgerEntry, error) {
	entries, err := r.dao.ListLedgerEntries(ctx, holderID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.LedgerEntry, len(entries))
	for i, e := range entries {
		out[i] = entryDaoToDomain(e)
	}

	return out, nil
}

func accountDomainToDao(a domain.HolderAccount) dao.HolderAccount {
	return dao.HolderAccount{
		UserID:    a.UserID,
		TicketID:  a.TicketID,
		Credits:   a.Credits,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func accountDaoToDomain(a dao.HolderAccount) domain.HolderAccount {
	return domain.HolderAccount{
		UserID:    a.UserID,
		TicketID:  a.TicketID,
		Credits:   a.Credits,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func entryDaoToDomain(e dao.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:         e.ID,
		Reference:  e.Reference,
		HolderID:   e.HolderID,
		ActivityID: e.ActivityID,
		Amount:     e.Amount,
		Kind:       domain.LedgerEntryKind(e.Kind),
		CreatedAt:  e.CreatedAt,
	}
}
