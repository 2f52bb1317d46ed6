package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrHolderNotFound      = errors.New("holder account not found")
	ErrHolderAccountExists = errors.New("holder account already exists")
)

type HolderAccount struct {
	UserID   uint  `gorm:"primaryKey"`
	TicketID *uint `gorm:"index"`
	Credits  int   `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ChallengeCompletion struct {
	HolderID   uint      `gorm:"primaryKey"`
	ActivityID uint      `gorm:"primaryKey"`
	CreatedAt  time.Time `gorm:"not null"`
}

type AccessCounter struct {
	HolderID   uint `gorm:"primaryKey"`
	ActivityID uint `gorm:"primaryKey"`
	Entrances  int  `gorm:"not null;default:0"`
	Exits      int  `gorm:"not null;default:0"`

	UpdatedAt time.Time `gorm:"not null"`
}

type LedgerEntry struct {
	ID         uint   `gorm:"primaryKey"`
	Reference  string `gorm:"uniqueIndex;not null"`
	HolderID   uint   `gorm:"index;not null"`
	ActivityID *uint
	Amount     int    `gorm:"not null"`
	Kind       string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type HolderDAO struct {
	db *gorm.DB
}

func NewHolderDAO(db *gorm.DB) *HolderDAO {
	return &HolderDAO{
		db: db,
	}
}

func (d *HolderDAO) FindAccount(ctx context.Context, userID uint) (HolderAccount, error) {
	var account HolderAccount

	result := conn(ctx, d.db).First(&account, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return HolderAccount{}, ErrHolderNotFound
		}

		return HolderAccount{}, result.Error
	}

	return account, nil
}

// FindAccountForUpdate locks the holder row so the balance cannot move under
// a concurrent operation until the enclosing transaction commits.
func (d *HolderDAO) FindAccountForUpdate(ctx context.Context, userID uint) (HolderAccount, error) {
	var account HolderAccount

	result := conn(ctx, d.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&account, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return HolderAccount{}, ErrHolderNotFound
		}

		return HolderAccount{}, result.Error
	}

	return account, nil
}

func (d *HolderDAO) InsertAccount(ctx context.Context, account HolderAccount) (HolderAccount, error) {
	result := conn(ctx, d.db).Create(&account)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `"holder_accounts_pkey"`) {
			return HolderAccount{}, ErrHolderAccountExists
		}

		return HolderAccount{}, result.Error
	}

	return account, nil
}

func (d *HolderDAO) SaveAccount(ctx context.Context, account HolderAccount) error {
	return conn(ctx, d.db).Save(&account).Error
}

func (d *HolderDAO) HasCompletedChallenge(ctx context.Context, holderID, activityID uint) (bool, error) {
	var count int64

	result := conn(ctx, d.db).
		Model(&ChallengeCompletion{}).
		Where("holder_id = ? AND activity_id = ?", holderID, activityID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *HolderDAO) InsertChallengeCompletion(ctx context.Context, holderID, activityID uint) error {
	completion := ChallengeCompletion{
		HolderID:   holderID,
		ActivityID: activityID,
	}

	return conn(ctx, d.db).Create(&completion).Error
}

func (d *HolderDAO) FindAccessCounter(ctx context.Context, holderID, activityID uint) (AccessCounter, error) {
	var counter AccessCounter

	result := conn(ctx, d.db).
		First(&counter, "holder_id = ? AND activity_id = ?", holderID, activityID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return AccessCounter{HolderID: holderID, ActivityID: activityID}, nil
		}

		return AccessCounter{}, result.Error
	}

	return counter, nil
}

func (d *HolderDAO) IncrementEntrance(ctx context.Context, holderID, activityID uint) error {
	counter := AccessCounter{HolderID: holderID, ActivityID: activityID, Entrances: 1}

	return conn(ctx, d.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "holder_id"}, {Name: "activity_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"entrances": gorm.Expr("access_counters.entrances + 1"),
			}),
		}).
		Create(&counter).Error
}

func (d *HolderDAO) IncrementExit(ctx context.Context, holderID, activityID uint) error {
	counter := AccessCounter{HolderID: holderID, ActivityID: activityID, Exits: 1}

	return conn(ctx, d.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "holder_id"}, {Name: "activity_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"exits": gorm.Expr("access_counters.exits + 1"),
			}),
		}).
		Create(&counter).Error
}

func (d *HolderDAO) InsertLedgerEntry(ctx context.Context, entry LedgerEntry) (LedgerEntry, error) {
	result := conn(ctx, d.db).Create(&entry)
	if result.Error != nil {
		return LedgerEntry{}, result.Error
	}

	return entry, nil
}

func (d *HolderDAO) ListLedgerEntries(ctx context.Context, holderID uint) ([]LedgerEntry, error) {
	var entries []LedgerEntry

	result := conn(ctx, d.db).
		Where("holder_id = ?", holderID).
		Order("id").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

func (d *HolderDAO) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTx(ctx, d.db, fn)
}
