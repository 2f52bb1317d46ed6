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
	ErrTicketNotFound                = errors.New("ticket not found")
	ErrActivityNotFound              = errors.New("activity not found")
	ErrRestaurantNotFound            = errors.New("restaurant not found")
	ErrStoreNotFound                 = errors.New("store not found")
	ErrDuplicateActiveAttractionName = errors.New("an active attraction with this name already exists")
)

type Ticket struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	Price          int64  `gorm:"not null"`
	DurationDays   int    `gorm:"not null"`
	InitialCredits int    `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Activity rows carry a partial unique index on name, scoped to active
// attractions. It is what keeps two same-named attractions from being
// active at once even when they are activated concurrently.
type Activity struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"not null;index;uniqueIndex:uni_active_attraction_name,where:is_active AND type = 'ATTRACTION'"`
	Description     string
	EarnCredits     int       `gorm:"not null"`
	DiscountCredits int       `gorm:"not null"`
	AvailableUntil  time.Time `gorm:"not null"`
	Type            string    `gorm:"not null;index"`
	IsActive        bool      `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Restaurant struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`

	Menu []RestaurantMenuItem `gorm:"foreignKey:RestaurantID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// RestaurantMenuItem pins one meal activity to a restaurant menu slot.
// Position preserves the order the admin supplied.
type RestaurantMenuItem struct {
	RestaurantID uint     `gorm:"primaryKey"`
	Position     int      `gorm:"primaryKey"`
	ActivityID   uint     `gorm:"not null"`
	Activity     Activity `gorm:"foreignKey:ActivityID"`
}

type Store struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`

	Catalog []StoreCatalogItem `gorm:"foreignKey:StoreID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type StoreCatalogItem struct {
	StoreID    uint     `gorm:"primaryKey"`
	Position   int      `gorm:"primaryKey"`
	ActivityID uint     `gorm:"not null"`
	Activity   Activity `gorm:"foreignKey:ActivityID"`
}

type CatalogDAO struct {
	db *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{
		db: db,
	}
}

func (d *CatalogDAO) InsertTicket(ctx context.Context, ticket Ticket) (Ticket, error) {
	result := conn(ctx, d.db).Create(&ticket)
	if result.Error != nil {
		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *CatalogDAO) FindTicketByID(ctx context.Context, id uint) (Ticket, error) {
	var ticket Ticket

	result := conn(ctx, d.db).First(&ticket, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Ticket{}, ErrTicketNotFound
		}

		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *CatalogDAO) ListTickets(ctx context.Context) ([]Ticket, error) {
	var tickets []Ticket

	result := conn(ctx, d.db).Order("id").Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

func (d *CatalogDAO) InsertActivity(ctx context.Context, activity Activity) (Activity, error) {
	result := conn(ctx, d.db).Create(&activity)
	if result.Error != nil {
		if isDuplicateActiveAttractionName(result.Error) {
			return Activity{}, ErrDuplicateActiveAttractionName
		}

		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *CatalogDAO) FindActivityByID(ctx context.Context, id uint) (Activity, error) {
	var activity Activity

	result := conn(ctx, d.db).First(&activity, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Activity{}, ErrActivityNotFound
		}

		return Activity{}, result.Error
	}

	return activity, nil
}

// FindActivityForUpdate locks the activity row for the rest of the enclosing
// transaction, serializing concurrent toggles of the same activity.
func (d *CatalogDAO) FindActivityForUpdate(ctx context.Context, id uint) (Activity, error) {
	var activity Activity

	result := conn(ctx, d.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&activity, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Activity{}, ErrActivityNotFound
		}

		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *CatalogDAO) ListActivities(ctx context.Context) ([]Activity, error) {
	var activities []Activity

	result := conn(ctx, d.db).Order("id").Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

func (d *CatalogDAO) ListActiveActivities(ctx context.Context, activityType string) ([]Activity, error) {
	var activities []Activity

	result := conn(ctx, d.db).
		Where("is_active = ? AND type = ?", true, activityType).
		Order("id").
		Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

// ActiveAttractionNameExists reports whether another active attraction
// already carries the given name. This is only a pre-check for a clean
// error message; the uni_active_attraction_name index is what enforces the
// rule when two activations race.
func (d *CatalogDAO) ActiveAttractionNameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	var activities []Activity

	result := conn(ctx, d.db).
		Where("type = ? AND is_active = ? AND name = ? AND id <> ?", "ATTRACTION", true, name, excludeID).
		Limit(1).
		Find(&activities)
	if result.Error != nil {
		return false, result.Error
	}

	return len(activities) > 0, nil
}

func (d *CatalogDAO) UpdateActivityActive(ctx context.Context, id uint, active bool) error {
	result := conn(ctx, d.db).
		Model(&Activity{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		if isDuplicateActiveAttractionName(result.Error) {
			return ErrDuplicateActiveAttractionName
		}

		return result.Error
	}

	return nil
}

func isDuplicateActiveAttractionName(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, `unique constraint "uni_active_attraction_name"`)
}

func (d *CatalogDAO) InsertRestaurant(ctx context.Context, restaurant Restaurant) (Restaurant, error) {
	result := conn(ctx, d.db).Create(&restaurant)
	if result.Error != nil {
		return Restaurant{}, result.Error
	}

	return restaurant, nil
}

func (d *CatalogDAO) FindRestaurantByID(ctx context.Context, id uint) (Restaurant, error) {
	var restaurant Restaurant

	result := conn(ctx, d.db).First(&restaurant, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Restaurant{}, ErrRestaurantNotFound
		}

		return Restaurant{}, result.Error
	}

	return restaurant, nil
}

func (d *CatalogDAO) ListRestaurants(ctx context.Context) ([]Restaurant, error) {
	var restaurants []Restaurant

	result := conn(ctx, d.db).Order("id").Find(&restaurants)
	if result.Error != nil {
		return nil, result.Error
	}

	return restaurants, nil
}

// ReplaceRestaurantMenu swaps the menu wholesale, keeping the order of
// activityIDs via the position column.
func (d *CatalogDAO) ReplaceRestaurantMenu(ctx context.Context, restaurantID uint, activityIDs []uint) error {
	db := conn(ctx, d.db)

	if err := db.Where("restaurant_id = ?", restaurantID).Delete(&RestaurantMenuItem{}).Error; err != nil {
		return err
	}

	if len(activityIDs) == 0 {
		return nil
	}

	items := make([]RestaurantMenuItem, len(activityIDs))
	for i, activityID := range activityIDs {
		items[i] = RestaurantMenuItem{
			RestaurantID: restaurantID,
			Position:     i,
			ActivityID:   activityID,
		}
	}

	return db.Create(&items).Error
}

func (d *CatalogDAO) ListRestaurantMenu(ctx context.Context, restaurantID uint) ([]Activity, error) {
	var items []RestaurantMenuItem

	result := conn(ctx, d.db).
		Preload("Activity").
		Where("restaurant_id = ?", restaurantID).
		Order("position").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	activities := make([]Activity, len(items))
	for i, item := range items {
		activities[i] = item.Activity
	}

	return activities, nil
}

func (d *CatalogDAO) InsertStore(ctx context.Context, store Store) (Store, error) {
	result := conn(ctx, d.db).Create(&store)
	if result.Error != nil {
		return Store{}, result.Error
	}

	return store, nil
}

func (d *CatalogDAO) FindStoreByID(ctx context.Context, id uint) (Store, error) {
	var store Store

	result := conn(ctx, d.db).First(&store, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Store{}, ErrStoreNotFound
		}

		return Store{}, result.Error
	}

	return store, nil
}

func (d *CatalogDAO) ListStores(ctx context.Context) ([]Store, error) {
	var stores []Store

	result := conn(ctx, d.db).Order("id").Find(&stores)
	if result.Error != nil {
		return nil, result.Error
	}

	return stores, nil
}

func (d *CatalogDAO) ReplaceStoreCatalog(ctx context.Context, storeID uint, activityIDs []uint) error {
	db := conn(ctx, d.db)

	if err := db.Where("store_id = ?", storeID).Delete(&StoreCatalogItem{}).Error; err != nil {
		return err
	}

	if len(activityIDs) == 0 {
		return nil
	}

	items := make([]StoreCatalogItem, len(activityIDs))
	for i, activityID := range activityIDs {
		items[i] = StoreCatalogItem{
			StoreID:    storeID,
			Position:   i,
			ActivityID: activityID,
		}
	}

	return db.Create(&items).Error
}

func (d *CatalogDAO) ListStoreCatalog(ctx context.Context, storeID uint) ([]Activity, error) {
	var items []StoreCatalogItem

	result := conn(ctx, d.db).
		Preload("Activity").
		Where("store_id = ?", storeID).
		Order("position").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	activities := make([]Activity, len(items))
	for i, item := range items {
		activities[i] = item.Activity
	}

	return activities, nil
}

func (d *CatalogDAO) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTx(ctx, d.db, fn)
}
