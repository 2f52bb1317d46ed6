package repository

import (
	"context"

	"github.com/treasuretrails/park-api/internal/domain"
	"github.com/treasuretrails/park-api/internal/repository/dao"
)

var (
	ErrTicketNotFound      = dao.ErrTicketNotFound
	ErrActivityNotFound    = dao.ErrActivityNotFound
	ErrRestaurantNotFound  = dao.ErrRestaurantNotFound
	ErrStoreNotFound       = dao.ErrStoreNotFound
	ErrDuplicateActiveName = dao.ErrDuplicateActiveAttractionName
)

type CatalogDAO interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	InsertTicket(ctx context.Context, ticket dao.Ticket) (dao.Ticket, error)
	FindTicketByID(ctx context.Context, id uint) (dao.Ticket, error)
	ListTickets(ctx context.Context) ([]dao.Ticket, error)
	InsertActivity(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	FindActivityByID(ctx context.Context, id uint) (dao.Activity, error)
	FindActivityForUpdate(ctx context.Context, id uint) (dao.Activity, error)
	ListActivities(ctx context.Context) ([]dao.Activity, error)
	ListActiveActivities(ctx context.Context, activityType string) ([]dao.Activity, error)
	ActiveAttractionNameExists(ctx context.Context, name string, excludeID uint) (bool, error)
	UpdateActivityActive(ctx context.Context, id uint, active bool) error
	InsertRestaurant(ctx context.Context, restaurant dao.Restaurant) (dao.Restaurant, error)
	FindRestaurantByID(ctx context.Context, id uint) (dao.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]dao.Restaurant, error)
	ReplaceRestaurantMenu(ctx context.Context, restaurantID uint, activityIDs []uint) error
	ListRestaurantMenu(ctx context.Context, restaurantID uint) ([]dao.Activity, error)
	InsertStore(ctx context.Context, store dao.Store) (dao.Store, error)
	FindStoreByID(ctx context.Context, id uint) (dao.Store, error)
	ListStores(ctx context.Context) ([]dao.Store, error)
	ReplaceStoreCatalog(ctx context.Context, storeID uint, activityIDs []uint) error
	ListStoreCatalog(ctx context.Context, storeID uint) ([]dao.Activity, error)
}

type CatalogRepository struct {
	dao CatalogDAO
}

func NewCatalogRepository(dao CatalogDAO) *CatalogRepository {
	return &CatalogRepository{
		dao: dao,
	}
}

func (r *CatalogRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.dao.WithTx(ctx, fn)
}

func (r *CatalogRepository) CreateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	created, err := r.dao.InsertTicket(ctx, ticketDomainToDao(ticket))
	if err != nil {
		return domain.Ticket{}, err
	}

	return ticketDaoToDomain(created), nil
}

func (r *CatalogRepository) FindTicketByID(ctx context.Context, id uint) (domain.Ticket, error) {
	ticket, err := r.dao.FindTicketByID(ctx, id)
	if err != nil {
		return domain.Ticket{}, err
	}

	return ticketDaoToDomain(ticket), nil
}

func (r *CatalogRepository) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := r.dao.ListTickets(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Ticket, len(tickets))
	for i, t := range tickets {
		out[i] = ticketDaoToDomain(t)
	}

	return out, nil
}

func (r *CatalogRepository) CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	created, err := r.dao.InsertActivity(ctx, activityDomainToDao(activity))
	if err != nil {
		return domain.Activity{}, err
	}

	return activityDaoToDomain(created), nil
}

func (r *CatalogRepository) FindActivityByID(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := r.dao.FindActivityByID(ctx, id)
	if err != nil {
		return domain.Activity{}, err
	}

	return activityDaoToDomain(activity), nil
}

func (r *CatalogRepository) FindActivityForUpdate(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := r.dao.FindActivityForUpdate(ctx, id)
	if err != nil {
		return domain.Activity{}, err
	}

	return activityDaoToDomain(activity), nil
}

func (r *CatalogRepository) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	activities, err := r.dao.ListActivities(ctx)
	if err != nil {
		return nil, err
	}

	return activitiesDaoToDomain(activities), nil
}

func (r *CatalogRepository) ListActiveActivities(ctx context.Context, activityType domain.ActivityType) ([]domain.Activity, error) {
	activities, err := r.dao.ListActiveActivities(ctx, string(activityType))
	if err != nil {
		return nil, err
	}

	return activitiesDaoToDomain(activities), nil
}

func (r *CatalogRepository) ActiveAttractionNameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	return r.dao.ActiveAttractionNameExists(ctx, name, excludeID)
}

func (r *CatalogRepository) SetActivityActive(ctx context.Context, id uint, active bool) error {
	return r.dao.UpdateActivityActive(ctx, id, active)
}

func (r *CatalogRepository) CreateRestaurant(ctx context.Context, restaurant domain.Restaurant) (domain.Restaurant, error) {
	created, err := r.dao.InsertRestaurant(ctx, dao.Restaurant{
		ID:   restaurant.ID,
		Name: restaurant.Name,
	})
	if err != nil {
		return domain.Restaurant{}, err
	}

	return restaurantDaoToDomain(created), nil
}

func (r *CatalogRepository) FindRestaurantByID(ctx context.Context, id uint) (domain.Restaurant, error) {
	restaurant, err := r.dao.FindRestaurantByID(ctx, id)
	if err != nil {
		return domain.Restaurant{}, err
	}

	return restaurantDaoToDomain(restaurant), nil
}

func (r *CatalogRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants, err := r.dao.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Restaurant, len(restaurants))
	for i, rest := range restaurants {
		out[i] = restaurantDaoToDomain(rest)
	}

	return out, nil
}

func (r *CatalogRepository) ReplaceRestaurantMenu(ctx context.Context, restaurantID uint, activityIDs []uint) error {
	return r.dao.ReplaceRestaurantMenu(ctx, restaurantID, activityIDs)
}

func (r *CatalogRepository) ListRestaurantMenu(ctx context.Context, restaurantID uint) ([]domain.Activity, error) {
	activities, err := r.dao.ListRestaurantMenu(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	return activitiesDaoToDomain(activities), nil
}

func (r *CatalogRepository) CreateStore(ctx context.Context, store domain.Store) (domain.Store, error) {
	created, err := r.dao.InsertStore(ctx, dao.Store{
		ID:   store.ID,
		Name: store.Name,
	})
	if err != nil {
		return domain.Store{}, err
	}

	return storeDaoToDomain(created), nil
}

func (r *CatalogRepository) FindStoreByID(ctx context.Context, id uint) (domain.Store, error) {
	store, err := r.dao.FindStoreByID(ctx, id)
	if err != nil {
		return domain.Store{}, err
	}

	return storeDaoToDomain(store), nil
}

func (r *CatalogRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	stores, err := r.dao.ListStores(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Store, len(stores))
	for i, s := range stores {
		out[i] = storeDaoToDomain(s)
	}

	return out, nil
}

func (r *CatalogRepository) ReplaceStoreCatalog(ctx context.Context, storeID uint, activityIDs []uint) error {
	return r.dao.ReplaceStoreCatalog(ctx, storeID, activityIDs)
}

func (r *CatalogRepository) ListStoreCatalog(ctx context.Context, storeID uint) ([]domain.Activity, error) {
	activities, err := r.dao.ListStoreCatalog(ctx, storeID)
	if err != nil {
		return nil, err
	}

	return activitiesDaoToDomain(activities), nil
}

func ticketDomainToDao(t domain.Ticket) dao.Ticket {
	return dao.Ticket{
		ID:             t.ID,
		Name:           t.Name,
		Price:          t.Price,
		DurationDays:   t.DurationDays,
		InitialCredits: t.InitialCredits,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func ticketDaoToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:             t.ID,
		Name:           t.Name,
		Price:          t.Price,
		DurationDays:   t.DurationDays,
		InitialCredits: t.InitialCredits,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func activityDomainToDao(a domain.Activity) dao.Activity {
	return dao.Activity{
		ID:              a.ID,
		Name:            a.Name,
		Description:     a.Description,
		EarnCredits:     a.EarnCredits,
		DiscountCredits: a.DiscountCredits,
		AvailableUntil:  a.AvailableUntil,
		Type:            string(a.Type),
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func activityDaoToDomain(a dao.Activity) domain.Activity {
	return domain.Activity{
		ID:              a.ID,
		Name:            a.Name,
		Description:     a.Description,
		EarnCredits:     a.EarnCredits,
		DiscountCredits: a.DiscountCredits,
		AvailableUntil:  a.AvailableUntil,
		Type:            domain.ActivityType(a.Type),
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func activitiesDaoToDomain(activities []dao.Activity) []domain.Activity {
	out := make([]domain.Activity, len(activities))
	for i, a := range activities {
		out[i] = activityDaoToDomain(a)
	}

	return out
}

func restaurantDaoToDomain(r dao.Restaurant) domain.Restaurant {
	return domain.Restaurant{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func storeDaoToDomain(s dao.Store) domain.Store {
	return domain.Store{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
