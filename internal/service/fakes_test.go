package service

import (
	"context"
	"sort"

	"github.com/treasuretrails/park-api/internal/domain"
	"github.com/treasuretrails/park-api/internal/repository"
)

// The fakes mirror the postgres-backed repositories closely enough for the
// services to run unchanged: WithTx snapshots state up front and rolls it
// back when the closure fails, which is what lets the tests assert that a
// failed operation leaves nothing behind.

type fakeCatalogRepo struct {
	nextID      uint
	tickets     map[uint]domain.Ticket
	activities  map[uint]domain.Activity
	restaurants map[uint]domain.Restaurant
	stores      map[uint]domain.Store
	menus       map[uint][]uint
	catalogs    map[uint][]uint
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		nextID:      1,
		tickets:     map[uint]domain.Ticket{},
		activities:  map[uint]domain.Activity{},
		restaurants: map[uint]domain.Restaurant{},
		stores:      map[uint]domain.Store{},
		menus:       map[uint][]uint{},
		catalogs:    map[uint][]uint{},
	}
}

func (f *fakeCatalogRepo) snapshot() *fakeCatalogRepo {
	s := newFakeCatalogRepo()
	s.nextID = f.nextID
	for k, v := range f.tickets {
		s.tickets[k] = v
	}
	for k, v := range f.activities {
		s.activities[k] = v
	}
	for k, v := range f.restaurants {
		s.restaurants[k] = v
	}
	for k, v := range f.stores {
		s.stores[k] = v
	}
	for k, v := range f.menus {
		s.menus[k] = append([]uint{}, v...)
	}
	for k, v := range f.catalogs {
		s.catalogs[k] = append([]uint{}, v...)
	}
	return s
}

func (f *fakeCatalogRepo) restore(s *fakeCatalogRepo) {
	f.nextID = s.nextID
	f.tickets = s.tickets
	f.activities = s.activities
	f.restaurants = s.restaurants
	f.stores = s.stores
	f.menus = s.menus
	f.catalogs = s.catalogs
}

func (f *fakeCatalogRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s := f.snapshot()
	if err := fn(ctx); err != nil {
		f.restore(s)
		return err
	}
	return nil
}

func (f *fakeCatalogRepo) claimID() uint {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeCatalogRepo) CreateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	ticket.ID = f.claimID()
	f.tickets[ticket.ID] = ticket
	return ticket, nil
}

func (f *fakeCatalogRepo) FindTicketByID(ctx context.Context, id uint) (domain.Ticket, error) {
	ticket, ok := f.tickets[id]
	if !ok {
		return domain.Ticket{}, repository.ErrTicketNotFound
	}
	return ticket, nil
}

func (f *fakeCatalogRepo) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	tickets := make([]domain.Ticket, 0, len(f.tickets))
	for _, t := range f.tickets {
		tickets = append(tickets, t)
	}
	sort.Slice(tickets, func(i, j int) bool { return tickets[i].ID < tickets[j].ID })
	return tickets, nil
}

func (f *fakeCatalogRepo) CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	activity.ID = f.claimID()
	f.activities[activity.ID] = activity
	return activity, nil
}

func (f *fakeCatalogRepo) FindActivityByID(ctx context.Context, id uint) (domain.Activity, error) {
	activity, ok := f.activities[id]
	if !ok {
		return domain.Activity{}, repository.ErrActivityNotFound
	}
	return activity, nil
}

func (f *fakeCatalogRepo) FindActivityForUpdate(ctx context.Context, id uint) (domain.Activity, error) {
	return f.FindActivityByID(ctx, id)
}

func (f *fakeCatalogRepo) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	activities := make([]domain.Activity, 0, len(f.activities))
	for _, a := range f.activities {
		activities = append(activities, a)
	}
	sort.Slice(activities, func(i, j int) bool { return activities[i].ID < activities[j].ID })
	return activities, nil
}

func (f *fakeCatalogRepo) ListActiveActivities(ctx context.Context, activityType domain.ActivityType) ([]domain.Activity, error) {
	all, _ := f.ListActivities(ctx)
	var activities []domain.Activity
	for _, a := range all {
		if a.IsActive && a.Type == activityType {
			activities = append(activities, a)
		}
	}
	return activities, nil
}

func (f *fakeCatalogRepo) ActiveAttractionNameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	for _, a := range f.activities {
		if a.ID != excludeID && a.IsActive && a.Type == domain.ActivityTypeAttraction && a.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCatalogRepo) SetActivityActive(ctx context.Context, id uint, active bool) error {
	activity, ok := f.activities[id]
	if !ok {
		return repository.ErrActivityNotFound
	}
	activity.IsActive = active
	f.activities[id] = activity
	return nil
}

func (f *fakeCatalogRepo) CreateRestaurant(ctx context.Context, restaurant domain.Restaurant) (domain.Restaurant, error) {
	restaurant.ID = f.claimID()
	f.restaurants[restaurant.ID] = restaurant
	return restaurant, nil
}

func (f *fakeCatalogRepo) FindRestaurantByID(ctx context.Context, id uint) (domain.Restaurant, error) {
	restaurant, ok := f.restaurants[id]
	if !ok {
		return domain.Restaurant{}, repository.ErrRestaurantNotFound
	}
	return restaurant, nil
}

func (f *fakeCatalogRepo) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants := make([]domain.Restaurant, 0, len(f.restaurants))
	for _, r := range f.restaurants {
		restaurants = append(restaurants, r)
	}
	sort.Slice(restaurants, func(i, j int) bool { return restaurants[i].ID < restaurants[j].ID })
	return restaurants, nil
}

func (f *fakeCatalogRepo) ReplaceRestaurantMenu(ctx context.Context, restaurantID uint, activityIDs []uint) error {
	f.menus[restaurantID] = append([]uint{}, activityIDs...)
	return nil
}

func (f *fakeCatalogRepo) ListRestaurantMenu(ctx context.Context, restaurantID uint) ([]domain.Activity, error) {
	menu := make([]domain.Activity, 0, len(f.menus[restaurantID]))
	for _, id := range f.menus[restaurantID] {
		menu = append(menu, f.activities[id])
	}
	return menu, nil
}

func (f *fakeCatalogRepo) CreateStore(ctx context.Context, store domain.Store) (domain.Store, error) {
	store.ID = f.claimID()
	f.stores[store.ID] = store
	return store, nil
}

func (f *fakeCatalogRepo) FindStoreByID(ctx context.Context, id uint) (domain.Store, error) {
	store, ok := f.stores[id]
	if !ok {
		return domain.Store{}, repository.ErrStoreNotFound
	}
	return store, nil
}

func (f *fakeCatalogRepo) ListStores(ctx context.Context) ([]domain.Store, error) {
	stores := make([]domain.Store, 0, len(f.stores))
	for _, s := range f.stores {
		stores = append(stores, s)
	}
	sort.Slice(stores, func(i, j int) bool { return stores[i].ID < stores[j].ID })
	return stores, nil
}

func (f *fakeCatalogRepo) ReplaceStoreCatalog(ctx context.Context, storeID uint, activityIDs []uint) error {
	f.catalogs[storeID] = append([]uint{}, activityIDs...)
	return nil
}

func (f *fakeCatalogRepo) ListStoreCatalog(ctx context.Context, storeID uint) ([]domain.Activity, error) {
	products := make([]domain.Activity, 0, len(f.catalogs[storeID]))
	for _, id := range f.catalogs[storeID] {
		products = append(products, f.activities[id])
	}
	return products, nil
}

type holderKey struct {
	holderID   uint
	activityID uint
}

type fakeHolderRepo struct {
	accounts    map[uint]domain.HolderAccount
	completions map[holderKey]bool
	counters    map[holderKey]domain.AccessCounter
	entries     []domain.LedgerEntry
	nextEntryID uint
}

func newFakeHolderRepo() *fakeHolderRepo {
	return &fakeHolderRepo{
		accounts:    map[uint]domain.HolderAccount{},
		completions: map[holderKey]bool{},
		counters:    map[holderKey]domain.AccessCounter{},
		nextEntryID: 1,
	}
}

func (f *fakeHolderRepo) snapshot() *fakeHolderRepo {
	s := newFakeHolderRepo()
	s.nextEntryID = f.nextEntryID
	for k, v := range f.accounts {
		s.accounts[k] = v
	}
	for k, v := range f.completions {
		s.completions[k] = v
	}
	for k, v := range f.counters {
		s.counters[k] = v
	}
	s.entries = append([]domain.LedgerEntry{}, f.entries...)
	return s
}

func (f *fakeHolderRepo) restore(s *fakeHolderRepo) {
	f.nextEntryID = s.nextEntryID
	f.accounts = s.accounts
	f.completions = s.completions
	f.counters = s.counters
	f.entries = s.entries
}

func (f *fakeHolderRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s := f.snapshot()
	if err := fn(ctx); err != nil {
		f.restore(s)
		return err
	}
	return nil
}

func (f *fakeHolderRepo) FindAccount(ctx context.Context, userID uint) (domain.HolderAccount, error) {
	account, ok := f.accounts[userID]
	if !ok {
		return domain.HolderAccount{}, repository.ErrHolderNotFound
	}
	return account, nil
}

func (f *fakeHolderRepo) FindAccountForUpdate(ctx context.Context, userID uint) (domain.HolderAccount, error) {
	return f.FindAccount(ctx, userID)
}

func (f *fakeHolderRepo) CreateAccount(ctx context.Context, account domain.HolderAccount) (domain.HolderAccount, error) {
	if _, ok := f.accounts[account.UserID]; ok {
		return domain.HolderAccount{}, repository.ErrHolderAccountExists
	}
	f.accounts[account.UserID] = account
	return account, nil
}

func (f *fakeHolderRepo) SaveAccount(ctx context.Context, account domain.HolderAccount) error {
	f.accounts[account.UserID] = account
	return nil
}

func (f *fakeHolderRepo) HasCompletedChallenge(ctx context.Context, holderID, activityID uint) (bool, error) {
	return f.completions[holderKey{holderID, activityID}], nil
}

func (f *fakeHolderRepo) MarkChallengeCompleted(ctx context.Context, holderID, activityID uint) error {
	f.completions[holderKey{holderID, activityID}] = true
	return nil
}

func (f *fakeHolderRepo) AccessCounter(ctx context.Context, holderID, activityID uint) (domain.AccessCounter, error) {
	counter, ok := f.counters[holderKey{holderID, activityID}]
	if !ok {
		return domain.AccessCounter{ActivityID: activityID}, nil
	}
	return counter, nil
}

func (f *fakeHolderRepo) RecordEntrance(ctx context.Context, holderID, activityID uint) error {
	key := holderKey{holderID, activityID}
	counter := f.counters[key]
	counter.ActivityID = activityID
	counter.Entrances++
	f.counters[key] = counter
	return nil
}

func (f *fakeHolderRepo) RecordExit(ctx context.Context, holderID, activityID uint) error {
	key := holderKey{holderID, activityID}
	counter := f.counters[key]
	counter.ActivityID = activityID
	counter.Exits++
	f.counters[key] = counter
	return nil
}

func (f *fakeHolderRepo) CreateLedgerEntry(ctx context.Context, entry domain.LedgerEntry) (domain.LedgerEntry, error) {
	entry.ID = f.nextEntryID
	f.nextEntryID++
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeHolderRepo) ListLedgerEntries(ctx context.Context, holderID uint) ([]domain.LedgerEntry, error) {
	var entries []domain.LedgerEntry
	for _, e := range f.entries {
		if e.HolderID == holderID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
