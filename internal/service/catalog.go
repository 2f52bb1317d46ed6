package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/treasuretrails/park-api/internal/domain"
	"github.com/treasuretrails/park-api/internal/repository"
)

var (
	ErrTicketNotFound     = repository.ErrTicketNotFound
	ErrActivityNotFound   = repository.ErrActivityNotFound
	ErrRestaurantNotFound = repository.ErrRestaurantNotFound
	ErrStoreNotFound      = repository.ErrStoreNotFound

	ErrDuplicateActiveName = repository.ErrDuplicateActiveName

	ErrInvalidActivityType = errors.New("unknown activity type")
	ErrWrongActivityType   = errors.New("activity has the wrong type")
)

type CatalogRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	FindTicketByID(ctx context.Context, id uint) (domain.Ticket, error)
	ListTickets(ctx context.Context) ([]domain.Ticket, error)
	CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	FindActivityByID(ctx context.Context, id uint) (domain.Activity, error)
	FindActivityForUpdate(ctx context.Context, id uint) (domain.Activity, error)
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	ListActiveActivities(ctx context.Context, activityType domain.ActivityType) ([]domain.Activity, error)
	ActiveAttractionNameExists(ctx context.Context, name string, excludeID uint) (bool, error)
	SetActivityActive(ctx context.Context, id uint, active bool) error
	CreateRestaurant(ctx context.Context, restaurant domain.Restaurant) (domain.Restaurant, error)
	FindRestaurantByID(ctx context.Context, id uint) (domain.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ReplaceRestaurantMenu(ctx context.Context, restaurantID uint, activityIDs []uint) error
	ListRestaurantMenu(ctx context.Context, restaurantID uint) ([]domain.Activity, error)
	CreateStore(ctx context.Context, store domain.Store) (domain.Store, error)
	FindStoreByID(ctx context.Context, id uint) (domain.Store, error)
	ListStores(ctx context.Context) ([]domain.Store, error)
	ReplaceStoreCatalog(ctx context.Context, storeID uint, activityIDs []uint) error
	ListStoreCatalog(ctx context.Context, storeID uint) ([]domain.Activity, error)
}

type CatalogService struct {
	repo CatalogRepository
	gate *AdminGate
}

func NewCatalogService(repo CatalogRepository, gate *AdminGate) *CatalogService {
	return &CatalogService{
		repo: repo,
		gate: gate,
	}
}

type CreateTicketInput struct {
	Name           string
	Price          int64
	DurationDays   int
	InitialCredits int
}

func (s *CatalogService) AddTicket(ctx context.Context, caller domain.User, in CreateTicketInput) (domain.Ticket, error) {
	if err := s.gate.Authorize(caller); err != nil {
		return domain.Ticket{}, err
	}

	created, err := s.repo.CreateTicket(ctx, domain.Ticket{
		Name:           in.Name,
		Price:          in.Price,
		DurationDays:   in.DurationDays,
		InitialCredits: in.InitialCredits,
	})
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.CreateTicket -> %w", err)
	}

	return created, nil
}

type CreateActivityInput struct {
	Name            string
	Description     string
	EarnCredits     int
	DiscountCredits int
	AvailableUntil  time.Time
	Type            domain.ActivityType
}

// AddActivity registers a new activity. It always starts inactive; the admin
// flips it on with ToggleActivity once it should be redeemable.
func (s *CatalogService) AddActivity(ctx context.Context, caller domain.User, in CreateActivityInput) (domain.Activity, error) {
	if err := s.gate.Authorize(caller); err != nil {
		return domain.Activity{}, err
	}

	if !in.Type.IsValid() {
		return domain.Activity{}, ErrInvalidActivityType
	}

	created, err := s.repo.CreateActivity(ctx, domain.Activity{
		Name:            in.Name,
		Description:     in.Description,
		EarnCredits:     in.EarnCredits,
		DiscountCredits: in.DiscountCredits,
		AvailableUntil:  in.AvailableUntil,
		Type:            in.Type,
		IsActive:        false,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.CreateActivity -> %w", err)
	}

	return created, nil
}

// ToggleActivity flips the active flag. Activating an attraction fails when
// another active attraction already carries the same name: the name scan
// gives the common case a clean error, and a partial unique index backs it
// up when two activations race, so the first to commit wins and the loser
// observes the duplicate.
func (s *CatalogService) ToggleActivity(ctx context.Context, caller domain.User, activityID uint, active bool) (domain.Activity, error) {
	if err := s.gate.Authorize(caller); err != nil {
		return domain.Activity{}, err
	}

	var activity domain.Activity

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindActivityForUpdate(txCtx, activityID)
		if err != nil {
			return fmt.Errorf("s.repo.FindActivityForUpdate -> %w", err)
		}

		if active && found.Type == domain.ActivityTypeAttraction {
			exists, err := s.repo.ActiveAttractionNameExists(txCtx, found.Name, found.ID)
			if err != nil {
				return fmt.Errorf("s.repo.ActiveAttractionNameExists -> %w", err)
			}
			if exists {
				return ErrDuplicateActiveName
			}
		}

		if err := s.repo.SetActivityActive(txCtx, found.ID, active); err != nil {
			if errors.Is(err, ErrDuplicateActiveName) {
				return ErrDuplicateActiveName
			}

			return fmt.Errorf("s.repo.SetActivityActive -> %w", err)
		}

		found.IsActive = active
		activity = found

		return nil
	})
	if err != nil {
		return domain.Activity{}, err
	}

	return activity, nil
}

func (s *CatalogService) AddRestaurant(ctx context.Context, caller domain.User, name string) (domain.Restaurant, error) {
	if err := s.gate.Authorize(caller); err != nil {
		return domain.Restaurant{}, err
	}

	created, err := s.repo.CreateRestaurant(ctx, domain.Restaurant{Name: name})
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("s.repo.CreateRestaurant -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) AddStore(ctx context.Context, caller domain.User, name string) (domain.Store, error) {
	if err := s.gate.Authorize(caller); err != nil {
		return domain.Store{}, err
	}

	created, err := s.repo.CreateStore(ctx, domain.Store{Name: name})
	if err != nil {
		return domain.Store{}, fmt.Errorf("s.repo.CreateStore -> %w", err)
	}

	return created, nil
}

// SetRestaurantMenu replaces the menu wholesale. Every id must resolve to a
// MEAL activity or the whole replacement is rejected.
func (s *CatalogService) SetRestaurantMenu(ctx context.Context, caller domain.User, restaurantID uint, activityIDs []uint) error {
	if err := s.gate.Authorize(caller); err != nil {
		return err
	}

	return s.repo.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.FindRestaurantByID(txCtx, restaurantID); err != nil {
			return fmt.Errorf("s.repo.FindRestaurantByID -> %w", err)
		}

		for _, activityID := range activityIDs {
			activity, err := s.repo.FindActivityByID(txCtx, activityID)
			if err != nil {
				return fmt.Errorf("s.repo.FindActivityByID -> %w", err)
			}
			if activity.Type != domain.ActivityTypeMeal {
				return ErrWrongActivityType
			}
		}

		if err := s.repo.ReplaceRestaurantMenu(txCtx, restaurantID, activityIDs); err != nil {
			return fmt.Errorf("s.repo.ReplaceRestaurantMenu -> %w", err)
		}

		return nil
	})
}

func (s *CatalogService) SetStoreProducts(ctx context.Context, caller domain.User, storeID uint, activityIDs []uint) error {
	if err := s.gate.Authorize(caller); err != nil {
		return err
	}

	return s.repo.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.FindStoreByID(txCtx, storeID); err != nil {
			return fmt.Errorf("s.repo.FindStoreByID -> %w", err)
		}

		for _, activityID := range activityIDs {
			activity, err := s.repo.FindActivityByID(txCtx, activityID)
			if err != nil {
				return fmt.Errorf("s.repo.FindActivityByID -> %w", err)
			}
			if activity.Type != domain.ActivityTypeProduct {
				return ErrWrongActivityType
			}
		}

		if err := s.repo.ReplaceStoreCatalog(txCtx, storeID, activityIDs); err != nil {
			return fmt.Errorf("s.repo.ReplaceStoreCatalog -> %w", err)
		}

		return nil
	})
}

func (s *CatalogService) GetTicket(ctx context.Context, id uint) (domain.Ticket, error) {
	ticket, err := s.repo.FindTicketByID(ctx, id)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.FindTicketByID -> %w", err)
	}

	return ticket, nil
}

func (s *CatalogService) GetTickets(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.repo.ListTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListTickets -> %w", err)
	}

	return tickets, nil
}

func (s *CatalogService) GetActivity(ctx context.Context, id uint) (domain.Activity, error) {
	activity, err := s.repo.FindActivityByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("s.repo.FindActivityByID -> %w", err)
	}

	return activity, nil
}

func (s *CatalogService) GetActivities(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.repo.ListActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListActivities -> %w", err)
	}

	return activities, nil
}

func (s *CatalogService) GetActiveActivities(ctx context.Context, activityType domain.ActivityType) ([]domain.Activity, error) {
	if !activityType.IsValid() {
		return nil, ErrInvalidActivityType
	}

	activities, err := s.repo.ListActiveActivities(ctx, activityType)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListActiveActivities -> %w", err)
	}

	return activities, nil
}

func (s *CatalogService) GetRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListRestaurants -> %w", err)
	}

	return restaurants, nil
}

func (s *CatalogService) GetRestaurantMenu(ctx context.Context, restaurantID uint) ([]domain.Activity, error) {
	if _, err := s.repo.FindRestaurantByID(ctx, restaurantID); err != nil {
		return nil, fmt.Errorf("s.repo.FindRestaurantByID -> %w", err)
	}

	menu, err := s.repo.ListRestaurantMenu(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListRestaurantMenu -> %w", err)
	}

	return menu, nil
}

func (s *CatalogService) GetStores(ctx context.Context) ([]domain.Store, error) {
	stores, err := s.repo.ListStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListStores -> %w", err)
	}

	return stores, nil
}

func (s *CatalogService) GetStoreProducts(ctx context.Context, storeID uint) ([]domain.Activity, error) {
	if _, err := s.repo.FindStoreByID(ctx, storeID); err != nil {
		return nil, fmt.Errorf("s.repo.FindStoreByID -> %w", err)
	}

	products, err := s.repo.ListStoreCatalog(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListStoreCatalog -> %w", err)
	}

	return products, nil
}
