package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/treasuretrails/park-api/internal/api/handler/v1/request"
	"github.com/treasuretrails/park-api/internal/api/handler/v1/response"
	"github.com/treasuretrails/park-api/internal/domain"
	"github.com/treasuretrails/park-api/internal/service"
)

type CatalogService interface {
	AddTicket(ctx context.Context, caller domain.User, in service.CreateTicketInput) (domain.Ticket, error)
	AddActivity(ctx context.Context, caller domain.User, in service.CreateActivityInput) (domain.Activity, error)
	ToggleActivity(ctx context.Context, caller domain.User, activityID uint, active bool) (domain.Activity, error)
	AddRestaurant(ctx context.Context, caller domain.User, name string) (domain.Restaurant, error)
	AddStore(ctx context.Context, caller domain.User, name string) (domain.Store, error)
	SetRestaurantMenu(ctx context.Context, caller domain.User, restaurantID uint, activityIDs []uint) error
	SetStoreProducts(ctx context.Context, caller domain.User, storeID uint, activityIDs []uint) error
	GetTicket(ctx context.Context, id uint) (domain.Ticket, error)
	GetTickets(ctx context.Context) ([]domain.Ticket, error)
	GetActivity(ctx context.Context, id uint) (domain.Activity, error)
	GetActivities(ctx context.Context) ([]domain.Activity, error)
	GetActiveActivities(ctx context.Context, activityType domain.ActivityType) ([]domain.Activity, error)
	GetRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurantMenu(ctx context.Context, restaurantID uint) ([]domain.Activity, error)
	GetStores(ctx context.Context) ([]domain.Store, error)
	GetStoreProducts(ctx context.Context, storeID uint) ([]domain.Activity, error)
}

type CatalogHandler struct {
	svc  CatalogService
	uSvc UserService
}

func NewCatalogHandler(svc CatalogService, uSvc UserService) *CatalogHandler {
	return &CatalogHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateTicket godoc
// @Summary      Create a ticket type (venue owner only)
// @Tags         catalog
// @Produce      json
// @Param        request   body      request.CreateTicketRequest true "request body"
// @Success      201      {object}   domain.Ticket
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /catalog/tickets [post]
func (h *CatalogHandler) HandleCreateTicket(ctx *gin.Context) {
	var req request.CreateTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	ticket, err := h.svc.AddTicket(ctx.Request.Context(), caller, service.CreateTicketInput{
		Name:           req.Name,
		Price:          req.Price,
		DurationDays:   req.DurationDays,
		InitialCredits: req.InitialCredits,
	})
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrUnauthorized))

			return
		}

		err = fmt.Errorf("v1.HandleCreateTicket -> h.svc.AddTicket -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, ticket)
}

// HandleCreateActivity godoc
// @Summary      Create an activity (venue owner only)
// @Tags         catalog
// @Produce      json
// @Param        request   body      request.CreateActivityRequest true "request body"
// @Success      201      {object}   domain.Activity
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /catalog/activities [post]
func (h *CatalogHandler) HandleCreateActivity(ctx *gin.Context) {
	var req request.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	activity, err := h.svc.AddActivity(ctx.Request.Context(), caller, service.CreateActivityInput{
		Name:            req.Name,
		Description:     req.Description,
		EarnCredits:     req.EarnCredits,
		DiscountCredits: req.DiscountCredits,
		AvailableUntil:  time.UnixMilli(req.AvailableUntil),
		Type:            domain.ActivityType(req.Type),
	})
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrUnauthorized))

			return
		}
		if errors.Is(err, service.ErrInvalidActivityType) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidActivityType))

			return
		}

		err = fmt.Errorf("v1.HandleCreateActivity -> h.svc.AddActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, activity)
}

// HandleToggleActivity godoc
// @Summary      Activate or deactivate an activity (venue owner only)
// @Tags         catalog
// @Produce      json
// @Param        activityID   path      int  true "activity ID"
// @Param        request   body      request.ToggleActivityRequest true "request body"
// @Success      200      {object}   domain.Activity
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /catalog/activities/{activityID}/active [put]
func (h *CatalogHandler) HandleToggleActivity(ctx *gin.Context) {
	activityID, respErr := parseIDParam(ctx, "activityID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.ToggleActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	activity, err := h.svc.ToggleActivity(ctx.Request.Context(), caller, activityID, *req.Active)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrUnauthorized))

			return
		}
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", activityID))

			return
		}
		if errors.Is(err, service.ErrDuplicateActiveName) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrDuplicateActiveName))

			return
		}

		err = fmt.Errorf("v1.HandleToggleActivity -> h.svc.ToggleActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleCreateRestaurant godoc
// @Summary      Create a restaurant (venue owner only)
// @Tags         catalog
// @Produce      json
// @Param        request   body      request.CreateVenueSpotRequest true "request body"
// @Success      201      {object}   domain.Restaurant
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /catalog/restaurants [post]
func (h *CatalogHandler) HandleCreateRestaurant(ctx *gin.Context) {
	var req request.CreateVenueSpotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	restaurant, err := h.svc.AddRestaurant(ctx.Request.Context(), caller, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrUnauthorized))

			return
		}

		err = fmt.Errorf("v1.HandleCreateRestaurant -> h.svc.AddRestaurant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, restaurant)
}

// HandleCreateStore godoc
// @Summary      Create a store (venue owner only)
// @Tags         catalog
// @Produce      json
// @Param        request   body      request.CreateVenueSpotRequest true "request body"
// @Success      201      {object}   domain.Store
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /catalog/stores [post]
func (h *CatalogHandler) HandleCreateStore(ctx *gin.Context) {
	var req request.CreateVenueSpotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	store, err := h.svc.AddStore(ctx.Request.Context(), caller, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrUnauthorized))

			return
		}

		err = fmt.Errorf("v1.HandleCreateStore -> h.svc.AddStore -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, store)
}

// HandleSetRestaurantMenu godoc
// @Summary      Replace a restaurant's menu (venue owner only)
// @Tags         catalog
// @Produce      json
// @Param        restaurantID   path      int  true "restaurant ID"
// @Param        request   body      request.SetActivityIDsRequest true "request body"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /catalog/restaurants/{restaurantID}/menu [put]
func (h *CatalogHandler) HandleSetRestaurantMenu(ctx *gin.Context) {
	restaurantID, respErr := parseIDParam(ctx, "restaurantID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.SetActivityIDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	err := h.svc.SetRestaurantMenu(ctx.Request.Context(), caller, restaurantID, req.ActivityIDs)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrUnauthorized))

			return
		}
		if errors.Is(err, service.ErrRestaurantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("restaurant", "ID", restaurantID))

			return
		}
		if errors.Is(err, service.ErrActivityNotFound) || errors.Is(err, service.ErrWrongActivityType) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleSetRestaurantMenu -> h.svc.SetRestaurantMenu -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleSetStoreProducts godoc
// @Summary      Replace a store's product catalog (venue owner only)
// @Tags         catalog
// @Produce      json
// @Param        storeID   path      int  true "store ID"
// @Param        request   body      request.SetActivityIDsRequest true "request body"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /catalog/stores/{storeID}/products [put]
func (h *CatalogHandler) HandleSetStoreProducts(ctx *gin.Context) {
	storeID, respErr := parseIDParam(ctx, "storeID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.SetActivityIDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	err := h.svc.SetStoreProducts(ctx.Request.Context(), caller, storeID, req.ActivityIDs)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrUnauthorized))

			return
		}
		if errors.Is(err, service.ErrStoreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("store", "ID", storeID))

			return
		}
		if errors.Is(err, service.ErrActivityNotFound) || errors.Is(err, service.ErrWrongActivityType) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleSetStoreProducts -> h.svc.SetStoreProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetTickets godoc
// @Summary      List all ticket types
// @Tags         catalog
// @Produce      json
// @Success      200 {object} []domain.Ticket
// @Failure      500 {object} response.Err
// @Router       /catalog/tickets [get]
func (h *CatalogHandler) HandleGetTickets(ctx *gin.Context) {
	tickets, err := h.svc.GetTickets(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetTickets -> h.svc.GetTickets -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, tickets)
}

// HandleGetTicket godoc
// @Summary      Get a ticket type by ID
// @Tags         catalog
// @Produce      json
// @Param        ticketID   path      int  true "ticket ID"
// @Success      200 {object} domain.Ticket
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /catalog/tickets/{ticketID} [get]
func (h *CatalogHandler) HandleGetTicket(ctx *gin.Context) {
	ticketID, respErr := parseIDParam(ctx, "ticketID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	ticket, err := h.svc.GetTicket(ctx.Request.Context(), ticketID)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("ticket", "ID", ticketID))

			return
		}

		err = fmt.Errorf("v1.HandleGetTicket -> h.svc.GetTicket -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, ticket)
}

// HandleGetActivities godoc
// @Summary      List all activities
// @Tags         catalog
// @Produce      json
// @Success      200 {object} []domain.Activity
// @Failure      500 {object} response.Err
// @Router       /catalog/activities [get]
func (h *CatalogHandler) HandleGetActivities(ctx *gin.Context) {
	activities, err := h.svc.GetActivities(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetActivities -> h.svc.GetActivities -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// HandleGetActivity godoc
// @Summary      Get an activity by ID
// @Tags         catalog
// @Produce      json
// @Param        activityID   path      int  true "activity ID"
// @Success      200 {object} domain.Activity
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /catalog/activities/{activityID} [get]
func (h *CatalogHandler) HandleGetActivity(ctx *gin.Context) {
	activityID, respErr := parseIDParam(ctx, "activityID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	activity, err := h.svc.GetActivity(ctx.Request.Context(), activityID)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", activityID))

			return
		}

		err = fmt.Errorf("v1.HandleGetActivity -> h.svc.GetActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleGetActiveActivities godoc
// @Summary      List active activities of a given type, oldest first
// @Tags         catalog
// @Produce      json
// @Param        type   query      string  true "activity type (CHALLENGE, ATTRACTION, MEAL or PRODUCT)"
// @Success      200 {object} []domain.Activity
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /catalog/activities/active [get]
func (h *CatalogHandler) HandleGetActiveActivities(ctx *gin.Context) {
	activityType := domain.ActivityType(ctx.Query("type"))

	activities, err := h.svc.GetActiveActivities(ctx.Request.Context(), activityType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidActivityType) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidActivityType))

			return
		}

		err = fmt.Errorf("v1.HandleGetActiveActivities -> h.svc.GetActiveActivities -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// HandleGetRestaurants godoc
// @Summary      List all restaurants
// @Tags         catalog
// @Produce      json
// @Success      200 {object} []domain.Restaurant
// @Failure      500 {object} response.Err
// @Router       /catalog/restaurants [get]
func (h *CatalogHandler) HandleGetRestaurants(ctx *gin.Context) {
	restaurants, err := h.svc.GetRestaurants(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetRestaurants -> h.svc.GetRestaurants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, restaurants)
}

// HandleGetRestaurantMenu godoc
// @Summary      Get a restaurant's menu
// @Tags         catalog
// @Produce      json
// @Param        restaurantID   path      int  true "restaurant ID"
// @Success      200 {object} []domain.Activity
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /catalog/restaurants/{restaurantID}/menu [get]
func (h *CatalogHandler) HandleGetRestaurantMenu(ctx *gin.Context) {
	restaurantID, respErr := parseIDParam(ctx, "restaurantID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	menu, err := h.svc.GetRestaurantMenu(ctx.Request.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("restaurant", "ID", restaurantID))

			return
		}

		err = fmt.Errorf("v1.HandleGetRestaurantMenu -> h.svc.GetRestaurantMenu -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, menu)
}

// HandleGetRestaurantMenuIDs godoc
// @Summary      Get the activity IDs on a restaurant's menu
// @Tags         catalog
// @Produce      json
// @Param        restaurantID   path      int  true "restaurant ID"
// @Success      200 {object} response.ActivityIDsResponse
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /catalog/restaurants/{restaurantID}/menu/ids [get]
func (h *CatalogHandler) HandleGetRestaurantMenuIDs(ctx *gin.Context) {
	restaurantID, respErr := parseIDParam(ctx, "restaurantID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	menu, err := h.svc.GetRestaurantMenu(ctx.Request.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("restaurant", "ID", restaurantID))

			return
		}

		err = fmt.Errorf("v1.HandleGetRestaurantMenuIDs -> h.svc.GetRestaurantMenu -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewActivityIDs(menu))
}

// HandleGetStores godoc
// @Summary      List all stores
// @Tags         catalog
// @Produce      json
// @Success      200 {object} []domain.Store
// @Failure      500 {object} response.Err
// @Router       /catalog/stores [get]
func (h *CatalogHandler) HandleGetStores(ctx *gin.Context) {
	stores, err := h.svc.GetStores(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStores -> h.svc.GetStores -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stores)
}

// HandleGetStoreProducts godoc
// @Summary      Get a store's product catalog
// @Tags         catalog
// @Produce      json
// @Param        storeID   path      int  true "store ID"
// @Success      200 {object} []domain.Activity
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /catalog/stores/{storeID}/products [get]
func (h *CatalogHandler) HandleGetStoreProducts(ctx *gin.Context) {
	storeID, respErr := parseIDParam(ctx, "storeID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	products, err := h.svc.GetStoreProducts(ctx.Request.Context(), storeID)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("store", "ID", storeID))

			return
		}

		err = fmt.Errorf("v1.HandleGetStoreProducts -> h.svc.GetStoreProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, products)
}

// HandleGetStoreProductIDs godoc
// @Summary      Get the activity IDs in a store's catalog
// @Tags         catalog
// @Produce      json
// @Param        storeID   path      int  true "store ID"
// @Success      200 {object} response.ActivityIDsResponse
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /catalog/stores/{storeID}/products/ids [get]
func (h *CatalogHandler) HandleGetStoreProductIDs(ctx *gin.Context) {
	storeID, respErr := parseIDParam(ctx, "storeID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	products, err := h.svc.GetStoreProducts(ctx.Request.Context(), storeID)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("store", "ID", storeID))

			return
		}

		err = fmt.Errorf("v1.HandleGetStoreProductIDs -> h.svc.GetStoreProducts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewActivityIDs(products))
}
