package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/treasuretrails/park-api/internal/api/handler/v1/request"
	"github.com/treasuretrails/park-api/internal/api/handler/v1/response"
	"github.com/treasuretrails/park-api/internal/domain"
	"github.com/treasuretrails/park-api/internal/service"
)

type RedemptionService interface {
	CompleteChallenge(ctx context.Context, userID, activityID uint) (domain.HolderAccount, error)
	EnterAttraction(ctx context.Context, userID, activityID uint) (domain.HolderAccount, error)
	ExitAttraction(ctx context.Context, userID, activityID uint) (domain.HolderAccount, error)
	BuyMeals(ctx context.Context, userID, restaurantID uint, activityIDs []uint) (service.PurchaseReceipt, error)
	BuyProducts(ctx context.Context, userID, storeID uint, activityIDs []uint) (service.PurchaseReceipt, error)
	GetEntranceCount(ctx context.Context, userID, activityID uint) (int, error)
	GetExitCount(ctx context.Context, userID, activityID uint) (int, error)
}

type RedemptionHandler struct {
	svc  RedemptionService
	uSvc UserService
}

func NewRedemptionHandler(svc RedemptionService, uSvc UserService) *RedemptionHandler {
	return &RedemptionHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// renderRedemptionErr maps the error set shared by the redemption
// operations; handler-specific errors are matched before calling it.
func renderRedemptionErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		response.RenderErr(ctx, response.ErrNotFound("activity", "ID", ctx.Param("activityID")))
	case errors.Is(err, service.ErrHolderNotFound):
		response.RenderErr(ctx, response.ErrNotFound("holder account", "user", "caller"))
	case errors.Is(err, service.ErrWrongActivityType):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrWrongActivityType))
	case errors.Is(err, service.ErrActivityNotActive):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrActivityNotActive))
	case errors.Is(err, service.ErrInsufficientCredits):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInsufficientCredits))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%v -> %w", op, err)))
	}
}

// HandleCompleteChallenge godoc
// @Summary      Complete a challenge and collect its reward
// @Tags         redemption
// @Produce      json
// @Param        activityID   path      int  true "activity ID"
// @Success      200      {object}   response.CreditsResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /challenges/{activityID}/complete [post]
func (h *RedemptionHandler) HandleCompleteChallenge(ctx *gin.Context) {
	activityID, respErr := parseIDParam(ctx, "activityID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	caller, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	account, err := h.svc.CompleteChallenge(ctx.Request.Context(), caller.ID, activityID)
	if err != nil {
		if errors.Is(err, service.ErrChallengeAlreadyCompleted) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrChallengeAlreadyCompleted))

			return
		}

		renderRedemptionErr(ctx, "v1.HandleCompleteChallenge -> h.svc.CompleteChallenge", err)

		return
	}

	ctx.JSON(http.StatusOK, response.CreditsResponse{Credits: account.Credits})
}

// HandleEnterAttraction godoc
// @Summary      Enter an attraction, paying its credit discount
// @Tags         redemption
// @Produce      json
// @Param        activityID   path      int  true "activity ID"
// @Success      200      {object}   response.CreditsResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /attractions/{activityID}/entrance [post]
func (h *RedemptionHandler) HandleEnterAttraction(ctx *gin.Context) {
	activityID, respErr := parseIDParam(ctx, "activityID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	caller, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	account, err := h.svc.EnterAttraction(ctx.Request.Context(), caller.ID, activityID)
	if err != nil {
		renderRedemptionErr(ctx, "v1.HandleEnterAttraction -> h.svc.EnterAttraction", err)

		return
	}

	ctx.JSON(http.StatusOK, response.CreditsResponse{Credits: account.Credits})
}

// HandleExitAttraction godoc
// @Summary      Exit an attraction, collecting its credit reward
// @Tags         redemption
// @Produce      json
// @Param        activityID   path      int  true "activity ID"
// @Success      200      {object}   response.CreditsResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /attractions/{activityID}/exit [post]
func (h *RedemptionHandler) HandleExitAttraction(ctx *gin.Context) {
	activityID, respErr := parseIDParam(ctx, "activityID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	caller, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	account, err := h.svc.ExitAttraction(ctx.Request.Context(), caller.ID, activityID)
	if err != nil {
		renderRedemptionErr(ctx, "v1.HandleExitAttraction -> h.svc.ExitAttraction", err)

		return
	}

	ctx.JSON(http.StatusOK, response.CreditsResponse{Credits: account.Credits})
}

// HandleBuyMeals godoc
// @Summary      Buy a batch of meals at a restaurant with credits
// @Tags         redemption
// @Produce      json
// @Param        restaurantID   path      int  true "restaurant ID"
// @Param        request   body      request.BatchPurchaseRequest true "request body"
// @Success      200      {object}   service.PurchaseReceipt
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /restaurants/{restaurantID}/meals/purchase [post]
func (h *RedemptionHandler) HandleBuyMeals(ctx *gin.Context) {
	restaurantID, respErr := parseIDParam(ctx, "restaurantID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.BatchPurchaseRequest
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

	receipt, err := h.svc.BuyMeals(ctx.Request.Context(), caller.ID, restaurantID, req.ActivityIDs)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("restaurant", "ID", restaurantID))

			return
		}

		renderRedemptionErr(ctx, "v1.HandleBuyMeals -> h.svc.BuyMeals", err)

		return
	}

	ctx.JSON(http.StatusOK, receipt)
}

// HandleBuyProducts godoc
// @Summary      Buy a batch of products at a store with credits
// @Tags         redemption
// @Produce      json
// @Param        storeID   path      int  true "store ID"
// @Param        request   body      request.BatchPurchaseRequest true "request body"
// @Success      200      {object}   service.PurchaseReceipt
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /stores/{storeID}/products/purchase [post]
func (h *RedemptionHandler) HandleBuyProducts(ctx *gin.Context) {
	storeID, respErr := parseIDParam(ctx, "storeID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.BatchPurchaseRequest
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

	receipt, err := h.svc.BuyProducts(ctx.Request.Context(), caller.ID, storeID, req.ActivityIDs)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("store", "ID", storeID))

			return
		}

		renderRedemptionErr(ctx, "v1.HandleBuyProducts -> h.svc.BuyProducts", err)

		return
	}

	ctx.JSON(http.StatusOK, receipt)
}

// HandleGetEntranceCount godoc
// @Summary      Count the calling user's entrances into an attraction
// @Tags         redemption
// @Produce      json
// @Param        activityID   path      int  true "activity ID"
// @Success      200      {object}   response.CounterResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /me/attractions/{activityID}/entrances [get]
func (h *RedemptionHandler) HandleGetEntranceCount(ctx *gin.Context) {
	activityID, respErr := parseIDParam(ctx, "activityID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	caller, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	count, err := h.svc.GetEntranceCount(ctx.Request.Context(), caller.ID, activityID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetEntranceCount -> h.svc.GetEntranceCount -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.CounterResponse{ActivityID: activityID, Count: count})
}

// HandleGetExitCount godoc
// @Summary      Count the calling user's exits from an attraction
// @Tags         redemption
// @Produce      json
// @Param        activityID   path      int  true "activity ID"
// @Success      200      {object}   response.CounterResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /me/attractions/{activityID}/exits [get]
func (h *RedemptionHandler) HandleGetExitCount(ctx *gin.Context) {
	activityID, respErr := parseIDParam(ctx, "activityID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	caller, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	count, err := h.svc.GetExitCount(ctx.Request.Context(), caller.ID, activityID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetExitCount -> h.svc.GetExitCount -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.CounterResponse{ActivityID: activityID, Count: count})
}
