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

type LedgerService interface {
	BuyTicket(ctx context.Context, userID, ticketID uint, payment int64) (domain.HolderAccount, error)
	GetCredits(ctx context.Context, userID uint) (int, error)
	GetMyTickets(ctx context.Context, userID uint) ([]domain.Ticket, error)
	GetLedgerEntries(ctx context.Context, userID uint) ([]domain.LedgerEntry, error)
}

type LedgerHandler struct {
	svc  LedgerService
	uSvc UserService
}

func NewLedgerHandler(svc LedgerService, uSvc UserService) *LedgerHandler {
	return &LedgerHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandlePurchaseTicket godoc
// @Summary      Buy a ticket for the calling user
// @Tags         ledger
// @Produce      json
// @Param        ticketID   path      int  true "ticket ID"
// @Param        request   body      request.PurchaseTicketRequest true "request body"
// @Success      201      {object}   response.PurchaseTicketResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /catalog/tickets/{ticketID}/purchase [post]
func (h *LedgerHandler) HandlePurchaseTicket(ctx *gin.Context) {
	ticketID, respErr := parseIDParam(ctx, "ticketID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.PurchaseTicketRequest
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

	account, err := h.svc.BuyTicket(ctx.Request.Context(), caller.ID, ticketID, req.Payment)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("ticket", "ID", ticketID))

			return
		}
		if errors.Is(err, service.ErrTicketAlreadyPurchased) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrTicketAlreadyPurchased))

			return
		}
		if errors.Is(err, service.ErrInsufficientPayment) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInsufficientPayment))

			return
		}

		err = fmt.Errorf("v1.HandlePurchaseTicket -> h.svc.BuyTicket -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.PurchaseTicketResponse{
		TicketID: *account.TicketID,
		Credits:  account.Credits,
	})
}

// HandleGetMyTickets godoc
// @Summary      List the tickets held by the calling user
// @Tags         ledger
// @Produce      json
// @Success      200 {object} []domain.Ticket
// @Failure      500 {object} response.Err
// @Router       /me/tickets [get]
func (h *LedgerHandler) HandleGetMyTickets(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	tickets, err := h.svc.GetMyTickets(ctx.Request.Context(), caller.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMyTickets -> h.svc.GetMyTickets -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, tickets)
}

// HandleGetMyCredits godoc
// @Summary      Get the calling user's credit balance
// @Tags         ledger
// @Produce      json
// @Success      200 {object} response.CreditsResponse
// @Failure      500 {object} response.Err
// @Router       /me/credits [get]
func (h *LedgerHandler) HandleGetMyCredits(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	credits, err := h.svc.GetCredits(ctx.Request.Context(), caller.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMyCredits -> h.svc.GetCredits -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.CreditsResponse{Credits: credits})
}

// HandleGetMyLedger godoc
// @Summary      List the calling user's credit ledger entries
// @Tags         ledger
// @Produce      json
// @Success      200 {object} []domain.LedgerEntry
// @Failure      500 {object} response.Err
// @Router       /me/ledger [get]
func (h *LedgerHandler) HandleGetMyLedger(ctx *gin.Context) {
	caller, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	entries, err := h.svc.GetLedgerEntries(ctx.Request.Context(), caller.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMyLedger -> h.svc.GetLedgerEntries -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, entries)
}
