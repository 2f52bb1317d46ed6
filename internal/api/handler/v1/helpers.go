package v1

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/treasuretrails/park-api/internal/api/handler/v1/response"
	"github.com/treasuretrails/park-api/internal/domain"
)

func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	val, exists := ctx.Get("userID")
	if !exists {
		return domain.User{}, response.ErrUnauthorized("missing caller identity")
	}

	userID, ok := val.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized("invalid caller identity")
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("getUserFromContext -> uSvc.GetUser -> %w", err))
	}

	return user, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %v: %w", name, err))
	}

	return uint(id), nil
}
