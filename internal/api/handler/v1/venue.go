package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/treasuretrails/park-api/internal/config"
	"github.com/treasuretrails/park-api/internal/domain"
)

type VenueHandler struct {
	conf *config.VenueConfig
}

func NewVenueHandler(conf *config.VenueConfig) *VenueHandler {
	return &VenueHandler{
		conf: conf,
	}
}

// HandleGetVenue godoc
// @Summary      Get the venue name and attraction zone count
// @Tags         venue
// @Produce      json
// @Success      200 {object} domain.VenueInfo
// @Router       /venue [get]
func (h *VenueHandler) HandleGetVenue(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, domain.VenueInfo{
		Name:            h.conf.Name,
		AttractionZones: h.conf.AttractionZones,
	})
}
