package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/treasuretrails/park-api/internal/config"
)

func TestVenueHandler_HandleGetVenue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewVenueHandler(&config.VenueConfig{
		Name:            "TreasureTrailsPark",
		AttractionZones: 3,
	})

	router := gin.New()
	router.GET("/venue", handler.HandleGetVenue)

	req := httptest.NewRequest(http.MethodGet, "/venue", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"name": "TreasureTrailsPark", "attraction_zones": 3}`, resp.Body.String())
}

func TestHandleHealthcheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/", HandleHealthcheck)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, ".", resp.Body.String())
}
