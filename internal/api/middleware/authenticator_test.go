package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treasuretrails/park-api/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", NewAuthenticator(testSigningKey).VerifyJWT(), func(ctx *gin.Context) {
		userID, _ := ctx.Get("userID")
		ctx.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	return router
}

func TestAuthenticator_VerifyJWT(t *testing.T) {
	router := newTestRouter()

	t.Run("valid token passes and exposes the user ID", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 7, "test-agent")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("User-Agent", "test-agent")

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"user_id": 7}`, resp.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "token-without-scheme")

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte("other-key"), 7, "test-agent")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("User-Agent", "test-agent")

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("token replayed from a different user agent", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 7, "test-agent")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("User-Agent", "another-agent")

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}
