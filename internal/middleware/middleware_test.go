package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/gin-recipes-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// stubVerifier accepts exactly one token
type stubVerifier struct{}

func (stubVerifier) Verify(token string) (models.Identity, error) {
	switch token {
	case "":
		return models.Identity{}, models.MissingToken
	case "good":
		return models.Identity{UserID: "u1", Email: "chef@cookmaster.com", Role: models.RoleUser}, nil
	default:
		return models.Identity{}, models.MalformedToken
	}
}

func setupRouter(hideInternal bool, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(quietLogger()), ErrorHandler(quietLogger(), hideInternal))
	router.GET("/open", handler)
	router.GET("/protected", JWTAuth(stubVerifier{}), handler)
	return router
}

func perform(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["message"]
}

func TestErrorHandlerMapsCodes(t *testing.T) {
	testCases := []struct {
		err    models.APIError
		status int
	}{
		{models.InvalidEntries, http.StatusBadRequest},
		{models.InvalidFields, http.StatusUnauthorized},
		{models.EmailExists, http.StatusConflict},
		{models.IncorrectLogin, http.StatusUnauthorized},
		{models.MissingToken, http.StatusUnauthorized},
		{models.MalformedToken, http.StatusUnauthorized},
		{models.RecipeNotFound, http.StatusNotFound},
		{models.Unauthorized, http.StatusUnauthorized},
		{models.NotAdmin, http.StatusForbidden},
		{models.InvalidImage, http.StatusUnsupportedMediaType},
		{models.ImageNotFound, http.StatusNotFound},
	}

	for _, tt := range testCases {
		t.Run(tt.err.Code, func(t *testing.T) {
			router := setupRouter(false, func(c *gin.Context) { c.Error(tt.err) })

			w := perform(router, "/open", "")

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.err.Message, decodeMessage(t, w))
		})
	}
}

func TestErrorHandlerUnknownErrors(t *testing.T) {
	failing := func(c *gin.Context) { c.Error(errors.New("connection reset by peer")) }

	w := perform(setupRouter(false, failing), "/open", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "connection reset by peer", decodeMessage(t, w))

	w = perform(setupRouter(true, failing), "/open", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeMessage(t, w))

	unmapped := func(c *gin.Context) { c.Error(models.NewAPIError("somethingElse", "nope")) }
	w = perform(setupRouter(false, unmapped), "/open", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestErrorHandlerLeavesWrittenResponses(t *testing.T) {
	router := setupRouter(false, func(c *gin.Context) {
		c.JSON(http.StatusAccepted, gin.H{"ok": true})
		c.Error(models.InvalidEntries)
	})

	w := perform(router, "/open", "")
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestJWTAuth(t *testing.T) {
	var seen struct {
		identity models.Identity
		ok       bool
	}
	router := setupRouter(false, func(c *gin.Context) {
		seen.identity, seen.ok = CurrentIdentity(c)
		c.Status(http.StatusOK)
	})

	t.Run("missing token", func(t *testing.T) {
		w := perform(router, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "missing auth token", decodeMessage(t, w))
	})

	t.Run("malformed token", func(t *testing.T) {
		w := perform(router, "/protected", "bad")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "jwt malformed", decodeMessage(t, w))
	})

	t.Run("valid token", func(t *testing.T) {
		w := perform(router, "/protected", "good")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, seen.ok)
		assert.Equal(t, "u1", seen.identity.UserID)
		assert.Equal(t, models.RoleUser, seen.identity.Role)
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	})

	t.Run("open route has no identity", func(t *testing.T) {
		perform(router, "/open", "good")
		assert.False(t, seen.ok)
	})
}

func TestMustIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := MustIdentity(c)
	assert.ErrorIs(t, err, models.MissingToken)

	c.Set(ContextUserID, "u1")
	c.Set(ContextUserRole, models.RoleAdmin)
	identity, err := MustIdentity(c)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, identity.Role)
}

func TestRequestLoggerKeepsIncomingID(t *testing.T) {
	router := setupRouter(false, func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}
