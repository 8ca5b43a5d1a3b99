package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(CorsMiddleware(), RequestInit(), ResponseInit())
	e.GET("/", handlers...)
	return e
}

func TestResponseInitEnvelope(t *testing.T) {
	e := newEngine(func(c *gin.Context) {
		send := c.MustGet("send").(func(r *types.Response))
		send(&types.Response{Code: http.StatusBadRequest, Message: "bad", Errors: []string{"a", "b"}})
	})

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body types.ResponseAPI
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "bad", body.Message)
	assert.Equal(t, []string{"a", "b"}, body.Errors)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestResponseInitRawAndError(t *testing.T) {
	e := newEngine(func(c *gin.Context) {
		send := c.MustGet("send").(func(r *types.Response))
		if c.Query("raw") != "" {
			send(&types.Response{Code: http.StatusCreated, Data: []int{1, 2}, Raw: true})
			return
		}
		send(&types.Response{Code: http.StatusInternalServerError, Message: "boom", Error: errors.New("disk full")})
	})

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?raw=1", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `[1,2]`, w.Body.String())

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"boom","error":"disk full"}`, w.Body.String())
}

func TestRequestInitKeepsIncomingID(t *testing.T) {
	var seen string
	e := newEngine(func(c *gin.Context) {
		seen = RequestID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestAuthMiddleware(t *testing.T) {
	jwt.Setup("middleware-secret")
	user := types.UserWithAuth{ID: uuid.New(), Email: "staff@example.com", Role: "admin"}
	token, _, err := jwt.GenerateToken(user)
	require.NoError(t, err)

	ok := func(c *gin.Context) {
		u, found := AuthUser(c)
		c.JSON(http.StatusOK, gin.H{"found": found, "email": u.Email})
	}

	t.Run("required without token", func(t *testing.T) {
		w := httptest.NewRecorder()
		newEngine(AuthMiddleware(true), ok).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("optional without token", func(t *testing.T) {
		w := httptest.NewRecorder()
		newEngine(AuthMiddleware(false), ok).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"found":false,"email":""}`, w.Body.String())
	})

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		newEngine(AuthMiddleware(true), ok).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"found":true,"email":"staff@example.com"}`, w.Body.String())
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		newEngine(AuthMiddleware(false), ok).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCorsPreflight(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine(func(c *gin.Context) { c.Status(http.StatusOK) }).ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
