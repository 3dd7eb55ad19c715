package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/degenerous-dao/potentials-staking/internal/logger"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)
	code := m.Run()
	os.Exit(code)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return router
}

func TestRequestID(t *testing.T) {
	router := newRouter(RequestID())

	t.Run("assigns a new id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.Equal(t, http.StatusOK, w.Code)
		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps a valid caller id", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, id)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, id, w.Header().Get(RequestIDHeader))
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("replaces a malformed caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "<script>")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
	})
}

func TestRecovery(t *testing.T) {
	router := newRouter(RequestID(), Recovery(), Logger())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"code":"internal_error","message":"Internal server error"}}`, w.Body.String())
}

func TestSetupCORS(t *testing.T) {
	tests := []struct {
		name     string
		origins  []string
		origin   string
		expected string
	}{
		{name: "wildcard", origins: []string{"*"}, origin: "https://any.example.org", expected: "*"},
		{name: "empty list", origins: nil, origin: "https://any.example.org", expected: "*"},
		{name: "listed origin", origins: []string{"https://potentials.example.org"}, origin: "https://potentials.example.org", expected: "https://potentials.example.org"},
		{name: "unlisted origin", origins: []string{"https://potentials.example.org"}, origin: "https://evil.example.org", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(SetupCORS(tt.origins))

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
