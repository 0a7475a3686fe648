package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devconnect/api/internal/config"
	"github.com/devconnect/api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 3001, LogLevel: "error"},
		},
		logger:           slog.Default(),
		userStore:        mocks.NewMockUserStore(),
		profileStore:     mocks.NewMockProfileStore(),
		postStore:        mocks.NewMockPostStore(),
		jwtService:       &mocks.MockJWTService{},
		passwordHasher:   &mocks.MockPasswordHasher{Hashed: "hashed"},
		passwordVerifier: &mocks.MockPasswordVerifier{ShouldSucceed: true},
	}
}

func TestRouterHealthEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/health", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}

func TestRouterProtectedRoutesRequireAuth(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	protected := []struct {
		method string
		path   string
	}{
		{"GET", "/api/user/users"},
		{"POST", "/api/post/"},
		{"DELETE", "/api/post/11111111-1111-1111-1111-111111111111"},
		{"POST", "/api/post/like/11111111-1111-1111-1111-111111111111"},
		{"GET", "/api/profile/"},
		{"POST", "/api/profile/"},
		{"DELETE", "/api/profile/"},
		{"POST", "/api/profile/experience"},
	}

	for _, route := range protected {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(route.method, route.path, nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code,
			"%s %s should require authentication", route.method, route.path)
	}
}

func TestRouterPublicRoutes(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	// Public lookups answer without credentials; empty stores report 404
	public := []string{
		"/api/profile/all",
		"/api/profile/handle/janedoe",
		"/api/post/",
		"/api/post/11111111-1111-1111-1111-111111111111",
	}

	for _, path := range public {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("GET", path, nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code, "GET %s", path)
	}
}

func TestRouterCORSHeaders(t *testing.T) {
	t.Parallel()

	router := newTestApplication(t).setupRouter()

	req := httptest.NewRequest("OPTIONS", "/api/user/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
