package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devconnect/api/internal/api/shared"
	"github.com/devconnect/api/internal/mocks"
	"github.com/devconnect/api/internal/service/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(userStore *mocks.MockUserStore, jwtService *mocks.MockJWTService) *AuthHandler {
	return NewAuthHandler(
		userStore,
		jwtService,
		&mocks.MockPasswordHasher{Hashed: "hashed-password"},
		&mocks.MockPasswordVerifier{ShouldSucceed: true},
		nil,
	)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"name":     "Jane Doe",
				"email":    "jane@example.com",
				"password": "password123",
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "name too short",
			payload: map[string]interface{}{
				"name":     "JD",
				"email":    "jane@example.com",
				"password": "password123",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"name":     "Jane Doe",
				"email":    "not-an-email",
				"password": "password123",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			payload: map[string]interface{}{
				"name":     "Jane Doe",
				"email":    "jane@example.com",
				"password": "short",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing everything",
			payload:    map[string]interface{}{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := newAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})

			req := newJSONRequest(t, "POST", "/api/user/register", tt.payload)
			recorder := httptest.NewRecorder()

			handler.Register(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var resp UserResponse
				decodeBody(t, recorder, &resp)
				assert.NotEqual(t, uuid.Nil, resp.ID)
				assert.Equal(t, "Jane Doe", resp.Name)
				assert.Equal(t, "jane@example.com", resp.Email)

				// The raw body must never carry the password in any form
				assert.NotContains(t, recorder.Body.String(), "password")
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	handler := newAuthHandler(userStore, &mocks.MockJWTService{})

	payload := map[string]interface{}{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "password123",
	}

	recorder := httptest.NewRecorder()
	handler.Register(recorder, newJSONRequest(t, "POST", "/api/user/register", payload))
	require.Equal(t, http.StatusOK, recorder.Code)

	// Same email again conflicts regardless of the other fields
	payload["name"] = "Someone Else"
	recorder = httptest.NewRecorder()
	handler.Register(recorder, newJSONRequest(t, "POST", "/api/user/register", payload))
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var resp shared.ErrorResponse
	decodeBody(t, recorder, &resp)
	assert.Equal(t, "A user with this email is already registered", resp.Error)
}

func TestRegisterValidationReportsAllViolations(t *testing.T) {
	t.Parallel()

	handler := newAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})

	payload := map[string]interface{}{
		"name":     "JD",
		"email":    "not-an-email",
		"password": "short",
	}

	recorder := httptest.NewRecorder()
	handler.Register(recorder, newJSONRequest(t, "POST", "/api/user/register", payload))

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp shared.FieldErrorResponse
	decodeBody(t, recorder, &resp)
	assert.Len(t, resp.Errors, 3)
	assert.Contains(t, resp.Errors, "name")
	assert.Contains(t, resp.Errors, "email")
	assert.Contains(t, resp.Errors, "password")
}

func TestLogin(t *testing.T) {
	t.Parallel()

	user := testUser(t, "Jane Doe", "jane@example.com")

	t.Run("successful login returns prefixed token", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.Users[user.Email] = user
		jwtService := &mocks.MockJWTService{Token: "signed-token"}

		handler := newAuthHandler(userStore, jwtService)

		payload := map[string]interface{}{
			"email":    "jane@example.com",
			"password": "password123",
		}
		recorder := httptest.NewRecorder()
		handler.Login(recorder, newJSONRequest(t, "POST", "/api/user/login", payload))

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp TokenResponse
		decodeBody(t, recorder, &resp)
		assert.Equal(t, "Bearer signed-token", resp.Token)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})

		payload := map[string]interface{}{
			"email":    "nobody@example.com",
			"password": "password123",
		}
		recorder := httptest.NewRecorder()
		handler.Login(recorder, newJSONRequest(t, "POST", "/api/user/login", payload))

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var resp shared.ErrorResponse
		decodeBody(t, recorder, &resp)
		assert.Equal(t, "No user registered with this email", resp.Error)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.Users[user.Email] = user

		handler := NewAuthHandler(
			userStore,
			&mocks.MockJWTService{},
			&mocks.MockPasswordHasher{},
			&mocks.MockPasswordVerifier{ShouldSucceed: false},
			nil,
		)

		payload := map[string]interface{}{
			"email":    "jane@example.com",
			"password": "wrong-password",
		}
		recorder := httptest.NewRecorder()
		handler.Login(recorder, newJSONRequest(t, "POST", "/api/user/login", payload))

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var resp shared.ErrorResponse
		decodeBody(t, recorder, &resp)
		assert.Equal(t, "Password incorrect", resp.Error)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()

		handler := newAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})

		recorder := httptest.NewRecorder()
		handler.Login(recorder, newJSONRequest(t, "POST", "/api/user/login", map[string]interface{}{}))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("token generation failure", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		userStore.Users[user.Email] = user
		jwtService := &mocks.MockJWTService{
			GenerateTokenFn: func(ctx context.Context, userID uuid.UUID, name string) (string, error) {
				return "", auth.ErrInvalidToken
			},
		}

		handler := newAuthHandler(userStore, jwtService)

		payload := map[string]interface{}{
			"email":    "jane@example.com",
			"password": "password123",
		}
		recorder := httptest.NewRecorder()
		handler.Login(recorder, newJSONRequest(t, "POST", "/api/user/login", payload))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestCurrentUser(t *testing.T) {
	t.Parallel()

	handler := newAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{})
	user := testUser(t, "Jane Doe", "jane@example.com")

	t.Run("returns authenticated user", func(t *testing.T) {
		t.Parallel()

		req := asUser(newJSONRequest(t, "GET", "/api/user/users", nil), user)
		recorder := httptest.NewRecorder()
		handler.CurrentUser(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp UserResponse
		decodeBody(t, recorder, &resp)
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, user.Name, resp.Name)
		assert.Equal(t, user.Email, resp.Email)
	})

	t.Run("missing context user", func(t *testing.T) {
		t.Parallel()

		recorder := httptest.NewRecorder()
		handler.CurrentUser(recorder, newJSONRequest(t, "GET", "/api/user/users", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
