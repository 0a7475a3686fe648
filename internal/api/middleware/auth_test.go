package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devconnect/api/internal/api/shared"
	"github.com/devconnect/api/internal/domain"
	"github.com/devconnect/api/internal/mocks"
	"github.com/devconnect/api/internal/service/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("Jane Doe", "jane@example.com", "hashed")
	require.NoError(t, err)

	validClaims := &auth.Claims{UserID: user.ID, Name: user.Name}

	tests := []struct {
		name        string
		authHeader  string
		claims      *auth.Claims
		validateErr error
		storedUser  *domain.User
		wantStatus  int
		wantNext    bool
	}{
		{
			name:       "valid token resolves user",
			authHeader: "Bearer valid-token",
			claims:     validClaims,
			storedUser: user,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token without scheme",
			authHeader: "just-a-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:        "expired token",
			authHeader:  "Bearer expired-token",
			validateErr: auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:        "invalid token",
			authHeader:  "Bearer bad-token",
			validateErr: auth.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:       "subject no longer exists",
			authHeader: "Bearer valid-token",
			claims:     &auth.Claims{UserID: uuid.New()},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				Claims:      tt.claims,
				ValidateErr: tt.validateErr,
			}
			userStore := mocks.NewMockUserStore()
			if tt.storedUser != nil {
				userStore.Users[tt.storedUser.Email] = tt.storedUser
			}

			middleware := NewAuthMiddleware(jwtService, userStore)

			nextCalled := false
			var contextUser *domain.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				contextUser, _ = shared.UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/api/post", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			middleware.Authenticate(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantNext, nextCalled)

			if tt.wantNext {
				require.NotNil(t, contextUser)
				assert.Equal(t, user.ID, contextUser.ID)
			}
		})
	}
}

func TestAuthenticatePassesTokenThrough(t *testing.T) {
	t.Parallel()

	var seenToken string
	jwtService := &mocks.MockJWTService{
		ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			seenToken = tokenString
			return nil, auth.ErrInvalidToken
		},
	}

	middleware := NewAuthMiddleware(jwtService, mocks.NewMockUserStore())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("GET", "/api/post", nil)
	req.Header.Set("Authorization", "Bearer the-raw-token")

	middleware.Authenticate(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "the-raw-token", seenToken)
}
