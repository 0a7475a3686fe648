package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devconnect/api/internal/api/shared"
	"github.com/devconnect/api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// newJSONRequest builds a request carrying the marshaled payload.
func newJSONRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asUser attaches an authenticated user to the request context the way the
// authentication middleware does.
func asUser(req *http.Request, user *domain.User) *http.Request {
	return req.WithContext(shared.WithUser(req.Context(), user))
}

// withURLParams attaches chi route parameters so handlers can read them
// without going through the router.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// decodeBody unmarshals the recorded response body into v.
func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(v))
}

// testUser returns a user the way the store would hand it to a handler.
func testUser(t *testing.T, name, email string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(name, email, "$2a$10$fakehashfakehashfakehash")
	require.NoError(t, err)
	return user
}
