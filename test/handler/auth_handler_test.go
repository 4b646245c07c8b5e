package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atendemei/painel/internal/middleware"
)

func checkAuth(t *testing.T, f *fixture, cookie *http.Cookie) bool {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/check-auth", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	authenticated, _ := decodeBody(t, resp)["authenticated"].(bool)
	return authenticated
}

func TestLoginLogoutLifecycle(t *testing.T) {
	f, cleanup := setupRouter(t)
	defer cleanup()

	require.False(t, checkAuth(t, f, nil))

	cookie := f.login(t, adminUser, adminPassword)
	require.True(t, cookie.HttpOnly)
	require.True(t, checkAuth(t, f, cookie))

	resp := f.postJSON(t, "/api/logout", nil, cookie)
	require.Equal(t, http.StatusOK, resp.Code)

	// the old token is revoked server-side, not just cleared client-side
	require.False(t, checkAuth(t, f, cookie))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f, cleanup := setupRouter(t)
	defer cleanup()

	for _, creds := range []map[string]string{
		{"username": adminUser, "password": "wrong"},
		{"username": "ghost", "password": adminPassword},
	} {
		resp := f.postJSON(t, "/api/login", creds, nil)
		require.Equal(t, http.StatusUnauthorized, resp.Code)
		body := decodeBody(t, resp)
		require.Equal(t, false, body["success"])
		require.NotEmpty(t, body["error"])
		require.Empty(t, resp.Result().Cookies())
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	f, cleanup := setupRouter(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/1", nil)
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	forged := &http.Cookie{Name: middleware.SessionCookie, Value: "not-a-real-token"}
	req = httptest.NewRequest(http.MethodDelete, "/api/posts/1", nil)
	req.AddCookie(forged)
	resp = httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}
