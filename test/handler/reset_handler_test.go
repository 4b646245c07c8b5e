package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForgotPasswordUnknownEmail(t *testing.T) {
	f, cleanup := setupRouter(t)
	defer cleanup()

	resp := f.postJSON(t, "/api/forgot-password", map[string]string{"email": "ghost@example.com"}, nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
	require.NotEmpty(t, decodeBody(t, resp)["error"])
	require.Equal(t, 0, f.codes.Len())
}

func TestPasswordResetFlow(t *testing.T) {
	f, cleanup := setupRouter(t)
	defer cleanup()

	resp := f.postJSON(t, "/api/forgot-password", map[string]string{"email": adminEmail}, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, true, decodeBody(t, resp)["success"])

	entry, ok := f.codes.Get(adminEmail)
	require.True(t, ok)
	code := entry.Code

	resp = f.postJSON(t, "/api/verify-code", map[string]string{"email": adminEmail, "code": "000000"}, nil)
	if code != "000000" {
		require.Equal(t, http.StatusBadRequest, resp.Code)
	}

	resp = f.postJSON(t, "/api/verify-code", map[string]string{"email": adminEmail, "code": code}, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = f.postJSON(t, "/api/reset-password-with-code", map[string]string{
		"email": adminEmail, "code": code, "newPassword": "fresh-secret",
	}, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	// the code is gone and the old password no longer works
	require.Equal(t, 0, f.codes.Len())
	resp = f.postJSON(t, "/api/login", map[string]string{"username": adminUser, "password": adminPassword}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	f.login(t, adminUser, "fresh-secret")

	// replaying the consumed code fails
	resp = f.postJSON(t, "/api/reset-password-with-code", map[string]string{
		"email": adminEmail, "code": code, "newPassword": "other",
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

// one request per fixture: the contact route is rate limited per client
func TestContactEndpointRejectsIncompleteForm(t *testing.T) {
	f, cleanup := setupRouter(t)
	defer cleanup()

	resp := f.postJSON(t, "/api/contact", map[string]string{
		"name": "Maria", "phone": "", "email": "maria@example.com",
		"subject": "x", "message": "y",
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestContactEndpointAcceptsValidForm(t *testing.T) {
	f, cleanup := setupRouter(t)
	defer cleanup()

	resp := f.postJSON(t, "/api/contact", map[string]string{
		"name": "Maria", "phone": "+55 11 99999-0000", "email": "maria@example.com",
		"subject": "Accounting", "message": "Hello there",
	}, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, true, decodeBody(t, resp)["success"])

	// an immediate second submission from the same client is throttled
	resp = f.postJSON(t, "/api/contact", map[string]string{
		"name": "Maria", "phone": "+55 11 99999-0000", "email": "maria@example.com",
		"subject": "Accounting", "message": "Hello again",
	}, nil)
	require.Equal(t, http.StatusTooManyRequests, resp.Code)
}
