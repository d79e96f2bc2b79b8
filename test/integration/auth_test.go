//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterLoginFlow(t *testing.T) {
	server := newTestServer(t)

	registered := registerUser(t, server.URL, "a@x.com", "secret1", "A")
	require.Equal(t, "User registered successfully", registered.Message)
	require.NotEmpty(t, registered.Token)
	require.Equal(t, "a@x.com", registered.User.Email)
	require.Equal(t, "A", registered.User.Name)
	require.NotEmpty(t, registered.User.ID)

	loginResp := postJSON(t, server.URL+"/api/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, loginResp.StatusCode)

	login := decodeAuthResponse(t, loginResp)
	require.Equal(t, "Login successful", login.Message)
	require.NotEmpty(t, login.Token)
	require.Equal(t, registered.User.ID, login.User.ID)
}

func TestRegisterValidationAndConflict(t *testing.T) {
	server := newTestServer(t)

	missingResp := postJSON(t, server.URL+"/api/auth/register", map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusBadRequest, missingResp.StatusCode)

	registerUser(t, server.URL, "a@x.com", "secret1", "A")

	dupResp := postJSON(t, server.URL+"/api/auth/register", map[string]string{
		"email":    "a@x.com",
		"password": "different",
		"name":     "B",
	})
	require.Equal(t, http.StatusConflict, dupResp.StatusCode)
	require.Equal(t, "User already exists", decodeErrorResponse(t, dupResp).Error)
}

func TestLoginRejectsBadCredentialsUniformly(t *testing.T) {
	server := newTestServer(t)

	registerUser(t, server.URL, "a@x.com", "secret1", "A")

	wrongPassword := postJSON(t, server.URL+"/api/auth/login", map[string]string{
		"email":    "a@x.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)

	unknownEmail := postJSON(t, server.URL+"/api/auth/login", map[string]string{
		"email":    "nobody@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusUnauthorized, unknownEmail.StatusCode)

	require.Equal(t,
		decodeErrorResponse(t, wrongPassword).Error,
		decodeErrorResponse(t, unknownEmail).Error)
}

func TestHealthAndUnknownRoute(t *testing.T) {
	server := newTestServer(t)

	health := getWithToken(t, server.URL+"/health", "")
	require.Equal(t, http.StatusOK, health.StatusCode)

	unknown := getWithToken(t, server.URL+"/nope", "")
	require.Equal(t, http.StatusNotFound, unknown.StatusCode)
	require.Equal(t, "Route not found", decodeErrorResponse(t, unknown).Error)
}

func TestOpenAPIDocumentServed(t *testing.T) {
	server := newTestServer(t)

	resp := getWithToken(t, server.URL+"/api/docs.json", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}
