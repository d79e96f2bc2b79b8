//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"product-api/internal/config"
	"product-api/internal/handler"
	"product-api/internal/middleware"
	"product-api/internal/model"
	"product-api/internal/repository"
	"product-api/internal/router"
	"product-api/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		ServerPort:       "3000",
		RequestTimeout:   30 * time.Second,
		JWTSecret:        "test-secret",
		JWTTTL:           24 * time.Hour,
		BcryptCost:       4,
		BaseURL:          "http://localhost:3000",
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
	}

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(repository.NewUserRepository(), hasher, tokens)
	productService := service.NewProductService(repository.NewProductRepository(repository.SeedProducts()))

	authMiddleware := middleware.NewAuthMiddleware(tokens)
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	docsHandler := handler.NewDocsHandler(cfg.BaseURL)

	server := httptest.NewServer(router.New(cfg, authMiddleware, authHandler, productHandler, docsHandler))
	t.Cleanup(server.Close)

	return server
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func getWithToken(t *testing.T, url string, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decodeAuthResponse(t *testing.T, resp *http.Response) model.AuthResponse {
	t.Helper()

	var parsed model.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return parsed
}

func decodeErrorResponse(t *testing.T, resp *http.Response) model.ErrorResponse {
	t.Helper()

	var parsed model.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return parsed
}

func registerUser(t *testing.T, serverURL string, email string, password string, name string) model.AuthResponse {
	t.Helper()

	resp := postJSON(t, serverURL+"/api/auth/register", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return decodeAuthResponse(t, resp)
}
