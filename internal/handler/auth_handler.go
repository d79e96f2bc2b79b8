package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"product-api/internal/model"
	"product-api/internal/service"
	"product-api/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("Invalid JSON body"))
		return
	}

	token, user, err := h.service.Register(r.Context(),
		strings.TrimSpace(payload.Email), payload.Password, strings.TrimSpace(payload.Name))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    user.Public(),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("Invalid JSON body"))
		return
	}

	token, user, err := h.service.Login(r.Context(), strings.TrimSpace(payload.Email), payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    user.Public(),
	})
}
