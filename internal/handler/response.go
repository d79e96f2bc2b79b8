package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"product-api/internal/model"
	"product-api/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps known errors to their status and client-facing message.
// Anything unexpected becomes a generic 500 so internals never leak.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		message = apiErr.Message
	case errors.Is(err, model.ErrUserAlreadyExists):
		status = http.StatusConflict
		message = "User already exists"
	case errors.Is(err, model.ErrProductNotFound):
		status = http.StatusNotFound
		message = "Product not found"
	default:
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, model.ErrorResponse{Error: message})
}
