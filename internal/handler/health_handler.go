package handler

import (
	"net/http"

	"product-api/internal/model"
)

func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Server is running"})
}

func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "Route not found"})
}
