package utils

import (
	"encoding/json"
	"net/http"

	"github.com/csaba-schmidtmayer/trivia-api/internal/models"
)

// JSON writes payload with status. Every API response goes through here so
// the content type is always application/json.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes the failure envelope; error repeats the HTTP status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, models.ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}
