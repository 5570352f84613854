package handlers

import (
	"net/http"

	"github.com/csaba-schmidtmayer/trivia-api/internal/utils"
)

const (
	msgPageOutOfRange   = "The requested page is beyond the valid range."
	msgQuestionMissing  = "The question does not exist."
	msgDeleteFailed     = "The question could not be deleted."
	msgQuestionExists   = "The question already exists."
	msgCreateFailed     = "Adding the question to the database was unsuccessful."
	msgCategoryMissing  = "The requested category does not exist."
	msgInternal         = "The server encountered an internal error."
	msgResourceNotFound = "The requested resource was not found."
	msgMethodNotAllowed = "The method is not allowed for the requested URL."
)

// APIError is a failure that maps directly onto the error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

func writeError(w http.ResponseWriter, err *APIError) {
	utils.Error(w, err.Status, err.Message)
}

// NotFoundHandler answers unmatched routes with the error envelope.
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	writeError(w, newAPIError(http.StatusNotFound, msgResourceNotFound))
}

// MethodNotAllowedHandler answers unsupported methods with the error envelope.
func MethodNotAllowedHandler(w http.ResponseWriter, _ *http.Request) {
	writeError(w, newAPIError(http.StatusMethodNotAllowed, msgMethodNotAllowed))
}
