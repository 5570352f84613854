package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/csaba-schmidtmayer/trivia-api/internal/utils"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const validatedRequestKey contextKey = "validated_request"

const invalidJSONMessage = "The request body is not valid JSON."

// request models implement this interface
type Validator interface {
	Validate() error
}

// searchRequest is implemented by bodies that may select a search instead of
// a create. A search ignores fields that only matter to create.
type searchRequest interface {
	IsSearch() bool
}

// ValidateRequest decodes the JSON body into a fresh T, runs its Validate
// method and stores it in the request context. Failures answer 400 with the
// error envelope and stop the chain.
func ValidateRequest[T Validator]() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req T
			reqType := reflect.TypeOf(req)
			if reqType.Kind() == reflect.Ptr {
				req = reflect.New(reqType.Elem()).Interface().(T)
			} else {
				req = reflect.New(reqType).Interface().(T)
			}

			if err := json.NewDecoder(r.Body).Decode(req); err != nil && !ignoredForSearch(err, req) {
				badRequest(w, decodeErrorMessage(err))
				return
			}

			if err := req.Validate(); err != nil {
				badRequest(w, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), validatedRequestKey, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetValidatedRequest retrieves the validated request from context
func GetValidatedRequest[T any](r *http.Request) T {
	return r.Context().Value(validatedRequestKey).(T)
}

// ignoredForSearch reports whether a field type error can be skipped because
// the body is a search. The decoder keeps filling fields after a type error,
// so the search term is already set at this point.
func ignoredForSearch(err error, req any) bool {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return false
	}
	s, ok := req.(searchRequest)
	return ok && s.IsSearch()
}

func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("Invalid field '%s'.", typeErr.Field)
	}
	return invalidJSONMessage
}

func badRequest(w http.ResponseWriter, message string) {
	utils.Error(w, http.StatusBadRequest, message)
}
