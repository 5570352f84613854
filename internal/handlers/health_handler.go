package handlers

import (
	"context"
	"io"
	"net/http"
	"time"
)

type HealthHandler struct {
	ping func(context.Context) error
}

// NewHealthHandler takes the readiness probe; a nil probe means always ready.
func NewHealthHandler(ping func(context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

func (handler *HealthHandler) HealthzHandler(writer http.ResponseWriter, request *http.Request) {
	writer.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(writer, "ok")
}

func (handler *HealthHandler) ReadyzHandler(writer http.ResponseWriter, request *http.Request) {
	if handler.ping != nil {
		ctx, cancel := context.WithTimeout(request.Context(), 2*time.Second)
		defer cancel()
		if err := handler.ping(ctx); err != nil {
			writer.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(writer, "not ready")
			return
		}
	}
	writer.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(writer, "ready")
}
