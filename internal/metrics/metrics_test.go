package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics handler, got %d", rec.Code)
	}
	return rec.Body.String()
}

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Delete("/questions/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{}`))
	})

	for _, id := range []string{"1", "2", "3"} {
		req := httptest.NewRequest(http.MethodDelete, "/questions/"+id, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	want := `trivia_http_requests_total{method="DELETE",route="/questions/{id}",status="422"} 3`
	if body := scrape(t); !strings.Contains(body, want) {
		t.Fatalf("expected %q in exposition:\n%s", want, body)
	}
}

func TestMiddlewareUnmatchedRoute(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/questions", func(w http.ResponseWriter, _ *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPatch, "/nope", nil))

	want := `trivia_http_requests_total{method="PATCH",route="unmatched",status="404"} 1`
	if body := scrape(t); !strings.Contains(body, want) {
		t.Fatalf("expected %q in exposition:\n%s", want, body)
	}
}

func TestHandlerExposesInFlightGauge(t *testing.T) {
	if body := scrape(t); !strings.Contains(body, "trivia_http_in_flight_requests 0") {
		t.Fatalf("expected idle in-flight gauge in exposition:\n%s", body)
	}
}
