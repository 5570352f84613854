package routers

import (
	"context"
	"net/http"
	"time"

	"github.com/csaba-schmidtmayer/trivia-api/internal/config"
	"github.com/csaba-schmidtmayer/trivia-api/internal/database"
	"github.com/csaba-schmidtmayer/trivia-api/internal/handlers"
	"github.com/csaba-schmidtmayer/trivia-api/internal/metrics"
	"github.com/csaba-schmidtmayer/trivia-api/internal/middleware"
	"github.com/csaba-schmidtmayer/trivia-api/internal/repositories"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RequestTimeout bounds each request's context. It must stay below the HTTP
// server's write timeout.
const RequestTimeout = 10 * time.Second

// New wires repositories and handlers over db and returns the API router.
func New(db *gorm.DB, cfg *config.Config, logger *zap.Logger) http.Handler {
	questionRepo := repositories.NewQuestionRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	questionHandler := handlers.NewQuestionHandler(questionRepo, categoryRepo, logger)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, logger)
	healthHandler := handlers.NewHealthHandler(func(ctx context.Context) error {
		return database.Ping(ctx, db)
	})

	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Logger, chimiddleware.Recoverer, chimiddleware.Timeout(RequestTimeout))
	r.Use(metrics.Middleware)

	r.NotFound(handlers.NotFoundHandler)
	r.MethodNotAllowed(handlers.MethodNotAllowedHandler)

	HealthRoutes(r, healthHandler)
	CategoryRoutes(r, categoryHandler, questionHandler)
	QuestionRoutes(r, questionHandler)

	return r
}
