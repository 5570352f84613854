package routers

import (
	"github.com/csaba-schmidtmayer/trivia-api/internal/handlers"
	"github.com/csaba-schmidtmayer/trivia-api/internal/middleware"
	"github.com/csaba-schmidtmayer/trivia-api/internal/models"

	"github.com/go-chi/chi/v5"
)

func QuestionRoutes(r chi.Router, questionHandler *handlers.QuestionHandler) {
	r.Route("/questions", func(r chi.Router) {
		r.Get("/", questionHandler.ListQuestionsHandler)
		r.With(middleware.ValidateRequest[*models.QuestionRequest]()).Post("/", questionHandler.SearchOrCreateHandler)
		r.Delete("/{id:[0-9]+}", questionHandler.DeleteQuestionHandler)
	})
}
