package routers

import (
	"github.com/csaba-schmidtmayer/trivia-api/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func CategoryRoutes(r chi.Router, categoryHandler *handlers.CategoryHandler, questionHandler *handlers.QuestionHandler) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categoryHandler.ListCategoriesHandler)
		r.Get("/{id:[0-9]+}/questions", questionHandler.ListByCategoryHandler)
	})
}
