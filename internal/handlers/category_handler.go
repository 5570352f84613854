package handlers

import (
	"net/http"

	"github.com/csaba-schmidtmayer/trivia-api/internal/models"
	"github.com/csaba-schmidtmayer/trivia-api/internal/utils"

	"go.uber.org/zap"
)

type CategoryHandler struct {
	categories CategoryRepository
	logger     *zap.Logger
}

func NewCategoryHandler(categories CategoryRepository, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, logger: logger}
}

// GET /categories
func (handler *CategoryHandler) ListCategoriesHandler(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.categories.GetAll(request.Context())
	if err != nil {
		handler.logger.Error("failed to fetch categories", zap.Error(err))
		writeError(writer, newAPIError(http.StatusInternalServerError, msgInternal))
		return
	}

	utils.JSON(writer, http.StatusOK, models.CategoriesResponse{
		Success:         true,
		Categories:      categories,
		TotalCategories: len(categories),
	})
}
