package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/csaba-schmidtmayer/trivia-api/internal/middleware"
	"github.com/csaba-schmidtmayer/trivia-api/internal/models"
	"github.com/csaba-schmidtmayer/trivia-api/internal/repositories"
	"github.com/csaba-schmidtmayer/trivia-api/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type QuestionHandler struct {
	questions  QuestionRepository
	categories CategoryRepository
	logger     *zap.Logger
}

func NewQuestionHandler(questions QuestionRepository, categories CategoryRepository, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{questions: questions, categories: categories, logger: logger}
}

// GET /questions?page=N
func (handler *QuestionHandler) ListQuestionsHandler(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	// absent or unparsable page falls back to the first page
	page := 1
	if p, err := strconv.Atoi(request.URL.Query().Get("page")); err == nil {
		page = p
	}

	questions, err := handler.questions.GetAll(ctx)
	if err != nil {
		handler.internalError(writer, "failed to fetch questions", err)
		return
	}

	start, end := models.PageBounds(page, len(questions))
	if start == end {
		writeError(writer, newAPIError(http.StatusNotFound, msgPageOutOfRange))
		return
	}

	categories, err := handler.categories.GetAll(ctx)
	if err != nil {
		handler.internalError(writer, "failed to fetch categories", err)
		return
	}

	utils.JSON(writer, http.StatusOK, models.QuestionsPageResponse{
		Success:         true,
		Questions:       questions[start:end],
		TotalQuestions:  len(questions),
		Categories:      categories,
		CurrentCategory: nil,
	})
}

// POST /questions. The body has already been decoded and validated; a
// searchTerm selects search, anything else is a new question.
func (handler *QuestionHandler) SearchOrCreateHandler(writer http.ResponseWriter, request *http.Request) {
	req := middleware.GetValidatedRequest[*models.QuestionRequest](request)
	if req.IsSearch() {
		handler.search(writer, request, *req.SearchTerm)
		return
	}
	handler.create(writer, request, req.ToQuestion())
}

func (handler *QuestionHandler) search(writer http.ResponseWriter, request *http.Request, term string) {
	questions, err := handler.questions.Search(request.Context(), term)
	if err != nil {
		handler.internalError(writer, "failed to search questions", err)
		return
	}

	utils.JSON(writer, http.StatusOK, models.QuestionsResponse{
		Success:         true,
		Questions:       nonNil(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
	})
}

func (handler *QuestionHandler) create(writer http.ResponseWriter, request *http.Request, question *models.Question) {
	ctx := request.Context()

	exists, err := handler.questions.ExistsByText(ctx, question.Question)
	if err != nil {
		handler.internalError(writer, "failed to check for duplicate question", err)
		return
	}
	if exists {
		writeError(writer, newAPIError(http.StatusConflict, msgQuestionExists))
		return
	}

	if err := handler.questions.Create(ctx, question); err != nil {
		handler.logger.Error("failed to create question", zap.Error(err))
		writeError(writer, newAPIError(http.StatusInternalServerError, msgCreateFailed))
		return
	}

	handler.logger.Info("question created", zap.Int("id", question.ID), zap.Int("category", question.Category))
	utils.JSON(writer, http.StatusCreated, models.CreatedResponse{Success: true})
}

// DELETE /questions/{id}
func (handler *QuestionHandler) DeleteQuestionHandler(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	id, ok := pathID(request, "id")
	if !ok {
		writeError(writer, newAPIError(http.StatusUnprocessableEntity, msgQuestionMissing))
		return
	}

	if _, err := handler.questions.GetByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrQuestionNotFound) {
			writeError(writer, newAPIError(http.StatusUnprocessableEntity, msgQuestionMissing))
			return
		}
		handler.internalError(writer, "failed to fetch question", err)
		return
	}

	if err := handler.questions.Delete(ctx, id); err != nil {
		// removed by another request between lookup and delete
		if errors.Is(err, repositories.ErrQuestionNotFound) {
			writeError(writer, newAPIError(http.StatusUnprocessableEntity, msgQuestionMissing))
			return
		}
		handler.logger.Error("failed to delete question", zap.Int("id", id), zap.Error(err))
		writeError(writer, newAPIError(http.StatusInternalServerError, msgDeleteFailed))
		return
	}

	handler.logger.Info("question deleted", zap.Int("id", id))
	utils.JSON(writer, http.StatusOK, models.DeletedResponse{Success: true, ID: id})
}

// GET /categories/{id}/questions
func (handler *QuestionHandler) ListByCategoryHandler(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	categoryID, ok := pathID(request, "id")
	if !ok {
		writeError(writer, newAPIError(http.StatusUnprocessableEntity, msgCategoryMissing))
		return
	}

	if _, err := handler.categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			writeError(writer, newAPIError(http.StatusUnprocessableEntity, msgCategoryMissing))
			return
		}
		handler.internalError(writer, "failed to fetch category", err)
		return
	}

	questions, err := handler.questions.GetByCategory(ctx, categoryID)
	if err != nil {
		handler.internalError(writer, "failed to fetch questions by category", err)
		return
	}

	utils.JSON(writer, http.StatusOK, models.QuestionsResponse{
		Success:         true,
		Questions:       nonNil(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: &categoryID,
	})
}

func (handler *QuestionHandler) internalError(writer http.ResponseWriter, msg string, err error) {
	handler.logger.Error(msg, zap.Error(err))
	writeError(writer, newAPIError(http.StatusInternalServerError, msgInternal))
}

// pathID parses a numeric URL parameter. Values too large for int are
// reported as not ok so they resolve like any other unknown id.
func pathID(request *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(request, name))
	if err != nil {
		return 0, false
	}
	return id, true
}

// empty results serialize as [] rather than null
func nonNil(questions []models.Question) []models.Question {
	if questions == nil {
		return []models.Question{}
	}
	return questions
}
