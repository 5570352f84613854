package handlers

import (
	"context"

	"github.com/csaba-schmidtmayer/trivia-api/internal/models"
)

// QuestionRepository captures the question persistence operations required by handlers.
type QuestionRepository interface {
	GetAll(ctx context.Context) ([]models.Question, error)
	GetByID(ctx context.Context, id int) (*models.Question, error)
	GetByCategory(ctx context.Context, categoryID int) ([]models.Question, error)
	Search(ctx context.Context, term string) ([]models.Question, error)
	ExistsByText(ctx context.Context, text string) (bool, error)
	Create(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id int) error
}

// CategoryRepository captures the category lookups required by handlers.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int) (*models.Category, error)
}
