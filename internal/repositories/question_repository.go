package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/csaba-schmidtmayer/trivia-api/internal/models"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// GetAll returns every question ordered by id.
func (r *QuestionRepository) GetAll(ctx context.Context) ([]models.Question, error) {
	questions := []models.Question{}
	if err := r.DB.WithContext(ctx).Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*models.Question, error) {
	var question models.Question
	err := r.DB.WithContext(ctx).First(&question, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// GetByCategory returns the questions whose category equals categoryID, ordered by id.
func (r *QuestionRepository) GetByCategory(ctx context.Context, categoryID int) ([]models.Question, error) {
	questions := []models.Question{}
	err := r.DB.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Search returns the questions containing term, ignoring case. LIKE
// wildcards in term match literally. Both sides are folded by the database
// so stored text always matches itself whatever the driver's LOWER covers.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]models.Question, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"
	questions := []models.Question{}
	err := r.DB.WithContext(ctx).
		Where(`LOWER(question) LIKE LOWER(?) ESCAPE '\'`, pattern).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ExistsByText reports whether a question with the same text exists, ignoring case.
func (r *QuestionRepository) ExistsByText(ctx context.Context, text string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.Question{}).
		Where("LOWER(question) = LOWER(?)", text).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts question in its own transaction and sets its ID.
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(question).Error
	})
}

// Delete removes the question with id in its own transaction.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Question{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrQuestionNotFound
		}
		return nil
	})
}
