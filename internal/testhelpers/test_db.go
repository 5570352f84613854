package testhelpers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/csaba-schmidtmayer/trivia-api/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	openSQLite = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	}
	migrateSchema = func(db *gorm.DB) error { return db.AutoMigrate(&models.Category{}, &models.Question{}) }
)

// DefaultCategories mirrors the categories the quiz client ships with.
var DefaultCategories = []models.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

// SetupTestDB creates an isolated in-memory SQLite database for tests.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := openSQLite(dsn)
	if err != nil {
		panic(fmt.Sprintf("failed to open test database: %v", err))
	}
	if err := migrateSchema(db); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(fmt.Sprintf("failed to access test database: %v", err))
	}
	// one connection keeps the shared in-memory cache free of table locks
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// SeedCategories inserts DefaultCategories.
func SeedCategories(t *testing.T, db *gorm.DB) []models.Category {
	t.Helper()
	categories := make([]models.Category, len(DefaultCategories))
	copy(categories, DefaultCategories)
	if err := db.Create(&categories).Error; err != nil {
		t.Fatalf("failed to seed categories: %v", err)
	}
	return categories
}

// SeedQuestions inserts n questions spread round-robin over the default
// categories. Question text is "Question #<i>" starting at 1.
func SeedQuestions(t *testing.T, db *gorm.DB, n int) []models.Question {
	t.Helper()
	questions := make([]models.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, models.Question{
			Question:   fmt.Sprintf("Question #%d", i),
			Answer:     fmt.Sprintf("Answer #%d", i),
			Category:   DefaultCategories[(i-1)%len(DefaultCategories)].ID,
			Difficulty: (i-1)%5 + 1,
		})
	}
	if n > 0 {
		if err := db.Create(&questions).Error; err != nil {
			t.Fatalf("failed to seed questions: %v", err)
		}
	}
	return questions
}

// DropQuestionTable removes the questions table to force repository errors.
func DropQuestionTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := db.Migrator().DropTable(&models.Question{}); err != nil {
		panic(fmt.Sprintf("failed to drop question table: %v", err))
	}
}

// DropCategoryTable removes the categories table to force repository errors.
func DropCategoryTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := db.Migrator().DropTable(&models.Category{}); err != nil {
		panic(fmt.Sprintf("failed to drop category table: %v", err))
	}
}
