package models

// Question is a trivia prompt/answer pair tagged with a category and difficulty.
// Category is a plain integer column; the referenced category is not enforced.
type Question struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"not null" json:"question"`
	Answer     string `gorm:"not null" json:"answer"`
	Category   int    `gorm:"not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}
