package models

import "fmt"

// QuestionRequest is the body of POST /questions. It carries either a search
// term or the fields of a new question; pointers keep null and absent apart
// from zero values.
type QuestionRequest struct {
	SearchTerm *string `json:"searchTerm"`
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// MissingFieldError names the first required field absent from a create request.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing field '%s'.", e.Field)
}

// IsSearch reports whether the request is a search rather than a create.
func (r *QuestionRequest) IsSearch() bool {
	return r.SearchTerm != nil
}

// Validate checks presence of the create fields in the order
// question, answer, category, difficulty. Search requests always pass.
func (r *QuestionRequest) Validate() error {
	if r.IsSearch() {
		return nil
	}
	switch {
	case r.Question == nil:
		return &MissingFieldError{Field: "question"}
	case r.Answer == nil:
		return &MissingFieldError{Field: "answer"}
	case r.Category == nil:
		return &MissingFieldError{Field: "category"}
	case r.Difficulty == nil:
		return &MissingFieldError{Field: "difficulty"}
	}
	return nil
}

// ToQuestion builds the row to insert. Only valid after Validate returned nil.
func (r *QuestionRequest) ToQuestion() *Question {
	return &Question{
		Question:   *r.Question,
		Answer:     *r.Answer,
		Category:   *r.Category,
		Difficulty: *r.Difficulty,
	}
}
