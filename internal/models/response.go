package models

// every response carries success; errors add error and message

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

type CategoriesResponse struct {
	Success         bool       `json:"success"`
	Categories      []Category `json:"categories"`
	TotalCategories int        `json:"total_categories"`
}

// QuestionsPageResponse is returned by the paginated question listing
type QuestionsPageResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	Categories      []Category `json:"categories"`
	CurrentCategory *int       `json:"current_category"`
}

// QuestionsResponse is returned by search and by the per-category listing.
// CurrentCategory is null for search.
type QuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory *int       `json:"current_category"`
}

type CreatedResponse struct {
	Success bool `json:"success"`
}

type DeletedResponse struct {
	Success bool `json:"success"`
	ID      int  `json:"id"`
}

const QuestionsPerPage = 10

// PageBounds returns the slice bounds of page within total rows. Pages
// below 1 or past the last page produce an empty range.
func PageBounds(page, total int) (start, end int) {
	if page < 1 {
		return 0, 0
	}
	pages := (total + QuestionsPerPage - 1) / QuestionsPerPage
	if page > pages {
		return total, total
	}
	start = (page - 1) * QuestionsPerPage
	end = start + QuestionsPerPage
	if end > total {
		end = total
	}
	return start, end
}
