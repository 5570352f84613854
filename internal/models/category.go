package models

// Category groups questions. Rows are seeded, never written through the API.
type Category struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false" json:"id" yaml:"id"`
	Type string `gorm:"not null" json:"type" yaml:"type"`
}

func (Category) TableName() string {
	return "categories"
}
