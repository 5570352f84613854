package database

import (
	"context"
	"fmt"
	"os"

	"github.com/csaba-schmidtmayer/trivia-api/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// LoadCategories reads a YAML list of {id, type} entries.
func LoadCategories(path string) ([]models.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read category seed: %w", err)
	}
	var categories []models.Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("parse category seed %s: %w", path, err)
	}
	for _, c := range categories {
		if c.ID <= 0 || c.Type == "" {
			return nil, fmt.Errorf("category seed %s: entry needs a positive id and a type, got %+v", path, c)
		}
	}
	return categories, nil
}

// SeedCategories inserts categories when the table is empty. It returns the
// number of rows inserted; an already populated table is left untouched.
func SeedCategories(ctx context.Context, db *gorm.DB, categories []models.Category) (int, error) {
	if len(categories) == 0 {
		return 0, nil
	}
	inserted := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}
		inserted = len(categories)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed categories: %w", err)
	}
	return inserted, nil
}
