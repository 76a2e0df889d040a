package recipe

import (
	"strings"

	"recipehub/domain"

	"gorm.io/gorm"
)

// BuildFilterScope turns a RecipeFilter into a single reusable gorm scope. The
// repository applies the same scope value to both the count query and the page
// query, so a listing's total can never be computed from a different predicate
// than its items.
func BuildFilterScope(filter domain.RecipeFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Category != "" {
			db = db.Where("category = ?", filter.Category)
		}
		if filter.Difficulty != "" {
			db = db.Where("difficulty = ?", filter.Difficulty)
		}
		if filter.Search != "" {
			pattern := "%" + strings.ToLower(filter.Search) + "%"
			db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
		}
		return db
	}
}
