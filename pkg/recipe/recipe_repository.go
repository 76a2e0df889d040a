package recipe

import (
	"context"
	"time"

	"recipehub/domain"
	"recipehub/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		ListRecipes(ctx context.Context, filter domain.RecipeFilter, page, perPage int) ([]*entities.Recipe, int64, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipeCascade(ctx context.Context, id uuid.UUID) error

		CountByOwner(ctx context.Context, ownerID string) (int64, error)
		SumViewsByOwner(ctx context.Context, ownerID string) (int64, error)
		GetRecentByOwner(ctx context.Context, ownerID string, limit int) ([]*entities.Recipe, error)
		GetCreationDays(ctx context.Context, ownerID string) ([]time.Time, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) ListRecipes(ctx context.Context, filter domain.RecipeFilter, page, perPage int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * perPage

	// One scope drives both queries, and one transaction snapshots them;
	// the items and the total always agree.
	scope := BuildFilterScope(filter)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&entities.Recipe{}).
			Scopes(scope).
			Count(&count).Error; err != nil {
			return err
		}

		return tx.
			Preload("User").
			Scopes(scope).
			Offset(offset).
			Limit(perPage).
			Order("created_at desc").
			Find(&recipes).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

// DeleteRecipeCascade removes the recipe together with every dependent row.
// Everything commits or nothing does; no aggregate or feed can observe a
// half-deleted recipe.
func (r *recipeRepository) DeleteRecipeCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeView{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) SumViewsByOwner(ctx context.Context, ownerID string) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("user_id = ?", ownerID).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *recipeRepository) GetRecentByOwner(ctx context.Context, ownerID string, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetCreationDays returns the distinct calendar days on which the owner created a
// recipe, newest first.
func (r *recipeRepository) GetCreationDays(ctx context.Context, ownerID string) ([]time.Time, error) {
	var days []time.Time
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("user_id = ?", ownerID).
		Select("DISTINCT DATE(created_at) AS day").
		Order("day desc").
		Pluck("day", &days).Error; err != nil {
		return nil, err
	}
	return days, nil
}
