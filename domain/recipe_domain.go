package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes    = "success get recipes"
	MessageSuccessGetRecipe     = "success get recipe detail"
	MessageSuccessCreateRecipe  = "recipe created successfully"
	MessageSuccessUpdateRecipe  = "recipe updated successfully"
	MessageSuccessDeleteRecipe  = "recipe deleted successfully"
	MessageSuccessUploadMedia   = "media uploaded successfully"
	MessageSuccessGenerateDraft = "recipe draft generated successfully"

	MessageFailedGetRecipes    = "failed to get recipes"
	MessageFailedGetRecipe     = "failed to get recipe detail"
	MessageFailedCreateRecipe  = "failed to create recipe"
	MessageFailedUpdateRecipe  = "failed to update recipe"
	MessageFailedDeleteRecipe  = "failed to delete recipe"
	MessageFailedUploadMedia   = "failed to upload media"
	MessageFailedGenerateDraft = "failed to generate recipe draft"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrNotRecipeOwner     = errors.New("only the recipe owner may modify it")
	ErrMissingTitle       = errors.New("title is required")
	ErrMissingCategory    = errors.New("category is required")
	ErrInvalidDifficulty  = errors.New("difficulty must be one of easy, medium, hard")
	ErrNegativeDuration   = errors.New("prep and cook time must not be negative")
	ErrInvalidServings    = errors.New("servings must be at least 1")
	ErrGenerationFailed   = errors.New("recipe generation failed")
)

type (
	CreateRecipeRequest struct {
		Title           string   `json:"title" validate:"required"`
		Description     string   `json:"description"`
		Category        string   `json:"category" validate:"required"`
		Difficulty      string   `json:"difficulty" validate:"required"`
		PrepTimeMinutes int      `json:"prep_time_minutes"`
		CookTimeMinutes int      `json:"cook_time_minutes"`
		Servings        int      `json:"servings"`
		Ingredients     []string `json:"ingredients"`
		Instructions    []string `json:"instructions"`
		Tags            []string `json:"tags"`
		ImageURL        string   `json:"image_url,omitempty"`
		VideoURL        string   `json:"video_url,omitempty"`
	}

	// UpdateRecipeRequest uses pointers so absent fields keep their prior value.
	UpdateRecipeRequest struct {
		Title           *string   `json:"title,omitempty"`
		Description     *string   `json:"description,omitempty"`
		Category        *string   `json:"category,omitempty"`
		Difficulty      *string   `json:"difficulty,omitempty"`
		PrepTimeMinutes *int      `json:"prep_time_minutes,omitempty"`
		CookTimeMinutes *int      `json:"cook_time_minutes,omitempty"`
		Servings        *int      `json:"servings,omitempty"`
		Ingredients     *[]string `json:"ingredients,omitempty"`
		Instructions    *[]string `json:"instructions,omitempty"`
		Tags            *[]string `json:"tags,omitempty"`
		ImageURL        *string   `json:"image_url,omitempty"`
		VideoURL        *string   `json:"video_url,omitempty"`
	}

	// RecipeFilter is the single predicate object shared by the page fetch and the
	// count fetch inside listing, so the two can never drift apart.
	RecipeFilter struct {
		Category   string `json:"category,omitempty"`
		Difficulty string `json:"difficulty,omitempty"`
		Search     string `json:"search,omitempty"`
	}

	Recipe struct {
		ID              string    `json:"id"`
		UserID          string    `json:"user_id"`
		AuthorName      string    `json:"author_name,omitempty"`
		Title           string    `json:"title"`
		Description     string    `json:"description"`
		Category        string    `json:"category"`
		Difficulty      string    `json:"difficulty"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		CookTimeMinutes int       `json:"cook_time_minutes"`
		Servings        int       `json:"servings"`
		Ingredients     []string  `json:"ingredients"`
		Instructions    []string  `json:"instructions"`
		Tags            []string  `json:"tags"`
		ImageURL        string    `json:"image_url,omitempty"`
		VideoURL        string    `json:"video_url,omitempty"`
		ViewCount       int64     `json:"view_count"`
		LikeCount       int64     `json:"like_count"`
		CommentCount    int64     `json:"comment_count"`
		IsLiked         bool      `json:"is_liked"`
		IsFavorited     bool      `json:"is_favorited"`
		CreatedAt       time.Time `json:"created_at"`
		UpdatedAt       time.Time `json:"updated_at"`
	}

	RecipeListResponse struct {
		Recipes    []Recipe   `json:"recipes"`
		Pagination Pagination `json:"pagination"`
	}

	// RecipeDraft is a set of candidate field values produced by the generation
	// helper. It is never persisted directly; callers submit it through the normal
	// create path where it is validated like manual input.
	RecipeDraft struct {
		Title           string   `json:"title"`
		Description     string   `json:"description"`
		Category        string   `json:"category"`
		Difficulty      string   `json:"difficulty"`
		PrepTimeMinutes int      `json:"prep_time_minutes"`
		CookTimeMinutes int      `json:"cook_time_minutes"`
		Servings        int      `json:"servings"`
		Ingredients     []string `json:"ingredients"`
		Instructions    []string `json:"instructions"`
		Tags            []string `json:"tags"`
	}

	GenerateRecipeRequest struct {
		Idea string `json:"idea" validate:"required"`
	}
)
