package recipe

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"recipehub/domain"
	"recipehub/entities"
	"recipehub/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.Recipe, error)
		GetRecipe(ctx context.Context, recipeID string, viewerID string) (domain.Recipe, error)
		ListRecipes(ctx context.Context, filter domain.RecipeFilter, page, perPage int, viewerID string) (domain.RecipeListResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
		UploadRecipeImage(ctx context.Context, recipeID string, userID string, file *multipart.FileHeader) (string, error)
		UploadRecipeVideo(ctx context.Context, recipeID string, userID string, file *multipart.FileHeader) (string, error)
	}

	// EngagementCounter is the slice of the engagement ledger recipe reads need.
	// Satisfied by the engagement repository.
	EngagementCounter interface {
		CountLikes(ctx context.Context, recipeID string) (int64, error)
		CountComments(ctx context.Context, recipeID string) (int64, error)
		IsLiked(ctx context.Context, recipeID, userID string) (bool, error)
		IsFavorited(ctx context.Context, recipeID, userID string) (bool, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		engagement       EngagementCounter
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, engagement EngagementCounter, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		engagement:       engagement,
		s3:               s3,
	}
}

func validDifficulty(difficulty string) bool {
	switch difficulty {
	case entities.DifficultyEasy, entities.DifficultyMedium, entities.DifficultyHard:
		return true
	}
	return false
}

// normalizeList trims entries and drops empty ones, preserving order.
func normalizeList(values []string) entities.StringList {
	out := make(entities.StringList, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.Recipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Recipe{}, domain.ErrParseUUID
	}

	if strings.TrimSpace(req.Title) == "" {
		return domain.Recipe{}, domain.ErrMissingTitle
	}
	if strings.TrimSpace(req.Category) == "" {
		return domain.Recipe{}, domain.ErrMissingCategory
	}
	difficulty := strings.ToLower(strings.TrimSpace(req.Difficulty))
	if !validDifficulty(difficulty) {
		return domain.Recipe{}, domain.ErrInvalidDifficulty
	}
	if req.PrepTimeMinutes < 0 || req.CookTimeMinutes < 0 {
		return domain.Recipe{}, domain.ErrNegativeDuration
	}
	if req.Servings < 0 {
		return domain.Recipe{}, domain.ErrInvalidServings
	}
	servings := req.Servings
	if servings == 0 {
		servings = 1
	}

	recipe := &entities.Recipe{
		ID:              uuid.New(),
		UserID:          userUUID,
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		Category:        req.Category,
		Difficulty:      difficulty,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        servings,
		Ingredients:     normalizeList(req.Ingredients),
		Instructions:    normalizeList(req.Instructions),
		Tags:            entities.NewStringSet(req.Tags),
		ImageURL:        req.ImageURL,
		VideoURL:        req.VideoURL,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}

	return s.toResponse(ctx, recipe, userID)
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID string, viewerID string) (domain.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recipe{}, domain.ErrRecipeNotFound
		}
		return domain.Recipe{}, err
	}

	return s.toResponse(ctx, recipe, viewerID)
}

func (s *recipeService) ListRecipes(ctx context.Context, filter domain.RecipeFilter, page, perPage int, viewerID string) (domain.RecipeListResponse, error) {
	if page < 1 {
		page = domain.DefaultPage
	}
	if perPage == 0 {
		perPage = domain.DefaultPerPage
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > domain.MaxPerPage {
		perPage = domain.MaxPerPage
	}

	recipes, count, err := s.recipeRepository.ListRecipes(ctx, filter, page, perPage)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	result := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		res, err := s.toResponse(ctx, recipe, viewerID)
		if err != nil {
			return domain.RecipeListResponse{}, err
		}
		result = append(result, res)
	}

	return domain.RecipeListResponse{
		Recipes:    result,
		Pagination: domain.NewPagination(page, perPage, count),
	}, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recipe{}, domain.ErrRecipeNotFound
		}
		return domain.Recipe{}, err
	}

	if recipe.UserID.String() != userID {
		return domain.Recipe{}, domain.ErrNotRecipeOwner
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return domain.Recipe{}, domain.ErrMissingTitle
		}
		recipe.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Category != nil {
		if strings.TrimSpace(*req.Category) == "" {
			return domain.Recipe{}, domain.ErrMissingCategory
		}
		recipe.Category = *req.Category
	}
	if req.Difficulty != nil {
		difficulty := strings.ToLower(strings.TrimSpace(*req.Difficulty))
		if !validDifficulty(difficulty) {
			return domain.Recipe{}, domain.ErrInvalidDifficulty
		}
		recipe.Difficulty = difficulty
	}
	if req.PrepTimeMinutes != nil {
		if *req.PrepTimeMinutes < 0 {
			return domain.Recipe{}, domain.ErrNegativeDuration
		}
		recipe.PrepTimeMinutes = *req.PrepTimeMinutes
	}
	if req.CookTimeMinutes != nil {
		if *req.CookTimeMinutes < 0 {
			return domain.Recipe{}, domain.ErrNegativeDuration
		}
		recipe.CookTimeMinutes = *req.CookTimeMinutes
	}
	if req.Servings != nil {
		if *req.Servings < 1 {
			return domain.Recipe{}, domain.ErrInvalidServings
		}
		recipe.Servings = *req.Servings
	}
	if req.Ingredients != nil {
		recipe.Ingredients = normalizeList(*req.Ingredients)
	}
	if req.Instructions != nil {
		recipe.Instructions = normalizeList(*req.Instructions)
	}
	if req.Tags != nil {
		recipe.Tags = entities.NewStringSet(*req.Tags)
	}
	if req.ImageURL != nil {
		recipe.ImageURL = *req.ImageURL
	}
	if req.VideoURL != nil {
		recipe.VideoURL = *req.VideoURL
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}

	return s.toResponse(ctx, recipe, userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.UserID.String() != userID {
		return domain.ErrNotRecipeOwner
	}

	return s.recipeRepository.DeleteRecipeCascade(ctx, recipe.ID)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID string, userID string, file *multipart.FileHeader) (string, error) {
	return s.uploadMedia(ctx, recipeID, userID, file, storage.AllowImage, "image")
}

func (s *recipeService) UploadRecipeVideo(ctx context.Context, recipeID string, userID string, file *multipart.FileHeader) (string, error) {
	return s.uploadMedia(ctx, recipeID, userID, file, storage.AllowVideo, "video")
}

func (s *recipeService) uploadMedia(ctx context.Context, recipeID string, userID string, file *multipart.FileHeader, allowed []string, kind string) (string, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}

	if recipe.UserID.String() != userID {
		return "", domain.ErrNotRecipeOwner
	}

	existing := recipe.ImageURL
	if kind == "video" {
		existing = recipe.VideoURL
	}

	fileName := fmt.Sprintf("recipe-%s-%s", recipe.ID.String(), kind)
	var objectKey string
	var uploadErr error

	if existing != "" {
		existingKey := s.s3.GetObjectKeyFromLink(existing)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, file, allowed...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, file, "recipes", allowed...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, file, "recipes", allowed...)
	}
	if uploadErr != nil {
		return "", uploadErr
	}

	link := s.s3.GetPublicLinkKey(objectKey)
	if kind == "video" {
		recipe.VideoURL = link
	} else {
		recipe.ImageURL = link
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return "", err
	}

	return link, nil
}

func (s *recipeService) toResponse(ctx context.Context, recipe *entities.Recipe, viewerID string) (domain.Recipe, error) {
	res := domain.Recipe{
		ID:              recipe.ID.String(),
		UserID:          recipe.UserID.String(),
		Title:           recipe.Title,
		Description:     recipe.Description,
		Category:        recipe.Category,
		Difficulty:      recipe.Difficulty,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
		Servings:        recipe.Servings,
		Ingredients:     recipe.Ingredients,
		Instructions:    recipe.Instructions,
		Tags:            recipe.Tags,
		ImageURL:        recipe.ImageURL,
		VideoURL:        recipe.VideoURL,
		ViewCount:       recipe.ViewCount,
		CreatedAt:       recipe.CreatedAt,
		UpdatedAt:       recipe.UpdatedAt,
	}
	if res.Ingredients == nil {
		res.Ingredients = []string{}
	}
	if res.Instructions == nil {
		res.Instructions = []string{}
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}
	if recipe.User != nil {
		res.AuthorName = recipe.User.Username
	}

	recipeID := recipe.ID.String()
	likes, err := s.engagement.CountLikes(ctx, recipeID)
	if err != nil {
		return domain.Recipe{}, err
	}
	res.LikeCount = likes

	comments, err := s.engagement.CountComments(ctx, recipeID)
	if err != nil {
		return domain.Recipe{}, err
	}
	res.CommentCount = comments

	if viewerID != "" {
		liked, err := s.engagement.IsLiked(ctx, recipeID, viewerID)
		if err != nil {
			return domain.Recipe{}, err
		}
		res.IsLiked = liked

		favorited, err := s.engagement.IsFavorited(ctx, recipeID, viewerID)
		if err != nil {
			return domain.Recipe{}, err
		}
		res.IsFavorited = favorited
	}

	return res, nil
}
