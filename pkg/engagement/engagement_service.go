package engagement

import (
	"context"
	"errors"
	"strings"
	"time"

	"recipehub/domain"
	"recipehub/entities"
	"recipehub/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	EngagementService interface {
		LikeRecipe(ctx context.Context, recipeID, actorID string) error
		UnlikeRecipe(ctx context.Context, recipeID, actorID string) error
		FavoriteRecipe(ctx context.Context, recipeID, actorID string) error
		UnfavoriteRecipe(ctx context.Context, recipeID, actorID string) error
		FollowUser(ctx context.Context, followerID, followeeID string) error
		UnfollowUser(ctx context.Context, followerID, followeeID string) error
		AddComment(ctx context.Context, recipeID, actorID string, req domain.AddCommentRequest) (domain.Comment, error)
		ListComments(ctx context.Context, recipeID string) ([]domain.Comment, error)
		RecordView(ctx context.Context, recipeID, viewerID, sourceAddress string) error
	}

	// UserFinder is the slice of the user store follow operations need. Satisfied
	// by the user repository.
	UserFinder interface {
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
	}

	engagementService struct {
		engagementRepository EngagementRepository
		recipeRepository     recipe.RecipeRepository
		users                UserFinder
	}
)

func NewEngagementService(engagementRepository EngagementRepository, recipeRepository recipe.RecipeRepository, users UserFinder) EngagementService {
	return &engagementService{
		engagementRepository: engagementRepository,
		recipeRepository:     recipeRepository,
		users:                users,
	}
}

// resolveRecipePair validates both ids and checks the recipe exists.
func (s *engagementService) resolveRecipePair(ctx context.Context, recipeID, actorID string) (uuid.UUID, uuid.UUID, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrParseUUID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, uuid.Nil, domain.ErrRecipeNotFound
		}
		return uuid.Nil, uuid.Nil, err
	}

	return recipeUUID, actorUUID, nil
}

func (s *engagementService) LikeRecipe(ctx context.Context, recipeID, actorID string) error {
	recipeUUID, actorUUID, err := s.resolveRecipePair(ctx, recipeID, actorID)
	if err != nil {
		return err
	}
	return s.engagementRepository.Like(ctx, recipeUUID, actorUUID)
}

func (s *engagementService) UnlikeRecipe(ctx context.Context, recipeID, actorID string) error {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.engagementRepository.Unlike(ctx, recipeUUID, actorUUID)
}

func (s *engagementService) FavoriteRecipe(ctx context.Context, recipeID, actorID string) error {
	recipeUUID, actorUUID, err := s.resolveRecipePair(ctx, recipeID, actorID)
	if err != nil {
		return err
	}
	return s.engagementRepository.Favorite(ctx, recipeUUID, actorUUID)
}

func (s *engagementService) UnfavoriteRecipe(ctx context.Context, recipeID, actorID string) error {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.engagementRepository.Unfavorite(ctx, recipeUUID, actorUUID)
}

func (s *engagementService) FollowUser(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		return domain.ErrSelfFollow
	}
	followerUUID, err := uuid.Parse(followerID)
	if err != nil {
		return domain.ErrParseUUID
	}
	followeeUUID, err := uuid.Parse(followeeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.users.GetUserByID(ctx, followeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	return s.engagementRepository.Follow(ctx, followerUUID, followeeUUID)
}

func (s *engagementService) UnfollowUser(ctx context.Context, followerID, followeeID string) error {
	followerUUID, err := uuid.Parse(followerID)
	if err != nil {
		return domain.ErrParseUUID
	}
	followeeUUID, err := uuid.Parse(followeeID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.engagementRepository.Unfollow(ctx, followerUUID, followeeUUID)
}

func (s *engagementService) AddComment(ctx context.Context, recipeID, actorID string, req domain.AddCommentRequest) (domain.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return domain.Comment{}, domain.ErrEmptyComment
	}

	recipeUUID, actorUUID, err := s.resolveRecipePair(ctx, recipeID, actorID)
	if err != nil {
		return domain.Comment{}, err
	}

	comment := &entities.Comment{
		ID:        uuid.New(),
		RecipeID:  recipeUUID,
		UserID:    actorUUID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.engagementRepository.CreateComment(ctx, comment); err != nil {
		return domain.Comment{}, err
	}

	return domain.Comment{
		ID:        comment.ID.String(),
		RecipeID:  comment.RecipeID.String(),
		UserID:    comment.UserID.String(),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}, nil
}

// ListComments re-queries on every call; there is no cursor state, so the result
// always reflects the current log, newest first.
func (s *engagementService) ListComments(ctx context.Context, recipeID string) ([]domain.Comment, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	comments, err := s.engagementRepository.GetComments(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Comment, 0, len(comments))
	for _, comment := range comments {
		item := domain.Comment{
			ID:        comment.ID.String(),
			RecipeID:  comment.RecipeID.String(),
			UserID:    comment.UserID.String(),
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
		if comment.User != nil {
			item.AuthorName = comment.User.Username
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *engagementService) RecordView(ctx context.Context, recipeID, viewerID, sourceAddress string) error {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	view := &entities.RecipeView{
		ID:            uuid.New(),
		RecipeID:      recipeUUID,
		SourceAddress: sourceAddress,
		CreatedAt:     time.Now(),
	}
	if viewerID != "" {
		viewerUUID, err := uuid.Parse(viewerID)
		if err != nil {
			return domain.ErrParseUUID
		}
		view.ViewerID = &viewerUUID
	}

	if err := s.engagementRepository.RecordView(ctx, view); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}
