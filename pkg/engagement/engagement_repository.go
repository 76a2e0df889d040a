package engagement

import (
	"context"
	"time"

	"recipehub/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	EngagementRepository interface {
		Like(ctx context.Context, recipeID, userID uuid.UUID) error
		Unlike(ctx context.Context, recipeID, userID uuid.UUID) error
		Favorite(ctx context.Context, recipeID, userID uuid.UUID) error
		Unfavorite(ctx context.Context, recipeID, userID uuid.UUID) error
		Follow(ctx context.Context, followerID, followeeID uuid.UUID) error
		Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error

		CreateComment(ctx context.Context, comment *entities.Comment) error
		GetComments(ctx context.Context, recipeID string) ([]*entities.Comment, error)

		RecordView(ctx context.Context, view *entities.RecipeView) error

		CountLikes(ctx context.Context, recipeID string) (int64, error)
		CountComments(ctx context.Context, recipeID string) (int64, error)
		IsLiked(ctx context.Context, recipeID, userID string) (bool, error)
		IsFavorited(ctx context.Context, recipeID, userID string) (bool, error)

		CountLikesReceived(ctx context.Context, ownerID string) (int64, error)
		CountFollowers(ctx context.Context, userID string) (int64, error)
		CountFollowing(ctx context.Context, userID string) (int64, error)

		GetRecentLikesReceived(ctx context.Context, ownerID string, limit int) ([]*entities.Like, error)
		GetRecentCommentsReceived(ctx context.Context, ownerID string, limit int) ([]*entities.Comment, error)
		GetRecentFollowsReceived(ctx context.Context, userID string, limit int) ([]*entities.Follow, error)
	}

	engagementRepository struct {
		db *gorm.DB
	}
)

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

// Like inserts through ON CONFLICT DO NOTHING against the (recipe_id, user_id)
// unique index, so repeated and concurrent likes leave exactly one row.
func (r *engagementRepository) Like(ctx context.Context, recipeID, userID uuid.UUID) error {
	like := entities.Like{
		ID:        uuid.New(),
		RecipeID:  recipeID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
}

func (r *engagementRepository) Unlike(ctx context.Context, recipeID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&entities.Like{}).Error
}

func (r *engagementRepository) Favorite(ctx context.Context, recipeID, userID uuid.UUID) error {
	favorite := entities.Favorite{
		ID:        uuid.New(),
		RecipeID:  recipeID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&favorite).Error
}

func (r *engagementRepository) Unfavorite(ctx context.Context, recipeID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&entities.Favorite{}).Error
}

func (r *engagementRepository) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	follow := entities.Follow{
		ID:         uuid.New(),
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow).Error
}

func (r *engagementRepository) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&entities.Follow{}).Error
}

func (r *engagementRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *engagementRepository) GetComments(ctx context.Context, recipeID string) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("created_at desc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// RecordView appends one view row and bumps the recipe's denormalized counter in
// the same transaction. The counter and the log move in lockstep or not at all.
func (r *engagementRepository) RecordView(ctx context.Context, view *entities.RecipeView) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Recipe{}).
			Where("id = ?", view.RecipeID).
			UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(view).Error
	})
}

func (r *engagementRepository) CountLikes(ctx context.Context, recipeID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *engagementRepository) CountComments(ctx context.Context, recipeID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *engagementRepository) IsLiked(ctx context.Context, recipeID, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *engagementRepository) IsFavorited(ctx context.Context, recipeID, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *engagementRepository) CountLikesReceived(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Joins("JOIN recipes ON recipes.id = likes.recipe_id").
		Where("recipes.user_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *engagementRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("followee_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *engagementRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *engagementRepository) GetRecentLikesReceived(ctx context.Context, ownerID string, limit int) ([]*entities.Like, error) {
	var likes []*entities.Like
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Recipe").
		Joins("JOIN recipes ON recipes.id = likes.recipe_id").
		Where("recipes.user_id = ?", ownerID).
		Order("likes.created_at desc, likes.id desc").
		Limit(limit).
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *engagementRepository) GetRecentCommentsReceived(ctx context.Context, ownerID string, limit int) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Recipe").
		Joins("JOIN recipes ON recipes.id = comments.recipe_id").
		Where("recipes.user_id = ?", ownerID).
		Order("comments.created_at desc, comments.id desc").
		Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *engagementRepository) GetRecentFollowsReceived(ctx context.Context, userID string, limit int) ([]*entities.Follow, error) {
	var follows []*entities.Follow
	if err := r.db.WithContext(ctx).
		Preload("Follower").
		Where("followee_id = ?", userID).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&follows).Error; err != nil {
		return nil, err
	}
	return follows, nil
}
