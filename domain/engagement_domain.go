package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLike        = "recipe liked"
	MessageSuccessUnlike      = "recipe unliked"
	MessageSuccessFavorite    = "recipe favorited"
	MessageSuccessUnfavorite  = "recipe unfavorited"
	MessageSuccessFollow      = "user followed"
	MessageSuccessUnfollow    = "user unfollowed"
	MessageSuccessAddComment  = "comment added"
	MessageSuccessGetComments = "success get comments"

	MessageFailedLike        = "failed to like recipe"
	MessageFailedUnlike      = "failed to unlike recipe"
	MessageFailedFavorite    = "failed to favorite recipe"
	MessageFailedUnfavorite  = "failed to unfavorite recipe"
	MessageFailedFollow      = "failed to follow user"
	MessageFailedUnfollow    = "failed to unfollow user"
	MessageFailedAddComment  = "failed to add comment"
	MessageFailedGetComments = "failed to get comments"

	ErrSelfFollow   = errors.New("users cannot follow themselves")
	ErrEmptyComment = errors.New("comment content must not be empty")
)

type (
	AddCommentRequest struct {
		Content string `json:"content" validate:"required"`
	}

	Comment struct {
		ID         string    `json:"id"`
		RecipeID   string    `json:"recipe_id"`
		UserID     string    `json:"user_id"`
		AuthorName string    `json:"author_name,omitempty"`
		Content    string    `json:"content"`
		CreatedAt  time.Time `json:"created_at"`
	}
)
