package domain

import (
	"time"
)

var (
	MessageSuccessGetDashboard = "success get dashboard"
	MessageFailedGetDashboard  = "failed to get dashboard"
)

const (
	ActivityLike    = "like"
	ActivityComment = "comment"
	ActivityFollow  = "follow"
)

type (
	// UserStats is derived on demand; no stored copy is authoritative.
	UserStats struct {
		RecipeCount    int64 `json:"recipe_count"`
		LikeCount      int64 `json:"like_count"`
		FollowerCount  int64 `json:"follower_count"`
		FollowingCount int64 `json:"following_count"`
		ViewCount      int64 `json:"view_count"`
		StreakDays     int   `json:"streak_days"`
	}

	// ActivityItem is one engagement event targeting a user's content: a like or
	// comment on one of their recipes, or a new follower.
	ActivityItem struct {
		ID          string    `json:"id"`
		Type        string    `json:"type"`
		ActorID     string    `json:"actor_id"`
		ActorName   string    `json:"actor_name,omitempty"`
		RecipeID    string    `json:"recipe_id,omitempty"`
		RecipeTitle string    `json:"recipe_title,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	DashboardResponse struct {
		Stats         UserStats      `json:"stats"`
		Activities    []ActivityItem `json:"activities"`
		RecentRecipes []Recipe       `json:"recent_recipes"`
	}
)
