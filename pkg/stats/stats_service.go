package stats

import (
	"context"
	"time"

	"recipehub/domain"
	"recipehub/entities"
	"recipehub/pkg/engagement"
	"recipehub/pkg/feed"
	"recipehub/pkg/recipe"
)

const dashboardRecentRecipes = 5

type (
	// StatsService derives per-user counters on demand. Nothing here is cached;
	// the stored relations are always the source of truth.
	StatsService interface {
		ComputeUserStats(ctx context.Context, userID string) (domain.UserStats, error)
		ComputeDashboard(ctx context.Context, userID string) (domain.DashboardResponse, error)
	}

	statsService struct {
		recipeRepository     recipe.RecipeRepository
		engagementRepository engagement.EngagementRepository
		feedService          feed.FeedService
	}
)

func NewStatsService(recipeRepository recipe.RecipeRepository, engagementRepository engagement.EngagementRepository, feedService feed.FeedService) StatsService {
	return &statsService{
		recipeRepository:     recipeRepository,
		engagementRepository: engagementRepository,
		feedService:          feedService,
	}
}

func (s *statsService) ComputeUserStats(ctx context.Context, userID string) (domain.UserStats, error) {
	recipeCount, err := s.recipeRepository.CountByOwner(ctx, userID)
	if err != nil {
		return domain.UserStats{}, err
	}

	likeCount, err := s.engagementRepository.CountLikesReceived(ctx, userID)
	if err != nil {
		return domain.UserStats{}, err
	}

	followerCount, err := s.engagementRepository.CountFollowers(ctx, userID)
	if err != nil {
		return domain.UserStats{}, err
	}

	followingCount, err := s.engagementRepository.CountFollowing(ctx, userID)
	if err != nil {
		return domain.UserStats{}, err
	}

	// The denormalized recipe counters are authoritative for views; the view
	// transaction keeps them equal to the raw log by construction.
	viewCount, err := s.recipeRepository.SumViewsByOwner(ctx, userID)
	if err != nil {
		return domain.UserStats{}, err
	}

	days, err := s.recipeRepository.GetCreationDays(ctx, userID)
	if err != nil {
		return domain.UserStats{}, err
	}

	return domain.UserStats{
		RecipeCount:    recipeCount,
		LikeCount:      likeCount,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		ViewCount:      viewCount,
		StreakDays:     streakDays(days, time.Now()),
	}, nil
}

func (s *statsService) ComputeDashboard(ctx context.Context, userID string) (domain.DashboardResponse, error) {
	userStats, err := s.ComputeUserStats(ctx, userID)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	activities, err := s.feedService.ComputeRecentActivity(ctx, userID, feed.DefaultActivityLimit)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	recent, err := s.recipeRepository.GetRecentByOwner(ctx, userID, dashboardRecentRecipes)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	recipes := make([]domain.Recipe, 0, len(recent))
	for _, r := range recent {
		recipes = append(recipes, recipeSummary(r))
	}

	return domain.DashboardResponse{
		Stats:         userStats,
		Activities:    activities,
		RecentRecipes: recipes,
	}, nil
}

// recipeSummary maps the stored recipe without engagement enrichment; the
// dashboard only shows the owner's own recent recipes.
func recipeSummary(r *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:              r.ID.String(),
		UserID:          r.UserID.String(),
		Title:           r.Title,
		Description:     r.Description,
		Category:        r.Category,
		Difficulty:      r.Difficulty,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Servings:        r.Servings,
		Ingredients:     r.Ingredients,
		Instructions:    r.Instructions,
		Tags:            r.Tags,
		ImageURL:        r.ImageURL,
		VideoURL:        r.VideoURL,
		ViewCount:       r.ViewCount,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// streakDays counts the consecutive run of calendar days ending today on which
// the user created at least one recipe. days must be distinct creation days,
// newest first. A run that does not include today counts as zero.
func streakDays(days []time.Time, today time.Time) int {
	expected := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	streak := 0
	for _, d := range days {
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		if !day.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
