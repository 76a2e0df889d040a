package feed

import (
	"context"
	"sort"

	"recipehub/domain"
	"recipehub/entities"
	"recipehub/pkg/engagement"
)

const DefaultActivityLimit = 5

type (
	// FeedService merges the engagement events targeting a user's content into
	// one globally time-ordered recent-activity feed.
	FeedService interface {
		ComputeRecentActivity(ctx context.Context, userID string, limit int) ([]domain.ActivityItem, error)
	}

	feedService struct {
		engagementRepository engagement.EngagementRepository
	}
)

func NewFeedService(engagementRepository engagement.EngagementRepository) FeedService {
	return &feedService{engagementRepository: engagementRepository}
}

func (s *feedService) ComputeRecentActivity(ctx context.Context, userID string, limit int) ([]domain.ActivityItem, error) {
	if limit < 1 {
		limit = DefaultActivityLimit
	}

	// Every source fetches a full `limit` window. A smaller per-source window
	// could drop genuinely recent items from a source that dominates the top
	// of the feed and let stale items from the others in.
	likes, err := s.engagementRepository.GetRecentLikesReceived(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	comments, err := s.engagementRepository.GetRecentCommentsReceived(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	follows, err := s.engagementRepository.GetRecentFollowsReceived(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	return mergeActivity(limit, likeItems(likes), commentItems(comments), followItems(follows)), nil
}

func likeItems(likes []*entities.Like) []domain.ActivityItem {
	items := make([]domain.ActivityItem, 0, len(likes))
	for _, like := range likes {
		item := domain.ActivityItem{
			ID:        like.ID.String(),
			Type:      domain.ActivityLike,
			ActorID:   like.UserID.String(),
			RecipeID:  like.RecipeID.String(),
			CreatedAt: like.CreatedAt,
		}
		if like.User != nil {
			item.ActorName = like.User.Username
		}
		if like.Recipe != nil {
			item.RecipeTitle = like.Recipe.Title
		}
		items = append(items, item)
	}
	return items
}

func commentItems(comments []*entities.Comment) []domain.ActivityItem {
	items := make([]domain.ActivityItem, 0, len(comments))
	for _, comment := range comments {
		item := domain.ActivityItem{
			ID:        comment.ID.String(),
			Type:      domain.ActivityComment,
			ActorID:   comment.UserID.String(),
			RecipeID:  comment.RecipeID.String(),
			CreatedAt: comment.CreatedAt,
		}
		if comment.User != nil {
			item.ActorName = comment.User.Username
		}
		if comment.Recipe != nil {
			item.RecipeTitle = comment.Recipe.Title
		}
		items = append(items, item)
	}
	return items
}

func followItems(follows []*entities.Follow) []domain.ActivityItem {
	items := make([]domain.ActivityItem, 0, len(follows))
	for _, follow := range follows {
		item := domain.ActivityItem{
			ID:        follow.ID.String(),
			Type:      domain.ActivityFollow,
			ActorID:   follow.FollowerID.String(),
			CreatedAt: follow.CreatedAt,
		}
		if follow.Follower != nil {
			item.ActorName = follow.Follower.Username
		}
		items = append(items, item)
	}
	return items
}

var sourceRank = map[string]int{
	domain.ActivityLike:    0,
	domain.ActivityComment: 1,
	domain.ActivityFollow:  2,
}

// moreRecent reports whether a sorts before b in the merged feed: newest first,
// then like > comment > follow, then id descending.
func moreRecent(a, b domain.ActivityItem) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	if sourceRank[a.Type] != sourceRank[b.Type] {
		return sourceRank[a.Type] < sourceRank[b.Type]
	}
	return a.ID > b.ID
}

// mergeActivity k-way merges the per-source windows and truncates to limit.
// Each window is re-sorted first so equal-timestamp items inside one source
// come out id-descending regardless of the order the store returned them in.
func mergeActivity(limit int, sources ...[]domain.ActivityItem) []domain.ActivityItem {
	for _, source := range sources {
		sort.SliceStable(source, func(i, j int) bool {
			return moreRecent(source[i], source[j])
		})
	}

	heads := make([]int, len(sources))
	merged := make([]domain.ActivityItem, 0, limit)

	for len(merged) < limit {
		best := -1
		for i, source := range sources {
			if heads[i] >= len(source) {
				continue
			}
			if best == -1 || moreRecent(source[heads[i]], sources[best][heads[best]]) {
				best = i
			}
		}
		if best == -1 {
			break
		}
		merged = append(merged, sources[best][heads[best]])
		heads[best]++
	}

	return merged
}
