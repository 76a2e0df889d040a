package engagement

import (
	"context"
	"testing"
	"time"

	"recipehub/domain"
	"recipehub/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) Like(ctx context.Context, recipeID, userID uuid.UUID) error {
	args := m.Called(ctx, recipeID, userID)
	return args.Error(0)
}

func (m *MockEngagementRepository) Unlike(ctx context.Context, recipeID, userID uuid.UUID) error {
	args := m.Called(ctx, recipeID, userID)
	return args.Error(0)
}

func (m *MockEngagementRepository) Favorite(ctx context.Context, recipeID, userID uuid.UUID) error {
	args := m.Called(ctx, recipeID, userID)
	return args.Error(0)
}

func (m *MockEngagementRepository) Unfavorite(ctx context.Context, recipeID, userID uuid.UUID) error {
	args := m.Called(ctx, recipeID, userID)
	return args.Error(0)
}

func (m *MockEngagementRepository) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockEngagementRepository) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockEngagementRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockEngagementRepository) GetComments(ctx context.Context, recipeID string) ([]*entities.Comment, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).([]*entities.Comment), args.Error(1)
}

func (m *MockEngagementRepository) RecordView(ctx context.Context, view *entities.RecipeView) error {
	args := m.Called(ctx, view)
	return args.Error(0)
}

func (m *MockEngagementRepository) CountLikes(ctx context.Context, recipeID string) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementRepository) CountComments(ctx context.Context, recipeID string) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementRepository) IsLiked(ctx context.Context, recipeID, userID string) (bool, error) {
	args := m.Called(ctx, recipeID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) IsFavorited(ctx context.Context, recipeID, userID string) (bool, error) {
	args := m.Called(ctx, recipeID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementRepository) CountLikesReceived(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementRepository) GetRecentLikesReceived(ctx context.Context, ownerID string, limit int) ([]*entities.Like, error) {
	args := m.Called(ctx, ownerID, limit)
	return args.Get(0).([]*entities.Like), args.Error(1)
}

func (m *MockEngagementRepository) GetRecentCommentsReceived(ctx context.Context, ownerID string, limit int) ([]*entities.Comment, error) {
	args := m.Called(ctx, ownerID, limit)
	return args.Get(0).([]*entities.Comment), args.Error(1)
}

func (m *MockEngagementRepository) GetRecentFollowsReceived(ctx context.Context, userID string, limit int) ([]*entities.Follow, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]*entities.Follow), args.Error(1)
}

// MockRecipeStore covers only the recipe repository methods the engagement
// service reaches for.
type MockRecipeStore struct {
	mock.Mock
}

func (m *MockRecipeStore) CreateRecipe(ctx context.Context, r *entities.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipeStore) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *MockRecipeStore) ListRecipes(ctx context.Context, filter domain.RecipeFilter, page, perPage int) ([]*entities.Recipe, int64, error) {
	args := m.Called(ctx, filter, page, perPage)
	return args.Get(0).([]*entities.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeStore) UpdateRecipe(ctx context.Context, r *entities.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipeStore) DeleteRecipeCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeStore) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeStore) SumViewsByOwner(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeStore) GetRecentByOwner(ctx context.Context, ownerID string, limit int) ([]*entities.Recipe, error) {
	args := m.Called(ctx, ownerID, limit)
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *MockRecipeStore) GetCreationDays(ctx context.Context, ownerID string) ([]time.Time, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]time.Time), args.Error(1)
}

type MockUserFinder struct {
	mock.Mock
}

func (m *MockUserFinder) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func newTestService() (EngagementService, *MockEngagementRepository, *MockRecipeStore, *MockUserFinder) {
	engagementRepo := new(MockEngagementRepository)
	recipeRepo := new(MockRecipeStore)
	users := new(MockUserFinder)
	return NewEngagementService(engagementRepo, recipeRepo, users), engagementRepo, recipeRepo, users
}

func TestLikeRecipe_RecipeMissing(t *testing.T) {
	service, engagementRepo, recipeRepo, _ := newTestService()
	recipeID := uuid.New().String()
	actorID := uuid.New().String()

	recipeRepo.On("GetRecipeByID", mock.Anything, recipeID).Return(nil, gorm.ErrRecordNotFound)

	err := service.LikeRecipe(context.Background(), recipeID, actorID)

	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	engagementRepo.AssertNotCalled(t, "Like", mock.Anything, mock.Anything, mock.Anything)
}

func TestLikeRecipe_Delegates(t *testing.T) {
	service, engagementRepo, recipeRepo, _ := newTestService()
	recipeUUID := uuid.New()
	actorUUID := uuid.New()

	recipeRepo.On("GetRecipeByID", mock.Anything, recipeUUID.String()).
		Return(&entities.Recipe{ID: recipeUUID}, nil)
	engagementRepo.On("Like", mock.Anything, recipeUUID, actorUUID).Return(nil)

	err := service.LikeRecipe(context.Background(), recipeUUID.String(), actorUUID.String())

	assert.NoError(t, err)
	engagementRepo.AssertExpectations(t)
}

func TestLikeRecipe_BadID(t *testing.T) {
	service, engagementRepo, _, _ := newTestService()

	err := service.LikeRecipe(context.Background(), "not-a-uuid", uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrParseUUID)
	engagementRepo.AssertNotCalled(t, "Like", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnlikeRecipe_SkipsExistenceCheck(t *testing.T) {
	service, engagementRepo, recipeRepo, _ := newTestService()
	recipeUUID := uuid.New()
	actorUUID := uuid.New()

	engagementRepo.On("Unlike", mock.Anything, recipeUUID, actorUUID).Return(nil)

	err := service.UnlikeRecipe(context.Background(), recipeUUID.String(), actorUUID.String())

	assert.NoError(t, err)
	recipeRepo.AssertNotCalled(t, "GetRecipeByID", mock.Anything, mock.Anything)
}

func TestFollowUser_Self(t *testing.T) {
	service, engagementRepo, _, _ := newTestService()
	userID := uuid.New().String()

	err := service.FollowUser(context.Background(), userID, userID)

	assert.ErrorIs(t, err, domain.ErrSelfFollow)
	engagementRepo.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything, mock.Anything)
}

func TestFollowUser_FolloweeMissing(t *testing.T) {
	service, engagementRepo, _, users := newTestService()
	followerID := uuid.New().String()
	followeeID := uuid.New().String()

	users.On("GetUserByID", mock.Anything, followeeID).Return(nil, gorm.ErrRecordNotFound)

	err := service.FollowUser(context.Background(), followerID, followeeID)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	engagementRepo.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything, mock.Anything)
}

func TestFollowUser_Delegates(t *testing.T) {
	service, engagementRepo, _, users := newTestService()
	followerUUID := uuid.New()
	followeeUUID := uuid.New()

	users.On("GetUserByID", mock.Anything, followeeUUID.String()).
		Return(&entities.User{ID: followeeUUID}, nil)
	engagementRepo.On("Follow", mock.Anything, followerUUID, followeeUUID).Return(nil)

	err := service.FollowUser(context.Background(), followerUUID.String(), followeeUUID.String())

	assert.NoError(t, err)
	engagementRepo.AssertExpectations(t)
}

func TestAddComment_Empty(t *testing.T) {
	service, engagementRepo, _, _ := newTestService()

	_, err := service.AddComment(context.Background(), uuid.New().String(), uuid.New().String(), domain.AddCommentRequest{Content: "   "})

	assert.ErrorIs(t, err, domain.ErrEmptyComment)
	engagementRepo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
}

func TestAddComment_TrimsContent(t *testing.T) {
	service, engagementRepo, recipeRepo, _ := newTestService()
	recipeUUID := uuid.New()
	actorUUID := uuid.New()

	recipeRepo.On("GetRecipeByID", mock.Anything, recipeUUID.String()).
		Return(&entities.Recipe{ID: recipeUUID}, nil)

	var stored *entities.Comment
	engagementRepo.On("CreateComment", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*entities.Comment)
	}).Return(nil)

	res, err := service.AddComment(context.Background(), recipeUUID.String(), actorUUID.String(), domain.AddCommentRequest{Content: "  looks great  "})

	assert.NoError(t, err)
	assert.Equal(t, "looks great", stored.Content)
	assert.Equal(t, "looks great", res.Content)
	assert.Equal(t, recipeUUID.String(), res.RecipeID)
}

func TestRecordView_AnonymousViewer(t *testing.T) {
	service, engagementRepo, _, _ := newTestService()
	recipeUUID := uuid.New()

	var stored *entities.RecipeView
	engagementRepo.On("RecordView", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*entities.RecipeView)
	}).Return(nil)

	err := service.RecordView(context.Background(), recipeUUID.String(), "", "203.0.113.9")

	assert.NoError(t, err)
	assert.Nil(t, stored.ViewerID)
	assert.Equal(t, "203.0.113.9", stored.SourceAddress)
}

func TestRecordView_RecipeMissing(t *testing.T) {
	service, engagementRepo, _, _ := newTestService()

	engagementRepo.On("RecordView", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)

	err := service.RecordView(context.Background(), uuid.New().String(), "", "203.0.113.9")

	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestListComments_AlwaysRequeries(t *testing.T) {
	service, engagementRepo, recipeRepo, _ := newTestService()
	recipeUUID := uuid.New()

	recipeRepo.On("GetRecipeByID", mock.Anything, recipeUUID.String()).
		Return(&entities.Recipe{ID: recipeUUID}, nil)
	engagementRepo.On("GetComments", mock.Anything, recipeUUID.String()).
		Return([]*entities.Comment{
			{ID: uuid.New(), RecipeID: recipeUUID, UserID: uuid.New(), Content: "nice", User: &entities.User{Username: "ana"}},
		}, nil)

	res, err := service.ListComments(context.Background(), recipeUUID.String())

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "ana", res[0].AuthorName)
	engagementRepo.AssertNumberOfCalls(t, "GetComments", 1)

	_, err = service.ListComments(context.Background(), recipeUUID.String())
	assert.NoError(t, err)
	engagementRepo.AssertNumberOfCalls(t, "GetComments", 2)
}
