package recipe

import (
	"context"
	"errors"
	"testing"
	"time"

	"recipehub/domain"
	"recipehub/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) ListRecipes(ctx context.Context, filter domain.RecipeFilter, page, perPage int) ([]*entities.Recipe, int64, error) {
	args := m.Called(ctx, filter, page, perPage)
	return args.Get(0).([]*entities.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) DeleteRecipeCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) SumViewsByOwner(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) GetRecentByOwner(ctx context.Context, ownerID string, limit int) ([]*entities.Recipe, error) {
	args := m.Called(ctx, ownerID, limit)
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetCreationDays(ctx context.Context, ownerID string) ([]time.Time, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]time.Time), args.Error(1)
}

type MockEngagementCounter struct {
	mock.Mock
}

func (m *MockEngagementCounter) CountLikes(ctx context.Context, recipeID string) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementCounter) CountComments(ctx context.Context, recipeID string) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEngagementCounter) IsLiked(ctx context.Context, recipeID, userID string) (bool, error) {
	args := m.Called(ctx, recipeID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEngagementCounter) IsFavorited(ctx context.Context, recipeID, userID string) (bool, error) {
	args := m.Called(ctx, recipeID, userID)
	return args.Bool(0), args.Error(1)
}

func newTestService() (RecipeService, *MockRecipeRepository, *MockEngagementCounter) {
	repo := new(MockRecipeRepository)
	counter := new(MockEngagementCounter)
	return NewRecipeService(repo, counter, nil), repo, counter
}

func allowCounterCalls(counter *MockEngagementCounter) {
	counter.On("CountLikes", mock.Anything, mock.Anything).Return(int64(0), nil)
	counter.On("CountComments", mock.Anything, mock.Anything).Return(int64(0), nil)
	counter.On("IsLiked", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	counter.On("IsFavorited", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
}

func TestCreateRecipe_Validation(t *testing.T) {
	userID := uuid.New().String()

	tests := []struct {
		name string
		req  domain.CreateRecipeRequest
		err  error
	}{
		{
			name: "missing title",
			req:  domain.CreateRecipeRequest{Title: "   ", Category: "dessert", Difficulty: "easy"},
			err:  domain.ErrMissingTitle,
		},
		{
			name: "missing category",
			req:  domain.CreateRecipeRequest{Title: "Brownies", Category: "", Difficulty: "easy"},
			err:  domain.ErrMissingCategory,
		},
		{
			name: "invalid difficulty",
			req:  domain.CreateRecipeRequest{Title: "Brownies", Category: "dessert", Difficulty: "impossible"},
			err:  domain.ErrInvalidDifficulty,
		},
		{
			name: "negative prep time",
			req:  domain.CreateRecipeRequest{Title: "Brownies", Category: "dessert", Difficulty: "easy", PrepTimeMinutes: -5},
			err:  domain.ErrNegativeDuration,
		},
		{
			name: "negative servings",
			req:  domain.CreateRecipeRequest{Title: "Brownies", Category: "dessert", Difficulty: "easy", Servings: -1},
			err:  domain.ErrInvalidServings,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := newTestService()

			_, err := service.CreateRecipe(context.Background(), tt.req, userID)

			assert.ErrorIs(t, err, tt.err)
			repo.AssertNotCalled(t, "CreateRecipe", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateRecipe_NormalizesFields(t *testing.T) {
	service, repo, counter := newTestService()
	allowCounterCalls(counter)
	userID := uuid.New().String()

	var stored *entities.Recipe
	repo.On("CreateRecipe", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*entities.Recipe)
	}).Return(nil)

	res, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:        "  Brownies  ",
		Category:     "dessert",
		Difficulty:   " Medium ",
		Ingredients:  []string{" flour ", "", "cocoa"},
		Instructions: []string{"mix", "  ", "bake"},
		Tags:         []string{"sweet", "baking", "sweet", ""},
	}, userID)

	assert.NoError(t, err)
	assert.Equal(t, "Brownies", stored.Title)
	assert.Equal(t, "medium", stored.Difficulty)
	assert.Equal(t, 1, stored.Servings)
	assert.Equal(t, entities.StringList{"flour", "cocoa"}, stored.Ingredients)
	assert.Equal(t, entities.StringList{"mix", "bake"}, stored.Instructions)
	assert.Equal(t, entities.StringSet{"baking", "sweet"}, stored.Tags)
	assert.Equal(t, []string{"baking", "sweet"}, res.Tags)
}

func TestGetRecipe_NotFound(t *testing.T) {
	service, repo, _ := newTestService()
	repo.On("GetRecipeByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetRecipe(context.Background(), "missing", "")

	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

// A failing engagement read must fail the whole response rather than hand
// back a recipe with counts silently zeroed.
func TestGetRecipe_CounterFailureSurfaces(t *testing.T) {
	service, repo, counter := newTestService()
	owner := uuid.New()

	existing := &entities.Recipe{ID: uuid.New(), UserID: owner, Title: "Brownies"}
	repo.On("GetRecipeByID", mock.Anything, existing.ID.String()).Return(existing, nil)

	countErr := errors.New("likes table unavailable")
	counter.On("CountLikes", mock.Anything, existing.ID.String()).Return(int64(0), countErr)

	_, err := service.GetRecipe(context.Background(), existing.ID.String(), "")

	assert.ErrorIs(t, err, countErr)
}

func TestListRecipes_ClampsPagination(t *testing.T) {
	service, repo, counter := newTestService()
	allowCounterCalls(counter)

	repo.On("ListRecipes", mock.Anything, mock.Anything, 1, domain.MaxPerPage).
		Return([]*entities.Recipe{}, int64(0), nil)

	res, err := service.ListRecipes(context.Background(), domain.RecipeFilter{}, -3, 500, "")

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Pagination.Page)
	assert.Equal(t, domain.MaxPerPage, res.Pagination.PerPage)
	repo.AssertExpectations(t)
}

func TestListRecipes_DefaultPerPage(t *testing.T) {
	service, repo, counter := newTestService()
	allowCounterCalls(counter)

	repo.On("ListRecipes", mock.Anything, mock.Anything, 1, domain.DefaultPerPage).
		Return([]*entities.Recipe{}, int64(0), nil)

	_, err := service.ListRecipes(context.Background(), domain.RecipeFilter{}, 0, 0, "")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateRecipe_NotOwner(t *testing.T) {
	service, repo, _ := newTestService()
	owner := uuid.New()
	stranger := uuid.New().String()

	existing := &entities.Recipe{ID: uuid.New(), UserID: owner, Title: "Brownies"}
	repo.On("GetRecipeByID", mock.Anything, existing.ID.String()).Return(existing, nil)

	title := "Hijacked"
	_, err := service.UpdateRecipe(context.Background(), existing.ID.String(), domain.UpdateRecipeRequest{Title: &title}, stranger)

	assert.ErrorIs(t, err, domain.ErrNotRecipeOwner)
	repo.AssertNotCalled(t, "UpdateRecipe", mock.Anything, mock.Anything)
}

func TestUpdateRecipe_PartialFields(t *testing.T) {
	service, repo, counter := newTestService()
	allowCounterCalls(counter)
	owner := uuid.New()

	existing := &entities.Recipe{
		ID:          uuid.New(),
		UserID:      owner,
		Title:       "Brownies",
		Description: "fudgy",
		Category:    "dessert",
		Difficulty:  entities.DifficultyEasy,
		Servings:    4,
	}
	repo.On("GetRecipeByID", mock.Anything, existing.ID.String()).Return(existing, nil)
	repo.On("UpdateRecipe", mock.Anything, mock.Anything).Return(nil)

	description := "extra fudgy"
	res, err := service.UpdateRecipe(context.Background(), existing.ID.String(), domain.UpdateRecipeRequest{
		Description: &description,
	}, owner.String())

	assert.NoError(t, err)
	assert.Equal(t, "Brownies", res.Title)
	assert.Equal(t, "extra fudgy", res.Description)
	assert.Equal(t, 4, res.Servings)
}

func TestUpdateRecipe_RejectsInvalidPatch(t *testing.T) {
	service, repo, _ := newTestService()
	owner := uuid.New()

	existing := &entities.Recipe{ID: uuid.New(), UserID: owner, Title: "Brownies"}
	repo.On("GetRecipeByID", mock.Anything, existing.ID.String()).Return(existing, nil)

	servings := 0
	_, err := service.UpdateRecipe(context.Background(), existing.ID.String(), domain.UpdateRecipeRequest{Servings: &servings}, owner.String())

	assert.ErrorIs(t, err, domain.ErrInvalidServings)
	repo.AssertNotCalled(t, "UpdateRecipe", mock.Anything, mock.Anything)
}

func TestDeleteRecipe_Cascades(t *testing.T) {
	service, repo, _ := newTestService()
	owner := uuid.New()

	existing := &entities.Recipe{ID: uuid.New(), UserID: owner}
	repo.On("GetRecipeByID", mock.Anything, existing.ID.String()).Return(existing, nil)
	repo.On("DeleteRecipeCascade", mock.Anything, existing.ID).Return(nil)

	err := service.DeleteRecipe(context.Background(), existing.ID.String(), owner.String())

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
