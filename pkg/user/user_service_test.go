package user

import (
	"context"
	"testing"
	"time"

	"recipehub/domain"
	"recipehub/entities"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, u *entities.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, u *entities.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) ReplaceResetCode(ctx context.Context, reset *entities.PasswordReset) error {
	args := m.Called(ctx, reset)
	return args.Error(0)
}

func (m *MockUserRepository) GetResetCode(ctx context.Context, email string) (*entities.PasswordReset, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PasswordReset), args.Error(1)
}

func (m *MockUserRepository) DeleteResetCode(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateTokenUser(userID string, role string) string {
	args := m.Called(userID, role)
	return args.String(0)
}

func (m *MockJWTService) ValidateTokenUser(token string) (*gojwt.Token, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gojwt.Token), args.Error(1)
}

func (m *MockJWTService) GetUserIDByToken(token string) (string, string, error) {
	args := m.Called(token)
	return args.String(0), args.String(1), args.Error(2)
}

func newTestService() (UserService, *MockUserRepository, *MockJWTService) {
	repo := new(MockUserRepository)
	jwtService := new(MockJWTService)
	return NewUserService(repo, jwtService, nil), repo, jwtService
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service, repo, _ := newTestService()

	repo.On("GetUserByEmail", mock.Anything, "ana@example.com").
		Return(&entities.User{ID: uuid.New(), Email: "ana@example.com"}, nil)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegister_HashesPassword(t *testing.T) {
	service, repo, _ := newTestService()

	repo.On("GetUserByEmail", mock.Anything, "ana@example.com").Return(nil, gorm.ErrRecordNotFound)

	var stored *entities.User
	repo.On("CreateUser", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*entities.User)
	}).Return(nil)

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "supersecret",
	})

	assert.NoError(t, err)
	assert.NotEqual(t, "supersecret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("supersecret")))
	assert.Equal(t, "ana", res.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	service, repo, jwtService := newTestService()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.DefaultCost)
	repo.On("GetUserByEmail", mock.Anything, "ana@example.com").
		Return(&entities.User{ID: uuid.New(), Email: "ana@example.com", Password: string(hashed)}, nil)

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrongpassword",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	jwtService.AssertNotCalled(t, "GenerateTokenUser", mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	service, repo, _ := newTestService()

	repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	service, repo, jwtService := newTestService()
	userID := uuid.New()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.DefaultCost)
	repo.On("GetUserByEmail", mock.Anything, "ana@example.com").
		Return(&entities.User{ID: userID, Username: "ana", Email: "ana@example.com", Password: string(hashed)}, nil)
	jwtService.On("GenerateTokenUser", userID.String(), domain.RoleUser).Return("signed-token")

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "ana@example.com",
		Password: "rightpassword",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", res.Token)
	assert.Equal(t, "ana", res.User.Username)
}

func TestVerifyResetCode_Expired(t *testing.T) {
	service, repo, _ := newTestService()

	repo.On("GetResetCode", mock.Anything, "ana@example.com").Return(&entities.PasswordReset{
		Email:     "ana@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)

	err := service.VerifyResetCode(context.Background(), domain.VerifyResetCodeRequest{
		Email: "ana@example.com",
		Code:  "123456",
	})

	assert.ErrorIs(t, err, domain.ErrResetCodeInvalid)
}

func TestVerifyResetCode_WrongCode(t *testing.T) {
	service, repo, _ := newTestService()

	repo.On("GetResetCode", mock.Anything, "ana@example.com").Return(&entities.PasswordReset{
		Email:     "ana@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}, nil)

	err := service.VerifyResetCode(context.Background(), domain.VerifyResetCodeRequest{
		Email: "ana@example.com",
		Code:  "654321",
	})

	assert.ErrorIs(t, err, domain.ErrResetCodeInvalid)
}

func TestResetPassword_ConsumesCode(t *testing.T) {
	service, repo, _ := newTestService()
	userID := uuid.New()

	repo.On("GetResetCode", mock.Anything, "ana@example.com").Return(&entities.PasswordReset{
		Email:     "ana@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}, nil)
	repo.On("GetUserByEmail", mock.Anything, "ana@example.com").
		Return(&entities.User{ID: userID, Email: "ana@example.com", Password: "old-hash"}, nil)

	var updated *entities.User
	repo.On("UpdateUser", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		updated = args.Get(1).(*entities.User)
	}).Return(nil)
	repo.On("DeleteResetCode", mock.Anything, "ana@example.com").Return(nil)

	err := service.ResetPassword(context.Background(), domain.ResetPasswordRequest{
		Email:    "ana@example.com",
		Code:     "123456",
		Password: "brand-new-pass",
	})

	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("brand-new-pass")))
	repo.AssertCalled(t, "DeleteResetCode", mock.Anything, "ana@example.com")
}

func TestGenerateResetCode_SixDigits(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := generateResetCode()
		assert.NoError(t, err)
		assert.Len(t, code, 6)
	}
}
