package user

import (
	"context"
	"time"

	"recipehub/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, userID string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		ReplaceResetCode(ctx context.Context, reset *entities.PasswordReset) error
		GetResetCode(ctx context.Context, email string) (*entities.PasswordReset, error)
		DeleteResetCode(ctx context.Context, email string) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// ReplaceResetCode keeps at most one live code per email.
func (r *userRepository) ReplaceResetCode(ctx context.Context, reset *entities.PasswordReset) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", reset.Email).Delete(&entities.PasswordReset{}).Error; err != nil {
			return err
		}
		reset.CreatedAt = time.Now()
		return tx.Create(reset).Error
	})
}

func (r *userRepository) GetResetCode(ctx context.Context, email string) (*entities.PasswordReset, error) {
	var reset entities.PasswordReset
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *userRepository) DeleteResetCode(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Where("email = ?", email).Delete(&entities.PasswordReset{}).Error
}
