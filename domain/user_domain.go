package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login success"
	MessageSuccessGetMe         = "success get profile"
	MessageSuccessUpdateUser    = "profile updated successfully"
	MessageSuccessForgotPass    = "reset code sent if the email exists"
	MessageSuccessVerifyReset   = "reset code verified"
	MessageSuccessResetPassword = "password reset successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetMe         = "failed to get profile"
	MessageFailedUpdateUser    = "failed to update profile"
	MessageFailedForgotPass    = "failed to process reset request"
	MessageFailedVerifyReset   = "failed to verify reset code"
	MessageFailedResetPassword = "failed to reset password"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrResetCodeInvalid   = errors.New("reset code invalid or expired")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=32"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UpdateUserRequest struct {
		Username *string `json:"username,omitempty"`
		Bio      *string `json:"bio,omitempty"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	VerifyResetCodeRequest struct {
		Email string `json:"email" validate:"required,email"`
		Code  string `json:"code" validate:"required,len=6"`
	}

	ResetPasswordRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Code     string `json:"code" validate:"required,len=6"`
		Password string `json:"password" validate:"required,min=8"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		Email     string    `json:"email"`
		Bio       string    `json:"bio,omitempty"`
		AvatarURL string    `json:"avatar_url,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	MeResponse struct {
		User  UserResponse `json:"user"`
		Stats UserStats    `json:"stats"`
	}
)
