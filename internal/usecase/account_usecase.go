// Package usecase defines the application's business operations as interfaces
// together with their input and output DTOs.
package usecase

import (
	"context"
	"time"

	"gamehub/internal/domain/service"
)

// RegisterInput carries the validated credentials for a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,accountpassword"`
}

// RegisterOutput reports the created identity. The password hash never leaves
// the service layer.
type RegisterOutput struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginInput carries the credentials presented at login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued token and its claims. The boundary layer
// turns the token into a cookie.
type LoginOutput struct {
	Email string          `json:"email"`
	Token string          `json:"-"`
	TTL   time.Duration   `json:"-"`
	Claim *service.Claims `json:"-"`
}

// AccountUsecase orchestrates the credential lifecycle.
type AccountUsecase interface {
	// Register creates a new account, rejecting duplicate emails.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies the credentials and issues an access token. Unknown
	// email and wrong password surface as the same generic error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout is stateless at this layer; the boundary clears the cookie.
	Logout(ctx context.Context) error
}
