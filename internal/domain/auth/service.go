package auth

import "context"

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)

	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new pair and revokes
	// the old one.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	Logout(ctx context.Context, refreshToken string) error
}
