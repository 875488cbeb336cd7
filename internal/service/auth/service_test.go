package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayanihr/hrms-backend-go/internal/domain/auth"
	"github.com/bayanihr/hrms-backend-go/internal/domain/user"
	"github.com/bayanihr/hrms-backend-go/internal/pkg/jwt"
)

// fakeUserRepo is an in-memory user.Repository keyed by email.
type fakeUserRepo struct {
	byEmail map[string]user.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	for email, u := range f.byEmail {
		if u.ID == id {
			u.PasswordHash = passwordHash
			f.byEmail[email] = u
			return nil
		}
	}
	return user.ErrUserNotFound
}

func newTestService() auth.Service {
	jwtService := jwt.NewJWTService("test-secret-key-for-auth-tests", "1h", "168h")
	return NewAuthService(newFakeUserRepo(), jwtService)
}

func registerReq() auth.RegisterRequest {
	return auth.RegisterRequest{
		Email:           "juan@example.com",
		Password:        "correct-horse",
		ConfirmPassword: "correct-horse",
		Role:            "staff",
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "juan@example.com", created.Email)
	assert.Equal(t, "staff", created.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq())
	require.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	req := registerReq()
	req.ConfirmPassword = "something-else"

	_, err := svc.Register(ctx, req)
	require.Error(t, err)
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "juan@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "juan@example.com", tokens.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{
		Email:    "juan@example.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh_SingleUse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "juan@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The old refresh token is revoked on first use.
	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	require.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "juan@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))

	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	require.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
