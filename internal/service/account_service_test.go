package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventflow/internal/auth"
	cacheMocks "eventflow/internal/cache/mocks"
	"eventflow/internal/model"
	repoMocks "eventflow/internal/repository/mocks"
	"eventflow/internal/service"
	"eventflow/internal/testutil"
	apperrors "eventflow/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountMocks struct {
	users    *repoMocks.MockUserRepository
	profiles *repoMocks.MockProfileRepository
	sessions *cacheMocks.MockSessionStore
	tokens   auth.TokenIssuer
}

func setupAccountService(t *testing.T) (service.AccountService, accountMocks) {
	m := accountMocks{
		users:    repoMocks.NewMockUserRepository(t),
		profiles: repoMocks.NewMockProfileRepository(t),
		sessions: cacheMocks.NewMockSessionStore(t),
		tokens:   auth.NewTokenIssuer("test-secret", time.Hour),
	}
	return service.NewAccountService(&testutil.NoopTransactor{}, m.users, m.profiles, m.tokens, m.sessions), m
}

func TestAccountService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - creates user and profile", func(t *testing.T) {
		accountService, m := setupAccountService(t)

		m.users.EXPECT().Create(ctx, mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, _ pgx.Tx, u *model.User) (*model.User, error) {
				u.ID = 5
				return u, nil
			}).Once()
		m.profiles.EXPECT().CreateDefault(ctx, mock.Anything, 5).Return(&model.Profile{ID: 1, UserID: 5}, nil).Once()

		user, err := accountService.Signup(ctx, service.SignupParams{
			Username: " alice ",
			Email:    strPtr("alice@example.com"),
			Password: "s3cret-pass",
		})

		require.NoError(t, err)
		assert.Equal(t, 5, user.ID)
		assert.Equal(t, "alice", user.Username)
		ok, err := auth.CheckPassword(user.PasswordHash, "s3cret-pass")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Failed - username taken", func(t *testing.T) {
		accountService, m := setupAccountService(t)

		m.users.EXPECT().Create(ctx, mock.Anything, mock.Anything).Return(nil, apperrors.ErrUsernameTaken).Once()

		_, err := accountService.Signup(ctx, service.SignupParams{Username: "alice", Password: "s3cret-pass"})

		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
		m.profiles.AssertNotCalled(t, "CreateDefault")
	})

	t.Run("Failed - blank username", func(t *testing.T) {
		accountService, m := setupAccountService(t)

		_, err := accountService.Signup(ctx, service.SignupParams{Username: "  ", Password: "s3cret-pass"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		m.users.AssertNotCalled(t, "Create")
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	alice := &model.User{ID: 5, Username: "alice", PasswordHash: hash}

	t.Run("Success", func(t *testing.T) {
		accountService, m := setupAccountService(t)

		m.users.EXPECT().FindByUsername(ctx, "alice").Return(alice, nil).Once()

		result, err := accountService.Login(ctx, "alice", "s3cret-pass")

		require.NoError(t, err)
		assert.Equal(t, alice, result.User)
		claims, err := m.tokens.Parse(result.Token)
		require.NoError(t, err)
		userID, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, 5, userID)
		assert.WithinDuration(t, time.Now().Add(time.Hour), result.ExpiresAt, time.Minute)
	})

	t.Run("Failed - wrong password", func(t *testing.T) {
		accountService, m := setupAccountService(t)

		m.users.EXPECT().FindByUsername(ctx, "alice").Return(alice, nil).Once()

		_, err := accountService.Login(ctx, "alice", "wrong")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("Failed - unknown user", func(t *testing.T) {
		accountService, m := setupAccountService(t)

		m.users.EXPECT().FindByUsername(ctx, "nobody").Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := accountService.Login(ctx, "nobody", "s3cret-pass")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAccountService_LogoutAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	alice := &model.User{ID: 5, Username: "alice"}

	t.Run("Authenticate - success", func(t *testing.T) {
		accountService, m := setupAccountService(t)
		token, claims, err := m.tokens.Issue(5)
		require.NoError(t, err)

		m.sessions.EXPECT().IsRevoked(ctx, claims.ID).Return(false, nil).Once()
		m.users.EXPECT().FindByID(ctx, 5).Return(alice, nil).Once()

		user, err := accountService.Authenticate(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, alice, user)
	})

	t.Run("Authenticate - revoked token", func(t *testing.T) {
		accountService, m := setupAccountService(t)
		token, claims, err := m.tokens.Issue(5)
		require.NoError(t, err)

		m.sessions.EXPECT().IsRevoked(ctx, claims.ID).Return(true, nil).Once()

		_, err = accountService.Authenticate(ctx, token)

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		m.users.AssertNotCalled(t, "FindByID")
	})

	t.Run("Authenticate - deleted user", func(t *testing.T) {
		accountService, m := setupAccountService(t)
		token, claims, err := m.tokens.Issue(5)
		require.NoError(t, err)

		m.sessions.EXPECT().IsRevoked(ctx, claims.ID).Return(false, nil).Once()
		m.users.EXPECT().FindByID(ctx, 5).Return(nil, apperrors.ErrUserNotFound).Once()

		_, err = accountService.Authenticate(ctx, token)

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Authenticate - invalid token", func(t *testing.T) {
		accountService, _ := setupAccountService(t)

		_, err := accountService.Authenticate(ctx, "garbage")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Logout - revokes until expiry", func(t *testing.T) {
		accountService, m := setupAccountService(t)
		token, claims, err := m.tokens.Issue(5)
		require.NoError(t, err)

		m.sessions.EXPECT().Revoke(ctx, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
			return ttl > 0 && ttl <= time.Hour
		})).Return(nil).Once()

		require.NoError(t, accountService.Logout(ctx, token))
	})

	t.Run("Logout - store error", func(t *testing.T) {
		accountService, m := setupAccountService(t)
		token, _, err := m.tokens.Issue(5)
		require.NoError(t, err)

		m.sessions.EXPECT().Revoke(ctx, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

		assert.Error(t, accountService.Logout(ctx, token))
	})
}
