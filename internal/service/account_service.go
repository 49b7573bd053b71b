package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"eventflow/internal/auth"
	"eventflow/internal/cache"
	"eventflow/internal/database"
	"eventflow/internal/model"
	"eventflow/internal/repository"
	apperrors "eventflow/pkg/app_errors"
	"eventflow/pkg/logger"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SignupParams struct {
	Username string
	Email    *string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *model.User
}

type AccountService interface {
	// Signup 建立帳號，並在同一個交易內建立預設 profile
	Signup(ctx context.Context, params SignupParams) (*model.User, error)
	Login(ctx context.Context, username string, password string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type AccountServiceImpl struct {
	tx       database.Transactor
	users    repository.UserRepository
	profiles repository.ProfileRepository
	tokens   auth.TokenIssuer
	sessions cache.SessionStore
}

func NewAccountService(
	tx database.Transactor,
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	tokens auth.TokenIssuer,
	sessions cache.SessionStore,
) AccountService {
	return &AccountServiceImpl{
		tx:       tx,
		users:    users,
		profiles: profiles,
		tokens:   tokens,
		sessions: sessions,
	}
}

func (s *AccountServiceImpl) Signup(ctx context.Context, params SignupParams) (*model.User, error) {
	username := strings.TrimSpace(params.Username)
	if username == "" || params.Password == "" {
		return nil, apperrors.ErrInvalidInput
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        params.Email,
		PasswordHash: hash,
	}
	err = s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		created, err := s.users.Create(ctx, tx, user)
		if err != nil {
			return err
		}
		_, err = s.profiles.CreateDefault(ctx, tx, created.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("account created", zap.Int("user_id", user.ID))
	return user, nil
}

func (s *AccountServiceImpl) Login(ctx context.Context, username string, password string) (*LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, claims, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      user,
	}, nil
}

func (s *AccountServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return err
	}
	return s.sessions.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

func (s *AccountServiceImpl) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.sessions.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperrors.ErrUnauthorized
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}
