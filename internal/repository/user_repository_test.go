package repository_test

import (
	"context"
	"testing"
	"time"

	"eventflow/internal/model"
	"eventflow/internal/repository"
	apperrors "eventflow/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateAndFind", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewUserRepository(pool)
		email := "alice@example.com"
		user := &model.User{Username: "alice", Email: &email, PasswordHash: "hash"}

		err := withinTx(t, func(tx pgx.Tx) error {
			_, err := repo.Create(ctx, tx, user)
			return err
		})
		require.NoError(t, err)
		assert.NotZero(t, user.ID)

		found, err := repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		require.NotNil(t, found.Email)
		assert.Equal(t, email, *found.Email)

		byID, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", byID.Username)
	})

	t.Run("Failed - duplicate username", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewUserRepository(pool)
		createTestUser(t, "alice")

		err := withinTx(t, func(tx pgx.Tx) error {
			_, err := repo.Create(ctx, tx, &model.User{Username: "alice", PasswordHash: "hash"})
			return err
		})

		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
	})

	t.Run("NotFound", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewUserRepository(pool)

		_, err := repo.FindByUsername(ctx, "nobody")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultProfile", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewProfileRepository(pool)
		user := createTestUser(t, "alice")

		profile, err := repo.FindByUserID(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.ID, profile.UserID)
		assert.Equal(t, model.GenderUnset, profile.Gender)
		assert.Nil(t, profile.BirthDate)
	})

	t.Run("Update", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewProfileRepository(pool)
		user := createTestUser(t, "alice")

		fullName := "Alice A."
		gender := model.GenderFemale
		birthDate := time.Date(1990, 3, 4, 0, 0, 0, 0, time.UTC)
		profile, err := repo.Update(ctx, user.ID, model.UpdateProfileParams{
			FullName:  &fullName,
			Gender:    &gender,
			BirthDate: &birthDate,
		})
		require.NoError(t, err)
		assert.Equal(t, "Alice A.", profile.FullName)
		assert.Equal(t, model.GenderFemale, profile.Gender)
		require.NotNil(t, profile.BirthDate)
		assert.Equal(t, "1990-03-04", profile.BirthDate.Format("2006-01-02"))

		cleared := time.Time{}
		profile, err = repo.Update(ctx, user.ID, model.UpdateProfileParams{BirthDate: &cleared})
		require.NoError(t, err)
		assert.Nil(t, profile.BirthDate)
		assert.Equal(t, "Alice A.", profile.FullName)
	})

	t.Run("Failed - unknown user", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewProfileRepository(pool)
		bio := "hi"

		_, err := repo.Update(ctx, 12345, model.UpdateProfileParams{Bio: &bio})

		assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
	})
}
