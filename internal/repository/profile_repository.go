package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventflow/internal/model"
	apperrors "eventflow/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID int) (*model.Profile, error)
	Update(ctx context.Context, userID int, params model.UpdateProfileParams) (*model.Profile, error)

	// Transaction methods
	CreateDefault(ctx context.Context, tx pgx.Tx, userID int) (*model.Profile, error)
}

type ProfileRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &ProfileRepositoryImpl{
		pool: pool,
	}
}

const profileColumns = `id, user_id, profile_picture, full_name, phone, education, location,
	gender, birth_date, bio, linkedin, github, instagram, created_at, updated_at`

func scanProfile(row rowScanner) (*model.Profile, error) {
	var p model.Profile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.ProfilePicture,
		&p.FullName,
		&p.Phone,
		&p.Education,
		&p.Location,
		&p.Gender,
		&p.BirthDate,
		&p.Bio,
		&p.LinkedIn,
		&p.GitHub,
		&p.Instagram,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepositoryImpl) CreateDefault(ctx context.Context, tx pgx.Tx, userID int) (*model.Profile, error) {
	query := `
		INSERT INTO user_profiles (user_id)
		VALUES ($1)
		RETURNING ` + profileColumns

	profile, err := scanProfile(tx.QueryRow(ctx, query, userID))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

func (r *ProfileRepositoryImpl) FindByUserID(ctx context.Context, userID int) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + `
		FROM user_profiles
		WHERE user_id = $1
	`
	profile, err := scanProfile(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, userID int, params model.UpdateProfileParams) (*model.Profile, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.FullName != nil {
		add("full_name", *params.FullName)
	}
	if params.Phone != nil {
		add("phone", *params.Phone)
	}
	if params.Education != nil {
		add("education", *params.Education)
	}
	if params.Location != nil {
		add("location", *params.Location)
	}
	if params.Gender != nil {
		add("gender", string(*params.Gender))
	}
	if params.BirthDate != nil {
		// 零值代表清除
		if params.BirthDate.IsZero() {
			add("birth_date", nil)
		} else {
			add("birth_date", dateOnly(*params.BirthDate))
		}
	}
	if params.Bio != nil {
		add("bio", *params.Bio)
	}
	if params.LinkedIn != nil {
		add("linkedin", *params.LinkedIn)
	}
	if params.GitHub != nil {
		add("github", *params.GitHub)
	}
	if params.Instagram != nil {
		add("instagram", *params.Instagram)
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	add("updated_at", time.Now().UTC())

	// add user_id
	args = append(args, userID)

	query := fmt.Sprintf(`
		UPDATE user_profiles
		SET %s
		WHERE user_id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, profileColumns)

	profile, err := scanProfile(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}
