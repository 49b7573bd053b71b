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
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	FindByID(ctx context.Context, id int) (*model.Event, error)
	List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
	ListByOrganizer(ctx context.Context, organizerID int) ([]*model.Event, error)
	ListRegisteredFor(ctx context.Context, userID int) ([]*model.Event, error)
	ListRegistrants(ctx context.Context, eventID int) ([]*model.User, error)
	IsRegistered(ctx context.Context, eventID int, userID int) (bool, error)

	// Transaction methods
	// FindByIDForUpdate 鎖住該列直到交易結束，更新與刪除前用來讀取舊的 qr_code
	FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id int) (*model.Event, error)
	Delete(ctx context.Context, tx pgx.Tx, id int) error
	Create(ctx context.Context, tx pgx.Tx, event *model.Event) (*model.Event, error)
	Update(ctx context.Context, tx pgx.Tx, id int, params model.UpdateEventParams) (*model.Event, error)
	// AttachQRCode 只寫入 qr_code 欄位，不經過 Create/Update 的流程
	AttachQRCode(ctx context.Context, tx pgx.Tx, id int, ref string) error
	// AddRegistration 回傳 created=false 代表本來就已報名
	AddRegistration(ctx context.Context, tx pgx.Tx, eventID int, userID int) (bool, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `e.id, e.title, e.description, e.date, e.time, e.location, e.address,
	e.map_link, e.image, e.pdf, e.qr_code, e.organizer_id, e.created_at, e.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*model.Event, error) {
	var event model.Event
	var clock pgtype.Time
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&clock,
		&event.Location,
		&event.Address,
		&event.MapLink,
		&event.Image,
		&event.PDF,
		&event.QRCode,
		&event.OrganizerID,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	event.Time = fromPgTime(clock)
	return &event, nil
}

func scanEvents(rows pgx.Rows) ([]*model.Event, error) {
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func toPgTime(t time.Time) pgtype.Time {
	us := int64(t.Hour())*3600 + int64(t.Minute())*60 + int64(t.Second())
	return pgtype.Time{Microseconds: us * 1_000_000, Valid: true}
}

func fromPgTime(t pgtype.Time) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(t.Microseconds) * time.Microsecond)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (r *EventRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events AS e (
			title, description, date, time, location, address,
			map_link, image, pdf, organizer_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + eventColumns

	created, err := scanEvent(tx.QueryRow(ctx, query,
		event.Title,
		event.Description,
		dateOnly(event.Date),
		toPgTime(event.Time),
		event.Location,
		event.Address,
		event.MapLink,
		event.Image,
		event.PDF,
		event.OrganizerID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

func (r *EventRepositoryImpl) AttachQRCode(ctx context.Context, tx pgx.Tx, id int, ref string) error {
	query := `
		UPDATE events
		SET qr_code = $1
		WHERE id = $2
	`
	result, err := tx.Exec(ctx, query, ref, id)
	if err != nil {
		return fmt.Errorf("failed to attach qr code: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events e
		WHERE e.id = $1
	`
	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id int) (*model.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events e
		WHERE e.id = $1
		FOR UPDATE
	`
	event, err := scanEvent(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	conds := []string{}
	args := []interface{}{}
	argPos := 1

	if q := strings.TrimSpace(filter.Query); q != "" {
		conds = append(conds, fmt.Sprintf("(e.title ILIKE $%d OR e.location ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+escapeLike(q)+"%")
		argPos++
	}

	switch filter.When {
	case model.DateFilterUpcoming:
		conds = append(conds, fmt.Sprintf("e.date >= $%d", argPos))
		args = append(args, dateOnly(filter.Today))
		argPos++
	case model.DateFilterPast:
		conds = append(conds, fmt.Sprintf("e.date < $%d", argPos))
		args = append(args, dateOnly(filter.Today))
		argPos++
	case model.DateFilterAll:
	default:
		return nil, apperrors.ErrInvalidInput
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM events e
		%s
		ORDER BY e.date DESC, e.time DESC, e.id DESC
	`, eventColumns, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

// escapeLike 跳脫 ILIKE 的萬用字元，使用者輸入的 % _ 視為一般字元
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *EventRepositoryImpl) ListByOrganizer(ctx context.Context, organizerID int) ([]*model.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events e
		WHERE e.organizer_id = $1
		ORDER BY e.date DESC, e.time DESC, e.id DESC
	`
	rows, err := r.pool.Query(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

func (r *EventRepositoryImpl) ListRegisteredFor(ctx context.Context, userID int) ([]*model.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events e
		JOIN event_registrations er ON er.event_id = e.id
		WHERE er.user_id = $1
		ORDER BY e.date DESC, e.time DESC, e.id DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

func (r *EventRepositoryImpl) ListRegistrants(ctx context.Context, eventID int) ([]*model.User, error) {
	query := `
		SELECT u.id, u.username, u.email, u.password_hash, u.created_at
		FROM users u
		JOIN event_registrations er ON er.user_id = u.id
		WHERE er.event_id = $1
		ORDER BY er.registered_at ASC, u.id ASC
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*model.User, 0)
	for rows.Next() {
		var user model.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *EventRepositoryImpl) IsRegistered(ctx context.Context, eventID int, userID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM event_registrations
			WHERE event_id = $1 AND user_id = $2
		)
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, eventID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *EventRepositoryImpl) AddRegistration(ctx context.Context, tx pgx.Tx, eventID int, userID int) (bool, error) {
	query := `
		INSERT INTO event_registrations (event_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (event_id, user_id) DO NOTHING
	`
	result, err := tx.Exec(ctx, query, eventID, userID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, apperrors.ErrEventNotFound
		}
		return false, fmt.Errorf("failed to add registration: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, tx pgx.Tx, id int, params model.UpdateEventParams) (*model.Event, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Title != nil {
		add("title", *params.Title)
	}
	if params.Description != nil {
		add("description", *params.Description)
	}
	if params.Date != nil {
		add("date", dateOnly(*params.Date))
	}
	if params.Time != nil {
		add("time", toPgTime(*params.Time))
	}
	if params.Location != nil {
		add("location", *params.Location)
	}
	if params.Address != nil {
		add("address", *params.Address)
	}
	if params.MapLink != nil {
		// 空字串代表清除連結
		if *params.MapLink == "" {
			add("map_link", nil)
		} else {
			add("map_link", *params.MapLink)
		}
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	add("updated_at", time.Now().UTC())

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE events AS e
		SET %s
		WHERE e.id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, eventColumns)

	event, err := scanEvent(tx.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, id int) error {
	query := `DELETE FROM events WHERE id = $1`

	result, err := tx.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}
