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

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewEventRepository(pool)
		organizer := createTestUser(t, "organizer")

		created := createTestEvent(t, organizer.ID, "Go Meetup", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), "18:30")

		assert.NotZero(t, created.ID)
		assert.Nil(t, created.QRCode)
		assert.NotZero(t, created.CreatedAt)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Go Meetup", found.Title)
		assert.Equal(t, "2025-07-01", found.DateString())
		assert.Equal(t, "18:30", found.TimeString())
		assert.Equal(t, organizer.ID, found.OrganizerID)
	})

	t.Run("AttachQRCode", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewEventRepository(pool)
		organizer := createTestUser(t, "organizer")
		created := createTestEvent(t, organizer.ID, "Go Meetup", day(3), "10:00")

		err := withinTx(t, func(tx pgx.Tx) error {
			return repo.AttachQRCode(ctx, tx, created.ID, "qr_codes/x_qr_code.png")
		})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found.QRCode)
		assert.Equal(t, "qr_codes/x_qr_code.png", *found.QRCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewEventRepository(pool)

		_, err := repo.FindByID(ctx, 12345)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("DateFilter", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewEventRepository(pool)
		organizer := createTestUser(t, "organizer")

		future := createTestEvent(t, organizer.ID, "Future", day(7), "10:00")
		today := createTestEvent(t, organizer.ID, "Today", day(0), "10:00")
		past := createTestEvent(t, organizer.ID, "Past", day(-7), "10:00")

		upcoming, err := repo.List(ctx, model.EventFilter{When: model.DateFilterUpcoming, Today: day(0)})
		require.NoError(t, err)
		assert.Equal(t, []int{future.ID, today.ID}, eventIDs(upcoming))

		before, err := repo.List(ctx, model.EventFilter{When: model.DateFilterPast, Today: day(0)})
		require.NoError(t, err)
		assert.Equal(t, []int{past.ID}, eventIDs(before))

		all, err := repo.List(ctx, model.EventFilter{Today: day(0)})
		require.NoError(t, err)
		assert.Equal(t, []int{future.ID, today.ID, past.ID}, eventIDs(all))
	})

	t.Run("OrderByDateThenTime", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewEventRepository(pool)
		organizer := createTestUser(t, "organizer")

		morning := createTestEvent(t, organizer.ID, "Morning", day(1), "09:00")
		evening := createTestEvent(t, organizer.ID, "Evening", day(1), "19:00")

		events, err := repo.List(ctx, model.EventFilter{Today: day(0)})

		require.NoError(t, err)
		assert.Equal(t, []int{evening.ID, morning.ID}, eventIDs(events))
	})

	t.Run("SearchTitleAndLocation", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewEventRepository(pool)
		organizer := createTestUser(t, "organizer")

		meetup := createTestEvent(t, organizer.ID, "Go Meetup", day(1), "10:00")
		createTestEvent(t, organizer.ID, "Rust Night", day(2), "10:00")

		events, err := repo.List(ctx, model.EventFilter{Query: "MEET", Today: day(0)})
		require.NoError(t, err)
		assert.Equal(t, []int{meetup.ID}, eventIDs(events))

		byLocation, err := repo.List(ctx, model.EventFilter{Query: "taipei", Today: day(0)})
		require.NoError(t, err)
		assert.Len(t, byLocation, 2)

		wildcard, err := repo.List(ctx, model.EventFilter{Query: "%", Today: day(0)})
		require.NoError(t, err)
		assert.Empty(t, wildcard)
	})

	t.Run("Failed - unknown date filter", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewEventRepository(pool)

		_, err := repo.List(ctx, model.EventFilter{When: "someday"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("PartialUpdate", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewEventRepository(pool)
		organizer := createTestUser(t, "organizer")
		link := "https://maps.example.com/x"
		created := createTestEvent(t, organizer.ID, "Go Meetup", day(1), "10:00")

		title := "Go Meetup #2"
		clock := time.Date(0, 1, 1, 20, 15, 0, 0, time.UTC)
		var updated *model.Event
		err := withinTx(t, func(tx pgx.Tx) error {
			var err error
			updated, err = repo.Update(ctx, tx, created.ID, model.UpdateEventParams{Title: &title, Time: &clock, MapLink: &link})
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, "Go Meetup #2", updated.Title)
		assert.Equal(t, "20:15", updated.TimeString())
		assert.Equal(t, created.DateString(), updated.DateString())
		require.NotNil(t, updated.MapLink)

		empty := ""
		err = withinTx(t, func(tx pgx.Tx) error {
			var err error
			updated, err = repo.Update(ctx, tx, created.ID, model.UpdateEventParams{MapLink: &empty})
			return err
		})
		require.NoError(t, err)
		assert.Nil(t, updated.MapLink)
	})

	t.Run("NotFound", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewEventRepository(pool)
		title := "x"

		err := withinTx(t, func(tx pgx.Tx) error {
			_, err := repo.Update(ctx, tx, 12345, model.UpdateEventParams{Title: &title})
			return err
		})

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_Registrations(t *testing.T) {
	ctx := context.Background()

	t.Run("RegisterTwiceKeepsOneMembership", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewEventRepository(pool)
		organizer := createTestUser(t, "organizer")
		attendee := createTestUser(t, "attendee")
		event := createTestEvent(t, organizer.ID, "Go Meetup", day(1), "10:00")

		var first, second bool
		require.NoError(t, withinTx(t, func(tx pgx.Tx) error {
			var err error
			first, err = repo.AddRegistration(ctx, tx, event.ID, attendee.ID)
			return err
		}))
		require.NoError(t, withinTx(t, func(tx pgx.Tx) error {
			var err error
			second, err = repo.AddRegistration(ctx, tx, event.ID, attendee.ID)
			return err
		}))

		assert.True(t, first)
		assert.False(t, second)

		registrants, err := repo.ListRegistrants(ctx, event.ID)
		require.NoError(t, err)
		require.Len(t, registrants, 1)
		assert.Equal(t, "attendee", registrants[0].Username)

		registered, err := repo.IsRegistered(ctx, event.ID, attendee.ID)
		require.NoError(t, err)
		assert.True(t, registered)

		registered, err = repo.IsRegistered(ctx, event.ID, organizer.ID)
		require.NoError(t, err)
		assert.False(t, registered)

		mine, err := repo.ListRegisteredFor(ctx, attendee.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{event.ID}, eventIDs(mine))
	})

	t.Run("Failed - event missing", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewEventRepository(pool)
		attendee := createTestUser(t, "attendee")

		err := withinTx(t, func(tx pgx.Tx) error {
			_, err := repo.AddRegistration(ctx, tx, 12345, attendee.ID)
			return err
		})

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("CascadesRegistrations", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewEventRepository(pool)
		organizer := createTestUser(t, "organizer")
		attendee := createTestUser(t, "attendee")
		event := createTestEvent(t, organizer.ID, "Go Meetup", day(1), "10:00")
		require.NoError(t, withinTx(t, func(tx pgx.Tx) error {
			_, err := repo.AddRegistration(ctx, tx, event.ID, attendee.ID)
			return err
		}))

		require.NoError(t, withinTx(t, func(tx pgx.Tx) error {
			return repo.Delete(ctx, tx, event.ID)
		}))

		_, err := repo.FindByID(ctx, event.ID)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		mine, err := repo.ListRegisteredFor(ctx, attendee.ID)
		require.NoError(t, err)
		assert.Empty(t, mine)
	})

	t.Run("NotFound", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewEventRepository(pool)

		err := withinTx(t, func(tx pgx.Tx) error {
			return repo.Delete(ctx, tx, 12345)
		})

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("ReadsQRCodeInsideTx", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewEventRepository(pool)
		organizer := createTestUser(t, "organizer")
		event := createTestEvent(t, organizer.ID, "Go Meetup", day(1), "10:00")

		var locked *model.Event
		err := withinTx(t, func(tx pgx.Tx) error {
			if err := repo.AttachQRCode(ctx, tx, event.ID, "qr_codes/a.png"); err != nil {
				return err
			}
			var err error
			locked, err = repo.FindByIDForUpdate(ctx, tx, event.ID)
			return err
		})

		require.NoError(t, err)
		require.NotNil(t, locked.QRCode)
		assert.Equal(t, "qr_codes/a.png", *locked.QRCode)
		assert.Equal(t, organizer.ID, locked.OrganizerID)
	})

	t.Run("NotFound", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewEventRepository(pool)

		err := withinTx(t, func(tx pgx.Tx) error {
			_, err := repo.FindByIDForUpdate(ctx, tx, 12345)
			return err
		})

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepository_ListByOrganizer(t *testing.T) {
	ctx := context.Background()
	pool := setupTestWithTruncate(t)
	repo := repository.NewEventRepository(pool)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	mine := createTestEvent(t, alice.ID, "Alice's", day(1), "10:00")
	createTestEvent(t, bob.ID, "Bob's", day(1), "11:00")

	events, err := repo.ListByOrganizer(ctx, alice.ID)

	require.NoError(t, err)
	assert.Equal(t, []int{mine.ID}, eventIDs(events))
}
