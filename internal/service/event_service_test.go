package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

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

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - attaches QR code for new id", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		blobs, fsys := newTestBlobStore()
		tx := &testutil.NoopTransactor{}
		qr := newTestQRGenerator()
		eventService := service.NewEventService(tx, repo, blobs, qr)

		input := newTestEvent(0, 0)
		repo.EXPECT().Create(ctx, mock.Anything, input).Return(newTestEvent(10, 1), nil).Once()
		repo.EXPECT().AttachQRCode(ctx, mock.Anything, 10, mock.AnythingOfType("string")).Return(nil).Once()

		created, err := eventService.Create(ctx, 1, input)

		require.NoError(t, err)
		assert.Equal(t, 10, created.ID)
		assert.Equal(t, 1, input.OrganizerID)
		require.NotNil(t, created.QRCode)
		assert.Equal(t, 1, tx.Calls)

		stored, err := blobs.Get(ctx, *created.QRCode)
		require.NoError(t, err)
		expected, err := qr.Generate(10)
		require.NoError(t, err)
		assert.Equal(t, expected, stored)
		assert.Equal(t, 1, countBlobs(t, fsys))
	})

	t.Run("Failed - attach error removes written file", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		blobs, fsys := newTestBlobStore()
		eventService := service.NewEventService(&testutil.NoopTransactor{}, repo, blobs, newTestQRGenerator())

		input := newTestEvent(0, 0)
		repo.EXPECT().Create(ctx, mock.Anything, input).Return(newTestEvent(10, 1), nil).Once()
		repo.EXPECT().AttachQRCode(ctx, mock.Anything, 10, mock.Anything).Return(errors.New("db error")).Once()

		_, err := eventService.Create(ctx, 1, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "db error")
		assert.Equal(t, 0, countBlobs(t, fsys))
	})

	t.Run("Failed - insert error", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		blobs, fsys := newTestBlobStore()
		eventService := service.NewEventService(&testutil.NoopTransactor{}, repo, blobs, newTestQRGenerator())

		repo.EXPECT().Create(ctx, mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()

		_, err := eventService.Create(ctx, 1, newTestEvent(0, 0))

		require.Error(t, err)
		repo.AssertNotCalled(t, "AttachQRCode")
		assert.Equal(t, 0, countBlobs(t, fsys))
	})
}

func TestEventService_Update(t *testing.T) {
	ctx := context.Background()
	title := "Renamed"
	params := model.UpdateEventParams{Title: &title}

	t.Run("Success - regenerates QR code and removes old file", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		blobs, fsys := newTestBlobStore()
		eventService := service.NewEventService(&testutil.NoopTransactor{}, repo, blobs, newTestQRGenerator())

		existing := newTestEvent(10, 1)
		oldRef := putBlob(t, blobs, "qr_code_10.png", []byte("old"))
		existing.QRCode = &oldRef
		updated := newTestEvent(10, 1)
		updated.Title = title

		repo.EXPECT().FindByIDForUpdate(ctx, mock.Anything, 10).Return(existing, nil).Once()
		repo.EXPECT().Update(ctx, mock.Anything, 10, params).Return(updated, nil).Once()
		repo.EXPECT().AttachQRCode(ctx, mock.Anything, 10, mock.AnythingOfType("string")).Return(nil).Once()

		result, err := eventService.Update(ctx, 1, 10, params)

		require.NoError(t, err)
		assert.Equal(t, "Renamed", result.Title)
		require.NotNil(t, result.QRCode)
		assert.NotEqual(t, oldRef, *result.QRCode)
		_, err = blobs.Get(ctx, oldRef)
		assert.ErrorIs(t, err, apperrors.ErrBlobNotFound)
		assert.Equal(t, 1, countBlobs(t, fsys))
	})

	t.Run("Failed - not organizer", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		blobs, _ := newTestBlobStore()
		tx := &testutil.NoopTransactor{}
		eventService := service.NewEventService(tx, repo, blobs, newTestQRGenerator())

		repo.EXPECT().FindByIDForUpdate(ctx, mock.Anything, 10).Return(newTestEvent(10, 2), nil).Once()

		_, err := eventService.Update(ctx, 1, 10, params)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		assert.Equal(t, 1, tx.Calls)
		repo.AssertNotCalled(t, "Update")
		repo.AssertNotCalled(t, "AttachQRCode")
	})

	t.Run("Failed - empty params", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		blobs, _ := newTestBlobStore()
		eventService := service.NewEventService(&testutil.NoopTransactor{}, repo, blobs, newTestQRGenerator())

		_, err := eventService.Update(ctx, 1, 10, model.UpdateEventParams{})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "FindByIDForUpdate")
	})

	t.Run("Failed - event not found", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		blobs, _ := newTestBlobStore()
		eventService := service.NewEventService(&testutil.NoopTransactor{}, repo, blobs, newTestQRGenerator())

		repo.EXPECT().FindByIDForUpdate(ctx, mock.Anything, 99).Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := eventService.Update(ctx, 1, 99, params)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventService_Update_SequentialUpdatesKeepOneFile(t *testing.T) {
	ctx := context.Background()
	title := "Renamed"
	params := model.UpdateEventParams{Title: &title}

	repo := repoMocks.NewMockEventRepository(t)
	blobs, fsys := newTestBlobStore()
	eventService := service.NewEventService(&testutil.NoopTransactor{}, repo, blobs, newTestQRGenerator())

	// 模擬資料列：每次鎖定讀取都拿到上一次交易寫入的 qr_code
	current := newTestEvent(10, 1)
	firstRef := putBlob(t, blobs, "qr_code_10.png", []byte("first"))
	current.QRCode = &firstRef

	repo.EXPECT().FindByIDForUpdate(ctx, mock.Anything, 10).RunAndReturn(
		func(context.Context, pgx.Tx, int) (*model.Event, error) {
			snapshot := *current
			return &snapshot, nil
		}).Twice()
	repo.EXPECT().Update(ctx, mock.Anything, 10, params).RunAndReturn(
		func(context.Context, pgx.Tx, int, model.UpdateEventParams) (*model.Event, error) {
			return newTestEvent(10, 1), nil
		}).Twice()
	repo.EXPECT().AttachQRCode(ctx, mock.Anything, 10, mock.AnythingOfType("string")).RunAndReturn(
		func(_ context.Context, _ pgx.Tx, _ int, ref string) error {
			current.QRCode = &ref
			return nil
		}).Twice()

	first, err := eventService.Update(ctx, 1, 10, params)
	require.NoError(t, err)
	second, err := eventService.Update(ctx, 1, 10, params)
	require.NoError(t, err)

	assert.NotEqual(t, *first.QRCode, *second.QRCode)
	assert.Equal(t, *second.QRCode, *current.QRCode)
	assert.Equal(t, 1, countBlobs(t, fsys))
	_, err = blobs.Get(ctx, *second.QRCode)
	assert.NoError(t, err)
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - removes QR file", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		blobs, fsys := newTestBlobStore()
		eventService := service.NewEventService(&testutil.NoopTransactor{}, repo, blobs, newTestQRGenerator())

		existing := newTestEvent(10, 1)
		ref := putBlob(t, blobs, "qr_code_10.png", []byte("png"))
		existing.QRCode = &ref

		repo.EXPECT().FindByIDForUpdate(ctx, mock.Anything, 10).Return(existing, nil).Once()
		repo.EXPECT().Delete(ctx, mock.Anything, 10).Return(nil).Once()

		err := eventService.Delete(ctx, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, 0, countBlobs(t, fsys))
	})

	t.Run("Failed - not organizer", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		blobs, _ := newTestBlobStore()
		eventService := service.NewEventService(&testutil.NoopTransactor{}, repo, blobs, newTestQRGenerator())

		repo.EXPECT().FindByIDForUpdate(ctx, mock.Anything, 10).Return(newTestEvent(10, 2), nil).Once()

		err := eventService.Delete(ctx, 1, 10)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		repo.AssertNotCalled(t, "Delete")
	})

	t.Run("Failed - delete error keeps QR file", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		blobs, fsys := newTestBlobStore()
		eventService := service.NewEventService(&testutil.NoopTransactor{}, repo, blobs, newTestQRGenerator())

		existing := newTestEvent(10, 1)
		ref := putBlob(t, blobs, "qr_code_10.png", []byte("png"))
		existing.QRCode = &ref

		repo.EXPECT().FindByIDForUpdate(ctx, mock.Anything, 10).Return(existing, nil).Once()
		repo.EXPECT().Delete(ctx, mock.Anything, 10).Return(errors.New("db error")).Once()

		err := eventService.Delete(ctx, 1, 10)

		require.Error(t, err)
		assert.Equal(t, 1, countBlobs(t, fsys))
	})
}

func TestEventService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - passes today from clock", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		blobs, _ := newTestBlobStore()
		eventService := service.NewEventServiceWithClock(&testutil.NoopTransactor{}, repo, blobs, newTestQRGenerator(),
			func() time.Time { return fixedNow })

		filter := model.EventFilter{Query: "go", When: model.DateFilterUpcoming, Today: fixedNow}
		repo.EXPECT().List(ctx, filter).Return([]*model.Event{newTestEvent(1, 1)}, nil).Once()

		events, err := eventService.List(ctx, "go", model.DateFilterUpcoming)

		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("Failed - unknown date filter", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		blobs, _ := newTestBlobStore()
		eventService := service.NewEventService(&testutil.NoopTransactor{}, repo, blobs, newTestQRGenerator())

		_, err := eventService.List(ctx, "", model.DateFilter("someday"))

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "List")
	})
}

func TestEventService_QRCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		blobs, _ := newTestBlobStore()
		eventService := service.NewEventService(&testutil.NoopTransactor{}, repo, blobs, newTestQRGenerator())

		event := newTestEvent(10, 1)
		ref := putBlob(t, blobs, "qr_code_10.png", []byte("png"))
		event.QRCode = &ref
		repo.EXPECT().FindByID(ctx, 10).Return(event, nil).Once()

		data, err := eventService.QRCode(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), data)
	})

	t.Run("NotGenerated", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		blobs, _ := newTestBlobStore()
		eventService := service.NewEventService(&testutil.NoopTransactor{}, repo, blobs, newTestQRGenerator())

		repo.EXPECT().FindByID(ctx, 10).Return(newTestEvent(10, 1), nil).Once()

		_, err := eventService.QRCode(ctx, 10)

		assert.ErrorIs(t, err, apperrors.ErrQRCodeNotReady)
	})

	t.Run("FileMissing", func(t *testing.T) {
		repo := repoMocks.NewMockEventRepository(t)
		blobs, _ := newTestBlobStore()
		eventService := service.NewEventService(&testutil.NoopTransactor{}, repo, blobs, newTestQRGenerator())

		event := newTestEvent(10, 1)
		event.QRCode = strPtr("qr_codes/gone.png")
		repo.EXPECT().FindByID(ctx, 10).Return(event, nil).Once()

		_, err := eventService.QRCode(ctx, 10)

		assert.ErrorIs(t, err, apperrors.ErrQRCodeNotReady)
	})
}
