package service

import (
	"context"
	"errors"
	"time"

	"eventflow/internal/artifact"
	"eventflow/internal/database"
	"eventflow/internal/model"
	"eventflow/internal/repository"
	"eventflow/internal/storage"
	apperrors "eventflow/pkg/app_errors"
	"eventflow/pkg/logger"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EventService interface {
	List(ctx context.Context, query string, when model.DateFilter) ([]*model.Event, error)
	ListByOrganizer(ctx context.Context, organizerID int) ([]*model.Event, error)
	Get(ctx context.Context, id int) (*model.Event, error)
	// Create 建立活動後以新的 id 產生 QR code 並寫回同一筆資料
	Create(ctx context.Context, organizerID int, event *model.Event) (*model.Event, error)
	Update(ctx context.Context, actorID int, id int, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, actorID int, id int) error
	QRCode(ctx context.Context, id int) ([]byte, error)
}

type EventServiceImpl struct {
	tx    database.Transactor
	repo  repository.EventRepository
	blobs storage.BlobStore
	qr    artifact.QRGenerator
	now   func() time.Time
}

func NewEventService(
	tx database.Transactor,
	repo repository.EventRepository,
	blobs storage.BlobStore,
	qr artifact.QRGenerator,
) EventService {
	return &EventServiceImpl{
		tx:    tx,
		repo:  repo,
		blobs: blobs,
		qr:    qr,
		now:   time.Now,
	}
}

// NewEventServiceWithClock 測試用，固定「今天」
func NewEventServiceWithClock(
	tx database.Transactor,
	repo repository.EventRepository,
	blobs storage.BlobStore,
	qr artifact.QRGenerator,
	now func() time.Time,
) EventService {
	s := NewEventService(tx, repo, blobs, qr).(*EventServiceImpl)
	s.now = now
	return s
}

func (s *EventServiceImpl) List(ctx context.Context, query string, when model.DateFilter) ([]*model.Event, error) {
	if !when.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.List(ctx, model.EventFilter{
		Query: query,
		When:  when,
		Today: s.now().UTC(),
	})
}

func (s *EventServiceImpl) ListByOrganizer(ctx context.Context, organizerID int) ([]*model.Event, error) {
	return s.repo.ListByOrganizer(ctx, organizerID)
}

func (s *EventServiceImpl) Get(ctx context.Context, id int) (*model.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventServiceImpl) Create(ctx context.Context, organizerID int, event *model.Event) (*model.Event, error) {
	event.OrganizerID = organizerID

	var created *model.Event
	var qrRef string
	err := s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		var err error
		// 1. 先寫入，取得 id
		created, err = s.repo.Create(ctx, tx, event)
		if err != nil {
			return err
		}
		// 2. 用 id 產生 QR code 並只更新 qr_code 欄位
		qrRef, err = s.attachQRCode(ctx, tx, created.ID)
		if err != nil {
			return err
		}
		created.QRCode = &qrRef
		return nil
	})
	if err != nil {
		// 交易失敗，已寫入的檔案不再被引用
		s.removeBlob(ctx, qrRef)
		return nil, err
	}

	logger.WithComponent("service").Info("event created",
		zap.Int("event_id", created.ID),
		zap.Int("organizer_id", organizerID),
	)
	return created, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, actorID int, id int, params model.UpdateEventParams) (*model.Event, error) {
	if params.IsEmpty() {
		return nil, apperrors.ErrInvalidInput
	}

	var oldRef *string
	var updated *model.Event
	var qrRef string
	err := s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		// 鎖住活動列，同時進行的更新會依序讀到前一次寫入的 qr_code
		event, err := s.repo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if !event.IsOrganizedBy(actorID) {
			return apperrors.ErrForbidden
		}
		oldRef = event.QRCode

		updated, err = s.repo.Update(ctx, tx, id, params)
		if err != nil {
			return err
		}
		// 每次儲存都重新產生 QR code，內容只由 id 決定
		qrRef, err = s.attachQRCode(ctx, tx, id)
		if err != nil {
			return err
		}
		updated.QRCode = &qrRef
		return nil
	})
	if err != nil {
		s.removeBlob(ctx, qrRef)
		return nil, err
	}

	if oldRef != nil {
		s.removeBlob(ctx, *oldRef)
	}
	return updated, nil
}

func (s *EventServiceImpl) Delete(ctx context.Context, actorID int, id int) error {
	var oldRef *string
	err := s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		event, err := s.repo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if !event.IsOrganizedBy(actorID) {
			return apperrors.ErrForbidden
		}
		oldRef = event.QRCode
		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	if oldRef != nil {
		s.removeBlob(ctx, *oldRef)
	}
	logger.WithComponent("service").Info("event deleted", zap.Int("event_id", id), zap.Int("actor_id", actorID))
	return nil
}

func (s *EventServiceImpl) QRCode(ctx context.Context, id int) ([]byte, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.QRCode == nil {
		return nil, apperrors.ErrQRCodeNotReady
	}

	png, err := s.blobs.Get(ctx, *event.QRCode)
	if errors.Is(err, apperrors.ErrBlobNotFound) {
		return nil, apperrors.ErrQRCodeNotReady
	}
	return png, err
}

// attachQRCode 產生 QR code、存檔並寫回 ref；寫檔成功但更新失敗時仍回傳 ref 供清理
func (s *EventServiceImpl) attachQRCode(ctx context.Context, tx pgx.Tx, eventID int) (string, error) {
	png, err := s.qr.Generate(eventID)
	if err != nil {
		return "", err
	}
	ref, err := s.blobs.Put(ctx, artifact.QRCodeDir, artifact.QRCodeFilename(eventID), png)
	if err != nil {
		return "", err
	}
	if err := s.repo.AttachQRCode(ctx, tx, eventID, ref); err != nil {
		return ref, err
	}
	return ref, nil
}

func (s *EventServiceImpl) removeBlob(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.blobs.Delete(context.WithoutCancel(ctx), ref); err != nil && !errors.Is(err, apperrors.ErrBlobNotFound) {
		logger.WithComponent("service").Warn("remove blob failed", zap.String("ref", ref), zap.Error(err))
	}
}
