package service

import (
	"context"
	"time"

	"eventflow/internal/artifact"
	"eventflow/internal/database"
	"eventflow/internal/model"
	"eventflow/internal/notify"
	"eventflow/internal/repository"
	"eventflow/internal/storage"
	apperrors "eventflow/pkg/app_errors"
	"eventflow/pkg/logger"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// RegistrationResult Created=false 代表使用者原本就已報名
type RegistrationResult struct {
	Event   *model.Event
	Created bool
}

// Ticket 每次下載都重新產生，不快取
type Ticket struct {
	Filename string
	Content  []byte
}

type RegistrationService interface {
	// Register 冪等；只有第一次報名會寄通知信
	Register(ctx context.Context, eventID int, user *model.User) (*RegistrationResult, error)
	IsRegistered(ctx context.Context, eventID int, userID int) (bool, error)
	DownloadTicket(ctx context.Context, eventID int, user *model.User) (*Ticket, error)
	// ListRegistrations 只有主辦人可以查看
	ListRegistrations(ctx context.Context, actorID int, eventID int) ([]*model.User, error)
	MyRegistrations(ctx context.Context, userID int) ([]*model.Event, error)
}

type RegistrationServiceImpl struct {
	tx       database.Transactor
	repo     repository.EventRepository
	blobs    storage.BlobStore
	renderer artifact.TicketRenderer
	notifier notify.Notifier
	mailFrom string
	now      func() time.Time
}

func NewRegistrationService(
	tx database.Transactor,
	repo repository.EventRepository,
	blobs storage.BlobStore,
	renderer artifact.TicketRenderer,
	notifier notify.Notifier,
	mailFrom string,
) RegistrationService {
	return &RegistrationServiceImpl{
		tx:       tx,
		repo:     repo,
		blobs:    blobs,
		renderer: renderer,
		notifier: notifier,
		mailFrom: mailFrom,
		now:      time.Now,
	}
}

func (s *RegistrationServiceImpl) Register(ctx context.Context, eventID int, user *model.User) (*RegistrationResult, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	var created bool
	err = s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		var err error
		created, err = s.repo.AddRegistration(ctx, tx, eventID, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	log := logger.WithComponent("service").With(zap.Int("event_id", eventID), zap.Int("user_id", user.ID))
	if !created {
		log.Info("already registered")
		return &RegistrationResult{Event: event, Created: false}, nil
	}
	log.Info("registered")

	// 通知失敗不影響報名結果
	if user.HasEmail() {
		msg := notify.RegistrationConfirmation(event, user, s.mailFrom)
		if err := s.notifier.Send(context.WithoutCancel(ctx), msg); err != nil {
			log.Warn("registration confirmation not sent", zap.Error(err))
		}
	}

	return &RegistrationResult{Event: event, Created: true}, nil
}

func (s *RegistrationServiceImpl) IsRegistered(ctx context.Context, eventID int, userID int) (bool, error) {
	return s.repo.IsRegistered(ctx, eventID, userID)
}

func (s *RegistrationServiceImpl) DownloadTicket(ctx context.Context, eventID int, user *model.User) (*Ticket, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	registered, err := s.repo.IsRegistered(ctx, eventID, user.ID)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, apperrors.ErrNotRegistered
	}

	data := artifact.TicketData{
		EventTitle:   event.Title,
		Date:         event.DateString(),
		Time:         event.TimeString(),
		Address:      event.Address,
		RegisteredTo: user.DisplayName(),
		IssuedAt:     s.now(),
	}
	if event.QRCode != nil {
		png, err := s.blobs.Get(ctx, *event.QRCode)
		if err != nil {
			// 缺圖時仍產生票券
			logger.WithComponent("service").Warn("qr code unavailable for ticket",
				zap.Int("event_id", eventID), zap.Error(err))
		} else {
			data.QRCode = png
		}
	}

	content, err := s.renderer.Render(data)
	if err != nil {
		return nil, err
	}
	return &Ticket{
		Filename: artifact.TicketFilename(event.Title),
		Content:  content,
	}, nil
}

func (s *RegistrationServiceImpl) ListRegistrations(ctx context.Context, actorID int, eventID int) ([]*model.User, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsOrganizedBy(actorID) {
		return nil, apperrors.ErrForbidden
	}
	return s.repo.ListRegistrants(ctx, eventID)
}

func (s *RegistrationServiceImpl) MyRegistrations(ctx context.Context, userID int) ([]*model.Event, error) {
	return s.repo.ListRegisteredFor(ctx, userID)
}
