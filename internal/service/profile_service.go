package service

import (
	"context"

	"eventflow/internal/model"
	"eventflow/internal/repository"
	apperrors "eventflow/pkg/app_errors"
)

type Dashboard struct {
	Profile          *model.Profile
	RegisteredEvents []*model.Event
	OrganizedEvents  []*model.Event
}

type ProfileService interface {
	Get(ctx context.Context, userID int) (*model.Profile, error)
	Update(ctx context.Context, userID int, params model.UpdateProfileParams) (*model.Profile, error)
	Dashboard(ctx context.Context, userID int) (*Dashboard, error)
}

type ProfileServiceImpl struct {
	profiles repository.ProfileRepository
	events   repository.EventRepository
}

func NewProfileService(profiles repository.ProfileRepository, events repository.EventRepository) ProfileService {
	return &ProfileServiceImpl{profiles: profiles, events: events}
}

func (s *ProfileServiceImpl) Get(ctx context.Context, userID int) (*model.Profile, error) {
	return s.profiles.FindByUserID(ctx, userID)
}

func (s *ProfileServiceImpl) Update(ctx context.Context, userID int, params model.UpdateProfileParams) (*model.Profile, error) {
	if params.IsEmpty() {
		return nil, apperrors.ErrInvalidInput
	}
	return s.profiles.Update(ctx, userID, params)
}

func (s *ProfileServiceImpl) Dashboard(ctx context.Context, userID int) (*Dashboard, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	registered, err := s.events.ListRegisteredFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	organized, err := s.events.ListByOrganizer(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Profile:          profile,
		RegisteredEvents: registered,
		OrganizedEvents:  organized,
	}, nil
}
