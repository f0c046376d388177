package getannouncement

import (
	"classportal/internal/core/domain/announcement"
	"classportal/internal/core/domain/authz"
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/logging"
	"classportal/internal/core/domain/user"
	"classportal/internal/core/services"
	"classportal/internal/core/services/auth"
	"context"
	"errors"
)

type Input struct {
	User           user.User
	AnnouncementID announcement.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Announcement announcement.Announcement
}

type service struct {
	log                    logging.Logger
	announcementRepository announcement.Repository
}

func New(
	log logging.Logger,
	announcementRepository announcement.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if announcementRepository == nil {
		panic(e.NewNilArgumentError("announcementRepository"))
	}
	return &service{
		log:                    log,
		announcementRepository: announcementRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.announcementRepository.GetByID(ctx, input.AnnouncementID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, announcement.ErrAnnouncementDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("announcementID", input.AnnouncementID))
		return result, err
	}

	if err := authz.Authorize(input.User, authz.ActionView, a.CreatedBy); err != nil {
		return result, err
	}

	result.Announcement = a
	return result, nil
}
