package listannouncements

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
	User user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Announcements []announcement.Announcement
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
	announcements, err := s.announcementRepository.Search(
		ctx,
		announcement.SearchOptions{CreatedBy: authz.ListScope(input.User)},
	)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.User.ID))
		return result, err
	}

	result.Announcements = announcements
	return result, nil
}
