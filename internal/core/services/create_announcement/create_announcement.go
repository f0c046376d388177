package createannouncement

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
	"time"
)

type Input struct {
	User    user.User
	Title   string
	Content string
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
	eventPublisher         announcement.CreatedEventPublisher
	now                    func() time.Time
}

func New(
	log logging.Logger,
	announcementRepository announcement.Repository,
	eventPublisher announcement.CreatedEventPublisher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if announcementRepository == nil {
		panic(e.NewNilArgumentError("announcementRepository"))
	}
	if eventPublisher == nil {
		panic(e.NewNilArgumentError("eventPublisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                    log,
		announcementRepository: announcementRepository,
		eventPublisher:         eventPublisher,
		now:                    now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := authz.Authorize(input.User, authz.ActionCreate, input.User.ID); err != nil {
		return result, err
	}

	createdAnnouncement, err := s.announcementRepository.Create(
		ctx,
		announcement.CreateInput{
			Title:     input.Title,
			Content:   input.Content,
			CreatedBy: input.User.ID,
			CreatedAt: s.now(),
		},
	)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.User.ID))
		return result, err
	}

	// The record is already durable at this point, so a failed publish only
	// degrades the live feed and must not fail the request.
	if err := s.eventPublisher.PublishCreated(ctx, createdAnnouncement); err != nil {
		s.log.Warning(
			ctx,
			"Could not publish announcement created event.",
			logging.Entry("announcementID", createdAnnouncement.ID),
			logging.Entry("err", err),
		)
	}

	s.log.Info(
		ctx,
		"New announcement successfully created.",
		logging.Entry("announcementID", createdAnnouncement.ID),
		logging.Entry("userID", input.User.ID),
	)
	result.Announcement = createdAnnouncement
	return result, nil
}
