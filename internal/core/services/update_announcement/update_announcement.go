package updateannouncement

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
	User            user.User
	AnnouncementID  announcement.ID
	DoTitleUpdate   bool
	Title           string
	DoContentUpdate bool
	Content         string
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

	if err := authz.Authorize(input.User, authz.ActionEdit, a.CreatedBy); err != nil {
		return result, err
	}

	updatedAnnouncement, err := s.announcementRepository.Update(
		ctx,
		announcement.UpdateInput{
			ID:              input.AnnouncementID,
			DoTitleUpdate:   input.DoTitleUpdate,
			Title:           input.Title,
			DoContentUpdate: input.DoContentUpdate,
			Content:         input.Content,
		},
	)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("announcementID", input.AnnouncementID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Announcement successfully updated.",
		logging.Entry("announcementID", updatedAnnouncement.ID),
		logging.Entry("userID", input.User.ID),
	)
	result.Announcement = updatedAnnouncement
	return result, nil
}
