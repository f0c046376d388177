package deletelesson

import (
	"classportal/internal/core/domain/authz"
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/lesson"
	"classportal/internal/core/domain/logging"
	"classportal/internal/core/domain/user"
	"classportal/internal/core/services"
	"classportal/internal/core/services/auth"
	"context"
	"errors"
)

type Input struct {
	User     user.User
	LessonID lesson.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct{}

type service struct {
	log              logging.Logger
	lessonRepository lesson.Repository
}

func New(
	log logging.Logger,
	lessonRepository lesson.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if lessonRepository == nil {
		panic(e.NewNilArgumentError("lessonRepository"))
	}
	return &service{
		log:              log,
		lessonRepository: lessonRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	l, err := s.lessonRepository.GetByID(ctx, input.LessonID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, lesson.ErrLessonDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("lessonID", input.LessonID))
		return result, err
	}

	if err := authz.Authorize(input.User, authz.ActionDelete, l.CreatedBy); err != nil {
		return result, err
	}

	if err := s.lessonRepository.Delete(ctx, input.LessonID); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, lesson.ErrLessonDoesNotExist) {
			return result, err
		}
		logging.Error(ctx, s.log, err, logging.Entry("lessonID", input.LessonID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Lesson successfully deleted.",
		logging.Entry("lessonID", input.LessonID),
		logging.Entry("userID", input.User.ID),
	)
	return result, nil
}
