package updatelesson

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
	User                user.User
	LessonID            lesson.ID
	DoTitleUpdate       bool
	Title               string
	DoDescriptionUpdate bool
	Description         string
	DoContentUpdate     bool
	Content             string
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Lesson lesson.Lesson
}

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

	if err := authz.Authorize(input.User, authz.ActionEdit, l.CreatedBy); err != nil {
		return result, err
	}

	updatedLesson, err := s.lessonRepository.Update(
		ctx,
		lesson.UpdateInput{
			ID:                  input.LessonID,
			DoTitleUpdate:       input.DoTitleUpdate,
			Title:               input.Title,
			DoDescriptionUpdate: input.DoDescriptionUpdate,
			Description:         input.Description,
			DoContentUpdate:     input.DoContentUpdate,
			Content:             input.Content,
		},
	)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("lessonID", input.LessonID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Lesson successfully updated.",
		logging.Entry("lessonID", updatedLesson.ID),
		logging.Entry("userID", input.User.ID),
	)
	result.Lesson = updatedLesson
	return result, nil
}
