package createlesson

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
	"time"
)

type Input struct {
	User        user.User
	Title       string
	Description string
	Content     string
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
	now              func() time.Time
}

func New(
	log logging.Logger,
	lessonRepository lesson.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if lessonRepository == nil {
		panic(e.NewNilArgumentError("lessonRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:              log,
		lessonRepository: lessonRepository,
		now:              now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := authz.Authorize(input.User, authz.ActionCreate, input.User.ID); err != nil {
		return result, err
	}

	createdLesson, err := s.lessonRepository.Create(
		ctx,
		lesson.CreateInput{
			Title:       input.Title,
			Description: input.Description,
			Content:     input.Content,
			CreatedBy:   input.User.ID,
			CreatedAt:   s.now(),
		},
	)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.User.ID))
		return result, err
	}

	s.log.Info(
		ctx,
		"New lesson successfully created.",
		logging.Entry("lessonID", createdLesson.ID),
		logging.Entry("userID", input.User.ID),
	)
	result.Lesson = createdLesson
	return result, nil
}
