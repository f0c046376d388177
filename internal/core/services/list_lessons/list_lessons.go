package listlessons

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
	User user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Lessons []lesson.Lesson
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
	lessons, err := s.lessonRepository.Search(
		ctx,
		lesson.SearchOptions{CreatedBy: authz.ListScope(input.User)},
	)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.User.ID))
		return result, err
	}

	result.Lessons = lessons
	return result, nil
}
