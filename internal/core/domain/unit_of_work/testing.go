package uow

import (
	"classportal/internal/core/domain/announcement"
	"classportal/internal/core/domain/lesson"
	"classportal/internal/core/domain/user"
	"context"
)

type FakeUnitOfWorkContext struct {
	UserRepository         *user.FakeUserRepository
	SessionRepository      *user.FakeSessionRepository
	LessonRepository       *lesson.FakeRepository
	AnnouncementRepository *announcement.FakeRepository
	WasRollbackCalled      bool
	WasCommitCalled        bool
}

func NewFakeUnitOfWorkContext(
	userRepository *user.FakeUserRepository,
	sessionRepository *user.FakeSessionRepository,
	lessonRepository *lesson.FakeRepository,
	announcementRepository *announcement.FakeRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		UserRepository:         userRepository,
		SessionRepository:      sessionRepository,
		LessonRepository:       lessonRepository,
		AnnouncementRepository: announcementRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) Sessions() user.SessionRepository {
	return c.SessionRepository
}

func (c *FakeUnitOfWorkContext) Lessons() lesson.Repository {
	return c.LessonRepository
}

func (c *FakeUnitOfWorkContext) Announcements() announcement.Repository {
	return c.AnnouncementRepository
}

type FakeUnitOfWork struct {
	Context *FakeUnitOfWorkContext
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	userRepository := user.NewFakeUserRepository()
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			userRepository,
			user.NewFakeSessionRepository(userRepository),
			lesson.NewFakeRepository(),
			announcement.NewFakeRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	return u.Context, nil
}
