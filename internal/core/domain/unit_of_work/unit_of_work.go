package uow

import (
	"classportal/internal/core/domain/announcement"
	"classportal/internal/core/domain/lesson"
	"classportal/internal/core/domain/user"
	"context"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Sessions() user.SessionRepository
	Lessons() lesson.Repository
	Announcements() announcement.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
