package lesson

import (
	c "classportal/internal/core/domain/common"
	"classportal/internal/core/domain/user"
	"context"
	"time"
)

type CreateInput struct {
	Title       string
	Description string
	Content     string
	CreatedBy   user.ID
	CreatedAt   time.Time
}

type UpdateInput struct {
	ID                  ID
	DoTitleUpdate       bool
	Title               string
	DoDescriptionUpdate bool
	Description         string
	DoContentUpdate     bool
	Content             string
}

// SearchOptions limits the result set; results are always newest first.
type SearchOptions struct {
	CreatedBy c.Optional[user.ID]
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Lesson, error)
	GetByID(ctx context.Context, id ID) (Lesson, error)
	Search(ctx context.Context, options SearchOptions) ([]Lesson, error)
	Update(ctx context.Context, input UpdateInput) (Lesson, error)
	Delete(ctx context.Context, id ID) error
}
