package announcement

import (
	c "classportal/internal/core/domain/common"
	"classportal/internal/core/domain/user"
	"context"
	"time"
)

type CreateInput struct {
	Title     string
	Content   string
	CreatedBy user.ID
	CreatedAt time.Time
}

type UpdateInput struct {
	ID              ID
	DoTitleUpdate   bool
	Title           string
	DoContentUpdate bool
	Content         string
}

// SearchOptions limits the result set; results are always newest first.
type SearchOptions struct {
	CreatedBy c.Optional[user.ID]
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Announcement, error)
	GetByID(ctx context.Context, id ID) (Announcement, error)
	Search(ctx context.Context, options SearchOptions) ([]Announcement, error)
	Update(ctx context.Context, input UpdateInput) (Announcement, error)
	Delete(ctx context.Context, id ID) error
}

// CreatedEventPublisher notifies interested parties about a new announcement.
type CreatedEventPublisher interface {
	PublishCreated(ctx context.Context, announcement Announcement) error
}
