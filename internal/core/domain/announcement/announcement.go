package announcement

import (
	"classportal/internal/core/domain/user"
	"time"
)

type ID int64

type Announcement struct {
	ID        ID
	Title     string
	Content   string
	CreatedBy user.ID
	CreatedAt time.Time
}
