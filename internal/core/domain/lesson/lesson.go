package lesson

import (
	"classportal/internal/core/domain/user"
	"time"
)

type ID int64

type Lesson struct {
	ID          ID
	Title       string
	Description string
	Content     string
	CreatedBy   user.ID
	CreatedAt   time.Time
}
