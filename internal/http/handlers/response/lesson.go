package response

import (
	"classportal/internal/core/domain/lesson"
	"time"
)

type Lesson struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func (l *Lesson) FromDomainType(dl lesson.Lesson) {
	l.ID = int64(dl.ID)
	l.Title = dl.Title
	l.Description = dl.Description
	l.Content = dl.Content
	l.CreatedBy = int64(dl.CreatedBy)
	l.CreatedAt = dl.CreatedAt
}
