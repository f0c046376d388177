package response

import (
	"classportal/internal/core/domain/announcement"
	"time"
)

type Announcement struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Announcement) FromDomainType(da announcement.Announcement) {
	a.ID = int64(da.ID)
	a.Title = da.Title
	a.Content = da.Content
	a.CreatedBy = int64(da.CreatedBy)
	a.CreatedAt = da.CreatedAt
}
