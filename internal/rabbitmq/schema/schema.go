package schema

import (
	"encoding/json"
	"time"
)

type AnnouncementCreated struct {
	ID        int64
	Title     string
	Content   string
	CreatedBy int64
	CreatedAt time.Time
}

func (a *AnnouncementCreated) Marshal() ([]byte, error) {
	return json.Marshal(a)
}

func (a *AnnouncementCreated) Unmarshal(data []byte) error {
	return json.Unmarshal(data, a)
}
