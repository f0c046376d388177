package announcement

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type FakeRepository struct {
	Announcements []Announcement
	ReturnError   bool
	lock          sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Announcements: make([]Announcement, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (a Announcement, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not create announcement %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, a := range r.Announcements {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	a = Announcement{
		ID:        maxID + 1,
		Title:     input.Title,
		Content:   input.Content,
		CreatedBy: input.CreatedBy,
		CreatedAt: input.CreatedAt,
	}
	r.Announcements = append(r.Announcements, a)
	return a, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (a Announcement, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Announcements {
		if a.ID == id {
			return a, nil
		}
	}
	return a, ErrAnnouncementDoesNotExist
}

func (r *FakeRepository) Search(ctx context.Context, options SearchOptions) ([]Announcement, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not search announcements")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	result := make([]Announcement, 0, len(r.Announcements))
	for _, a := range r.Announcements {
		if options.CreatedBy.IsPresent && a.CreatedBy != options.CreatedBy.Value {
			continue
		}
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateInput) (a Announcement, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not update announcement %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Announcements {
		if a.ID != input.ID {
			continue
		}
		if input.DoTitleUpdate {
			r.Announcements[ix].Title = input.Title
		}
		if input.DoContentUpdate {
			r.Announcements[ix].Content = input.Content
		}
		return r.Announcements[ix], nil
	}
	return a, ErrAnnouncementDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Announcements {
		if a.ID == id {
			r.Announcements = append(r.Announcements[:ix], r.Announcements[ix+1:]...)
			return nil
		}
	}
	return ErrAnnouncementDoesNotExist
}

type FakeCreatedEventPublisher struct {
	Published   []Announcement
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeCreatedEventPublisher() *FakeCreatedEventPublisher {
	return &FakeCreatedEventPublisher{}
}

func (p *FakeCreatedEventPublisher) PublishCreated(ctx context.Context, a Announcement) error {
	if p.ReturnError {
		return fmt.Errorf("could not publish announcement %d", a.ID)
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, a)
	return nil
}
