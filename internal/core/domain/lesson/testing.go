package lesson

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type FakeRepository struct {
	Lessons     []Lesson
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Lessons: make([]Lesson, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (l Lesson, err error) {
	if r.ReturnError {
		return l, fmt.Errorf("could not create lesson %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, l := range r.Lessons {
		if l.ID > maxID {
			maxID = l.ID
		}
	}
	l = Lesson{
		ID:          maxID + 1,
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   input.CreatedAt,
	}
	r.Lessons = append(r.Lessons, l)
	return l, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (l Lesson, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, l := range r.Lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return l, ErrLessonDoesNotExist
}

func (r *FakeRepository) Search(ctx context.Context, options SearchOptions) ([]Lesson, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not search lessons")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	result := make([]Lesson, 0, len(r.Lessons))
	for _, l := range r.Lessons {
		if options.CreatedBy.IsPresent && l.CreatedBy != options.CreatedBy.Value {
			continue
		}
		result = append(result, l)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateInput) (l Lesson, err error) {
	if r.ReturnError {
		return l, fmt.Errorf("could not update lesson %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, l := range r.Lessons {
		if l.ID != input.ID {
			continue
		}
		if input.DoTitleUpdate {
			r.Lessons[ix].Title = input.Title
		}
		if input.DoDescriptionUpdate {
			r.Lessons[ix].Description = input.Description
		}
		if input.DoContentUpdate {
			r.Lessons[ix].Content = input.Content
		}
		return r.Lessons[ix], nil
	}
	return l, ErrLessonDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, l := range r.Lessons {
		if l.ID == id {
			r.Lessons = append(r.Lessons[:ix], r.Lessons[ix+1:]...)
			return nil
		}
	}
	return ErrLessonDoesNotExist
}
