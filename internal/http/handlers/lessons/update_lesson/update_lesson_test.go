package updatelesson

import (
	"classportal/internal/core/domain/authz"
	"classportal/internal/core/domain/lesson"
	"classportal/internal/core/domain/user"
	service "classportal/internal/core/services/update_lesson"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Lesson = lesson.Lesson{
		ID:        input.LessonID,
		Title:     input.Title,
		Content:   input.Content,
		CreatedBy: user.ID(1),
		CreatedAt: time.Date(2020, 1, 1, 1, 1, 1, 0, time.UTC),
	}
	return result, nil
}

func TestUpdateLessonHandler(t *testing.T) {
	cases := []struct {
		id             string
		url            string
		body           string
		serviceErr     error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id:             "title only",
			url:            "/lessons/42",
			body:           `{"title": "Fractions"}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				LessonID:      lesson.ID(42),
				DoTitleUpdate: true,
				Title:         "Fractions",
			},
		},
		{
			id:             "all fields",
			url:            "/lessons/42",
			body:           `{"title": "Fractions", "description": "Intro", "content": "..."}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				LessonID:            lesson.ID(42),
				DoTitleUpdate:       true,
				Title:               "Fractions",
				DoDescriptionUpdate: true,
				Description:         "Intro",
				DoContentUpdate:     true,
				Content:             "...",
			},
		},
		{
			id:             "invalid lesson ID",
			url:            "/lessons/abc",
			body:           `{"title": "Fractions"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid json",
			url:            "/lessons/42",
			body:           `{"title": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "lesson does not exist",
			url:            "/lessons/42",
			body:           `{"title": "Fractions"}`,
			serviceErr:     lesson.ErrLessonDoesNotExist,
			expectedStatus: http.StatusNotFound,
		},
		{
			id:             "not the owner",
			url:            "/lessons/42",
			body:           `{"title": "Fractions"}`,
			serviceErr:     authz.ErrUnauthorized,
			expectedStatus: http.StatusForbidden,
		},
		{
			id:             "not authenticated",
			url:            "/lessons/42",
			body:           `{"title": "Fractions"}`,
			serviceErr:     user.ErrUserDoesNotExist,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceErr}
			router := chi.NewRouter()
			router.Method(http.MethodPatch, "/lessons/{lessonID}", New(stub))
			req, err := http.NewRequest("PATCH", testcase.url, strings.NewReader(testcase.body))
			assert.Nil(t, err)
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, req)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
			if testcase.expectedInput != nil {
				assert.Equal(t, testcase.expectedInput, stub.input)
			}
		})
	}
}
