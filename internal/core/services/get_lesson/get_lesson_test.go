package getlesson

import (
	"classportal/internal/core/domain/authz"
	"classportal/internal/core/domain/lesson"
	"classportal/internal/core/domain/logging"
	"classportal/internal/core/domain/user"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	OWNER         = user.User{ID: user.ID(1), Role: user.RoleTeacher}
	OTHER_TEACHER = user.User{ID: user.ID(2), Role: user.RoleTeacher}
	STUDENT       = user.User{ID: user.ID(3), Role: user.RoleStudent}
)

func TestGetLesson(t *testing.T) {
	cases := []struct {
		id            string
		actor         user.User
		expectedError error
	}{
		{id: "student views any lesson", actor: STUDENT, expectedError: nil},
		{id: "owning teacher views own lesson", actor: OWNER, expectedError: nil},
		{
			id:            "teacher may not view another teacher's lesson",
			actor:         OTHER_TEACHER,
			expectedError: authz.ErrUnauthorized,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			log := logging.NewFakeLogger()
			lessonRepository := lesson.NewFakeRepository()
			created, err := lessonRepository.Create(context.Background(), lesson.CreateInput{
				Title:     "Algebra",
				CreatedBy: OWNER.ID,
				CreatedAt: time.Date(2023, 5, 10, 9, 0, 0, 0, time.UTC),
			})
			require.NoError(t, err)
			service := New(log, lessonRepository)

			// Exercise ---
			result, err := service.Run(
				context.Background(),
				Input{User: testcase.actor, LessonID: created.ID},
			)

			// Verify ---
			if testcase.expectedError != nil {
				require.ErrorIs(t, err, testcase.expectedError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, created, result.Lesson)
		})
	}
}

func TestLessonDoesNotExist(t *testing.T) {
	// Setup ---
	service := New(logging.NewFakeLogger(), lesson.NewFakeRepository())

	// Exercise ---
	_, err := service.Run(context.Background(), Input{User: STUDENT, LessonID: lesson.ID(42)})

	// Verify ---
	require.ErrorIs(t, err, lesson.ErrLessonDoesNotExist)
}
