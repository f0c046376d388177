package createlesson

import (
	"classportal/internal/core/domain/authz"
	"classportal/internal/core/domain/lesson"
	"classportal/internal/core/domain/logging"
	"classportal/internal/core/domain/user"
	"classportal/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var NOW time.Time = time.Date(2023, 5, 10, 9, 0, 0, 0, time.UTC)

var (
	TEACHER = user.User{ID: user.ID(1), Name: "Teacher", Role: user.RoleTeacher}
	STUDENT = user.User{ID: user.ID(2), Name: "Student", Role: user.RoleStudent}
)

type testSuite struct {
	log              *logging.FakeLogger
	lessonRepository *lesson.FakeRepository
}

func setupSuite(t *testing.T) *testSuite {
	t.Helper()
	return &testSuite{
		log:              logging.NewFakeLogger(),
		lessonRepository: lesson.NewFakeRepository(),
	}
}

func (s *testSuite) createService() services.Service[Input, Result] {
	return New(s.log, s.lessonRepository, func() time.Time { return NOW })
}

func TestTeacherCreatesLesson(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		User:        TEACHER,
		Title:       "Algebra",
		Description: "Linear equations",
		Content:     "Solve for x.",
	})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, "Algebra", result.Lesson.Title)
	require.Equal(t, TEACHER.ID, result.Lesson.CreatedBy)
	require.Equal(t, NOW, result.Lesson.CreatedAt)
	require.Len(t, suite.lessonRepository.Lessons, 1)
}

func TestStudentIsDenied(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{User: STUDENT, Title: "Algebra"})

	// Verify ---
	require.ErrorIs(t, err, authz.ErrUnauthorized)
	require.Empty(t, suite.lessonRepository.Lessons)
}
