package createannouncement

import (
	"classportal/internal/core/domain/announcement"
	"classportal/internal/core/domain/authz"
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
	log                    *logging.FakeLogger
	announcementRepository *announcement.FakeRepository
	eventPublisher         *announcement.FakeCreatedEventPublisher
}

func setupSuite(t *testing.T) *testSuite {
	t.Helper()
	return &testSuite{
		log:                    logging.NewFakeLogger(),
		announcementRepository: announcement.NewFakeRepository(),
		eventPublisher:         announcement.NewFakeCreatedEventPublisher(),
	}
}

func (s *testSuite) createService() services.Service[Input, Result] {
	return New(
		s.log,
		s.announcementRepository,
		s.eventPublisher,
		func() time.Time { return NOW },
	)
}

func TestTeacherCreatesAnnouncement(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		User:    TEACHER,
		Title:   "Exam schedule",
		Content: "Final exams start next Monday.",
	})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, "Exam schedule", result.Announcement.Title)
	require.Equal(t, TEACHER.ID, result.Announcement.CreatedBy)
	require.Equal(t, NOW, result.Announcement.CreatedAt)
	require.Equal(t, []announcement.Announcement{result.Announcement}, suite.eventPublisher.Published)
}

func TestStudentIsDenied(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{User: STUDENT, Title: "Exam schedule"})

	// Verify ---
	require.ErrorIs(t, err, authz.ErrUnauthorized)
	require.Empty(t, suite.announcementRepository.Announcements)
	require.Empty(t, suite.eventPublisher.Published)
}

func TestPublishFailureDoesNotFailCreation(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	suite.eventPublisher.ReturnError = true
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		User:  TEACHER,
		Title: "Exam schedule",
	})

	// Verify ---
	require.NoError(t, err)
	require.NotZero(t, result.Announcement.ID)
	require.Len(t, suite.announcementRepository.Announcements, 1)
}
