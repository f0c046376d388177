package updateannouncement

import (
	"classportal/internal/core/domain/announcement"
	"classportal/internal/core/domain/authz"
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
)

func setupAnnouncement(
	t *testing.T,
	repository *announcement.FakeRepository,
) announcement.Announcement {
	t.Helper()
	a, err := repository.Create(context.Background(), announcement.CreateInput{
		Title:     "Exam schedule",
		Content:   "Final exams start next Monday.",
		CreatedBy: OWNER.ID,
		CreatedAt: time.Date(2023, 5, 10, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return a
}

func TestOwnerUpdatesAnnouncement(t *testing.T) {
	// Setup ---
	repository := announcement.NewFakeRepository()
	a := setupAnnouncement(t, repository)
	service := New(logging.NewFakeLogger(), repository)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		User:            OWNER,
		AnnouncementID:  a.ID,
		DoContentUpdate: true,
		Content:         "Final exams start next Tuesday.",
	})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, "Final exams start next Tuesday.", result.Announcement.Content)
	require.Equal(t, "Exam schedule", result.Announcement.Title)
}

func TestNonOwningTeacherIsDenied(t *testing.T) {
	// Setup ---
	repository := announcement.NewFakeRepository()
	a := setupAnnouncement(t, repository)
	service := New(logging.NewFakeLogger(), repository)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		User:           OTHER_TEACHER,
		AnnouncementID: a.ID,
		DoTitleUpdate:  true,
		Title:          "Changed",
	})

	// Verify ---
	require.ErrorIs(t, err, authz.ErrUnauthorized)
	unchanged, getErr := repository.GetByID(context.Background(), a.ID)
	require.NoError(t, getErr)
	require.Equal(t, "Exam schedule", unchanged.Title)
}

func TestAnnouncementDoesNotExist(t *testing.T) {
	// Setup ---
	service := New(logging.NewFakeLogger(), announcement.NewFakeRepository())

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		User:           OWNER,
		AnnouncementID: announcement.ID(42),
		DoTitleUpdate:  true,
		Title:          "Changed",
	})

	// Verify ---
	require.ErrorIs(t, err, announcement.ErrAnnouncementDoesNotExist)
}
