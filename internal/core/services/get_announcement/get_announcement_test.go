package getannouncement

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
	STUDENT       = user.User{ID: user.ID(3), Role: user.RoleStudent}
)

func TestGetAnnouncement(t *testing.T) {
	cases := []struct {
		id            string
		actor         user.User
		expectedError error
	}{
		{id: "student views any announcement", actor: STUDENT, expectedError: nil},
		{id: "owning teacher views own announcement", actor: OWNER, expectedError: nil},
		{
			id:            "teacher may not view another teacher's announcement",
			actor:         OTHER_TEACHER,
			expectedError: authz.ErrUnauthorized,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			repository := announcement.NewFakeRepository()
			created, err := repository.Create(context.Background(), announcement.CreateInput{
				Title:     "Exam schedule",
				CreatedBy: OWNER.ID,
				CreatedAt: time.Date(2023, 5, 10, 9, 0, 0, 0, time.UTC),
			})
			require.NoError(t, err)
			service := New(logging.NewFakeLogger(), repository)

			// Exercise ---
			result, err := service.Run(
				context.Background(),
				Input{User: testcase.actor, AnnouncementID: created.ID},
			)

			// Verify ---
			if testcase.expectedError != nil {
				require.ErrorIs(t, err, testcase.expectedError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, created, result.Announcement)
		})
	}
}

func TestAnnouncementDoesNotExist(t *testing.T) {
	// Setup ---
	service := New(logging.NewFakeLogger(), announcement.NewFakeRepository())

	// Exercise ---
	_, err := service.Run(
		context.Background(),
		Input{User: STUDENT, AnnouncementID: announcement.ID(42)},
	)

	// Verify ---
	require.ErrorIs(t, err, announcement.ErrAnnouncementDoesNotExist)
}
