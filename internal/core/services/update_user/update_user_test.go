package updateuser

import (
	c "classportal/internal/core/domain/common"
	"classportal/internal/core/domain/logging"
	"classportal/internal/core/domain/user"
	"classportal/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var NOW time.Time = time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC)

type testSuite struct {
	log            *logging.FakeLogger
	userRepository *user.FakeUserRepository
}

func setupSuite(t *testing.T) *testSuite {
	t.Helper()
	return &testSuite{
		log:            logging.NewFakeLogger(),
		userRepository: user.NewFakeUserRepository(),
	}
}

func (s *testSuite) createUser(t *testing.T, name string, email c.Email) user.User {
	t.Helper()
	u, err := s.userRepository.Create(context.Background(), user.CreateUserInput{
		Name:         name,
		Email:        email,
		PasswordHash: user.PasswordHash("hash"),
		Role:         user.RoleStudent,
		CreatedAt:    NOW,
	})
	require.NoError(t, err)
	return u
}

func (s *testSuite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepository)
}

func TestProfileFieldsUpdated(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	u := suite.createUser(t, "Old Name", c.Email("student@school.test"))
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		UserID:              u.ID,
		DoNameUpdate:        true,
		Name:                "New Name",
		DoPhoneNumberUpdate: true,
		PhoneNumber:         c.NewOptional("+1234567890", true),
		DoGradeUpdate:       true,
		Grade:               c.NewOptional("10", true),
	})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, "New Name", result.User.Name)
	require.Equal(t, c.NewOptional("+1234567890", true), result.User.PhoneNumber)
	require.Equal(t, c.NewOptional("10", true), result.User.Grade)
	require.Equal(t, c.Email("student@school.test"), result.User.Email)

	updated, err := suite.userRepository.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, "New Name", updated.Name)
}

func TestFieldsWithoutFlagsUntouched(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	u := suite.createUser(t, "Old Name", c.Email("student@school.test"))
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{
		UserID: u.ID,
		Name:   "Ignored",
		School: c.NewOptional("Ignored", true),
	})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, "Old Name", result.User.Name)
	require.False(t, result.User.School.IsPresent)
}

func TestEmailUpdateToTakenEmail(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	suite.createUser(t, "Other", c.Email("taken@school.test"))
	u := suite.createUser(t, "Student", c.Email("student@school.test"))
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		UserID:        u.ID,
		DoEmailUpdate: true,
		Email:         c.Email("taken@school.test"),
	})

	// Verify ---
	require.ErrorIs(t, err, user.ErrEmailAlreadyExists)
	unchanged, getErr := suite.userRepository.GetByID(context.Background(), u.ID)
	require.NoError(t, getErr)
	require.Equal(t, c.Email("student@school.test"), unchanged.Email)
}

func TestUserDoesNotExist(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{
		UserID:       user.ID(42),
		DoNameUpdate: true,
		Name:         "New Name",
	})

	// Verify ---
	require.ErrorIs(t, err, user.ErrUserDoesNotExist)
}
