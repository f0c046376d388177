package loginwithemail

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

const (
	EMAIL         = c.Email("student@school.test")
	PASSWORD      = user.RawPassword("secret-password")
	SESSION_TOKEN = "test-session-token"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	log         *logging.FakeLogger
	userRepo    *user.FakeUserRepository
	sessionRepo *user.FakeSessionRepository
	hasher      *user.FakePasswordHasher
}

func setupSuite() *testSuite {
	userRepo := user.NewFakeUserRepository()
	return &testSuite{
		log:         logging.NewFakeLogger(),
		userRepo:    userRepo,
		sessionRepo: user.NewFakeSessionRepository(userRepo),
		hasher:      user.NewFakePasswordHasher(),
	}
}

func (s *testSuite) createUser(t *testing.T, email c.Email, password user.RawPassword) user.User {
	t.Helper()
	hash, err := s.hasher.HashPassword(password)
	require.NoError(t, err)
	u, err := s.userRepo.Create(context.Background(), user.CreateUserInput{
		Name:         "Test Student",
		Email:        email,
		PasswordHash: hash,
		Role:         user.RoleStudent,
		CreatedAt:    NOW,
	})
	require.NoError(t, err)
	return u
}

func (s *testSuite) createService() services.Service[Input, Result] {
	return New(
		s.log,
		s.userRepo,
		s.sessionRepo,
		s.hasher,
		user.NewFakeSessionTokenGenerator(SESSION_TOKEN),
		func() time.Time { return NOW },
	)
}

func TestSuccess(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	created := suite.createUser(t, EMAIL, PASSWORD)
	service := suite.createService()

	// Exercise ---
	result, err := service.Run(context.Background(), Input{Email: EMAIL, Password: PASSWORD})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, user.SessionToken(SESSION_TOKEN), result.Token)
	require.Equal(t, created.ID, result.User.ID)

	sessionUser, err := suite.sessionRepo.GetUserByToken(context.Background(), result.Token)
	require.NoError(t, err)
	require.Equal(t, created.ID, sessionUser.ID)
}

func TestUnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	suite.createUser(t, EMAIL, PASSWORD)
	service := suite.createService()

	// Exercise ---
	_, errUnknownEmail := service.Run(
		context.Background(),
		Input{Email: c.Email("nobody@school.test"), Password: PASSWORD},
	)
	_, errWrongPassword := service.Run(
		context.Background(),
		Input{Email: EMAIL, Password: user.RawPassword("wrong-password")},
	)

	// Verify ---
	require.ErrorIs(t, errUnknownEmail, user.ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPassword, user.ErrInvalidCredentials)
	require.Equal(t, errUnknownEmail, errWrongPassword)
}
