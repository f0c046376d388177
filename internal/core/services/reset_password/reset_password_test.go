package resetpassword

import (
	c "classportal/internal/core/domain/common"
	"classportal/internal/core/domain/logging"
	uow "classportal/internal/core/domain/unit_of_work"
	"classportal/internal/core/domain/user"
	"classportal/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	EMAIL        = c.Email("student@school.test")
	CODE         = user.OTPCode("654321")
	OLD_PASSWORD = user.RawPassword("old-password")
	NEW_PASSWORD = user.RawPassword("new-password")
)

var NOW time.Time = time.Date(2023, 3, 15, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	log        *logging.FakeLogger
	unitOfWork *uow.FakeUnitOfWork
	hasher     *user.FakePasswordHasher
	userID     user.ID
}

func setupSuite(t *testing.T) *testSuite {
	t.Helper()
	suite := &testSuite{
		log:        logging.NewFakeLogger(),
		unitOfWork: uow.NewFakeUnitOfWork(),
		hasher:     user.NewFakePasswordHasher(),
	}
	oldHash, err := suite.hasher.HashPassword(OLD_PASSWORD)
	require.NoError(t, err)
	u, err := suite.userRepo().Create(context.Background(), user.CreateUserInput{
		Name:         "Test Student",
		Email:        EMAIL,
		PasswordHash: oldHash,
		Role:         user.RoleStudent,
		CreatedAt:    NOW,
	})
	require.NoError(t, err)
	suite.userID = u.ID
	return suite
}

func (s *testSuite) userRepo() *user.FakeUserRepository {
	return s.unitOfWork.Context.UserRepository
}

func (s *testSuite) issueOTP(t *testing.T, verified bool, expires time.Time) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.userRepo().SetOTP(ctx, user.SetOTPInput{
		UserID:  s.userID,
		Code:    CODE,
		Expires: expires,
	}))
	if verified {
		require.NoError(t, s.userRepo().MarkOTPVerified(ctx, s.userID))
	}
}

func (s *testSuite) createService(now time.Time) services.Service[Input, Result] {
	return New(s.log, s.userRepo(), s.unitOfWork, s.hasher, func() time.Time { return now })
}

func TestSuccessSwapsPasswordAndClearsOTP(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	suite.issueOTP(t, true, NOW.Add(user.OTPValidFor))
	service := suite.createService(NOW)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: EMAIL, NewPassword: NEW_PASSWORD})

	// Verify ---
	require.NoError(t, err)
	require.True(t, suite.unitOfWork.Context.WasCommitCalled)

	u, err := suite.userRepo().GetByID(context.Background(), suite.userID)
	require.NoError(t, err)
	require.False(t, u.OTP.Code.IsPresent)
	require.False(t, u.OTP.Expires.IsPresent)
	require.False(t, u.OTP.Verified)
	require.False(t, suite.hasher.ValidatePassword(OLD_PASSWORD, u.PasswordHash))
	require.True(t, suite.hasher.ValidatePassword(NEW_PASSWORD, u.PasswordHash))
}

func TestNotVerified(t *testing.T) {
	cases := []struct {
		id       string
		issueOTP bool
	}{
		{id: "code issued but not verified", issueOTP: true},
		{id: "no code issued", issueOTP: false},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			suite := setupSuite(t)
			if testcase.issueOTP {
				suite.issueOTP(t, false, NOW.Add(user.OTPValidFor))
			}
			service := suite.createService(NOW)

			// Exercise ---
			_, err := service.Run(
				context.Background(),
				Input{Email: EMAIL, NewPassword: NEW_PASSWORD},
			)

			// Verify ---
			require.ErrorIs(t, err, user.ErrOTPNotVerified)
			u, getErr := suite.userRepo().GetByID(context.Background(), suite.userID)
			require.NoError(t, getErr)
			require.True(t, suite.hasher.ValidatePassword(OLD_PASSWORD, u.PasswordHash))
		})
	}
}

func TestExpiredBetweenVerifyAndReset(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	suite.issueOTP(t, true, NOW.Add(user.OTPValidFor))
	service := suite.createService(NOW.Add(user.OTPValidFor + time.Second))

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: EMAIL, NewPassword: NEW_PASSWORD})

	// Verify ---
	require.ErrorIs(t, err, user.ErrOTPExpired)
	u, getErr := suite.userRepo().GetByID(context.Background(), suite.userID)
	require.NoError(t, getErr)
	require.True(t, suite.hasher.ValidatePassword(OLD_PASSWORD, u.PasswordHash))
}

func TestUnknownEmail(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	service := suite.createService(NOW)

	// Exercise ---
	_, err := service.Run(
		context.Background(),
		Input{Email: c.Email("nobody@school.test"), NewPassword: NEW_PASSWORD},
	)

	// Verify ---
	require.ErrorIs(t, err, user.ErrUserDoesNotExist)
}
