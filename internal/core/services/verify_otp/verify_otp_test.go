package verifyotp

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
	EMAIL = c.Email("student@school.test")
	CODE  = user.OTPCode("654321")
)

var NOW time.Time = time.Date(2023, 3, 15, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	log      *logging.FakeLogger
	userRepo *user.FakeUserRepository
	userID   user.ID
}

func setupSuite(t *testing.T) *testSuite {
	t.Helper()
	suite := &testSuite{
		log:      logging.NewFakeLogger(),
		userRepo: user.NewFakeUserRepository(),
	}
	u, err := suite.userRepo.Create(context.Background(), user.CreateUserInput{
		Name:         "Test Student",
		Email:        EMAIL,
		PasswordHash: user.PasswordHash("hash"),
		Role:         user.RoleStudent,
		CreatedAt:    NOW,
	})
	require.NoError(t, err)
	suite.userID = u.ID
	return suite
}

func (s *testSuite) issueOTP(t *testing.T, code user.OTPCode, expires time.Time) {
	t.Helper()
	err := s.userRepo.SetOTP(context.Background(), user.SetOTPInput{
		UserID:  s.userID,
		Code:    code,
		Expires: expires,
	})
	require.NoError(t, err)
}

func (s *testSuite) createService(now time.Time) services.Service[Input, Result] {
	return New(s.log, s.userRepo, func() time.Time { return now })
}

func TestSuccessMarksVerifiedAndKeepsCode(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	suite.issueOTP(t, CODE, NOW.Add(user.OTPValidFor))
	service := suite.createService(NOW)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: EMAIL, Code: CODE})

	// Verify ---
	require.NoError(t, err)
	u, err := suite.userRepo.GetByID(context.Background(), suite.userID)
	require.NoError(t, err)
	require.True(t, u.OTP.Verified)
	require.True(t, u.OTP.Matches(CODE))
	require.Equal(t, NOW.Add(user.OTPValidFor), u.OTP.Expires.Value)
}

func TestExpiredCode(t *testing.T) {
	cases := []struct {
		id  string
		now time.Time
	}{
		{id: "exactly at expiry", now: NOW.Add(user.OTPValidFor)},
		{id: "after expiry", now: NOW.Add(user.OTPValidFor + time.Minute)},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			suite := setupSuite(t)
			suite.issueOTP(t, CODE, NOW.Add(user.OTPValidFor))
			service := suite.createService(testcase.now)

			// Exercise ---
			_, err := service.Run(context.Background(), Input{Email: EMAIL, Code: CODE})

			// Verify ---
			require.ErrorIs(t, err, user.ErrOTPExpired)
			u, getErr := suite.userRepo.GetByID(context.Background(), suite.userID)
			require.NoError(t, getErr)
			require.False(t, u.OTP.Verified)
			// Code and expiry stay in place for diagnostics.
			require.True(t, u.OTP.Matches(CODE))
			require.True(t, u.OTP.Expires.IsPresent)
		})
	}
}

func TestMismatchedCode(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	suite.issueOTP(t, CODE, NOW.Add(user.OTPValidFor))
	service := suite.createService(NOW)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: EMAIL, Code: user.OTPCode("000000")})

	// Verify ---
	require.ErrorIs(t, err, user.ErrOTPMismatch)
	u, getErr := suite.userRepo.GetByID(context.Background(), suite.userID)
	require.NoError(t, getErr)
	require.False(t, u.OTP.Verified)
}

func TestNoCodeIssued(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	service := suite.createService(NOW)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: EMAIL, Code: CODE})

	// Verify ---
	require.ErrorIs(t, err, user.ErrOTPMismatch)
}

func TestUnknownEmail(t *testing.T) {
	// Setup ---
	suite := setupSuite(t)
	service := suite.createService(NOW)

	// Exercise ---
	_, err := service.Run(
		context.Background(),
		Input{Email: c.Email("nobody@school.test"), Code: CODE},
	)

	// Verify ---
	require.ErrorIs(t, err, user.ErrUserDoesNotExist)
}
