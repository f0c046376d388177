package user

import (
	c "classportal/internal/core/domain/common"
	"classportal/internal/core/domain/user"
	"classportal/internal/db"
	"context"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const TOKEN = user.SessionToken("test-session-token")

type sessionTestSuite struct {
	suite.Suite
	pool        *pgxpool.Pool
	userRepo    *PgxUserRepository
	sessionRepo *PgxSessionRepository
	user        user.User
}

func (suite *sessionTestSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.userRepo = NewPgxRepository(suite.pool)
	suite.sessionRepo = NewPgxSessionRepository(suite.pool)
}

func (suite *sessionTestSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *sessionTestSuite) SetupTest() {
	u, err := suite.userRepo.Create(context.Background(), user.CreateUserInput{
		Name:         "Test Student",
		Email:        c.Email("student@school.test"),
		PasswordHash: user.PasswordHash("test-password-hash"),
		Role:         user.RoleStudent,
		Preferences:  user.DefaultPreferences(),
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	suite.user = u
}

func (suite *sessionTestSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxSessionRepository(t *testing.T) {
	suite.Run(t, new(sessionTestSuite))
}

func (suite *sessionTestSuite) TestCreateAndGetUserByToken() {
	err := suite.sessionRepo.Create(context.Background(), user.CreateSessionInput{
		UserID:    suite.user.ID,
		Token:     TOKEN,
		CreatedAt: NOW,
	})

	assert := suite.Require()
	assert.Nil(err)
	u, err := suite.sessionRepo.GetUserByToken(context.Background(), TOKEN)
	assert.Nil(err)
	assert.Equal(suite.user.ID, u.ID)
	assert.Equal(suite.user.Email, u.Email)
}

func (suite *sessionTestSuite) TestGetUserByUnknownToken() {
	_, err := suite.sessionRepo.GetUserByToken(context.Background(), user.SessionToken("unknown"))

	suite.Require().ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *sessionTestSuite) TestDelete() {
	err := suite.sessionRepo.Create(context.Background(), user.CreateSessionInput{
		UserID:    suite.user.ID,
		Token:     TOKEN,
		CreatedAt: NOW,
	})
	suite.Require().Nil(err)

	userID, err := suite.sessionRepo.Delete(context.Background(), TOKEN)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(suite.user.ID, userID)
	_, err = suite.sessionRepo.GetUserByToken(context.Background(), TOKEN)
	assert.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *sessionTestSuite) TestDeleteUnknownToken() {
	_, err := suite.sessionRepo.Delete(context.Background(), user.SessionToken("unknown"))

	suite.Require().ErrorIs(err, user.ErrSessionDoesNotExist)
}
