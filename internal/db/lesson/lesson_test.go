package lesson

import (
	c "classportal/internal/core/domain/common"
	"classportal/internal/core/domain/lesson"
	"classportal/internal/core/domain/user"
	"classportal/internal/db"
	dbuser "classportal/internal/db/user"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Date(2023, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool    *pgxpool.Pool
	repo    *PgxLessonRepository
	teacher user.User
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) SetupTest() {
	u, err := dbuser.NewPgxRepository(suite.pool).Create(context.Background(), user.CreateUserInput{
		Name:         "Test Teacher",
		Email:        c.Email("teacher@school.test"),
		PasswordHash: user.PasswordHash("test-password-hash"),
		Role:         user.RoleTeacher,
		Preferences:  user.DefaultPreferences(),
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	suite.teacher = u
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxLessonRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createLesson(title string, createdAt time.Time) lesson.Lesson {
	l, err := suite.repo.Create(context.Background(), lesson.CreateInput{
		Title:       title,
		Description: "Description",
		Content:     "Content",
		CreatedBy:   suite.teacher.ID,
		CreatedAt:   createdAt,
	})
	suite.Require().Nil(err)
	return l
}

func (suite *testSuite) TestCreateAndGetByID() {
	created := suite.createLesson("Algebra", NOW)

	l, err := suite.repo.GetByID(context.Background(), created.ID)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, l.ID)
	assert.Equal("Algebra", l.Title)
	assert.Equal(suite.teacher.ID, l.CreatedBy)
	assert.True(NOW.Equal(l.CreatedAt))
}

func (suite *testSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(context.Background(), lesson.ID(42))

	suite.Require().ErrorIs(err, lesson.ErrLessonDoesNotExist)
}

func (suite *testSuite) TestSearchOrdersNewestFirst() {
	suite.createLesson("First", NOW)
	suite.createLesson("Second", NOW.Add(time.Hour))
	suite.createLesson("Third", NOW.Add(2*time.Hour))

	lessons, err := suite.repo.Search(context.Background(), lesson.SearchOptions{})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(lessons, 3)
	assert.Equal("Third", lessons[0].Title)
	assert.Equal("Second", lessons[1].Title)
	assert.Equal("First", lessons[2].Title)
}

func (suite *testSuite) TestSearchFiltersByCreator() {
	suite.createLesson("Mine", NOW)

	lessons, err := suite.repo.Search(
		context.Background(),
		lesson.SearchOptions{CreatedBy: c.NewOptional(user.ID(999), true)},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Empty(lessons)
}

func (suite *testSuite) TestUpdate() {
	created := suite.createLesson("Algebra", NOW)

	l, err := suite.repo.Update(context.Background(), lesson.UpdateInput{
		ID:              created.ID,
		DoContentUpdate: true,
		Content:         "New content",
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal("New content", l.Content)
	assert.Equal("Algebra", l.Title)
}

func (suite *testSuite) TestDelete() {
	created := suite.createLesson("Algebra", NOW)

	err := suite.repo.Delete(context.Background(), created.ID)

	assert := suite.Require()
	assert.Nil(err)
	_, err = suite.repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(err, lesson.ErrLessonDoesNotExist)
}

func (suite *testSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(context.Background(), lesson.ID(42))

	suite.Require().ErrorIs(err, lesson.ErrLessonDoesNotExist)
}
