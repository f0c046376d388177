package signup

import (
	c "classportal/internal/core/domain/common"
	"classportal/internal/core/domain/user"
	service "classportal/internal/core/services/sign_up"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.User = user.User{
		ID:           user.ID(1),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: user.PasswordHash("hash"),
		Role:         input.Role,
		Grade:        input.Grade,
		Preferences:  input.Preferences,
		CreatedAt:    time.Date(2020, 1, 1, 1, 1, 1, 0, time.UTC),
	}
	return result, nil
}

func TestSignUpHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id:             "student",
			body:           `{"name": "Ann", "email": "ann@test.com", "password": "password1", "role": "student", "grade": "7"}`,
			expectedStatus: http.StatusCreated,
			expectedInput: &service.Input{
				Name:        "Ann",
				Email:       c.Email("ann@test.com"),
				Password:    user.RawPassword("password1"),
				Role:        user.RoleStudent,
				Grade:       c.NewOptional("7", true),
				Preferences: user.DefaultPreferences(),
			},
		},
		{
			id:             "email is normalized",
			body:           `{"name": "Ann", "email": "Ann@Test.Com", "password": "password1", "role": "teacher"}`,
			expectedStatus: http.StatusCreated,
			expectedInput: &service.Input{
				Name:        "Ann",
				Email:       c.Email("ann@test.com"),
				Password:    user.RawPassword("password1"),
				Role:        user.RoleTeacher,
				Preferences: user.DefaultPreferences(),
			},
		},
		{
			id:             "invalid json",
			body:           `{"name": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing email",
			body:           `{"name": "Ann", "password": "password1", "role": "student"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "short password",
			body:           `{"name": "Ann", "email": "ann@test.com", "password": "short", "role": "student"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "unknown role",
			body:           `{"name": "Ann", "email": "ann@test.com", "password": "password1", "role": "admin"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "email already exists",
			body:           `{"name": "Ann", "email": "ann@test.com", "password": "password1", "role": "student"}`,
			serviceErr:     user.ErrEmailAlreadyExists,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceErr}
			handler := New(stub)
			req, err := http.NewRequest("POST", "/auth/signup", strings.NewReader(testcase.body))
			assert.Nil(t, err)
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, req)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
			if testcase.expectedInput != nil {
				assert.Equal(t, testcase.expectedInput, stub.input)
			}
		})
	}
}
