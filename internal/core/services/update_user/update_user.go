package updateuser

import (
	c "classportal/internal/core/domain/common"
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/logging"
	"classportal/internal/core/domain/user"
	"classportal/internal/core/services"
	"classportal/internal/core/services/auth"
	"context"
	"errors"
)

type Input struct {
	UserID              user.ID
	DoNameUpdate        bool
	Name                string
	DoEmailUpdate       bool
	Email               c.Email
	DoPhoneNumberUpdate bool
	PhoneNumber         c.Optional[string]
	DoGenderUpdate      bool
	Gender              c.Optional[string]
	DoGradeUpdate       bool
	Grade               c.Optional[string]
	DoSchoolUpdate      bool
	School              c.Optional[string]
	DoSubjectUpdate     bool
	Subject             c.Optional[string]
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	updatedUser, err := s.userRepository.Update(
		ctx,
		user.UpdateUserInput{
			ID:                  input.UserID,
			DoNameUpdate:        input.DoNameUpdate,
			Name:                input.Name,
			DoEmailUpdate:       input.DoEmailUpdate,
			Email:               input.Email,
			DoPhoneNumberUpdate: input.DoPhoneNumberUpdate,
			PhoneNumber:         input.PhoneNumber,
			DoGenderUpdate:      input.DoGenderUpdate,
			Gender:              input.Gender,
			DoGradeUpdate:       input.DoGradeUpdate,
			Grade:               input.Grade,
			DoSchoolUpdate:      input.DoSchoolUpdate,
			School:              input.School,
			DoSubjectUpdate:     input.DoSubjectUpdate,
			Subject:             input.Subject,
		},
	)
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"User profile successfully updated.",
		logging.Entry("userID", updatedUser.ID),
	)
	result.User = updatedUser
	return result, nil
}
