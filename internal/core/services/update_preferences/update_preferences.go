package updatepreferences

import (
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/logging"
	"classportal/internal/core/domain/user"
	"classportal/internal/core/services"
	"classportal/internal/core/services/auth"
	"context"
	"errors"
)

type Input struct {
	UserID           user.ID
	DoLanguageUpdate bool
	Language         string
	DoThemeUpdate    bool
	Theme            string
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Preferences user.Preferences
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
	u, err := s.userRepository.GetByID(ctx, input.UserID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	// Unmentioned keys keep their stored values.
	preferences := u.Preferences
	if input.DoLanguageUpdate {
		preferences.Language = input.Language
	}
	if input.DoThemeUpdate {
		preferences.Theme = input.Theme
	}

	updatedUser, err := s.userRepository.Update(
		ctx,
		user.UpdateUserInput{
			ID:                  input.UserID,
			DoPreferencesUpdate: true,
			Preferences:         preferences,
		},
	)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", input.UserID))
		return result, err
	}

	s.log.Info(
		ctx,
		"User preferences successfully updated.",
		logging.Entry("userID", updatedUser.ID),
	)
	result.Preferences = updatedUser.Preferences
	return result, nil
}
