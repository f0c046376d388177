package requestpasswordreset

import (
	c "classportal/internal/core/domain/common"
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/logging"
	"classportal/internal/core/domain/user"
	"classportal/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "request-password-reset::" + string(i.Email)
}

// Result is identical for registered and unregistered emails so that the
// caller cannot learn whether an account exists. Code is populated only for
// operator-side disclosure (test mode, undelivered fallback) and must never
// reach a regular response.
type Result struct {
	Code      c.Optional[user.OTPCode]
	Delivered bool
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	otpGenerator   user.OTPGenerator
	otpSender      user.OTPSender
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	otpGenerator user.OTPGenerator,
	otpSender user.OTPSender,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if otpGenerator == nil {
		panic(e.NewNilArgumentError("otpGenerator"))
	}
	if otpSender == nil {
		panic(e.NewNilArgumentError("otpSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		otpGenerator:   otpGenerator,
		otpSender:      otpSender,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"Password reset requested for unknown email.",
			logging.Entry("email", input.Email),
		)
		return Result{}, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset request.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	code := s.otpGenerator.GenerateOTP()
	err = s.userRepository.SetOTP(ctx, user.SetOTPInput{
		UserID:  u.ID,
		Code:    code,
		Expires: s.now().Add(user.OTPValidFor),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not store password reset code.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	delivery := s.otpSender.SendOTP(ctx, u, code)
	if !delivery.Delivered {
		// Undelivered fallback: the stored code stays valid, the operator
		// log is the only place the raw code is disclosed.
		s.log.Warning(
			ctx,
			"Password reset code was not delivered, disclosing via operator log.",
			logging.Entry("userId", u.ID),
			logging.Entry("code", code),
			logging.Entry("diagnostic", delivery.Diagnostic),
		)
	} else {
		s.log.Info(ctx, "Password reset code sent.", logging.Entry("userId", u.ID))
	}

	return Result{Code: c.NewOptional(code, true), Delivered: delivery.Delivered}, nil
}
