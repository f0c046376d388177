package email

import (
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/logging"
	"classportal/internal/core/domain/user"
	"context"
)

// ConsoleOTPSender writes codes to the log instead of sending mail. It is
// meant for local development and test mode, where no SES credentials exist.
type ConsoleOTPSender struct {
	log logging.Logger
}

func NewConsoleOTPSender(log logging.Logger) *ConsoleOTPSender {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &ConsoleOTPSender{log: log}
}

func (s *ConsoleOTPSender) SendOTP(
	ctx context.Context,
	u user.User,
	code user.OTPCode,
) user.Delivery {
	s.log.Info(
		ctx,
		"One-time password issued.",
		logging.Entry("email", u.Email),
		logging.Entry("code", code),
	)
	return user.Delivery{Delivered: false, Diagnostic: "email delivery is disabled"}
}
