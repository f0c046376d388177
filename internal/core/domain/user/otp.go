package user

import (
	c "classportal/internal/core/domain/common"
	e "classportal/internal/core/domain/errors"
	"context"
	"time"
)

type OTPCode string

const OTPLength = 6

const OTPValidFor = 10 * time.Minute

// OTP is the password reset sub-state of a user. Either no code is issued at
// all, or a code is stored together with its expiry timestamp.
type OTP struct {
	Code     c.Optional[OTPCode]
	Expires  c.Optional[time.Time]
	Verified bool
}

func (o OTP) Validate() error {
	if o.Code.IsPresent != o.Expires.IsPresent {
		return e.NewInvalidStateError("otp code and expiry must be set together")
	}
	if o.Verified && !o.Code.IsPresent {
		return e.NewInvalidStateError("otp must not be verified without a code")
	}
	return nil
}

func (o OTP) IsIssued() bool {
	return o.Code.IsPresent && o.Expires.IsPresent
}

func (o OTP) IsExpired(now time.Time) bool {
	if !o.IsIssued() {
		return true
	}
	return !now.Before(o.Expires.Value)
}

func (o OTP) Matches(code OTPCode) bool {
	return o.Code.IsPresent && o.Code.Value == code
}

type OTPGenerator interface {
	GenerateOTP() OTPCode
}

// Delivery is the notifier outcome. The notifier never fails past its
// boundary: an unreachable transport is reported as Delivered == false with
// an operator-facing diagnostic.
type Delivery struct {
	Delivered  bool
	Diagnostic string
}

type OTPSender interface {
	SendOTP(ctx context.Context, user User, code OTPCode) Delivery
}
