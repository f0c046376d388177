package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrUserDoesNotExist    = errors.New("user does not exist")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrSessionDoesNotExist = errors.New("session does not exist")
)

var (
	ErrOTPExpired     = errors.New("otp has expired")
	ErrOTPMismatch    = errors.New("otp does not match")
	ErrOTPNotVerified = errors.New("otp is not verified")
)
