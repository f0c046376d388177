package user

import (
	c "classportal/internal/core/domain/common"
	e "classportal/internal/core/domain/errors"
	"fmt"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type SessionToken string

const MinPasswordLength = 8

type Preferences struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

func DefaultPreferences() Preferences {
	return Preferences{Language: "en", Theme: "light"}
}

type User struct {
	ID           ID
	Name         string
	Email        c.Email
	PasswordHash PasswordHash
	Role         Role
	PhoneNumber  c.Optional[string]
	Gender       c.Optional[string]
	Grade        c.Optional[string]
	School       c.Optional[string]
	Subject      c.Optional[string]
	Preferences  Preferences
	CreatedAt    time.Time
	OTP          OTP
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	if u.Role == RoleNotSet {
		return e.NewInvalidStateError(fmt.Sprintf("role is not set for user %d", u.ID))
	}
	return u.OTP.Validate()
}
