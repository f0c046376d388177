package user

import (
	c "classportal/internal/core/domain/common"
	"context"
	"time"
)

type CreateUserInput struct {
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
}

type UpdateUserInput struct {
	ID                  ID
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
	DoPreferencesUpdate bool
	Preferences         Preferences
}

type SetOTPInput struct {
	UserID  ID
	Code    OTPCode
	Expires time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	Update(ctx context.Context, input UpdateUserInput) (User, error)
	// SetOTP stores a freshly issued code, replacing any previous one and
	// clearing the verified flag, as a single row update.
	SetOTP(ctx context.Context, input SetOTPInput) error
	MarkOTPVerified(ctx context.Context, id ID) error
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
	ClearOTP(ctx context.Context, id ID) error
}

type CreateSessionInput struct {
	UserID    ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetUserByToken(ctx context.Context, token SessionToken) (User, error)
	Delete(ctx context.Context, token SessionToken) (userID ID, err error)
}
