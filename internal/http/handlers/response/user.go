package response

import (
	"classportal/internal/core/domain/user"
	"time"
)

type Preferences struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

type User struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        string      `json:"role"`
	PhoneNumber *string     `json:"phone_number,omitempty"`
	Gender      *string     `json:"gender,omitempty"`
	Grade       *string     `json:"grade,omitempty"`
	School      *string     `json:"school,omitempty"`
	Subject     *string     `json:"subject,omitempty"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Name = du.Name
	u.Email = string(du.Email)
	u.Role = du.Role.String()
	if du.PhoneNumber.IsPresent {
		u.PhoneNumber = &du.PhoneNumber.Value
	}
	if du.Gender.IsPresent {
		u.Gender = &du.Gender.Value
	}
	if du.Grade.IsPresent {
		u.Grade = &du.Grade.Value
	}
	if du.School.IsPresent {
		u.School = &du.School.Value
	}
	if du.Subject.IsPresent {
		u.Subject = &du.Subject.Value
	}
	u.Preferences = Preferences{
		Language: du.Preferences.Language,
		Theme:    du.Preferences.Theme,
	}
	u.CreatedAt = du.CreatedAt
}
