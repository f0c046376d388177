package user

import "errors"

type Role struct {
	v string
}

var (
	RoleNotSet  Role = Role{}
	RoleStudent Role = Role{v: "student"}
	RoleTeacher Role = Role{v: "teacher"}
)

func (r Role) String() string {
	return r.v
}

func (r Role) IsTeacher() bool {
	return r == RoleTeacher
}

var ErrParseRole = errors.New("invalid role")

func ParseRole(value string) (Role, error) {
	switch value {
	case "student":
		return RoleStudent, nil
	case "teacher":
		return RoleTeacher, nil
	default:
		return RoleNotSet, ErrParseRole
	}
}
