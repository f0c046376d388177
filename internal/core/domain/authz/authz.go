package authz

import (
	c "classportal/internal/core/domain/common"
	"classportal/internal/core/domain/user"
	"errors"
)

var ErrUnauthorized = errors.New("unauthorized")

type Action struct {
	v string
}

var (
	ActionCreate Action = Action{v: "create"}
	ActionEdit   Action = Action{v: "edit"}
	ActionDelete Action = Action{v: "delete"}
	ActionView   Action = Action{v: "view"}
)

func (a Action) String() string {
	return a.v
}

// Authorize decides whether the actor may perform the action on a content
// record owned by owner. Content mutation is a teacher capability and is
// further restricted to the owning teacher; viewing a single record is open
// to students, while a teacher may only view their own.
func Authorize(actor user.User, action Action, owner user.ID) error {
	switch action {
	case ActionCreate:
		if !actor.Role.IsTeacher() {
			return ErrUnauthorized
		}
		return nil
	case ActionEdit, ActionDelete:
		if !actor.Role.IsTeacher() || actor.ID != owner {
			return ErrUnauthorized
		}
		return nil
	case ActionView:
		if actor.Role.IsTeacher() && actor.ID != owner {
			return ErrUnauthorized
		}
		return nil
	default:
		return ErrUnauthorized
	}
}

// ListScope returns the owner filter for list views: teachers see only
// their own records, everyone else sees all of them.
func ListScope(actor user.User) c.Optional[user.ID] {
	if actor.Role.IsTeacher() {
		return c.NewOptional(actor.ID, true)
	}
	return c.Optional[user.ID]{}
}
