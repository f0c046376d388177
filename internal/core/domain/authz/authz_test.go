package authz

import (
	"classportal/internal/core/domain/user"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	teacher      = user.User{ID: 1, Role: user.RoleTeacher}
	otherTeacher = user.User{ID: 2, Role: user.RoleTeacher}
	student      = user.User{ID: 3, Role: user.RoleStudent}
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		id      string
		actor   user.User
		action  Action
		owner   user.ID
		allowed bool
	}{
		{id: "teacher creates", actor: teacher, action: ActionCreate, owner: teacher.ID, allowed: true},
		{id: "student creates", actor: student, action: ActionCreate, owner: student.ID, allowed: false},
		{id: "teacher edits own", actor: teacher, action: ActionEdit, owner: teacher.ID, allowed: true},
		{id: "teacher edits other's", actor: otherTeacher, action: ActionEdit, owner: teacher.ID, allowed: false},
		{id: "student edits", actor: student, action: ActionEdit, owner: teacher.ID, allowed: false},
		{id: "teacher deletes own", actor: teacher, action: ActionDelete, owner: teacher.ID, allowed: true},
		{id: "teacher deletes other's", actor: otherTeacher, action: ActionDelete, owner: teacher.ID, allowed: false},
		{id: "student deletes", actor: student, action: ActionDelete, owner: teacher.ID, allowed: false},
		{id: "teacher views own", actor: teacher, action: ActionView, owner: teacher.ID, allowed: true},
		{id: "teacher views other's", actor: otherTeacher, action: ActionView, owner: teacher.ID, allowed: false},
		{id: "student views any", actor: student, action: ActionView, owner: teacher.ID, allowed: true},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			err := Authorize(testcase.actor, testcase.action, testcase.owner)
			if testcase.allowed {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrUnauthorized)
			}
		})
	}
}

func TestListScope(t *testing.T) {
	assert := require.New(t)

	teacherScope := ListScope(teacher)
	assert.True(teacherScope.IsPresent)
	assert.Equal(teacher.ID, teacherScope.Value)

	studentScope := ListScope(student)
	assert.False(studentScope.IsPresent)
}
