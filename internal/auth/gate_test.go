package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hrms/internal/model"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name    string
		role    model.Role
		action  Action
		allowed bool
	}{
		{"employee reads own", model.RoleEmployee, ActionReadOwn, true},
		{"employee creates", model.RoleEmployee, ActionCreate, true},
		{"employee reads all", model.RoleEmployee, ActionReadAll, false},
		{"employee reviews", model.RoleEmployee, ActionReview, false},
		{"employee manages employees", model.RoleEmployee, ActionManageEmployees, false},

		{"manager reads all", model.RoleManager, ActionReadAll, true},
		{"manager reviews", model.RoleManager, ActionReview, true},
		{"manager creates", model.RoleManager, ActionCreate, true},
		{"manager manages employees", model.RoleManager, ActionManageEmployees, false},

		{"hr reads all", model.RoleHR, ActionReadAll, true},
		{"hr reviews", model.RoleHR, ActionReview, true},
		{"hr manages employees", model.RoleHR, ActionManageEmployees, true},

		{"admin reads all", model.RoleAdmin, ActionReadAll, true},
		{"admin reviews", model.RoleAdmin, ActionReview, true},
		{"admin manages employees", model.RoleAdmin, ActionManageEmployees, true},
		{"admin creates", model.RoleAdmin, ActionCreate, true},

		{"unknown role reads own", model.Role("INTERN"), ActionReadOwn, false},
		{"unknown role reviews", model.Role("INTERN"), ActionReview, false},
		{"unknown action", model.RoleAdmin, Action("delete-everything"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, Allowed(tt.role, tt.action))
		})
	}
}
