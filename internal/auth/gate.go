package auth

import "hrms/internal/model"

// Action classifies the operations the gate decides on.
type Action string

const (
	// ActionReadOwn covers a caller listing their own requests.
	ActionReadOwn Action = "read-own"
	// ActionReadAll covers listing every employee's requests.
	ActionReadAll Action = "read-all"
	// ActionCreate covers submitting a new request.
	ActionCreate Action = "create"
	// ActionReview covers overwriting a request's status.
	ActionReview Action = "review"
	// ActionManageEmployees covers creating and editing employee profiles.
	ActionManageEmployees Action = "manage-employees"
)

// Allowed is the authorization gate: a pure predicate from (role, action) to
// allow/deny. Review carries no ownership check: a manager may review any
// employee's request, not just direct reports.
func Allowed(role model.Role, action Action) bool {
	switch action {
	case ActionReadOwn, ActionCreate:
		return role.IsValid()
	case ActionReadAll, ActionReview:
		return role.IsPrivileged()
	case ActionManageEmployees:
		return role == model.RoleAdmin || role == model.RoleHR
	}
	return false
}
