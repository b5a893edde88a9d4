package auth

import (
	"github.com/google/uuid"

	"hrms/internal/model"
)

// Identity is the resolved caller passed explicitly into every core
// operation. Nothing in the service layer reads ambient session state.
type Identity struct {
	UserID   uuid.UUID              `json:"user_id"`
	Email    string                 `json:"email"`
	Name     string                 `json:"name"`
	Role     model.Role             `json:"role"`
	Employee *model.EmployeeSummary `json:"employee,omitempty"`
}

// HasEmployee reports whether the caller owns a linked employee profile.
func (i *Identity) HasEmployee() bool {
	return i != nil && i.Employee != nil
}

// EmployeeID returns the linked employee profile id, or uuid.Nil.
func (i *Identity) EmployeeID() uuid.UUID {
	if !i.HasEmployee() {
		return uuid.Nil
	}
	return i.Employee.ID
}
