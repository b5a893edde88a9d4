package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee is the HR profile attached to a user. It cannot exist without its
// user and is never referenced by more than one user.
type Employee struct {
	ID               uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID           uuid.UUID       `json:"user_id" gorm:"type:char(36);uniqueIndex;not null"`
	EmployeeCode     string          `json:"employee_code" gorm:"uniqueIndex;size:20;not null"`
	FirstName        string          `json:"first_name" gorm:"size:100;not null"`
	LastName         string          `json:"last_name" gorm:"size:100;not null"`
	Position         string          `json:"position" gorm:"size:100"`
	Department       string          `json:"department" gorm:"size:100;index"`
	HireDate         time.Time       `json:"hire_date"`
	Salary           decimal.Decimal `json:"salary" gorm:"type:decimal(12,2);not null;default:0"`
	Phone            string          `json:"phone" gorm:"size:30"`
	Address          string          `json:"address" gorm:"size:255"`
	EmergencyContact string          `json:"emergency_contact" gorm:"size:255"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// EmployeeSummary is the display-safe projection of an employee attached to
// request records. Sensitive fields (salary, address, contacts) stay out.
type EmployeeSummary struct {
	ID           uuid.UUID `json:"id"`
	EmployeeCode string    `json:"employee_code"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
}

// Summary builds the display-safe projection. The employee's user relation
// must be loaded.
func (e *Employee) Summary() EmployeeSummary {
	return EmployeeSummary{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Name:         e.User.Name,
		Email:        e.User.Email,
	}
}
