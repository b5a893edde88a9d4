package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RequestKind tags the three independent request workflows.
type RequestKind string

const (
	KindVacation RequestKind = "vacation"
	KindFund     RequestKind = "fund"
	KindGeneral  RequestKind = "general"
)

// RequestStatus is the lifecycle field on every request. Requests start
// PENDING; reviewers overwrite the status with any other member, no prior-state
// precondition is enforced and the last write wins.
type RequestStatus string

const (
	StatusPending    RequestStatus = "PENDING"
	StatusApproved   RequestStatus = "APPROVED"
	StatusRejected   RequestStatus = "REJECTED"
	StatusInProgress RequestStatus = "IN_PROGRESS"
	StatusCompleted  RequestStatus = "COMPLETED"
)

// IsValid reports whether the status is a known member.
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// FundType enumerates what a fund request may pay for.
type FundType string

const (
	FundTravel    FundType = "TRAVEL"
	FundMedical   FundType = "MEDICAL"
	FundEducation FundType = "EDUCATION"
	FundEquipment FundType = "EQUIPMENT"
	FundEmergency FundType = "EMERGENCY"
	FundOther     FundType = "OTHER"
)

// IsValid reports whether the fund type is a known member.
func (f FundType) IsValid() bool {
	switch f {
	case FundTravel, FundMedical, FundEducation, FundEquipment, FundEmergency, FundOther:
		return true
	}
	return false
}

// Priority ranks general requests. Defaults to MEDIUM when not supplied.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// IsValid reports whether the priority is a known member.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// VacationRequest is a leave request owned by exactly one employee.
type VacationRequest struct {
	ID            uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	EmployeeID    uuid.UUID     `json:"employee_id" gorm:"type:char(36);not null;index"`
	StartDate     time.Time     `json:"start_date" gorm:"not null"`
	EndDate       time.Time     `json:"end_date" gorm:"not null"`
	DaysRequested int           `json:"days_requested" gorm:"not null"`
	Reason        string        `json:"reason" gorm:"type:text"`
	Status        RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CreatedAt     time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Relations
	Employee Employee `json:"-" gorm:"foreignKey:EmployeeID"`
}

// BeforeCreate sets UUID before creating the record.
func (v *VacationRequest) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// FundRequest asks for a reimbursable expense of an enumerated type.
type FundRequest struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	EmployeeID  uuid.UUID       `json:"employee_id" gorm:"type:char(36);not null;index"`
	FundType    FundType        `json:"fund_type" gorm:"type:varchar(20);not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Reason      string          `json:"reason" gorm:"type:text;not null"`
	RequestType string          `json:"request_type" gorm:"size:100;not null"`
	Status      RequestStatus   `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CreatedAt   time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Employee Employee `json:"-" gorm:"foreignKey:EmployeeID"`
}

// BeforeCreate sets UUID before creating the record.
func (f *FundRequest) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// GeneralRequest is a free-form request with a subject and a priority.
type GeneralRequest struct {
	ID          uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	EmployeeID  uuid.UUID     `json:"employee_id" gorm:"type:char(36);not null;index"`
	RequestType string        `json:"request_type" gorm:"size:100;not null"`
	Subject     string        `json:"subject" gorm:"size:255;not null"`
	Description string        `json:"description" gorm:"type:text;not null"`
	Priority    Priority      `json:"priority" gorm:"type:varchar(20);not null;default:'MEDIUM'"`
	Status      RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CreatedAt   time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Relations
	Employee Employee `json:"-" gorm:"foreignKey:EmployeeID"`
}

// BeforeCreate sets UUID before creating the record.
func (g *GeneralRequest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
