package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hrms/internal/auth"
	"hrms/internal/errors"
	"hrms/internal/model"
	"hrms/internal/repository"
)

// VacationPayload is the creation payload for a vacation request. Dates are
// date strings (2006-01-02 or RFC3339).
type VacationPayload struct {
	StartDate string
	EndDate   string
	Reason    string
}

// FundPayload is the creation payload for a fund request. Amount is a
// number string.
type FundPayload struct {
	FundType    string
	Amount      string
	Reason      string
	RequestType string
}

// GeneralPayload is the creation payload for a general request. Priority
// defaults to MEDIUM when empty.
type GeneralPayload struct {
	RequestType string
	Subject     string
	Description string
	Priority    string
}

// RequestService validates and constructs requests, answers role-scoped list
// queries, and applies status transitions. Every operation takes the resolved
// caller identity explicitly.
type RequestService interface {
	CreateVacation(ctx context.Context, ident *auth.Identity, payload VacationPayload) (*model.VacationRequest, error)
	ListVacations(ctx context.Context, ident *auth.Identity) ([]model.VacationRequest, error)
	ReviewVacation(ctx context.Context, ident *auth.Identity, id uuid.UUID, status string) (*model.VacationRequest, error)

	CreateFund(ctx context.Context, ident *auth.Identity, payload FundPayload) (*model.FundRequest, error)
	ListFunds(ctx context.Context, ident *auth.Identity) ([]model.FundRequest, error)
	ReviewFund(ctx context.Context, ident *auth.Identity, id uuid.UUID, status string) (*model.FundRequest, error)

	CreateGeneral(ctx context.Context, ident *auth.Identity, payload GeneralPayload) (*model.GeneralRequest, error)
	ListGenerals(ctx context.Context, ident *auth.Identity) ([]model.GeneralRequest, error)
	ReviewGeneral(ctx context.Context, ident *auth.Identity, id uuid.UUID, status string) (*model.GeneralRequest, error)
}

type requestService struct {
	vacationRepo repository.VacationRequestRepository
	fundRepo     repository.FundRequestRepository
	generalRepo  repository.GeneralRequestRepository
	now          func() time.Time
}

// NewRequestService creates a new request service.
func NewRequestService(
	vacationRepo repository.VacationRequestRepository,
	fundRepo repository.FundRequestRepository,
	generalRepo repository.GeneralRequestRepository,
) RequestService {
	return &requestService{
		vacationRepo: vacationRepo,
		fundRepo:     fundRepo,
		generalRepo:  generalRepo,
		now:          time.Now,
	}
}

// ownerEmployeeID gates creation: any authenticated caller may create, but
// only under their own employee profile.
func ownerEmployeeID(ident *auth.Identity) (uuid.UUID, error) {
	if ident == nil {
		return uuid.Nil, errors.ErrUnauthorized
	}
	if !auth.Allowed(ident.Role, auth.ActionCreate) {
		return uuid.Nil, errors.ErrInsufficientPermission
	}
	if !ident.HasEmployee() {
		return uuid.Nil, errors.ErrProfileMissing
	}
	return ident.EmployeeID(), nil
}

// reviewStatus gates review and checks the target status is an enum member.
// Any member is accepted; the transition itself is unconditional.
func reviewStatus(ident *auth.Identity, status string) (model.RequestStatus, error) {
	if ident == nil {
		return "", errors.ErrUnauthorized
	}
	if !auth.Allowed(ident.Role, auth.ActionReview) {
		return "", errors.ErrInsufficientPermission
	}
	target := model.RequestStatus(status)
	if !target.IsValid() {
		return "", errors.NewValidationError("invalid status")
	}
	return target, nil
}

// listScope answers "which requests may this caller see": everything for
// privileged roles, otherwise only the caller's own.
func listScope(ident *auth.Identity) (all bool, employeeID uuid.UUID, err error) {
	if ident == nil {
		return false, uuid.Nil, errors.ErrUnauthorized
	}
	if auth.Allowed(ident.Role, auth.ActionReadAll) {
		return true, uuid.Nil, nil
	}
	if !ident.HasEmployee() {
		return false, uuid.Nil, errors.ErrProfileMissing
	}
	return false, ident.EmployeeID(), nil
}

// parseRequestDate accepts a bare date or a full RFC3339 timestamp.
func parseRequestDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// vacationDays is the inclusive calendar day count between two dates. No
// business-day exclusion.
func vacationDays(start, end time.Time) int {
	startDay := start.Truncate(24 * time.Hour)
	endDay := end.Truncate(24 * time.Hour)
	return int(endDay.Sub(startDay).Hours()/24) + 1
}

// CreateVacation validates and persists a vacation request with status PENDING.
func (s *requestService) CreateVacation(ctx context.Context, ident *auth.Identity, payload VacationPayload) (*model.VacationRequest, error) {
	employeeID, err := ownerEmployeeID(ident)
	if err != nil {
		return nil, err
	}

	if payload.StartDate == "" || payload.EndDate == "" {
		return nil, errors.NewValidationError("start date and end date are required")
	}

	start, err := parseRequestDate(payload.StartDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid start date")
	}
	end, err := parseRequestDate(payload.EndDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid end date")
	}

	if !start.Before(end) {
		return nil, errors.NewValidationError("end date must be after start date")
	}
	if start.Before(s.now()) {
		return nil, errors.NewValidationError("start date cannot be in the past")
	}

	request := &model.VacationRequest{
		EmployeeID:    employeeID,
		StartDate:     start,
		EndDate:       end,
		DaysRequested: vacationDays(start, end),
		Reason:        payload.Reason,
		Status:        model.StatusPending,
	}
	if err := s.vacationRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create vacation request: %w", err)
	}

	return s.vacationRepo.FindByID(ctx, request.ID)
}

// ListVacations returns the vacation requests visible to the caller.
func (s *requestService) ListVacations(ctx context.Context, ident *auth.Identity) ([]model.VacationRequest, error) {
	all, employeeID, err := listScope(ident)
	if err != nil {
		return nil, err
	}
	if all {
		return s.vacationRepo.ListAll(ctx)
	}
	return s.vacationRepo.ListByEmployee(ctx, employeeID)
}

// ReviewVacation overwrites a vacation request's status.
func (s *requestService) ReviewVacation(ctx context.Context, ident *auth.Identity, id uuid.UUID, status string) (*model.VacationRequest, error) {
	target, err := reviewStatus(ident, status)
	if err != nil {
		return nil, err
	}

	if _, err := s.vacationRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRequestNotFound
		}
		return nil, err
	}
	if err := s.vacationRepo.UpdateStatus(ctx, id, target); err != nil {
		return nil, fmt.Errorf("update vacation request status: %w", err)
	}
	return s.vacationRepo.FindByID(ctx, id)
}

// CreateFund validates and persists a fund request with status PENDING.
func (s *requestService) CreateFund(ctx context.Context, ident *auth.Identity, payload FundPayload) (*model.FundRequest, error) {
	employeeID, err := ownerEmployeeID(ident)
	if err != nil {
		return nil, err
	}

	if payload.FundType == "" || payload.Amount == "" || payload.Reason == "" || payload.RequestType == "" {
		return nil, errors.NewValidationError("all fields are required")
	}

	fundType := model.FundType(payload.FundType)
	if !fundType.IsValid() {
		return nil, errors.NewValidationError("invalid fund type")
	}

	amount, err := decimal.NewFromString(payload.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.NewValidationError("amount must be a positive number")
	}

	request := &model.FundRequest{
		EmployeeID:  employeeID,
		FundType:    fundType,
		Amount:      amount,
		Reason:      payload.Reason,
		RequestType: payload.RequestType,
		Status:      model.StatusPending,
	}
	if err := s.fundRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create fund request: %w", err)
	}

	return s.fundRepo.FindByID(ctx, request.ID)
}

// ListFunds returns the fund requests visible to the caller.
func (s *requestService) ListFunds(ctx context.Context, ident *auth.Identity) ([]model.FundRequest, error) {
	all, employeeID, err := listScope(ident)
	if err != nil {
		return nil, err
	}
	if all {
		return s.fundRepo.ListAll(ctx)
	}
	return s.fundRepo.ListByEmployee(ctx, employeeID)
}

// ReviewFund overwrites a fund request's status.
func (s *requestService) ReviewFund(ctx context.Context, ident *auth.Identity, id uuid.UUID, status string) (*model.FundRequest, error) {
	target, err := reviewStatus(ident, status)
	if err != nil {
		return nil, err
	}

	if _, err := s.fundRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRequestNotFound
		}
		return nil, err
	}
	if err := s.fundRepo.UpdateStatus(ctx, id, target); err != nil {
		return nil, fmt.Errorf("update fund request status: %w", err)
	}
	return s.fundRepo.FindByID(ctx, id)
}

// CreateGeneral validates and persists a general request with status PENDING.
func (s *requestService) CreateGeneral(ctx context.Context, ident *auth.Identity, payload GeneralPayload) (*model.GeneralRequest, error) {
	employeeID, err := ownerEmployeeID(ident)
	if err != nil {
		return nil, err
	}

	if payload.RequestType == "" || payload.Subject == "" || payload.Description == "" {
		return nil, errors.NewValidationError("request type, subject, and description are required")
	}

	priority := model.Priority(payload.Priority)
	if payload.Priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, errors.NewValidationError("invalid priority level")
	}

	request := &model.GeneralRequest{
		EmployeeID:  employeeID,
		RequestType: payload.RequestType,
		Subject:     payload.Subject,
		Description: payload.Description,
		Priority:    priority,
		Status:      model.StatusPending,
	}
	if err := s.generalRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create general request: %w", err)
	}

	return s.generalRepo.FindByID(ctx, request.ID)
}

// ListGenerals returns the general requests visible to the caller.
func (s *requestService) ListGenerals(ctx context.Context, ident *auth.Identity) ([]model.GeneralRequest, error) {
	all, employeeID, err := listScope(ident)
	if err != nil {
		return nil, err
	}
	if all {
		return s.generalRepo.ListAll(ctx)
	}
	return s.generalRepo.ListByEmployee(ctx, employeeID)
}

// ReviewGeneral overwrites a general request's status.
func (s *requestService) ReviewGeneral(ctx context.Context, ident *auth.Identity, id uuid.UUID, status string) (*model.GeneralRequest, error) {
	target, err := reviewStatus(ident, status)
	if err != nil {
		return nil, err
	}

	if _, err := s.generalRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRequestNotFound
		}
		return nil, err
	}
	if err := s.generalRepo.UpdateStatus(ctx, id, target); err != nil {
		return nil, fmt.Errorf("update general request status: %w", err)
	}
	return s.generalRepo.FindByID(ctx, id)
}
