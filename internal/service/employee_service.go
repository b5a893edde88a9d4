package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hrms/internal/auth"
	"hrms/internal/cache"
	"hrms/internal/errors"
	"hrms/internal/model"
	"hrms/internal/repository"
)

const (
	bcryptCost        = 10
	employeeCacheTTL  = 5 * time.Minute
	employeeDirectory = "employees:all"
)

// OnboardPayload creates a user together with its employee profile.
type OnboardPayload struct {
	Email            string
	Name             string
	Password         string
	Role             string
	EmployeeCode     string
	FirstName        string
	LastName         string
	Position         string
	Department       string
	HireDate         string
	Salary           string
	Phone            string
	Address          string
	EmergencyContact string
}

// EmployeeUpdatePayload carries the mutable profile fields. Nil fields are
// left untouched.
type EmployeeUpdatePayload struct {
	FirstName        *string
	LastName         *string
	Position         *string
	Department       *string
	Salary           *string
	Phone            *string
	Address          *string
	EmergencyContact *string
}

// EmployeeService manages the employee directory. Reads are cached; every
// write invalidates the directory and the owning user's identity.
type EmployeeService interface {
	List(ctx context.Context, ident *auth.Identity) ([]model.Employee, error)
	Get(ctx context.Context, ident *auth.Identity, id uuid.UUID) (*model.Employee, error)
	Onboard(ctx context.Context, ident *auth.Identity, payload OnboardPayload) (*model.Employee, error)
	Update(ctx context.Context, ident *auth.Identity, id uuid.UUID, payload EmployeeUpdatePayload) (*model.Employee, error)
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
	userRepo     repository.UserRepository
	identity     IdentityService
	cache        *cache.Client
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(
	employeeRepo repository.EmployeeRepository,
	userRepo repository.UserRepository,
	identity IdentityService,
	cache *cache.Client,
) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		identity:     identity,
		cache:        cache,
	}
}

// List returns the full directory for privileged roles, with caching.
func (s *employeeService) List(ctx context.Context, ident *auth.Identity) ([]model.Employee, error) {
	if ident == nil {
		return nil, errors.ErrUnauthorized
	}
	if !auth.Allowed(ident.Role, auth.ActionReadAll) {
		return nil, errors.ErrInsufficientPermission
	}

	if data, _ := s.cache.Get(ctx, employeeDirectory); data != nil {
		var cached []model.Employee
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	if payload, err := json.Marshal(employees); err == nil {
		_ = s.cache.Set(ctx, employeeDirectory, payload, employeeCacheTTL)
	}

	return employees, nil
}

// Get returns one employee. Privileged roles may read anyone; everyone else
// only their own profile.
func (s *employeeService) Get(ctx context.Context, ident *auth.Identity, id uuid.UUID) (*model.Employee, error) {
	if ident == nil {
		return nil, errors.ErrUnauthorized
	}
	if !auth.Allowed(ident.Role, auth.ActionReadAll) && ident.EmployeeID() != id {
		return nil, errors.ErrInsufficientPermission
	}

	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

// Onboard creates a user and its employee profile in one transaction.
func (s *employeeService) Onboard(ctx context.Context, ident *auth.Identity, payload OnboardPayload) (*model.Employee, error) {
	if ident == nil {
		return nil, errors.ErrUnauthorized
	}
	if !auth.Allowed(ident.Role, auth.ActionManageEmployees) {
		return nil, errors.ErrInsufficientPermission
	}

	if payload.Email == "" || payload.Name == "" || payload.Password == "" ||
		payload.EmployeeCode == "" || payload.FirstName == "" || payload.LastName == "" {
		return nil, errors.NewValidationError("email, name, password, employee code, first name, and last name are required")
	}

	role := model.Role(payload.Role)
	if payload.Role == "" {
		role = model.RoleEmployee
	}
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role")
	}

	salary := decimal.Zero
	if payload.Salary != "" {
		parsed, err := decimal.NewFromString(payload.Salary)
		if err != nil || parsed.IsNegative() {
			return nil, errors.NewValidationError("salary must be a non-negative number")
		}
		salary = parsed
	}

	hireDate := time.Now()
	if payload.HireDate != "" {
		parsed, err := parseRequestDate(payload.HireDate)
		if err != nil {
			return nil, errors.NewValidationError("invalid hire date")
		}
		hireDate = parsed
	}

	if existing, err := s.userRepo.FindByEmail(ctx, payload.Email); err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        payload.Email,
		Name:         payload.Name,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}
	employee := &model.Employee{
		EmployeeCode:     payload.EmployeeCode,
		FirstName:        payload.FirstName,
		LastName:         payload.LastName,
		Position:         payload.Position,
		Department:       payload.Department,
		HireDate:         hireDate,
		Salary:           salary,
		Phone:            payload.Phone,
		Address:          payload.Address,
		EmergencyContact: payload.EmergencyContact,
	}

	if err := s.employeeRepo.CreateWithUser(ctx, user, employee); err != nil {
		return nil, fmt.Errorf("onboard employee: %w", err)
	}
	employee.User = *user

	_ = s.cache.Delete(ctx, employeeDirectory)

	return employee, nil
}

// Update applies profile changes and invalidates the caches that carry them.
func (s *employeeService) Update(ctx context.Context, ident *auth.Identity, id uuid.UUID, payload EmployeeUpdatePayload) (*model.Employee, error) {
	if ident == nil {
		return nil, errors.ErrUnauthorized
	}
	if !auth.Allowed(ident.Role, auth.ActionManageEmployees) {
		return nil, errors.ErrInsufficientPermission
	}

	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEmployeeNotFound
		}
		return nil, err
	}

	if payload.FirstName != nil {
		employee.FirstName = *payload.FirstName
	}
	if payload.LastName != nil {
		employee.LastName = *payload.LastName
	}
	if payload.Position != nil {
		employee.Position = *payload.Position
	}
	if payload.Department != nil {
		employee.Department = *payload.Department
	}
	if payload.Salary != nil {
		parsed, err := decimal.NewFromString(*payload.Salary)
		if err != nil || parsed.IsNegative() {
			return nil, errors.NewValidationError("salary must be a non-negative number")
		}
		employee.Salary = parsed
	}
	if payload.Phone != nil {
		employee.Phone = *payload.Phone
	}
	if payload.Address != nil {
		employee.Address = *payload.Address
	}
	if payload.EmergencyContact != nil {
		employee.EmergencyContact = *payload.EmergencyContact
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}

	_ = s.cache.Delete(ctx, employeeDirectory)
	_ = s.identity.Invalidate(ctx, employee.UserID)

	return employee, nil
}
