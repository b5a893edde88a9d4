package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrms/internal/model"
)

// EmployeeRepository defines employee persistence operations.
type EmployeeRepository interface {
	Update(ctx context.Context, employee *model.Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	CreateWithUser(ctx context.Context, user *model.User, employee *model.Employee) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository.
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// Update updates an existing employee.
func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

// FindByID finds an employee by ID with the owning user loaded.
func (r *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).Preload("User").
		Where("id = ?", id).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByUserID finds the employee profile linked to a user.
func (r *employeeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).Preload("User").
		Where("user_id = ?", userID).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// List lists all employees ordered by employee code.
func (r *employeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := r.db.WithContext(ctx).Preload("User").
		Order("employee_code ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// CreateWithUser creates a user and its employee profile in one transaction.
// An employee cannot exist without its user, so a failure rolls back both.
func (r *employeeRepository) CreateWithUser(ctx context.Context, user *model.User, employee *model.Employee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		employee.UserID = user.ID
		return tx.Create(employee).Error
	})
}
