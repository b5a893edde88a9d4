package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrms/internal/model"
)

// VacationRequestRepository defines vacation request persistence operations.
type VacationRequestRepository interface {
	Create(ctx context.Context, request *model.VacationRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.VacationRequest, error)
	ListAll(ctx context.Context) ([]model.VacationRequest, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.VacationRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.RequestStatus) error
}

type vacationRequestRepository struct {
	db *gorm.DB
}

// NewVacationRequestRepository creates a new vacation request repository.
func NewVacationRequestRepository(db *gorm.DB) VacationRequestRepository {
	return &vacationRequestRepository{db: db}
}

// Create inserts a new vacation request.
func (r *vacationRequestRepository) Create(ctx context.Context, request *model.VacationRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// FindByID finds a vacation request with its owner loaded.
func (r *vacationRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.VacationRequest, error) {
	var request model.VacationRequest
	if err := r.db.WithContext(ctx).Preload("Employee.User").
		Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// ListAll lists every vacation request, most recent first. The id tiebreak
// keeps the order stable for equal timestamps.
func (r *vacationRequestRepository) ListAll(ctx context.Context) ([]model.VacationRequest, error) {
	var requests []model.VacationRequest
	if err := r.db.WithContext(ctx).Preload("Employee.User").
		Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListByEmployee lists one employee's vacation requests, most recent first.
func (r *vacationRequestRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.VacationRequest, error) {
	var requests []model.VacationRequest
	if err := r.db.WithContext(ctx).Preload("Employee.User").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatus overwrites the status field. No prior-state check: concurrent
// reviewers race at the storage layer and the last write wins.
func (r *vacationRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RequestStatus) error {
	return r.db.WithContext(ctx).Model(&model.VacationRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}
