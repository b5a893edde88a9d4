package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrms/internal/model"
)

// GeneralRequestRepository defines general request persistence operations.
type GeneralRequestRepository interface {
	Create(ctx context.Context, request *model.GeneralRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.GeneralRequest, error)
	ListAll(ctx context.Context) ([]model.GeneralRequest, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.GeneralRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.RequestStatus) error
}

type generalRequestRepository struct {
	db *gorm.DB
}

// NewGeneralRequestRepository creates a new general request repository.
func NewGeneralRequestRepository(db *gorm.DB) GeneralRequestRepository {
	return &generalRequestRepository{db: db}
}

// Create inserts a new general request.
func (r *generalRequestRepository) Create(ctx context.Context, request *model.GeneralRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// FindByID finds a general request with its owner loaded.
func (r *generalRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.GeneralRequest, error) {
	var request model.GeneralRequest
	if err := r.db.WithContext(ctx).Preload("Employee.User").
		Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// ListAll lists every general request, most recent first.
func (r *generalRequestRepository) ListAll(ctx context.Context) ([]model.GeneralRequest, error) {
	var requests []model.GeneralRequest
	if err := r.db.WithContext(ctx).Preload("Employee.User").
		Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListByEmployee lists one employee's general requests, most recent first.
func (r *generalRequestRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.GeneralRequest, error) {
	var requests []model.GeneralRequest
	if err := r.db.WithContext(ctx).Preload("Employee.User").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatus overwrites the status field unconditionally.
func (r *generalRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RequestStatus) error {
	return r.db.WithContext(ctx).Model(&model.GeneralRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}
