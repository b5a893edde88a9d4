package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrms/internal/model"
)

// FundRequestRepository defines fund request persistence operations.
type FundRequestRepository interface {
	Create(ctx context.Context, request *model.FundRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.FundRequest, error)
	ListAll(ctx context.Context) ([]model.FundRequest, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.FundRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.RequestStatus) error
}

type fundRequestRepository struct {
	db *gorm.DB
}

// NewFundRequestRepository creates a new fund request repository.
func NewFundRequestRepository(db *gorm.DB) FundRequestRepository {
	return &fundRequestRepository{db: db}
}

// Create inserts a new fund request.
func (r *fundRequestRepository) Create(ctx context.Context, request *model.FundRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// FindByID finds a fund request with its owner loaded.
func (r *fundRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FundRequest, error) {
	var request model.FundRequest
	if err := r.db.WithContext(ctx).Preload("Employee.User").
		Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// ListAll lists every fund request, most recent first.
func (r *fundRequestRepository) ListAll(ctx context.Context) ([]model.FundRequest, error) {
	var requests []model.FundRequest
	if err := r.db.WithContext(ctx).Preload("Employee.User").
		Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListByEmployee lists one employee's fund requests, most recent first.
func (r *fundRequestRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.FundRequest, error) {
	var requests []model.FundRequest
	if err := r.db.WithContext(ctx).Preload("Employee.User").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatus overwrites the status field unconditionally.
func (r *fundRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RequestStatus) error {
	return r.db.WithContext(ctx).Model(&model.FundRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}
