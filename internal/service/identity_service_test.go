package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hrms/internal/errors"
	"hrms/internal/model"
)

func TestIdentityService_Resolve(t *testing.T) {
	userID := uuid.New()
	employeeID := uuid.New()

	t.Run("user with employee profile", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:    userID,
			Email: "john.doe@company.com",
			Name:  "John Doe",
			Role:  model.RoleEmployee,
			Employee: &model.Employee{
				ID:           employeeID,
				UserID:       userID,
				EmployeeCode: "EMP001",
				FirstName:    "John",
				LastName:     "Doe",
			},
		}, nil)

		service := NewIdentityService(userRepo, nil)
		ident, err := service.Resolve(context.Background(), userID)

		assert.NoError(t, err)
		assert.NotNil(t, ident)
		assert.Equal(t, userID, ident.UserID)
		assert.Equal(t, model.RoleEmployee, ident.Role)
		assert.True(t, ident.HasEmployee())
		assert.Equal(t, employeeID, ident.EmployeeID())
		assert.Equal(t, "EMP001", ident.Employee.EmployeeCode)
		assert.Equal(t, "john.doe@company.com", ident.Employee.Email)

		userRepo.AssertExpectations(t)
	})

	t.Run("user without employee profile", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:    userID,
			Email: "admin@company.com",
			Name:  "System Administrator",
			Role:  model.RoleAdmin,
		}, nil)

		service := NewIdentityService(userRepo, nil)
		ident, err := service.Resolve(context.Background(), userID)

		assert.NoError(t, err)
		assert.NotNil(t, ident)
		assert.False(t, ident.HasEmployee())
		assert.Equal(t, uuid.Nil, ident.EmployeeID())

		userRepo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewIdentityService(userRepo, nil)
		ident, err := service.Resolve(context.Background(), userID)

		assert.Equal(t, errors.ErrUnauthorized, err)
		assert.Nil(t, ident)
	})
}
