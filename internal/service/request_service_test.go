package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hrms/internal/auth"
	"hrms/internal/errors"
	"hrms/internal/model"
)

// MockVacationRequestRepository is a mock implementation of VacationRequestRepository.
type MockVacationRequestRepository struct {
	mock.Mock
}

func (m *MockVacationRequestRepository) Create(ctx context.Context, request *model.VacationRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockVacationRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.VacationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VacationRequest), args.Error(1)
}

func (m *MockVacationRequestRepository) ListAll(ctx context.Context) ([]model.VacationRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VacationRequest), args.Error(1)
}

func (m *MockVacationRequestRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.VacationRequest, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VacationRequest), args.Error(1)
}

func (m *MockVacationRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockFundRequestRepository is a mock implementation of FundRequestRepository.
type MockFundRequestRepository struct {
	mock.Mock
}

func (m *MockFundRequestRepository) Create(ctx context.Context, request *model.FundRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockFundRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FundRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FundRequest), args.Error(1)
}

func (m *MockFundRequestRepository) ListAll(ctx context.Context) ([]model.FundRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FundRequest), args.Error(1)
}

func (m *MockFundRequestRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.FundRequest, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FundRequest), args.Error(1)
}

func (m *MockFundRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockGeneralRequestRepository is a mock implementation of GeneralRequestRepository.
type MockGeneralRequestRepository struct {
	mock.Mock
}

func (m *MockGeneralRequestRepository) Create(ctx context.Context, request *model.GeneralRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockGeneralRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.GeneralRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GeneralRequest), args.Error(1)
}

func (m *MockGeneralRequestRepository) ListAll(ctx context.Context) ([]model.GeneralRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GeneralRequest), args.Error(1)
}

func (m *MockGeneralRequestRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.GeneralRequest, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GeneralRequest), args.Error(1)
}

func (m *MockGeneralRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// identityWithProfile builds a caller identity that owns an employee profile.
func identityWithProfile(role model.Role) *auth.Identity {
	return &auth.Identity{
		UserID: uuid.New(),
		Email:  "caller@company.com",
		Name:   "Test Caller",
		Role:   role,
		Employee: &model.EmployeeSummary{
			ID:           uuid.New(),
			EmployeeCode: "EMP999",
			FirstName:    "Test",
			LastName:     "Caller",
			Name:         "Test Caller",
			Email:        "caller@company.com",
		},
	}
}

// identityWithoutProfile builds a caller identity with no employee profile,
// like the seeded admin account.
func identityWithoutProfile(role model.Role) *auth.Identity {
	return &auth.Identity{
		UserID: uuid.New(),
		Email:  "caller@company.com",
		Name:   "Test Caller",
		Role:   role,
	}
}

func newTestRequestService(
	vacationRepo *MockVacationRequestRepository,
	fundRepo *MockFundRequestRepository,
	generalRepo *MockGeneralRequestRepository,
	now time.Time,
) *requestService {
	return &requestService{
		vacationRepo: vacationRepo,
		fundRepo:     fundRepo,
		generalRepo:  generalRepo,
		now:          func() time.Time { return now },
	}
}

func TestVacationDays(t *testing.T) {
	day := func(value string) time.Time {
		d, err := time.Parse("2006-01-02", value)
		assert.NoError(t, err)
		return d
	}

	tests := []struct {
		name  string
		start string
		end   string
		days  int
	}{
		{"five day span", "2024-01-01", "2024-01-05", 5},
		{"adjacent days", "2024-01-01", "2024-01-02", 2},
		{"across month boundary", "2024-01-30", "2024-02-02", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.days, vacationDays(day(tt.start), day(tt.end)))
		})
	}
}

func TestRequestService_CreateVacation(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		ident         *auth.Identity
		payload       VacationPayload
		setupMock     func(*MockVacationRequestRepository)
		expectedError error
		expectedDays  int
	}{
		{
			name:    "successful creation",
			ident:   identityWithProfile(model.RoleEmployee),
			payload: VacationPayload{StartDate: "2024-03-01", EndDate: "2024-03-05", Reason: "family trip"},
			setupMock: func(m *MockVacationRequestRepository) {
				stored := uuid.New()
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.VacationRequest")).
					Run(func(args mock.Arguments) {
						request := args.Get(1).(*model.VacationRequest)
						request.ID = stored
					}).Return(nil)
				m.On("FindByID", mock.Anything, stored).Return(&model.VacationRequest{
					ID:            stored,
					StartDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
					EndDate:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
					DaysRequested: 5,
					Status:        model.StatusPending,
				}, nil)
			},
			expectedDays: 5,
		},
		{
			name:          "missing dates",
			ident:         identityWithProfile(model.RoleEmployee),
			payload:       VacationPayload{Reason: "no dates"},
			setupMock:     func(m *MockVacationRequestRepository) {},
			expectedError: errors.NewValidationError("start date and end date are required"),
		},
		{
			name:          "unparseable start date",
			ident:         identityWithProfile(model.RoleEmployee),
			payload:       VacationPayload{StartDate: "not-a-date", EndDate: "2024-03-05"},
			setupMock:     func(m *MockVacationRequestRepository) {},
			expectedError: errors.NewValidationError("invalid start date"),
		},
		{
			name:          "end before start",
			ident:         identityWithProfile(model.RoleEmployee),
			payload:       VacationPayload{StartDate: "2024-03-05", EndDate: "2024-03-01"},
			setupMock:     func(m *MockVacationRequestRepository) {},
			expectedError: errors.NewValidationError("end date must be after start date"),
		},
		{
			name:          "end equals start",
			ident:         identityWithProfile(model.RoleEmployee),
			payload:       VacationPayload{StartDate: "2024-03-01", EndDate: "2024-03-01"},
			setupMock:     func(m *MockVacationRequestRepository) {},
			expectedError: errors.NewValidationError("end date must be after start date"),
		},
		{
			name:          "start in the past",
			ident:         identityWithProfile(model.RoleEmployee),
			payload:       VacationPayload{StartDate: "2023-12-01", EndDate: "2024-03-05"},
			setupMock:     func(m *MockVacationRequestRepository) {},
			expectedError: errors.NewValidationError("start date cannot be in the past"),
		},
		{
			name:          "caller without employee profile",
			ident:         identityWithoutProfile(model.RoleAdmin),
			payload:       VacationPayload{StartDate: "2024-03-01", EndDate: "2024-03-05"},
			setupMock:     func(m *MockVacationRequestRepository) {},
			expectedError: errors.ErrProfileMissing,
		},
		{
			name:          "nil identity",
			ident:         nil,
			payload:       VacationPayload{StartDate: "2024-03-01", EndDate: "2024-03-05"},
			setupMock:     func(m *MockVacationRequestRepository) {},
			expectedError: errors.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vacationRepo := new(MockVacationRequestRepository)
			tt.setupMock(vacationRepo)

			service := newTestRequestService(vacationRepo, new(MockFundRequestRepository), new(MockGeneralRequestRepository), clock)
			request, err := service.CreateVacation(context.Background(), tt.ident, tt.payload)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, request)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, request)
				assert.Equal(t, model.StatusPending, request.Status)
				assert.Equal(t, tt.expectedDays, request.DaysRequested)
			}

			vacationRepo.AssertExpectations(t)
		})
	}
}

func TestRequestService_CreateFund(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	validPayload := FundPayload{
		FundType:    "TRAVEL",
		Amount:      "250.00",
		Reason:      "conference travel",
		RequestType: "reimbursement",
	}

	tests := []struct {
		name          string
		ident         *auth.Identity
		payload       FundPayload
		setupMock     func(*MockFundRequestRepository)
		expectedError error
	}{
		{
			name:    "successful creation",
			ident:   identityWithProfile(model.RoleEmployee),
			payload: validPayload,
			setupMock: func(m *MockFundRequestRepository) {
				stored := uuid.New()
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.FundRequest")).
					Run(func(args mock.Arguments) {
						request := args.Get(1).(*model.FundRequest)
						request.ID = stored
					}).Return(nil)
				m.On("FindByID", mock.Anything, stored).Return(&model.FundRequest{
					ID:       stored,
					FundType: model.FundTravel,
					Status:   model.StatusPending,
				}, nil)
			},
		},
		{
			name:          "missing fields",
			ident:         identityWithProfile(model.RoleEmployee),
			payload:       FundPayload{FundType: "TRAVEL"},
			setupMock:     func(m *MockFundRequestRepository) {},
			expectedError: errors.NewValidationError("all fields are required"),
		},
		{
			name:          "unknown fund type",
			ident:         identityWithProfile(model.RoleEmployee),
			payload:       FundPayload{FundType: "LOTTERY", Amount: "250.00", Reason: "r", RequestType: "t"},
			setupMock:     func(m *MockFundRequestRepository) {},
			expectedError: errors.NewValidationError("invalid fund type"),
		},
		{
			name:          "zero amount",
			ident:         identityWithProfile(model.RoleEmployee),
			payload:       FundPayload{FundType: "TRAVEL", Amount: "0", Reason: "r", RequestType: "t"},
			setupMock:     func(m *MockFundRequestRepository) {},
			expectedError: errors.NewValidationError("amount must be a positive number"),
		},
		{
			name:          "negative amount",
			ident:         identityWithProfile(model.RoleEmployee),
			payload:       FundPayload{FundType: "TRAVEL", Amount: "-12.50", Reason: "r", RequestType: "t"},
			setupMock:     func(m *MockFundRequestRepository) {},
			expectedError: errors.NewValidationError("amount must be a positive number"),
		},
		{
			name:          "non numeric amount",
			ident:         identityWithProfile(model.RoleEmployee),
			payload:       FundPayload{FundType: "TRAVEL", Amount: "lots", Reason: "r", RequestType: "t"},
			setupMock:     func(m *MockFundRequestRepository) {},
			expectedError: errors.NewValidationError("amount must be a positive number"),
		},
		{
			name:          "caller without employee profile",
			ident:         identityWithoutProfile(model.RoleHR),
			payload:       validPayload,
			setupMock:     func(m *MockFundRequestRepository) {},
			expectedError: errors.ErrProfileMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fundRepo := new(MockFundRequestRepository)
			tt.setupMock(fundRepo)

			service := newTestRequestService(new(MockVacationRequestRepository), fundRepo, new(MockGeneralRequestRepository), clock)
			request, err := service.CreateFund(context.Background(), tt.ident, tt.payload)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, request)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, request)
				assert.Equal(t, model.StatusPending, request.Status)
			}

			fundRepo.AssertExpectations(t)
		})
	}
}

func TestRequestService_CreateGeneral(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		payload          GeneralPayload
		setupMock        func(*MockGeneralRequestRepository)
		expectedError    error
		expectedPriority model.Priority
	}{
		{
			name:    "priority defaults to medium",
			payload: GeneralPayload{RequestType: "it-support", Subject: "laptop", Description: "screen flickers"},
			setupMock: func(m *MockGeneralRequestRepository) {
				stored := uuid.New()
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.GeneralRequest")).
					Run(func(args mock.Arguments) {
						request := args.Get(1).(*model.GeneralRequest)
						assert.Equal(t, model.PriorityMedium, request.Priority)
						request.ID = stored
					}).Return(nil)
				m.On("FindByID", mock.Anything, stored).Return(&model.GeneralRequest{
					ID:       stored,
					Priority: model.PriorityMedium,
					Status:   model.StatusPending,
				}, nil)
			},
			expectedPriority: model.PriorityMedium,
		},
		{
			name:    "explicit priority kept",
			payload: GeneralPayload{RequestType: "it-support", Subject: "vpn", Description: "cannot connect", Priority: "URGENT"},
			setupMock: func(m *MockGeneralRequestRepository) {
				stored := uuid.New()
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.GeneralRequest")).
					Run(func(args mock.Arguments) {
						request := args.Get(1).(*model.GeneralRequest)
						request.ID = stored
					}).Return(nil)
				m.On("FindByID", mock.Anything, stored).Return(&model.GeneralRequest{
					ID:       stored,
					Priority: model.PriorityUrgent,
					Status:   model.StatusPending,
				}, nil)
			},
			expectedPriority: model.PriorityUrgent,
		},
		{
			name:          "missing fields",
			payload:       GeneralPayload{Subject: "laptop"},
			setupMock:     func(m *MockGeneralRequestRepository) {},
			expectedError: errors.NewValidationError("request type, subject, and description are required"),
		},
		{
			name:          "unknown priority",
			payload:       GeneralPayload{RequestType: "it-support", Subject: "laptop", Description: "d", Priority: "ASAP"},
			setupMock:     func(m *MockGeneralRequestRepository) {},
			expectedError: errors.NewValidationError("invalid priority level"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generalRepo := new(MockGeneralRequestRepository)
			tt.setupMock(generalRepo)

			service := newTestRequestService(new(MockVacationRequestRepository), new(MockFundRequestRepository), generalRepo, clock)
			request, err := service.CreateGeneral(context.Background(), identityWithProfile(model.RoleEmployee), tt.payload)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, request)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, request)
				assert.Equal(t, tt.expectedPriority, request.Priority)
			}

			generalRepo.AssertExpectations(t)
		})
	}
}

func TestRequestService_ListVacations(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	owned := identityWithProfile(model.RoleEmployee)

	tests := []struct {
		name          string
		ident         *auth.Identity
		setupMock     func(*MockVacationRequestRepository)
		expectedError error
		expectedLen   int
	}{
		{
			name:  "manager sees everything",
			ident: identityWithProfile(model.RoleManager),
			setupMock: func(m *MockVacationRequestRepository) {
				m.On("ListAll", mock.Anything).Return([]model.VacationRequest{{}, {}, {}}, nil)
			},
			expectedLen: 3,
		},
		{
			name:  "employee sees only their own",
			ident: owned,
			setupMock: func(m *MockVacationRequestRepository) {
				m.On("ListByEmployee", mock.Anything, owned.Employee.ID).Return([]model.VacationRequest{{}}, nil)
			},
			expectedLen: 1,
		},
		{
			name:          "employee without profile",
			ident:         identityWithoutProfile(model.RoleEmployee),
			setupMock:     func(m *MockVacationRequestRepository) {},
			expectedError: errors.ErrProfileMissing,
		},
		{
			name:          "nil identity",
			ident:         nil,
			setupMock:     func(m *MockVacationRequestRepository) {},
			expectedError: errors.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vacationRepo := new(MockVacationRequestRepository)
			tt.setupMock(vacationRepo)

			service := newTestRequestService(vacationRepo, new(MockFundRequestRepository), new(MockGeneralRequestRepository), clock)
			requests, err := service.ListVacations(context.Background(), tt.ident)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, requests)
			} else {
				assert.NoError(t, err)
				assert.Len(t, requests, tt.expectedLen)
			}

			vacationRepo.AssertExpectations(t)
		})
	}
}

func TestRequestService_ReviewVacation(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	requestID := uuid.New()

	tests := []struct {
		name          string
		ident         *auth.Identity
		status        string
		setupMock     func(*MockVacationRequestRepository)
		expectedError error
	}{
		{
			name:   "manager approves",
			ident:  identityWithProfile(model.RoleManager),
			status: "APPROVED",
			setupMock: func(m *MockVacationRequestRepository) {
				m.On("FindByID", mock.Anything, requestID).Return(&model.VacationRequest{
					ID:     requestID,
					Status: model.StatusPending,
				}, nil).Once()
				m.On("UpdateStatus", mock.Anything, requestID, model.StatusApproved).Return(nil)
				m.On("FindByID", mock.Anything, requestID).Return(&model.VacationRequest{
					ID:     requestID,
					Status: model.StatusApproved,
				}, nil).Once()
			},
		},
		{
			name:   "re-review overwrites an earlier decision",
			ident:  identityWithProfile(model.RoleHR),
			status: "REJECTED",
			setupMock: func(m *MockVacationRequestRepository) {
				m.On("FindByID", mock.Anything, requestID).Return(&model.VacationRequest{
					ID:     requestID,
					Status: model.StatusApproved,
				}, nil).Once()
				m.On("UpdateStatus", mock.Anything, requestID, model.StatusRejected).Return(nil)
				m.On("FindByID", mock.Anything, requestID).Return(&model.VacationRequest{
					ID:     requestID,
					Status: model.StatusRejected,
				}, nil).Once()
			},
		},
		{
			name:          "employee may not review",
			ident:         identityWithProfile(model.RoleEmployee),
			status:        "APPROVED",
			setupMock:     func(m *MockVacationRequestRepository) {},
			expectedError: errors.ErrInsufficientPermission,
		},
		{
			name:          "unknown status",
			ident:         identityWithProfile(model.RoleManager),
			status:        "MAYBE",
			setupMock:     func(m *MockVacationRequestRepository) {},
			expectedError: errors.NewValidationError("invalid status"),
		},
		{
			name:   "request not found",
			ident:  identityWithProfile(model.RoleManager),
			status: "APPROVED",
			setupMock: func(m *MockVacationRequestRepository) {
				m.On("FindByID", mock.Anything, requestID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrRequestNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vacationRepo := new(MockVacationRequestRepository)
			tt.setupMock(vacationRepo)

			service := newTestRequestService(vacationRepo, new(MockFundRequestRepository), new(MockGeneralRequestRepository), clock)
			request, err := service.ReviewVacation(context.Background(), tt.ident, requestID, tt.status)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, request)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, request)
				assert.Equal(t, model.RequestStatus(tt.status), request.Status)
			}

			vacationRepo.AssertExpectations(t)
		})
	}
}

func TestRequestService_ReviewFund(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	requestID := uuid.New()

	fundRepo := new(MockFundRequestRepository)
	fundRepo.On("FindByID", mock.Anything, requestID).Return(&model.FundRequest{
		ID:     requestID,
		Status: model.StatusPending,
	}, nil).Once()
	fundRepo.On("UpdateStatus", mock.Anything, requestID, model.StatusCompleted).Return(nil)
	fundRepo.On("FindByID", mock.Anything, requestID).Return(&model.FundRequest{
		ID:     requestID,
		Status: model.StatusCompleted,
	}, nil).Once()

	service := newTestRequestService(new(MockVacationRequestRepository), fundRepo, new(MockGeneralRequestRepository), clock)
	request, err := service.ReviewFund(context.Background(), identityWithProfile(model.RoleAdmin), requestID, "COMPLETED")

	assert.NoError(t, err)
	assert.NotNil(t, request)
	assert.Equal(t, model.StatusCompleted, request.Status)
	fundRepo.AssertExpectations(t)
}

func TestRequestService_ListFunds_Scope(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	owned := identityWithProfile(model.RoleEmployee)

	fundRepo := new(MockFundRequestRepository)
	fundRepo.On("ListByEmployee", mock.Anything, owned.Employee.ID).Return([]model.FundRequest{{}}, nil)

	service := newTestRequestService(new(MockVacationRequestRepository), fundRepo, new(MockGeneralRequestRepository), clock)
	requests, err := service.ListFunds(context.Background(), owned)

	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	fundRepo.AssertExpectations(t)
	fundRepo.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestRequestService_ListGenerals_Scope(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	generalRepo := new(MockGeneralRequestRepository)
	generalRepo.On("ListAll", mock.Anything).Return([]model.GeneralRequest{{}, {}}, nil)

	service := newTestRequestService(new(MockVacationRequestRepository), new(MockFundRequestRepository), generalRepo, clock)
	requests, err := service.ListGenerals(context.Background(), identityWithoutProfile(model.RoleAdmin))

	assert.NoError(t, err)
	assert.Len(t, requests, 2)
	generalRepo.AssertExpectations(t)
}
