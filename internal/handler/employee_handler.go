package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hrms/internal/errors"
	"hrms/internal/service"
)

// EmployeeHandler handles employee directory endpoints.
type EmployeeHandler struct {
	employees  service.EmployeeService
	identities service.IdentityService
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(employees service.EmployeeService, identities service.IdentityService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, identities: identities}
}

// OnboardRequest creates a user together with its employee profile.
type OnboardRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Name             string `json:"name" validate:"required"`
	Password         string `json:"password" validate:"required,min=6"`
	Role             string `json:"role"`
	EmployeeCode     string `json:"employee_code" validate:"required"`
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name" validate:"required"`
	Position         string `json:"position"`
	Department       string `json:"department"`
	HireDate         string `json:"hire_date"`
	Salary           string `json:"salary"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact"`
}

// UpdateEmployeeRequest carries partial profile changes.
type UpdateEmployeeRequest struct {
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	Position         *string `json:"position"`
	Department       *string `json:"department"`
	Salary           *string `json:"salary"`
	Phone            *string `json:"phone"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergency_contact"`
}

func parseEmployeeID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid employee id",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}

// List godoc
// @Summary List all employees
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	ident, err := currentIdentity(c, h.identities)
	if err != nil {
		return err
	}

	employees, err := h.employees.List(c.Request().Context(), ident)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"employees": employees})
}

// Get godoc
// @Summary Get one employee
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} model.Employee
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	ident, err := currentIdentity(c, h.identities)
	if err != nil {
		return err
	}

	id, err := parseEmployeeID(c)
	if err != nil {
		return err
	}

	employee, err := h.employees.Get(c.Request().Context(), ident, id)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, employee)
}

// Onboard godoc
// @Summary Onboard a new employee
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OnboardRequest true "Employee and user data"
// @Success 201 {object} model.Employee
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees [post]
func (h *EmployeeHandler) Onboard(c echo.Context) error {
	ident, err := currentIdentity(c, h.identities)
	if err != nil {
		return err
	}

	var req OnboardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	employee, err := h.employees.Onboard(c.Request().Context(), ident, service.OnboardPayload{
		Email:            req.Email,
		Name:             req.Name,
		Password:         req.Password,
		Role:             req.Role,
		EmployeeCode:     req.EmployeeCode,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Position:         req.Position,
		Department:       req.Department,
		HireDate:         req.HireDate,
		Salary:           req.Salary,
		Phone:            req.Phone,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, employee)
}

// Update godoc
// @Summary Update an employee profile
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param request body UpdateEmployeeRequest true "Profile changes"
// @Success 200 {object} model.Employee
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	ident, err := currentIdentity(c, h.identities)
	if err != nil {
		return err
	}

	id, err := parseEmployeeID(c)
	if err != nil {
		return err
	}

	var req UpdateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	employee, err := h.employees.Update(c.Request().Context(), ident, id, service.EmployeeUpdatePayload{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Position:         req.Position,
		Department:       req.Department,
		Salary:           req.Salary,
		Phone:            req.Phone,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, employee)
}
