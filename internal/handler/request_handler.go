package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hrms/internal/errors"
	"hrms/internal/model"
	"hrms/internal/service"
)

// RequestHandler handles the three request workflows: vacation, fund, general.
type RequestHandler struct {
	requests   service.RequestService
	identities service.IdentityService
}

// NewRequestHandler creates a new request handler.
func NewRequestHandler(requests service.RequestService, identities service.IdentityService) *RequestHandler {
	return &RequestHandler{requests: requests, identities: identities}
}

// CreateVacationRequest represents a vacation creation payload.
type CreateVacationRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// CreateFundRequest represents a fund creation payload.
type CreateFundRequest struct {
	FundType    string `json:"fund_type"`
	Amount      string `json:"amount"`
	Reason      string `json:"reason"`
	RequestType string `json:"request_type"`
}

// CreateGeneralRequest represents a general creation payload.
type CreateGeneralRequest struct {
	RequestType string `json:"request_type"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// ReviewRequest carries the target status for a review.
type ReviewRequest struct {
	Status string `json:"status"`
}

// VacationResponse is a vacation request enriched with its owner summary.
type VacationResponse struct {
	*model.VacationRequest
	Employee model.EmployeeSummary `json:"employee"`
}

// FundResponse is a fund request enriched with its owner summary.
type FundResponse struct {
	*model.FundRequest
	Employee model.EmployeeSummary `json:"employee"`
}

// GeneralResponse is a general request enriched with its owner summary.
type GeneralResponse struct {
	*model.GeneralRequest
	Employee model.EmployeeSummary `json:"employee"`
}

func newVacationResponse(r *model.VacationRequest) VacationResponse {
	return VacationResponse{VacationRequest: r, Employee: r.Employee.Summary()}
}

func newFundResponse(r *model.FundRequest) FundResponse {
	return FundResponse{FundRequest: r, Employee: r.Employee.Summary()}
}

func newGeneralResponse(r *model.GeneralRequest) GeneralResponse {
	return GeneralResponse{GeneralRequest: r, Employee: r.Employee.Summary()}
}

func parseRequestID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request id",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}

func domainError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// CreateVacation godoc
// @Summary Submit a vacation request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateVacationRequest true "Vacation data"
// @Success 201 {object} map[string]VacationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /requests/vacation [post]
func (h *RequestHandler) CreateVacation(c echo.Context) error {
	ident, err := currentIdentity(c, h.identities)
	if err != nil {
		return err
	}

	var req CreateVacationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	created, err := h.requests.CreateVacation(c.Request().Context(), ident, service.VacationPayload{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, map[string]VacationResponse{"request": newVacationResponse(created)})
}

// ListVacations godoc
// @Summary List vacation requests visible to the caller
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]VacationResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /requests/vacation [get]
func (h *RequestHandler) ListVacations(c echo.Context) error {
	ident, err := currentIdentity(c, h.identities)
	if err != nil {
		return err
	}

	requests, err := h.requests.ListVacations(c.Request().Context(), ident)
	if err != nil {
		return domainError(err)
	}

	out := make([]VacationResponse, 0, len(requests))
	for i := range requests {
		out = append(out, newVacationResponse(&requests[i]))
	}
	return c.JSON(http.StatusOK, map[string][]VacationResponse{"requests": out})
}

// ReviewVacation godoc
// @Summary Review a vacation request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body ReviewRequest true "Target status"
// @Success 200 {object} map[string]VacationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /requests/vacation/{id} [put]
func (h *RequestHandler) ReviewVacation(c echo.Context) error {
	ident, err := currentIdentity(c, h.identities)
	if err != nil {
		return err
	}

	id, err := parseRequestID(c)
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	updated, err := h.requests.ReviewVacation(c.Request().Context(), ident, id, req.Status)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, map[string]VacationResponse{"request": newVacationResponse(updated)})
}

// CreateFund godoc
// @Summary Submit a fund request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateFundRequest true "Fund data"
// @Success 201 {object} map[string]FundResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /requests/fund [post]
func (h *RequestHandler) CreateFund(c echo.Context) error {
	ident, err := currentIdentity(c, h.identities)
	if err != nil {
		return err
	}

	var req CreateFundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	created, err := h.requests.CreateFund(c.Request().Context(), ident, service.FundPayload{
		FundType:    req.FundType,
		Amount:      req.Amount,
		Reason:      req.Reason,
		RequestType: req.RequestType,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, map[string]FundResponse{"request": newFundResponse(created)})
}

// ListFunds godoc
// @Summary List fund requests visible to the caller
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]FundResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /requests/fund [get]
func (h *RequestHandler) ListFunds(c echo.Context) error {
	ident, err := currentIdentity(c, h.identities)
	if err != nil {
		return err
	}

	requests, err := h.requests.ListFunds(c.Request().Context(), ident)
	if err != nil {
		return domainError(err)
	}

	out := make([]FundResponse, 0, len(requests))
	for i := range requests {
		out = append(out, newFundResponse(&requests[i]))
	}
	return c.JSON(http.StatusOK, map[string][]FundResponse{"requests": out})
}

// ReviewFund godoc
// @Summary Review a fund request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body ReviewRequest true "Target status"
// @Success 200 {object} map[string]FundResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /requests/fund/{id} [put]
func (h *RequestHandler) ReviewFund(c echo.Context) error {
	ident, err := currentIdentity(c, h.identities)
	if err != nil {
		return err
	}

	id, err := parseRequestID(c)
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	updated, err := h.requests.ReviewFund(c.Request().Context(), ident, id, req.Status)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, map[string]FundResponse{"request": newFundResponse(updated)})
}

// CreateGeneral godoc
// @Summary Submit a general request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGeneralRequest true "General request data"
// @Success 201 {object} map[string]GeneralResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /requests/general [post]
func (h *RequestHandler) CreateGeneral(c echo.Context) error {
	ident, err := currentIdentity(c, h.identities)
	if err != nil {
		return err
	}

	var req CreateGeneralRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	created, err := h.requests.CreateGeneral(c.Request().Context(), ident, service.GeneralPayload{
		RequestType: req.RequestType,
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, map[string]GeneralResponse{"request": newGeneralResponse(created)})
}

// ListGenerals godoc
// @Summary List general requests visible to the caller
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]GeneralResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /requests/general [get]
func (h *RequestHandler) ListGenerals(c echo.Context) error {
	ident, err := currentIdentity(c, h.identities)
	if err != nil {
		return err
	}

	requests, err := h.requests.ListGenerals(c.Request().Context(), ident)
	if err != nil {
		return domainError(err)
	}

	out := make([]GeneralResponse, 0, len(requests))
	for i := range requests {
		out = append(out, newGeneralResponse(&requests[i]))
	}
	return c.JSON(http.StatusOK, map[string][]GeneralResponse{"requests": out})
}

// ReviewGeneral godoc
// @Summary Review a general request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body ReviewRequest true "Target status"
// @Success 200 {object} map[string]GeneralResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /requests/general/{id} [put]
func (h *RequestHandler) ReviewGeneral(c echo.Context) error {
	ident, err := currentIdentity(c, h.identities)
	if err != nil {
		return err
	}

	id, err := parseRequestID(c)
	if err != nil {
		return err
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	updated, err := h.requests.ReviewGeneral(c.Request().Context(), ident, id, req.Status)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, map[string]GeneralResponse{"request": newGeneralResponse(updated)})
}
