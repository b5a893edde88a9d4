package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hrms/internal/auth"
	"hrms/internal/errors"
	"hrms/internal/service"
)

// currentIdentity resolves the caller from the validated token claims the JWT
// middleware stored on the context. Handlers pass the result explicitly into
// the service layer; no service reads session state on its own.
func currentIdentity(c echo.Context, identities service.IdentityService) (*auth.Identity, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "unauthorized",
			Code:  "UNAUTHORIZED",
		})
	}

	ident, err := identities.Resolve(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return nil, echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return ident, nil
}
