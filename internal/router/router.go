package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"hrms/internal/auth"
	"hrms/internal/config"
	"hrms/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	employeeHandler *handler.EmployeeHandler,
	requestHandler *handler.RequestHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication). The parse func stores
	// *auth.Claims under "user" for handlers to resolve the caller.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
	}))

	secured.GET("/me", authHandler.Me)

	// Employee directory
	secured.GET("/employees", employeeHandler.List)
	secured.POST("/employees", employeeHandler.Onboard)
	secured.GET("/employees/:id", employeeHandler.Get)
	secured.PUT("/employees/:id", employeeHandler.Update)

	// Request workflows
	secured.GET("/requests/vacation", requestHandler.ListVacations)
	secured.POST("/requests/vacation", requestHandler.CreateVacation)
	secured.PUT("/requests/vacation/:id", requestHandler.ReviewVacation)

	secured.GET("/requests/fund", requestHandler.ListFunds)
	secured.POST("/requests/fund", requestHandler.CreateFund)
	secured.PUT("/requests/fund/:id", requestHandler.ReviewFund)

	secured.GET("/requests/general", requestHandler.ListGenerals)
	secured.POST("/requests/general", requestHandler.CreateGeneral)
	secured.PUT("/requests/general/:id", requestHandler.ReviewGeneral)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
