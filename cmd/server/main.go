package main

import (
	"log"
	"net/http"
	"os"

	_ "hrms/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"hrms/internal/auth"
	"hrms/internal/cache"
	"hrms/internal/config"
	"hrms/internal/db"
	"hrms/internal/handler"
	"hrms/internal/model"
	"hrms/internal/repository"
	"hrms/internal/router"
	"hrms/internal/service"
)

// @title HR Management API
// @version 1.0
// @description Role-based HR management API: employee directory, vacation, fund, and general request workflows with privileged review.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.VacationRequest{},
			&model.FundRequest{},
			&model.GeneralRequest{},
			&model.Employee{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Employee{},
		&model.VacationRequest{},
		&model.FundRequest{},
		&model.GeneralRequest{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	employeeRepo := repository.NewEmployeeRepository(gormDB)
	vacationRepo := repository.NewVacationRequestRepository(gormDB)
	fundRepo := repository.NewFundRequestRepository(gormDB)
	generalRepo := repository.NewGeneralRequestRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	identityService := service.NewIdentityService(userRepo, cacheClient)
	employeeService := service.NewEmployeeService(employeeRepo, userRepo, identityService, cacheClient)
	requestService := service.NewRequestService(vacationRepo, fundRepo, generalRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, identityService)
	employeeHandler := handler.NewEmployeeHandler(employeeService, identityService)
	requestHandler := handler.NewRequestHandler(requestService, identityService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		requestHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
