package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hrms/internal/config"
	"hrms/internal/db"
	"hrms/internal/model"
	"hrms/internal/repository"
)

const bcryptCost = 10

type seedEntry struct {
	Email    string
	Name     string
	Password string
	Role     model.Role
	Employee *model.Employee
}

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Fatalf("invalid seed date %q: %v", value, err)
	}
	return t
}

// seedEntries is the demo org chart: one admin without a profile, and four
// users with employee profiles across HR, Engineering, and Design.
func seedEntries() []seedEntry {
	return []seedEntry{
		{
			Email:    "admin@company.com",
			Name:     "System Administrator",
			Password: "admin123",
			Role:     model.RoleAdmin,
		},
		{
			Email:    "hr@company.com",
			Name:     "HR Manager",
			Password: "hr123",
			Role:     model.RoleHR,
			Employee: &model.Employee{
				EmployeeCode:     "HR001",
				FirstName:        "Sarah",
				LastName:         "Johnson",
				Position:         "HR Manager",
				Department:       "Human Resources",
				HireDate:         date("2020-01-15"),
				Salary:           decimal.NewFromInt(75000),
				Phone:            "+1-555-0101",
				Address:          "123 Main St, City, State 12345",
				EmergencyContact: "John Johnson - +1-555-0102",
			},
		},
		{
			Email:    "manager@company.com",
			Name:     "Team Manager",
			Password: "manager123",
			Role:     model.RoleManager,
			Employee: &model.Employee{
				EmployeeCode:     "MGR001",
				FirstName:        "Michael",
				LastName:         "Smith",
				Position:         "Engineering Manager",
				Department:       "Engineering",
				HireDate:         date("2019-03-10"),
				Salary:           decimal.NewFromInt(95000),
				Phone:            "+1-555-0201",
				Address:          "456 Oak Ave, City, State 12345",
				EmergencyContact: "Lisa Smith - +1-555-0202",
			},
		},
		{
			Email:    "john.doe@company.com",
			Name:     "John Doe",
			Password: "employee123",
			Role:     model.RoleEmployee,
			Employee: &model.Employee{
				EmployeeCode:     "EMP001",
				FirstName:        "John",
				LastName:         "Doe",
				Position:         "Software Developer",
				Department:       "Engineering",
				HireDate:         date("2021-06-01"),
				Salary:           decimal.NewFromInt(70000),
				Phone:            "+1-555-0301",
				Address:          "789 Pine St, City, State 12345",
				EmergencyContact: "Jane Doe - +1-555-0302",
			},
		},
		{
			Email:    "jane.smith@company.com",
			Name:     "Jane Smith",
			Password: "employee123",
			Role:     model.RoleEmployee,
			Employee: &model.Employee{
				EmployeeCode:     "EMP002",
				FirstName:        "Jane",
				LastName:         "Smith",
				Position:         "UX Designer",
				Department:       "Design",
				HireDate:         date("2021-08-15"),
				Salary:           decimal.NewFromInt(65000),
				Phone:            "+1-555-0401",
				Address:          "321 Elm St, City, State 12345",
				EmergencyContact: "Bob Smith - +1-555-0402",
			},
		},
	}
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Employee{},
		&model.VacationRequest{},
		&model.FundRequest{},
		&model.GeneralRequest{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	employeeRepo := repository.NewEmployeeRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, entry := range seedEntries() {
		existing, err := userRepo.FindByEmail(ctx, entry.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check user %s: %v", entry.Email, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(entry.Password), bcryptCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", entry.Email, err)
		}

		user := &model.User{
			Email:        entry.Email,
			Name:         entry.Name,
			PasswordHash: string(hash),
			Role:         entry.Role,
		}

		if entry.Employee != nil {
			if err := employeeRepo.CreateWithUser(ctx, user, entry.Employee); err != nil {
				log.Fatalf("Failed to seed %s: %v", entry.Email, err)
			}
		} else {
			if err := userRepo.Create(ctx, user); err != nil {
				log.Fatalf("Failed to seed %s: %v", entry.Email, err)
			}
		}
		created++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d", created)
	log.Printf("  - Users already present: %d", skipped)
	log.Println("Accounts:")
	log.Println("- Admin: admin@company.com / admin123")
	log.Println("- HR: hr@company.com / hr123")
	log.Println("- Manager: manager@company.com / manager123")
	log.Println("- Employee 1: john.doe@company.com / employee123")
	log.Println("- Employee 2: jane.smith@company.com / employee123")
}
