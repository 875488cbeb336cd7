package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/bayanihr/hrms-backend-go/internal/config"
	appHTTP "github.com/bayanihr/hrms-backend-go/internal/handler/http"
	"github.com/bayanihr/hrms-backend-go/internal/pkg/database"
	"github.com/bayanihr/hrms-backend-go/internal/pkg/jwt"
	"github.com/bayanihr/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/bayanihr/hrms-backend-go/internal/service/attendance"
	authService "github.com/bayanihr/hrms-backend-go/internal/service/auth"
	cashAdvanceService "github.com/bayanihr/hrms-backend-go/internal/service/cashadvance"
	compensationService "github.com/bayanihr/hrms-backend-go/internal/service/compensation"
	"github.com/bayanihr/hrms-backend-go/internal/service/contribution"
	employeeService "github.com/bayanihr/hrms-backend-go/internal/service/employee"
	payrollService "github.com/bayanihr/hrms-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "bayanihr"),
	)

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	cashAdvanceRepo := postgresql.NewCashAdvanceRepository(db)
	compensationRepo := postgresql.NewCompensationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	calculator := contribution.NewCalculator(contribution.Default2025())
	engine := payrollService.NewEngine(calculator, payrollService.DefaultEngineConfig())

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, attendanceService.DefaultScheduleConfig())
	payrollSvc := payrollService.NewPayrollService(db, logger, engine, payrollRepo, employeeRepo, attendanceRepo, compensationRepo, cashAdvanceRepo)
	cashAdvanceSvc := cashAdvanceService.NewCashAdvanceService(cashAdvanceRepo, employeeRepo)
	compensationSvc := compensationService.NewCompensationService(compensationRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	cashAdvanceHandler := appHTTP.NewCashAdvanceHandler(cashAdvanceSvc)
	compensationHandler := appHTTP.NewCompensationHandler(compensationSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.Env,
		authHandler,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
		cashAdvanceHandler,
		compensationHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting server", "addr", addr, "env", cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("Server stopped", "error", err)
	}
}
