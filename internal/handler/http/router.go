package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/bayanihr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/bayanihr/hrms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	env string,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	cashAdvanceHandler CashAdvanceHandler,
	compensationHandler CompensationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "bayanihr"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				r.Route("/{employeeID}/assignments", func(r chi.Router) {
					r.Get("/", compensationHandler.ListEmployeeAssignments)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/taxes", compensationHandler.AssignTax)
						r.Post("/deductions", compensationHandler.AssignDeduction)
						r.Post("/benefits", compensationHandler.AssignBenefit)
					})
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Post("/break-out", attendanceHandler.BreakOut)
				r.Post("/break-in", attendanceHandler.BreakIn)
				r.Get("/", attendanceHandler.List)
				r.Get("/{id}", attendanceHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/manual", attendanceHandler.UpsertManual)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			// Admin only
			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/periods", func(r chi.Router) {
					r.Post("/", payrollHandler.CreatePeriod)
					r.Get("/", payrollHandler.ListPeriods)
					r.Post("/{periodID}/generate", payrollHandler.Generate)
					r.Get("/{periodID}/summary", payrollHandler.Summary)
					r.Get("/{periodID}/register", payrollHandler.Register)
				})

				r.Route("/records", func(r chi.Router) {
					r.Get("/", payrollHandler.ListRecords)
					r.Get("/{id}", payrollHandler.GetRecord)
					r.Patch("/{id}/status", payrollHandler.Transition)
					r.Delete("/{id}", payrollHandler.DeleteRecord)
					r.Get("/{id}/payslip", payrollHandler.Payslip)
				})
			})

			r.Route("/cash-advances", func(r chi.Router) {
				r.Post("/", cashAdvanceHandler.Request)
				r.Get("/", cashAdvanceHandler.List)
				r.Get("/{id}", cashAdvanceHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Patch("/{id}/decision", cashAdvanceHandler.Decide)
				})
			})

			// Admin only
			r.Route("/compensation", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/tax-titles", func(r chi.Router) {
					r.Post("/", compensationHandler.CreateTaxTitle)
					r.Get("/", compensationHandler.ListTaxTitles)
					r.Patch("/{id}/active", compensationHandler.SetTaxTitleActive)
				})

				r.Route("/deduction-titles", func(r chi.Router) {
					r.Post("/", compensationHandler.CreateDeductionTitle)
					r.Get("/", compensationHandler.ListDeductionTitles)
					r.Patch("/{id}/active", compensationHandler.SetDeductionTitleActive)
				})

				r.Route("/benefits", func(r chi.Router) {
					r.Post("/", compensationHandler.CreateBenefit)
					r.Get("/", compensationHandler.ListBenefits)
					r.Patch("/{id}/active", compensationHandler.SetBenefitActive)
				})

				r.Route("/assignments", func(r chi.Router) {
					r.Delete("/taxes/{id}", compensationHandler.RemoveTaxAssignment)
					r.Delete("/deductions/{id}", compensationHandler.RemoveDeductionAssignment)
					r.Delete("/benefits/{id}", compensationHandler.RemoveBenefitAssignment)
				})
			})
		})
	})
	return r
}
