package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lgu-hris/payroll-backend-go/internal/handler/http/middleware"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Benefit       BenefitHandler
	PayrollPeriod PayrollPeriodHandler
	DTR           DTRHandler
	Component     ComponentHandler
	Compensation  CompensationHandler
	Employee      EmployeeHandler
	Notification  NotificationHandler
	Audit         AuditHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "lgu-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)
				r.Get("/{employeeID}/calculations", h.Benefit.ListCalculationsByEmployee)
				r.Get("/{employeeID}/overrides", h.Component.ListOverridesByEmployee)
			})

			r.Route("/benefit-types", func(r chi.Router) {
				r.Get("/", h.Benefit.ListBenefitTypes)
				r.Post("/", h.Benefit.CreateBenefitType)
				r.Get("/code/{code}", h.Benefit.GetBenefitTypeByCode)
				r.Get("/{id}", h.Benefit.GetBenefitType)
				r.Delete("/{id}", h.Benefit.DeactivateBenefitType)
			})

			r.Route("/calculations", func(r chi.Router) {
				r.Post("/", h.Benefit.Calculate)
				r.Post("/bulk", h.Benefit.BulkCalculate)
				r.Get("/{id}", h.Benefit.GetCalculation)
			})

			r.Post("/compensation/compute", h.Compensation.Compute)

			r.Route("/payroll-periods", func(r chi.Router) {
				r.Get("/", h.PayrollPeriod.List)
				r.Post("/", h.PayrollPeriod.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.PayrollPeriod.Get)
					r.Delete("/", h.PayrollPeriod.Delete)
					r.Post("/process", h.PayrollPeriod.Process)
					r.Post("/finalize", h.PayrollPeriod.Finalize)
					r.Post("/cancel", h.PayrollPeriod.Cancel)
					r.Post("/mark-paid", h.PayrollPeriod.MarkPaid)
					r.Get("/items", h.PayrollPeriod.ListItems)
					r.Get("/summary", h.PayrollPeriod.GetSummary)
				})
				r.Get("/{periodID}/dtr-batches", h.DTR.ListBatches)
				r.Get("/{periodID}/dtr-records", h.DTR.ListActiveRecords)
			})

			r.Route("/dtr", func(r chi.Router) {
				r.Post("/import", h.DTR.Import)
				r.Get("/batches/{id}", h.DTR.GetBatch)
			})

			r.Route("/components", func(r chi.Router) {
				r.Get("/", h.Component.ListComponents)
				r.Post("/", h.Component.CreateComponent)
				r.Delete("/{id}", h.Component.DeactivateComponent)
			})

			r.Route("/overrides", func(r chi.Router) {
				r.Post("/", h.Component.CreateOverride)
				r.Post("/bulk", h.Component.BulkCreateOverrides)
				r.Delete("/{id}", h.Component.DeactivateOverride)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.ListMine)
				r.Post("/{id}/read", h.Notification.MarkRead)
			})

			r.Get("/audit/{table}/{recordID}", h.Audit.ListByRecord)
		})
	})
	return r
}
