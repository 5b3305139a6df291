package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/lgu-hris/payroll-backend-go/internal/config"
	appHTTP "github.com/lgu-hris/payroll-backend-go/internal/handler/http"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/database"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/jwt"
	"github.com/lgu-hris/payroll-backend-go/internal/repository/postgresql"
	benefitService "github.com/lgu-hris/payroll-backend-go/internal/service/benefit"
	compensationService "github.com/lgu-hris/payroll-backend-go/internal/service/compensation"
	dtrService "github.com/lgu-hris/payroll-backend-go/internal/service/dtr"
	notificationService "github.com/lgu-hris/payroll-backend-go/internal/service/notification"
	overrideService "github.com/lgu-hris/payroll-backend-go/internal/service/override"
	periodService "github.com/lgu-hris/payroll-backend-go/internal/service/payrollperiod"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "lgu-payroll"),
		slog.String("env", cfg.App.Env),
	)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	benefitTypeRepo := postgresql.NewBenefitTypeRepository(db)
	calculationRepo := postgresql.NewBenefitCalculationRepository(db)
	periodRepo := postgresql.NewPayrollPeriodRepository(db)
	itemRepo := postgresql.NewPayrollItemRepository(db)
	dtrRepo := postgresql.NewDTRRepository(db)
	componentRepo := postgresql.NewComponentRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	dispatcher := notificationService.NewDispatcher(notificationRepo, notificationService.Config{}, logger)
	defer dispatcher.Close()

	benefitSvc := benefitService.NewService(
		benefitTypeRepo, calculationRepo, employeeRepo, dispatcher,
		benefitService.Rates{
			TaxAnnualExemption:  cfg.Payroll.TaxAnnualExemption,
			TaxRate:             cfg.Payroll.TaxRate,
			WorkingDaysPerMonth: cfg.Payroll.WorkingDaysPerMonth,
		},
	)
	compensationSvc := compensationService.NewService(
		employeeRepo,
		compensationService.Rates{
			TLBFactor:           cfg.Payroll.TLBFactor,
			GSISRate:            cfg.Payroll.GSISRate,
			WorkingDaysPerMonth: cfg.Payroll.WorkingDaysPerMonth,
			LoyaltyBase:         cfg.Payroll.LoyaltyBase,
			LoyaltyIncrement:    cfg.Payroll.LoyaltyIncrement,
		},
	)
	periodSvc := periodService.NewService(
		db, periodRepo, itemRepo, dtrRepo, componentRepo, employeeRepo,
		dispatcher, logger, cfg.Payroll.WorkingDaysPerMonth,
	)
	dtrSvc := dtrService.NewService(db, dtrRepo, periodRepo, itemRepo, employeeRepo, dispatcher, logger)
	overrideSvc := overrideService.NewService(db, componentRepo, employeeRepo, auditRepo, logger)

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, appHTTP.Handlers{
		Benefit:       appHTTP.NewBenefitHandler(benefitSvc),
		PayrollPeriod: appHTTP.NewPayrollPeriodHandler(periodSvc),
		DTR:           appHTTP.NewDTRHandler(dtrSvc),
		Component:     appHTTP.NewComponentHandler(overrideSvc),
		Compensation:  appHTTP.NewCompensationHandler(compensationSvc),
		Employee:      appHTTP.NewEmployeeHandler(employeeRepo),
		Notification:  appHTTP.NewNotificationHandler(notificationRepo),
		Audit:         appHTTP.NewAuditHandler(auditRepo),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
