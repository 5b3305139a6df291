package payrollperiod

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lgu-hris/payroll-backend-go/internal/domain/component"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/dtr"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/employee"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/notification"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/payrollperiod"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/database"
	"github.com/lgu-hris/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

// Service owns the payroll period lifecycle. Every status transition and its
// item writes happen inside one transaction; the UpdateStatus compare-and-set
// is what makes two concurrent transitions on the same period serialize.
type Service struct {
	db            *database.DB
	periodRepo    payrollperiod.PeriodRepository
	itemRepo      payrollperiod.ItemRepository
	dtrRepo       dtr.Repository
	componentRepo component.Repository
	employeeRepo  employee.EmployeeRepository
	dispatcher    notification.Dispatcher
	logger        *slog.Logger

	workingDaysPerMonth decimal.Decimal
}

func NewService(
	db *database.DB,
	periodRepo payrollperiod.PeriodRepository,
	itemRepo payrollperiod.ItemRepository,
	dtrRepo dtr.Repository,
	componentRepo component.Repository,
	employeeRepo employee.EmployeeRepository,
	dispatcher notification.Dispatcher,
	logger *slog.Logger,
	workingDaysPerMonth decimal.Decimal,
) *Service {
	return &Service{
		db:                  db,
		periodRepo:          periodRepo,
		itemRepo:            itemRepo,
		dtrRepo:             dtrRepo,
		componentRepo:       componentRepo,
		employeeRepo:        employeeRepo,
		dispatcher:          dispatcher,
		logger:              logger,
		workingDaysPerMonth: workingDaysPerMonth,
	}
}

// ========== PERIOD LIFECYCLE ==========

func (s *Service) CreatePeriod(ctx context.Context, req payrollperiod.CreatePeriodRequest, createdBy *string) (payrollperiod.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payrollperiod.PeriodResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	payDate, _ := time.Parse("2006-01-02", req.PayDate)

	period := payrollperiod.PayrollPeriod{
		Year:         req.Year,
		Month:        req.Month,
		PeriodNumber: req.PeriodNumber,
		StartDate:    startDate,
		EndDate:      endDate,
		PayDate:      payDate,
		Status:       payrollperiod.StatusDraft,
		CreatedBy:    createdBy,
	}

	created, err := s.periodRepo.Create(ctx, period)
	if err != nil {
		return payrollperiod.PeriodResponse{}, err
	}
	return mapToPeriodResponse(created), nil
}

func (s *Service) GetPeriod(ctx context.Context, id string) (payrollperiod.PeriodResponse, error) {
	period, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return payrollperiod.PeriodResponse{}, err
	}
	return mapToPeriodResponse(period), nil
}

func (s *Service) ListPeriods(ctx context.Context, filter payrollperiod.PeriodFilter) ([]payrollperiod.PeriodResponse, int64, error) {
	periods, total, err := s.periodRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]payrollperiod.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, mapToPeriodResponse(p))
	}
	return responses, total, nil
}

// DeletePeriod soft-deletes a period. Only completed periods qualify; live
// and paid runs stay on the books.
func (s *Service) DeletePeriod(ctx context.Context, id string) error {
	period, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if period.Status != payrollperiod.StatusCompleted {
		return fmt.Errorf("%w: current status is %s", payrollperiod.ErrCannotDeletePeriod, period.Status)
	}
	return s.periodRepo.SoftDelete(ctx, id)
}

// ========== PROCESSING ==========

// ProcessPayroll generates payroll items from the period's active DTR
// records. Reprocessing a draft or processing period wipes the previous run
// and rebuilds from scratch inside one transaction; completed and paid
// periods are immutable.
func (s *Service) ProcessPayroll(ctx context.Context, periodID string) (payrollperiod.ProcessResult, error) {
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return payrollperiod.ProcessResult{}, err
	}
	if !period.Status.CanProcess() {
		return payrollperiod.ProcessResult{}, fmt.Errorf("%w: current status is %s", payrollperiod.ErrPeriodNotEditable, period.Status)
	}

	records, err := s.dtrRepo.ListActiveByPeriod(ctx, periodID)
	if err != nil {
		return payrollperiod.ProcessResult{}, err
	}
	if len(records) == 0 {
		return payrollperiod.ProcessResult{}, payrollperiod.ErrNoDTRData
	}

	components, overridesByEmployee, err := s.loadComponents(ctx)
	if err != nil {
		return payrollperiod.ProcessResult{}, err
	}

	result := payrollperiod.ProcessResult{PayrollPeriodID: periodID}
	items := make([]payrollperiod.PayrollItem, 0, len(records))

	for _, record := range records {
		emp, err := s.employeeRepo.GetByID(ctx, record.EmployeeID)
		if err != nil {
			result.Skipped = append(result.Skipped, payrollperiod.SkippedItem{
				EmployeeID: record.EmployeeID,
				Reason:     err.Error(),
			})
			continue
		}
		if !emp.IsActive() {
			result.Skipped = append(result.Skipped, payrollperiod.SkippedItem{
				EmployeeID: record.EmployeeID,
				Reason:     fmt.Sprintf("employment status is %s", emp.EmploymentStatus),
			})
			continue
		}

		items = append(items, s.buildItem(period, record, emp, components, overridesByEmployee[emp.ID]))
	}

	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if _, err := s.itemRepo.DeleteByPeriod(ctx, periodID); err != nil {
			return err
		}
		inserted, err := s.itemRepo.BulkInsert(ctx, items)
		if err != nil {
			return err
		}
		result.ItemsCreated = inserted

		if period.Status == payrollperiod.StatusDraft {
			return s.periodRepo.UpdateStatus(ctx, periodID, payrollperiod.StatusDraft, payrollperiod.StatusProcessing)
		}
		return nil
	})
	if err != nil {
		return payrollperiod.ProcessResult{}, err
	}

	s.logger.Info("payroll processed",
		"payroll_period_id", periodID,
		"items_created", result.ItemsCreated,
		"skipped", len(result.Skipped))

	s.dispatcher.Notify(notification.CreateRequest{
		Type:  notification.TypePayrollProcessed,
		Title: "Payroll processed",
		Message: fmt.Sprintf("Payroll for %d-%02d period %d generated %d items",
			period.Year, period.Month, period.PeriodNumber, result.ItemsCreated),
	})

	return result, nil
}

// Finalize marks every computed item finalized and completes the period.
func (s *Service) Finalize(ctx context.Context, periodID string) error {
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return err
	}
	if !period.Status.CanFinalize() {
		return fmt.Errorf("%w: current status is %s", payrollperiod.ErrPeriodNotProcessing, period.Status)
	}

	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if _, err := s.itemRepo.FinalizeByPeriod(ctx, periodID); err != nil {
			return err
		}
		return s.periodRepo.UpdateStatus(ctx, periodID, payrollperiod.StatusProcessing, payrollperiod.StatusCompleted)
	})
	if err != nil {
		return err
	}

	s.dispatcher.Notify(notification.CreateRequest{
		Type:  notification.TypePayrollFinalized,
		Title: "Payroll finalized",
		Message: fmt.Sprintf("Payroll for %d-%02d period %d is now completed",
			period.Year, period.Month, period.PeriodNumber),
	})
	return nil
}

// Cancel abandons a run, deleting every item generated so far.
func (s *Service) Cancel(ctx context.Context, periodID string) error {
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return err
	}
	if !period.Status.CanCancel() {
		return fmt.Errorf("%w: current status is %s", payrollperiod.ErrCannotCancelPeriod, period.Status)
	}

	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if _, err := s.itemRepo.DeleteByPeriod(ctx, periodID); err != nil {
			return err
		}
		return s.periodRepo.UpdateStatus(ctx, periodID, period.Status, payrollperiod.StatusCancelled)
	})
	if err != nil {
		return err
	}

	s.dispatcher.Notify(notification.CreateRequest{
		Type:  notification.TypePayrollCancelled,
		Title: "Payroll cancelled",
		Message: fmt.Sprintf("Payroll for %d-%02d period %d was cancelled",
			period.Year, period.Month, period.PeriodNumber),
	})
	return nil
}

func (s *Service) MarkPaid(ctx context.Context, periodID string) error {
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return err
	}
	if !period.Status.CanMarkPaid() {
		return fmt.Errorf("%w: current status is %s", payrollperiod.ErrPeriodNotCompleted, period.Status)
	}
	return s.periodRepo.UpdateStatus(ctx, periodID, payrollperiod.StatusCompleted, payrollperiod.StatusPaid)
}

// ========== ITEMS AND SUMMARY ==========

func (s *Service) ListItems(ctx context.Context, periodID string) ([]payrollperiod.ItemResponse, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	responses := make([]payrollperiod.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, mapToItemResponse(item))
	}
	return responses, nil
}

func (s *Service) GetSummary(ctx context.Context, periodID string) (payrollperiod.SummaryResponse, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return payrollperiod.SummaryResponse{}, err
	}

	summary, err := s.itemRepo.GetSummary(ctx, periodID)
	if err != nil {
		return payrollperiod.SummaryResponse{}, err
	}

	return payrollperiod.SummaryResponse{
		PayrollPeriodID: summary.PayrollPeriodID,
		EmployeeCount:   summary.EmployeeCount,
		TotalBasicPay:   summary.TotalBasicPay,
		TotalAllowances: summary.TotalAllowances,
		TotalDeductions: summary.TotalDeductions,
		TotalGrossPay:   summary.TotalGrossPay,
		TotalNetPay:     summary.TotalNetPay,
	}, nil
}

// ========== HELPERS ==========

// loadComponents fetches the active component catalog and indexes active
// overrides by employee then component.
func (s *Service) loadComponents(ctx context.Context) ([]component.Component, map[string]map[string]*component.Override, error) {
	components, err := s.componentRepo.ListComponents(ctx, true)
	if err != nil {
		return nil, nil, err
	}

	overrides, err := s.componentRepo.ListActiveOverrides(ctx)
	if err != nil {
		return nil, nil, err
	}

	byEmployee := make(map[string]map[string]*component.Override)
	for i := range overrides {
		o := &overrides[i]
		if byEmployee[o.EmployeeID] == nil {
			byEmployee[o.EmployeeID] = make(map[string]*component.Override)
		}
		byEmployee[o.EmployeeID][o.ComponentID] = o
	}
	return components, byEmployee, nil
}

// buildItem computes one employee's pay line. Component amounts are resolved
// at the period end date so an override taking effect mid-period applies to
// the run that closes after it.
func (s *Service) buildItem(
	period payrollperiod.PayrollPeriod,
	record dtr.Record,
	emp employee.Employee,
	components []component.Component,
	overrides map[string]*component.Override,
) payrollperiod.PayrollItem {
	dailyRate := emp.EffectiveDailyRate(s.workingDaysPerMonth)
	basicPay := dailyRate.Mul(record.WorkingDays).Round(2)

	totalAllowances := decimal.Zero
	totalDeductions := decimal.Zero
	for _, c := range components {
		amount := c.AmountOn(overrides[c.ID], period.EndDate)
		switch c.Kind {
		case component.KindAllowance:
			totalAllowances = totalAllowances.Add(amount)
		case component.KindDeduction:
			totalDeductions = totalDeductions.Add(amount)
		}
	}
	totalAllowances = totalAllowances.Round(2)
	totalDeductions = totalDeductions.Round(2)

	grossPay := basicPay.Add(totalAllowances)
	netPay := grossPay.Sub(totalDeductions)

	return payrollperiod.PayrollItem{
		PayrollPeriodID: period.ID,
		EmployeeID:      emp.ID,
		WorkingDays:     record.WorkingDays,
		BasicPay:        basicPay,
		TotalAllowances: totalAllowances,
		TotalDeductions: totalDeductions,
		GrossPay:        grossPay,
		NetPay:          netPay,
		Status:          payrollperiod.ItemStatusComputed,
	}
}

func mapToPeriodResponse(p payrollperiod.PayrollPeriod) payrollperiod.PeriodResponse {
	return payrollperiod.PeriodResponse{
		ID:           p.ID,
		Year:         p.Year,
		Month:        p.Month,
		PeriodNumber: p.PeriodNumber,
		StartDate:    payrollperiod.FormatDate(p.StartDate),
		EndDate:      payrollperiod.FormatDate(p.EndDate),
		PayDate:      payrollperiod.FormatDate(p.PayDate),
		Status:       string(p.Status),
	}
}

func mapToItemResponse(i payrollperiod.PayrollItem) payrollperiod.ItemResponse {
	resp := payrollperiod.ItemResponse{
		ID:              i.ID,
		PayrollPeriodID: i.PayrollPeriodID,
		EmployeeID:      i.EmployeeID,
		WorkingDays:     i.WorkingDays,
		BasicPay:        i.BasicPay,
		TotalAllowances: i.TotalAllowances,
		TotalDeductions: i.TotalDeductions,
		GrossPay:        i.GrossPay,
		NetPay:          i.NetPay,
		Status:          string(i.Status),
	}
	if i.EmployeeName != nil {
		resp.EmployeeName = *i.EmployeeName
	}
	if i.EmployeeNumber != nil {
		resp.EmployeeNumber = *i.EmployeeNumber
	}
	return resp
}
