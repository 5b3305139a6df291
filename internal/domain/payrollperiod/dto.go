package payrollperiod

import (
	"time"

	"github.com/lgu-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PERIOD DTOs ==========

type CreatePeriodRequest struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	PeriodNumber int    `json:"period_number"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	PayDate      string `json:"pay_date"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.PeriodNumber != 1 && r.PeriodNumber != 2 {
		errs = append(errs, validator.ValidationError{Field: "period_number", Message: "must be 1 or 2"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidDate(r.PayDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID           string `json:"id"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	PeriodNumber int    `json:"period_number"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	PayDate      string `json:"pay_date"`
	Status       string `json:"status"`
}

type PeriodFilter struct {
	Year   *int
	Status *Status
	Page   int
	Limit  int
}

// ========== PROCESSING DTOs ==========

// ProcessResult reports a payroll run over one period. Employees whose DTR
// rows could not be turned into items are listed, not silently dropped.
type ProcessResult struct {
	PayrollPeriodID string        `json:"payroll_period_id"`
	ItemsCreated    int           `json:"items_created"`
	Skipped         []SkippedItem `json:"skipped,omitempty"`
}

type SkippedItem struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

type ItemResponse struct {
	ID              string          `json:"id"`
	PayrollPeriodID string          `json:"payroll_period_id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name,omitempty"`
	EmployeeNumber  string          `json:"employee_number,omitempty"`
	WorkingDays     decimal.Decimal `json:"working_days"`
	BasicPay        decimal.Decimal `json:"basic_pay"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	NetPay          decimal.Decimal `json:"net_pay"`
	Status          string          `json:"status"`
}

type SummaryResponse struct {
	PayrollPeriodID string          `json:"payroll_period_id"`
	EmployeeCount   int             `json:"employee_count"`
	TotalBasicPay   decimal.Decimal `json:"total_basic_pay"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalGrossPay   decimal.Decimal `json:"total_gross_pay"`
	TotalNetPay     decimal.Decimal `json:"total_net_pay"`
}

// FormatDate renders dates the way every response in this API does.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
