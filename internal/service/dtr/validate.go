package dtr

import (
	"github.com/lgu-hris/payroll-backend-go/internal/domain/dtr"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/employee"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/payrollperiod"
	"github.com/shopspring/decimal"
)

var maxWorkingDays = decimal.NewFromInt(31)

// validateWorkingDays returns the reasons a working-days figure is rejected.
// An empty slice means the figure is importable.
func validateWorkingDays(days decimal.Decimal) []string {
	var issues []string
	if days.IsNegative() {
		issues = append(issues, "working days must not be negative")
	}
	if days.GreaterThan(maxWorkingDays) {
		issues = append(issues, "working days must not exceed 31")
	}
	if days.Exponent() < -2 {
		issues = append(issues, "working days must have at most two decimal places")
	}
	return issues
}

// rowWarnings collects conditions that do not block the import but a payroll
// officer should look at before processing.
func rowWarnings(row dtr.Row, period payrollperiod.PayrollPeriod, emp employee.Employee) []string {
	var warnings []string
	if row.WorkingDays.IsZero() {
		warnings = append(warnings, "zero working days")
	}
	if row.StartDate.Before(period.StartDate) || row.EndDate.After(period.EndDate) {
		warnings = append(warnings, "row dates fall outside the payroll period")
	}
	if !emp.IsActive() {
		warnings = append(warnings, "employee is not active")
	}
	return warnings
}
