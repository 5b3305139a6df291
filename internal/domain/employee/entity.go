package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                   string
	EmployeeNumber       string
	FullName             string
	PositionTitle        *string
	OfficeName           *string
	EmploymentStatus     EmploymentStatus
	AppointmentDate      time.Time
	MonthlySalary        decimal.Decimal
	DailyRate            *decimal.Decimal
	HighestMonthlySalary *decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            *time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "Active"
	EmploymentStatusResigned   EmploymentStatus = "Resigned"
	EmploymentStatusRetired    EmploymentStatus = "Retired"
	EmploymentStatusTerminated EmploymentStatus = "Terminated"
	EmploymentStatusAWOL       EmploymentStatus = "AWOL"
)

// IsActive reports whether the employee may receive benefit or payroll
// computations. Every calculation path gates on this.
func (e Employee) IsActive() bool {
	return e.EmploymentStatus == EmploymentStatusActive
}

// EffectiveDailyRate returns the stored daily rate, or the monthly salary
// divided by the given working-days-per-month divisor when none is stored.
func (e Employee) EffectiveDailyRate(workingDaysPerMonth decimal.Decimal) decimal.Decimal {
	if e.DailyRate != nil && !e.DailyRate.IsZero() {
		return *e.DailyRate
	}
	return e.MonthlySalary.Div(workingDaysPerMonth)
}

// BestMonthlySalary returns the highest recorded monthly salary, falling back
// to the current one. Terminal Leave Benefit computes on this.
func (e Employee) BestMonthlySalary() decimal.Decimal {
	if e.HighestMonthlySalary != nil && e.HighestMonthlySalary.GreaterThan(e.MonthlySalary) {
		return *e.HighestMonthlySalary
	}
	return e.MonthlySalary
}
