package payrollperiod

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum. Lifecycle: draft -> processing -> completed | cancelled,
// completed -> paid. Completed and paid periods reject DTR re-import and
// reprocessing; cancelled is terminal.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusPaid       Status = "paid"
)

// CanProcess reports whether payroll may be generated or regenerated for a
// period in this status.
func (s Status) CanProcess() bool {
	return s == StatusDraft || s == StatusProcessing
}

// CanFinalize reports whether the period may be marked completed.
func (s Status) CanFinalize() bool {
	return s == StatusProcessing
}

// CanCancel reports whether the period may be cancelled. Cancelling deletes
// every payroll item generated so far.
func (s Status) CanCancel() bool {
	return s == StatusDraft || s == StatusProcessing
}

// CanMarkPaid reports whether the period may be marked paid.
func (s Status) CanMarkPaid() bool {
	return s == StatusCompleted
}

// AcceptsDTRImport reports whether DTR data may still be (re)imported.
// Re-import into draft/processing additionally requires caller confirmation
// when payroll items already exist; that check lives in the DTR service.
func (s Status) AcceptsDTRImport() bool {
	return s == StatusDraft || s == StatusProcessing
}

// PayrollPeriod - One semi-monthly or monthly pay run. Status is the only field
// the computation core mutates; rows are soft-deleted.
type PayrollPeriod struct {
	ID           string
	Year         int
	Month        int
	PeriodNumber int // 1 or 2
	StartDate    time.Time
	EndDate      time.Time
	PayDate      time.Time
	Status       Status
	CreatedBy    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// ItemStatus enum
type ItemStatus string

const (
	ItemStatusComputed  ItemStatus = "computed"
	ItemStatusFinalized ItemStatus = "finalized"
)

// PayrollItem - One employee's pay line for one period. Overwritten when the
// period is reprocessed, deleted en masse when the period is cancelled.
type PayrollItem struct {
	ID              string
	PayrollPeriodID string
	EmployeeID      string
	WorkingDays     decimal.Decimal
	BasicPay        decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	GrossPay        decimal.Decimal
	NetPay          decimal.Decimal
	Status          ItemStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeNumber *string
}

// Summary - Period-level totals for reporting collaborators.
type Summary struct {
	PayrollPeriodID string
	EmployeeCount   int
	TotalBasicPay   decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalGrossPay   decimal.Decimal
	TotalNetPay     decimal.Decimal
}
