package dtr

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordStatus enum. At most one active record exists per (period, employee);
// the supersede step of each import enforces this, not a DB constraint.
type RecordStatus string

const (
	RecordStatusActive     RecordStatus = "active"
	RecordStatusSuperseded RecordStatus = "superseded"
	RecordStatusDeleted    RecordStatus = "deleted"
)

// Record - One employee's working days for one payroll period, as imported.
type Record struct {
	ID              string
	PayrollPeriodID string
	EmployeeID      string
	WorkingDays     decimal.Decimal
	ImportBatchID   string
	Status          RecordStatus
	CreatedAt       time.Time

	// Joined fields
	EmployeeNumber *string
	EmployeeName   *string
}

// BatchStatus enum
type BatchStatus string

const (
	BatchStatusProcessing BatchStatus = "processing"
	BatchStatusCompleted  BatchStatus = "completed"
)

// ImportBatch - Append-only audit row for one import. A completed batch is
// immutable; corrections go through a new import that supersedes it.
type ImportBatch struct {
	ID              string
	PayrollPeriodID string
	FileName        string
	TotalRecords    int
	ValidRecords    int
	InvalidRecords  int
	WarningRecords  int
	Status          BatchStatus
	ImportedBy      *string
	CreatedAt       time.Time
}

// Row - Parsed input from the external DTR file parser, before business
// validation. The pipeline consumes these, never the file itself.
type Row struct {
	EmployeeNumber string
	StartDate      time.Time
	EndDate        time.Time
	WorkingDays    decimal.Decimal
}
