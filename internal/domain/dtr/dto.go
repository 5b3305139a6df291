package dtr

import (
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ImportRequest carries already-parsed rows into the pipeline. FileName is
// metadata for the batch audit row only.
type ImportRequest struct {
	PayrollPeriodID string `json:"payroll_period_id"`
	FileName        string `json:"file_name"`
	Rows            []Row  `json:"-"`
	// ConfirmReimport acknowledges that re-importing invalidates payroll
	// items already computed for the period.
	ConfirmReimport bool   `json:"confirm_reimport"`
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PayrollPeriodID) {
		errs = append(errs, validator.ValidationError{Field: "payroll_period_id", Message: "is required"})
	}
	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{Field: "rows", Message: "at least one row is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RowIssue describes why one parsed row was rejected or flagged.
type RowIssue struct {
	RowNumber      int    `json:"row_number"`
	EmployeeNumber string `json:"employee_number"`
	Message        string `json:"message"`
}

// ImportResult categorizes every row of a completed (or dry-run) import so a
// human can correct the source data and retry.
type ImportResult struct {
	BatchID        string     `json:"batch_id,omitempty"`
	TotalRecords   int        `json:"total_records"`
	ValidRecords   int        `json:"valid_records"`
	InvalidRecords int        `json:"invalid_records"`
	WarningRecords int        `json:"warning_records"`
	Invalid        []RowIssue `json:"invalid,omitempty"`
	Warnings       []RowIssue `json:"warnings,omitempty"`
	Superseded     int64      `json:"superseded"`
}

type BatchResponse struct {
	ID              string  `json:"id"`
	PayrollPeriodID string  `json:"payroll_period_id"`
	FileName        string  `json:"file_name"`
	TotalRecords    int     `json:"total_records"`
	ValidRecords    int     `json:"valid_records"`
	InvalidRecords  int     `json:"invalid_records"`
	WarningRecords  int     `json:"warning_records"`
	Status          string  `json:"status"`
	ImportedBy      *string `json:"imported_by,omitempty"`
}

type RecordResponse struct {
	ID              string          `json:"id"`
	PayrollPeriodID string          `json:"payroll_period_id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeNumber  string          `json:"employee_number,omitempty"`
	EmployeeName    string          `json:"employee_name,omitempty"`
	WorkingDays     decimal.Decimal `json:"working_days"`
	ImportBatchID   string          `json:"import_batch_id"`
	Status          string          `json:"status"`
}
