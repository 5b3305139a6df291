package component

import (
	"time"

	"github.com/lgu-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== COMPONENT DTOs ==========

type CreateComponentRequest struct {
	Name          string          `json:"name"`
	Kind          string          `json:"kind"` // "allowance" or "deduction"
	Description   *string         `json:"description,omitempty"`
	DefaultAmount decimal.Decimal `json:"default_amount"`
	IsTaxable     *bool           `json:"is_taxable,omitempty"`
}

func (r *CreateComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Kind != string(KindAllowance) && r.Kind != string(KindDeduction) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'allowance' or 'deduction'"})
	}
	if r.DefaultAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "default_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ComponentResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Kind          string          `json:"kind"`
	Description   *string         `json:"description,omitempty"`
	DefaultAmount decimal.Decimal `json:"default_amount"`
	IsTaxable     bool            `json:"is_taxable"`
	IsActive      bool            `json:"is_active"`
}

// ========== OVERRIDE DTOs ==========

type CreateOverrideRequest struct {
	EmployeeID     string          `json:"employee_id"`
	ComponentID    string          `json:"component_id"`
	OverrideAmount decimal.Decimal `json:"override_amount"`
	EffectiveDate  string          `json:"effective_date"`
	EndDate        *string         `json:"end_date,omitempty"`
}

func (r *CreateOverrideRequest) Validate() error {
	return r.validateAt(time.Now())
}

// validateAt exists so tests can pin "today".
func (r *CreateOverrideRequest) validateAt(now time.Time) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ComponentID) {
		errs = append(errs, validator.ValidationError{Field: "component_id", Message: "is required"})
	}
	if r.OverrideAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "override_amount", Message: "must be non-negative"})
	}

	effective, ok := validator.IsValidDate(r.EffectiveDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be a valid date (YYYY-MM-DD)"})
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if effective.Before(today) {
			errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must not be in the past"})
		}
	}

	if r.EndDate != nil {
		end, endOK := validator.IsValidDate(*r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		} else if ok && end.Before(effective) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before effective_date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkCreateOverridesRequest struct {
	Overrides []CreateOverrideRequest `json:"overrides"`
}

type OverrideResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	ComponentID    string          `json:"component_id"`
	ComponentName  string          `json:"component_name,omitempty"`
	ComponentKind  string          `json:"component_kind,omitempty"`
	OverrideAmount decimal.Decimal `json:"override_amount"`
	EffectiveDate  string          `json:"effective_date"`
	EndDate        *string         `json:"end_date,omitempty"`
	IsActive       bool            `json:"is_active"`
}

// BulkOverrideResponse reports per-item outcomes; one invalid override does
// not abort its siblings.
type BulkOverrideResponse struct {
	Created  []OverrideResponse `json:"created"`
	Failures []BulkItemFailure  `json:"failures,omitempty"`
}

type BulkItemFailure struct {
	Index      int    `json:"index"`
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}
