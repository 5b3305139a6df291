package benefit

import (
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== BENEFIT TYPE DTOs ==========

type CreateBenefitTypeRequest struct {
	Code                 string           `json:"code"`
	Name                 string           `json:"name"`
	Description          *string          `json:"description,omitempty"`
	CalculationType      string           `json:"calculation_type"`
	FixedAmount          *decimal.Decimal `json:"fixed_amount,omitempty"`
	PercentageRate       *decimal.Decimal `json:"percentage_rate,omitempty"`
	CalculationFormula   *string          `json:"calculation_formula,omitempty"`
	IsTaxable            *bool            `json:"is_taxable,omitempty"`
	IsProrated           *bool            `json:"is_prorated,omitempty"`
	MinimumServiceMonths *int             `json:"minimum_service_months,omitempty"`
}

func (r *CreateBenefitTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidBenefitCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be uppercase letters, digits, and underscores"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	switch CalculationType(r.CalculationType) {
	case CalculationTypeFixed, CalculationTypePercentage, CalculationTypeFormula, CalculationTypeManual:
	default:
		errs = append(errs, validator.ValidationError{Field: "calculation_type", Message: "must be 'fixed', 'percentage', 'formula', or 'manual'"})
	}
	if r.FixedAmount != nil && r.FixedAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "fixed_amount", Message: "must be non-negative"})
	}
	if r.PercentageRate != nil && r.PercentageRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "percentage_rate", Message: "must be non-negative"})
	}
	if r.MinimumServiceMonths != nil && *r.MinimumServiceMonths < 0 {
		errs = append(errs, validator.ValidationError{Field: "minimum_service_months", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BenefitTypeResponse struct {
	ID                   string           `json:"id"`
	Code                 string           `json:"code"`
	Name                 string           `json:"name"`
	Description          *string          `json:"description,omitempty"`
	CalculationType      string           `json:"calculation_type"`
	FixedAmount          *decimal.Decimal `json:"fixed_amount,omitempty"`
	PercentageRate       *decimal.Decimal `json:"percentage_rate,omitempty"`
	CalculationFormula   *string          `json:"calculation_formula,omitempty"`
	IsTaxable            bool             `json:"is_taxable"`
	IsProrated           bool             `json:"is_prorated"`
	MinimumServiceMonths int              `json:"minimum_service_months"`
	IsActive             bool             `json:"is_active"`
}

// ========== CALCULATION DTOs ==========

// CalculateRequest computes one benefit for one employee. Optional extras
// come from systems this core does not own (leave balances, performance
// ratings); when absent the documented defaults apply.
type CalculateRequest struct {
	EmployeeID        string           `json:"employee_id"`
	BenefitTypeID     string           `json:"benefit_type_id"`
	CutoffDate        *string          `json:"cutoff_date,omitempty"` // YYYY-MM-DD, defaults to today
	LeaveDays         *decimal.Decimal `json:"leave_days,omitempty"`
	PerformanceRating *decimal.Decimal `json:"performance_rating,omitempty"`
	Persist           bool             `json:"persist"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.BenefitTypeID) {
		errs = append(errs, validator.ValidationError{Field: "benefit_type_id", Message: "is required"})
	}
	if r.CutoffDate != nil {
		if _, ok := validator.IsValidDate(*r.CutoffDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "cutoff_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.LeaveDays != nil && r.LeaveDays.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "leave_days", Message: "must be non-negative"})
	}
	if r.PerformanceRating != nil && r.PerformanceRating.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "performance_rating", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkCalculateRequest computes one benefit type for many employees. An
// empty EmployeeIDs list means every active employee.
type BulkCalculateRequest struct {
	BenefitTypeID string   `json:"benefit_type_id"`
	EmployeeIDs   []string `json:"employee_ids,omitempty"`
	CutoffDate    *string  `json:"cutoff_date,omitempty"`
	Persist       bool     `json:"persist"`
}

func (r *BulkCalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BenefitTypeID) {
		errs = append(errs, validator.ValidationError{Field: "benefit_type_id", Message: "is required"})
	}
	if r.CutoffDate != nil {
		if _, ok := validator.IsValidDate(*r.CutoffDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "cutoff_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculationResponse struct {
	ID               string          `json:"id,omitempty"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name,omitempty"`
	BenefitTypeID    string          `json:"benefit_type_id"`
	BenefitCode      string          `json:"benefit_code,omitempty"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	ServiceMonths    int             `json:"service_months"`
	CalculatedAmount decimal.Decimal `json:"calculated_amount"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	FinalAmount      decimal.Decimal `json:"final_amount"`
	NetAmount        decimal.Decimal `json:"net_amount"`
	CalculationBasis string          `json:"calculation_basis"`
	IsEligible       bool            `json:"is_eligible"`
	EligibilityNotes string          `json:"eligibility_notes,omitempty"`
}

// BulkCalculateResponse aggregates per-employee outcomes; one employee's
// failure does not abort the batch.
type BulkCalculateResponse struct {
	Results  []CalculationResponse `json:"results"`
	Failures []BulkItemFailure     `json:"failures,omitempty"`
}

type BulkItemFailure struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}
