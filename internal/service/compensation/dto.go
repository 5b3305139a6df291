package compensation

import (
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Compensation kinds the admin path can compute.
const (
	KindTerminalLeave    = "terminal_leave"
	KindMonetization     = "monetization"
	KindThirteenthMonth  = "thirteenth_month"
	KindFourteenthMonth  = "fourteenth_month"
	KindPerformanceBonus = "performance_bonus"
	KindGSISShare        = "gsis_share"
	KindLoyaltyAward     = "loyalty_award"
)

var validKinds = []string{
	KindTerminalLeave,
	KindMonetization,
	KindThirteenthMonth,
	KindFourteenthMonth,
	KindPerformanceBonus,
	KindGSISShare,
	KindLoyaltyAward,
}

type ComputeRequest struct {
	EmployeeID string `json:"employee_id"`
	Kind       string `json:"kind"`
	// LeaveCredits feeds terminal leave and monetization.
	LeaveCredits *decimal.Decimal `json:"leave_credits,omitempty"`
	// PerformanceRating feeds the performance bonus; defaults to 1.0.
	PerformanceRating *decimal.Decimal `json:"performance_rating,omitempty"`
	// AsOfDate fixes the service-years computation; defaults to today.
	AsOfDate *string `json:"as_of_date,omitempty"`
}

func (r *ComputeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.Kind, validKinds) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "is not a recognized compensation kind"})
	}
	if r.LeaveCredits != nil && r.LeaveCredits.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "leave_credits", Message: "must be non-negative"})
	}
	if r.PerformanceRating != nil && r.PerformanceRating.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "performance_rating", Message: "must be non-negative"})
	}
	if r.AsOfDate != nil {
		if _, ok := validator.IsValidDate(*r.AsOfDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "as_of_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ComputeResponse struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	Kind           string          `json:"kind"`
	YearsOfService int             `json:"years_of_service"`
	Amount         decimal.Decimal `json:"amount"`
	Basis          string          `json:"basis"`
}
