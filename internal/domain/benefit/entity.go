package benefit

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationType enum
type CalculationType string

const (
	CalculationTypeFixed      CalculationType = "fixed"
	CalculationTypePercentage CalculationType = "percentage"
	CalculationTypeFormula    CalculationType = "formula"
	CalculationTypeManual     CalculationType = "manual"
)

// Well-known benefit codes with dedicated calculation or eligibility rules.
const (
	CodeLoyalty10     = "LOYALTY_10"
	CodeLoyalty15     = "LOYALTY_15"
	CodeLoyalty20     = "LOYALTY_20"
	CodeLoyalty25     = "LOYALTY_25"
	CodeMidYear       = "MID_YEAR"
	CodeYearEnd       = "YEAR_END"
	CodeLeaveMonetize = "LEAVE_MONETIZE"
	CodePBB           = "PBB"
)

// BenefitType - Catalog definition of a payable item. Read-only during a
// calculation; a type is never mutated by the computation services.
type BenefitType struct {
	ID                   string
	Code                 string
	Name                 string
	Description          *string
	CalculationType      CalculationType
	FixedAmount          *decimal.Decimal
	PercentageRate       *decimal.Decimal
	CalculationFormula   *string
	IsTaxable            bool
	IsProrated           bool
	MinimumServiceMonths int
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// CalculationResult - One computed benefit line for one employee. Created
// fresh per calculation call and never mutated afterward; recalculating
// inserts a new row.
type CalculationResult struct {
	ID               string
	EmployeeID       string
	BenefitTypeID    string
	BaseSalary       decimal.Decimal
	ServiceMonths    int
	CalculatedAmount decimal.Decimal
	TaxAmount        decimal.Decimal
	FinalAmount      decimal.Decimal
	NetAmount        decimal.Decimal
	CalculationBasis string
	IsEligible       bool
	EligibilityNotes string
	CalculatedAt     time.Time

	// Joined fields
	EmployeeName *string
	BenefitCode  *string
	BenefitName  *string
}
