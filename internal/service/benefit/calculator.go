package benefit

import (
	"fmt"

	"github.com/lgu-hris/payroll-backend-go/internal/domain/benefit"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/formula"
	"github.com/shopspring/decimal"
)

// Rates carries the injected constants the self-service calculation path
// depends on. The admin compensation service owns its own set; the two paths
// are maintained separately on purpose.
type Rates struct {
	// Monthly withholding threshold is TaxAnnualExemption / 12.
	TaxAnnualExemption decimal.Decimal
	TaxRate            decimal.Decimal
	// Divisor for deriving a daily rate from a monthly salary.
	WorkingDaysPerMonth decimal.Decimal
}

// CalculationContext is everything a single amount computation may read.
// Optional fields come from collaborators this core does not own; the
// documented defaults apply when they are nil.
type CalculationContext struct {
	BaseSalary    decimal.Decimal
	ServiceMonths int
	// DailyRate overrides BaseSalary / WorkingDaysPerMonth when supplied.
	DailyRate *decimal.Decimal
	// LeaveDays must be supplied by the leave system for LEAVE_MONETIZE;
	// defaults to 0, which yields a zero amount.
	LeaveDays *decimal.Decimal
	// PerformanceRating defaults to 1.0 (satisfactory) for PBB.
	PerformanceRating *decimal.Decimal
}

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// CalculateAmount computes the raw (pre-proration, pre-tax) amount for an
// eligible employee, plus a human-readable derivation for the audit trail.
// A malformed formula downgrades to a zero amount with an explanatory basis
// so one bad benefit type cannot abort a bulk run.
func CalculateAmount(benefitType benefit.BenefitType, calc CalculationContext, rates Rates) (decimal.Decimal, string) {
	switch benefitType.CalculationType {
	case benefit.CalculationTypeFixed:
		amount := decimal.Zero
		if benefitType.FixedAmount != nil {
			amount = *benefitType.FixedAmount
		}
		return amount, fmt.Sprintf("Fixed amount of %s", money(amount))

	case benefit.CalculationTypePercentage:
		rate := decimal.Zero
		if benefitType.PercentageRate != nil {
			rate = *benefitType.PercentageRate
		}
		amount := calc.BaseSalary.Mul(rate).Div(hundred)
		return amount, fmt.Sprintf("%s%% of base salary %s = %s", rate, money(calc.BaseSalary), money(amount))

	case benefit.CalculationTypeFormula:
		return calculateFormula(benefitType, calc, rates)

	case benefit.CalculationTypeManual:
		return decimal.Zero, "Manual amount: to be entered by an administrator"

	default:
		return decimal.Zero, fmt.Sprintf("Unknown calculation type %q", benefitType.CalculationType)
	}
}

func calculateFormula(benefitType benefit.BenefitType, calc CalculationContext, rates Rates) (decimal.Decimal, string) {
	switch benefitType.Code {
	case benefit.CodeMidYear, benefit.CodeYearEnd:
		// One twelfth of annual salary, prorated by service capped at a year.
		months := calc.ServiceMonths
		if months > 12 {
			months = 12
		}
		monthlyShare := calc.BaseSalary.Div(twelve)
		amount := monthlyShare.Mul(decimal.NewFromInt(int64(months))).Div(twelve)
		basis := fmt.Sprintf("One twelfth of annual salary (%s) x %d/12 months of service = %s",
			money(monthlyShare), months, money(amount))
		return amount, basis

	case benefit.CodeLeaveMonetize:
		dailyRate := deriveDailyRate(calc, rates)
		leaveDays := decimal.Zero
		if calc.LeaveDays != nil {
			leaveDays = *calc.LeaveDays
		}
		amount := dailyRate.Mul(leaveDays)
		basis := fmt.Sprintf("Daily rate %s x %s leave days = %s", money(dailyRate), leaveDays, money(amount))
		if calc.LeaveDays == nil {
			basis += " (no leave balance supplied; defaulted to 0 days)"
		}
		return amount, basis

	case benefit.CodePBB:
		rating := decimal.NewFromInt(1)
		if calc.PerformanceRating != nil {
			rating = *calc.PerformanceRating
		}
		monthlyShare := calc.BaseSalary.Div(twelve)
		amount := monthlyShare.Mul(rating)
		basis := fmt.Sprintf("One twelfth of annual salary (%s) x performance rating %s = %s",
			money(monthlyShare), rating, money(amount))
		return amount, basis

	default:
		return calculateGenericFormula(benefitType, calc, rates)
	}
}

func calculateGenericFormula(benefitType benefit.BenefitType, calc CalculationContext, rates Rates) (decimal.Decimal, string) {
	if benefitType.CalculationFormula == nil || *benefitType.CalculationFormula == "" {
		return decimal.Zero, fmt.Sprintf("No calculation formula configured for %s", benefitType.Code)
	}

	expr := *benefitType.CalculationFormula
	vars := formula.Bindings{
		"basic_salary":   calc.BaseSalary,
		"monthly_salary": calc.BaseSalary,
		"daily_rate":     deriveDailyRate(calc, rates),
		"service_months": decimal.NewFromInt(int64(calc.ServiceMonths)),
	}

	amount, err := formula.Eval(expr, vars)
	if err != nil {
		return decimal.Zero, fmt.Sprintf("Formula %q could not be evaluated (%v); amount set to 0", expr, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Sprintf("Formula %q produced a negative result; amount set to 0", expr)
	}
	return amount, fmt.Sprintf("Formula %q = %s", expr, money(amount))
}

func deriveDailyRate(calc CalculationContext, rates Rates) decimal.Decimal {
	if calc.DailyRate != nil && !calc.DailyRate.IsZero() {
		return *calc.DailyRate
	}
	return calc.BaseSalary.Div(rates.WorkingDaysPerMonth)
}

// money renders an amount the way it is persisted: two decimals, half up.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
