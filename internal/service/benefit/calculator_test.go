package benefit

import (
	"testing"

	domainbenefit "github.com/lgu-hris/payroll-backend-go/internal/domain/benefit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testRates() Rates {
	return Rates{
		TaxAnnualExemption:  decimal.NewFromInt(250000),
		TaxRate:             decimal.NewFromFloat(0.10),
		WorkingDaysPerMonth: decimal.NewFromInt(22),
	}
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

func TestCalculateAmount_Fixed(t *testing.T) {
	benefitType := domainbenefit.BenefitType{
		Code:            domainbenefit.CodeLoyalty10,
		CalculationType: domainbenefit.CalculationTypeFixed,
		FixedAmount:     decPtr("10000"),
	}

	amount, basis := CalculateAmount(benefitType, CalculationContext{}, testRates())

	assert.True(t, amount.Equal(decimal.NewFromInt(10000)), "got %s", amount)
	assert.Contains(t, basis, "Fixed amount of 10000.00")
}

func TestCalculateAmount_FixedNilAmount(t *testing.T) {
	benefitType := domainbenefit.BenefitType{
		Code:            "RICE_SUBSIDY",
		CalculationType: domainbenefit.CalculationTypeFixed,
	}

	amount, _ := CalculateAmount(benefitType, CalculationContext{}, testRates())
	assert.True(t, amount.IsZero())
}

func TestCalculateAmount_Percentage(t *testing.T) {
	benefitType := domainbenefit.BenefitType{
		Code:            "HAZARD_PAY",
		CalculationType: domainbenefit.CalculationTypePercentage,
		PercentageRate:  decPtr("25"),
	}
	calc := CalculationContext{BaseSalary: decimal.NewFromInt(30000)}

	amount, basis := CalculateAmount(benefitType, calc, testRates())

	assert.True(t, amount.Equal(decimal.NewFromInt(7500)), "got %s", amount)
	assert.Contains(t, basis, "25% of base salary 30000.00")
}

func TestCalculateAmount_Manual(t *testing.T) {
	benefitType := domainbenefit.BenefitType{
		Code:            "SPECIAL_AWARD",
		CalculationType: domainbenefit.CalculationTypeManual,
	}

	amount, basis := CalculateAmount(benefitType, CalculationContext{}, testRates())

	assert.True(t, amount.IsZero())
	assert.Contains(t, basis, "Manual amount")
}

func TestCalculateAmount_MidYearFullService(t *testing.T) {
	benefitType := domainbenefit.BenefitType{
		Code:            domainbenefit.CodeMidYear,
		CalculationType: domainbenefit.CalculationTypeFormula,
	}
	calc := CalculationContext{
		BaseSalary:    decimal.NewFromInt(24000),
		ServiceMonths: 36,
	}

	amount, _ := CalculateAmount(benefitType, calc, testRates())

	// Service capped at 12 months, so a full twelfth of annual salary.
	assert.True(t, amount.Equal(decimal.NewFromInt(2000)), "got %s", amount)
}

func TestCalculateAmount_YearEndPartialService(t *testing.T) {
	benefitType := domainbenefit.BenefitType{
		Code:            domainbenefit.CodeYearEnd,
		CalculationType: domainbenefit.CalculationTypeFormula,
	}
	calc := CalculationContext{
		BaseSalary:    decimal.NewFromInt(24000),
		ServiceMonths: 6,
	}

	amount, basis := CalculateAmount(benefitType, calc, testRates())

	assert.True(t, amount.Equal(decimal.NewFromInt(1000)), "got %s", amount)
	assert.Contains(t, basis, "6/12 months")
}

func TestCalculateAmount_LeaveMonetize(t *testing.T) {
	benefitType := domainbenefit.BenefitType{
		Code:            domainbenefit.CodeLeaveMonetize,
		CalculationType: domainbenefit.CalculationTypeFormula,
	}

	t.Run("with leave days and stored daily rate", func(t *testing.T) {
		calc := CalculationContext{
			BaseSalary: decimal.NewFromInt(22000),
			DailyRate:  decPtr("1200"),
			LeaveDays:  decPtr("10"),
		}

		amount, _ := CalculateAmount(benefitType, calc, testRates())
		assert.True(t, amount.Equal(decimal.NewFromInt(12000)), "got %s", amount)
	})

	t.Run("derives daily rate from monthly salary", func(t *testing.T) {
		calc := CalculationContext{
			BaseSalary: decimal.NewFromInt(22000),
			LeaveDays:  decPtr("5"),
		}

		amount, _ := CalculateAmount(benefitType, calc, testRates())
		// 22000 / 22 = 1000 per day.
		assert.True(t, amount.Equal(decimal.NewFromInt(5000)), "got %s", amount)
	})

	t.Run("defaults to zero days when no balance supplied", func(t *testing.T) {
		calc := CalculationContext{BaseSalary: decimal.NewFromInt(22000)}

		amount, basis := CalculateAmount(benefitType, calc, testRates())
		assert.True(t, amount.IsZero())
		assert.Contains(t, basis, "defaulted to 0 days")
	})
}

func TestCalculateAmount_PBB(t *testing.T) {
	benefitType := domainbenefit.BenefitType{
		Code:            domainbenefit.CodePBB,
		CalculationType: domainbenefit.CalculationTypeFormula,
	}

	t.Run("with rating", func(t *testing.T) {
		calc := CalculationContext{
			BaseSalary:        decimal.NewFromInt(36000),
			PerformanceRating: decPtr("0.65"),
		}

		amount, _ := CalculateAmount(benefitType, calc, testRates())
		assert.True(t, amount.Equal(decimal.NewFromInt(1950)), "got %s", amount)
	})

	t.Run("defaults rating to 1.0", func(t *testing.T) {
		calc := CalculationContext{BaseSalary: decimal.NewFromInt(36000)}

		amount, _ := CalculateAmount(benefitType, calc, testRates())
		assert.True(t, amount.Equal(decimal.NewFromInt(3000)), "got %s", amount)
	})
}

func TestCalculateAmount_GenericFormula(t *testing.T) {
	calc := CalculationContext{
		BaseSalary:    decimal.NewFromInt(30000),
		ServiceMonths: 24,
	}

	t.Run("evaluates configured expression", func(t *testing.T) {
		benefitType := domainbenefit.BenefitType{
			Code:               "ANNIVERSARY",
			CalculationType:    domainbenefit.CalculationTypeFormula,
			CalculationFormula: strPtr("basic_salary * 0.5 + 1000"),
		}

		amount, basis := CalculateAmount(benefitType, calc, testRates())
		assert.True(t, amount.Equal(decimal.NewFromInt(16000)), "got %s", amount)
		assert.Contains(t, basis, "basic_salary * 0.5 + 1000")
	})

	t.Run("malformed expression downgrades to zero", func(t *testing.T) {
		benefitType := domainbenefit.BenefitType{
			Code:               "BROKEN",
			CalculationType:    domainbenefit.CalculationTypeFormula,
			CalculationFormula: strPtr("basic_salary * * 2"),
		}

		amount, basis := CalculateAmount(benefitType, calc, testRates())
		assert.True(t, amount.IsZero())
		assert.Contains(t, basis, "could not be evaluated")
	})

	t.Run("unknown variable downgrades to zero", func(t *testing.T) {
		benefitType := domainbenefit.BenefitType{
			Code:               "BROKEN",
			CalculationType:    domainbenefit.CalculationTypeFormula,
			CalculationFormula: strPtr("basic_salary * bonus_factor"),
		}

		amount, basis := CalculateAmount(benefitType, calc, testRates())
		assert.True(t, amount.IsZero())
		assert.Contains(t, basis, "could not be evaluated")
	})

	t.Run("negative result clamps to zero", func(t *testing.T) {
		benefitType := domainbenefit.BenefitType{
			Code:               "NEGATIVE",
			CalculationType:    domainbenefit.CalculationTypeFormula,
			CalculationFormula: strPtr("basic_salary - 40000"),
		}

		amount, basis := CalculateAmount(benefitType, calc, testRates())
		assert.True(t, amount.IsZero())
		assert.Contains(t, basis, "negative result")
	})

	t.Run("no formula configured", func(t *testing.T) {
		benefitType := domainbenefit.BenefitType{
			Code:            "EMPTY",
			CalculationType: domainbenefit.CalculationTypeFormula,
		}

		amount, basis := CalculateAmount(benefitType, calc, testRates())
		assert.True(t, amount.IsZero())
		assert.Contains(t, basis, "No calculation formula configured")
	})
}

// Same inputs, same outputs: the calculation reads nothing but its arguments.
func TestCalculateAmount_Deterministic(t *testing.T) {
	benefitType := domainbenefit.BenefitType{
		Code:               "ANNIVERSARY",
		CalculationType:    domainbenefit.CalculationTypeFormula,
		CalculationFormula: strPtr("basic_salary / 12 * service_months / 12"),
	}
	calc := CalculationContext{
		BaseSalary:    decimal.NewFromInt(31415),
		ServiceMonths: 7,
	}

	first, firstBasis := CalculateAmount(benefitType, calc, testRates())
	for i := 0; i < 5; i++ {
		amount, basis := CalculateAmount(benefitType, calc, testRates())
		assert.True(t, amount.Equal(first))
		assert.Equal(t, firstBasis, basis)
	}
}
