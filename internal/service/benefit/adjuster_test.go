package benefit

import (
	"testing"

	domainbenefit "github.com/lgu-hris/payroll-backend-go/internal/domain/benefit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApplyAdjustments_Proration(t *testing.T) {
	benefitType := domainbenefit.BenefitType{Code: "BONUS", IsProrated: true}
	amount := decimal.NewFromInt(12000)

	adj := ApplyAdjustments(benefitType, 6, amount, testRates())

	assert.True(t, adj.FinalAmount.Equal(decimal.NewFromInt(6000)), "got %s", adj.FinalAmount)
	assert.True(t, adj.TaxAmount.IsZero())
	assert.True(t, adj.NetAmount.Equal(decimal.NewFromInt(6000)))
	assert.Contains(t, adj.Notes[0], "prorated 6/12")
}

func TestApplyAdjustments_NoProrationAtFullYear(t *testing.T) {
	benefitType := domainbenefit.BenefitType{Code: "BONUS", IsProrated: true}
	amount := decimal.NewFromInt(12000)

	for _, months := range []int{12, 13, 120} {
		adj := ApplyAdjustments(benefitType, months, amount, testRates())
		assert.True(t, adj.FinalAmount.Equal(amount), "months=%d got %s", months, adj.FinalAmount)
		assert.Empty(t, adj.Notes)
	}
}

func TestApplyAdjustments_ProrationDisabled(t *testing.T) {
	benefitType := domainbenefit.BenefitType{Code: "BONUS", IsProrated: false}
	amount := decimal.NewFromInt(12000)

	adj := ApplyAdjustments(benefitType, 3, amount, testRates())

	assert.True(t, adj.FinalAmount.Equal(amount))
}

func TestApplyAdjustments_TaxThreshold(t *testing.T) {
	benefitType := domainbenefit.BenefitType{Code: "BONUS", IsTaxable: true}

	// The monthly threshold is 250000 / 12 = 20833.33...
	t.Run("at threshold stays exempt", func(t *testing.T) {
		amount := decimal.RequireFromString("20833.33")
		adj := ApplyAdjustments(benefitType, 24, amount, testRates())

		assert.True(t, adj.TaxAmount.IsZero(), "got tax %s", adj.TaxAmount)
		assert.True(t, adj.NetAmount.Equal(amount))
		assert.Contains(t, adj.Notes[0], "tax exempt")
	})

	t.Run("just above threshold is taxed", func(t *testing.T) {
		amount := decimal.RequireFromString("20833.34")
		adj := ApplyAdjustments(benefitType, 24, amount, testRates())

		wantTax := amount.Mul(decimal.NewFromFloat(0.10))
		assert.True(t, adj.TaxAmount.Equal(wantTax), "got tax %s", adj.TaxAmount)
		assert.True(t, adj.NetAmount.Equal(amount.Sub(wantTax)))
		assert.Contains(t, adj.Notes[0], "withholding tax")
	})
}

func TestApplyAdjustments_NonTaxableAboveThreshold(t *testing.T) {
	benefitType := domainbenefit.BenefitType{Code: "LOYALTY_10", IsTaxable: false}
	amount := decimal.NewFromInt(50000)

	adj := ApplyAdjustments(benefitType, 150, amount, testRates())

	assert.True(t, adj.TaxAmount.IsZero())
	assert.True(t, adj.NetAmount.Equal(amount))
	assert.Empty(t, adj.Notes)
}

// Tax is assessed on the prorated figure, not the raw one.
func TestApplyAdjustments_TaxOnProratedAmount(t *testing.T) {
	benefitType := domainbenefit.BenefitType{Code: "BONUS", IsProrated: true, IsTaxable: true}
	amount := decimal.NewFromInt(30000)

	adj := ApplyAdjustments(benefitType, 6, amount, testRates())

	// 30000 * 6/12 = 15000, under the monthly threshold, so exempt.
	assert.True(t, adj.FinalAmount.Equal(decimal.NewFromInt(15000)))
	assert.True(t, adj.TaxAmount.IsZero())
}

// Fixed loyalty award for an employee a decade in: eligible, untaxed,
// unprorated, net equals the fixed amount.
func TestLoyaltyAwardEndToEnd(t *testing.T) {
	emp := activeEmployee()
	benefitType := domainbenefit.BenefitType{
		Code:            domainbenefit.CodeLoyalty10,
		CalculationType: domainbenefit.CalculationTypeFixed,
		FixedAmount:     decPtr("10000"),
		IsTaxable:       false,
		IsProrated:      false,
	}

	eligibility := EvaluateEligibility(emp, benefitType, 124)
	assert.True(t, eligibility.IsEligible)

	calc := CalculationContext{BaseSalary: emp.MonthlySalary, ServiceMonths: 124}
	amount, _ := CalculateAmount(benefitType, calc, testRates())
	adj := ApplyAdjustments(benefitType, 124, amount, testRates())

	assert.True(t, adj.FinalAmount.Equal(decimal.NewFromInt(10000)))
	assert.True(t, adj.TaxAmount.IsZero())
	assert.True(t, adj.NetAmount.Equal(decimal.NewFromInt(10000)))
}
