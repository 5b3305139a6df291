package benefit

import (
	"fmt"

	"github.com/lgu-hris/payroll-backend-go/internal/domain/benefit"
	"github.com/shopspring/decimal"
)

// Adjustment is the outcome of applying proration and withholding to a raw
// amount. FinalAmount is the post-proration figure tax is assessed on.
type Adjustment struct {
	FinalAmount decimal.Decimal
	TaxAmount   decimal.Decimal
	NetAmount   decimal.Decimal
	// Notes are appended to the calculation basis, one clause per rule that
	// actually fired.
	Notes []string
}

// ApplyAdjustments prorates part-year service and computes withholding tax.
//
// Tax is a simplified placeholder: zero at or under the monthly exemption
// threshold (annual exemption / 12), a flat rate above it. The real
// progressive table is a stakeholder decision this core does not guess at.
func ApplyAdjustments(benefitType benefit.BenefitType, serviceMonths int, amount decimal.Decimal, rates Rates) Adjustment {
	adj := Adjustment{FinalAmount: amount, TaxAmount: decimal.Zero}

	if benefitType.IsProrated && serviceMonths < 12 {
		months := decimal.NewFromInt(int64(serviceMonths))
		adj.FinalAmount = amount.Mul(months).Div(twelve)
		adj.Notes = append(adj.Notes,
			fmt.Sprintf("prorated %d/12 months of service", serviceMonths))
	}

	if benefitType.IsTaxable {
		threshold := rates.TaxAnnualExemption.Div(twelve)
		if adj.FinalAmount.GreaterThan(threshold) {
			adj.TaxAmount = adj.FinalAmount.Mul(rates.TaxRate)
			adj.Notes = append(adj.Notes,
				fmt.Sprintf("withholding tax %s%% applied above monthly threshold %s",
					rates.TaxRate.Mul(hundred), money(threshold)))
		} else {
			adj.Notes = append(adj.Notes,
				fmt.Sprintf("tax exempt: amount within monthly threshold %s", money(threshold)))
		}
	}

	adj.NetAmount = adj.FinalAmount.Sub(adj.TaxAmount)
	return adj
}
