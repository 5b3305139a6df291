package compensation

import "github.com/shopspring/decimal"

// Rates carries the injected constants the admin compensation path depends
// on. Kept separate from the self-service benefit rates: the two paths use
// different conventions and are tuned independently.
type Rates struct {
	// Terminal Leave Benefit constant factor set by the Commission on Audit.
	TLBFactor decimal.Decimal
	// GSIS personal share rate on the monthly salary.
	GSISRate decimal.Decimal
	// Divisor for deriving a daily rate from a monthly salary.
	WorkingDaysPerMonth decimal.Decimal
	// Loyalty award: base at ten years, plus an increment per five years after.
	LoyaltyBase      decimal.Decimal
	LoyaltyIncrement decimal.Decimal
}

// TerminalLeaveBenefit computes the lump sum paid on retirement or
// separation: highest monthly salary times accumulated leave credits times
// the constant factor.
func TerminalLeaveBenefit(highestMonthlySalary, leaveCredits decimal.Decimal, rates Rates) decimal.Decimal {
	return highestMonthlySalary.Mul(leaveCredits).Mul(rates.TLBFactor)
}

// MonetizeLeaveCredits converts unused leave days to cash at the derived
// daily rate.
func MonetizeLeaveCredits(monthlySalary, days decimal.Decimal, rates Rates) decimal.Decimal {
	return monthlySalary.Div(rates.WorkingDaysPerMonth).Mul(days)
}

// ThirteenthMonthPay is one full month of the current salary. The admin path
// pays the full month; the self-service mid-year bonus pays a twelfth of the
// annual salary instead.
func ThirteenthMonthPay(monthlySalary decimal.Decimal) decimal.Decimal {
	return monthlySalary
}

// FourteenthMonthPay mirrors the thirteenth.
func FourteenthMonthPay(monthlySalary decimal.Decimal) decimal.Decimal {
	return monthlySalary
}

// PerformanceBonus scales one month of salary by the performance rating.
func PerformanceBonus(monthlySalary, rating decimal.Decimal) decimal.Decimal {
	return monthlySalary.Mul(rating)
}

// GSISPersonalShare is the employee-side contribution on the monthly salary.
func GSISPersonalShare(monthlySalary decimal.Decimal, rates Rates) decimal.Decimal {
	return monthlySalary.Mul(rates.GSISRate)
}

// LoyaltyAward pays the base at ten years of service and an increment for
// every completed five years after that. Below ten years it is zero.
func LoyaltyAward(yearsOfService int, rates Rates) decimal.Decimal {
	if yearsOfService < 10 {
		return decimal.Zero
	}
	steps := decimal.NewFromInt(int64((yearsOfService - 10) / 5))
	return rates.LoyaltyBase.Add(rates.LoyaltyIncrement.Mul(steps))
}
