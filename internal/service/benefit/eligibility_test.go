package benefit

import (
	"testing"
	"time"

	domainbenefit "github.com/lgu-hris/payroll-backend-go/internal/domain/benefit"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/employee"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func activeEmployee() employee.Employee {
	return employee.Employee{
		ID:               "emp-1",
		EmployeeNumber:   "2014-0012",
		FullName:         "Juan Dela Cruz",
		EmploymentStatus: employee.EmploymentStatusActive,
		AppointmentDate:  time.Date(2014, 1, 10, 0, 0, 0, 0, time.UTC),
		MonthlySalary:    decimal.NewFromInt(30000),
	}
}

func TestEvaluateEligibility_InactiveEmployee(t *testing.T) {
	tests := []struct {
		name   string
		status employee.EmploymentStatus
	}{
		{"resigned", employee.EmploymentStatusResigned},
		{"retired", employee.EmploymentStatusRetired},
		{"terminated", employee.EmploymentStatusTerminated},
		{"awol", employee.EmploymentStatusAWOL},
	}

	benefitType := domainbenefit.BenefitType{Code: "MID_YEAR"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := activeEmployee()
			emp.EmploymentStatus = tt.status

			result := EvaluateEligibility(emp, benefitType, 200)

			assert.False(t, result.IsEligible)
			assert.Contains(t, result.Notes, string(tt.status))
		})
	}
}

func TestEvaluateEligibility_MinimumServiceMonths(t *testing.T) {
	benefitType := domainbenefit.BenefitType{
		Code:                 "ANNIVERSARY",
		MinimumServiceMonths: 6,
	}

	result := EvaluateEligibility(activeEmployee(), benefitType, 5)
	assert.False(t, result.IsEligible)
	assert.Contains(t, result.Notes, "below the required 6 months")

	result = EvaluateEligibility(activeEmployee(), benefitType, 6)
	assert.True(t, result.IsEligible)
	assert.Empty(t, result.Notes)
}

func TestEvaluateEligibility_CodeMinimums(t *testing.T) {
	tests := []struct {
		code          string
		serviceMonths int
		wantEligible  bool
	}{
		{"LOYALTY_10", 119, false},
		{"LOYALTY_10", 120, true},
		{"LOYALTY_15", 179, false},
		{"LOYALTY_15", 180, true},
		{"LOYALTY_20", 239, false},
		{"LOYALTY_20", 240, true},
		{"LOYALTY_25", 299, false},
		{"LOYALTY_25", 300, true},
		{"PBB", 3, false},
		{"PBB", 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			benefitType := domainbenefit.BenefitType{Code: tt.code}
			result := EvaluateEligibility(activeEmployee(), benefitType, tt.serviceMonths)
			assert.Equal(t, tt.wantEligible, result.IsEligible, "code %s at %d months", tt.code, tt.serviceMonths)
		})
	}
}

// Ten years and a few months of service clears the LOYALTY_10 floor; the same
// inputs drive the end-to-end scenario in the calculator tests.
func TestEvaluateEligibility_LoyaltyTenYearScenario(t *testing.T) {
	emp := activeEmployee()
	cutoff := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	serviceMonths := dateutil.MonthsOfService(emp.AppointmentDate, cutoff)
	assert.Equal(t, 124, serviceMonths)

	benefitType := domainbenefit.BenefitType{Code: domainbenefit.CodeLoyalty10}
	result := EvaluateEligibility(emp, benefitType, serviceMonths)
	assert.True(t, result.IsEligible)
}

// The status check wins over the service checks when both fail.
func TestEvaluateEligibility_FirstFailureWins(t *testing.T) {
	emp := activeEmployee()
	emp.EmploymentStatus = employee.EmploymentStatusResigned

	benefitType := domainbenefit.BenefitType{
		Code:                 domainbenefit.CodeLoyalty10,
		MinimumServiceMonths: 12,
	}

	result := EvaluateEligibility(emp, benefitType, 0)
	assert.False(t, result.IsEligible)
	assert.Contains(t, result.Notes, "Resigned")
	assert.NotContains(t, result.Notes, "months")
}
