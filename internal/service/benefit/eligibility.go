package benefit

import (
	"fmt"

	"github.com/lgu-hris/payroll-backend-go/internal/domain/benefit"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/employee"
)

// EligibilityResult is a first-class outcome, not an error: an ineligible
// employee is a valid answer with a reason a clerk can read back.
type EligibilityResult struct {
	IsEligible bool
	Notes      string
}

// Loyalty awards and the performance bonus carry their own service floors on
// top of whatever the benefit type row declares.
var codeMinimumMonths = map[string]int{
	benefit.CodeLoyalty10: 120,
	benefit.CodeLoyalty15: 180,
	benefit.CodeLoyalty20: 240,
	benefit.CodeLoyalty25: 300,
	benefit.CodePBB:       4,
}

// EvaluateEligibility applies the eligibility rules in order; the first
// failing rule wins and its reason becomes the notes.
func EvaluateEligibility(emp employee.Employee, benefitType benefit.BenefitType, serviceMonths int) EligibilityResult {
	if !emp.IsActive() {
		return EligibilityResult{
			IsEligible: false,
			Notes:      fmt.Sprintf("employment status is %s", emp.EmploymentStatus),
		}
	}

	if serviceMonths < benefitType.MinimumServiceMonths {
		return EligibilityResult{
			IsEligible: false,
			Notes: fmt.Sprintf("%d months of service is below the required %d months",
				serviceMonths, benefitType.MinimumServiceMonths),
		}
	}

	if required, ok := codeMinimumMonths[benefitType.Code]; ok && serviceMonths < required {
		return EligibilityResult{
			IsEligible: false,
			Notes: fmt.Sprintf("%s requires %d months of service; employee has %d",
				benefitType.Code, required, serviceMonths),
		}
	}

	return EligibilityResult{IsEligible: true}
}
