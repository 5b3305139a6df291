package response

import (
	"errors"
	"net/http"

	"github.com/lgu-hris/payroll-backend-go/internal/domain/benefit"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/component"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/dtr"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/employee"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/payrollperiod"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNumberExists):
		Conflict(w, "Employee number already exists")

	// Benefit domain errors
	case errors.Is(err, benefit.ErrBenefitTypeNotFound):
		NotFound(w, "Benefit type not found")
	case errors.Is(err, benefit.ErrBenefitCodeExists):
		Conflict(w, "Benefit code already exists")
	case errors.Is(err, benefit.ErrCalculationNotFound):
		NotFound(w, "Benefit calculation not found")
	case errors.Is(err, benefit.ErrInvalidCalculationType):
		BadRequest(w, "Invalid calculation type", nil)

	// Payroll period domain errors
	case errors.Is(err, payrollperiod.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payrollperiod.ErrItemNotFound):
		NotFound(w, "Payroll item not found")
	case errors.Is(err, payrollperiod.ErrPeriodExists):
		Conflict(w, err.Error())
	case errors.Is(err, payrollperiod.ErrNoDTRData):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payrollperiod.ErrPeriodNotEditable),
		errors.Is(err, payrollperiod.ErrPeriodNotProcessing),
		errors.Is(err, payrollperiod.ErrPeriodNotCompleted),
		errors.Is(err, payrollperiod.ErrCannotCancelPeriod),
		errors.Is(err, payrollperiod.ErrCannotDeletePeriod):
		StateConflict(w, err.Error())

	// DTR domain errors
	case errors.Is(err, dtr.ErrBatchNotFound):
		NotFound(w, "DTR import batch not found")
	case errors.Is(err, dtr.ErrNoValidRecords):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, dtr.ErrReimportNotConfirmed):
		StateConflict(w, err.Error())
	case errors.Is(err, dtr.ErrPeriodClosed):
		StateConflict(w, err.Error())

	// Component domain errors
	case errors.Is(err, component.ErrComponentNotFound):
		NotFound(w, "Payroll component not found")
	case errors.Is(err, component.ErrComponentNameExists):
		Conflict(w, "Payroll component name already exists")
	case errors.Is(err, component.ErrOverrideNotFound):
		NotFound(w, "Employee override not found")
	case errors.Is(err, component.ErrInvalidKind):
		BadRequest(w, "Invalid component kind", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
