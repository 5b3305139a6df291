package payrollperiod

import "errors"

var (
	ErrPeriodNotFound      = errors.New("payroll period not found")
	ErrPeriodExists        = errors.New("payroll period already exists for this year, month, and period number")
	ErrItemNotFound        = errors.New("payroll item not found")
	ErrNoDTRData           = errors.New("no active DTR data for this period")
	ErrPeriodNotEditable   = errors.New("payroll period can no longer be modified")
	ErrPeriodNotProcessing = errors.New("payroll period is not in processing status")
	ErrPeriodNotCompleted  = errors.New("payroll period is not in completed status")
	ErrCannotCancelPeriod  = errors.New("payroll period cannot be cancelled in its current status")
	ErrCannotDeletePeriod  = errors.New("only completed payroll periods may be deleted")
)
