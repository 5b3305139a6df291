package dtr

import "errors"

var (
	ErrBatchNotFound        = errors.New("DTR import batch not found")
	ErrNoValidRecords       = errors.New("no valid DTR records to import")
	ErrReimportNotConfirmed = errors.New("period already has payroll items computed from existing DTR data; re-import requires confirmation")
	ErrPeriodClosed         = errors.New("DTR import is not allowed once a period is completed or paid")
)
