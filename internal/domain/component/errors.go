package component

import "errors"

var (
	ErrComponentNotFound   = errors.New("payroll component not found")
	ErrComponentNameExists = errors.New("payroll component name already exists")
	ErrOverrideNotFound    = errors.New("employee override not found")
	ErrInvalidKind         = errors.New("invalid component kind")
)
