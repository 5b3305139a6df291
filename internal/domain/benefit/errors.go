package benefit

import "errors"

var (
	ErrBenefitTypeNotFound    = errors.New("benefit type not found")
	ErrBenefitCodeExists      = errors.New("benefit code already exists")
	ErrCalculationNotFound    = errors.New("benefit calculation not found")
	ErrInvalidCalculationType = errors.New("invalid calculation type")
)
