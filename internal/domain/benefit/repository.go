package benefit

import "context"

type BenefitTypeRepository interface {
	Create(ctx context.Context, benefitType BenefitType) (BenefitType, error)
	GetByID(ctx context.Context, id string) (BenefitType, error)
	GetByCode(ctx context.Context, code string) (BenefitType, error)
	List(ctx context.Context, activeOnly bool) ([]BenefitType, error)
	Deactivate(ctx context.Context, id string) error
}

type CalculationRepository interface {
	Create(ctx context.Context, result CalculationResult) (CalculationResult, error)
	GetByID(ctx context.Context, id string) (CalculationResult, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]CalculationResult, error)
}
