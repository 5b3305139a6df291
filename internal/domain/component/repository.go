package component

import "context"

type Repository interface {
	CreateComponent(ctx context.Context, c Component) (Component, error)
	GetComponentByID(ctx context.Context, id string) (Component, error)
	ListComponents(ctx context.Context, activeOnly bool) ([]Component, error)
	DeactivateComponent(ctx context.Context, id string) error

	CreateOverride(ctx context.Context, o Override) (Override, error)
	GetOverrideByID(ctx context.Context, id string) (Override, error)
	// DeactivateActiveOverride deactivates the currently active override for
	// the employee+component pair, returning how many rows changed (0 or 1).
	DeactivateActiveOverride(ctx context.Context, employeeID, componentID string) (int64, error)
	DeactivateOverride(ctx context.Context, id string) error
	ListOverridesByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]Override, error)
	ListActiveOverrides(ctx context.Context) ([]Override, error)
}
