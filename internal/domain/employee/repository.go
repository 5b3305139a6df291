package employee

import "context"

// Filter narrows listing queries; zero value lists everything not deleted.
type Filter struct {
	EmploymentStatus *EmploymentStatus
	Search           string
	Page             int
	Limit            int
}

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeNumber(ctx context.Context, number string) (Employee, error)
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)
	GetActive(ctx context.Context) ([]Employee, error)
}
