package payrollperiod

import "context"

// Repositories read the ambient transaction from ctx when one is open (see
// repository/postgresql.WithTransaction); status transitions and bulk item
// writes are only ever called inside one.

type PeriodRepository interface {
	Create(ctx context.Context, period PayrollPeriod) (PayrollPeriod, error)
	GetByID(ctx context.Context, id string) (PayrollPeriod, error)
	List(ctx context.Context, filter PeriodFilter) ([]PayrollPeriod, int64, error)
	// UpdateStatus transitions id from one status to another; it fails with
	// ErrPeriodNotEditable if the row is no longer in the expected status.
	UpdateStatus(ctx context.Context, id string, from, to Status) error
	SoftDelete(ctx context.Context, id string) error
}

type ItemRepository interface {
	BulkInsert(ctx context.Context, items []PayrollItem) (int, error)
	DeleteByPeriod(ctx context.Context, periodID string) (int64, error)
	ListByPeriod(ctx context.Context, periodID string) ([]PayrollItem, error)
	CountByPeriod(ctx context.Context, periodID string) (int64, error)
	FinalizeByPeriod(ctx context.Context, periodID string) (int64, error)
	GetSummary(ctx context.Context, periodID string) (Summary, error)
}
