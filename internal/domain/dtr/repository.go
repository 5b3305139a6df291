package dtr

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, batch ImportBatch) (ImportBatch, error)
	CompleteBatch(ctx context.Context, batchID string) error
	GetBatchByID(ctx context.Context, id string) (ImportBatch, error)
	ListBatchesByPeriod(ctx context.Context, periodID string) ([]ImportBatch, error)

	// SupersedeActiveRecords marks every active record for the period outside
	// the given batch as superseded, returning the number affected.
	SupersedeActiveRecords(ctx context.Context, periodID, excludeBatchID string) (int64, error)
	BulkInsertRecords(ctx context.Context, records []Record) (int, error)
	ListActiveByPeriod(ctx context.Context, periodID string) ([]Record, error)
	CountActiveByPeriod(ctx context.Context, periodID string) (int64, error)
}
