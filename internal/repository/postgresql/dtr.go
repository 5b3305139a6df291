package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/dtr"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/database"
)

type dtrRepository struct {
	db *database.DB
}

func NewDTRRepository(db *database.DB) dtr.Repository {
	return &dtrRepository{db: db}
}

// ========== BATCHES ==========

func (r *dtrRepository) CreateBatch(ctx context.Context, batch dtr.ImportBatch) (dtr.ImportBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO dtr_import_batches (
			id, payroll_period_id, file_name, total_records, valid_records,
			invalid_records, warning_records, status, imported_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	created := batch
	err := q.QueryRow(ctx, query,
		batch.ID, batch.PayrollPeriodID, batch.FileName, batch.TotalRecords,
		batch.ValidRecords, batch.InvalidRecords, batch.WarningRecords,
		batch.Status, batch.ImportedBy,
	).Scan(&created.CreatedAt)
	if err != nil {
		return dtr.ImportBatch{}, fmt.Errorf("failed to create DTR import batch: %w", err)
	}
	return created, nil
}

func (r *dtrRepository) CompleteBatch(ctx context.Context, batchID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE dtr_import_batches SET status = $1 WHERE id = $2 AND status = $3
	`, dtr.BatchStatusCompleted, batchID, dtr.BatchStatusProcessing)
	if err != nil {
		return fmt.Errorf("failed to complete DTR import batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dtr.ErrBatchNotFound
	}
	return nil
}

const batchColumns = `
	id, payroll_period_id, file_name, total_records, valid_records,
	invalid_records, warning_records, status, imported_by, created_at
`

func scanBatch(row pgx.Row) (dtr.ImportBatch, error) {
	var b dtr.ImportBatch
	err := row.Scan(
		&b.ID, &b.PayrollPeriodID, &b.FileName, &b.TotalRecords, &b.ValidRecords,
		&b.InvalidRecords, &b.WarningRecords, &b.Status, &b.ImportedBy, &b.CreatedAt,
	)
	return b, err
}

func (r *dtrRepository) GetBatchByID(ctx context.Context, id string) (dtr.ImportBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + batchColumns + ` FROM dtr_import_batches WHERE id = $1`

	b, err := scanBatch(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return dtr.ImportBatch{}, dtr.ErrBatchNotFound
		}
		return dtr.ImportBatch{}, fmt.Errorf("failed to get DTR import batch: %w", err)
	}
	return b, nil
}

func (r *dtrRepository) ListBatchesByPeriod(ctx context.Context, periodID string) ([]dtr.ImportBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + batchColumns + ` FROM dtr_import_batches WHERE payroll_period_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list DTR import batches: %w", err)
	}
	defer rows.Close()

	var batches []dtr.ImportBatch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan DTR import batch: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate DTR import batches: %w", err)
	}

	return batches, nil
}

// ========== RECORDS ==========

func (r *dtrRepository) SupersedeActiveRecords(ctx context.Context, periodID, excludeBatchID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE dtr_records
		SET status = $1
		WHERE payroll_period_id = $2 AND status = $3 AND import_batch_id <> $4
	`, dtr.RecordStatusSuperseded, periodID, dtr.RecordStatusActive, excludeBatchID)
	if err != nil {
		return 0, fmt.Errorf("failed to supersede DTR records: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *dtrRepository) BulkInsertRecords(ctx context.Context, records []dtr.Record) (int, error) {
	q := GetQuerier(ctx, r.db)

	inserted := 0
	for _, rec := range records {
		_, err := q.Exec(ctx, `
			INSERT INTO dtr_records (payroll_period_id, employee_id, working_days, import_batch_id, status)
			VALUES ($1, $2, $3, $4, $5)
		`, rec.PayrollPeriodID, rec.EmployeeID, rec.WorkingDays, rec.ImportBatchID, rec.Status)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert DTR record for employee %s: %w", rec.EmployeeID, err)
		}
		inserted++
	}
	return inserted, nil
}

func (r *dtrRepository) ListActiveByPeriod(ctx context.Context, periodID string) ([]dtr.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.payroll_period_id, d.employee_id, d.working_days,
			   d.import_batch_id, d.status, d.created_at,
			   e.employee_number, e.full_name
		FROM dtr_records d
		JOIN employees e ON e.id = d.employee_id
		WHERE d.payroll_period_id = $1 AND d.status = $2
		ORDER BY e.employee_number
	`

	rows, err := q.Query(ctx, query, periodID, dtr.RecordStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active DTR records: %w", err)
	}
	defer rows.Close()

	var records []dtr.Record
	for rows.Next() {
		var rec dtr.Record
		err := rows.Scan(
			&rec.ID, &rec.PayrollPeriodID, &rec.EmployeeID, &rec.WorkingDays,
			&rec.ImportBatchID, &rec.Status, &rec.CreatedAt,
			&rec.EmployeeNumber, &rec.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan DTR record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate DTR records: %w", err)
	}

	return records, nil
}

func (r *dtrRepository) CountActiveByPeriod(ctx context.Context, periodID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM dtr_records WHERE payroll_period_id = $1 AND status = $2
	`, periodID, dtr.RecordStatusActive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active DTR records: %w", err)
	}
	return count, nil
}
