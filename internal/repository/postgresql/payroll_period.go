package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/payrollperiod"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/database"
)

type payrollPeriodRepository struct {
	db *database.DB
}

func NewPayrollPeriodRepository(db *database.DB) payrollperiod.PeriodRepository {
	return &payrollPeriodRepository{db: db}
}

const periodColumns = `
	id, year, month, period_number, start_date, end_date, pay_date,
	status, created_by, created_at, updated_at, deleted_at
`

func scanPeriod(row pgx.Row) (payrollperiod.PayrollPeriod, error) {
	var p payrollperiod.PayrollPeriod
	err := row.Scan(
		&p.ID, &p.Year, &p.Month, &p.PeriodNumber, &p.StartDate, &p.EndDate, &p.PayDate,
		&p.Status, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	return p, err
}

func (r *payrollPeriodRepository) Create(ctx context.Context, period payrollperiod.PayrollPeriod) (payrollperiod.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (
			year, month, period_number, start_date, end_date, pay_date, status, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + periodColumns

	p, err := scanPeriod(q.QueryRow(ctx, query,
		period.Year, period.Month, period.PeriodNumber,
		period.StartDate, period.EndDate, period.PayDate,
		period.Status, period.CreatedBy,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_period") {
			return payrollperiod.PayrollPeriod{}, payrollperiod.ErrPeriodExists
		}
		return payrollperiod.PayrollPeriod{}, fmt.Errorf("failed to create payroll period: %w", err)
	}
	return p, nil
}

func (r *payrollPeriodRepository) GetByID(ctx context.Context, id string) (payrollperiod.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE id = $1 AND deleted_at IS NULL`

	p, err := scanPeriod(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrollperiod.PayrollPeriod{}, payrollperiod.ErrPeriodNotFound
		}
		return payrollperiod.PayrollPeriod{}, fmt.Errorf("failed to get payroll period: %w", err)
	}
	return p, nil
}

func (r *payrollPeriodRepository) List(ctx context.Context, filter payrollperiod.PeriodFilter) ([]payrollperiod.PayrollPeriod, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	argPos := 1

	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("year = $%d", argPos))
		args = append(args, *filter.Year)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var totalCount int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payroll_periods WHERE `+where, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll periods: %w", err)
	}

	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE ` + where +
		` ORDER BY year DESC, month DESC, period_number DESC`
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, (page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []payrollperiod.PayrollPeriod
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payroll periods: %w", err)
	}

	return periods, totalCount, nil
}

func (r *payrollPeriodRepository) UpdateStatus(ctx context.Context, id string, from, to payrollperiod.Status) error {
	q := GetQuerier(ctx, r.db)

	// Compare-and-swap on status so a concurrent transition loses cleanly.
	tag, err := q.Exec(ctx, `
		UPDATE payroll_periods
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3 AND deleted_at IS NULL
	`, to, id, from)
	if err != nil {
		return fmt.Errorf("failed to update payroll period status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payrollperiod.ErrPeriodNotEditable
	}
	return nil
}

func (r *payrollPeriodRepository) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payroll_periods
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payrollperiod.ErrPeriodNotFound
	}
	return nil
}
