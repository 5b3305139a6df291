package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/payrollperiod"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/database"
)

type payrollItemRepository struct {
	db *database.DB
}

func NewPayrollItemRepository(db *database.DB) payrollperiod.ItemRepository {
	return &payrollItemRepository{db: db}
}

func (r *payrollItemRepository) BulkInsert(ctx context.Context, items []payrollperiod.PayrollItem) (int, error) {
	q := GetQuerier(ctx, r.db)

	inserted := 0
	for _, item := range items {
		_, err := q.Exec(ctx, `
			INSERT INTO payroll_items (
				payroll_period_id, employee_id, working_days, basic_pay,
				total_allowances, total_deductions, gross_pay, net_pay, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`,
			item.PayrollPeriodID, item.EmployeeID, item.WorkingDays, item.BasicPay,
			item.TotalAllowances, item.TotalDeductions, item.GrossPay, item.NetPay, item.Status,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert payroll item for employee %s: %w", item.EmployeeID, err)
		}
		inserted++
	}
	return inserted, nil
}

func (r *payrollItemRepository) DeleteByPeriod(ctx context.Context, periodID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_items WHERE payroll_period_id = $1`, periodID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete payroll items: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *payrollItemRepository) ListByPeriod(ctx context.Context, periodID string) ([]payrollperiod.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.payroll_period_id, i.employee_id, i.working_days, i.basic_pay,
			   i.total_allowances, i.total_deductions, i.gross_pay, i.net_pay, i.status,
			   i.created_at, i.updated_at, e.full_name, e.employee_number
		FROM payroll_items i
		JOIN employees e ON e.id = i.employee_id
		WHERE i.payroll_period_id = $1
		ORDER BY e.employee_number
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll items: %w", err)
	}
	defer rows.Close()

	var items []payrollperiod.PayrollItem
	for rows.Next() {
		var i payrollperiod.PayrollItem
		err := rows.Scan(
			&i.ID, &i.PayrollPeriodID, &i.EmployeeID, &i.WorkingDays, &i.BasicPay,
			&i.TotalAllowances, &i.TotalDeductions, &i.GrossPay, &i.NetPay, &i.Status,
			&i.CreatedAt, &i.UpdatedAt, &i.EmployeeName, &i.EmployeeNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll item: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll items: %w", err)
	}

	return items, nil
}

func (r *payrollItemRepository) CountByPeriod(ctx context.Context, periodID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payroll_items WHERE payroll_period_id = $1`, periodID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count payroll items: %w", err)
	}
	return count, nil
}

func (r *payrollItemRepository) FinalizeByPeriod(ctx context.Context, periodID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payroll_items
		SET status = $1, updated_at = NOW()
		WHERE payroll_period_id = $2 AND status = $3
	`, payrollperiod.ItemStatusFinalized, periodID, payrollperiod.ItemStatusComputed)
	if err != nil {
		return 0, fmt.Errorf("failed to finalize payroll items: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *payrollItemRepository) GetSummary(ctx context.Context, periodID string) (payrollperiod.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(basic_pay), 0),
			   COALESCE(SUM(total_allowances), 0),
			   COALESCE(SUM(total_deductions), 0),
			   COALESCE(SUM(gross_pay), 0),
			   COALESCE(SUM(net_pay), 0)
		FROM payroll_items
		WHERE payroll_period_id = $1
	`

	s := payrollperiod.Summary{PayrollPeriodID: periodID}
	err := q.QueryRow(ctx, query, periodID).Scan(
		&s.EmployeeCount, &s.TotalBasicPay, &s.TotalAllowances,
		&s.TotalDeductions, &s.TotalGrossPay, &s.TotalNetPay,
	)
	if err != nil {
		return payrollperiod.Summary{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}
	return s, nil
}

// Ensure pgx.ErrNoRows is handled properly
var _ = pgx.ErrNoRows
