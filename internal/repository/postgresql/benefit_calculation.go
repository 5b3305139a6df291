package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/benefit"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/database"
)

type benefitCalculationRepository struct {
	db *database.DB
}

func NewBenefitCalculationRepository(db *database.DB) benefit.CalculationRepository {
	return &benefitCalculationRepository{db: db}
}

func (r *benefitCalculationRepository) Create(ctx context.Context, result benefit.CalculationResult) (benefit.CalculationResult, error) {
	q := GetQuerier(ctx, r.db)

	// Results are append-only; recalculation inserts a fresh row.
	query := `
		INSERT INTO benefit_calculations (
			employee_id, benefit_type_id, base_salary, service_months,
			calculated_amount, tax_amount, final_amount, net_amount,
			calculation_basis, is_eligible, eligibility_notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	created := result
	err := q.QueryRow(ctx, query,
		result.EmployeeID, result.BenefitTypeID, result.BaseSalary, result.ServiceMonths,
		result.CalculatedAmount, result.TaxAmount, result.FinalAmount, result.NetAmount,
		result.CalculationBasis, result.IsEligible, result.EligibilityNotes,
	).Scan(&created.ID, &created.CalculatedAt)
	if err != nil {
		return benefit.CalculationResult{}, fmt.Errorf("failed to create benefit calculation: %w", err)
	}
	return created, nil
}

const calculationColumns = `
	c.id, c.employee_id, c.benefit_type_id, c.base_salary, c.service_months,
	c.calculated_amount, c.tax_amount, c.final_amount, c.net_amount,
	c.calculation_basis, c.is_eligible, c.eligibility_notes, c.created_at,
	e.full_name, b.code, b.name
`

func scanCalculation(row pgx.Row) (benefit.CalculationResult, error) {
	var c benefit.CalculationResult
	err := row.Scan(
		&c.ID, &c.EmployeeID, &c.BenefitTypeID, &c.BaseSalary, &c.ServiceMonths,
		&c.CalculatedAmount, &c.TaxAmount, &c.FinalAmount, &c.NetAmount,
		&c.CalculationBasis, &c.IsEligible, &c.EligibilityNotes, &c.CalculatedAt,
		&c.EmployeeName, &c.BenefitCode, &c.BenefitName,
	)
	return c, err
}

func (r *benefitCalculationRepository) GetByID(ctx context.Context, id string) (benefit.CalculationResult, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + calculationColumns + `
		FROM benefit_calculations c
		JOIN employees e ON e.id = c.employee_id
		JOIN benefit_types b ON b.id = c.benefit_type_id
		WHERE c.id = $1
	`

	c, err := scanCalculation(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return benefit.CalculationResult{}, benefit.ErrCalculationNotFound
		}
		return benefit.CalculationResult{}, fmt.Errorf("failed to get benefit calculation: %w", err)
	}
	return c, nil
}

func (r *benefitCalculationRepository) ListByEmployee(ctx context.Context, employeeID string) ([]benefit.CalculationResult, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + calculationColumns + `
		FROM benefit_calculations c
		JOIN employees e ON e.id = c.employee_id
		JOIN benefit_types b ON b.id = c.benefit_type_id
		WHERE c.employee_id = $1
		ORDER BY c.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list benefit calculations: %w", err)
	}
	defer rows.Close()

	var results []benefit.CalculationResult
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan benefit calculation: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate benefit calculations: %w", err)
	}

	return results, nil
}
