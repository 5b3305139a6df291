package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/benefit"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/database"
)

type benefitTypeRepository struct {
	db *database.DB
}

func NewBenefitTypeRepository(db *database.DB) benefit.BenefitTypeRepository {
	return &benefitTypeRepository{db: db}
}

const benefitTypeColumns = `
	id, code, name, description, calculation_type, fixed_amount,
	percentage_rate, calculation_formula, is_taxable, is_prorated,
	minimum_service_months, is_active, created_at, updated_at
`

func scanBenefitType(row pgx.Row) (benefit.BenefitType, error) {
	var b benefit.BenefitType
	err := row.Scan(
		&b.ID, &b.Code, &b.Name, &b.Description, &b.CalculationType, &b.FixedAmount,
		&b.PercentageRate, &b.CalculationFormula, &b.IsTaxable, &b.IsProrated,
		&b.MinimumServiceMonths, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *benefitTypeRepository) Create(ctx context.Context, benefitType benefit.BenefitType) (benefit.BenefitType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO benefit_types (
			code, name, description, calculation_type, fixed_amount,
			percentage_rate, calculation_formula, is_taxable, is_prorated,
			minimum_service_months, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + benefitTypeColumns

	b, err := scanBenefitType(q.QueryRow(ctx, query,
		benefitType.Code, benefitType.Name, benefitType.Description,
		benefitType.CalculationType, benefitType.FixedAmount,
		benefitType.PercentageRate, benefitType.CalculationFormula,
		benefitType.IsTaxable, benefitType.IsProrated,
		benefitType.MinimumServiceMonths, benefitType.IsActive,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_benefit_type_code") {
			return benefit.BenefitType{}, benefit.ErrBenefitCodeExists
		}
		return benefit.BenefitType{}, fmt.Errorf("failed to create benefit type: %w", err)
	}
	return b, nil
}

func (r *benefitTypeRepository) GetByID(ctx context.Context, id string) (benefit.BenefitType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + benefitTypeColumns + ` FROM benefit_types WHERE id = $1`

	b, err := scanBenefitType(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return benefit.BenefitType{}, benefit.ErrBenefitTypeNotFound
		}
		return benefit.BenefitType{}, fmt.Errorf("failed to get benefit type: %w", err)
	}
	return b, nil
}

func (r *benefitTypeRepository) GetByCode(ctx context.Context, code string) (benefit.BenefitType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + benefitTypeColumns + ` FROM benefit_types WHERE code = $1`

	b, err := scanBenefitType(q.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return benefit.BenefitType{}, benefit.ErrBenefitTypeNotFound
		}
		return benefit.BenefitType{}, fmt.Errorf("failed to get benefit type by code: %w", err)
	}
	return b, nil
}

func (r *benefitTypeRepository) List(ctx context.Context, activeOnly bool) ([]benefit.BenefitType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + benefitTypeColumns + ` FROM benefit_types`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list benefit types: %w", err)
	}
	defer rows.Close()

	var types []benefit.BenefitType
	for rows.Next() {
		b, err := scanBenefitType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan benefit type: %w", err)
		}
		types = append(types, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate benefit types: %w", err)
	}

	return types, nil
}

func (r *benefitTypeRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE benefit_types SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate benefit type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return benefit.ErrBenefitTypeNotFound
	}
	return nil
}
