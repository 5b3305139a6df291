package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/component"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/database"
)

type componentRepository struct {
	db *database.DB
}

func NewComponentRepository(db *database.DB) component.Repository {
	return &componentRepository{db: db}
}

// ========== COMPONENTS ==========

const componentColumns = `
	id, name, kind, description, default_amount, is_taxable, is_active, created_at, updated_at
`

func scanComponent(row pgx.Row) (component.Component, error) {
	var c component.Component
	err := row.Scan(
		&c.ID, &c.Name, &c.Kind, &c.Description, &c.DefaultAmount,
		&c.IsTaxable, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *componentRepository) CreateComponent(ctx context.Context, c component.Component) (component.Component, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_components (name, kind, description, default_amount, is_taxable, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + componentColumns

	created, err := scanComponent(q.QueryRow(ctx, query,
		c.Name, c.Kind, c.Description, c.DefaultAmount, c.IsTaxable, c.IsActive,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_component_name") {
			return component.Component{}, component.ErrComponentNameExists
		}
		return component.Component{}, fmt.Errorf("failed to create payroll component: %w", err)
	}
	return created, nil
}

func (r *componentRepository) GetComponentByID(ctx context.Context, id string) (component.Component, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + componentColumns + ` FROM payroll_components WHERE id = $1`

	c, err := scanComponent(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return component.Component{}, component.ErrComponentNotFound
		}
		return component.Component{}, fmt.Errorf("failed to get payroll component: %w", err)
	}
	return c, nil
}

func (r *componentRepository) ListComponents(ctx context.Context, activeOnly bool) ([]component.Component, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + componentColumns + ` FROM payroll_components`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll components: %w", err)
	}
	defer rows.Close()

	var components []component.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll component: %w", err)
		}
		components = append(components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payroll components: %w", err)
	}

	return components, nil
}

func (r *componentRepository) DeactivateComponent(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE payroll_components SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate payroll component: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return component.ErrComponentNotFound
	}
	return nil
}

// ========== OVERRIDES ==========

const overrideColumns = `
	o.id, o.employee_id, o.component_id, o.override_amount, o.effective_date,
	o.end_date, o.is_active, o.created_at, o.updated_at, c.name, c.kind
`

func scanOverride(row pgx.Row) (component.Override, error) {
	var o component.Override
	err := row.Scan(
		&o.ID, &o.EmployeeID, &o.ComponentID, &o.OverrideAmount, &o.EffectiveDate,
		&o.EndDate, &o.IsActive, &o.CreatedAt, &o.UpdatedAt, &o.ComponentName, &o.ComponentKind,
	)
	return o, err
}

func (r *componentRepository) CreateOverride(ctx context.Context, o component.Override) (component.Override, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO employee_overrides (employee_id, component_id, override_amount, effective_date, end_date, is_active)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)
		SELECT ` + overrideColumns + `
		FROM inserted o
		JOIN payroll_components c ON c.id = o.component_id
	`

	created, err := scanOverride(q.QueryRow(ctx, query,
		o.EmployeeID, o.ComponentID, o.OverrideAmount, o.EffectiveDate, o.EndDate, o.IsActive,
	))
	if err != nil {
		return component.Override{}, fmt.Errorf("failed to create employee override: %w", err)
	}
	return created, nil
}

func (r *componentRepository) GetOverrideByID(ctx context.Context, id string) (component.Override, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overrideColumns + `
		FROM employee_overrides o
		JOIN payroll_components c ON c.id = o.component_id
		WHERE o.id = $1
	`

	o, err := scanOverride(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return component.Override{}, component.ErrOverrideNotFound
		}
		return component.Override{}, fmt.Errorf("failed to get employee override: %w", err)
	}
	return o, nil
}

func (r *componentRepository) DeactivateActiveOverride(ctx context.Context, employeeID, componentID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employee_overrides
		SET is_active = FALSE, updated_at = NOW()
		WHERE employee_id = $1 AND component_id = $2 AND is_active = TRUE
	`, employeeID, componentID)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate active override: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *componentRepository) DeactivateOverride(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employee_overrides
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate override: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return component.ErrOverrideNotFound
	}
	return nil
}

func (r *componentRepository) ListOverridesByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]component.Override, error) {
	query := `
		SELECT ` + overrideColumns + `
		FROM employee_overrides o
		JOIN payroll_components c ON c.id = o.component_id
		WHERE o.employee_id = $1
	`
	if activeOnly {
		query += ` AND o.is_active = TRUE`
	}
	query += ` ORDER BY o.created_at DESC`

	return r.queryOverrides(ctx, query, employeeID)
}

func (r *componentRepository) ListActiveOverrides(ctx context.Context) ([]component.Override, error) {
	query := `
		SELECT ` + overrideColumns + `
		FROM employee_overrides o
		JOIN payroll_components c ON c.id = o.component_id
		WHERE o.is_active = TRUE
	`
	return r.queryOverrides(ctx, query)
}

func (r *componentRepository) queryOverrides(ctx context.Context, query string, args ...interface{}) ([]component.Override, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee overrides: %w", err)
	}
	defer rows.Close()

	var overrides []component.Override
	for rows.Next() {
		o, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee override: %w", err)
		}
		overrides = append(overrides, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee overrides: %w", err)
	}

	return overrides, nil
}
