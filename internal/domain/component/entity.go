package component

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind enum
type Kind string

const (
	KindAllowance Kind = "allowance"
	KindDeduction Kind = "deduction"
)

// Component - Master allowance/deduction definition with an agency-wide
// default amount. Employee-specific overrides replace the default within
// their effective range.
type Component struct {
	ID            string
	Name          string
	Kind          Kind
	Description   *string
	DefaultAmount decimal.Decimal
	IsTaxable     bool
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Override - Employee-specific replacement amount for one component. At most
// one active override per (employee, component); creating a new one that is
// effective immediately deactivates the previous one.
type Override struct {
	ID             string
	EmployeeID     string
	ComponentID    string
	OverrideAmount decimal.Decimal
	EffectiveDate  time.Time
	EndDate        *time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	ComponentName *string
	ComponentKind *Kind
}

// AmountOn resolves the amount a component contributes for an employee on a
// given date: the active override's amount when one covers the date,
// otherwise the component default.
func (c Component) AmountOn(override *Override, on time.Time) decimal.Decimal {
	if override == nil || !override.IsActive {
		return c.DefaultAmount
	}
	if on.Before(override.EffectiveDate) {
		return c.DefaultAmount
	}
	if override.EndDate != nil && on.After(*override.EndDate) {
		return c.DefaultAmount
	}
	return override.OverrideAmount
}
