package override

import (
	"context"
	"log/slog"
	"time"

	"github.com/lgu-hris/payroll-backend-go/internal/domain/audit"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/component"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/employee"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/database"
	"github.com/lgu-hris/payroll-backend-go/internal/repository/postgresql"
)

// Service manages the payroll component catalog and per-employee overrides.
// Creating an override that takes effect immediately retires the previous
// active one for the same employee and component in the same transaction, so
// at most one override is ever active per pair.
type Service struct {
	db            *database.DB
	componentRepo component.Repository
	employeeRepo  employee.EmployeeRepository
	auditRepo     audit.Repository
	logger        *slog.Logger
}

func NewService(
	db *database.DB,
	componentRepo component.Repository,
	employeeRepo employee.EmployeeRepository,
	auditRepo audit.Repository,
	logger *slog.Logger,
) *Service {
	return &Service{
		db:            db,
		componentRepo: componentRepo,
		employeeRepo:  employeeRepo,
		auditRepo:     auditRepo,
		logger:        logger,
	}
}

// ========== COMPONENTS ==========

func (s *Service) CreateComponent(ctx context.Context, req component.CreateComponentRequest) (component.ComponentResponse, error) {
	if err := req.Validate(); err != nil {
		return component.ComponentResponse{}, err
	}

	isTaxable := false
	if req.IsTaxable != nil {
		isTaxable = *req.IsTaxable
	}

	created, err := s.componentRepo.CreateComponent(ctx, component.Component{
		Name:          req.Name,
		Kind:          component.Kind(req.Kind),
		Description:   req.Description,
		DefaultAmount: req.DefaultAmount,
		IsTaxable:     isTaxable,
		IsActive:      true,
	})
	if err != nil {
		return component.ComponentResponse{}, err
	}

	s.audit(ctx, nil, audit.ActionCreate, "payroll_components", created.ID, nil, map[string]any{
		"name":           created.Name,
		"kind":           string(created.Kind),
		"default_amount": created.DefaultAmount.StringFixed(2),
	})
	return mapToComponentResponse(created), nil
}

func (s *Service) ListComponents(ctx context.Context, activeOnly bool) ([]component.ComponentResponse, error) {
	components, err := s.componentRepo.ListComponents(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]component.ComponentResponse, 0, len(components))
	for _, c := range components {
		responses = append(responses, mapToComponentResponse(c))
	}
	return responses, nil
}

func (s *Service) DeactivateComponent(ctx context.Context, id string) error {
	if err := s.componentRepo.DeactivateComponent(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, nil, audit.ActionDeactivate, "payroll_components", id, nil, nil)
	return nil
}

// ========== OVERRIDES ==========

// CreateOverride records an employee-specific amount for a component. When
// the override is effective as of today, the previously active override for
// the same pair is deactivated inside the same transaction.
func (s *Service) CreateOverride(ctx context.Context, req component.CreateOverrideRequest, createdBy *string) (component.OverrideResponse, error) {
	if err := req.Validate(); err != nil {
		return component.OverrideResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return component.OverrideResponse{}, err
	}
	if _, err := s.componentRepo.GetComponentByID(ctx, req.ComponentID); err != nil {
		return component.OverrideResponse{}, err
	}

	effectiveDate, _ := time.Parse("2006-01-02", req.EffectiveDate)
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, _ := time.Parse("2006-01-02", *req.EndDate)
		endDate = &parsed
	}

	override := component.Override{
		EmployeeID:     req.EmployeeID,
		ComponentID:    req.ComponentID,
		OverrideAmount: req.OverrideAmount,
		EffectiveDate:  effectiveDate,
		EndDate:        endDate,
		IsActive:       true,
	}

	var created component.Override
	var retired int64
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if !effectiveDate.After(time.Now()) {
			n, err := s.componentRepo.DeactivateActiveOverride(ctx, req.EmployeeID, req.ComponentID)
			if err != nil {
				return err
			}
			retired = n
		}

		var err error
		created, err = s.componentRepo.CreateOverride(ctx, override)
		return err
	})
	if err != nil {
		return component.OverrideResponse{}, err
	}

	if retired > 0 {
		s.logger.Info("previous override retired",
			"employee_id", req.EmployeeID,
			"component_id", req.ComponentID)
	}

	s.audit(ctx, createdBy, audit.ActionCreate, "employee_overrides", created.ID, nil, map[string]any{
		"employee_id":     created.EmployeeID,
		"component_id":    created.ComponentID,
		"override_amount": created.OverrideAmount.StringFixed(2),
		"effective_date":  req.EffectiveDate,
	})
	return mapToOverrideResponse(created), nil
}

// BulkCreateOverrides applies many overrides with per-item outcomes; one
// invalid entry does not abort its siblings.
func (s *Service) BulkCreateOverrides(ctx context.Context, req component.BulkCreateOverridesRequest, createdBy *string) component.BulkOverrideResponse {
	var resp component.BulkOverrideResponse
	for i, item := range req.Overrides {
		created, err := s.CreateOverride(ctx, item, createdBy)
		if err != nil {
			resp.Failures = append(resp.Failures, component.BulkItemFailure{
				Index:      i,
				EmployeeID: item.EmployeeID,
				Error:      err.Error(),
			})
			continue
		}
		resp.Created = append(resp.Created, created)
	}
	return resp
}

func (s *Service) DeactivateOverride(ctx context.Context, id string, deactivatedBy *string) error {
	if _, err := s.componentRepo.GetOverrideByID(ctx, id); err != nil {
		return err
	}
	if err := s.componentRepo.DeactivateOverride(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, deactivatedBy, audit.ActionDeactivate, "employee_overrides", id, nil, nil)
	return nil
}

func (s *Service) ListOverridesByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]component.OverrideResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	overrides, err := s.componentRepo.ListOverridesByEmployee(ctx, employeeID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]component.OverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		responses = append(responses, mapToOverrideResponse(o))
	}
	return responses, nil
}

// audit writes a trail entry outside the caller's transaction; failures are
// logged and swallowed.
func (s *Service) audit(ctx context.Context, userID *string, action, tableName, recordID string, oldValues, newValues map[string]any) {
	entry := audit.Entry{
		UserID:    userID,
		Action:    action,
		TableName: tableName,
		RecordID:  recordID,
		OldValues: oldValues,
		NewValues: newValues,
	}
	if err := s.auditRepo.Log(ctx, entry); err != nil {
		s.logger.Warn("audit log write failed",
			"action", action,
			"table", tableName,
			"record_id", recordID,
			"error", err)
	}
}

// ========== HELPERS ==========

func mapToComponentResponse(c component.Component) component.ComponentResponse {
	return component.ComponentResponse{
		ID:            c.ID,
		Name:          c.Name,
		Kind:          string(c.Kind),
		Description:   c.Description,
		DefaultAmount: c.DefaultAmount,
		IsTaxable:     c.IsTaxable,
		IsActive:      c.IsActive,
	}
}

func mapToOverrideResponse(o component.Override) component.OverrideResponse {
	resp := component.OverrideResponse{
		ID:             o.ID,
		EmployeeID:     o.EmployeeID,
		ComponentID:    o.ComponentID,
		OverrideAmount: o.OverrideAmount,
		EffectiveDate:  o.EffectiveDate.Format("2006-01-02"),
		IsActive:       o.IsActive,
	}
	if o.EndDate != nil {
		formatted := o.EndDate.Format("2006-01-02")
		resp.EndDate = &formatted
	}
	if o.ComponentName != nil {
		resp.ComponentName = *o.ComponentName
	}
	if o.ComponentKind != nil {
		resp.ComponentKind = string(*o.ComponentKind)
	}
	return resp
}
