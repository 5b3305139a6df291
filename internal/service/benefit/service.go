package benefit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lgu-hris/payroll-backend-go/internal/domain/benefit"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/employee"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/notification"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Service is the self-service benefit calculation path: one employee picks
// one benefit type and gets an eligibility-gated, prorated, taxed line item.
// The admin compensation service is a separate path with its own formulas.
type Service struct {
	benefitTypeRepo benefit.BenefitTypeRepository
	calculationRepo benefit.CalculationRepository
	employeeRepo    employee.EmployeeRepository
	dispatcher      notification.Dispatcher
	rates           Rates
}

func NewService(
	benefitTypeRepo benefit.BenefitTypeRepository,
	calculationRepo benefit.CalculationRepository,
	employeeRepo employee.EmployeeRepository,
	dispatcher notification.Dispatcher,
	rates Rates,
) *Service {
	return &Service{
		benefitTypeRepo: benefitTypeRepo,
		calculationRepo: calculationRepo,
		employeeRepo:    employeeRepo,
		dispatcher:      dispatcher,
		rates:           rates,
	}
}

// ========== BENEFIT TYPES ==========

func (s *Service) CreateBenefitType(ctx context.Context, req benefit.CreateBenefitTypeRequest) (benefit.BenefitTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return benefit.BenefitTypeResponse{}, err
	}

	isTaxable := false
	if req.IsTaxable != nil {
		isTaxable = *req.IsTaxable
	}
	isProrated := false
	if req.IsProrated != nil {
		isProrated = *req.IsProrated
	}
	minimumMonths := 0
	if req.MinimumServiceMonths != nil {
		minimumMonths = *req.MinimumServiceMonths
	}

	benefitType := benefit.BenefitType{
		Code:                 req.Code,
		Name:                 req.Name,
		Description:          req.Description,
		CalculationType:      benefit.CalculationType(req.CalculationType),
		FixedAmount:          req.FixedAmount,
		PercentageRate:       req.PercentageRate,
		CalculationFormula:   req.CalculationFormula,
		IsTaxable:            isTaxable,
		IsProrated:           isProrated,
		MinimumServiceMonths: minimumMonths,
		IsActive:             true,
	}

	created, err := s.benefitTypeRepo.Create(ctx, benefitType)
	if err != nil {
		return benefit.BenefitTypeResponse{}, err
	}
	return mapToBenefitTypeResponse(created), nil
}

func (s *Service) GetBenefitType(ctx context.Context, id string) (benefit.BenefitTypeResponse, error) {
	benefitType, err := s.benefitTypeRepo.GetByID(ctx, id)
	if err != nil {
		return benefit.BenefitTypeResponse{}, err
	}
	return mapToBenefitTypeResponse(benefitType), nil
}

// GetBenefitTypeByCode resolves a catalog entry by its stable code, which is
// what external systems and import files reference.
func (s *Service) GetBenefitTypeByCode(ctx context.Context, code string) (benefit.BenefitTypeResponse, error) {
	benefitType, err := s.benefitTypeRepo.GetByCode(ctx, code)
	if err != nil {
		return benefit.BenefitTypeResponse{}, err
	}
	return mapToBenefitTypeResponse(benefitType), nil
}

func (s *Service) ListBenefitTypes(ctx context.Context, activeOnly bool) ([]benefit.BenefitTypeResponse, error) {
	types, err := s.benefitTypeRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]benefit.BenefitTypeResponse, 0, len(types))
	for _, t := range types {
		result = append(result, mapToBenefitTypeResponse(t))
	}
	return result, nil
}

func (s *Service) DeactivateBenefitType(ctx context.Context, id string) error {
	return s.benefitTypeRepo.Deactivate(ctx, id)
}

// ========== CALCULATION ==========

// Calculate evaluates one benefit for one employee at a cutoff date. The
// result is assembled fresh on every call; persisting appends a new row, it
// never rewrites an old one.
func (s *Service) Calculate(ctx context.Context, req benefit.CalculateRequest) (benefit.CalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return benefit.CalculationResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return benefit.CalculationResponse{}, err
	}
	benefitType, err := s.benefitTypeRepo.GetByID(ctx, req.BenefitTypeID)
	if err != nil {
		return benefit.CalculationResponse{}, err
	}

	cutoff := time.Now()
	if req.CutoffDate != nil {
		cutoff, _ = time.Parse("2006-01-02", *req.CutoffDate)
	}

	result := s.compute(emp, benefitType, cutoff, req.LeaveDays, req.PerformanceRating)

	if req.Persist {
		created, err := s.calculationRepo.Create(ctx, result)
		if err != nil {
			return benefit.CalculationResponse{}, err
		}
		result = created

		s.dispatcher.Notify(notification.CreateRequest{
			Type:    notification.TypeBenefitCalculated,
			Title:   "Benefit calculated",
			Message: fmt.Sprintf("%s computed for %s", benefitType.Code, emp.FullName),
		})
	}

	resp := mapToCalculationResponse(result)
	resp.EmployeeName = emp.FullName
	resp.BenefitCode = benefitType.Code
	return resp, nil
}

// BulkCalculate evaluates one benefit type for many employees, or for every
// active employee when no IDs are given. Items fail independently: a missing
// employee or a bad formula never aborts siblings.
func (s *Service) BulkCalculate(ctx context.Context, req benefit.BulkCalculateRequest) (benefit.BulkCalculateResponse, error) {
	if err := req.Validate(); err != nil {
		return benefit.BulkCalculateResponse{}, err
	}

	// Fail fast only on the shared input.
	if _, err := s.benefitTypeRepo.GetByID(ctx, req.BenefitTypeID); err != nil {
		return benefit.BulkCalculateResponse{}, err
	}

	employeeIDs := req.EmployeeIDs
	if len(employeeIDs) == 0 {
		active, err := s.employeeRepo.GetActive(ctx)
		if err != nil {
			return benefit.BulkCalculateResponse{}, err
		}
		employeeIDs = make([]string, 0, len(active))
		for _, emp := range active {
			employeeIDs = append(employeeIDs, emp.ID)
		}
	}

	var resp benefit.BulkCalculateResponse
	for _, employeeID := range employeeIDs {
		itemReq := benefit.CalculateRequest{
			EmployeeID:    employeeID,
			BenefitTypeID: req.BenefitTypeID,
			CutoffDate:    req.CutoffDate,
			Persist:       req.Persist,
		}
		item, err := s.Calculate(ctx, itemReq)
		if err != nil {
			resp.Failures = append(resp.Failures, benefit.BulkItemFailure{
				EmployeeID: employeeID,
				Error:      err.Error(),
			})
			continue
		}
		resp.Results = append(resp.Results, item)
	}
	return resp, nil
}

func (s *Service) GetCalculation(ctx context.Context, id string) (benefit.CalculationResponse, error) {
	result, err := s.calculationRepo.GetByID(ctx, id)
	if err != nil {
		return benefit.CalculationResponse{}, err
	}
	return mapToCalculationResponse(result), nil
}

func (s *Service) ListCalculationsByEmployee(ctx context.Context, employeeID string) ([]benefit.CalculationResponse, error) {
	results, err := s.calculationRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]benefit.CalculationResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, mapToCalculationResponse(r))
	}
	return responses, nil
}

// compute runs the full eligibility -> amount -> adjustment pipeline. Pure
// apart from the clock already resolved into cutoff.
func (s *Service) compute(
	emp employee.Employee,
	benefitType benefit.BenefitType,
	cutoff time.Time,
	leaveDays, performanceRating *decimal.Decimal,
) benefit.CalculationResult {
	serviceMonths := dateutil.MonthsOfService(emp.AppointmentDate, cutoff)

	result := benefit.CalculationResult{
		EmployeeID:    emp.ID,
		BenefitTypeID: benefitType.ID,
		BaseSalary:    round2(emp.MonthlySalary),
		ServiceMonths: serviceMonths,
	}

	eligibility := EvaluateEligibility(emp, benefitType, serviceMonths)
	result.IsEligible = eligibility.IsEligible
	result.EligibilityNotes = eligibility.Notes
	if !eligibility.IsEligible {
		result.CalculatedAmount = decimal.Zero.Round(2)
		result.TaxAmount = decimal.Zero.Round(2)
		result.FinalAmount = decimal.Zero.Round(2)
		result.NetAmount = decimal.Zero.Round(2)
		result.CalculationBasis = "Not eligible: " + eligibility.Notes
		return result
	}

	calcCtx := CalculationContext{
		BaseSalary:        emp.MonthlySalary,
		ServiceMonths:     serviceMonths,
		DailyRate:         emp.DailyRate,
		LeaveDays:         leaveDays,
		PerformanceRating: performanceRating,
	}
	amount, basis := CalculateAmount(benefitType, calcCtx, s.rates)
	adj := ApplyAdjustments(benefitType, serviceMonths, amount, s.rates)

	result.CalculatedAmount = round2(amount)
	result.FinalAmount = round2(adj.FinalAmount)
	result.TaxAmount = round2(adj.TaxAmount)
	result.NetAmount = round2(adj.FinalAmount.Sub(adj.TaxAmount))
	result.CalculationBasis = basis
	if len(adj.Notes) > 0 {
		result.CalculationBasis += "; " + strings.Join(adj.Notes, "; ")
	}
	return result
}

// round2 is the single rounding policy: two decimals, half up, applied at
// the persistence/display boundary.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ========== HELPERS ==========

func mapToBenefitTypeResponse(b benefit.BenefitType) benefit.BenefitTypeResponse {
	return benefit.BenefitTypeResponse{
		ID:                   b.ID,
		Code:                 b.Code,
		Name:                 b.Name,
		Description:          b.Description,
		CalculationType:      string(b.CalculationType),
		FixedAmount:          b.FixedAmount,
		PercentageRate:       b.PercentageRate,
		CalculationFormula:   b.CalculationFormula,
		IsTaxable:            b.IsTaxable,
		IsProrated:           b.IsProrated,
		MinimumServiceMonths: b.MinimumServiceMonths,
		IsActive:             b.IsActive,
	}
}

func mapToCalculationResponse(r benefit.CalculationResult) benefit.CalculationResponse {
	resp := benefit.CalculationResponse{
		ID:               r.ID,
		EmployeeID:       r.EmployeeID,
		BenefitTypeID:    r.BenefitTypeID,
		BaseSalary:       r.BaseSalary,
		ServiceMonths:    r.ServiceMonths,
		CalculatedAmount: r.CalculatedAmount,
		TaxAmount:        r.TaxAmount,
		FinalAmount:      r.FinalAmount,
		NetAmount:        r.NetAmount,
		CalculationBasis: r.CalculationBasis,
		IsEligible:       r.IsEligible,
		EligibilityNotes: r.EligibilityNotes,
	}
	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	if r.BenefitCode != nil {
		resp.BenefitCode = *r.BenefitCode
	}
	return resp
}
