package compensation

import (
	"context"
	"fmt"
	"time"

	"github.com/lgu-hris/payroll-backend-go/internal/domain/employee"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Service is the admin-side compensation calculator. It shares nothing with
// the self-service benefit path except the employee record: different
// formulas, a year-based service convention, and no persistence of results.
type Service struct {
	employeeRepo employee.EmployeeRepository
	rates        Rates
}

func NewService(employeeRepo employee.EmployeeRepository, rates Rates) *Service {
	return &Service{employeeRepo: employeeRepo, rates: rates}
}

func (s *Service) Compute(ctx context.Context, req ComputeRequest) (ComputeResponse, error) {
	if err := req.Validate(); err != nil {
		return ComputeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return ComputeResponse{}, err
	}

	asOf := time.Now()
	if req.AsOfDate != nil {
		asOf, _ = time.Parse("2006-01-02", *req.AsOfDate)
	}
	years := dateutil.ApproxYearsOfService(emp.AppointmentDate, asOf)

	amount, basis := s.computeKind(emp, req, years)

	return ComputeResponse{
		EmployeeID:     emp.ID,
		EmployeeName:   emp.FullName,
		Kind:           req.Kind,
		YearsOfService: years,
		Amount:         amount.Round(2),
		Basis:          basis,
	}, nil
}

func (s *Service) computeKind(emp employee.Employee, req ComputeRequest, years int) (decimal.Decimal, string) {
	switch req.Kind {
	case KindTerminalLeave:
		credits := decimal.Zero
		if req.LeaveCredits != nil {
			credits = *req.LeaveCredits
		}
		highest := emp.BestMonthlySalary()
		amount := TerminalLeaveBenefit(highest, credits, s.rates)
		return amount, fmt.Sprintf("Highest salary %s x %s leave credits x factor %s",
			highest.StringFixed(2), credits, s.rates.TLBFactor)

	case KindMonetization:
		days := decimal.Zero
		if req.LeaveCredits != nil {
			days = *req.LeaveCredits
		}
		amount := MonetizeLeaveCredits(emp.MonthlySalary, days, s.rates)
		return amount, fmt.Sprintf("Monthly salary %s / %s working days x %s days",
			emp.MonthlySalary.StringFixed(2), s.rates.WorkingDaysPerMonth, days)

	case KindThirteenthMonth:
		return ThirteenthMonthPay(emp.MonthlySalary), "One full month of the current salary"

	case KindFourteenthMonth:
		return FourteenthMonthPay(emp.MonthlySalary), "One full month of the current salary"

	case KindPerformanceBonus:
		rating := decimal.NewFromInt(1)
		if req.PerformanceRating != nil {
			rating = *req.PerformanceRating
		}
		amount := PerformanceBonus(emp.MonthlySalary, rating)
		return amount, fmt.Sprintf("Monthly salary %s x rating %s", emp.MonthlySalary.StringFixed(2), rating)

	case KindGSISShare:
		amount := GSISPersonalShare(emp.MonthlySalary, s.rates)
		return amount, fmt.Sprintf("Monthly salary %s x GSIS rate %s", emp.MonthlySalary.StringFixed(2), s.rates.GSISRate)

	case KindLoyaltyAward:
		amount := LoyaltyAward(years, s.rates)
		if amount.IsZero() {
			return amount, fmt.Sprintf("%d years of service is below the ten year floor", years)
		}
		return amount, fmt.Sprintf("Base %s plus %s per five years beyond ten (%d years of service)",
			s.rates.LoyaltyBase.StringFixed(2), s.rates.LoyaltyIncrement.StringFixed(2), years)

	default:
		// Validate already rejected unknown kinds.
		return decimal.Zero, ""
	}
}
