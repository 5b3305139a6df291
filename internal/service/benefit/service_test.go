package benefit

import (
	"context"
	"testing"

	domainbenefit "github.com/lgu-hris/payroll-backend-go/internal/domain/benefit"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBenefitTypeRepo struct {
	byID   map[string]domainbenefit.BenefitType
	byCode map[string]domainbenefit.BenefitType
}

func (r *fakeBenefitTypeRepo) Create(ctx context.Context, benefitType domainbenefit.BenefitType) (domainbenefit.BenefitType, error) {
	return benefitType, nil
}

func (r *fakeBenefitTypeRepo) GetByID(ctx context.Context, id string) (domainbenefit.BenefitType, error) {
	if bt, ok := r.byID[id]; ok {
		return bt, nil
	}
	return domainbenefit.BenefitType{}, domainbenefit.ErrBenefitTypeNotFound
}

func (r *fakeBenefitTypeRepo) GetByCode(ctx context.Context, code string) (domainbenefit.BenefitType, error) {
	if bt, ok := r.byCode[code]; ok {
		return bt, nil
	}
	return domainbenefit.BenefitType{}, domainbenefit.ErrBenefitTypeNotFound
}

func (r *fakeBenefitTypeRepo) List(ctx context.Context, activeOnly bool) ([]domainbenefit.BenefitType, error) {
	return nil, nil
}

func (r *fakeBenefitTypeRepo) Deactivate(ctx context.Context, id string) error { return nil }

type fakeCalculationRepo struct{}

func (r *fakeCalculationRepo) Create(ctx context.Context, result domainbenefit.CalculationResult) (domainbenefit.CalculationResult, error) {
	result.ID = "calc-1"
	return result, nil
}

func (r *fakeCalculationRepo) GetByID(ctx context.Context, id string) (domainbenefit.CalculationResult, error) {
	return domainbenefit.CalculationResult{}, domainbenefit.ErrCalculationNotFound
}

func (r *fakeCalculationRepo) ListByEmployee(ctx context.Context, employeeID string) ([]domainbenefit.CalculationResult, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	active []employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range r.active {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByEmployeeNumber(ctx context.Context, number string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (r *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return r.active, nil
}

func midYearBonus() domainbenefit.BenefitType {
	return domainbenefit.BenefitType{
		ID:              "bt-1",
		Code:            domainbenefit.CodeMidYear,
		Name:            "Mid-Year Bonus",
		CalculationType: domainbenefit.CalculationTypeFixed,
		FixedAmount:     decPtr("5000"),
		IsActive:        true,
	}
}

func TestBulkCalculateDefaultsToActiveEmployees(t *testing.T) {
	first := activeEmployee()
	second := activeEmployee()
	second.ID = "emp-2"
	second.EmployeeNumber = "2015-0033"
	second.FullName = "Maria Santos"

	bt := midYearBonus()
	svc := NewService(
		&fakeBenefitTypeRepo{byID: map[string]domainbenefit.BenefitType{bt.ID: bt}},
		&fakeCalculationRepo{},
		&fakeEmployeeRepo{active: []employee.Employee{first, second}},
		nil,
		testRates(),
	)

	resp, err := svc.BulkCalculate(context.Background(), domainbenefit.BulkCalculateRequest{
		BenefitTypeID: bt.ID,
		CutoffDate:    strPtr("2024-06-15"),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Failures)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, first.ID, resp.Results[0].EmployeeID)
	assert.Equal(t, second.ID, resp.Results[1].EmployeeID)
	for _, item := range resp.Results {
		assert.True(t, item.IsEligible)
		assert.True(t, item.FinalAmount.Equal(decimal.NewFromInt(5000)), "got %s", item.FinalAmount)
	}
}

func TestGetBenefitTypeByCode(t *testing.T) {
	bt := midYearBonus()
	svc := NewService(
		&fakeBenefitTypeRepo{byCode: map[string]domainbenefit.BenefitType{bt.Code: bt}},
		&fakeCalculationRepo{},
		&fakeEmployeeRepo{},
		nil,
		testRates(),
	)

	resp, err := svc.GetBenefitTypeByCode(context.Background(), bt.Code)
	require.NoError(t, err)
	assert.Equal(t, bt.ID, resp.ID)
	assert.Equal(t, bt.Code, resp.Code)

	_, err = svc.GetBenefitTypeByCode(context.Background(), "NO_SUCH_CODE")
	assert.ErrorIs(t, err, domainbenefit.ErrBenefitTypeNotFound)
}
