package payrollperiod

import (
	"context"
	"testing"
	"time"

	"github.com/lgu-hris/payroll-backend-go/internal/domain/component"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/dtr"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/employee"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/payrollperiod"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testService() *Service {
	return &Service{workingDaysPerMonth: decimal.NewFromInt(22)}
}

func junePeriod() payrollperiod.PayrollPeriod {
	return payrollperiod.PayrollPeriod{
		ID:        "period-1",
		Year:      2024,
		Month:     6,
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Status:    payrollperiod.StatusDraft,
	}
}

// stubPeriodRepo serves a single period; the lifecycle guards fail before any
// other collaborator is touched.
type stubPeriodRepo struct {
	period payrollperiod.PayrollPeriod
}

func (r *stubPeriodRepo) Create(ctx context.Context, p payrollperiod.PayrollPeriod) (payrollperiod.PayrollPeriod, error) {
	return p, nil
}

func (r *stubPeriodRepo) GetByID(ctx context.Context, id string) (payrollperiod.PayrollPeriod, error) {
	return r.period, nil
}

func (r *stubPeriodRepo) List(ctx context.Context, filter payrollperiod.PeriodFilter) ([]payrollperiod.PayrollPeriod, int64, error) {
	return nil, 0, nil
}

func (r *stubPeriodRepo) UpdateStatus(ctx context.Context, id string, from, to payrollperiod.Status) error {
	return nil
}

func (r *stubPeriodRepo) SoftDelete(ctx context.Context, id string) error { return nil }

func TestLifecycleGuardsReportCurrentStatus(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		status   payrollperiod.Status
		call     func(s *Service) error
		sentinel error
	}{
		{
			name:   "process a paid period",
			status: payrollperiod.StatusPaid,
			call: func(s *Service) error {
				_, err := s.ProcessPayroll(ctx, "period-1")
				return err
			},
			sentinel: payrollperiod.ErrPeriodNotEditable,
		},
		{
			name:     "finalize a draft period",
			status:   payrollperiod.StatusDraft,
			call:     func(s *Service) error { return s.Finalize(ctx, "period-1") },
			sentinel: payrollperiod.ErrPeriodNotProcessing,
		},
		{
			name:     "cancel a completed period",
			status:   payrollperiod.StatusCompleted,
			call:     func(s *Service) error { return s.Cancel(ctx, "period-1") },
			sentinel: payrollperiod.ErrCannotCancelPeriod,
		},
		{
			name:     "mark a draft period paid",
			status:   payrollperiod.StatusDraft,
			call:     func(s *Service) error { return s.MarkPaid(ctx, "period-1") },
			sentinel: payrollperiod.ErrPeriodNotCompleted,
		},
		{
			name:     "delete a paid period",
			status:   payrollperiod.StatusPaid,
			call:     func(s *Service) error { return s.DeletePeriod(ctx, "period-1") },
			sentinel: payrollperiod.ErrCannotDeletePeriod,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			period := junePeriod()
			period.Status = tc.status
			s := testService()
			s.periodRepo = &stubPeriodRepo{period: period}

			err := tc.call(s)
			assert.ErrorIs(t, err, tc.sentinel)
			assert.Contains(t, err.Error(), string(tc.status), "error should name the current status")
		})
	}
}

func TestBuildItem_BasicPayFromDailyRate(t *testing.T) {
	s := testService()
	record := dtr.Record{EmployeeID: "emp-1", WorkingDays: decimal.NewFromInt(11)}
	rate := decimal.NewFromInt(1000)
	emp := employee.Employee{
		ID:            "emp-1",
		MonthlySalary: decimal.NewFromInt(30000),
		DailyRate:     &rate,
	}

	item := s.buildItem(junePeriod(), record, emp, nil, nil)

	assert.True(t, item.BasicPay.Equal(decimal.NewFromInt(11000)), "got %s", item.BasicPay)
	assert.True(t, item.GrossPay.Equal(item.BasicPay))
	assert.True(t, item.NetPay.Equal(item.BasicPay))
	assert.Equal(t, payrollperiod.ItemStatusComputed, item.Status)
}

func TestBuildItem_DerivesDailyRateFromSalary(t *testing.T) {
	s := testService()
	record := dtr.Record{EmployeeID: "emp-1", WorkingDays: decimal.NewFromInt(10)}
	emp := employee.Employee{ID: "emp-1", MonthlySalary: decimal.NewFromInt(22000)}

	item := s.buildItem(junePeriod(), record, emp, nil, nil)

	// 22000 / 22 = 1000 per day, times 10 days.
	assert.True(t, item.BasicPay.Equal(decimal.NewFromInt(10000)), "got %s", item.BasicPay)
}

func TestBuildItem_ComponentTotals(t *testing.T) {
	s := testService()
	record := dtr.Record{EmployeeID: "emp-1", WorkingDays: decimal.NewFromInt(10)}
	emp := employee.Employee{ID: "emp-1", MonthlySalary: decimal.NewFromInt(22000)}

	components := []component.Component{
		{ID: "c-pera", Kind: component.KindAllowance, DefaultAmount: decimal.NewFromInt(2000)},
		{ID: "c-rata", Kind: component.KindAllowance, DefaultAmount: decimal.NewFromInt(500)},
		{ID: "c-tax", Kind: component.KindDeduction, DefaultAmount: decimal.NewFromInt(1200)},
	}

	item := s.buildItem(junePeriod(), record, emp, components, nil)

	assert.True(t, item.TotalAllowances.Equal(decimal.NewFromInt(2500)), "got %s", item.TotalAllowances)
	assert.True(t, item.TotalDeductions.Equal(decimal.NewFromInt(1200)), "got %s", item.TotalDeductions)
	assert.True(t, item.GrossPay.Equal(decimal.NewFromInt(12500)), "got %s", item.GrossPay)
	assert.True(t, item.NetPay.Equal(decimal.NewFromInt(11300)), "got %s", item.NetPay)
}

func TestBuildItem_OverrideResolvedAtPeriodEnd(t *testing.T) {
	s := testService()
	record := dtr.Record{EmployeeID: "emp-1", WorkingDays: decimal.NewFromInt(10)}
	emp := employee.Employee{ID: "emp-1", MonthlySalary: decimal.NewFromInt(22000)}

	components := []component.Component{
		{ID: "c-pera", Kind: component.KindAllowance, DefaultAmount: decimal.NewFromInt(2000)},
	}

	t.Run("override covering the end date applies", func(t *testing.T) {
		overrides := map[string]*component.Override{
			"c-pera": {
				EmployeeID:     "emp-1",
				ComponentID:    "c-pera",
				OverrideAmount: decimal.NewFromInt(3000),
				EffectiveDate:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
				IsActive:       true,
			},
		}

		item := s.buildItem(junePeriod(), record, emp, components, overrides)
		assert.True(t, item.TotalAllowances.Equal(decimal.NewFromInt(3000)), "got %s", item.TotalAllowances)
	})

	t.Run("override effective after the end date does not", func(t *testing.T) {
		overrides := map[string]*component.Override{
			"c-pera": {
				EmployeeID:     "emp-1",
				ComponentID:    "c-pera",
				OverrideAmount: decimal.NewFromInt(3000),
				EffectiveDate:  time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC),
				IsActive:       true,
			},
		}

		item := s.buildItem(junePeriod(), record, emp, components, overrides)
		assert.True(t, item.TotalAllowances.Equal(decimal.NewFromInt(2000)), "got %s", item.TotalAllowances)
	})

	t.Run("expired override falls back to the default", func(t *testing.T) {
		endDate := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
		overrides := map[string]*component.Override{
			"c-pera": {
				EmployeeID:     "emp-1",
				ComponentID:    "c-pera",
				OverrideAmount: decimal.NewFromInt(3000),
				EffectiveDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				EndDate:        &endDate,
				IsActive:       true,
			},
		}

		item := s.buildItem(junePeriod(), record, emp, components, overrides)
		assert.True(t, item.TotalAllowances.Equal(decimal.NewFromInt(2000)), "got %s", item.TotalAllowances)
	})
}
