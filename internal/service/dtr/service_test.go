package dtr

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lgu-hris/payroll-backend-go/internal/domain/dtr"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/employee"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/payrollperiod"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

type stubItemRepo struct {
	count int64
}

func (r *stubItemRepo) BulkInsert(ctx context.Context, items []payrollperiod.PayrollItem) (int, error) {
	return len(items), nil
}

func (r *stubItemRepo) DeleteByPeriod(ctx context.Context, periodID string) (int64, error) {
	return 0, nil
}

func (r *stubItemRepo) ListByPeriod(ctx context.Context, periodID string) ([]payrollperiod.PayrollItem, error) {
	return nil, nil
}

func (r *stubItemRepo) CountByPeriod(ctx context.Context, periodID string) (int64, error) {
	return r.count, nil
}

func (r *stubItemRepo) FinalizeByPeriod(ctx context.Context, periodID string) (int64, error) {
	return 0, nil
}

func (r *stubItemRepo) GetSummary(ctx context.Context, periodID string) (payrollperiod.Summary, error) {
	return payrollperiod.Summary{}, nil
}

type stubEmployeeRepo struct {
	byNumber map[string]employee.Employee
}

func (r *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) GetByEmployeeNumber(ctx context.Context, number string) (employee.Employee, error) {
	if emp, ok := r.byNumber[number]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (r *stubEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func importTestService(period payrollperiod.PayrollPeriod, itemCount int64, employees map[string]employee.Employee) *Service {
	return NewService(
		nil,
		nil,
		&stubPeriodRepo{period: period},
		&stubItemRepo{count: itemCount},
		&stubEmployeeRepo{byNumber: employees},
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func testPeriod(status payrollperiod.Status) payrollperiod.PayrollPeriod {
	return payrollperiod.PayrollPeriod{
		ID:        "period-1",
		Year:      2024,
		Month:     6,
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Status:    status,
	}
}

func testRow(number string, days int64) dtr.Row {
	return dtr.Row{
		EmployeeNumber: number,
		StartDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		WorkingDays:    decimal.NewFromInt(days),
	}
}

func TestImportRejectsClosedPeriodWithStatus(t *testing.T) {
	s := importTestService(testPeriod(payrollperiod.StatusCompleted), 0, nil)

	_, err := s.Import(context.Background(), dtr.ImportRequest{
		PayrollPeriodID: "period-1",
		Rows:            []dtr.Row{testRow("2014-0012", 11)},
	}, nil)

	assert.ErrorIs(t, err, dtr.ErrPeriodClosed)
	assert.Contains(t, err.Error(), "completed", "error should name the current status")
}

func TestImportReimportGuardNamesItemCount(t *testing.T) {
	s := importTestService(testPeriod(payrollperiod.StatusProcessing), 3, nil)

	_, err := s.Import(context.Background(), dtr.ImportRequest{
		PayrollPeriodID: "period-1",
		Rows:            []dtr.Row{testRow("2014-0012", 11)},
	}, nil)

	assert.ErrorIs(t, err, dtr.ErrReimportNotConfirmed)
	assert.Contains(t, err.Error(), "3 payroll items")
}

func TestImportAllRowsInvalidReturnsRowIssues(t *testing.T) {
	s := importTestService(testPeriod(payrollperiod.StatusDraft), 0, nil)

	result, err := s.Import(context.Background(), dtr.ImportRequest{
		PayrollPeriodID: "period-1",
		Rows: []dtr.Row{
			testRow("2014-0012", 45),
			testRow("9999-0000", 10),
		},
	}, nil)

	require.ErrorIs(t, err, dtr.ErrNoValidRecords)

	// The categorized issues still come back so the file can be corrected.
	assert.Equal(t, 2, result.TotalRecords)
	assert.Equal(t, 0, result.ValidRecords)
	assert.Equal(t, 2, result.InvalidRecords)
	require.Len(t, result.Invalid, 2)
	assert.Equal(t, 1, result.Invalid[0].RowNumber)
	assert.Contains(t, result.Invalid[0].Message, "31")
	assert.Equal(t, 2, result.Invalid[1].RowNumber)
	assert.Contains(t, result.Invalid[1].Message, "not found")
}
