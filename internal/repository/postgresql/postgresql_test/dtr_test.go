package postgresql_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/dtr"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/notification"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/payrollperiod"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/database"
	"github.com/lgu-hris/payroll-backend-go/internal/repository/postgresql"
	periodservice "github.com/lgu-hris/payroll-backend-go/internal/service/payrollperiod"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// requireTestDB connects once per run and skips the test when no test
// database is configured.
func requireTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testDB == nil {
		var err error
		testDB, err = database.NewPostgreSQLDB(context.Background(), dsn, database.PoolConfig{})
		require.NoError(t, err)
	}
	return testDB
}

func truncateTables(t *testing.T, ctx context.Context) {
	t.Helper()
	tables := []string{"payroll_items", "dtr_records", "dtr_import_batches", "payroll_periods", "employees"}
	for _, table := range tables {
		_, err := testDB.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestPeriod(t *testing.T, ctx context.Context, repo payrollperiod.PeriodRepository) payrollperiod.PayrollPeriod {
	t.Helper()
	period, err := repo.Create(ctx, payrollperiod.PayrollPeriod{
		Year:         2024,
		Month:        6,
		PeriodNumber: 1,
		StartDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		PayDate:      time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		Status:       payrollperiod.StatusDraft,
	})
	require.NoError(t, err)
	return period
}

func createTestEmployee(t *testing.T, ctx context.Context, number string) string {
	t.Helper()
	var id string
	err := testDB.QueryRow(ctx, `
		INSERT INTO employees (
			id, employee_number, full_name, position_title, office_name,
			employment_status, appointment_date, monthly_salary, created_at, updated_at
		)
		VALUES (gen_random_uuid(), $1, 'Test Employee', 'Clerk II', 'Treasury Office',
				'Active', '2014-01-10', 30000, NOW(), NOW())
		RETURNING id
	`, number).Scan(&id)
	require.NoError(t, err)
	return id
}

func newTestBatch(periodID, fileName string, total int) dtr.ImportBatch {
	return dtr.ImportBatch{
		ID:              uuid.Must(uuid.NewV7()).String(),
		PayrollPeriodID: periodID,
		FileName:        fileName,
		TotalRecords:    total,
		ValidRecords:    total,
		Status:          dtr.BatchStatusProcessing,
	}
}

func newTestRecord(periodID, employeeID, batchID string, days int64) dtr.Record {
	return dtr.Record{
		PayrollPeriodID: periodID,
		EmployeeID:      employeeID,
		WorkingDays:     decimal.NewFromInt(days),
		ImportBatchID:   batchID,
		Status:          dtr.RecordStatusActive,
	}
}

type noopDispatcher struct{}

func (noopDispatcher) Notify(req notification.CreateRequest) {}

func (noopDispatcher) Close() {}

// ===== DTR REPOSITORY TESTS =====

func TestDTRRepository_SupersedeAndInsertAreAtomic(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	periodRepo := postgresql.NewPayrollPeriodRepository(db)
	dtrRepo := postgresql.NewDTRRepository(db)

	period := createTestPeriod(t, ctx, periodRepo)
	empA := createTestEmployee(t, ctx, "2014-0012")
	empB := createTestEmployee(t, ctx, "2015-0033")

	firstBatch := newTestBatch(period.ID, "june-v1.csv", 2)
	err := postgresql.WithTransaction(ctx, db, func(ctx context.Context) error {
		if _, err := dtrRepo.CreateBatch(ctx, firstBatch); err != nil {
			return err
		}
		if _, err := dtrRepo.SupersedeActiveRecords(ctx, period.ID, firstBatch.ID); err != nil {
			return err
		}
		if _, err := dtrRepo.BulkInsertRecords(ctx, []dtr.Record{
			newTestRecord(period.ID, empA, firstBatch.ID, 11),
			newTestRecord(period.ID, empB, firstBatch.ID, 10),
		}); err != nil {
			return err
		}
		return dtrRepo.CompleteBatch(ctx, firstBatch.ID)
	})
	require.NoError(t, err)

	// A re-import that fails after superseding and inserting must leave no
	// trace: the first batch's records stay the active set.
	errMidImport := errors.New("simulated failure mid import")
	secondBatch := newTestBatch(period.ID, "june-v2.csv", 1)
	err = postgresql.WithTransaction(ctx, db, func(ctx context.Context) error {
		if _, err := dtrRepo.CreateBatch(ctx, secondBatch); err != nil {
			return err
		}
		if _, err := dtrRepo.SupersedeActiveRecords(ctx, period.ID, secondBatch.ID); err != nil {
			return err
		}
		if _, err := dtrRepo.BulkInsertRecords(ctx, []dtr.Record{
			newTestRecord(period.ID, empA, secondBatch.ID, 12),
		}); err != nil {
			return err
		}
		return errMidImport
	})
	require.ErrorIs(t, err, errMidImport)

	count, err := dtrRepo.CountActiveByPeriod(ctx, period.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	active, err := dtrRepo.ListActiveByPeriod(ctx, period.ID)
	require.NoError(t, err)
	for _, rec := range active {
		assert.Equal(t, firstBatch.ID, rec.ImportBatchID)
	}

	_, err = dtrRepo.GetBatchByID(ctx, secondBatch.ID)
	assert.ErrorIs(t, err, dtr.ErrBatchNotFound)

	// A successful re-import supersedes the whole previous set in one step.
	thirdBatch := newTestBatch(period.ID, "june-v3.csv", 1)
	var superseded int64
	err = postgresql.WithTransaction(ctx, db, func(ctx context.Context) error {
		if _, err := dtrRepo.CreateBatch(ctx, thirdBatch); err != nil {
			return err
		}
		superseded, err = dtrRepo.SupersedeActiveRecords(ctx, period.ID, thirdBatch.ID)
		if err != nil {
			return err
		}
		if _, err := dtrRepo.BulkInsertRecords(ctx, []dtr.Record{
			newTestRecord(period.ID, empA, thirdBatch.ID, 12),
		}); err != nil {
			return err
		}
		return dtrRepo.CompleteBatch(ctx, thirdBatch.ID)
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), superseded)

	count, err = dtrRepo.CountActiveByPeriod(ctx, period.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	active, err = dtrRepo.ListActiveByPeriod(ctx, period.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, thirdBatch.ID, active[0].ImportBatchID)
}

func TestProcessPayrollWithoutDTRCreatesNoItems(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	periodRepo := postgresql.NewPayrollPeriodRepository(db)
	itemRepo := postgresql.NewPayrollItemRepository(db)
	dtrRepo := postgresql.NewDTRRepository(db)
	componentRepo := postgresql.NewComponentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	svc := periodservice.NewService(
		db, periodRepo, itemRepo, dtrRepo, componentRepo, employeeRepo,
		noopDispatcher{}, slog.New(slog.NewTextHandler(io.Discard, nil)),
		decimal.NewFromInt(22),
	)

	period := createTestPeriod(t, ctx, periodRepo)

	_, err := svc.ProcessPayroll(ctx, period.ID)
	assert.ErrorIs(t, err, payrollperiod.ErrNoDTRData)

	count, err := itemRepo.CountByPeriod(ctx, period.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	after, err := periodRepo.GetByID(ctx, period.ID)
	require.NoError(t, err)
	assert.Equal(t, payrollperiod.StatusDraft, after.Status)
}
