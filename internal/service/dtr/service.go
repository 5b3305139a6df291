package dtr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/dtr"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/employee"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/notification"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/payrollperiod"
	"github.com/lgu-hris/payroll-backend-go/internal/pkg/database"
	"github.com/lgu-hris/payroll-backend-go/internal/repository/postgresql"
)

// Service runs the DTR import-and-supersede pipeline. Each import writes an
// append-only batch; the new batch's records become the period's active set
// and every earlier record is superseded in the same transaction.
type Service struct {
	db           *database.DB
	dtrRepo      dtr.Repository
	periodRepo   payrollperiod.PeriodRepository
	itemRepo     payrollperiod.ItemRepository
	employeeRepo employee.EmployeeRepository
	dispatcher   notification.Dispatcher
	logger       *slog.Logger
}

func NewService(
	db *database.DB,
	dtrRepo dtr.Repository,
	periodRepo payrollperiod.PeriodRepository,
	itemRepo payrollperiod.ItemRepository,
	employeeRepo employee.EmployeeRepository,
	dispatcher notification.Dispatcher,
	logger *slog.Logger,
) *Service {
	return &Service{
		db:           db,
		dtrRepo:      dtrRepo,
		periodRepo:   periodRepo,
		itemRepo:     itemRepo,
		employeeRepo: employeeRepo,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

// Import validates the parsed rows and atomically replaces the period's
// active DTR set. Invalid rows are reported, not imported; a file with no
// valid rows leaves the existing data untouched.
func (s *Service) Import(ctx context.Context, req dtr.ImportRequest, importedBy *string) (dtr.ImportResult, error) {
	if err := req.Validate(); err != nil {
		return dtr.ImportResult{}, err
	}

	period, err := s.periodRepo.GetByID(ctx, req.PayrollPeriodID)
	if err != nil {
		return dtr.ImportResult{}, err
	}
	if !period.Status.AcceptsDTRImport() {
		return dtr.ImportResult{}, fmt.Errorf("%w: current status is %s", dtr.ErrPeriodClosed, period.Status)
	}

	itemCount, err := s.itemRepo.CountByPeriod(ctx, req.PayrollPeriodID)
	if err != nil {
		return dtr.ImportResult{}, err
	}
	if itemCount > 0 && !req.ConfirmReimport {
		return dtr.ImportResult{}, fmt.Errorf("%w: %d payroll items would be invalidated", dtr.ErrReimportNotConfirmed, itemCount)
	}

	result := dtr.ImportResult{TotalRecords: len(req.Rows)}
	batchID := uuid.Must(uuid.NewV7()).String()

	var records []dtr.Record
	seen := make(map[string]int)
	for i, row := range req.Rows {
		rowNumber := i + 1

		if issues := validateWorkingDays(row.WorkingDays); len(issues) > 0 {
			result.Invalid = append(result.Invalid, dtr.RowIssue{
				RowNumber:      rowNumber,
				EmployeeNumber: row.EmployeeNumber,
				Message:        strings.Join(issues, "; "),
			})
			continue
		}

		if firstRow, dup := seen[row.EmployeeNumber]; dup {
			result.Invalid = append(result.Invalid, dtr.RowIssue{
				RowNumber:      rowNumber,
				EmployeeNumber: row.EmployeeNumber,
				Message:        fmt.Sprintf("duplicate of row %d", firstRow),
			})
			continue
		}
		seen[row.EmployeeNumber] = rowNumber

		emp, err := s.employeeRepo.GetByEmployeeNumber(ctx, row.EmployeeNumber)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				result.Invalid = append(result.Invalid, dtr.RowIssue{
					RowNumber:      rowNumber,
					EmployeeNumber: row.EmployeeNumber,
					Message:        "employee number not found",
				})
				continue
			}
			return dtr.ImportResult{}, err
		}

		if warnings := rowWarnings(row, period, emp); len(warnings) > 0 {
			result.Warnings = append(result.Warnings, dtr.RowIssue{
				RowNumber:      rowNumber,
				EmployeeNumber: row.EmployeeNumber,
				Message:        strings.Join(warnings, "; "),
			})
			result.WarningRecords++
		}

		records = append(records, dtr.Record{
			PayrollPeriodID: req.PayrollPeriodID,
			EmployeeID:      emp.ID,
			WorkingDays:     row.WorkingDays,
			ImportBatchID:   batchID,
			Status:          dtr.RecordStatusActive,
		})
	}

	result.ValidRecords = len(records)
	result.InvalidRecords = len(result.Invalid)
	if len(records) == 0 {
		return result, dtr.ErrNoValidRecords
	}

	batch := dtr.ImportBatch{
		ID:              batchID,
		PayrollPeriodID: req.PayrollPeriodID,
		FileName:        req.FileName,
		TotalRecords:    result.TotalRecords,
		ValidRecords:    result.ValidRecords,
		InvalidRecords:  result.InvalidRecords,
		WarningRecords:  result.WarningRecords,
		Status:          dtr.BatchStatusProcessing,
		ImportedBy:      importedBy,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if _, err := s.dtrRepo.CreateBatch(ctx, batch); err != nil {
			return err
		}
		superseded, err := s.dtrRepo.SupersedeActiveRecords(ctx, req.PayrollPeriodID, batchID)
		if err != nil {
			return err
		}
		result.Superseded = superseded

		if _, err := s.dtrRepo.BulkInsertRecords(ctx, records); err != nil {
			return err
		}
		return s.dtrRepo.CompleteBatch(ctx, batchID)
	})
	if err != nil {
		return dtr.ImportResult{}, err
	}
	result.BatchID = batchID

	s.logger.Info("DTR import completed",
		"payroll_period_id", req.PayrollPeriodID,
		"batch_id", batchID,
		"valid", result.ValidRecords,
		"invalid", result.InvalidRecords,
		"warnings", result.WarningRecords,
		"superseded", result.Superseded)

	s.dispatcher.Notify(notification.CreateRequest{
		Type:  notification.TypeDTRImported,
		Title: "DTR imported",
		Message: fmt.Sprintf("Imported %d of %d DTR rows for period %d-%02d",
			result.ValidRecords, result.TotalRecords, period.Year, period.Month),
	})

	return result, nil
}

func (s *Service) GetBatch(ctx context.Context, id string) (dtr.BatchResponse, error) {
	batch, err := s.dtrRepo.GetBatchByID(ctx, id)
	if err != nil {
		return dtr.BatchResponse{}, err
	}
	return mapToBatchResponse(batch), nil
}

func (s *Service) ListBatches(ctx context.Context, periodID string) ([]dtr.BatchResponse, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return nil, err
	}

	batches, err := s.dtrRepo.ListBatchesByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	responses := make([]dtr.BatchResponse, 0, len(batches))
	for _, b := range batches {
		responses = append(responses, mapToBatchResponse(b))
	}
	return responses, nil
}

func (s *Service) ListActiveRecords(ctx context.Context, periodID string) ([]dtr.RecordResponse, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return nil, err
	}

	records, err := s.dtrRepo.ListActiveByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	responses := make([]dtr.RecordResponse, 0, len(records))
	for _, rec := range records {
		resp := dtr.RecordResponse{
			ID:              rec.ID,
			PayrollPeriodID: rec.PayrollPeriodID,
			EmployeeID:      rec.EmployeeID,
			WorkingDays:     rec.WorkingDays,
			ImportBatchID:   rec.ImportBatchID,
			Status:          string(rec.Status),
		}
		if rec.EmployeeNumber != nil {
			resp.EmployeeNumber = *rec.EmployeeNumber
		}
		if rec.EmployeeName != nil {
			resp.EmployeeName = *rec.EmployeeName
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func mapToBatchResponse(b dtr.ImportBatch) dtr.BatchResponse {
	return dtr.BatchResponse{
		ID:              b.ID,
		PayrollPeriodID: b.PayrollPeriodID,
		FileName:        b.FileName,
		TotalRecords:    b.TotalRecords,
		ValidRecords:    b.ValidRecords,
		InvalidRecords:  b.InvalidRecords,
		WarningRecords:  b.WarningRecords,
		Status:          string(b.Status),
		ImportedBy:      b.ImportedBy,
	}
}
