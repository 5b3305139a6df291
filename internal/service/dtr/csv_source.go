package dtr

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgu-hris/payroll-backend-go/internal/domain/dtr"
	"github.com/shopspring/decimal"
)

// RowSource yields parsed DTR rows. The import service consumes rows, never
// files, so other feeds (biometric exports, API pushes) plug in the same way.
type RowSource interface {
	Rows() ([]dtr.Row, error)
}

// CSVSource parses the standard DTR export format:
//
//	employee_number,start_date,end_date,working_days
//	2014-0012,2024-06-01,2024-06-15,11
//
// A header row is required. Malformed cells are file-format errors that abort
// parsing; business validation of well-formed rows happens in the import
// service instead.
type CSVSource struct {
	reader io.Reader
}

func NewCSVSource(r io.Reader) *CSVSource {
	return &CSVSource{reader: r}
}

func (s *CSVSource) Rows() ([]dtr.Row, error) {
	cr := csv.NewReader(s.reader)
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("DTR file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read DTR header: %w", err)
	}
	if !strings.EqualFold(strings.TrimSpace(header[0]), "employee_number") {
		return nil, fmt.Errorf("unexpected DTR header %q", header[0])
	}

	var rows []dtr.Row
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read DTR line %d: %w", line, err)
		}

		startDate, err := time.Parse("2006-01-02", strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q on line %d", record[1], line)
		}
		endDate, err := time.Parse("2006-01-02", strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q on line %d", record[2], line)
		}
		workingDays, err := decimal.NewFromString(strings.TrimSpace(record[3]))
		if err != nil {
			return nil, fmt.Errorf("invalid working days %q on line %d", record[3], line)
		}

		rows = append(rows, dtr.Row{
			EmployeeNumber: strings.TrimSpace(record[0]),
			StartDate:      startDate,
			EndDate:        endDate,
			WorkingDays:    workingDays,
		})
	}
	return rows, nil
}
