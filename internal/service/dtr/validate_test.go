package dtr

import (
	"strings"
	"testing"
	"time"

	"github.com/lgu-hris/payroll-backend-go/internal/domain/dtr"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/employee"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/payrollperiod"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWorkingDays(t *testing.T) {
	tests := []struct {
		name      string
		days      string
		wantIssue string
	}{
		{"whole days", "11", ""},
		{"half day", "10.5", ""},
		{"two decimals", "10.25", ""},
		{"zero is importable", "0", ""},
		{"upper bound", "31", ""},
		{"negative", "-1", "must not be negative"},
		{"above a month", "31.5", "must not exceed 31"},
		{"three decimals", "10.125", "at most two decimal places"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := validateWorkingDays(decimal.RequireFromString(tt.days))
			if tt.wantIssue == "" {
				assert.Empty(t, issues)
				return
			}
			require.NotEmpty(t, issues)
			assert.Contains(t, strings.Join(issues, "; "), tt.wantIssue)
		})
	}
}

func TestRowWarnings(t *testing.T) {
	period := payrollperiod.PayrollPeriod{
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	activeEmp := employee.Employee{EmploymentStatus: employee.EmploymentStatusActive}

	inPeriodRow := dtr.Row{
		EmployeeNumber: "2014-0012",
		StartDate:      period.StartDate,
		EndDate:        period.EndDate,
		WorkingDays:    decimal.NewFromInt(11),
	}

	t.Run("clean row has no warnings", func(t *testing.T) {
		assert.Empty(t, rowWarnings(inPeriodRow, period, activeEmp))
	})

	t.Run("zero working days", func(t *testing.T) {
		row := inPeriodRow
		row.WorkingDays = decimal.Zero
		warnings := rowWarnings(row, period, activeEmp)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "zero working days")
	})

	t.Run("dates outside the period", func(t *testing.T) {
		row := inPeriodRow
		row.EndDate = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
		warnings := rowWarnings(row, period, activeEmp)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "outside the payroll period")
	})

	t.Run("inactive employee", func(t *testing.T) {
		emp := activeEmp
		emp.EmploymentStatus = employee.EmploymentStatusResigned
		warnings := rowWarnings(inPeriodRow, period, emp)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "not active")
	})

	t.Run("warnings stack", func(t *testing.T) {
		row := inPeriodRow
		row.WorkingDays = decimal.Zero
		emp := activeEmp
		emp.EmploymentStatus = employee.EmploymentStatusAWOL
		assert.Len(t, rowWarnings(row, period, emp), 2)
	})
}

func TestCSVSource(t *testing.T) {
	t.Run("parses well formed file", func(t *testing.T) {
		input := strings.Join([]string{
			"employee_number,start_date,end_date,working_days",
			"2014-0012,2024-06-01,2024-06-15,11",
			"2018-0345,2024-06-01,2024-06-15,10.5",
		}, "\n")

		rows, err := NewCSVSource(strings.NewReader(input)).Rows()
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "2014-0012", rows[0].EmployeeNumber)
		assert.True(t, rows[0].WorkingDays.Equal(decimal.NewFromInt(11)))
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), rows[0].StartDate)
		assert.True(t, rows[1].WorkingDays.Equal(decimal.RequireFromString("10.5")))
	})

	t.Run("rejects empty file", func(t *testing.T) {
		_, err := NewCSVSource(strings.NewReader("")).Rows()
		assert.ErrorContains(t, err, "empty")
	})

	t.Run("rejects unexpected header", func(t *testing.T) {
		input := "name,from,to,days\nJuan,2024-06-01,2024-06-15,11"
		_, err := NewCSVSource(strings.NewReader(input)).Rows()
		assert.ErrorContains(t, err, "unexpected DTR header")
	})

	t.Run("rejects malformed working days", func(t *testing.T) {
		input := "employee_number,start_date,end_date,working_days\n2014-0012,2024-06-01,2024-06-15,eleven"
		_, err := NewCSVSource(strings.NewReader(input)).Rows()
		assert.ErrorContains(t, err, "invalid working days")
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		input := "employee_number,start_date,end_date,working_days\n2014-0012,June 1,2024-06-15,11"
		_, err := NewCSVSource(strings.NewReader(input)).Rows()
		assert.ErrorContains(t, err, "invalid start date")
	})
}
