package employee

import "github.com/shopspring/decimal"

type EmployeeResponse struct {
	ID                   string           `json:"id"`
	EmployeeNumber       string           `json:"employee_number"`
	FullName             string           `json:"full_name"`
	PositionTitle        *string          `json:"position_title,omitempty"`
	OfficeName           *string          `json:"office_name,omitempty"`
	EmploymentStatus     string           `json:"employment_status"`
	AppointmentDate      string           `json:"appointment_date"`
	MonthlySalary        decimal.Decimal  `json:"monthly_salary"`
	DailyRate            *decimal.Decimal `json:"daily_rate,omitempty"`
	HighestMonthlySalary *decimal.Decimal `json:"highest_monthly_salary,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                   e.ID,
		EmployeeNumber:       e.EmployeeNumber,
		FullName:             e.FullName,
		PositionTitle:        e.PositionTitle,
		OfficeName:           e.OfficeName,
		EmploymentStatus:     string(e.EmploymentStatus),
		AppointmentDate:      e.AppointmentDate.Format("2006-01-02"),
		MonthlySalary:        e.MonthlySalary,
		DailyRate:            e.DailyRate,
		HighestMonthlySalary: e.HighestMonthlySalary,
	}
}
