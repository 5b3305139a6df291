package dateutil

import (
	"time"
)

// MonthsOfService computes whole calendar months of service between the
// appointment date and a cutoff date. The base count is
// (endYear-startYear)*12 + (endMonth-startMonth), then adjusted by the
// day-of-month difference: 15 or more days rounds up one month, a negative
// difference rounds down one month. The mid-month threshold at day 15 is a
// policy rule; computed benefits depend on it numerically.
func MonthsOfService(appointmentDate, cutoff time.Time) int {
	months := (cutoff.Year()-appointmentDate.Year())*12 + int(cutoff.Month()) - int(appointmentDate.Month())

	dayDiff := cutoff.Day() - appointmentDate.Day()
	if dayDiff >= 15 {
		months++
	} else if dayDiff < 0 {
		months--
	}

	if months < 0 {
		return 0
	}
	return months
}

// ApproxYearsOfService computes whole years of service on a 365.25-day-year
// convention: floor((at - appointmentDate) / 365.25 days).
//
// This deliberately diverges from MonthsOfService/12: the loyalty-award
// workflow in the compensation service has always used the day-count
// convention while benefit eligibility uses calendar months. Callers must not
// swap one for the other.
func ApproxYearsOfService(appointmentDate, at time.Time) int {
	if at.Before(appointmentDate) {
		return 0
	}
	years := at.Sub(appointmentDate).Hours() / 24 / 365.25
	return int(years)
}
