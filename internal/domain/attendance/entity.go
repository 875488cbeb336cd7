package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the classification stamped on a day's record when it is closed.
// The combined variants keep lateness visible even when the day also ran
// short or long.
type Status string

const (
	StatusPresent       Status = "Present"
	StatusAbsent        Status = "Absent"
	StatusLate          Status = "Late"
	StatusUndertime     Status = "Undertime"
	StatusOvertime      Status = "Overtime"
	StatusLateUndertime Status = "Late (Undertime)"
	StatusLateOvertime  Status = "Late (Overtime)"
	StatusOnLeave       Status = "On Leave"
	StatusHolidayNoWork Status = "Holiday (No Work)"
	StatusHolidayWorked Status = "Holiday (Worked)"
)

// Record is one employee-day of attendance. Records are produced by clock
// events or import and are read-only inputs to payroll computation.
type Record struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	ClockIn        *time.Time
	ClockOut       *time.Time
	BreakOut       *time.Time
	BreakIn        *time.Time
	TotalHours     decimal.Decimal
	OvertimeHours  decimal.Decimal
	UndertimeHours decimal.Decimal
	LateMinutes    int
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
}

// HasOvertime reports whether the record's overtime hours are payable.
func (r Record) HasOvertime() bool {
	return r.Status == StatusOvertime || r.Status == StatusLateOvertime
}

// HasUndertime reports whether the record's undertime hours are deductible.
func (r Record) HasUndertime() bool {
	return r.Status == StatusUndertime || r.Status == StatusLateUndertime
}

// IsLate reports whether late minutes on the record are deductible.
func (r Record) IsLate() bool {
	switch r.Status {
	case StatusLate, StatusLateUndertime, StatusLateOvertime:
		return true
	}
	return false
}

// IsBasicPayDay reports whether the day counts toward the days-worked
// equivalent used for basic salary. Leave days count; Holiday (Worked) does
// not, because that day is paid in full through the holiday multiplier.
func (r Record) IsBasicPayDay() bool {
	switch r.Status {
	case StatusPresent, StatusLate, StatusUndertime, StatusOvertime,
		StatusLateUndertime, StatusLateOvertime, StatusOnLeave:
		return true
	}
	return false
}
