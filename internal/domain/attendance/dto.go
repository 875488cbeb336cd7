package attendance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bayanihr/hrms-backend-go/internal/pkg/validator"
)

type ClockRequest struct {
	EmployeeID string `json:"employee_id"`
	// At defaults to now when omitted; manual imports backfill it.
	At *string `json:"at,omitempty"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.At != nil {
		if _, ok := validator.IsValidDateTime(*r.At); !ok {
			errs = append(errs, validator.ValidationError{Field: "at", Message: "must be an ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ManualRecordRequest creates or corrects a full day's record, used by the
// attendance import path and by admins fixing clock mistakes.
type ManualRecordRequest struct {
	EmployeeID     string           `json:"employee_id"`
	Date           string           `json:"date"`
	ClockIn        *string          `json:"clock_in,omitempty"`
	ClockOut       *string          `json:"clock_out,omitempty"`
	TotalHours     *decimal.Decimal `json:"total_hours,omitempty"`
	OvertimeHours  *decimal.Decimal `json:"overtime_hours,omitempty"`
	UndertimeHours *decimal.Decimal `json:"undertime_hours,omitempty"`
	LateMinutes    *int             `json:"late_minutes,omitempty"`
	Status         string           `json:"status"`
}

func (r *ManualRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a recognized attendance status"})
	}
	if r.OvertimeHours != nil && r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if r.UndertimeHours != nil && r.UndertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "undertime_hours", Message: "must be non-negative"})
	}
	if r.LateMinutes != nil && *r.LateMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_minutes", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsValidStatus reports whether s matches one of the enumerated statuses.
func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusLate, StatusUndertime, StatusOvertime,
		StatusLateUndertime, StatusLateOvertime, StatusOnLeave,
		StatusHolidayNoWork, StatusHolidayWorked:
		return true
	}
	return false
}

type Filter struct {
	EmployeeID *string
	DateFrom   *time.Time
	DateTo     *time.Time
	Status     *string
	Page       int
	Limit      int
}

type RecordResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   *string         `json:"employee_name,omitempty"`
	Date           string          `json:"date"`
	ClockIn        *string         `json:"clock_in,omitempty"`
	ClockOut       *string         `json:"clock_out,omitempty"`
	BreakOut       *string         `json:"break_out,omitempty"`
	BreakIn        *string         `json:"break_in,omitempty"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	OvertimeHours  decimal.Decimal `json:"overtime_hours"`
	UndertimeHours decimal.Decimal `json:"undertime_hours"`
	LateMinutes    int             `json:"late_minutes"`
	Status         string          `json:"status"`
}

type ListRecordResponse struct {
	Data       []RecordResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}
