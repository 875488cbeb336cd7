package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	UserID       *string
	EmployeeCode string
	FullName     string
	Email        string
	PhoneNumber  *string
	Position     string
	Department   *string
	HireDate     time.Time
	Status       Status

	// Compensation profile. MonthlyRate is required; DailyRate and
	// HourlyRate are derived from it when not configured explicitly.
	MonthlyRate decimal.Decimal
	DailyRate   *decimal.Decimal
	HourlyRate  *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type Status string

const (
	StatusActive     Status = "active"
	StatusResigned   Status = "resigned"
	StatusTerminated Status = "terminated"
)

// Working days per month and paid hours per day used when deriving daily and
// hourly rates from the monthly rate.
var (
	workingDaysPerMonth = decimal.NewFromInt(22)
	hoursPerDay         = decimal.NewFromInt(8)
)

// EffectiveDailyRate returns the configured daily rate, or the monthly rate
// spread over the standard working days.
func (e Employee) EffectiveDailyRate() decimal.Decimal {
	if e.DailyRate != nil && !e.DailyRate.IsZero() {
		return *e.DailyRate
	}
	return e.MonthlyRate.Div(workingDaysPerMonth).Round(2)
}

// EffectiveHourlyRate returns the configured hourly rate, or the effective
// daily rate spread over the standard paid hours.
func (e Employee) EffectiveHourlyRate() decimal.Decimal {
	if e.HourlyRate != nil && !e.HourlyRate.IsZero() {
		return *e.HourlyRate
	}
	return e.EffectiveDailyRate().Div(hoursPerDay).Round(2)
}
