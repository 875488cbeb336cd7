package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a named pay period. Periods are immutable once records reference
// them; administrative correction goes through a separate out-of-band path.
type Period struct {
	ID          string
	Name        string
	PeriodStart time.Time
	PeriodEnd   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Status is the payroll record lifecycle. Transitions are one-directional:
// draft -> pending -> processed -> paid.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusPaid      Status = "paid"
)

// next returns the only state reachable from s, or "" for terminal states.
func (s Status) next() Status {
	switch s {
	case StatusDraft:
		return StatusPending
	case StatusPending:
		return StatusProcessed
	case StatusProcessed:
		return StatusPaid
	}
	return ""
}

// CanTransitionTo reports whether moving to target is a legal single step.
func (s Status) CanTransitionTo(target Status) bool {
	return s.next() == target && target != ""
}

// Record is one employee's payroll for one period, carrying the full
// statutory breakdown as persisted fields.
type Record struct {
	ID         string
	EmployeeID string
	PeriodID   string

	// Earnings
	BasicSalary decimal.Decimal
	OvertimePay decimal.Decimal
	HolidayPay  decimal.Decimal
	Allowances  decimal.Decimal
	GrossPay    decimal.Decimal

	// Employee-side deductions
	SSSDeduction         decimal.Decimal
	PhilHealthDeduction  decimal.Decimal
	PagIbigDeduction     decimal.Decimal
	TaxDeduction         decimal.Decimal
	LateDeduction        decimal.Decimal
	UndertimeDeduction   decimal.Decimal
	CashAdvanceDeduction decimal.Decimal
	OtherDeductions      decimal.Decimal
	TotalDeductions      decimal.Decimal
	NetPay               decimal.Decimal

	// SSS breakdown
	SSSMSC             decimal.Decimal
	SSSRegularEmployee decimal.Decimal
	SSSRegularEmployer decimal.Decimal
	SSSRegularTotal    decimal.Decimal
	SSSMPFEmployee     decimal.Decimal
	SSSMPFEmployer     decimal.Decimal
	SSSMPFTotal        decimal.Decimal
	SSSECContribution  decimal.Decimal
	SSSEmployerTotal   decimal.Decimal
	SSSTotalRemittance decimal.Decimal

	// PhilHealth breakdown
	PhilHealthMBS      decimal.Decimal
	PhilHealthEmployer decimal.Decimal
	PhilHealthTotal    decimal.Decimal

	// Pag-IBIG breakdown
	PagIbigSalaryBase decimal.Decimal
	PagIbigEmployer   decimal.Decimal
	PagIbigTotal      decimal.Decimal

	Status      Status
	ProcessedAt *time.Time
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	PeriodName   *string
}
