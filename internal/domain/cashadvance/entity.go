package cashadvance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusSettled  Status = "settled"
)

// Request is an employee cash advance. RemainingBalance is the only field the
// payroll engine mutates, and only inside the payroll generation transaction.
type Request struct {
	ID               string
	EmployeeID       string
	Amount           decimal.Decimal
	RemainingBalance decimal.Decimal
	Reason           *string
	Status           Status
	ApprovedBy       *string
	ApprovedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
}
