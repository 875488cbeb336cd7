package compensation

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxTitleType is retained on the row even though only fixed titles are
// accepted; a percentage row reaching the payroll engine is a data-integrity
// fault, not a supported path.
type TaxTitleType string

const (
	TaxTitleTypeFixed      TaxTitleType = "fixed"
	TaxTitleTypePercentage TaxTitleType = "percentage"
)

// TaxTitle is a named fixed-amount withholding line (e.g. withholding tax).
type TaxTitle struct {
	ID        string
	Name      string
	Type      TaxTitleType
	Rate      decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeductionTitle is a named recurring non-statutory deduction (e.g. HMO
// co-pay, uniform amortization).
type DeductionTitle struct {
	ID        string
	Name      string
	Amount    decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Benefit is a named recurring allowance (e.g. rice subsidy, transport).
type Benefit struct {
	ID        string
	Name      string
	Amount    decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TaxAssignment links a tax title to an employee, optionally overriding the
// title's default amount.
type TaxAssignment struct {
	ID         string
	EmployeeID string
	TaxTitleID string
	CustomRate *decimal.Decimal
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	Title *TaxTitle
}

// EffectiveRate returns the custom rate when set, the title default otherwise.
func (a TaxAssignment) EffectiveRate() decimal.Decimal {
	if a.CustomRate != nil {
		return *a.CustomRate
	}
	if a.Title != nil {
		return a.Title.Rate
	}
	return decimal.Zero
}

type DeductionAssignment struct {
	ID               string
	EmployeeID       string
	DeductionTitleID string
	CustomAmount     *decimal.Decimal
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	Title *DeductionTitle
}

func (a DeductionAssignment) EffectiveAmount() decimal.Decimal {
	if a.CustomAmount != nil {
		return *a.CustomAmount
	}
	if a.Title != nil {
		return a.Title.Amount
	}
	return decimal.Zero
}

type BenefitAssignment struct {
	ID           string
	EmployeeID   string
	BenefitID    string
	CustomAmount *decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	Benefit *Benefit
}

func (a BenefitAssignment) EffectiveAmount() decimal.Decimal {
	if a.CustomAmount != nil {
		return *a.CustomAmount
	}
	if a.Benefit != nil {
		return a.Benefit.Amount
	}
	return decimal.Zero
}
