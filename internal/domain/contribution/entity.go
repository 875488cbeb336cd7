package contribution

import (
	"github.com/shopspring/decimal"
)

// Schedule is one published year of statutory contribution tables. Schedules
// are immutable once built; the calculator never mutates them, so a single
// Schedule can be shared across concurrent payroll runs.
type Schedule struct {
	Year       int
	SSS        SSSTable
	PhilHealth PhilHealthTable
	PagIbig    PagIbigTable
}

// SSSTable describes the bracketed Monthly Salary Credit lookup plus the
// contribution rates applied to the Regular SS and MPF portions of the MSC.
type SSSTable struct {
	MinMSC decimal.Decimal
	MaxMSC decimal.Decimal
	// StepMSC is the bracket width; compensation is bracketed to the nearest
	// MSC multiple between MinMSC and MaxMSC.
	StepMSC decimal.Decimal
	// RegularCeiling splits the MSC into the Regular SS portion (at or below)
	// and the MPF portion (above).
	RegularCeiling decimal.Decimal
	EmployeeRate   decimal.Decimal
	EmployerRate   decimal.Decimal
	// ECThreshold and the two EC amounts define the flat employer-paid
	// Employees' Compensation tier: ECBelow applies when MSC < ECThreshold,
	// ECAtOrAbove otherwise.
	ECThreshold decimal.Decimal
	ECBelow     decimal.Decimal
	ECAtOrAbove decimal.Decimal
}

// PhilHealthTable holds the premium rate and the Monthly Basic Salary bounds
// the rate is applied within.
type PhilHealthTable struct {
	PremiumRate decimal.Decimal
	MinMBS      decimal.Decimal
	MaxMBS      decimal.Decimal
}

// PagIbigTable holds the Pag-IBIG fund salary base ceiling and the tiered
// employee rate (LowerRate below LowerBand, UpperRate at or above).
type PagIbigTable struct {
	MaxSalaryBase decimal.Decimal
	LowerBand     decimal.Decimal
	LowerRate     decimal.Decimal
	UpperRate     decimal.Decimal
	EmployerRate  decimal.Decimal
	EmployerCap   decimal.Decimal
}

// SSSContribution carries every persisted sub-amount of an SSS computation.
// The split amounts are stored on the payroll record alongside the totals, so
// none of these are throwaway intermediates.
type SSSContribution struct {
	MSC decimal.Decimal

	RegularEmployee decimal.Decimal
	RegularEmployer decimal.Decimal
	RegularTotal    decimal.Decimal

	MPFEmployee decimal.Decimal
	MPFEmployer decimal.Decimal
	MPFTotal    decimal.Decimal

	EC decimal.Decimal

	Employee        decimal.Decimal // RegularEmployee + MPFEmployee
	EmployerTotal   decimal.Decimal // RegularEmployer + MPFEmployer + EC
	TotalRemittance decimal.Decimal // Employee + EmployerTotal
}

type PhilHealthContribution struct {
	MBS      decimal.Decimal
	Employee decimal.Decimal
	Employer decimal.Decimal
	Total    decimal.Decimal
}

type PagIbigContribution struct {
	SalaryBase decimal.Decimal
	Employee   decimal.Decimal
	Employer   decimal.Decimal
	Total      decimal.Decimal
}
