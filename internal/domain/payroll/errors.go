package payroll

import "errors"

var (
	ErrPeriodNotFound       = errors.New("payroll period not found")
	ErrPeriodOverlaps       = errors.New("payroll period overlaps an existing period")
	ErrRecordNotFound       = errors.New("payroll record not found")
	ErrRecordAlreadyExists  = errors.New("payroll record already exists for this employee and period")
	ErrRecordAlreadyPaid    = errors.New("payroll record already paid, cannot modify")
	ErrGenerationInProgress = errors.New("payroll generation already in progress for this employee and period")

	// ErrNegativeNetPay is surfaced for manual review; the record is never
	// persisted with a negative net pay.
	ErrNegativeNetPay = errors.New("net pay would be negative")

	ErrInvalidStatusTransition = errors.New("invalid payroll status transition")
)
