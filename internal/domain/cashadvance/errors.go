package cashadvance

import "errors"

var (
	ErrRequestNotFound         = errors.New("cash advance request not found")
	ErrRequestAlreadyProcessed = errors.New("cash advance request already processed")
	ErrOutstandingBalance      = errors.New("employee has an outstanding cash advance balance")
	ErrInsufficientBalance     = errors.New("deduction exceeds remaining cash advance balance")
)
