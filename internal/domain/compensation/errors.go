package compensation

import "errors"

var (
	ErrTaxTitleNotFound       = errors.New("tax title not found")
	ErrDeductionTitleNotFound = errors.New("deduction title not found")
	ErrBenefitNotFound        = errors.New("benefit not found")
	ErrAssignmentNotFound     = errors.New("assignment not found")
	ErrTitleNameExists        = errors.New("title name already exists")

	// ErrUnsupportedTaxTitleType marks a percentage-type tax title reaching
	// computation despite the fixed-only schema constraint.
	ErrUnsupportedTaxTitleType = errors.New("percentage tax titles are not supported")
)
