package contribution

import "errors"

var (
	ErrInvalidCompensation = errors.New("compensation must be a non-negative amount")
)
