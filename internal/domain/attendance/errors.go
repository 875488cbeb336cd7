package attendance

import "errors"

var (
	ErrAlreadyClockedIn  = errors.New("already clocked in for this date")
	ErrNotClockedIn      = errors.New("no open clock-in for this date")
	ErrAlreadyClockedOut = errors.New("already clocked out for this date")
	ErrNotOnBreak        = errors.New("no open break for this date")
	ErrAlreadyOnBreak    = errors.New("break already started for this date")

	ErrRecordNotFound = errors.New("attendance record not found")
	ErrInvalidStatus  = errors.New("invalid attendance status")
)
