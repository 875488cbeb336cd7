package response

import (
	"errors"
	"net/http"

	"github.com/bayanihr/hrms-backend-go/internal/domain/attendance"
	"github.com/bayanihr/hrms-backend-go/internal/domain/auth"
	"github.com/bayanihr/hrms-backend-go/internal/domain/cashadvance"
	"github.com/bayanihr/hrms-backend-go/internal/domain/compensation"
	"github.com/bayanihr/hrms-backend-go/internal/domain/contribution"
	"github.com/bayanihr/hrms-backend-go/internal/domain/employee"
	"github.com/bayanihr/hrms-backend-go/internal/domain/payroll"
	"github.com/bayanihr/hrms-backend-go/internal/domain/user"
	"github.com/bayanihr/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is not active", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in for this date")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out for this date")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "No open clock-in for this date", nil)
	case errors.Is(err, attendance.ErrAlreadyOnBreak):
		Conflict(w, "Break already started for this date")
	case errors.Is(err, attendance.ErrNotOnBreak):
		BadRequest(w, "No open break for this date", nil)
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Contribution domain errors
	case errors.Is(err, contribution.ErrInvalidCompensation):
		BadRequest(w, "Compensation must not be negative", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrPeriodOverlaps):
		Conflict(w, "Payroll period overlaps an existing period")
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this employee and period")
	case errors.Is(err, payroll.ErrRecordAlreadyPaid):
		Conflict(w, "Payroll record already paid")
	case errors.Is(err, payroll.ErrGenerationInProgress):
		Conflict(w, "Payroll generation already in progress")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, "Invalid payroll status transition")
	case errors.Is(err, payroll.ErrNegativeNetPay):
		UnprocessableEntity(w, "Net pay would be negative, manual review required")

	// Cash advance domain errors
	case errors.Is(err, cashadvance.ErrRequestNotFound):
		NotFound(w, "Cash advance request not found")
	case errors.Is(err, cashadvance.ErrRequestAlreadyProcessed):
		Conflict(w, "Cash advance request already processed")
	case errors.Is(err, cashadvance.ErrOutstandingBalance):
		Conflict(w, "Employee has an outstanding cash advance balance")
	case errors.Is(err, cashadvance.ErrInsufficientBalance):
		UnprocessableEntity(w, "Deduction exceeds remaining cash advance balance")

	// Compensation domain errors
	case errors.Is(err, compensation.ErrTaxTitleNotFound):
		NotFound(w, "Tax title not found")
	case errors.Is(err, compensation.ErrDeductionTitleNotFound):
		NotFound(w, "Deduction title not found")
	case errors.Is(err, compensation.ErrBenefitNotFound):
		NotFound(w, "Benefit not found")
	case errors.Is(err, compensation.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, compensation.ErrTitleNameExists):
		Conflict(w, "Title name already exists")
	case errors.Is(err, compensation.ErrUnsupportedTaxTitleType):
		UnprocessableEntity(w, "Percentage tax titles are not supported")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
