package cashadvance

import (
	"github.com/shopspring/decimal"

	"github.com/bayanihr/hrms-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	EmployeeID string          `json:"employee_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     *string         `json:"reason,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideRequest struct {
	ID      string
	Approve bool    `json:"approve"`
	Note    *string `json:"note,omitempty"`
}

type Response struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Reason           *string         `json:"reason,omitempty"`
	Status           string          `json:"status"`
	ApprovedAt       *string         `json:"approved_at,omitempty"`
}

type Filter struct {
	EmployeeID *string
	Status     *string
	Page       int
	Limit      int
}

type ListResponse struct {
	Data       []Response `json:"data"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}
