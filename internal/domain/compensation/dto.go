package compensation

import (
	"github.com/shopspring/decimal"

	"github.com/bayanihr/hrms-backend-go/internal/pkg/validator"
)

type CreateTaxTitleRequest struct {
	Name string          `json:"name"`
	Type string          `json:"type"`
	Rate decimal.Decimal `json:"rate"`
}

func (r *CreateTaxTitleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	// The schema restricts tax titles to fixed amounts; reject percentage at
	// the boundary rather than coercing.
	if r.Type != string(TaxTitleTypeFixed) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'fixed'"})
	}
	if r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateTitleRequest struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

func (r *CreateTitleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignRequest struct {
	EmployeeID   string           `json:"-"`
	TitleID      string           `json:"title_id"`
	CustomAmount *decimal.Decimal `json:"custom_amount,omitempty"`
}

func (r *AssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TitleID) {
		errs = append(errs, validator.ValidationError{Field: "title_id", Message: "is required"})
	}
	if r.CustomAmount != nil && r.CustomAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "custom_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaxTitleResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Rate     decimal.Decimal `json:"rate"`
	IsActive bool            `json:"is_active"`
}

type TitleResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	IsActive bool            `json:"is_active"`
}

type AssignmentResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	TitleID         string          `json:"title_id"`
	TitleName       string          `json:"title_name"`
	EffectiveAmount decimal.Decimal `json:"effective_amount"`
	IsActive        bool            `json:"is_active"`
}

type EmployeeAssignmentsResponse struct {
	EmployeeID string               `json:"employee_id"`
	Taxes      []AssignmentResponse `json:"taxes"`
	Deductions []AssignmentResponse `json:"deductions"`
	Benefits   []AssignmentResponse `json:"benefits"`
}
