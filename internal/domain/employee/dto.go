package employee

import (
	"github.com/shopspring/decimal"

	"github.com/bayanihr/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string           `json:"employee_code"`
	FullName     string           `json:"full_name"`
	Email        string           `json:"email"`
	PhoneNumber  *string          `json:"phone_number,omitempty"`
	Position     string           `json:"position"`
	Department   *string          `json:"department,omitempty"`
	HireDate     string           `json:"hire_date"`
	MonthlyRate  decimal.Decimal  `json:"monthly_rate"`
	DailyRate    *decimal.Decimal `json:"daily_rate,omitempty"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must match NNNN-NNNN"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
	}
	if !r.MonthlyRate.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_rate", Message: "must be positive"})
	}
	if r.DailyRate != nil && r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "must be non-negative"})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string
	FullName    *string          `json:"full_name,omitempty"`
	Email       *string          `json:"email,omitempty"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	Position    *string          `json:"position,omitempty"`
	Department  *string          `json:"department,omitempty"`
	Status      *string          `json:"status,omitempty"`
	MonthlyRate *decimal.Decimal `json:"monthly_rate,omitempty"`
	DailyRate   *decimal.Decimal `json:"daily_rate,omitempty"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusActive), string(StatusResigned), string(StatusTerminated),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be active, resigned or terminated"})
	}
	if r.MonthlyRate != nil && !r.MonthlyRate.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_rate", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	EmployeeCode string          `json:"employee_code"`
	FullName     string          `json:"full_name"`
	Email        string          `json:"email"`
	PhoneNumber  *string         `json:"phone_number,omitempty"`
	Position     string          `json:"position"`
	Department   *string         `json:"department,omitempty"`
	HireDate     string          `json:"hire_date"`
	Status       string          `json:"status"`
	MonthlyRate  decimal.Decimal `json:"monthly_rate"`
	DailyRate    decimal.Decimal `json:"daily_rate"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
}

type Filter struct {
	Status   *string
	Position *string
	Search   *string
	Page     int
	Limit    int
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
