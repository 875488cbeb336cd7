package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/bayanihr/hrms-backend-go/internal/pkg/validator"
)

type CreatePeriodRequest struct {
	Name        string `json:"name"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

type GenerateRequest struct {
	PeriodID string `json:"period_id"`
	// Empty means every active employee.
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PeriodID) {
		errs = append(errs, validator.ValidationError{Field: "period_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GenerateFailure reports one employee's generation failure without aborting
// the rest of the batch.
type GenerateFailure struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

type GenerateResponse struct {
	Records  []RecordResponse  `json:"records"`
	Failures []GenerateFailure `json:"failures,omitempty"`
}

type TransitionRequest struct {
	ID     string
	Status string `json:"status"`
}

func (r *TransitionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{
		string(StatusPending), string(StatusProcessed), string(StatusPaid),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be pending, processed or paid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	PeriodID     string  `json:"period_id"`
	PeriodName   *string `json:"period_name,omitempty"`

	BasicSalary decimal.Decimal `json:"basic_salary"`
	OvertimePay decimal.Decimal `json:"overtime_pay"`
	HolidayPay  decimal.Decimal `json:"holiday_pay"`
	Allowances  decimal.Decimal `json:"allowances"`
	GrossPay    decimal.Decimal `json:"gross_pay"`

	SSSDeduction         decimal.Decimal `json:"sss_deduction"`
	PhilHealthDeduction  decimal.Decimal `json:"philhealth_deduction"`
	PagIbigDeduction     decimal.Decimal `json:"pagibig_deduction"`
	TaxDeduction         decimal.Decimal `json:"tax_deduction"`
	LateDeduction        decimal.Decimal `json:"late_deduction"`
	UndertimeDeduction   decimal.Decimal `json:"undertime_deduction"`
	CashAdvanceDeduction decimal.Decimal `json:"cash_advance_deduction"`
	OtherDeductions      decimal.Decimal `json:"other_deductions"`
	TotalDeductions      decimal.Decimal `json:"total_deductions"`
	NetPay               decimal.Decimal `json:"net_pay"`

	SSSMSC             decimal.Decimal `json:"sss_msc"`
	SSSRegularEmployee decimal.Decimal `json:"sss_regular_ss_employee"`
	SSSRegularEmployer decimal.Decimal `json:"sss_regular_ss_employer"`
	SSSRegularTotal    decimal.Decimal `json:"sss_regular_ss_total"`
	SSSMPFEmployee     decimal.Decimal `json:"sss_mpf_employee"`
	SSSMPFEmployer     decimal.Decimal `json:"sss_mpf_employer"`
	SSSMPFTotal        decimal.Decimal `json:"sss_mpf_total"`
	SSSECContribution  decimal.Decimal `json:"sss_ec_contribution"`
	SSSEmployerTotal   decimal.Decimal `json:"sss_employer_total"`
	SSSTotalRemittance decimal.Decimal `json:"sss_total_remittance"`

	PhilHealthMBS      decimal.Decimal `json:"philhealth_mbs"`
	PhilHealthEmployer decimal.Decimal `json:"philhealth_employer_contribution"`
	PhilHealthTotal    decimal.Decimal `json:"philhealth_total_contribution"`

	PagIbigSalaryBase decimal.Decimal `json:"pagibig_salary_base"`
	PagIbigEmployer   decimal.Decimal `json:"pagibig_employer_contribution"`
	PagIbigTotal      decimal.Decimal `json:"pagibig_total_contribution"`

	Status      string  `json:"status"`
	ProcessedAt *string `json:"processed_at,omitempty"`
	PaidAt      *string `json:"paid_at,omitempty"`
}

type Filter struct {
	PeriodID   *string
	EmployeeID *string
	Status     *string
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

type ListRecordResponse struct {
	Data       []RecordResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

type SummaryResponse struct {
	PeriodID           string          `json:"period_id"`
	TotalEmployees     int             `json:"total_employees"`
	TotalGrossPay      decimal.Decimal `json:"total_gross_pay"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	TotalNetPay        decimal.Decimal `json:"total_net_pay"`
	TotalSSSRemittance decimal.Decimal `json:"total_sss_remittance"`
	TotalPhilHealth    decimal.Decimal `json:"total_philhealth_contribution"`
	TotalPagIbig       decimal.Decimal `json:"total_pagibig_contribution"`
	DraftCount         int             `json:"draft_count"`
	PendingCount       int             `json:"pending_count"`
	ProcessedCount     int             `json:"processed_count"`
	PaidCount          int             `json:"paid_count"`
}
