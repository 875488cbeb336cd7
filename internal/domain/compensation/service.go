package compensation

import "context"

type Service interface {
	// Tax titles
	CreateTaxTitle(ctx context.Context, req CreateTaxTitleRequest) (TaxTitleResponse, error)
	ListTaxTitles(ctx context.Context, activeOnly bool) ([]TaxTitleResponse, error)
	SetTaxTitleActive(ctx context.Context, id string, active bool) error

	// Deduction titles
	CreateDeductionTitle(ctx context.Context, req CreateTitleRequest) (TitleResponse, error)
	ListDeductionTitles(ctx context.Context, activeOnly bool) ([]TitleResponse, error)
	SetDeductionTitleActive(ctx context.Context, id string, active bool) error

	// Benefits
	CreateBenefit(ctx context.Context, req CreateTitleRequest) (TitleResponse, error)
	ListBenefits(ctx context.Context, activeOnly bool) ([]TitleResponse, error)
	SetBenefitActive(ctx context.Context, id string, active bool) error

	// Assignments
	AssignTax(ctx context.Context, req AssignRequest) (AssignmentResponse, error)
	AssignDeduction(ctx context.Context, req AssignRequest) (AssignmentResponse, error)
	AssignBenefit(ctx context.Context, req AssignRequest) (AssignmentResponse, error)
	ListEmployeeAssignments(ctx context.Context, employeeID string) (EmployeeAssignmentsResponse, error)
	RemoveTaxAssignment(ctx context.Context, id string) error
	RemoveDeductionAssignment(ctx context.Context, id string) error
	RemoveBenefitAssignment(ctx context.Context, id string) error
}
