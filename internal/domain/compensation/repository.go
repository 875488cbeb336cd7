package compensation

import "context"

// Repository covers the compensation masters (tax titles, deduction titles,
// benefits) and their per-employee assignments.
type Repository interface {
	// Tax titles
	CreateTaxTitle(ctx context.Context, title TaxTitle) (TaxTitle, error)
	GetTaxTitleByID(ctx context.Context, id string) (TaxTitle, error)
	ListTaxTitles(ctx context.Context, activeOnly bool) ([]TaxTitle, error)
	SetTaxTitleActive(ctx context.Context, id string, active bool) error

	// Deduction titles
	CreateDeductionTitle(ctx context.Context, title DeductionTitle) (DeductionTitle, error)
	ListDeductionTitles(ctx context.Context, activeOnly bool) ([]DeductionTitle, error)
	SetDeductionTitleActive(ctx context.Context, id string, active bool) error

	// Benefits
	CreateBenefit(ctx context.Context, benefit Benefit) (Benefit, error)
	ListBenefits(ctx context.Context, activeOnly bool) ([]Benefit, error)
	SetBenefitActive(ctx context.Context, id string, active bool) error

	// Assignments; the payroll engine reads these with titles joined.
	AssignTax(ctx context.Context, a TaxAssignment) (TaxAssignment, error)
	AssignDeduction(ctx context.Context, a DeductionAssignment) (DeductionAssignment, error)
	AssignBenefit(ctx context.Context, a BenefitAssignment) (BenefitAssignment, error)
	GetEmployeeTaxAssignments(ctx context.Context, employeeID string, activeOnly bool) ([]TaxAssignment, error)
	GetEmployeeDeductionAssignments(ctx context.Context, employeeID string, activeOnly bool) ([]DeductionAssignment, error)
	GetEmployeeBenefitAssignments(ctx context.Context, employeeID string, activeOnly bool) ([]BenefitAssignment, error)
	RemoveTaxAssignment(ctx context.Context, id string) error
	RemoveDeductionAssignment(ctx context.Context, id string) error
	RemoveBenefitAssignment(ctx context.Context, id string) error
}
