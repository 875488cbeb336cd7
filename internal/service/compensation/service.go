package compensation

import (
	"context"

	"github.com/bayanihr/hrms-backend-go/internal/domain/compensation"
	"github.com/bayanihr/hrms-backend-go/internal/domain/employee"
)

type CompensationServiceImpl struct {
	compensationRepo compensation.Repository
	employeeRepo     employee.Repository
}

func NewCompensationService(compensationRepo compensation.Repository, employeeRepo employee.Repository) compensation.Service {
	return &CompensationServiceImpl{
		compensationRepo: compensationRepo,
		employeeRepo:     employeeRepo,
	}
}

// ========== TAX TITLES ==========

func (s *CompensationServiceImpl) CreateTaxTitle(ctx context.Context, req compensation.CreateTaxTitleRequest) (compensation.TaxTitleResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.TaxTitleResponse{}, err
	}

	created, err := s.compensationRepo.CreateTaxTitle(ctx, compensation.TaxTitle{
		Name:     req.Name,
		Type:     compensation.TaxTitleType(req.Type),
		Rate:     req.Rate,
		IsActive: true,
	})
	if err != nil {
		return compensation.TaxTitleResponse{}, err
	}

	return mapToTaxTitleResponse(created), nil
}

func (s *CompensationServiceImpl) ListTaxTitles(ctx context.Context, activeOnly bool) ([]compensation.TaxTitleResponse, error) {
	titles, err := s.compensationRepo.ListTaxTitles(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]compensation.TaxTitleResponse, 0, len(titles))
	for _, t := range titles {
		result = append(result, mapToTaxTitleResponse(t))
	}
	return result, nil
}

func (s *CompensationServiceImpl) SetTaxTitleActive(ctx context.Context, id string, active bool) error {
	return s.compensationRepo.SetTaxTitleActive(ctx, id, active)
}

// ========== DEDUCTION TITLES ==========

func (s *CompensationServiceImpl) CreateDeductionTitle(ctx context.Context, req compensation.CreateTitleRequest) (compensation.TitleResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.TitleResponse{}, err
	}

	created, err := s.compensationRepo.CreateDeductionTitle(ctx, compensation.DeductionTitle{
		Name:     req.Name,
		Amount:   req.Amount,
		IsActive: true,
	})
	if err != nil {
		return compensation.TitleResponse{}, err
	}

	return compensation.TitleResponse{ID: created.ID, Name: created.Name, Amount: created.Amount, IsActive: created.IsActive}, nil
}

func (s *CompensationServiceImpl) ListDeductionTitles(ctx context.Context, activeOnly bool) ([]compensation.TitleResponse, error) {
	titles, err := s.compensationRepo.ListDeductionTitles(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]compensation.TitleResponse, 0, len(titles))
	for _, t := range titles {
		result = append(result, compensation.TitleResponse{ID: t.ID, Name: t.Name, Amount: t.Amount, IsActive: t.IsActive})
	}
	return result, nil
}

func (s *CompensationServiceImpl) SetDeductionTitleActive(ctx context.Context, id string, active bool) error {
	return s.compensationRepo.SetDeductionTitleActive(ctx, id, active)
}

// ========== BENEFITS ==========

func (s *CompensationServiceImpl) CreateBenefit(ctx context.Context, req compensation.CreateTitleRequest) (compensation.TitleResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.TitleResponse{}, err
	}

	created, err := s.compensationRepo.CreateBenefit(ctx, compensation.Benefit{
		Name:     req.Name,
		Amount:   req.Amount,
		IsActive: true,
	})
	if err != nil {
		return compensation.TitleResponse{}, err
	}

	return compensation.TitleResponse{ID: created.ID, Name: created.Name, Amount: created.Amount, IsActive: created.IsActive}, nil
}

func (s *CompensationServiceImpl) ListBenefits(ctx context.Context, activeOnly bool) ([]compensation.TitleResponse, error) {
	benefits, err := s.compensationRepo.ListBenefits(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]compensation.TitleResponse, 0, len(benefits))
	for _, b := range benefits {
		result = append(result, compensation.TitleResponse{ID: b.ID, Name: b.Name, Amount: b.Amount, IsActive: b.IsActive})
	}
	return result, nil
}

func (s *CompensationServiceImpl) SetBenefitActive(ctx context.Context, id string, active bool) error {
	return s.compensationRepo.SetBenefitActive(ctx, id, active)
}

// ========== ASSIGNMENTS ==========

func (s *CompensationServiceImpl) AssignTax(ctx context.Context, req compensation.AssignRequest) (compensation.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.AssignmentResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return compensation.AssignmentResponse{}, err
	}

	title, err := s.compensationRepo.GetTaxTitleByID(ctx, req.TitleID)
	if err != nil {
		return compensation.AssignmentResponse{}, err
	}

	created, err := s.compensationRepo.AssignTax(ctx, compensation.TaxAssignment{
		EmployeeID: req.EmployeeID,
		TaxTitleID: req.TitleID,
		CustomRate: req.CustomAmount,
		IsActive:   true,
	})
	if err != nil {
		return compensation.AssignmentResponse{}, err
	}

	created.Title = &title
	return compensation.AssignmentResponse{
		ID:              created.ID,
		EmployeeID:      created.EmployeeID,
		TitleID:         created.TaxTitleID,
		TitleName:       title.Name,
		EffectiveAmount: created.EffectiveRate(),
		IsActive:        created.IsActive,
	}, nil
}

func (s *CompensationServiceImpl) AssignDeduction(ctx context.Context, req compensation.AssignRequest) (compensation.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.AssignmentResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return compensation.AssignmentResponse{}, err
	}

	created, err := s.compensationRepo.AssignDeduction(ctx, compensation.DeductionAssignment{
		EmployeeID:       req.EmployeeID,
		DeductionTitleID: req.TitleID,
		CustomAmount:     req.CustomAmount,
		IsActive:         true,
	})
	if err != nil {
		return compensation.AssignmentResponse{}, err
	}

	// Reload with the title joined for the effective amount.
	assignments, err := s.compensationRepo.GetEmployeeDeductionAssignments(ctx, req.EmployeeID, false)
	if err != nil {
		return compensation.AssignmentResponse{}, err
	}
	for _, a := range assignments {
		if a.ID == created.ID {
			return mapDeductionAssignment(a), nil
		}
	}
	return mapDeductionAssignment(created), nil
}

func (s *CompensationServiceImpl) AssignBenefit(ctx context.Context, req compensation.AssignRequest) (compensation.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.AssignmentResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return compensation.AssignmentResponse{}, err
	}

	created, err := s.compensationRepo.AssignBenefit(ctx, compensation.BenefitAssignment{
		EmployeeID:   req.EmployeeID,
		BenefitID:    req.TitleID,
		CustomAmount: req.CustomAmount,
		IsActive:     true,
	})
	if err != nil {
		return compensation.AssignmentResponse{}, err
	}

	assignments, err := s.compensationRepo.GetEmployeeBenefitAssignments(ctx, req.EmployeeID, false)
	if err != nil {
		return compensation.AssignmentResponse{}, err
	}
	for _, a := range assignments {
		if a.ID == created.ID {
			return mapBenefitAssignment(a), nil
		}
	}
	return mapBenefitAssignment(created), nil
}

func (s *CompensationServiceImpl) ListEmployeeAssignments(ctx context.Context, employeeID string) (compensation.EmployeeAssignmentsResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return compensation.EmployeeAssignmentsResponse{}, err
	}

	taxes, err := s.compensationRepo.GetEmployeeTaxAssignments(ctx, employeeID, false)
	if err != nil {
		return compensation.EmployeeAssignmentsResponse{}, err
	}
	deductions, err := s.compensationRepo.GetEmployeeDeductionAssignments(ctx, employeeID, false)
	if err != nil {
		return compensation.EmployeeAssignmentsResponse{}, err
	}
	benefits, err := s.compensationRepo.GetEmployeeBenefitAssignments(ctx, employeeID, false)
	if err != nil {
		return compensation.EmployeeAssignmentsResponse{}, err
	}

	resp := compensation.EmployeeAssignmentsResponse{
		EmployeeID: employeeID,
		Taxes:      []compensation.AssignmentResponse{},
		Deductions: []compensation.AssignmentResponse{},
		Benefits:   []compensation.AssignmentResponse{},
	}
	for _, a := range taxes {
		resp.Taxes = append(resp.Taxes, mapTaxAssignment(a))
	}
	for _, a := range deductions {
		resp.Deductions = append(resp.Deductions, mapDeductionAssignment(a))
	}
	for _, a := range benefits {
		resp.Benefits = append(resp.Benefits, mapBenefitAssignment(a))
	}

	return resp, nil
}

func (s *CompensationServiceImpl) RemoveTaxAssignment(ctx context.Context, id string) error {
	return s.compensationRepo.RemoveTaxAssignment(ctx, id)
}

func (s *CompensationServiceImpl) RemoveDeductionAssignment(ctx context.Context, id string) error {
	return s.compensationRepo.RemoveDeductionAssignment(ctx, id)
}

func (s *CompensationServiceImpl) RemoveBenefitAssignment(ctx context.Context, id string) error {
	return s.compensationRepo.RemoveBenefitAssignment(ctx, id)
}

// ========== HELPERS ==========

func mapToTaxTitleResponse(t compensation.TaxTitle) compensation.TaxTitleResponse {
	return compensation.TaxTitleResponse{
		ID:       t.ID,
		Name:     t.Name,
		Type:     string(t.Type),
		Rate:     t.Rate,
		IsActive: t.IsActive,
	}
}

func mapTaxAssignment(a compensation.TaxAssignment) compensation.AssignmentResponse {
	name := ""
	if a.Title != nil {
		name = a.Title.Name
	}
	return compensation.AssignmentResponse{
		ID:              a.ID,
		EmployeeID:      a.EmployeeID,
		TitleID:         a.TaxTitleID,
		TitleName:       name,
		EffectiveAmount: a.EffectiveRate(),
		IsActive:        a.IsActive,
	}
}

func mapDeductionAssignment(a compensation.DeductionAssignment) compensation.AssignmentResponse {
	name := ""
	if a.Title != nil {
		name = a.Title.Name
	}
	return compensation.AssignmentResponse{
		ID:              a.ID,
		EmployeeID:      a.EmployeeID,
		TitleID:         a.DeductionTitleID,
		TitleName:       name,
		EffectiveAmount: a.EffectiveAmount(),
		IsActive:        a.IsActive,
	}
}

func mapBenefitAssignment(a compensation.BenefitAssignment) compensation.AssignmentResponse {
	name := ""
	if a.Benefit != nil {
		name = a.Benefit.Name
	}
	return compensation.AssignmentResponse{
		ID:              a.ID,
		EmployeeID:      a.EmployeeID,
		TitleID:         a.BenefitID,
		TitleName:       name,
		EffectiveAmount: a.EffectiveAmount(),
		IsActive:        a.IsActive,
	}
}
