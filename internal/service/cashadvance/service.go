package cashadvance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bayanihr/hrms-backend-go/internal/domain/cashadvance"
	"github.com/bayanihr/hrms-backend-go/internal/domain/employee"
)

type CashAdvanceServiceImpl struct {
	cashAdvanceRepo cashadvance.Repository
	employeeRepo    employee.Repository
}

func NewCashAdvanceService(cashAdvanceRepo cashadvance.Repository, employeeRepo employee.Repository) cashadvance.Service {
	return &CashAdvanceServiceImpl{
		cashAdvanceRepo: cashAdvanceRepo,
		employeeRepo:    employeeRepo,
	}
}

// Request implements cashadvance.Service.
func (s *CashAdvanceServiceImpl) Request(ctx context.Context, req cashadvance.CreateRequest) (cashadvance.Response, error) {
	if err := req.Validate(); err != nil {
		return cashadvance.Response{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return cashadvance.Response{}, err
	}
	if emp.Status != employee.StatusActive {
		return cashadvance.Response{}, employee.ErrEmployeeInactive
	}

	// One open advance per employee until the balance is recovered.
	if _, err := s.cashAdvanceRepo.GetOpenByEmployee(ctx, req.EmployeeID); err == nil {
		return cashadvance.Response{}, cashadvance.ErrOutstandingBalance
	} else if !errors.Is(err, cashadvance.ErrRequestNotFound) {
		return cashadvance.Response{}, fmt.Errorf("failed to check open advance: %w", err)
	}

	created, err := s.cashAdvanceRepo.Create(ctx, cashadvance.Request{
		EmployeeID:       req.EmployeeID,
		Amount:           req.Amount,
		RemainingBalance: req.Amount,
		Reason:           req.Reason,
		Status:           cashadvance.StatusPending,
	})
	if err != nil {
		return cashadvance.Response{}, err
	}

	return mapToResponse(created), nil
}

// Get implements cashadvance.Service.
func (s *CashAdvanceServiceImpl) Get(ctx context.Context, id string) (cashadvance.Response, error) {
	req, err := s.cashAdvanceRepo.GetByID(ctx, id)
	if err != nil {
		return cashadvance.Response{}, err
	}
	return mapToResponse(req), nil
}

// Decide implements cashadvance.Service.
func (s *CashAdvanceServiceImpl) Decide(ctx context.Context, req cashadvance.DecideRequest, decidedBy string) (cashadvance.Response, error) {
	advance, err := s.cashAdvanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return cashadvance.Response{}, err
	}
	if advance.Status != cashadvance.StatusPending {
		return cashadvance.Response{}, cashadvance.ErrRequestAlreadyProcessed
	}

	now := time.Now()
	if req.Approve {
		advance.Status = cashadvance.StatusApproved
	} else {
		advance.Status = cashadvance.StatusRejected
	}
	advance.ApprovedBy = &decidedBy
	advance.ApprovedAt = &now

	if err := s.cashAdvanceRepo.Update(ctx, advance); err != nil {
		return cashadvance.Response{}, err
	}

	return mapToResponse(advance), nil
}

// List implements cashadvance.Service.
func (s *CashAdvanceServiceImpl) List(ctx context.Context, filter cashadvance.Filter) (cashadvance.ListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	requests, total, err := s.cashAdvanceRepo.List(ctx, filter)
	if err != nil {
		return cashadvance.ListResponse{}, err
	}

	result := make([]cashadvance.Response, 0, len(requests))
	for _, r := range requests {
		result = append(result, mapToResponse(r))
	}

	return cashadvance.ListResponse{
		Data:       result,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func mapToResponse(r cashadvance.Request) cashadvance.Response {
	resp := cashadvance.Response{
		ID:               r.ID,
		EmployeeID:       r.EmployeeID,
		EmployeeName:     r.EmployeeName,
		Amount:           r.Amount,
		RemainingBalance: r.RemainingBalance,
		Reason:           r.Reason,
		Status:           string(r.Status),
	}
	if r.ApprovedAt != nil {
		str := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &str
	}
	return resp
}
