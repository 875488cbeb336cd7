package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bayanihr/hrms-backend-go/internal/domain/attendance"
	"github.com/bayanihr/hrms-backend-go/internal/domain/cashadvance"
	"github.com/bayanihr/hrms-backend-go/internal/domain/compensation"
	"github.com/bayanihr/hrms-backend-go/internal/domain/employee"
	"github.com/bayanihr/hrms-backend-go/internal/domain/payroll"
	"github.com/bayanihr/hrms-backend-go/internal/pkg/database"
	"github.com/bayanihr/hrms-backend-go/internal/pkg/export"
	"github.com/bayanihr/hrms-backend-go/internal/pkg/payslip"
	"github.com/bayanihr/hrms-backend-go/internal/repository/postgresql"
)

type ServiceImpl struct {
	db               *database.DB
	logger           *slog.Logger
	engine           *Engine
	payrollRepo      payroll.Repository
	employeeRepo     employee.Repository
	attendanceRepo   attendance.Repository
	compensationRepo compensation.Repository
	cashAdvanceRepo  cashadvance.Repository
	locks            *generationLock
}

func NewPayrollService(
	db *database.DB,
	logger *slog.Logger,
	engine *Engine,
	payrollRepo payroll.Repository,
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	compensationRepo compensation.Repository,
	cashAdvanceRepo cashadvance.Repository,
) payroll.Service {
	return &ServiceImpl{
		db:               db,
		logger:           logger,
		engine:           engine,
		payrollRepo:      payrollRepo,
		employeeRepo:     employeeRepo,
		attendanceRepo:   attendanceRepo,
		compensationRepo: compensationRepo,
		cashAdvanceRepo:  cashAdvanceRepo,
		locks:            newGenerationLock(),
	}
}

// ========== PERIODS ==========

func (s *ServiceImpl) CreatePeriod(ctx context.Context, req payroll.CreatePeriodRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.PeriodStart)
	end, _ := time.Parse("2006-01-02", req.PeriodEnd)

	created, err := s.payrollRepo.CreatePeriod(ctx, payroll.Period{
		Name:        req.Name,
		PeriodStart: start,
		PeriodEnd:   end,
	})
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return mapToPeriodResponse(created), nil
}

func (s *ServiceImpl) ListPeriods(ctx context.Context) ([]payroll.PeriodResponse, error) {
	periods, err := s.payrollRepo.ListPeriods(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, mapToPeriodResponse(p))
	}
	return result, nil
}

// ========== GENERATION ==========

func (s *ServiceImpl) Generate(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateResponse{}, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, req.PeriodID)
	if err != nil {
		return payroll.GenerateResponse{}, err
	}

	var employees []employee.Employee
	if len(req.EmployeeIDs) > 0 {
		employees, err = s.employeeRepo.GetByIDs(ctx, req.EmployeeIDs)
	} else {
		employees, err = s.employeeRepo.GetActive(ctx)
	}
	if err != nil {
		return payroll.GenerateResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}

	response := payroll.GenerateResponse{Records: []payroll.RecordResponse{}}
	for _, emp := range employees {
		record, genErr := s.generateOne(ctx, emp, period)
		if genErr != nil {
			if errors.Is(genErr, payroll.ErrRecordAlreadyExists) {
				continue
			}
			// One employee failing never aborts the rest of the batch.
			s.logger.Error("payroll generation failed for employee",
				slog.String("employee_id", emp.ID),
				slog.String("period_id", period.ID),
				slog.String("error", genErr.Error()),
			)
			response.Failures = append(response.Failures, payroll.GenerateFailure{
				EmployeeID: emp.ID,
				Reason:     genErr.Error(),
			})
			continue
		}
		response.Records = append(response.Records, mapToRecordResponse(record))
	}

	return response, nil
}

// generateOne computes and persists a single employee's record. The record
// insert and the cash advance decrement share one transaction so both land
// or neither does.
func (s *ServiceImpl) generateOne(ctx context.Context, emp employee.Employee, period payroll.Period) (payroll.Record, error) {
	if !s.locks.tryAcquire(emp.ID, period.ID) {
		return payroll.Record{}, payroll.ErrGenerationInProgress
	}
	defer s.locks.release(emp.ID, period.ID)

	if _, err := s.payrollRepo.GetRecordByEmployeePeriod(ctx, emp.ID, period.ID); err == nil {
		return payroll.Record{}, payroll.ErrRecordAlreadyExists
	} else if !errors.Is(err, payroll.ErrRecordNotFound) {
		return payroll.Record{}, fmt.Errorf("failed to check existing record: %w", err)
	}

	input, err := s.loadInput(ctx, emp, period)
	if err != nil {
		return payroll.Record{}, err
	}

	output, err := s.engine.Generate(input)
	if err != nil {
		return payroll.Record{}, err
	}

	if output.CashAdvanceShortfall.IsPositive() {
		s.logger.Warn("cash advance balance below period cap",
			slog.String("employee_id", emp.ID),
			slog.String("period_id", period.ID),
			slog.String("shortfall", output.CashAdvanceShortfall.String()),
		)
	}

	var created payroll.Record
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := database.WithTx(ctx, tx)

		var txErr error
		created, txErr = s.payrollRepo.CreateRecord(txCtx, output.Record)
		if txErr != nil {
			return txErr
		}

		if output.CashAdvanceDeduction.IsPositive() && input.CashAdvance != nil {
			if _, txErr = s.cashAdvanceRepo.DecrementBalance(txCtx, input.CashAdvance.ID, output.CashAdvanceDeduction); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		return payroll.Record{}, err
	}

	return created, nil
}

func (s *ServiceImpl) loadInput(ctx context.Context, emp employee.Employee, period payroll.Period) (Input, error) {
	records, err := s.attendanceRepo.ListByEmployeePeriod(ctx, emp.ID, period.PeriodStart, period.PeriodEnd)
	if err != nil {
		return Input{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	taxes, err := s.compensationRepo.GetEmployeeTaxAssignments(ctx, emp.ID, true)
	if err != nil {
		return Input{}, fmt.Errorf("failed to load tax assignments: %w", err)
	}

	deductions, err := s.compensationRepo.GetEmployeeDeductionAssignments(ctx, emp.ID, true)
	if err != nil {
		return Input{}, fmt.Errorf("failed to load deduction assignments: %w", err)
	}

	benefits, err := s.compensationRepo.GetEmployeeBenefitAssignments(ctx, emp.ID, true)
	if err != nil {
		return Input{}, fmt.Errorf("failed to load benefit assignments: %w", err)
	}

	var advance *cashadvance.Request
	open, err := s.cashAdvanceRepo.GetOpenByEmployee(ctx, emp.ID)
	if err == nil {
		advance = &open
	} else if !errors.Is(err, cashadvance.ErrRequestNotFound) {
		return Input{}, fmt.Errorf("failed to load cash advance: %w", err)
	}

	return Input{
		Employee:    emp,
		Period:      period,
		Attendance:  records,
		Taxes:       taxes,
		Deductions:  deductions,
		Benefits:    benefits,
		CashAdvance: advance,
	}, nil
}

// ========== RECORDS ==========

func (s *ServiceImpl) GetRecord(ctx context.Context, id string) (payroll.RecordResponse, error) {
	record, err := s.payrollRepo.GetRecordByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return mapToRecordResponse(record), nil
}

func (s *ServiceImpl) ListRecords(ctx context.Context, filter payroll.Filter) (payroll.ListRecordResponse, error) {
	records, total, err := s.payrollRepo.ListRecords(ctx, filter)
	if err != nil {
		return payroll.ListRecordResponse{}, err
	}

	result := make([]payroll.RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}

	return payroll.ListRecordResponse{
		Data:       result,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *ServiceImpl) Transition(ctx context.Context, req payroll.TransitionRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	record, err := s.payrollRepo.GetRecordByID(ctx, req.ID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	target := payroll.Status(req.Status)
	if !record.Status.CanTransitionTo(target) {
		return payroll.RecordResponse{}, payroll.ErrInvalidStatusTransition
	}

	now := time.Now()
	record.Status = target
	switch target {
	case payroll.StatusProcessed:
		record.ProcessedAt = &now
	case payroll.StatusPaid:
		record.PaidAt = &now
	}

	if err := s.payrollRepo.UpdateStatus(ctx, record); err != nil {
		return payroll.RecordResponse{}, err
	}

	return mapToRecordResponse(record), nil
}

func (s *ServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	record, err := s.payrollRepo.GetRecordByID(ctx, id)
	if err != nil {
		return err
	}
	if record.Status == payroll.StatusPaid {
		return payroll.ErrRecordAlreadyPaid
	}
	return s.payrollRepo.DeleteRecord(ctx, id)
}

func (s *ServiceImpl) GetSummary(ctx context.Context, periodID string) (payroll.SummaryResponse, error) {
	if _, err := s.payrollRepo.GetPeriodByID(ctx, periodID); err != nil {
		return payroll.SummaryResponse{}, err
	}
	return s.payrollRepo.GetSummary(ctx, periodID)
}

// ========== EXPORTS ==========

func (s *ServiceImpl) PayslipPDF(ctx context.Context, recordID string) ([]byte, error) {
	record, err := s.payrollRepo.GetRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, record.PeriodID)
	if err != nil {
		return nil, err
	}

	return payslip.Build(record, period)
}

func (s *ServiceImpl) RegisterXLSX(ctx context.Context, periodID string) ([]byte, error) {
	period, err := s.payrollRepo.GetPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListRecordsByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	return export.BuildRegister(period, records)
}

// ========== HELPERS ==========

func mapToPeriodResponse(p payroll.Period) payroll.PeriodResponse {
	return payroll.PeriodResponse{
		ID:          p.ID,
		Name:        p.Name,
		PeriodStart: p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   p.PeriodEnd.Format("2006-01-02"),
	}
}

func mapToRecordResponse(r payroll.Record) payroll.RecordResponse {
	resp := payroll.RecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		EmployeeCode: r.EmployeeCode,
		PeriodID:     r.PeriodID,
		PeriodName:   r.PeriodName,

		BasicSalary: r.BasicSalary,
		OvertimePay: r.OvertimePay,
		HolidayPay:  r.HolidayPay,
		Allowances:  r.Allowances,
		GrossPay:    r.GrossPay,

		SSSDeduction:         r.SSSDeduction,
		PhilHealthDeduction:  r.PhilHealthDeduction,
		PagIbigDeduction:     r.PagIbigDeduction,
		TaxDeduction:         r.TaxDeduction,
		LateDeduction:        r.LateDeduction,
		UndertimeDeduction:   r.UndertimeDeduction,
		CashAdvanceDeduction: r.CashAdvanceDeduction,
		OtherDeductions:      r.OtherDeductions,
		TotalDeductions:      r.TotalDeductions,
		NetPay:               r.NetPay,

		SSSMSC:             r.SSSMSC,
		SSSRegularEmployee: r.SSSRegularEmployee,
		SSSRegularEmployer: r.SSSRegularEmployer,
		SSSRegularTotal:    r.SSSRegularTotal,
		SSSMPFEmployee:     r.SSSMPFEmployee,
		SSSMPFEmployer:     r.SSSMPFEmployer,
		SSSMPFTotal:        r.SSSMPFTotal,
		SSSECContribution:  r.SSSECContribution,
		SSSEmployerTotal:   r.SSSEmployerTotal,
		SSSTotalRemittance: r.SSSTotalRemittance,

		PhilHealthMBS:      r.PhilHealthMBS,
		PhilHealthEmployer: r.PhilHealthEmployer,
		PhilHealthTotal:    r.PhilHealthTotal,

		PagIbigSalaryBase: r.PagIbigSalaryBase,
		PagIbigEmployer:   r.PagIbigEmployer,
		PagIbigTotal:      r.PagIbigTotal,

		Status: string(r.Status),
	}

	if r.ProcessedAt != nil {
		str := r.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &str
	}
	if r.PaidAt != nil {
		str := r.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &str
	}

	return resp
}
