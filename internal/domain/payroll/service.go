package payroll

import "context"

// Service defines business logic for payroll periods and records.
type Service interface {
	// Periods
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	ListPeriods(ctx context.Context) ([]PeriodResponse, error)

	// Generate computes and persists draft records for the period, one per
	// employee, isolating per-employee failures.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)

	GetRecord(ctx context.Context, id string) (RecordResponse, error)
	ListRecords(ctx context.Context, filter Filter) (ListRecordResponse, error)

	// Transition advances a record one lifecycle step
	// (draft -> pending -> processed -> paid).
	Transition(ctx context.Context, req TransitionRequest) (RecordResponse, error)

	DeleteRecord(ctx context.Context, id string) error
	GetSummary(ctx context.Context, periodID string) (SummaryResponse, error)

	// PayslipPDF renders one record as a payslip document.
	PayslipPDF(ctx context.Context, recordID string) ([]byte, error)

	// RegisterXLSX renders a period's records as a payroll register workbook.
	RegisterXLSX(ctx context.Context, periodID string) ([]byte, error)
}
