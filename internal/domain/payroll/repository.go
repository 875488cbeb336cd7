package payroll

import "context"

type Repository interface {
	// Periods
	CreatePeriod(ctx context.Context, period Period) (Period, error)
	GetPeriodByID(ctx context.Context, id string) (Period, error)
	ListPeriods(ctx context.Context) ([]Period, error)

	// Records
	CreateRecord(ctx context.Context, record Record) (Record, error)
	GetRecordByID(ctx context.Context, id string) (Record, error)
	GetRecordByEmployeePeriod(ctx context.Context, employeeID, periodID string) (Record, error)
	ListRecords(ctx context.Context, filter Filter) ([]Record, int64, error)
	ListRecordsByPeriod(ctx context.Context, periodID string) ([]Record, error)

	// UpdateStatus persists a lifecycle transition together with its
	// timestamp columns.
	UpdateStatus(ctx context.Context, record Record) error

	DeleteRecord(ctx context.Context, id string) error

	// GetSummary aggregates a period's records.
	GetSummary(ctx context.Context, periodID string) (SummaryResponse, error)
}
