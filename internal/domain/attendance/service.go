package attendance

import "context"

// Service defines business logic for attendance operations.
type Service interface {
	// ClockIn opens the day's record for an employee.
	ClockIn(ctx context.Context, req ClockRequest) (RecordResponse, error)

	// ClockOut closes the day's record and derives its final status and
	// hour totals.
	ClockOut(ctx context.Context, req ClockRequest) (RecordResponse, error)

	// BreakOut and BreakIn bracket the unpaid break within the day.
	BreakOut(ctx context.Context, req ClockRequest) (RecordResponse, error)
	BreakIn(ctx context.Context, req ClockRequest) (RecordResponse, error)

	// UpsertManualRecord creates or replaces a full day's record (import or
	// admin correction path).
	UpsertManualRecord(ctx context.Context, req ManualRecordRequest) (RecordResponse, error)

	GetRecord(ctx context.Context, id string) (RecordResponse, error)
	ListRecords(ctx context.Context, filter Filter) (ListRecordResponse, error)
	DeleteRecord(ctx context.Context, id string) error
}
