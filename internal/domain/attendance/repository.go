package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records.
type Repository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)

	// GetByEmployeeAndDate returns nil when no record exists for the day,
	// used to prevent double clock-in.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// ListByEmployeePeriod returns every record for the employee with
	// period_start <= date <= period_end, the payroll engine's read path.
	ListByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]Record, error)

	Update(ctx context.Context, record Record) error
	List(ctx context.Context, filter Filter) ([]Record, int64, error)
	Delete(ctx context.Context, id string) error
}
