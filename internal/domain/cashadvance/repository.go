package cashadvance

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)

	// GetOpenByEmployee returns the employee's approved request with a
	// positive remaining balance, or ErrRequestNotFound.
	GetOpenByEmployee(ctx context.Context, employeeID string) (Request, error)

	Update(ctx context.Context, req Request) error

	// DecrementBalance reduces remaining_balance by amount and marks the
	// request settled when it reaches zero. Runs under the caller's
	// transaction via the context querier.
	DecrementBalance(ctx context.Context, id string, amount decimal.Decimal) (Request, error)

	List(ctx context.Context, filter Filter) ([]Request, int64, error)
}
