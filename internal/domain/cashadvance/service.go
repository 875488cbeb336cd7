package cashadvance

import "context"

type Service interface {
	// Request files a new cash advance for an employee. Only one open
	// advance is allowed per employee at a time.
	Request(ctx context.Context, req CreateRequest) (Response, error)

	Get(ctx context.Context, id string) (Response, error)

	// Decide approves or rejects a pending request. Approval opens the
	// balance for payroll recovery.
	Decide(ctx context.Context, req DecideRequest, decidedBy string) (Response, error)

	List(ctx context.Context, filter Filter) (ListResponse, error)
}
