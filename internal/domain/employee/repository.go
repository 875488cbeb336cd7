package employee

import "context"

type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
	GetByIDs(ctx context.Context, ids []string) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)
	SoftDelete(ctx context.Context, id string) error
}
