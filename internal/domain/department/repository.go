package department

import "context"

type Repository interface {
	// GetByRef retrieves by document id; ErrDepartmentNotFound if absent.
	GetByRef(ctx context.Context, ref string) (Department, error)
}
