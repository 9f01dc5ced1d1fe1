package shift

import "context"

type Repository interface {
	// FindActiveByCode resolves a code to an active shift;
	// ErrInvalidShift otherwise.
	FindActiveByCode(ctx context.Context, code string) (Shift, error)
}
