package device

import "context"

type Repository interface {
	// FindActiveByCode resolves a code to an active device;
	// ErrInvalidDevice otherwise.
	FindActiveByCode(ctx context.Context, code string) (Device, error)
}
