package employee

import (
	"context"
	"time"
)

// Repository is the minimum employee surface the attendance core needs.
type Repository interface {
	// FindByEmployeeID resolves by the human-readable employee code.
	FindByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	// FindByNFCUID resolves by NFC tag.
	FindByNFCUID(ctx context.Context, nfcUID string) (Employee, error)

	// GetByRef retrieves by document id.
	GetByRef(ctx context.Context, ref string) (Employee, error)

	// UpdateLastCheckIn stamps the employee's most recent check-in.
	UpdateLastCheckIn(ctx context.Context, ref string, at time.Time) error

	// UpdateLastCheckOut stamps the employee's most recent check-out.
	UpdateLastCheckOut(ctx context.Context, ref string, at time.Time) error
}
