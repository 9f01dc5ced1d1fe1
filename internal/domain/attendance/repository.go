package attendance

import "context"

// Repository defines data access for attendance records. The store keeps
// one document per (employee ref, date) and enforces that uniqueness.
type Repository interface {
	// Create inserts a new record. A uniqueness violation on
	// (employee_ref, date) is surfaced as ErrAlreadyCheckedIn.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByID retrieves a record by id; ErrAttendanceNotFound if absent.
	GetByID(ctx context.Context, id string) (Record, error)

	// FindByEmployeeAndDate returns the day's record, or nil if none exists.
	FindByEmployeeAndDate(ctx context.Context, employeeRef, date string) (*Record, error)

	// Update replaces the stored record; ErrAttendanceNotFound if absent.
	Update(ctx context.Context, rec Record) error

	// Delete removes a record permanently; ErrAttendanceNotFound if absent.
	Delete(ctx context.Context, id string) error

	// List returns records matching the filter, newest check-in first.
	List(ctx context.Context, filter ListFilter) ([]Record, error)

	// ListByEmployee returns one employee's records in an inclusive date
	// range; nil bounds are open.
	ListByEmployee(ctx context.Context, employeeRef string, startDate, endDate *string) ([]Record, error)
}
