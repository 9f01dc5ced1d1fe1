package attendance

import "context"

// Service defines business logic for attendance operations.
type Service interface {
	// CheckIn records the first punch of the day, creating or completing
	// the day's record.
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// CheckOut closes an open day record and computes the work duration.
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)

	// ListRecords retrieves records with filters (admin/manager).
	ListRecords(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)

	// GetMyAttendance retrieves records for one employee.
	GetMyAttendance(ctx context.Context, employeeRef string, startDate, endDate *string) ([]RecordResponse, error)

	// TodayStatus returns today's record for an employee, or nil if none.
	TodayStatus(ctx context.Context, employeeRef string) (*RecordResponse, error)

	// Statistics summarizes an employee's month.
	Statistics(ctx context.Context, employeeRef string, month, year int) (Statistics, error)

	// ClearField nulls the check-in or check-out side of a record.
	ClearField(ctx context.Context, id, field string) (RecordResponse, error)

	// Delete removes a record permanently.
	Delete(ctx context.Context, id string) error

	// Methods lists the supported punch methods.
	Methods() []MethodInfo
}
