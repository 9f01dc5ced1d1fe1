package response

import (
	"errors"
	"net/http"

	"github.com/chamcong/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong/attendance-backend-go/internal/domain/auth"
	"github.com/chamcong/attendance-backend-go/internal/domain/department"
	"github.com/chamcong/attendance-backend-go/internal/domain/device"
	"github.com/chamcong/attendance-backend-go/internal/domain/employee"
	"github.com/chamcong/attendance-backend-go/internal/domain/report"
	"github.com/chamcong/attendance-backend-go/internal/domain/shift"
	"github.com/chamcong/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrEmployeeClaimNeeded):
		Forbidden(w, "Token carries no employee identity")
	case errors.Is(err, auth.ErrManagerRequired):
		Forbidden(w, "Manager privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in found for today", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidMethod):
		BadRequest(w, "Invalid attendance method", nil)
	case errors.Is(err, attendance.ErrFingerprintIDRequired):
		BadRequest(w, "fingerprintId is required for fingerprint method", nil)

	// Collaborator lookups
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found or inactive")
	case errors.Is(err, shift.ErrInvalidShift):
		BadRequest(w, "Invalid or inactive shift", nil)
	case errors.Is(err, device.ErrInvalidDevice):
		BadRequest(w, "Invalid or inactive device", nil)
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Report errors
	case errors.Is(err, report.ErrInvalidFormat):
		BadRequest(w, "format must be json, csv, excel or xlsx", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
