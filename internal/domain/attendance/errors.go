package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrInvalidMethod         = errors.New("invalid attendance method")
	ErrFingerprintIDRequired = errors.New("fingerprintId is required for fingerprint method")
	ErrAlreadyCheckedIn      = errors.New("already checked in today")
	ErrAlreadyCheckedOut     = errors.New("already checked out today")
	ErrNotCheckedIn          = errors.New("no check-in recorded today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
