package attendance

import (
	"time"

	"github.com/chamcong/attendance-backend-go/internal/pkg/clock"
	"github.com/chamcong/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// PunchRequest is the shared payload of check-in and check-out. The
// employee is identified by nfc_uid for the nfc method, by employee_id
// otherwise.
type PunchRequest struct {
	EmployeeID     string    `json:"employeeId"`
	NFCUID         string    `json:"nfcUid"`
	Method         Method    `json:"method"`
	ShiftCode      string    `json:"shiftCode"`
	DeviceCode     string    `json:"deviceCode"`
	Location       *Location `json:"location"`
	FallbackReason string    `json:"fallbackReason"`
	FingerprintID  string    `json:"fingerprintId"`
	PhotoBase64    string    `json:"photoBase64"`
}

func (r *PunchRequest) Validate() error {
	if !validator.IsInSlice(string(r.Method), AllowedMethods) {
		return ErrInvalidMethod
	}

	if r.Method == MethodFingerprint && validator.IsEmpty(r.FingerprintID) {
		return ErrFingerprintIDRequired
	}

	if validator.IsEmpty(r.EmployeeID) && validator.IsEmpty(r.NFCUID) {
		return validator.ValidationErrors{{
			Field:   "employeeId",
			Message: "employeeId or nfcUid is required",
		}}
	}

	return nil
}

type CheckInRequest struct {
	PunchRequest
}

type CheckOutRequest struct {
	PunchRequest
}

// RecordResponse is a Record plus display timestamps shifted to UTC+7.
type RecordResponse struct {
	ID                string    `json:"id"`
	EmployeeRef       string    `json:"employee"`
	EmployeeID        string    `json:"employeeId"`
	DepartmentRef     string    `json:"department"`
	ShiftRef          *string   `json:"shift,omitempty"`
	DeviceRef         *string   `json:"device,omitempty"`
	Date              string    `json:"date"`
	CheckInTime       *string   `json:"checkInTime,omitempty"`
	CheckOutTime      *string   `json:"checkOutTime,omitempty"`
	CheckInTimeLocal  *string   `json:"checkInTimeLocal,omitempty"`
	CheckOutTimeLocal *string   `json:"checkOutTimeLocal,omitempty"`
	CheckInMethod     *Method   `json:"checkInMethod,omitempty"`
	CheckOutMethod    *Method   `json:"checkOutMethod,omitempty"`
	CheckInMetadata   *Metadata `json:"checkInMetadata,omitempty"`
	CheckOutMetadata  *Metadata `json:"checkOutMetadata,omitempty"`
	CheckInPhoto      *string   `json:"checkInPhoto,omitempty"`
	CheckOutPhoto     *string   `json:"checkOutPhoto,omitempty"`
	CheckInLocation   *Location `json:"checkInLocation,omitempty"`
	CheckOutLocation  *Location `json:"checkOutLocation,omitempty"`
	FallbackUsed      bool      `json:"fallbackUsed"`
	FallbackReason    *string   `json:"fallbackReason,omitempty"`
	Status            Status    `json:"status"`
	WorkDuration      *int      `json:"workDuration,omitempty"`
	Notes             string    `json:"notes,omitempty"`
}

// NewRecordResponse maps a Record to its API shape.
func NewRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:                rec.ID,
		EmployeeRef:       rec.EmployeeRef,
		EmployeeID:        rec.EmployeeID,
		DepartmentRef:     rec.DepartmentRef,
		ShiftRef:          rec.ShiftRef,
		DeviceRef:         rec.DeviceRef,
		Date:              rec.Date,
		CheckInTime:       rfc3339Ptr(rec.CheckInTime),
		CheckOutTime:      rfc3339Ptr(rec.CheckOutTime),
		CheckInTimeLocal:  clock.ToLocalDisplay(rec.CheckInTime),
		CheckOutTimeLocal: clock.ToLocalDisplay(rec.CheckOutTime),
		CheckInMethod:     rec.CheckInMethod,
		CheckOutMethod:    rec.CheckOutMethod,
		CheckInMetadata:   rec.CheckInMetadata,
		CheckOutMetadata:  rec.CheckOutMetadata,
		CheckInPhoto:      rec.CheckInPhoto,
		CheckOutPhoto:     rec.CheckOutPhoto,
		CheckInLocation:   rec.CheckInLocation,
		CheckOutLocation:  rec.CheckOutLocation,
		FallbackUsed:      rec.FallbackUsed,
		FallbackReason:    rec.FallbackReason,
		Status:            rec.Status,
		WorkDuration:      rec.WorkDuration,
		Notes:             rec.Notes,
	}
}

// RecordFilter scopes record listings. Codes are resolved to refs by
// the service before hitting the store.
type RecordFilter struct {
	StartDate     *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate       *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	EmployeeID    *string `json:"employee_id,omitempty"`
	DepartmentRef *string `json:"department_id,omitempty"`
	ShiftCode     *string `json:"shift_code,omitempty"`
	Method        *string `json:"method,omitempty"`
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.Method != nil && !validator.IsInSlice(*f.Method, AllowedMethods) {
		errs = append(errs, validator.ValidationError{
			Field:   "method",
			Message: "method must be one of nfc, qr, manual, employee_id, fingerprint",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter is the resolved form of RecordFilter handed to the store.
type ListFilter struct {
	StartDate     *string
	EndDate       *string
	EmployeeRef   *string
	DepartmentRef *string
	ShiftRef      *string
	DeviceRef     *string
	Method        *Method
}

// Statistics summarizes one employee's attendance over a month.
type Statistics struct {
	TotalDays        int     `json:"totalDays"`
	LateDays         int     `json:"lateDays"`
	AverageWorkHours float64 `json:"averageWorkHours"`
	TotalWorkHours   float64 `json:"totalWorkHours"`
}

// MethodInfo documents one supported punch method.
type MethodInfo struct {
	Method       Method `json:"method"`
	RequiresAuth bool   `json:"requiresAuth"`
	Description  string `json:"description"`
}

// rfc3339Ptr safely formats a *time.Time as RFC3339 UTC.
func rfc3339Ptr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
