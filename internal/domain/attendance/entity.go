package attendance

import (
	"math"
	"time"
)

// Method is the way a check-in or check-out was recorded.
type Method string

const (
	MethodNFC         Method = "nfc"
	MethodQR          Method = "qr"
	MethodManual      Method = "manual"
	MethodEmployeeID  Method = "employee_id"
	MethodFingerprint Method = "fingerprint"
)

var AllowedMethods = []string{
	string(MethodNFC),
	string(MethodQR),
	string(MethodManual),
	string(MethodEmployeeID),
	string(MethodFingerprint),
}

// IsFallback reports whether the method is a manual entry path used when
// biometric/QR/NFC methods are unavailable.
func (m Method) IsFallback() bool {
	return m == MethodManual || m == MethodEmployeeID
}

type Status string

const (
	StatusOnTime        Status = "on-time"
	StatusLate          Status = "late"
	StatusEarlyLeave    Status = "early-leave"
	StatusAbsent        Status = "absent"
	StatusPendingAdjust Status = "pending-adjust"
)

// Location is a geo/address snapshot captured at punch time.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Address   string  `bson:"address,omitempty" json:"address,omitempty"`
}

// Metadata carries method-specific payload. Only the fingerprint method
// requires anything here.
type Metadata struct {
	FingerprintID string `bson:"fingerprint_id,omitempty" json:"fingerprint_id,omitempty"`
}

// Record is the attendance document for one employee on one UTC+7
// calendar date. (EmployeeRef, Date) is unique.
type Record struct {
	ID               string     `bson:"_id,omitempty"`
	EmployeeRef      string     `bson:"employee_ref"`
	EmployeeID       string     `bson:"employee_id"`
	DepartmentRef    string     `bson:"department_ref"`
	ShiftRef         *string    `bson:"shift_ref,omitempty"`
	DeviceRef        *string    `bson:"device_ref,omitempty"`
	Date             string     `bson:"date"`
	CheckInTime      *time.Time `bson:"check_in_time,omitempty"`
	CheckOutTime     *time.Time `bson:"check_out_time,omitempty"`
	CheckInMethod    *Method    `bson:"check_in_method,omitempty"`
	CheckOutMethod   *Method    `bson:"check_out_method,omitempty"`
	CheckInMetadata  *Metadata  `bson:"check_in_metadata,omitempty"`
	CheckOutMetadata *Metadata  `bson:"check_out_metadata,omitempty"`
	CheckInPhoto     *string    `bson:"check_in_photo,omitempty"`
	CheckOutPhoto    *string    `bson:"check_out_photo,omitempty"`
	CheckInLocation  *Location  `bson:"check_in_location,omitempty"`
	CheckOutLocation *Location  `bson:"check_out_location,omitempty"`
	FallbackUsed     bool       `bson:"fallback_used"`
	FallbackReason   *string    `bson:"fallback_reason,omitempty"`
	Status           Status     `bson:"status"`
	WorkDuration     *int       `bson:"work_duration,omitempty"`
	Notes            string     `bson:"notes,omitempty"`
	CreatedAt        time.Time  `bson:"created_at"`
	UpdatedAt        time.Time  `bson:"updated_at"`
}

// RecomputeWorkDuration derives the work duration in whole minutes,
// rounded half away from zero. It is nil unless both times are set.
func (r *Record) RecomputeWorkDuration() {
	if r.CheckInTime == nil || r.CheckOutTime == nil {
		r.WorkDuration = nil
		return
	}
	mins := r.CheckOutTime.Sub(*r.CheckInTime).Minutes()
	v := int(math.Round(mins))
	r.WorkDuration = &v
}

// ClearCheckIn nulls every check-in side field.
func (r *Record) ClearCheckIn() {
	r.CheckInTime = nil
	r.CheckInMethod = nil
	r.CheckInMetadata = nil
	r.CheckInPhoto = nil
	r.CheckInLocation = nil
	r.RecomputeWorkDuration()
}

// ClearCheckOut nulls every check-out side field.
func (r *Record) ClearCheckOut() {
	r.CheckOutTime = nil
	r.CheckOutMethod = nil
	r.CheckOutMetadata = nil
	r.CheckOutPhoto = nil
	r.CheckOutLocation = nil
	r.RecomputeWorkDuration()
}
