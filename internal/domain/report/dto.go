package report

import (
	"github.com/chamcong/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE REPORT
// ========================================

// Filter scopes the aggregation window. All fields are optional.
type Filter struct {
	StartDate     *string `json:"start_date,omitempty"` // YYYY-MM-DD, inclusive
	EndDate       *string `json:"end_date,omitempty"`   // YYYY-MM-DD, inclusive
	DepartmentRef *string `json:"department_id,omitempty"`
	EmployeeID    *string `json:"employee_id,omitempty"`
	Method        *string `json:"method,omitempty"` // matches either punch side
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	var start, end *string
	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		} else {
			start = f.StartDate
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else {
			end = f.EndDate
		}
	}
	if start != nil && end != nil && *end < *start {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	if f.Method != nil && *f.Method != "" && !validator.IsInSlice(*f.Method, attendance.AllowedMethods) {
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

// DepartmentInfo is the denormalized department slice of a report row.
type DepartmentInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Row is one employee's aggregate over the report window. Rows are
// always sorted ascending by EmployeeID.
type Row struct {
	EmployeeID       string         `json:"employeeId"`
	FullName         string         `json:"fullName"`
	Department       DepartmentInfo `json:"department"`
	TotalRecords     int            `json:"totalRecords"`
	CheckIns         int            `json:"checkIns"`
	CheckOuts        int            `json:"checkOuts"`
	TotalWorkMinutes int            `json:"totalWorkMinutes"`
	LateCount        int            `json:"lateCount"`
	EarlyLeaveCount  int            `json:"earlyLeaveCount"`
	OnTimeCount      int            `json:"onTimeCount"`
	ManualCount      int            `json:"manualCount"`
}
