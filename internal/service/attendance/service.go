package attendance

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/chamcong/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong/attendance-backend-go/internal/domain/device"
	"github.com/chamcong/attendance-backend-go/internal/domain/employee"
	"github.com/chamcong/attendance-backend-go/internal/domain/shift"
	"github.com/chamcong/attendance-backend-go/internal/pkg/clock"
	"github.com/chamcong/attendance-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	clk       clock.Clock
	records   attendance.Repository
	employees employee.Repository
	shifts    shift.Repository
	devices   device.Repository
}

func NewAttendanceService(
	clk clock.Clock,
	records attendance.Repository,
	employees employee.Repository,
	shifts shift.Repository,
	devices device.Repository,
) attendance.Service {
	return &ServiceImpl{
		clk:       clk,
		records:   records,
		employees: employees,
		shifts:    shifts,
		devices:   devices,
	}
}

// resolveEmployee finds the punching employee by NFC tag (nfc method) or
// employee code, and requires an active status.
func (s *ServiceImpl) resolveEmployee(ctx context.Context, req attendance.PunchRequest) (employee.Employee, error) {
	var emp employee.Employee
	var err error

	if req.Method == attendance.MethodNFC && req.NFCUID != "" {
		emp, err = s.employees.FindByNFCUID(ctx, req.NFCUID)
	} else {
		emp, err = s.employees.FindByEmployeeID(ctx, req.EmployeeID)
	}
	if err != nil {
		return employee.Employee{}, err
	}
	if emp.Status != employee.StatusActive {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// resolveAssociations looks up the optional shift and device codes.
// Absent codes leave the refs nil so prior values are preserved.
func (s *ServiceImpl) resolveAssociations(ctx context.Context, req attendance.PunchRequest) (shiftRef, deviceRef *string, err error) {
	if req.ShiftCode != "" {
		sh, err := s.shifts.FindActiveByCode(ctx, req.ShiftCode)
		if err != nil {
			return nil, nil, err
		}
		shiftRef = &sh.ID
	}
	if req.DeviceCode != "" {
		dev, err := s.devices.FindActiveByCode(ctx, req.DeviceCode)
		if err != nil {
			return nil, nil, err
		}
		deviceRef = &dev.ID
	}
	return shiftRef, deviceRef, nil
}

// CheckIn implements attendance.Service.
func (s *ServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.resolveEmployee(ctx, req.PunchRequest)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	shiftRef, deviceRef, err := s.resolveAssociations(ctx, req.PunchRequest)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.clk.Now()
	today := clock.DateOf(now)

	existing, err := s.records.FindByEmployeeAndDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("lookup today's record: %w", err)
	}
	if existing != nil && existing.CheckInTime != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	}

	var rec attendance.Record
	if existing != nil {
		rec = *existing
	} else {
		rec = attendance.Record{
			EmployeeRef:   emp.ID,
			EmployeeID:    emp.EmployeeID,
			DepartmentRef: emp.DepartmentRef,
			Date:          today,
			Status:        attendance.StatusOnTime,
		}
	}

	if shiftRef != nil {
		rec.ShiftRef = shiftRef
	}
	if deviceRef != nil {
		rec.DeviceRef = deviceRef
	}
	method := req.Method
	rec.CheckInTime = &now
	rec.CheckInMethod = &method
	if method == attendance.MethodFingerprint {
		rec.CheckInMetadata = &attendance.Metadata{FingerprintID: req.FingerprintID}
	}
	if req.PhotoBase64 != "" {
		photo := req.PhotoBase64
		rec.CheckInPhoto = &photo
	}
	rec.CheckInLocation = req.Location
	rec.FallbackUsed = method.IsFallback() || req.FallbackReason != ""
	if req.FallbackReason != "" {
		reason := req.FallbackReason
		rec.FallbackReason = &reason
	}
	rec.RecomputeWorkDuration()

	if existing != nil {
		if err := s.records.Update(ctx, rec); err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("update attendance record: %w", err)
		}
	} else {
		// The unique (employee, date) index is the concurrency guard: a
		// racing first check-in loses with ErrAlreadyCheckedIn here.
		rec, err = s.records.Create(ctx, rec)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
	}

	if err := s.employees.UpdateLastCheckIn(ctx, emp.ID, now); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("update employee last check-in: %w", err)
	}

	return attendance.NewRecordResponse(rec), nil
}

// CheckOut implements attendance.Service.
func (s *ServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.resolveEmployee(ctx, req.PunchRequest)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	shiftRef, deviceRef, err := s.resolveAssociations(ctx, req.PunchRequest)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.clk.Now()
	today := clock.DateOf(now)

	existing, err := s.records.FindByEmployeeAndDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("lookup today's record: %w", err)
	}
	if existing == nil || existing.CheckInTime == nil {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}
	if existing.CheckOutTime != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	rec := *existing
	if shiftRef != nil {
		rec.ShiftRef = shiftRef
	}
	if deviceRef != nil {
		rec.DeviceRef = deviceRef
	}
	method := req.Method
	rec.CheckOutTime = &now
	rec.CheckOutMethod = &method
	if method == attendance.MethodFingerprint {
		rec.CheckOutMetadata = &attendance.Metadata{FingerprintID: req.FingerprintID}
	}
	if req.PhotoBase64 != "" {
		photo := req.PhotoBase64
		rec.CheckOutPhoto = &photo
	}
	rec.CheckOutLocation = req.Location
	// fallbackUsed is monotonic once check-in set it.
	rec.FallbackUsed = rec.FallbackUsed || method.IsFallback() || req.FallbackReason != ""
	if req.FallbackReason != "" {
		reason := req.FallbackReason
		rec.FallbackReason = &reason
	}
	rec.RecomputeWorkDuration()

	if err := s.records.Update(ctx, rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("update attendance record: %w", err)
	}

	if err := s.employees.UpdateLastCheckOut(ctx, emp.ID, now); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("update employee last check-out: %w", err)
	}

	return attendance.NewRecordResponse(rec), nil
}

// ListRecords implements attendance.Service.
func (s *ServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	resolved := attendance.ListFilter{
		StartDate:     filter.StartDate,
		EndDate:       filter.EndDate,
		DepartmentRef: filter.DepartmentRef,
	}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		emp, err := s.employees.FindByEmployeeID(ctx, *filter.EmployeeID)
		if err != nil {
			if err == employee.ErrEmployeeNotFound {
				return []attendance.RecordResponse{}, nil
			}
			return nil, err
		}
		resolved.EmployeeRef = &emp.ID
	}
	if filter.ShiftCode != nil && *filter.ShiftCode != "" {
		sh, err := s.shifts.FindActiveByCode(ctx, *filter.ShiftCode)
		if err != nil {
			if err == shift.ErrInvalidShift {
				return []attendance.RecordResponse{}, nil
			}
			return nil, err
		}
		resolved.ShiftRef = &sh.ID
	}
	if filter.Method != nil && *filter.Method != "" {
		m := attendance.Method(*filter.Method)
		resolved.Method = &m
	}

	records, err := s.records.List(ctx, resolved)
	if err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewRecordResponse(rec))
	}
	return responses, nil
}

// GetMyAttendance implements attendance.Service.
func (s *ServiceImpl) GetMyAttendance(ctx context.Context, employeeRef string, startDate, endDate *string) ([]attendance.RecordResponse, error) {
	records, err := s.records.ListByEmployee(ctx, employeeRef, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list my attendance: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewRecordResponse(rec))
	}
	return responses, nil
}

// TodayStatus implements attendance.Service.
func (s *ServiceImpl) TodayStatus(ctx context.Context, employeeRef string) (*attendance.RecordResponse, error) {
	today := clock.Today(s.clk)
	rec, err := s.records.FindByEmployeeAndDate(ctx, employeeRef, today)
	if err != nil {
		return nil, fmt.Errorf("lookup today's record: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	resp := attendance.NewRecordResponse(*rec)
	return &resp, nil
}

// Statistics implements attendance.Service.
func (s *ServiceImpl) Statistics(ctx context.Context, employeeRef string, month, year int) (attendance.Statistics, error) {
	nowLocal := s.clk.Now().In(clock.Location)
	if month < 1 || month > 12 {
		month = int(nowLocal.Month())
	}
	if year == 0 {
		year = nowLocal.Year()
	}

	startDate := fmt.Sprintf("%04d-%02d-01", year, month)
	endDate := fmt.Sprintf("%04d-%02d-31", year, month)

	records, err := s.records.ListByEmployee(ctx, employeeRef, &startDate, &endDate)
	if err != nil {
		return attendance.Statistics{}, fmt.Errorf("list attendance for statistics: %w", err)
	}

	stats := attendance.Statistics{TotalDays: len(records)}
	totalWorkMinutes := 0
	withDuration := 0
	for _, rec := range records {
		if rec.Status == attendance.StatusLate {
			stats.LateDays++
		}
		if rec.WorkDuration != nil {
			totalWorkMinutes += *rec.WorkDuration
			withDuration++
		}
	}
	if withDuration > 0 {
		stats.AverageWorkHours = round2(float64(totalWorkMinutes) / float64(withDuration) / 60.0)
	}
	stats.TotalWorkHours = round2(float64(totalWorkMinutes) / 60.0)
	return stats, nil
}

// ClearField implements attendance.Service.
func (s *ServiceImpl) ClearField(ctx context.Context, id, field string) (attendance.RecordResponse, error) {
	field = strings.ToLower(field)
	if !validator.IsInSlice(field, []string{"checkin", "checkout"}) {
		return attendance.RecordResponse{}, validator.ValidationErrors{{
			Field:   "field",
			Message: "field must be checkin or checkout",
		}}
	}

	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if field == "checkin" {
		rec.ClearCheckIn()
	} else {
		rec.ClearCheckOut()
	}

	if err := s.records.Update(ctx, rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("update attendance record: %w", err)
	}
	return attendance.NewRecordResponse(rec), nil
}

// Delete implements attendance.Service.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}

// Methods implements attendance.Service.
func (s *ServiceImpl) Methods() []attendance.MethodInfo {
	return []attendance.MethodInfo{
		{Method: attendance.MethodQR, RequiresAuth: false, Description: "Quet ma QR (kiosk/public)"},
		{Method: attendance.MethodNFC, RequiresAuth: false, Description: "Quet the NFC (kiosk/public)"},
		{Method: attendance.MethodFingerprint, RequiresAuth: false, Description: "Cham cong van tay (kiosk/public)"},
		{Method: attendance.MethodEmployeeID, RequiresAuth: true, Description: "Nhap ma nhan vien thu cong (admin/manager)"},
		{Method: attendance.MethodManual, RequiresAuth: true, Description: "Ghi nhan thu cong co ly do (admin/manager)"},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
