package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamcong/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong/attendance-backend-go/internal/domain/department"
	"github.com/chamcong/attendance-backend-go/internal/domain/employee"
	"github.com/chamcong/attendance-backend-go/internal/domain/report"
	"github.com/chamcong/attendance-backend-go/internal/pkg/validator"
)

type fakeRecordRepo struct{ records []attendance.Record }

func (r *fakeRecordRepo) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *fakeRecordRepo) GetByID(_ context.Context, id string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrAttendanceNotFound
}

func (r *fakeRecordRepo) FindByEmployeeAndDate(_ context.Context, employeeRef, date string) (*attendance.Record, error) {
	return nil, nil
}

func (r *fakeRecordRepo) Update(_ context.Context, rec attendance.Record) error { return nil }
func (r *fakeRecordRepo) Delete(_ context.Context, id string) error             { return nil }

func (r *fakeRecordRepo) List(_ context.Context, filter attendance.ListFilter) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range r.records {
		if filter.EmployeeRef != nil && rec.EmployeeRef != *filter.EmployeeRef {
			continue
		}
		if filter.DepartmentRef != nil && rec.DepartmentRef != *filter.DepartmentRef {
			continue
		}
		if filter.StartDate != nil && rec.Date < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && rec.Date > *filter.EndDate {
			continue
		}
		if filter.Method != nil {
			inMatch := rec.CheckInMethod != nil && *rec.CheckInMethod == *filter.Method
			outMatch := rec.CheckOutMethod != nil && *rec.CheckOutMethod == *filter.Method
			if !inMatch && !outMatch {
				continue
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *fakeRecordRepo) ListByEmployee(_ context.Context, employeeRef string, startDate, endDate *string) ([]attendance.Record, error) {
	return r.List(context.Background(), attendance.ListFilter{
		EmployeeRef: &employeeRef,
		StartDate:   startDate,
		EndDate:     endDate,
	})
}

type fakeEmployeeRepo struct{ byRef map[string]employee.Employee }

func (r *fakeEmployeeRepo) FindByEmployeeID(_ context.Context, employeeID string) (employee.Employee, error) {
	for _, e := range r.byRef {
		if e.EmployeeID == employeeID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) FindByNFCUID(_ context.Context, nfcUID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByRef(_ context.Context, ref string) (employee.Employee, error) {
	e, ok := r.byRef[ref]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) UpdateLastCheckIn(_ context.Context, ref string, at time.Time) error {
	return nil
}

func (r *fakeEmployeeRepo) UpdateLastCheckOut(_ context.Context, ref string, at time.Time) error {
	return nil
}

type fakeDepartmentRepo struct{ byRef map[string]department.Department }

func (r *fakeDepartmentRepo) GetByRef(_ context.Context, ref string) (department.Department, error) {
	d, ok := r.byRef[ref]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return d, nil
}

func ts(hour int) *time.Time {
	t := time.Date(2024, 3, 15, hour, 0, 0, 0, time.UTC)
	return &t
}

func methodPtr(m attendance.Method) *attendance.Method { return &m }

func minutes(v int) *int { return &v }

func fixtures() (*fakeRecordRepo, *fakeEmployeeRepo, *fakeDepartmentRepo) {
	records := &fakeRecordRepo{records: []attendance.Record{
		{
			EmployeeRef: "ref-b", EmployeeID: "EMP002", DepartmentRef: "dept-1",
			Date:           "2024-03-14",
			CheckInTime:    ts(1),
			CheckOutTime:   ts(10),
			CheckInMethod:  methodPtr(attendance.MethodQR),
			CheckOutMethod: methodPtr(attendance.MethodQR),
			Status:         attendance.StatusOnTime,
			WorkDuration:   minutes(540),
		},
		{
			EmployeeRef: "ref-a", EmployeeID: "EMP001", DepartmentRef: "dept-1",
			Date:           "2024-03-14",
			CheckInTime:    ts(2),
			CheckOutTime:   ts(10),
			CheckInMethod:  methodPtr(attendance.MethodManual),
			CheckOutMethod: methodPtr(attendance.MethodQR),
			FallbackUsed:   true,
			Status:         attendance.StatusLate,
			WorkDuration:   minutes(480),
		},
		{
			EmployeeRef: "ref-a", EmployeeID: "EMP001", DepartmentRef: "dept-1",
			Date:          "2024-03-15",
			CheckInTime:   ts(1),
			CheckInMethod: methodPtr(attendance.MethodNFC),
			Status:        attendance.StatusOnTime,
		},
	}}
	employees := &fakeEmployeeRepo{byRef: map[string]employee.Employee{
		"ref-a": {ID: "ref-a", EmployeeID: "EMP001", FullName: "Nguyen Van A", DepartmentRef: "dept-1"},
		"ref-b": {ID: "ref-b", EmployeeID: "EMP002", FullName: "Tran Thi B", DepartmentRef: "dept-1"},
	}}
	departments := &fakeDepartmentRepo{byRef: map[string]department.Department{
		"dept-1": {ID: "dept-1", Code: "ENG", Name: "Engineering"},
	}}
	return records, employees, departments
}

func TestGenerate_GroupsAndSortsByEmployeeID(t *testing.T) {
	svc := NewReportService(fixtures())

	rows, err := svc.Generate(context.Background(), report.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "EMP001", rows[0].EmployeeID)
	assert.Equal(t, "EMP002", rows[1].EmployeeID)

	a := rows[0]
	assert.Equal(t, "Nguyen Van A", a.FullName)
	assert.Equal(t, report.DepartmentInfo{Code: "ENG", Name: "Engineering"}, a.Department)
	assert.Equal(t, 2, a.TotalRecords)
	assert.Equal(t, 2, a.CheckIns)
	assert.Equal(t, 1, a.CheckOuts)
	assert.Equal(t, 480, a.TotalWorkMinutes)
	assert.Equal(t, 1, a.LateCount)
	assert.Equal(t, 1, a.OnTimeCount)
	assert.Equal(t, 0, a.EarlyLeaveCount)
	assert.Equal(t, 1, a.ManualCount)

	b := rows[1]
	assert.Equal(t, 1, b.TotalRecords)
	assert.Equal(t, 540, b.TotalWorkMinutes)
	assert.Equal(t, 0, b.ManualCount)
}

func TestGenerate_NilDurationCountsAsZero(t *testing.T) {
	records := &fakeRecordRepo{records: []attendance.Record{
		{EmployeeRef: "ref-a", EmployeeID: "EMP001", CheckInTime: ts(1), Status: attendance.StatusOnTime},
	}}
	_, employees, departments := fixtures()
	svc := NewReportService(records, employees, departments)

	rows, err := svc.Generate(context.Background(), report.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].TotalWorkMinutes)
}

func TestGenerate_EmployeeFilter(t *testing.T) {
	svc := NewReportService(fixtures())

	empID := "EMP002"
	rows, err := svc.Generate(context.Background(), report.Filter{EmployeeID: &empID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "EMP002", rows[0].EmployeeID)
}

func TestGenerate_UnknownEmployeeFilterIsEmpty(t *testing.T) {
	svc := NewReportService(fixtures())

	empID := "EMP999"
	rows, err := svc.Generate(context.Background(), report.Filter{EmployeeID: &empID})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGenerate_DateWindow(t *testing.T) {
	svc := NewReportService(fixtures())

	start, end := "2024-03-15", "2024-03-15"
	rows, err := svc.Generate(context.Background(), report.Filter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "EMP001", rows[0].EmployeeID)
	assert.Equal(t, 1, rows[0].TotalRecords)
}

func TestGenerate_MethodMatchesEitherSide(t *testing.T) {
	svc := NewReportService(fixtures())

	method := "manual"
	rows, err := svc.Generate(context.Background(), report.Filter{Method: &method})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "EMP001", rows[0].EmployeeID)
}

func TestGenerate_InvalidWindowRejected(t *testing.T) {
	svc := NewReportService(fixtures())

	start, end := "2024-03-15", "2024-03-01"
	_, err := svc.Generate(context.Background(), report.Filter{StartDate: &start, EndDate: &end})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "end_date")
}
