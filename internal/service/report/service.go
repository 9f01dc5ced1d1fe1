package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/chamcong/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong/attendance-backend-go/internal/domain/department"
	"github.com/chamcong/attendance-backend-go/internal/domain/employee"
	"github.com/chamcong/attendance-backend-go/internal/domain/report"
)

type ServiceImpl struct {
	records     attendance.Repository
	employees   employee.Repository
	departments department.Repository
}

func NewReportService(
	records attendance.Repository,
	employees employee.Repository,
	departments department.Repository,
) report.Service {
	return &ServiceImpl{
		records:     records,
		employees:   employees,
		departments: departments,
	}
}

// Generate implements report.Service.
func (s *ServiceImpl) Generate(ctx context.Context, filter report.Filter) ([]report.Row, error) {
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
				return []report.Row{}, nil
			}
			return nil, err
		}
		resolved.EmployeeRef = &emp.ID
	}
	if filter.Method != nil && *filter.Method != "" {
		m := attendance.Method(*filter.Method)
		resolved.Method = &m
	}

	records, err := s.records.List(ctx, resolved)
	if err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}

	grouped := make(map[string]*report.Row)
	for _, rec := range records {
		row, ok := grouped[rec.EmployeeRef]
		if !ok {
			row = &report.Row{EmployeeID: rec.EmployeeID}
			s.resolveEmployee(ctx, rec, row)
			grouped[rec.EmployeeRef] = row
		}

		row.TotalRecords++
		if rec.CheckInTime != nil {
			row.CheckIns++
		}
		if rec.CheckOutTime != nil {
			row.CheckOuts++
		}
		if rec.WorkDuration != nil {
			row.TotalWorkMinutes += *rec.WorkDuration
		}
		switch rec.Status {
		case attendance.StatusLate:
			row.LateCount++
		case attendance.StatusEarlyLeave:
			row.EarlyLeaveCount++
		case attendance.StatusOnTime:
			row.OnTimeCount++
		}
		if isManualRecord(rec) {
			row.ManualCount++
		}
	}

	rows := make([]report.Row, 0, len(grouped))
	for _, row := range grouped {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].EmployeeID < rows[j].EmployeeID
	})
	return rows, nil
}

// resolveEmployee fills the row's name and department. A record whose
// employee has since been removed still reports under its stored code.
func (s *ServiceImpl) resolveEmployee(ctx context.Context, rec attendance.Record, row *report.Row) {
	emp, err := s.employees.GetByRef(ctx, rec.EmployeeRef)
	if err == nil {
		row.EmployeeID = emp.EmployeeID
		row.FullName = emp.FullName
	}
	if rec.DepartmentRef == "" {
		return
	}
	dept, err := s.departments.GetByRef(ctx, rec.DepartmentRef)
	if err == nil {
		row.Department = report.DepartmentInfo{Code: dept.Code, Name: dept.Name}
	}
}

// isManualRecord reports whether a record counts toward manualCount:
// either punch used a fallback method, or the fallback flag is set.
func isManualRecord(rec attendance.Record) bool {
	if rec.FallbackUsed {
		return true
	}
	if rec.CheckInMethod != nil && rec.CheckInMethod.IsFallback() {
		return true
	}
	if rec.CheckOutMethod != nil && rec.CheckOutMethod.IsFallback() {
		return true
	}
	return false
}
