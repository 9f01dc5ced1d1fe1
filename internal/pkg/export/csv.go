package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/chamcong/attendance-backend-go/internal/domain/report"
)

// csvHeader is the fixed 12-column order of the report export.
var csvHeader = []string{
	"employeeId",
	"fullName",
	"departmentCode",
	"departmentName",
	"totalRecords",
	"checkIns",
	"checkOuts",
	"totalWorkMinutes",
	"lateCount",
	"earlyLeaveCount",
	"onTimeCount",
	"manualCount",
}

// ReportCSV renders report rows as CSV: header first, LF-separated,
// fields quoted only when they contain a comma, quote or newline.
func ReportCSV(rows []report.Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			row.EmployeeID,
			row.FullName,
			row.Department.Code,
			row.Department.Name,
			strconv.Itoa(row.TotalRecords),
			strconv.Itoa(row.CheckIns),
			strconv.Itoa(row.CheckOuts),
			strconv.Itoa(row.TotalWorkMinutes),
			strconv.Itoa(row.LateCount),
			strconv.Itoa(row.EarlyLeaveCount),
			strconv.Itoa(row.OnTimeCount),
			strconv.Itoa(row.ManualCount),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
