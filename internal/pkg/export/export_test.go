package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/chamcong/attendance-backend-go/internal/domain/report"
)

func sampleRows() []report.Row {
	return []report.Row{
		{
			EmployeeID:       "EMP001",
			FullName:         `Nguyen, "A"`,
			Department:       report.DepartmentInfo{Code: "ENG", Name: "Engineering"},
			TotalRecords:     2,
			CheckIns:         2,
			CheckOuts:        1,
			TotalWorkMinutes: 665,
			LateCount:        1,
			EarlyLeaveCount:  0,
			OnTimeCount:      1,
			ManualCount:      1,
		},
		{
			EmployeeID: "EMP002",
			FullName:   "Tran Binh",
			Department: report.DepartmentInfo{Code: "OPS", Name: "Operations"},
		},
	}
}

func TestReportCSV_HeaderAndOrder(t *testing.T) {
	out, err := ReportCSV(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t,
		"employeeId,fullName,departmentCode,departmentName,totalRecords,checkIns,checkOuts,totalWorkMinutes,lateCount,earlyLeaveCount,onTimeCount,manualCount",
		lines[0])
}

func TestReportCSV_EscapingRoundTrip(t *testing.T) {
	out, err := ReportCSV(sampleRows())
	require.NoError(t, err)

	// A field with commas and quotes must be quoted with quotes doubled.
	assert.Contains(t, string(out), `"Nguyen, ""A"""`)

	// Round-trip through a standard CSV reader.
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, `Nguyen, "A"`, records[1][1])
	assert.Equal(t, "665", records[1][7])
	assert.Equal(t, "EMP002", records[2][0])
	assert.Equal(t, "0", records[2][4])
}

func TestReportExcel_SheetContents(t *testing.T) {
	out, err := ReportExcel(sampleRows())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Employee ID", rows[0][0])
	assert.Equal(t, "Manual Count", rows[0][11])
	assert.Equal(t, "EMP001", rows[1][0])
	assert.Equal(t, `Nguyen, "A"`, rows[1][1])
	assert.Equal(t, "665", rows[1][7])
	assert.Equal(t, "EMP002", rows[2][0])
}

func TestReportExcel_HeaderBold(t *testing.T) {
	out, err := ReportExcel(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	styleID, err := f.GetCellStyle(reportSheet, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
}
