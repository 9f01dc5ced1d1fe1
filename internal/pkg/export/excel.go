package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/chamcong/attendance-backend-go/internal/domain/report"
)

const reportSheet = "Attendance Report"

var excelColumns = []struct {
	Header string
	Width  float64
}{
	{"Employee ID", 15},
	{"Full Name", 25},
	{"Dept Code", 12},
	{"Dept Name", 20},
	{"Total Records", 15},
	{"Check-ins", 12},
	{"Check-outs", 12},
	{"Total Work Minutes", 18},
	{"Late", 8},
	{"Early Leave", 12},
	{"On Time", 10},
	{"Manual Count", 14},
}

// ReportExcel renders report rows as a single-sheet xlsx workbook with a
// bold header row and fixed column widths.
func ReportExcel(rows []report.Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(excelColumns))
	for i, col := range excelColumns {
		header[i] = col.Header
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(reportSheet, name, name, col.Width); err != nil {
			return nil, err
		}
	}
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return nil, err
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(excelColumns))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(reportSheet, "A1", lastCol+"1", boldStyle); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cells := []interface{}{
			row.EmployeeID,
			row.FullName,
			row.Department.Code,
			row.Department.Name,
			row.TotalRecords,
			row.CheckIns,
			row.CheckOuts,
			row.TotalWorkMinutes,
			row.LateCount,
			row.EarlyLeaveCount,
			row.OnTimeCount,
			row.ManualCount,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(reportSheet, cell, &cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
