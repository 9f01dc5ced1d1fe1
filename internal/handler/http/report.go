package http

import (
	"log/slog"
	"net/http"

	"github.com/chamcong/attendance-backend-go/internal/domain/report"
	"github.com/chamcong/attendance-backend-go/internal/handler/http/response"
	"github.com/chamcong/attendance-backend-go/internal/pkg/export"
)

type ReportHandler interface {
	// Attendance report in json, csv or xlsx form
	GetAttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetAttendanceReport handles GET /attendance/report
func (h *reportHandlerImpl) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		format = "json"
	}
	switch format {
	case "json", "csv", "excel", "xlsx":
	default:
		response.HandleError(w, report.ErrInvalidFormat)
		return
	}

	filter := report.Filter{
		StartDate:     queryPtr(r, "startDate"),
		EndDate:       queryPtr(r, "endDate"),
		DepartmentRef: queryPtr(r, "department"),
		EmployeeID:    queryPtr(r, "employeeId"),
		Method:        queryPtr(r, "method"),
	}

	rows, err := h.reportService.Generate(ctx, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	switch format {
	case "csv":
		data, err := export.ReportCSV(rows)
		if err != nil {
			slog.Error("Failed to encode CSV report", "error", err)
			response.InternalServerError(w, "Failed to encode report")
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="attendance-report.csv"`)
		w.Write(data)
	case "excel", "xlsx":
		data, err := export.ReportExcel(rows)
		if err != nil {
			slog.Error("Failed to encode Excel report", "error", err)
			response.InternalServerError(w, "Failed to encode report")
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="attendance-report.xlsx"`)
		w.Write(data)
	default:
		response.Success(w, rows)
	}
}
