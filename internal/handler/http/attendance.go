package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/chamcong/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong/attendance-backend-go/internal/domain/auth"
	"github.com/chamcong/attendance-backend-go/internal/handler/http/response"
	"github.com/chamcong/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Methods(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	GetMyToday(w http.ResponseWriter, r *http.Request)
	GetMyStatistics(w http.ResponseWriter, r *http.Request)
	ClearField(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode check-in body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in successful", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode check-out body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out successful", result)
}

// Methods implements AttendanceHandler.
func (h *attendanceHandlerImpl) Methods(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.attendanceService.Methods())
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.RecordFilter{
		StartDate:     queryPtr(r, "startDate"),
		EndDate:       queryPtr(r, "endDate"),
		EmployeeID:    queryPtr(r, "employeeId"),
		DepartmentRef: queryPtr(r, "department"),
		ShiftCode:     queryPtr(r, "shiftCode"),
		Method:        queryPtr(r, "method"),
	}

	result, err := h.attendanceService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	employeeRef, err := auth.EmployeeRefFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetMyAttendance(
		r.Context(), employeeRef, queryPtr(r, "startDate"), queryPtr(r, "endDate"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyToday(w http.ResponseWriter, r *http.Request) {
	employeeRef, err := auth.EmployeeRefFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.TodayStatus(r.Context(), employeeRef)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyStatistics implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyStatistics(w http.ResponseWriter, r *http.Request) {
	employeeRef, err := auth.EmployeeRefFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	result, err := h.attendanceService.Statistics(r.Context(), employeeRef, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ClearField implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClearField(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid attendance record id", nil)
		return
	}
	field := r.URL.Query().Get("field")

	result, err := h.attendanceService.ClearField(r.Context(), id, field)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance field cleared", result)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid attendance record id", nil)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

// queryPtr returns the query value as a pointer, nil when absent.
func queryPtr(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}
