package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/chamcong/attendance-backend-go/internal/domain/attendance"
)

type fakeAttendanceService struct {
	clearedID string
	deletedID string
}

func (f *fakeAttendanceService) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	return attendance.RecordResponse{}, nil
}

func (f *fakeAttendanceService) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	return attendance.RecordResponse{}, nil
}

func (f *fakeAttendanceService) ListRecords(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) GetMyAttendance(ctx context.Context, employeeRef string, startDate, endDate *string) ([]attendance.RecordResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) TodayStatus(ctx context.Context, employeeRef string) (*attendance.RecordResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) Statistics(ctx context.Context, employeeRef string, month, year int) (attendance.Statistics, error) {
	return attendance.Statistics{}, nil
}

func (f *fakeAttendanceService) ClearField(ctx context.Context, id, field string) (attendance.RecordResponse, error) {
	f.clearedID = id
	return attendance.RecordResponse{ID: id}, nil
}

func (f *fakeAttendanceService) Delete(ctx context.Context, id string) error {
	f.deletedID = id
	return nil
}

func (f *fakeAttendanceService) Methods() []attendance.MethodInfo { return nil }

func attendanceRouter(svc attendance.Service) *chi.Mux {
	h := NewAttendanceHandler(svc)
	r := chi.NewRouter()
	r.Patch("/attendance/{id}/clear", h.ClearField)
	r.Delete("/attendance/{id}", h.Delete)
	return r
}

func TestClearField_RejectsMalformedID(t *testing.T) {
	svc := &fakeAttendanceService{}
	r := attendanceRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/attendance/not-a-uuid/clear?field=checkin", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.clearedID)
}

func TestClearField_AcceptsRecordID(t *testing.T) {
	svc := &fakeAttendanceService{}
	r := attendanceRouter(svc)
	id := uuid.Must(uuid.NewV7()).String()

	req := httptest.NewRequest(http.MethodPatch, "/attendance/"+id+"/clear?field=checkout", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, svc.clearedID)
}

func TestDelete_RejectsMalformedID(t *testing.T) {
	svc := &fakeAttendanceService{}
	r := attendanceRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/attendance/12345", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.deletedID)
}

func TestDelete_AcceptsRecordID(t *testing.T) {
	svc := &fakeAttendanceService{}
	r := attendanceRouter(svc)
	id := uuid.Must(uuid.NewV7()).String()

	req := httptest.NewRequest(http.MethodDelete, "/attendance/"+id, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, svc.deletedID)
}
