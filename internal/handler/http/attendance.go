package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bayanihr/hrms-backend-go/internal/domain/attendance"
	"github.com/bayanihr/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	BreakOut(w http.ResponseWriter, r *http.Request)
	BreakIn(w http.ResponseWriter, r *http.Request)
	UpsertManual(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *AttendanceHandlerImpl) clockAction(
	w http.ResponseWriter,
	r *http.Request,
	action func(r *http.Request, req attendance.ClockRequest) (attendance.RecordResponse, error),
	message string,
) {
	var req attendance.ClockRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Clock decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := action(r, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, record)
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	h.clockAction(w, r, func(r *http.Request, req attendance.ClockRequest) (attendance.RecordResponse, error) {
		return h.attendanceService.ClockIn(r.Context(), req)
	}, "Clocked in")
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	h.clockAction(w, r, func(r *http.Request, req attendance.ClockRequest) (attendance.RecordResponse, error) {
		return h.attendanceService.ClockOut(r.Context(), req)
	}, "Clocked out")
}

// BreakOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) BreakOut(w http.ResponseWriter, r *http.Request) {
	h.clockAction(w, r, func(r *http.Request, req attendance.ClockRequest) (attendance.RecordResponse, error) {
		return h.attendanceService.BreakOut(r.Context(), req)
	}, "Break started")
}

// BreakIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) BreakIn(w http.ResponseWriter, r *http.Request) {
	h.clockAction(w, r, func(r *http.Request, req attendance.ClockRequest) (attendance.RecordResponse, error) {
		return h.attendanceService.BreakIn(r.Context(), req)
	}, "Break ended")
}

// UpsertManual implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpsertManual(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Manual attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.UpsertManualRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record saved", record)
}

// Get implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.attendanceService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.Filter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("date_from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.DateFrom = &t
		}
	}
	if v := r.URL.Query().Get("date_to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.DateTo = &t
		}
	}

	result, err := h.attendanceService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, listMeta(result.Page, result.Limit, result.TotalCount))
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.DeleteRecord(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}
