package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bayanihr/hrms-backend-go/internal/domain/attendance"
	"github.com/bayanihr/hrms-backend-go/internal/domain/employee"
	"github.com/bayanihr/hrms-backend-go/internal/pkg/database"
)

// ScheduleConfig is the standard work day against which clock events are
// classified.
type ScheduleConfig struct {
	WorkStart     string // "HH:MM", local time
	WorkEnd       string
	GraceMinutes  int
	RequiredHours decimal.Decimal
}

func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		WorkStart:     "09:00",
		WorkEnd:       "18:00",
		GraceMinutes:  10,
		RequiredHours: decimal.NewFromInt(8),
	}
}

type ServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	schedule       ScheduleConfig
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	schedule ScheduleConfig,
) attendance.Service {
	return &ServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		schedule:       schedule,
	}
}

func (s *ServiceImpl) ClockIn(ctx context.Context, req attendance.ClockRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if emp.Status != employee.StatusActive {
		return attendance.RecordResponse{}, employee.ErrEmployeeInactive
	}

	at := s.eventTime(req)
	date := dateOnly(at)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if existing != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyClockedIn
	}

	record := attendance.Record{
		EmployeeID: emp.ID,
		Date:       date,
		ClockIn:    &at,
		Status:     attendance.StatusPresent,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapToRecordResponse(created), nil
}

func (s *ServiceImpl) ClockOut(ctx context.Context, req attendance.ClockRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	at := s.eventTime(req)

	record, err := s.openRecord(ctx, req.EmployeeID, at)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if record.ClockOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyClockedOut
	}

	record.ClockOut = &at
	s.closeDay(record)

	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapToRecordResponse(*record), nil
}

func (s *ServiceImpl) BreakOut(ctx context.Context, req attendance.ClockRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	at := s.eventTime(req)

	record, err := s.openRecord(ctx, req.EmployeeID, at)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if record.BreakOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyOnBreak
	}

	record.BreakOut = &at
	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapToRecordResponse(*record), nil
}

func (s *ServiceImpl) BreakIn(ctx context.Context, req attendance.ClockRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	at := s.eventTime(req)

	record, err := s.openRecord(ctx, req.EmployeeID, at)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if record.BreakOut == nil {
		return attendance.RecordResponse{}, attendance.ErrNotOnBreak
	}

	record.BreakIn = &at
	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapToRecordResponse(*record), nil
}

func (s *ServiceImpl) UpsertManualRecord(ctx context.Context, req attendance.ManualRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	record := attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
	}
	if req.ClockIn != nil {
		if t, err := time.Parse(time.RFC3339, *req.ClockIn); err == nil {
			record.ClockIn = &t
		}
	}
	if req.ClockOut != nil {
		if t, err := time.Parse(time.RFC3339, *req.ClockOut); err == nil {
			record.ClockOut = &t
		}
	}
	if req.TotalHours != nil {
		record.TotalHours = *req.TotalHours
	}
	if req.OvertimeHours != nil {
		record.OvertimeHours = *req.OvertimeHours
	}
	if req.UndertimeHours != nil {
		record.UndertimeHours = *req.UndertimeHours
	}
	if req.LateMinutes != nil {
		record.LateMinutes = *req.LateMinutes
	}

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if existing != nil {
		record.ID = existing.ID
		if err := s.attendanceRepo.Update(ctx, record); err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
		}
		return mapToRecordResponse(record), nil
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return mapToRecordResponse(created), nil
}

func (s *ServiceImpl) GetRecord(ctx context.Context, id string) (attendance.RecordResponse, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return mapToRecordResponse(record), nil
}

func (s *ServiceImpl) ListRecords(ctx context.Context, filter attendance.Filter) (attendance.ListRecordResponse, error) {
	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordResponse{}, err
	}

	result := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}

	return attendance.ListRecordResponse{
		Data:       result,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *ServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// ========== HELPERS ==========

func (s *ServiceImpl) eventTime(req attendance.ClockRequest) time.Time {
	if req.At != nil {
		if t, err := time.Parse(time.RFC3339, *req.At); err == nil {
			return t
		}
	}
	return time.Now()
}

func (s *ServiceImpl) openRecord(ctx context.Context, employeeID string, at time.Time) (*attendance.Record, error) {
	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, dateOnly(at))
	if err != nil {
		return nil, err
	}
	if record == nil || record.ClockIn == nil {
		return nil, attendance.ErrNotClockedIn
	}
	return record, nil
}

// closeDay derives the final status and hour totals from the day's clock
// events against the standard schedule.
func (s *ServiceImpl) closeDay(record *attendance.Record) {
	workStart := atClock(record.Date, s.schedule.WorkStart)
	grace := workStart.Add(time.Duration(s.schedule.GraceMinutes) * time.Minute)

	late := record.ClockIn.After(grace)
	if late {
		record.LateMinutes = int(record.ClockIn.Sub(workStart).Minutes())
	}

	worked := record.ClockOut.Sub(*record.ClockIn)
	if record.BreakOut != nil && record.BreakIn != nil {
		worked -= record.BreakIn.Sub(*record.BreakOut)
	}
	if worked < 0 {
		worked = 0
	}

	totalHours := decimal.NewFromFloat(worked.Hours()).Round(2)
	record.TotalHours = totalHours

	switch {
	case totalHours.GreaterThan(s.schedule.RequiredHours):
		record.OvertimeHours = totalHours.Sub(s.schedule.RequiredHours)
		if late {
			record.Status = attendance.StatusLateOvertime
		} else {
			record.Status = attendance.StatusOvertime
		}
	case totalHours.LessThan(s.schedule.RequiredHours):
		record.UndertimeHours = s.schedule.RequiredHours.Sub(totalHours)
		if late {
			record.Status = attendance.StatusLateUndertime
		} else {
			record.Status = attendance.StatusUndertime
		}
	default:
		if late {
			record.Status = attendance.StatusLate
		} else {
			record.Status = attendance.StatusPresent
		}
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func atClock(date time.Time, clock string) time.Time {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		parsed, _ = time.Parse("15:04", "09:00")
	}
	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, date.Location())
}

func mapToRecordResponse(r attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		EmployeeName:   r.EmployeeName,
		Date:           r.Date.Format("2006-01-02"),
		TotalHours:     r.TotalHours,
		OvertimeHours:  r.OvertimeHours,
		UndertimeHours: r.UndertimeHours,
		LateMinutes:    r.LateMinutes,
		Status:         string(r.Status),
	}
	resp.ClockIn = formatTimePtr(r.ClockIn)
	resp.ClockOut = formatTimePtr(r.ClockOut)
	resp.BreakOut = formatTimePtr(r.BreakOut)
	resp.BreakIn = formatTimePtr(r.BreakIn)
	return resp
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	str := t.Format(time.RFC3339)
	return &str
}
