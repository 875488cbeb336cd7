package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayanihr/hrms-backend-go/internal/domain/attendance"
	"github.com/bayanihr/hrms-backend-go/internal/domain/employee"
)

// fakeAttendanceRepo keys records by (employeeID, date).
type fakeAttendanceRepo struct {
	records map[string]attendance.Record
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	f.nextID++
	record.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records[dayKey(record.EmployeeID, record.Date)] = record
	return record, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	rec, ok := f.records[dayKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeAttendanceRepo) ListByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(periodStart) && !rec.Date.After(periodEnd) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, record attendance.Record) error {
	key := dayKey(record.EmployeeID, record.Date)
	if _, ok := f.records[key]; !ok {
		return attendance.ErrRecordNotFound
	}
	f.records[key] = record
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	for key, rec := range f.records {
		if rec.ID == id {
			delete(f.records, key)
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

// fakeEmployeeRepo holds a fixed set of employees.
type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeCode == code {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.Status == employee.StatusActive {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, id := range ids {
		if emp, ok := f.employees[id]; ok {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) SoftDelete(ctx context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func newTestService() attendance.Service {
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", EmployeeCode: "EMP-0001", Status: employee.StatusActive, MonthlyRate: d("22000")},
		"emp-2": {ID: "emp-2", EmployeeCode: "EMP-0002", Status: employee.StatusResigned, MonthlyRate: d("22000")},
	}}
	return NewAttendanceService(nil, newFakeAttendanceRepo(), employees, DefaultScheduleConfig())
}

func at(s string) *string {
	return &s
}

func TestClockLifecycle_FullDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	// In at 09:05 (within the 10-minute grace), one-hour break, out at
	// 18:05: exactly the eight required hours.
	_, err := svc.ClockIn(ctx, attendance.ClockRequest{EmployeeID: "emp-1", At: at("2025-08-18T09:05:00+08:00")})
	require.NoError(t, err)

	_, err = svc.BreakOut(ctx, attendance.ClockRequest{EmployeeID: "emp-1", At: at("2025-08-18T12:00:00+08:00")})
	require.NoError(t, err)

	_, err = svc.BreakIn(ctx, attendance.ClockRequest{EmployeeID: "emp-1", At: at("2025-08-18T13:00:00+08:00")})
	require.NoError(t, err)

	closed, err := svc.ClockOut(ctx, attendance.ClockRequest{EmployeeID: "emp-1", At: at("2025-08-18T18:05:00+08:00")})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusPresent), closed.Status)
	assert.True(t, closed.TotalHours.Equal(d("8")), "total hours: %s", closed.TotalHours)
	assert.Equal(t, 0, closed.LateMinutes)
	assert.True(t, closed.OvertimeHours.IsZero())
	assert.True(t, closed.UndertimeHours.IsZero())
}

func TestClockOut_LateOvertime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.ClockIn(ctx, attendance.ClockRequest{EmployeeID: "emp-1", At: at("2025-08-18T09:30:00+08:00")})
	require.NoError(t, err)

	closed, err := svc.ClockOut(ctx, attendance.ClockRequest{EmployeeID: "emp-1", At: at("2025-08-18T19:30:00+08:00")})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusLateOvertime), closed.Status)
	assert.Equal(t, 30, closed.LateMinutes)
	assert.True(t, closed.OvertimeHours.Equal(d("2")), "overtime hours: %s", closed.OvertimeHours)
}

func TestClockOut_Undertime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.ClockIn(ctx, attendance.ClockRequest{EmployeeID: "emp-1", At: at("2025-08-18T09:00:00+08:00")})
	require.NoError(t, err)

	closed, err := svc.ClockOut(ctx, attendance.ClockRequest{EmployeeID: "emp-1", At: at("2025-08-18T16:00:00+08:00")})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusUndertime), closed.Status)
	assert.True(t, closed.UndertimeHours.Equal(d("1")), "undertime hours: %s", closed.UndertimeHours)
}

func TestClockIn_Twice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.ClockIn(ctx, attendance.ClockRequest{EmployeeID: "emp-1", At: at("2025-08-18T09:00:00+08:00")})
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, attendance.ClockRequest{EmployeeID: "emp-1", At: at("2025-08-18T09:10:00+08:00")})
	require.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockOut_WithoutClockIn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.ClockOut(ctx, attendance.ClockRequest{EmployeeID: "emp-1", At: at("2025-08-18T18:00:00+08:00")})
	require.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestBreakIn_WithoutBreakOut(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.ClockIn(ctx, attendance.ClockRequest{EmployeeID: "emp-1", At: at("2025-08-18T09:00:00+08:00")})
	require.NoError(t, err)

	_, err = svc.BreakIn(ctx, attendance.ClockRequest{EmployeeID: "emp-1", At: at("2025-08-18T13:00:00+08:00")})
	require.ErrorIs(t, err, attendance.ErrNotOnBreak)
}

func TestClockIn_InactiveEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.ClockIn(ctx, attendance.ClockRequest{EmployeeID: "emp-2", At: at("2025-08-18T09:00:00+08:00")})
	require.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestUpsertManualRecord_CreateThenCorrect(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	hours := d("8")
	created, err := svc.UpsertManualRecord(ctx, attendance.ManualRecordRequest{
		EmployeeID: "emp-1",
		Date:       "2025-08-18",
		Status:     string(attendance.StatusOnLeave),
		TotalHours: &hours,
	})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusOnLeave), created.Status)

	corrected, err := svc.UpsertManualRecord(ctx, attendance.ManualRecordRequest{
		EmployeeID: "emp-1",
		Date:       "2025-08-18",
		Status:     string(attendance.StatusHolidayWorked),
		TotalHours: &hours,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, corrected.ID)
	assert.Equal(t, string(attendance.StatusHolidayWorked), corrected.Status)
}

func TestUpsertManualRecord_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.UpsertManualRecord(ctx, attendance.ManualRecordRequest{
		EmployeeID: "emp-1",
		Date:       "2025-08-18",
		Status:     "Vacationing",
	})
	require.Error(t, err)
}
