package attendance

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bayanihr/hrms-backend-go/internal/domain/attendance"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func rec(status attendance.Status, overtime, undertime, total string, lateMin int) attendance.Record {
	return attendance.Record{
		Status:         status,
		OvertimeHours:  d(overtime),
		UndertimeHours: d(undertime),
		TotalHours:     d(total),
		LateMinutes:    lateMin,
	}
}

func TestComputeAdjustments_Overtime(t *testing.T) {
	t.Parallel()

	records := []attendance.Record{
		rec(attendance.StatusOvertime, "2", "0", "10", 0),
		rec(attendance.StatusLateOvertime, "1", "0", "9", 20),
	}

	// 3h overtime at 125/h with 1.25 multiplier
	got := ComputeAdjustments(records, d("125"), DefaultAdjustmentConfig())
	assert.True(t, got.OvertimePay.Equal(d("468.75")), "overtime pay = %s", got.OvertimePay)
	assert.Equal(t, 2, got.BasicPayDays)
}

func TestComputeAdjustments_LateAndUndertime(t *testing.T) {
	t.Parallel()

	records := []attendance.Record{
		rec(attendance.StatusLate, "0", "0", "8", 30),
		rec(attendance.StatusLateUndertime, "0", "1.5", "6.5", 30),
		rec(attendance.StatusUndertime, "0", "0.5", "7.5", 0),
		rec(attendance.StatusPresent, "0", "0", "8", 0),
	}

	got := ComputeAdjustments(records, d("100"), DefaultAdjustmentConfig())

	// 60 late minutes = 1 hour
	assert.True(t, got.LateDeduction.Equal(d("100")), "late deduction = %s", got.LateDeduction)
	assert.True(t, got.UndertimeDeduction.Equal(d("200")), "undertime deduction = %s", got.UndertimeDeduction)
	assert.True(t, got.OvertimePay.IsZero())
	assert.Equal(t, 4, got.BasicPayDays)
}

func TestComputeAdjustments_HolidayAndLeave(t *testing.T) {
	t.Parallel()

	records := []attendance.Record{
		rec(attendance.StatusHolidayWorked, "0", "0", "8", 0),
		rec(attendance.StatusHolidayNoWork, "0", "0", "0", 0),
		rec(attendance.StatusOnLeave, "0", "0", "0", 0),
		rec(attendance.StatusAbsent, "0", "0", "0", 0),
	}

	got := ComputeAdjustments(records, d("100"), DefaultAdjustmentConfig())

	// 8h at 100/h double pay; nothing else moves money
	assert.True(t, got.HolidayPay.Equal(d("1600")), "holiday pay = %s", got.HolidayPay)
	assert.True(t, got.OvertimePay.IsZero())
	assert.True(t, got.LateDeduction.IsZero())
	assert.True(t, got.UndertimeDeduction.IsZero())

	// leave counts toward basic pay, holiday-worked is paid via its multiplier
	assert.Equal(t, 1, got.BasicPayDays)
}

func TestComputeAdjustments_IgnoresHoursOnNonQualifyingStatuses(t *testing.T) {
	t.Parallel()

	// Overtime hours recorded on a day whose status never qualified as
	// overtime must not be paid.
	records := []attendance.Record{
		rec(attendance.StatusPresent, "2", "0", "8", 0),
		rec(attendance.StatusUndertime, "1", "0.5", "7.5", 0),
	}

	got := ComputeAdjustments(records, d("100"), DefaultAdjustmentConfig())
	assert.True(t, got.OvertimePay.IsZero())
	assert.True(t, got.UndertimeDeduction.Equal(d("50")))
}

func TestComputeAdjustments_OrderIndependence(t *testing.T) {
	t.Parallel()

	records := []attendance.Record{
		rec(attendance.StatusOvertime, "1.5", "0", "9.5", 0),
		rec(attendance.StatusLateOvertime, "0.25", "0", "8.25", 45),
		rec(attendance.StatusLateUndertime, "0", "2", "6", 15),
		rec(attendance.StatusUndertime, "0", "0.75", "7.25", 0),
		rec(attendance.StatusHolidayWorked, "0", "0", "4", 0),
		rec(attendance.StatusOnLeave, "0", "0", "0", 0),
		rec(attendance.StatusPresent, "0", "0", "8", 0),
		rec(attendance.StatusAbsent, "0", "0", "0", 0),
	}

	rate := d("123.45")
	cfg := DefaultAdjustmentConfig()
	want := ComputeAdjustments(records, rate, cfg)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 25; i++ {
		shuffled := make([]attendance.Record, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := ComputeAdjustments(shuffled, rate, cfg)
		assert.True(t, got.OvertimePay.Equal(want.OvertimePay))
		assert.True(t, got.HolidayPay.Equal(want.HolidayPay))
		assert.True(t, got.LateDeduction.Equal(want.LateDeduction))
		assert.True(t, got.UndertimeDeduction.Equal(want.UndertimeDeduction))
		assert.Equal(t, want.BasicPayDays, got.BasicPayDays)
	}
}

func TestComputeAdjustments_EmptyRecords(t *testing.T) {
	t.Parallel()

	got := ComputeAdjustments(nil, d("100"), DefaultAdjustmentConfig())
	assert.True(t, got.OvertimePay.IsZero())
	assert.True(t, got.HolidayPay.IsZero())
	assert.True(t, got.LateDeduction.IsZero())
	assert.True(t, got.UndertimeDeduction.IsZero())
	assert.Equal(t, 0, got.BasicPayDays)
}
