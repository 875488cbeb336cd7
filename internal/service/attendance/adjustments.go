package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/bayanihr/hrms-backend-go/internal/domain/attendance"
)

var minutesPerHour = decimal.NewFromInt(60)

// AdjustmentConfig holds the pay multipliers applied to attendance-derived
// hours. Multipliers are injected so different policies can coexist.
type AdjustmentConfig struct {
	OvertimeMultiplier decimal.Decimal
	HolidayMultiplier  decimal.Decimal
}

// DefaultAdjustmentConfig returns the company policy defaults: overtime at
// 125% of the hourly rate, regular-holiday work at 200%.
func DefaultAdjustmentConfig() AdjustmentConfig {
	return AdjustmentConfig{
		OvertimeMultiplier: decimal.NewFromFloat(1.25),
		HolidayMultiplier:  decimal.NewFromFloat(2.00),
	}
}

// Adjustments are the monetary figures a period's attendance rows reduce to.
type Adjustments struct {
	OvertimePay        decimal.Decimal
	HolidayPay         decimal.Decimal
	LateDeduction      decimal.Decimal
	UndertimeDeduction decimal.Decimal

	// BasicPayDays is the days-worked equivalent for basic salary
	// (days present plus paid-leave days).
	BasicPayDays int
}

// ComputeAdjustments reduces one employee's attendance rows for a pay period
// to overtime pay, holiday pay, late deduction and undertime deduction. It is
// a pure summation with no cross-record dependency, so record order never
// changes the result.
func ComputeAdjustments(records []attendance.Record, hourlyRate decimal.Decimal, cfg AdjustmentConfig) Adjustments {
	overtimeHours := decimal.Zero
	undertimeHours := decimal.Zero
	holidayHours := decimal.Zero
	lateMinutes := int64(0)
	basicPayDays := 0

	for _, rec := range records {
		if rec.HasOvertime() {
			overtimeHours = overtimeHours.Add(rec.OvertimeHours)
		}
		if rec.HasUndertime() {
			undertimeHours = undertimeHours.Add(rec.UndertimeHours)
		}
		if rec.IsLate() {
			lateMinutes += int64(rec.LateMinutes)
		}
		if rec.Status == attendance.StatusHolidayWorked {
			holidayHours = holidayHours.Add(rec.TotalHours)
		}
		if rec.IsBasicPayDay() {
			basicPayDays++
		}
	}

	lateHours := decimal.NewFromInt(lateMinutes).Div(minutesPerHour)

	return Adjustments{
		OvertimePay:        overtimeHours.Mul(hourlyRate).Mul(cfg.OvertimeMultiplier).Round(2),
		HolidayPay:         holidayHours.Mul(hourlyRate).Mul(cfg.HolidayMultiplier).Round(2),
		LateDeduction:      lateHours.Mul(hourlyRate).Round(2),
		UndertimeDeduction: undertimeHours.Mul(hourlyRate).Round(2),
		BasicPayDays:       basicPayDays,
	}
}
