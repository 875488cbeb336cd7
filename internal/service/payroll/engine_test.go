package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendanceDomain "github.com/bayanihr/hrms-backend-go/internal/domain/attendance"
	"github.com/bayanihr/hrms-backend-go/internal/domain/cashadvance"
	"github.com/bayanihr/hrms-backend-go/internal/domain/compensation"
	"github.com/bayanihr/hrms-backend-go/internal/domain/employee"
	"github.com/bayanihr/hrms-backend-go/internal/domain/payroll"
	"github.com/bayanihr/hrms-backend-go/internal/service/contribution"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func testEngine() *Engine {
	return NewEngine(contribution.NewCalculator(contribution.Default2025()), DefaultEngineConfig())
}

// testEmployee earns 22,000/month, which derives to 1,000/day and 125/hour.
func testEmployee() employee.Employee {
	return employee.Employee{
		ID:           "emp-1",
		EmployeeCode: "EMP-0001",
		FullName:     "Juan Dela Cruz",
		MonthlyRate:  d("22000"),
		Status:       employee.StatusActive,
	}
}

func testPeriod() payroll.Period {
	return payroll.Period{
		ID:          "period-1",
		Name:        "August 2025",
		PeriodStart: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
	}
}

// testAttendance yields 13 basic pay days, 2 overtime hours, 8 holiday hours,
// 30 late minutes and 1 undertime hour.
func testAttendance() []attendanceDomain.Record {
	records := make([]attendanceDomain.Record, 0, 15)
	for i := 0; i < 10; i++ {
		records = append(records, attendanceDomain.Record{
			EmployeeID: "emp-1",
			Date:       time.Date(2025, 8, 1+i, 0, 0, 0, 0, time.UTC),
			Status:     attendanceDomain.StatusPresent,
			TotalHours: d("8"),
		})
	}
	records = append(records,
		attendanceDomain.Record{
			Status:        attendanceDomain.StatusOvertime,
			TotalHours:    d("10"),
			OvertimeHours: d("2"),
		},
		attendanceDomain.Record{
			Status:      attendanceDomain.StatusLate,
			TotalHours:  d("7.5"),
			LateMinutes: 30,
		},
		attendanceDomain.Record{
			Status:         attendanceDomain.StatusUndertime,
			TotalHours:     d("7"),
			UndertimeHours: d("1"),
		},
		attendanceDomain.Record{
			Status:     attendanceDomain.StatusHolidayWorked,
			TotalHours: d("8"),
		},
		attendanceDomain.Record{
			Status: attendanceDomain.StatusAbsent,
		},
	)
	return records
}

func fixedTaxAssignment(rate string, active bool) compensation.TaxAssignment {
	return compensation.TaxAssignment{
		ID:       "tax-assign-1",
		IsActive: active,
		Title: &compensation.TaxTitle{
			ID:   "tax-1",
			Name: "Withholding Tax",
			Type: compensation.TaxTitleTypeFixed,
			Rate: d(rate),
		},
	}
}

func TestGenerate_FullRecord(t *testing.T) {
	t.Parallel()
	engine := testEngine()

	in := Input{
		Employee:   testEmployee(),
		Period:     testPeriod(),
		Attendance: testAttendance(),
		Taxes: []compensation.TaxAssignment{
			fixedTaxAssignment("200", true),
			fixedTaxAssignment("9999", false),
		},
		Deductions: []compensation.DeductionAssignment{
			{IsActive: true, Title: &compensation.DeductionTitle{Name: "HMO Co-pay", Amount: d("150")}},
			{IsActive: false, Title: &compensation.DeductionTitle{Name: "Uniform", Amount: d("500")}},
		},
		Benefits: []compensation.BenefitAssignment{
			{IsActive: true, Benefit: &compensation.Benefit{Name: "Rice Subsidy", Amount: d("1687.50")}},
			{IsActive: false, Benefit: &compensation.Benefit{Name: "Transport", Amount: d("999")}},
		},
		CashAdvance: &cashadvance.Request{
			Status:           cashadvance.StatusApproved,
			Amount:           d("5000"),
			RemainingBalance: d("5000"),
		},
	}

	out, err := engine.Generate(in)
	require.NoError(t, err)

	rec := out.Record
	assert.Equal(t, "emp-1", rec.EmployeeID)
	assert.Equal(t, "period-1", rec.PeriodID)
	assert.Equal(t, payroll.StatusDraft, rec.Status)

	assert.True(t, rec.BasicSalary.Equal(d("13000")), "basic salary: %s", rec.BasicSalary)
	assert.True(t, rec.OvertimePay.Equal(d("312.50")), "overtime pay: %s", rec.OvertimePay)
	assert.True(t, rec.HolidayPay.Equal(d("2000")), "holiday pay: %s", rec.HolidayPay)
	assert.True(t, rec.Allowances.Equal(d("1687.50")), "allowances: %s", rec.Allowances)
	assert.True(t, rec.GrossPay.Equal(d("17000")), "gross pay: %s", rec.GrossPay)

	assert.True(t, rec.SSSMSC.Equal(d("17000")), "sss msc: %s", rec.SSSMSC)
	assert.True(t, rec.SSSDeduction.Equal(d("850")), "sss deduction: %s", rec.SSSDeduction)
	assert.True(t, rec.SSSECContribution.Equal(d("30")))
	assert.True(t, rec.SSSEmployerTotal.Equal(d("1730")))
	assert.True(t, rec.SSSTotalRemittance.Equal(d("2580")))

	assert.True(t, rec.PhilHealthMBS.Equal(d("17000")))
	assert.True(t, rec.PhilHealthDeduction.Equal(d("425")), "philhealth: %s", rec.PhilHealthDeduction)
	assert.True(t, rec.PhilHealthTotal.Equal(d("850")))

	assert.True(t, rec.PagIbigSalaryBase.Equal(d("5000")))
	assert.True(t, rec.PagIbigDeduction.Equal(d("100")))
	assert.True(t, rec.PagIbigEmployer.Equal(d("100")))

	assert.True(t, rec.TaxDeduction.Equal(d("200")))
	assert.True(t, rec.LateDeduction.Equal(d("62.50")), "late: %s", rec.LateDeduction)
	assert.True(t, rec.UndertimeDeduction.Equal(d("125")))
	assert.True(t, rec.CashAdvanceDeduction.Equal(d("2000")), "capped at the per-period maximum")
	assert.True(t, rec.OtherDeductions.Equal(d("150")))

	assert.True(t, rec.TotalDeductions.Equal(d("3912.50")), "total deductions: %s", rec.TotalDeductions)
	assert.True(t, rec.NetPay.Equal(d("13087.50")), "net pay: %s", rec.NetPay)

	assert.True(t, out.CashAdvanceDeduction.Equal(d("2000")))
	assert.True(t, out.CashAdvanceShortfall.IsZero())
}

func TestGenerate_AggregationIdentities(t *testing.T) {
	t.Parallel()
	engine := testEngine()

	in := Input{
		Employee:   testEmployee(),
		Period:     testPeriod(),
		Attendance: testAttendance(),
		Taxes:      []compensation.TaxAssignment{fixedTaxAssignment("200", true)},
	}

	out, err := engine.Generate(in)
	require.NoError(t, err)
	rec := out.Record

	gross := rec.BasicSalary.Add(rec.OvertimePay).Add(rec.HolidayPay).Add(rec.Allowances)
	assert.True(t, rec.GrossPay.Equal(gross), "gross pay must equal the sum of its components")

	total := rec.SSSDeduction.
		Add(rec.PhilHealthDeduction).
		Add(rec.PagIbigDeduction).
		Add(rec.TaxDeduction).
		Add(rec.LateDeduction).
		Add(rec.UndertimeDeduction).
		Add(rec.CashAdvanceDeduction).
		Add(rec.OtherDeductions)
	assert.True(t, rec.TotalDeductions.Equal(total), "total deductions must equal the sum of its components")

	assert.True(t, rec.NetPay.Equal(rec.GrossPay.Sub(rec.TotalDeductions)))
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()
	engine := testEngine()

	in := Input{
		Employee:   testEmployee(),
		Period:     testPeriod(),
		Attendance: testAttendance(),
	}

	first, err := engine.Generate(in)
	require.NoError(t, err)

	// Reversed record order must not change any figure.
	reversed := make([]attendanceDomain.Record, len(in.Attendance))
	for i, rec := range in.Attendance {
		reversed[len(in.Attendance)-1-i] = rec
	}
	in.Attendance = reversed

	second, err := engine.Generate(in)
	require.NoError(t, err)

	assert.True(t, first.Record.GrossPay.Equal(second.Record.GrossPay))
	assert.True(t, first.Record.TotalDeductions.Equal(second.Record.TotalDeductions))
	assert.True(t, first.Record.NetPay.Equal(second.Record.NetPay))
}

func TestGenerate_CashAdvance(t *testing.T) {
	t.Parallel()
	engine := testEngine()

	base := Input{
		Employee:   testEmployee(),
		Period:     testPeriod(),
		Attendance: testAttendance(),
	}

	t.Run("balance below cap deducts the balance and reports the shortfall", func(t *testing.T) {
		in := base
		in.CashAdvance = &cashadvance.Request{
			Status:           cashadvance.StatusApproved,
			Amount:           d("3000"),
			RemainingBalance: d("800"),
		}

		out, err := engine.Generate(in)
		require.NoError(t, err)
		assert.True(t, out.CashAdvanceDeduction.Equal(d("800")))
		assert.True(t, out.CashAdvanceShortfall.Equal(d("1200")))
	})

	t.Run("no open advance deducts nothing", func(t *testing.T) {
		out, err := engine.Generate(base)
		require.NoError(t, err)
		assert.True(t, out.CashAdvanceDeduction.IsZero())
		assert.True(t, out.CashAdvanceShortfall.IsZero())
	})

	t.Run("pending advance deducts nothing", func(t *testing.T) {
		in := base
		in.CashAdvance = &cashadvance.Request{
			Status:           cashadvance.StatusPending,
			Amount:           d("3000"),
			RemainingBalance: d("3000"),
		}

		out, err := engine.Generate(in)
		require.NoError(t, err)
		assert.True(t, out.CashAdvanceDeduction.IsZero())
	})
}

func TestGenerate_NegativeNetPay(t *testing.T) {
	t.Parallel()
	engine := testEngine()

	// One worked day grosses 1,000; statutory floors alone take 510, so a
	// 600 fixed tax pushes net pay negative.
	in := Input{
		Employee: testEmployee(),
		Period:   testPeriod(),
		Attendance: []attendanceDomain.Record{
			{Status: attendanceDomain.StatusPresent, TotalHours: d("8")},
		},
		Taxes: []compensation.TaxAssignment{fixedTaxAssignment("600", true)},
	}

	_, err := engine.Generate(in)
	require.ErrorIs(t, err, payroll.ErrNegativeNetPay)
}

func TestGenerate_PercentageTaxTitleRejected(t *testing.T) {
	t.Parallel()
	engine := testEngine()

	in := Input{
		Employee:   testEmployee(),
		Period:     testPeriod(),
		Attendance: testAttendance(),
		Taxes: []compensation.TaxAssignment{
			{
				IsActive: true,
				Title: &compensation.TaxTitle{
					Name: "Percentage Tax",
					Type: compensation.TaxTitleTypePercentage,
					Rate: d("0.10"),
				},
			},
		},
	}

	_, err := engine.Generate(in)
	require.ErrorIs(t, err, compensation.ErrUnsupportedTaxTitleType)
}

func TestGenerate_NoAttendance(t *testing.T) {
	t.Parallel()
	engine := testEngine()

	in := Input{
		Employee: testEmployee(),
		Period:   testPeriod(),
	}

	// Zero gross still owes the statutory floor contributions, so the net
	// pay goes negative and the record is held for manual review.
	_, err := engine.Generate(in)
	require.ErrorIs(t, err, payroll.ErrNegativeNetPay)
}
