package payroll

import (
	"github.com/shopspring/decimal"

	attendanceDomain "github.com/bayanihr/hrms-backend-go/internal/domain/attendance"
	"github.com/bayanihr/hrms-backend-go/internal/domain/cashadvance"
	"github.com/bayanihr/hrms-backend-go/internal/domain/compensation"
	"github.com/bayanihr/hrms-backend-go/internal/domain/employee"
	"github.com/bayanihr/hrms-backend-go/internal/domain/payroll"
	attendanceService "github.com/bayanihr/hrms-backend-go/internal/service/attendance"
	"github.com/bayanihr/hrms-backend-go/internal/service/contribution"
)

// EngineConfig carries the pay policy knobs the engine applies on top of the
// statutory schedule.
type EngineConfig struct {
	Adjustment attendanceService.AdjustmentConfig

	// CashAdvanceCap is the most that can be recovered from an employee in
	// one pay period.
	CashAdvanceCap decimal.Decimal
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Adjustment:     attendanceService.DefaultAdjustmentConfig(),
		CashAdvanceCap: decimal.NewFromInt(2000),
	}
}

// Engine computes one complete payroll record from pre-fetched inputs. It
// performs no I/O; persistence and the cash-advance decrement are the
// surrounding service's job.
type Engine struct {
	calc *contribution.Calculator
	cfg  EngineConfig
}

func NewEngine(calc *contribution.Calculator, cfg EngineConfig) *Engine {
	return &Engine{calc: calc, cfg: cfg}
}

// Input is everything Generate needs for one (employee, period) pair,
// fetched up front by the caller.
type Input struct {
	Employee   employee.Employee
	Period     payroll.Period
	Attendance []attendanceDomain.Record
	Taxes      []compensation.TaxAssignment
	Deductions []compensation.DeductionAssignment
	Benefits   []compensation.BenefitAssignment

	// CashAdvance is the employee's open approved advance, nil when none.
	CashAdvance *cashadvance.Request
}

// Output carries the computed record plus the cash-advance shortfall: how far
// the period cap exceeded the available balance. The shortfall is reported,
// not an error, since advance debt may persist across periods.
type Output struct {
	Record               payroll.Record
	CashAdvanceDeduction decimal.Decimal
	CashAdvanceShortfall decimal.Decimal
}

// Generate produces the draft payroll record for one employee and period.
// Identical inputs always produce identical field values.
func (e *Engine) Generate(in Input) (Output, error) {
	dailyRate := in.Employee.EffectiveDailyRate()
	hourlyRate := in.Employee.EffectiveHourlyRate()

	adj := attendanceService.ComputeAdjustments(in.Attendance, hourlyRate, e.cfg.Adjustment)

	basicSalary := dailyRate.Mul(decimal.NewFromInt(int64(adj.BasicPayDays))).Round(2)

	allowances := decimal.Zero
	for _, b := range in.Benefits {
		if b.IsActive {
			allowances = allowances.Add(b.EffectiveAmount())
		}
	}

	grossPay := basicSalary.Add(adj.OvertimePay).Add(adj.HolidayPay).Add(allowances)

	sss, err := e.calc.ComputeSSS(grossPay)
	if err != nil {
		return Output{}, err
	}
	philHealth, err := e.calc.ComputePhilHealth(grossPay)
	if err != nil {
		return Output{}, err
	}
	pagIbig, err := e.calc.ComputePagIbig(grossPay)
	if err != nil {
		return Output{}, err
	}

	taxDeduction := decimal.Zero
	for _, t := range in.Taxes {
		if !t.IsActive {
			continue
		}
		// The schema allows fixed titles only; a percentage row is a
		// data-integrity fault and fails loud.
		if t.Title != nil && t.Title.Type != compensation.TaxTitleTypeFixed {
			return Output{}, compensation.ErrUnsupportedTaxTitleType
		}
		taxDeduction = taxDeduction.Add(t.EffectiveRate())
	}

	otherDeductions := decimal.Zero
	for _, dd := range in.Deductions {
		if dd.IsActive {
			otherDeductions = otherDeductions.Add(dd.EffectiveAmount())
		}
	}

	cashAdvanceDeduction := decimal.Zero
	cashAdvanceShortfall := decimal.Zero
	if in.CashAdvance != nil && in.CashAdvance.Status == cashadvance.StatusApproved {
		cashAdvanceDeduction = decimal.Min(in.CashAdvance.RemainingBalance, e.cfg.CashAdvanceCap)
		if in.CashAdvance.RemainingBalance.LessThan(e.cfg.CashAdvanceCap) {
			cashAdvanceShortfall = e.cfg.CashAdvanceCap.Sub(in.CashAdvance.RemainingBalance)
		}
	}

	totalDeductions := sss.Employee.
		Add(philHealth.Employee).
		Add(pagIbig.Employee).
		Add(taxDeduction).
		Add(adj.LateDeduction).
		Add(adj.UndertimeDeduction).
		Add(cashAdvanceDeduction).
		Add(otherDeductions)

	netPay := grossPay.Sub(totalDeductions)
	if netPay.IsNegative() {
		return Output{}, payroll.ErrNegativeNetPay
	}

	record := payroll.Record{
		EmployeeID: in.Employee.ID,
		PeriodID:   in.Period.ID,

		BasicSalary: basicSalary,
		OvertimePay: adj.OvertimePay,
		HolidayPay:  adj.HolidayPay,
		Allowances:  allowances,
		GrossPay:    grossPay,

		SSSDeduction:         sss.Employee,
		PhilHealthDeduction:  philHealth.Employee,
		PagIbigDeduction:     pagIbig.Employee,
		TaxDeduction:         taxDeduction,
		LateDeduction:        adj.LateDeduction,
		UndertimeDeduction:   adj.UndertimeDeduction,
		CashAdvanceDeduction: cashAdvanceDeduction,
		OtherDeductions:      otherDeductions,
		TotalDeductions:      totalDeductions,
		NetPay:               netPay,

		SSSMSC:             sss.MSC,
		SSSRegularEmployee: sss.RegularEmployee,
		SSSRegularEmployer: sss.RegularEmployer,
		SSSRegularTotal:    sss.RegularTotal,
		SSSMPFEmployee:     sss.MPFEmployee,
		SSSMPFEmployer:     sss.MPFEmployer,
		SSSMPFTotal:        sss.MPFTotal,
		SSSECContribution:  sss.EC,
		SSSEmployerTotal:   sss.EmployerTotal,
		SSSTotalRemittance: sss.TotalRemittance,

		PhilHealthMBS:      philHealth.MBS,
		PhilHealthEmployer: philHealth.Employer,
		PhilHealthTotal:    philHealth.Total,

		PagIbigSalaryBase: pagIbig.SalaryBase,
		PagIbigEmployer:   pagIbig.Employer,
		PagIbigTotal:      pagIbig.Total,

		Status: payroll.StatusDraft,
	}

	return Output{
		Record:               record,
		CashAdvanceDeduction: cashAdvanceDeduction,
		CashAdvanceShortfall: cashAdvanceShortfall,
	}, nil
}
