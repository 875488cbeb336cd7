package contribution

import (
	"github.com/shopspring/decimal"

	"github.com/bayanihr/hrms-backend-go/internal/domain/contribution"
)

var two = decimal.NewFromInt(2)

// Calculator computes statutory employee and employer contributions against a
// single immutable Schedule. Different schedule years coexist by constructing
// one Calculator per Schedule.
type Calculator struct {
	schedule contribution.Schedule
}

func NewCalculator(schedule contribution.Schedule) *Calculator {
	return &Calculator{schedule: schedule}
}

func (c *Calculator) Year() int {
	return c.schedule.Year
}

// ComputeSSS brackets the gross monthly compensation into a Monthly Salary
// Credit, splits it into the Regular SS and MPF portions, and returns every
// persisted sub-amount of the contribution.
func (c *Calculator) ComputeSSS(grossMonthlyPay decimal.Decimal) (contribution.SSSContribution, error) {
	if grossMonthlyPay.IsNegative() {
		return contribution.SSSContribution{}, contribution.ErrInvalidCompensation
	}

	t := c.schedule.SSS
	msc := bracketMSC(grossMonthlyPay, t)

	regularMSC := decimal.Min(msc, t.RegularCeiling)
	mpfMSC := decimal.Max(msc.Sub(t.RegularCeiling), decimal.Zero)

	result := contribution.SSSContribution{
		MSC:             msc,
		RegularEmployee: regularMSC.Mul(t.EmployeeRate).Round(2),
		RegularEmployer: regularMSC.Mul(t.EmployerRate).Round(2),
		MPFEmployee:     mpfMSC.Mul(t.EmployeeRate).Round(2),
		MPFEmployer:     mpfMSC.Mul(t.EmployerRate).Round(2),
	}
	result.RegularTotal = result.RegularEmployee.Add(result.RegularEmployer)
	result.MPFTotal = result.MPFEmployee.Add(result.MPFEmployer)

	if msc.LessThan(t.ECThreshold) {
		result.EC = t.ECBelow
	} else {
		result.EC = t.ECAtOrAbove
	}

	result.Employee = result.RegularEmployee.Add(result.MPFEmployee)
	result.EmployerTotal = result.RegularEmployer.Add(result.MPFEmployer).Add(result.EC)
	result.TotalRemittance = result.Employee.Add(result.EmployerTotal)

	return result, nil
}

// bracketMSC maps compensation onto the nearest MSC step, flooring below the
// minimum bracket and capping at the maximum. The published ranges put the
// boundary halfway between adjacent credits (e.g. 5,250.00 already belongs to
// the 5,500 credit).
func bracketMSC(pay decimal.Decimal, t contribution.SSSTable) decimal.Decimal {
	if pay.LessThanOrEqual(t.MinMSC) {
		return t.MinMSC
	}

	offset := pay.Sub(t.MinMSC).Add(t.StepMSC.Div(two))
	steps := offset.Div(t.StepMSC).Floor()
	msc := t.MinMSC.Add(steps.Mul(t.StepMSC))

	if msc.GreaterThan(t.MaxMSC) {
		return t.MaxMSC
	}
	if msc.LessThan(t.MinMSC) {
		return t.MinMSC
	}
	return msc
}

// ComputePhilHealth applies the flat premium rate to the Monthly Basic Salary
// clamped to the published bounds, split evenly between employee and employer.
func (c *Calculator) ComputePhilHealth(grossMonthlyPay decimal.Decimal) (contribution.PhilHealthContribution, error) {
	if grossMonthlyPay.IsNegative() {
		return contribution.PhilHealthContribution{}, contribution.ErrInvalidCompensation
	}

	t := c.schedule.PhilHealth

	mbs := grossMonthlyPay
	if mbs.LessThan(t.MinMBS) {
		mbs = t.MinMBS
	}
	if mbs.GreaterThan(t.MaxMBS) {
		mbs = t.MaxMBS
	}

	total := mbs.Mul(t.PremiumRate).Round(2)
	half := total.Div(two).Round(2)

	return contribution.PhilHealthContribution{
		MBS:      mbs,
		Employee: half,
		Employer: half,
		Total:    half.Add(half),
	}, nil
}

// ComputePagIbig applies the tiered employee rate and the flat employer rate
// against the capped salary base. The employer share carries its own ceiling.
func (c *Calculator) ComputePagIbig(grossMonthlyPay decimal.Decimal) (contribution.PagIbigContribution, error) {
	if grossMonthlyPay.IsNegative() {
		return contribution.PagIbigContribution{}, contribution.ErrInvalidCompensation
	}

	t := c.schedule.PagIbig

	base := decimal.Min(grossMonthlyPay, t.MaxSalaryBase)

	employeeRate := t.UpperRate
	if grossMonthlyPay.LessThan(t.LowerBand) {
		employeeRate = t.LowerRate
	}

	employee := base.Mul(employeeRate).Round(2)
	employer := decimal.Min(base.Mul(t.EmployerRate).Round(2), t.EmployerCap)

	return contribution.PagIbigContribution{
		SalaryBase: base,
		Employee:   employee,
		Employer:   employer,
		Total:      employee.Add(employer),
	}, nil
}
