package contribution

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayanihr/hrms-backend-go/internal/domain/contribution"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestComputeSSS_BracketLookup(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(Default2025())

	tests := []struct {
		name            string
		gross           string
		wantMSC         string
		wantEmployee    string
		wantRegularEE   string
		wantMPFEE       string
		wantEC          string
		wantEmployerTot string
	}{
		{
			name:  "mid-range with MPF portion",
			gross: "25000",
			// 25,000 sits in the 24,750-25,249.99 range
			wantMSC:         "25000",
			wantRegularEE:   "1000",
			wantMPFEE:       "250",
			wantEmployee:    "1250",
			wantEC:          "30",
			wantEmployerTot: "2530",
		},
		{
			name:            "below minimum bracket floors to minimum MSC",
			gross:           "3000",
			wantMSC:         "5000",
			wantRegularEE:   "250",
			wantMPFEE:       "0",
			wantEmployee:    "250",
			wantEC:          "10",
			wantEmployerTot: "510",
		},
		{
			name:            "above ceiling caps at maximum MSC",
			gross:           "120000",
			wantMSC:         "35000",
			wantRegularEE:   "1000",
			wantMPFEE:       "750",
			wantEmployee:    "1750",
			wantEC:          "30",
			wantEmployerTot: "3530",
		},
		{
			name:            "bracket boundary rounds up to next credit",
			gross:           "5250",
			wantMSC:         "5500",
			wantRegularEE:   "275",
			wantMPFEE:       "0",
			wantEmployee:    "275",
			wantEC:          "10",
			wantEmployerTot: "560",
		},
		{
			name:            "just below bracket boundary stays on lower credit",
			gross:           "5249.99",
			wantMSC:         "5000",
			wantRegularEE:   "250",
			wantMPFEE:       "0",
			wantEmployee:    "250",
			wantEC:          "10",
			wantEmployerTot: "510",
		},
		{
			name:            "regular ceiling exactly",
			gross:           "20000",
			wantMSC:         "20000",
			wantRegularEE:   "1000",
			wantMPFEE:       "0",
			wantEmployee:    "1000",
			wantEC:          "30",
			wantEmployerTot: "2030",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.ComputeSSS(d(tt.gross))
			require.NoError(t, err)

			assert.True(t, got.MSC.Equal(d(tt.wantMSC)), "MSC = %s, want %s", got.MSC, tt.wantMSC)
			assert.True(t, got.RegularEmployee.Equal(d(tt.wantRegularEE)), "regular employee = %s", got.RegularEmployee)
			assert.True(t, got.MPFEmployee.Equal(d(tt.wantMPFEE)), "MPF employee = %s", got.MPFEmployee)
			assert.True(t, got.Employee.Equal(d(tt.wantEmployee)), "employee total = %s", got.Employee)
			assert.True(t, got.EC.Equal(d(tt.wantEC)), "EC = %s", got.EC)
			assert.True(t, got.EmployerTotal.Equal(d(tt.wantEmployerTot)), "employer total = %s", got.EmployerTotal)
			assert.True(t, got.TotalRemittance.Equal(got.Employee.Add(got.EmployerTotal)))
		})
	}
}

func TestComputeSSS_RemittanceMonotonicity(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(Default2025())

	prev := decimal.Zero
	for gross := int64(0); gross <= 60000; gross += 250 {
		got, err := calc.ComputeSSS(decimal.NewFromInt(gross))
		require.NoError(t, err)
		assert.True(t, got.TotalRemittance.GreaterThanOrEqual(prev),
			"remittance decreased at gross %d: %s < %s", gross, got.TotalRemittance, prev)
		prev = got.TotalRemittance
	}
}

func TestComputeSSS_SplitConsistency(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(Default2025())

	for gross := int64(1000); gross <= 50000; gross += 777 {
		got, err := calc.ComputeSSS(decimal.NewFromInt(gross))
		require.NoError(t, err)

		// regular + MPF totals reconcile against employee + employer, net of EC
		lhs := got.RegularTotal.Add(got.MPFTotal)
		rhs := got.Employee.Add(got.EmployerTotal).Sub(got.EC)
		assert.True(t, lhs.Equal(rhs), "gross %d: %s != %s", gross, lhs, rhs)
	}
}

func TestComputePhilHealth(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(Default2025())

	tests := []struct {
		name      string
		gross     string
		wantMBS   string
		wantShare string
	}{
		{"mid-range", "15000", "15000", "375"},
		{"below floor uses floor", "8000", "10000", "250"},
		{"above ceiling uses ceiling", "250000", "100000", "2500"},
		{"odd amount splits evenly after rounding", "15333.33", "15333.33", "383.34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.ComputePhilHealth(d(tt.gross))
			require.NoError(t, err)

			assert.True(t, got.MBS.Equal(d(tt.wantMBS)), "MBS = %s", got.MBS)
			assert.True(t, got.Employee.Equal(d(tt.wantShare)), "employee = %s", got.Employee)
			// 50/50 split invariant
			assert.True(t, got.Employer.Equal(got.Employee))
			assert.True(t, got.Total.Equal(got.Employee.Add(got.Employer)))
		})
	}
}

func TestComputePagIbig(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(Default2025())

	tests := []struct {
		name         string
		gross        string
		wantBase     string
		wantEmployee string
		wantEmployer string
	}{
		{"capped base above 5000", "8000", "5000", "100", "100"},
		{"base below cap", "4000", "4000", "80", "80"},
		{"lower band uses 1 percent", "1400", "1400", "14", "28"},
		{"exactly at lower band uses 2 percent", "1500", "1500", "30", "30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.ComputePagIbig(d(tt.gross))
			require.NoError(t, err)

			assert.True(t, got.SalaryBase.Equal(d(tt.wantBase)), "base = %s", got.SalaryBase)
			assert.True(t, got.Employee.Equal(d(tt.wantEmployee)), "employee = %s", got.Employee)
			assert.True(t, got.Employer.Equal(d(tt.wantEmployer)), "employer = %s", got.Employer)
			assert.True(t, got.Total.Equal(got.Employee.Add(got.Employer)))
		})
	}
}

func TestComputePagIbig_EmployerCapHolds(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(Default2025())

	for gross := int64(5000); gross <= 100000; gross += 5000 {
		got, err := calc.ComputePagIbig(decimal.NewFromInt(gross))
		require.NoError(t, err)
		assert.True(t, got.SalaryBase.Equal(d("5000")))
		assert.True(t, got.Employer.LessThanOrEqual(d("100")))
	}
}

func TestCalculator_NegativeCompensationRejected(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(Default2025())
	neg := d("-1")

	_, err := calc.ComputeSSS(neg)
	assert.ErrorIs(t, err, contribution.ErrInvalidCompensation)

	_, err = calc.ComputePhilHealth(neg)
	assert.ErrorIs(t, err, contribution.ErrInvalidCompensation)

	_, err = calc.ComputePagIbig(neg)
	assert.ErrorIs(t, err, contribution.ErrInvalidCompensation)
}

func TestCalculator_ZeroCompensation(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(Default2025())

	sss, err := calc.ComputeSSS(decimal.Zero)
	require.NoError(t, err)
	assert.True(t, sss.MSC.Equal(d("5000")), "zero pay still floors to the minimum credit")

	ph, err := calc.ComputePhilHealth(decimal.Zero)
	require.NoError(t, err)
	assert.True(t, ph.MBS.Equal(d("10000")))

	pi, err := calc.ComputePagIbig(decimal.Zero)
	require.NoError(t, err)
	assert.True(t, pi.Employee.IsZero())
}
