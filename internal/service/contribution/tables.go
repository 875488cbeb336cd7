package contribution

import (
	"github.com/shopspring/decimal"

	"github.com/bayanihr/hrms-backend-go/internal/domain/contribution"
)

// Default2025 returns the statutory tables in force for calendar year 2025:
// SSS circular 2024-006 (15% total, MSC 5,000-35,000, MPF above 20,000),
// PhilHealth 5% premium on MBS 10,000-100,000, Pag-IBIG fund salary base
// capped at 5,000 with the 1%/2% employee split.
func Default2025() contribution.Schedule {
	return contribution.Schedule{
		Year: 2025,
		SSS: contribution.SSSTable{
			MinMSC:         decimal.NewFromInt(5000),
			MaxMSC:         decimal.NewFromInt(35000),
			StepMSC:        decimal.NewFromInt(500),
			RegularCeiling: decimal.NewFromInt(20000),
			EmployeeRate:   decimal.NewFromFloat(0.05),
			EmployerRate:   decimal.NewFromFloat(0.10),
			ECThreshold:    decimal.NewFromInt(15000),
			ECBelow:        decimal.NewFromInt(10),
			ECAtOrAbove:    decimal.NewFromInt(30),
		},
		PhilHealth: contribution.PhilHealthTable{
			PremiumRate: decimal.NewFromFloat(0.05),
			MinMBS:      decimal.NewFromInt(10000),
			MaxMBS:      decimal.NewFromInt(100000),
		},
		PagIbig: contribution.PagIbigTable{
			MaxSalaryBase: decimal.NewFromInt(5000),
			LowerBand:     decimal.NewFromInt(1500),
			LowerRate:     decimal.NewFromFloat(0.01),
			UpperRate:     decimal.NewFromFloat(0.02),
			EmployerRate:  decimal.NewFromFloat(0.02),
			EmployerCap:   decimal.NewFromInt(100),
		},
	}
}
