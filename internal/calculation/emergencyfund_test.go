package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finplan/finplan/internal/domain"
)

func TestEmergencyFundCalculator_Required(t *testing.T) {
	var calc EmergencyFundCalculator

	tests := []struct {
		name      string
		income    int64
		occ       domain.Occupation
		residence domain.Residence
		ownsHome  bool
		want      int64
	}{
		// 100000/mo white-collar is Good income: 2 months required.
		{"white-collar urban owner", 100000, domain.OccupationWhiteCollar, domain.ResidenceUrban, true, 80000},
		{"white-collar urban renter", 100000, domain.OccupationWhiteCollar, domain.ResidenceUrban, false, 120000},
		// 20000/mo blue-collar is Sufficient income: 4 months required.
		{"blue-collar rural owner", 20000, domain.OccupationBlueCollar, domain.ResidenceRural, true, 24000},
		{"blue-collar rural renter", 20000, domain.OccupationBlueCollar, domain.ResidenceRural, false, 40000},
		// Other is 3 months at blue-collar thresholds.
		{"other urban renter", 20000, domain.OccupationOther, domain.ResidenceUrban, false, 36000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Required(decimal.NewFromInt(tt.income), tt.occ, tt.residence, tt.ownsHome)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(got), "want %d, got %s", tt.want, got)
		})
	}
}

func TestEmergencyFundCalculator_Required_NoIncome(t *testing.T) {
	var calc EmergencyFundCalculator

	got := calc.Required(decimal.Zero, domain.OccupationWhiteCollar, domain.ResidenceUrban, false)
	assert.True(t, got.IsZero(), "zero income requires no fund")

	got = calc.Required(decimal.NewFromInt(-100), domain.OccupationBlueCollar, domain.ResidenceRural, true)
	assert.True(t, got.IsZero(), "negative income requires no fund")
}
