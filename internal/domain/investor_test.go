package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeAt(t *testing.T) {
	dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ref  time.Time
		want int
	}{
		{"same day", dob, 0},
		{"day before birthday", time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), 34},
		{"on birthday", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), 35},
		{"day after birthday", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), 35},
		{"earlier month", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 34},
		{"later month", time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AgeAt(dob, tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAgeAt_Monotonic(t *testing.T) {
	dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)

	prev := -1
	for year := 1990; year <= 2050; year++ {
		ref := time.Date(year, 9, 1, 0, 0, 0, 0, time.UTC)
		age, err := AgeAt(dob, ref)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, age, prev, "age must not decrease as the reference advances")
		prev = age
	}
}

func TestAgeAt_Errors(t *testing.T) {
	ref := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := AgeAt(time.Time{}, ref)
	assert.ErrorIs(t, err, ErrInvalidDate, "zero birth date")

	_, err = AgeAt(ref.AddDate(1, 0, 0), ref)
	assert.ErrorIs(t, err, ErrInvalidDate, "future birth date")

	_, err = AgeAt(ref, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidDate, "zero reference date")
}

func TestNormalizeOccupation(t *testing.T) {
	tests := []struct {
		raw  string
		want Occupation
	}{
		{"White-Collar", OccupationWhiteCollar},
		{"white collar", OccupationWhiteCollar},
		{"WHITE_COLLAR", OccupationWhiteCollar},
		{"Salaried", OccupationWhiteCollar},
		{"Blue-Collar", OccupationBlueCollar},
		{"manual", OccupationBlueCollar},
		{"self-employed", OccupationOther},
		{"", OccupationOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeOccupation(tt.raw), "raw %q", tt.raw)
	}
}

func TestInvestorInput_Validate(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	valid := InvestorInput{
		BirthDate:     time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Occupation:    OccupationWhiteCollar,
		MonthlyIncome: decimal.NewFromInt(50000),
		Residence:     ResidenceUrban,
	}
	assert.NoError(t, valid.Validate(asOf))

	bad := valid
	bad.Occupation = "astronaut"
	assert.ErrorIs(t, bad.Validate(asOf), ErrInvalidInput)

	bad = valid
	bad.MonthlyIncome = decimal.NewFromInt(-1)
	assert.ErrorIs(t, bad.Validate(asOf), ErrInvalidInput)

	bad = valid
	bad.Dependents = []Dependent{{Age: -2}}
	assert.ErrorIs(t, bad.Validate(asOf), ErrInvalidInput)

	bad = valid
	bad.BirthDate = asOf.AddDate(1, 0, 0)
	assert.ErrorIs(t, bad.Validate(asOf), ErrInvalidDate)
}

func TestFallbackIndicators(t *testing.T) {
	ind := FallbackIndicators()
	assert.True(t, ind.IsFallback)
	assert.True(t, decimal.NewFromFloat(6.5).Equal(ind.GDPGrowth.Value))
	assert.True(t, decimal.NewFromFloat(5.0).Equal(ind.CPIInflation.Value))
	assert.Equal(t, "N/A (Fallback)", ind.GDPGrowth.Period)
	assert.False(t, ind.Slowdown(), "fallback growth sits above the slowdown line")
}
