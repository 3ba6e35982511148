package calculation

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finplan/finplan/internal/audit"
	"github.com/finplan/finplan/internal/domain"
)

var neutralAnswers = []string{
	"Neutral",
	"Neutral",
	"Neutral",
	"Hold and wait for recovery",
	"Mildly anxious, somewhat concerned",
}

// benchmarkInvestor is the upper-middle-band reference case: good income,
// fully funded reserves, no debt, extensive experience.
func benchmarkInvestor() *domain.InvestorInput {
	return &domain.InvestorInput{
		Name:             "Benchmark",
		BirthDate:        birthDateForAge(36),
		Occupation:       domain.OccupationWhiteCollar,
		MonthlyIncome:    decimal.NewFromInt(100000),
		Residence:        domain.ResidenceUrban,
		OwnsHome:         true,
		MarketExperience: domain.ExperienceExtensive,
		EmergencyFund:    decimal.NewFromInt(200000),
		Questionnaire:    neutralAnswers,
	}
}

func neutralIndicators() domain.EconomicIndicators {
	return domain.EconomicIndicators{
		GDPGrowth:    domain.Indicator{Value: decimal.NewFromFloat(6.5), Period: "2024"},
		CPIInflation: domain.Indicator{Value: decimal.NewFromFloat(5.0), Period: "2024"},
	}
}

func TestRiskScorer_BenchmarkScenario(t *testing.T) {
	rs := NewRiskScorer(nil, zerolog.Nop())

	b, err := rs.Score(benchmarkInvestor(), neutralIndicators(), nil, classifyAsOf)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(15).Equal(b.StatedPreferencePoints), "neutral answers rescale to 15, got %s", b.StatedPreferencePoints)
	assert.True(t, decimal.NewFromInt(20).Equal(b.EmergencyAdequacyPoints), "fully funded reserve, got %s", b.EmergencyAdequacyPoints)
	assert.True(t, decimal.NewFromInt(15).Equal(b.DebtPoints), "no obligations, got %s", b.DebtPoints)
	assert.True(t, decimal.NewFromInt(12).Equal(b.LifeCyclePoints), "age 36 bracket, got %s", b.LifeCyclePoints)
	assert.True(t, decimal.NewFromInt(10).Equal(b.IncomePoints), "white-collar good income, got %s", b.IncomePoints)
	assert.True(t, decimal.NewFromInt(5).Equal(b.DependentsPoints))
	assert.True(t, decimal.NewFromInt(5).Equal(b.ExperiencePoints))

	assert.True(t, decimal.NewFromInt(82).Equal(b.BaseScore), "base score, got %s", b.BaseScore)
	assert.True(t, b.EconomicAdjustment.IsZero(), "neutral indicators adjust nothing")
	assert.True(t, b.GoalAdjustment.IsZero())
	assert.Equal(t, 21, b.FinalScore, "ceil(82/4)")
	assert.Equal(t, domain.RatingAggressive, b.Rating)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, 36, b.Age)
}

func TestRiskScorer_AdequacyTierBoundaries(t *testing.T) {
	// Required fund for this investor: 100000 x 0.6 x 2 = 120000.
	tests := []struct {
		name string
		fund int64
		want int64
	}{
		{"just below quarter funded", 29999, 2},
		{"exactly quarter funded lands in second tier", 30000, 5},
		{"half funded", 60000, 9},
		{"three quarters funded", 90000, 13},
		{"exactly fully funded", 120000, 17},
		{"at one and a half times", 180000, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := NewRiskScorer(nil, zerolog.Nop())
			inv := benchmarkInvestor()
			inv.OwnsHome = false
			inv.EmergencyFund = decimal.NewFromInt(tt.fund)
			b, err := rs.Score(inv, neutralIndicators(), nil, classifyAsOf)
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(b.EmergencyAdequacyPoints),
				"fund %d: want %d points, got %s", tt.fund, tt.want, b.EmergencyAdequacyPoints)
		})
	}
}

func TestRiskScorer_ZeroIncome(t *testing.T) {
	rs := NewRiskScorer(nil, zerolog.Nop())
	inv := &domain.InvestorInput{
		BirthDate:  birthDateForAge(30),
		Occupation: domain.OccupationBlueCollar,
		Residence:  domain.ResidenceUrban,
	}

	b, err := rs.Score(inv, neutralIndicators(), nil, classifyAsOf)
	require.NoError(t, err)

	assert.True(t, b.RequiredEmergencyFund.IsZero(), "no income, no required fund")
	assert.True(t, decimal.NewFromInt(20).Equal(b.EmergencyAdequacyPoints), "nothing to protect scores maximal")
	assert.True(t, decimal.NewFromInt(15).Equal(b.DebtPoints), "no obligations with no income is best case")
}

func TestRiskScorer_ZeroIncomeWithDebt(t *testing.T) {
	rs := NewRiskScorer(nil, zerolog.Nop())
	inv := &domain.InvestorInput{
		BirthDate:  birthDateForAge(30),
		Occupation: domain.OccupationBlueCollar,
		Residence:  domain.ResidenceUrban,
		MonthlyEMI: decimal.NewFromInt(5000),
	}

	b, err := rs.Score(inv, neutralIndicators(), nil, classifyAsOf)
	require.NoError(t, err)
	assert.True(t, b.DebtPoints.IsZero(), "obligations with no income is worst case")
}

func TestRiskScorer_DebtTiers(t *testing.T) {
	tests := []struct {
		name string
		rent int64
		emi  int64
		want int64
	}{
		{"at ten percent", 10000, 0, 15},
		{"at twenty percent", 10000, 10000, 12},
		{"at thirty percent", 20000, 10000, 9},
		{"at forty percent", 20000, 20000, 6},
		{"at fifty percent", 25000, 25000, 3},
		{"above fifty percent", 30000, 30000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := NewRiskScorer(nil, zerolog.Nop())
			inv := benchmarkInvestor()
			inv.MonthlyRent = decimal.NewFromInt(tt.rent)
			inv.MonthlyEMI = decimal.NewFromInt(tt.emi)
			b, err := rs.Score(inv, neutralIndicators(), nil, classifyAsOf)
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(b.DebtPoints),
				"rent %d emi %d: want %d, got %s", tt.rent, tt.emi, tt.want, b.DebtPoints)
		})
	}
}

func TestRiskScorer_EconomicAdjustment(t *testing.T) {
	tests := []struct {
		name string
		gdp  float64
		cpi  float64
		want int64
	}{
		{"neutral", 6.0, 5.0, 0},
		{"high inflation", 6.0, 6.5, -2},
		{"low growth", 4.5, 5.0, -2},
		{"stagflation stacks both penalties", 4.5, 6.5, -4},
		{"boom with low inflation", 7.5, 3.5, 2},
		{"boom with high inflation earns nothing", 7.5, 6.5, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := NewRiskScorer(nil, zerolog.Nop())
			ind := domain.EconomicIndicators{
				GDPGrowth:    domain.Indicator{Value: decimal.NewFromFloat(tt.gdp), Period: "2024"},
				CPIInflation: domain.Indicator{Value: decimal.NewFromFloat(tt.cpi), Period: "2024"},
			}
			b, err := rs.Score(benchmarkInvestor(), ind, nil, classifyAsOf)
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(b.EconomicAdjustment),
				"gdp %.1f cpi %.1f: want %d, got %s", tt.gdp, tt.cpi, tt.want, b.EconomicAdjustment)
		})
	}
}

func TestRiskScorer_GoalAdjustment(t *testing.T) {
	rs := NewRiskScorer(nil, zerolog.Nop())

	urgent := []domain.FinancialGoal{
		{Type: domain.GoalRetirement, TargetAmount: decimal.NewFromInt(1000000), TimelineYears: 20},
		{Type: domain.GoalDebtReduction, TargetAmount: decimal.NewFromInt(50000), TimelineYears: 2},
	}
	b, err := rs.Score(benchmarkInvestor(), neutralIndicators(), urgent, classifyAsOf)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(-1).Equal(b.GoalAdjustment), "urgent priority-1 goal subtracts one point")

	relaxed := []domain.FinancialGoal{
		{Type: domain.GoalDebtReduction, TargetAmount: decimal.NewFromInt(50000), TimelineYears: 5},
		{Type: domain.GoalEmergencyFund, TargetAmount: decimal.NewFromInt(100000), TimelineYears: 1},
	}
	b, err = rs.Score(benchmarkInvestor(), neutralIndicators(), relaxed, classifyAsOf)
	require.NoError(t, err)
	assert.True(t, b.GoalAdjustment.IsZero(), "no priority-1 goal within three years")
}

func TestRiskScorer_IncompleteQuestionnaire(t *testing.T) {
	rs := NewRiskScorer(nil, zerolog.Nop())
	inv := benchmarkInvestor()
	inv.Questionnaire = []string{"Neutral", "Neutral"}

	b, err := rs.Score(inv, neutralIndicators(), nil, classifyAsOf)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15).Equal(b.StatedPreferencePoints), "incomplete answers score the neutral midpoint")
}

func TestRiskScorer_UnknownAnswerScoresOne(t *testing.T) {
	rs := NewRiskScorer(nil, zerolog.Nop())
	inv := benchmarkInvestor()
	inv.Questionnaire = []string{"gibberish", "gibberish", "gibberish", "gibberish", "gibberish"}

	b, err := rs.Score(inv, neutralIndicators(), nil, classifyAsOf)
	require.NoError(t, err)
	// Raw sum 5 rescales to the floor of the contribution.
	assert.True(t, b.StatedPreferencePoints.IsZero(), "all-unknown answers score zero points, got %s", b.StatedPreferencePoints)
}

func TestRiskScorer_RecordsAudit(t *testing.T) {
	rec := audit.NewMemoryRecorder()
	rs := NewRiskScorer(rec, zerolog.Nop())

	_, err := rs.Score(benchmarkInvestor(), neutralIndicators(), nil, classifyAsOf)
	require.NoError(t, err)
	_, err = rs.Score(benchmarkInvestor(), neutralIndicators(), nil, classifyAsOf)
	require.NoError(t, err)

	entries := rec.Entries()
	require.Len(t, entries, 2)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
	assert.Equal(t, 21, entries[0].FinalScore)
	assert.False(t, entries[0].Timestamp.IsZero())
	assert.NotEmpty(t, entries[0].Reason)
}

func TestRiskScorer_FutureBirthDate(t *testing.T) {
	rs := NewRiskScorer(nil, zerolog.Nop())
	inv := benchmarkInvestor()
	inv.BirthDate = classifyAsOf.Add(24 * time.Hour)

	_, err := rs.Score(inv, neutralIndicators(), nil, classifyAsOf)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestRatingForScore(t *testing.T) {
	assert.Equal(t, domain.RatingRiskAverse, domain.RatingForScore(0))
	assert.Equal(t, domain.RatingRiskAverse, domain.RatingForScore(8))
	assert.Equal(t, domain.RatingModerate, domain.RatingForScore(9))
	assert.Equal(t, domain.RatingModerate, domain.RatingForScore(16))
	assert.Equal(t, domain.RatingAggressive, domain.RatingForScore(17))
	assert.Equal(t, domain.RatingAggressive, domain.RatingForScore(25))
}
