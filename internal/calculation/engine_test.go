package calculation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finplan/finplan/internal/audit"
	"github.com/finplan/finplan/internal/domain"
)

func TestEngine_BuildPlan(t *testing.T) {
	rec := audit.NewMemoryRecorder()
	engine := NewEngine(rec, zerolog.Nop())

	goals := []domain.FinancialGoal{
		{Name: "retirement", Type: domain.GoalRetirement, TargetAmount: decimal.NewFromInt(5000000), TimelineYears: 24},
	}

	inv := benchmarkInvestor()
	inv.Dependents = []domain.Dependent{{Age: 8}, {Age: 12}}
	plan, err := engine.BuildPlan(inv, goals, domain.FallbackIndicators(), classifyAsOf)
	require.NoError(t, err)

	assert.Equal(t, domain.ProfileCode("W8"), plan.ProfileCode, "age 36, income 100000, two dependents")
	assert.NotEmpty(t, plan.ProfileDescription)
	assert.Equal(t, domain.StageMidCareer, plan.LifeStage)
	assert.Equal(t, 36, plan.Age)

	require.NotNil(t, plan.Risk)
	assert.Equal(t, 20, plan.Risk.FinalScore, "ceil(79/4), two dependents trim three base points")
	assert.Equal(t, domain.RatingAggressive, plan.Risk.Rating)

	assert.True(t, plan.Savings.FinalSavings.IsPositive())
	assert.True(t, plan.RequiredEmergencyFund.Equal(plan.Risk.RequiredEmergencyFund))
	assert.True(t, decimal.NewFromFloat(0.05).Equal(plan.AnnualStepUpRate), "W8 keeps the default step-up outside a slowdown")

	require.Len(t, plan.Goals, 1)
	assert.Equal(t, domain.FundContra, plan.Goals[0].FundType, "long horizon, aggressive rating")

	assert.True(t, plan.Indicators.IsFallback)
	assert.Len(t, rec.Entries(), 1, "one audit entry per scoring call")
}

func TestEngine_BuildPlan_SlowdownStepUp(t *testing.T) {
	engine := NewEngine(nil, zerolog.Nop())

	slowdown := domain.EconomicIndicators{
		GDPGrowth:    domain.Indicator{Value: decimal.NewFromFloat(3.5), Period: "2024"},
		CPIInflation: domain.Indicator{Value: decimal.NewFromFloat(5.0), Period: "2024"},
	}

	plan, err := engine.BuildPlan(benchmarkInvestor(), nil, slowdown, classifyAsOf)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(0.025).Equal(plan.AnnualStepUpRate), "got %s", plan.AnnualStepUpRate)
}

func TestEngine_BuildPlan_NoProfileMatch(t *testing.T) {
	engine := NewEngine(nil, zerolog.Nop())

	inv := benchmarkInvestor()
	inv.Occupation = domain.OccupationOther

	plan, err := engine.BuildPlan(inv, nil, domain.FallbackIndicators(), classifyAsOf)
	require.NoError(t, err, "no profile match is not an error")
	assert.False(t, plan.ProfileCode.Matched())
	assert.NotNil(t, plan.Risk, "scoring proceeds without a profile")
	assert.True(t, decimal.NewFromFloat(0.05).Equal(plan.AnnualStepUpRate), "unmatched profile uses the default rate")
}

func TestEngine_BuildPlan_InvalidInput(t *testing.T) {
	engine := NewEngine(nil, zerolog.Nop())

	inv := benchmarkInvestor()
	inv.MonthlyIncome = decimal.NewFromInt(-1)
	_, err := engine.BuildPlan(inv, nil, domain.FallbackIndicators(), classifyAsOf)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	inv = benchmarkInvestor()
	goals := []domain.FinancialGoal{{Type: "mystery", TargetAmount: decimal.NewFromInt(1000), TimelineYears: 5}}
	_, err = engine.BuildPlan(inv, goals, domain.FallbackIndicators(), classifyAsOf)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEngine_ValidateOnly(t *testing.T) {
	engine := NewEngine(nil, zerolog.Nop())

	inv := benchmarkInvestor()
	inv.Dependents = []domain.Dependent{{Age: 8}, {Age: 12}}
	ind := domain.FallbackIndicators()
	res, profile := engine.ValidateOnly(inv, &ind, classifyAsOf)

	assert.True(t, res.OverallValid)
	assert.Equal(t, domain.ProfileCode("W8"), profile)
}
