package calculation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finplan/finplan/internal/domain"
)

func validInvestor() *domain.InvestorInput {
	return &domain.InvestorInput{
		Name:             "Asha",
		Mobile:           "9876543210",
		Email:            "asha@example.com",
		BirthDate:        birthDateForAge(35),
		Occupation:       domain.OccupationWhiteCollar,
		MonthlyIncome:    decimal.NewFromInt(100000),
		Residence:        domain.ResidenceUrban,
		MarketExperience: domain.ExperienceModerate,
	}
}

func issueFields(issues []domain.Issue) []string {
	fields := make([]string, len(issues))
	for i, issue := range issues {
		fields[i] = issue.Field
	}
	return fields
}

func TestValidator_CleanInput(t *testing.T) {
	v := NewValidator(zerolog.Nop())

	res := v.Validate(validInvestor(), "W8", nil, classifyAsOf)
	assert.True(t, res.OverallValid)
	assert.Empty(t, res.Issues)
}

func TestValidator_Mobile(t *testing.T) {
	v := NewValidator(zerolog.Nop())

	inv := validInvestor()
	inv.Mobile = "12345"
	res := v.Validate(inv, domain.ProfileNone, nil, classifyAsOf)
	assert.False(t, res.OverallValid)
	assert.Contains(t, issueFields(res.Issues), "mobile")

	inv.Mobile = ""
	res = v.Validate(inv, domain.ProfileNone, nil, classifyAsOf)
	assert.True(t, res.OverallValid, "missing mobile is fine")
}

func TestValidator_Email(t *testing.T) {
	v := NewValidator(zerolog.Nop())

	inv := validInvestor()
	inv.Email = "not-an-email"
	res := v.Validate(inv, domain.ProfileNone, nil, classifyAsOf)

	assert.True(t, res.OverallValid, "bad e-mail is only a warning")
	require.Len(t, res.Issues, 1)
	assert.Equal(t, domain.IssueWarning, res.Issues[0].Kind)
}

func TestValidator_IncompleteQuestionnaire(t *testing.T) {
	v := NewValidator(zerolog.Nop())

	inv := validInvestor()
	inv.Questionnaire = []string{"Neutral", "Neutral"}
	res := v.Validate(inv, domain.ProfileNone, nil, classifyAsOf)

	assert.True(t, res.OverallValid, "incomplete answers only warn")
	assert.Contains(t, issueFields(res.Issues), "questionnaire")
}

func TestValidator_MinimumPlanningAge(t *testing.T) {
	v := NewValidator(zerolog.Nop())

	inv := validInvestor()
	inv.BirthDate = birthDateForAge(16)
	res := v.Validate(inv, domain.ProfileNone, nil, classifyAsOf)

	assert.False(t, res.OverallValid)
	assert.Contains(t, issueFields(res.Issues), "birth_date")
}

func TestValidator_IncomePlausibility(t *testing.T) {
	v := NewValidator(zerolog.Nop())

	inv := validInvestor()
	inv.Occupation = domain.OccupationBlueCollar
	inv.MonthlyIncome = decimal.NewFromInt(80000)
	res := v.Validate(inv, domain.ProfileNone, nil, classifyAsOf)
	assert.True(t, res.OverallValid, "plausibility findings are warnings")
	assert.NotEmpty(t, res.Issues, "high blue-collar income flagged")

	inv = validInvestor()
	inv.MonthlyIncome = decimal.NewFromInt(10000)
	res = v.Validate(inv, domain.ProfileNone, nil, classifyAsOf)
	assert.NotEmpty(t, res.Issues, "low white-collar income flagged")
}

func TestValidator_ProfileIncomeConsistency(t *testing.T) {
	v := NewValidator(zerolog.Nop())

	// W8 spans 67501-135000; 40000 falls below it.
	inv := validInvestor()
	inv.MonthlyIncome = decimal.NewFromInt(40000)
	res := v.Validate(inv, "W8", nil, classifyAsOf)

	assert.True(t, res.OverallValid)
	require.NotEmpty(t, res.Issues)
	assert.Equal(t, domain.IssueWarning, res.Issues[0].Kind)
	assert.Contains(t, res.Issues[0].Message, "W8")
}

func TestValidator_EconomicContext(t *testing.T) {
	v := NewValidator(zerolog.Nop())

	slowdown := &domain.EconomicIndicators{
		GDPGrowth:    domain.Indicator{Value: decimal.NewFromFloat(3.5), Period: "2024"},
		CPIInflation: domain.Indicator{Value: decimal.NewFromFloat(6.8), Period: "2024"},
	}

	inv := validInvestor()
	inv.Occupation = domain.OccupationBlueCollar
	inv.MonthlyIncome = decimal.NewFromInt(60000)
	res := v.Validate(inv, domain.ProfileNone, slowdown, classifyAsOf)

	assert.NotEmpty(t, res.Issues, "high blue-collar income under slowdown flagged")
	assert.Len(t, res.Suggestions, 2, "low growth and high inflation each add a suggestion")
}

func TestValidator_NeutralEconomicContext(t *testing.T) {
	v := NewValidator(zerolog.Nop())

	neutral := &domain.EconomicIndicators{
		GDPGrowth:    domain.Indicator{Value: decimal.NewFromFloat(6.5), Period: "2024"},
		CPIInflation: domain.Indicator{Value: decimal.NewFromFloat(5.0), Period: "2024"},
	}
	res := v.Validate(validInvestor(), "W8", neutral, classifyAsOf)

	assert.True(t, res.OverallValid)
	assert.Empty(t, res.Suggestions)
}
