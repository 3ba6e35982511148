package calculation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/finplan/finplan/internal/audit"
	"github.com/finplan/finplan/internal/domain"
)

// Per-question answer lookups for the five-item psychometric
// questionnaire, in fixed question order. Unknown answers score 1.
var (
	greedAnswers = map[string]int{
		"Not likely at all": 1, "Somewhat unlikely": 2, "Neutral": 3,
		"Somewhat likely": 4, "Very likely": 5,
	}
	preferenceAnswers = map[string]int{
		"Definitely Fixed Deposit": 1, "Lean towards Fixed Deposit": 2, "Neutral": 3,
		"Lean towards equity fund": 4, "Definitely equity fund": 5,
	}
	willingnessAnswers = map[string]int{
		"Not willing at all": 1, "Somewhat reluctant": 2, "Neutral": 3,
		"Somewhat willing": 4, "Very willing": 5,
	}
	reactionAnswers = map[string]int{
		"Sell all investments immediately": 1, "Sell some investments and wait": 2,
		"Hold and wait for recovery": 3, "Hold and monitor closely": 4,
		"Invest more during the dip": 5,
	}
	anxietyAnswers = map[string]int{
		"Extremely anxious, unable to sleep": 1, "Quite anxious, very concerned": 2,
		"Mildly anxious, somewhat concerned": 3, "Not very anxious, can manage": 4,
		"Not anxious at all, comfortable": 5,
	}
	questionLookups = []map[string]int{
		greedAnswers, preferenceAnswers, willingnessAnswers, reactionAnswers, anxietyAnswers,
	}
)

// Economic adjustment thresholds and magnitudes (additive points model):
//
//	CPI inflation > 6.0%               -2
//	GDP growth   < 5.0%                -2
//	GDP growth   > 7.0% and CPI < 4.0% +2
var (
	cpiHighThreshold  = decimal.NewFromFloat(6.0)
	gdpLowThreshold   = decimal.NewFromFloat(5.0)
	gdpHighThreshold  = decimal.NewFromFloat(7.0)
	cpiLowThreshold   = decimal.NewFromFloat(4.0)
	econPenaltyPoints = decimal.NewFromInt(2)
	econBonusPoints   = decimal.NewFromInt(2)
	goalPenaltyPoints = decimal.NewFromInt(1)
)

// RiskScorer computes the composite 0-100 risk capacity score and its
// 0-25 rescaled rating. Every scoring call produces an immutable
// breakdown entry handed to the configured audit recorder.
type RiskScorer struct {
	emergency EmergencyFundCalculator
	recorder  audit.Recorder
	log       zerolog.Logger
}

// NewRiskScorer creates a scorer. A nil recorder discards audit entries.
func NewRiskScorer(recorder audit.Recorder, log zerolog.Logger) *RiskScorer {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &RiskScorer{
		recorder: recorder,
		log:      log.With().Str("component", "risk").Logger(),
	}
}

// SetRecorder replaces the audit recorder. Nil installs a no-op recorder.
func (rs *RiskScorer) SetRecorder(recorder audit.Recorder) {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	rs.recorder = recorder
}

// Score computes the full weighted-sum score plus economic and goal
// adjustments. The only error conditions are malformed inputs (the birth
// date); business outcomes such as zero income are values inside the
// breakdown, never errors.
func (rs *RiskScorer) Score(inv *domain.InvestorInput, ind domain.EconomicIndicators, goals []domain.FinancialGoal, asOf time.Time) (*domain.RiskScoreBreakdown, error) {
	age, err := inv.Age(asOf)
	if err != nil {
		return nil, err
	}

	household := inv.HouseholdIncome()
	b := &domain.RiskScoreBreakdown{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Age:       age,
	}

	b.StatedPreferencePoints = statedPreferencePoints(inv.Questionnaire)

	b.RequiredEmergencyFund = rs.emergency.Required(household, inv.Occupation, inv.Residence, inv.OwnsHome)
	b.EmergencyAdequacyPoints, b.AdequacyRatio = emergencyAdequacyPoints(inv.EmergencyFund, b.RequiredEmergencyFund, household)

	b.DebtPoints, b.DebtBurdenRatio = debtBurdenPoints(inv.MonthlyRent, inv.MonthlyEMI, household)
	b.LifeCyclePoints = lifeCyclePoints(age)
	b.IncomePoints = incomeOccupationPoints(household, inv.Occupation)
	b.DependentsPoints = dependentsPoints(len(inv.Dependents))
	b.ExperiencePoints = experiencePoints(inv.MarketExperience)

	b.BaseScore = clampScore(b.StatedPreferencePoints.
		Add(b.EmergencyAdequacyPoints).
		Add(b.DebtPoints).
		Add(b.LifeCyclePoints).
		Add(b.IncomePoints).
		Add(b.DependentsPoints).
		Add(b.ExperiencePoints))

	b.EconomicAdjustment, b.EconomicDetail = economicAdjustment(ind)
	b.EconomicFallback = ind.IsFallback
	adjusted := clampScore(b.BaseScore.Add(b.EconomicAdjustment))

	b.GoalAdjustment, b.GoalDetail = goalAdjustment(goals)
	adjusted = clampScore(adjusted.Add(b.GoalAdjustment))
	b.AdjustedScore = adjusted

	// Rescale onto 0-25: ceil(adjusted / 4).
	b.FinalScore = int(adjusted.Div(decimal.NewFromInt(4)).Ceil().IntPart())
	b.Rating = domain.RatingForScore(b.FinalScore)
	b.Reason = fmt.Sprintf("Economic factors: %s. Goal factors: %s.", b.EconomicDetail, b.GoalDetail)

	rs.recorder.Record(*b)
	rs.log.Debug().
		Str("base_score", b.BaseScore.StringFixed(2)).
		Int("final_score", b.FinalScore).
		Str("rating", string(b.Rating)).
		Msg("scored investor")

	return b, nil
}

// statedPreferencePoints rescales the raw 5-25 questionnaire sum onto
// 0-30 points. An incomplete answer set scores the neutral midpoint.
func statedPreferencePoints(answers []string) decimal.Decimal {
	if len(answers) != len(questionLookups) {
		return decimal.NewFromInt(15)
	}
	raw := 0
	for i, lookup := range questionLookups {
		score, ok := lookup[answers[i]]
		if !ok {
			score = 1
		}
		raw += score
	}
	// ((raw - 5) / 20) * 30
	return decimal.NewFromInt(int64(raw - 5)).Mul(decimal.NewFromInt(30)).Div(decimal.NewFromInt(20))
}

// emergencyAdequacyPoints buckets the current/required fund ratio into
// six tiers. Tier lower bounds are inclusive: a ratio of exactly 0.25
// lands in the second tier.
func emergencyAdequacyPoints(current, required, householdIncome decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if !required.IsPositive() {
		// No required fund: neutral when there is income, maximal when
		// there is nothing to protect.
		if householdIncome.IsPositive() {
			return decimal.NewFromInt(10), decimal.Zero
		}
		return decimal.NewFromInt(20), decimal.Zero
	}
	ratio := current.Div(required)
	var points int64
	switch {
	case ratio.LessThan(decimal.NewFromFloat(0.25)):
		points = 2
	case ratio.LessThan(decimal.NewFromFloat(0.50)):
		points = 5
	case ratio.LessThan(decimal.NewFromFloat(0.75)):
		points = 9
	case ratio.LessThan(decimal.NewFromInt(1)):
		points = 13
	case ratio.LessThan(decimal.NewFromFloat(1.50)):
		points = 17
	default:
		points = 20
	}
	return decimal.NewFromInt(points), ratio
}

// debtBurdenPoints buckets (rent + EMI) / household income. With no
// income the ratio is undefined: no obligations scores best case, any
// obligation scores worst case.
func debtBurdenPoints(rent, emi, householdIncome decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	obligations := rent.Add(emi)
	if !householdIncome.IsPositive() {
		if obligations.IsZero() {
			return decimal.NewFromInt(15), decimal.Zero
		}
		return decimal.Zero, decimal.NewFromInt(1)
	}
	ratio := obligations.Div(householdIncome)
	var points int64
	switch {
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.10)):
		points = 15
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.20)):
		points = 12
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.30)):
		points = 9
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.40)):
		points = 6
	case ratio.LessThanOrEqual(decimal.NewFromFloat(0.50)):
		points = 3
	default:
		points = 0
	}
	return decimal.NewFromInt(points), ratio
}

// lifeCyclePoints awards more risk capacity to younger investors
// (monotonic younger-is-higher model).
func lifeCyclePoints(age int) decimal.Decimal {
	var points int64
	switch {
	case age >= 22 && age <= 30:
		points = 15
	case age >= 31 && age <= 40:
		points = 12
	case age >= 41 && age <= 50:
		points = 9
	case age >= 51 && age <= 60:
		points = 6
	default:
		points = 3
	}
	return decimal.NewFromInt(points)
}

// incomeOccupationPoints cross-tabulates income level with occupation.
func incomeOccupationPoints(householdIncome decimal.Decimal, occ domain.Occupation) decimal.Decimal {
	level := incomeLevelFor(householdIncome, occ)
	wc := occ == domain.OccupationWhiteCollar
	bc := occ == domain.OccupationBlueCollar
	var points int64
	switch {
	case wc && level == domain.IncomeGood:
		points = 10
	case (wc && level == domain.IncomeSufficient) || (bc && level == domain.IncomeGood):
		points = 8
	case (wc && level == domain.IncomeLow) || (bc && level == domain.IncomeSufficient):
		points = 6
	default:
		points = 3
	}
	return decimal.NewFromInt(points)
}

func dependentsPoints(count int) decimal.Decimal {
	var points int64
	switch count {
	case 0:
		points = 5
	case 1:
		points = 4
	case 2:
		points = 2
	default:
		points = 0
	}
	return decimal.NewFromInt(points)
}

func experiencePoints(exp domain.MarketExperience) decimal.Decimal {
	var points int64
	switch exp {
	case domain.ExperienceExtensive:
		points = 5
	case domain.ExperienceModerate:
		points = 3
	case domain.ExperienceLimited:
		points = 2
	default:
		points = 1
	}
	return decimal.NewFromInt(points)
}

// economicAdjustment applies the additive-points model against the
// current indicator snapshot.
func economicAdjustment(ind domain.EconomicIndicators) (decimal.Decimal, string) {
	gdp := ind.GDPGrowth.Value
	cpi := ind.CPIInflation.Value
	points := decimal.Zero
	var reasons []string

	if cpi.GreaterThan(cpiHighThreshold) {
		points = points.Sub(econPenaltyPoints)
		reasons = append(reasons, fmt.Sprintf("CPI above 6.0%% (%s%% in %s)", cpi.String(), ind.CPIInflation.Period))
	}
	if gdp.LessThan(gdpLowThreshold) {
		points = points.Sub(econPenaltyPoints)
		reasons = append(reasons, fmt.Sprintf("GDP below 5.0%% (%s%% in %s)", gdp.String(), ind.GDPGrowth.Period))
	}
	if gdp.GreaterThan(gdpHighThreshold) && cpi.LessThan(cpiLowThreshold) {
		points = points.Add(econBonusPoints)
		reasons = append(reasons, fmt.Sprintf("strong growth with low inflation (GDP %s%%, CPI %s%%)", gdp.String(), cpi.String()))
	}
	if len(reasons) == 0 {
		return points, "none"
	}
	return points, strings.Join(reasons, "; ")
}

// goalAdjustment subtracts one point when any priority-1 goal falls due
// within three years, reflecting reduced risk capacity.
func goalAdjustment(goals []domain.FinancialGoal) (decimal.Decimal, string) {
	for _, g := range goals {
		if g.Type.Priority() == 1 && g.TimelineYears >= 0 && g.TimelineYears <= 3 {
			return goalPenaltyPoints.Neg(), fmt.Sprintf("high-priority goal %q due within 3 years", g.Type)
		}
	}
	return decimal.Zero, "none"
}

func clampScore(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	if hundred := decimal.NewFromInt(100); v.GreaterThan(hundred) {
		return hundred
	}
	return v
}
