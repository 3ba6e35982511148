package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finplan/finplan/internal/domain"
)

var (
	one          = decimal.NewFromInt(1)
	monthsInYear = decimal.NewFromInt(12)
)

// GoalEngine computes SIP requirements, suggests fund types and orders
// goals by their fixed priority ranking.
type GoalEngine struct{}

func NewGoalEngine() *GoalEngine { return &GoalEngine{} }

// ReturnRates returns the (worst, base, best) annual return rates for a
// fund type. The base case is the arithmetic mean of worst and best.
// Unknown fund types fall back to a conservative default band.
func (ge *GoalEngine) ReturnRates(fund domain.FundType) (worst, base, best decimal.Decimal) {
	band, ok := fundReturns[fund]
	if !ok {
		band = defaultFundReturns
	}
	worst, best = band[0], band[1]
	base = worst.Add(best).Div(decimal.NewFromInt(2))
	return worst, base, best
}

// MonthlySIP computes the ordinary-annuity monthly contribution needed
// to grow to the target over the timeline, after the current corpus
// compounds at the same rate. Non-positive targets or timelines, and
// targets already covered by the corpus, require no contribution.
func (ge *GoalEngine) MonthlySIP(target decimal.Decimal, timelineYears int, annualReturn, currentCorpus decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() || timelineYears <= 0 {
		return decimal.Zero
	}
	months := int64(timelineYears) * 12
	n := decimal.NewFromInt(months)

	if !annualReturn.IsPositive() {
		remainder := target.Sub(currentCorpus)
		if !remainder.IsPositive() {
			return decimal.Zero
		}
		return remainder.Div(n).Round(2)
	}

	r := annualReturn.Div(monthsInYear)
	growth := one.Add(r).Pow(n)
	remainder := target.Sub(currentCorpus.Mul(growth))
	if !remainder.IsPositive() {
		return decimal.Zero
	}
	sip := remainder.Mul(r).Div(growth.Sub(one))
	if sip.IsNegative() {
		return decimal.Zero
	}
	return sip.Round(2)
}

// Scenarios computes the worst/base/best-case SIP for a goal under a
// fund type's return band.
func (ge *GoalEngine) Scenarios(target decimal.Decimal, timelineYears int, fund domain.FundType, currentCorpus decimal.Decimal) domain.SIPScenarios {
	worst, base, best := ge.ReturnRates(fund)
	return domain.SIPScenarios{
		Worst: domain.SIPScenario{AnnualReturn: worst, Monthly: ge.MonthlySIP(target, timelineYears, worst, currentCorpus)},
		Base:  domain.SIPScenario{AnnualReturn: base, Monthly: ge.MonthlySIP(target, timelineYears, base, currentCorpus)},
		Best:  domain.SIPScenario{AnnualReturn: best, Monthly: ge.MonthlySIP(target, timelineYears, best, currentCorpus)},
	}
}

// Prioritize orders goals by the fixed goal-type ranking, preserving
// input order on ties. The input slice is not modified.
func (ge *GoalEngine) Prioritize(goals []domain.FinancialGoal) []domain.FinancialGoal {
	ordered := make([]domain.FinancialGoal, len(goals))
	copy(ordered, goals)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Type.Priority() < ordered[j].Type.Priority()
	})
	return ordered
}

// SuggestFundType picks a fund type from the goal type, timeline bucket
// and risk rating. Debt-reduction and emergency-fund goals are
// special-cased to short-duration funds regardless of rating.
func (ge *GoalEngine) SuggestFundType(goalType domain.GoalType, timelineYears int, rating domain.RiskRating) domain.FundType {
	switch goalType {
	case domain.GoalDebtReduction:
		return domain.FundUltraShort
	case domain.GoalEmergencyFund:
		if timelineYears <= 1 {
			return domain.FundLiquid
		}
		return domain.FundUltraShort
	}

	switch {
	case timelineYears <= 1:
		if rating == domain.RatingRiskAverse {
			return domain.FundUltraShort
		}
		return domain.FundValue
	case timelineYears <= 3:
		if rating == domain.RatingModerate {
			return domain.FundBalancedAdv
		}
		return domain.FundValue
	case timelineYears <= 7:
		switch rating {
		case domain.RatingRiskAverse:
			return domain.FundValue
		case domain.RatingModerate:
			return domain.FundBalancedAdv
		default:
			return domain.FundMultiCap
		}
	default:
		switch rating {
		case domain.RatingRiskAverse:
			return domain.FundBalancedAdv
		case domain.RatingModerate:
			return domain.FundMultiCap
		default:
			return domain.FundContra
		}
	}
}

// BuildPlans prioritizes the goals and attaches a suggested fund type
// and SIP scenarios to each.
func (ge *GoalEngine) BuildPlans(goals []domain.FinancialGoal, rating domain.RiskRating) []domain.GoalPlan {
	ordered := ge.Prioritize(goals)
	plans := make([]domain.GoalPlan, 0, len(ordered))
	for _, g := range ordered {
		fund := ge.SuggestFundType(g.Type, g.TimelineYears, rating)
		plans = append(plans, domain.GoalPlan{
			Goal:      g,
			Priority:  g.Type.Priority(),
			FundType:  fund,
			Scenarios: ge.Scenarios(g.TargetAmount, g.TimelineYears, fund, g.CurrentCorpus),
		})
	}
	return plans
}
