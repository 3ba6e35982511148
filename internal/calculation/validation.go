package calculation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/finplan/finplan/internal/domain"
)

var (
	mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

const minPlanningAge = 18

// Income plausibility bounds per occupation, and the tighter bounds
// applied under an economic slowdown.
var (
	bcHighIncome         = decimal.NewFromInt(70000)
	wcLowIncome          = decimal.NewFromInt(15000)
	bcSlowdownHighIncome = decimal.NewFromInt(50000)
	wcSlowdownHighIncome = decimal.NewFromInt(200000)
	slowdownGDPThreshold = decimal.NewFromFloat(4.0)
	warningCPIThreshold  = decimal.NewFromFloat(6.0)
)

// Validator runs the advisory consistency checks. Findings never block
// downstream computation; hard input errors are the domain Validate
// method's concern.
type Validator struct {
	classifier *Classifier
	log        zerolog.Logger
}

func NewValidator(log zerolog.Logger) *Validator {
	return &Validator{
		classifier: NewClassifier(),
		log:        log.With().Str("component", "validation").Logger(),
	}
}

// Validate checks contact fields, planning age, income plausibility
// against occupation, the matched profile's income range and the
// economic context. OverallValid is false only on error-kind issues.
func (v *Validator) Validate(inv *domain.InvestorInput, profile domain.ProfileCode, ind *domain.EconomicIndicators, asOf time.Time) domain.ValidationResult {
	res := domain.ValidationResult{OverallValid: true}

	v.checkMobile(inv, &res)
	v.checkEmail(inv, &res)
	v.checkBirthDate(inv, asOf, &res)
	v.checkQuestionnaire(inv, &res)
	v.checkIncome(inv, profile, &res)
	if ind != nil {
		v.checkEconomicContext(inv, ind, &res)
	}

	v.log.Debug().
		Bool("overall_valid", res.OverallValid).
		Int("issues", len(res.Issues)).
		Msg("validated investor")
	return res
}

func (v *Validator) checkMobile(inv *domain.InvestorInput, res *domain.ValidationResult) {
	if inv.Mobile == "" {
		return
	}
	if !mobilePattern.MatchString(inv.Mobile) {
		res.AddError("mobile", "invalid mobile number format, expected 10 digits starting with 6, 7, 8 or 9")
	}
}

func (v *Validator) checkEmail(inv *domain.InvestorInput, res *domain.ValidationResult) {
	if inv.Email == "" {
		return
	}
	if !emailPattern.MatchString(inv.Email) {
		res.AddWarning("email", "invalid e-mail address format")
	}
}

func (v *Validator) checkBirthDate(inv *domain.InvestorInput, asOf time.Time, res *domain.ValidationResult) {
	age, err := inv.Age(asOf)
	if err != nil {
		res.AddError("birth_date", "birth date is missing, unparseable or in the future")
		return
	}
	if age < minPlanningAge {
		res.AddError("birth_date", fmt.Sprintf("investor must be at least %d years old for planning", minPlanningAge))
	}
}

func (v *Validator) checkQuestionnaire(inv *domain.InvestorInput, res *domain.ValidationResult) {
	if n := len(inv.Questionnaire); n > 0 && n != 5 {
		res.AddWarning("questionnaire", fmt.Sprintf("expected 5 answers, got %d; scoring substitutes the neutral default", n))
	}
}

func (v *Validator) checkIncome(inv *domain.InvestorInput, profile domain.ProfileCode, res *domain.ValidationResult) {
	income := inv.MonthlyIncome
	if income.IsNegative() {
		res.AddError("monthly_income", "income cannot be negative")
		return
	}

	switch {
	case inv.Occupation == domain.OccupationBlueCollar && income.GreaterThan(bcHighIncome):
		res.AddWarning("monthly_income", fmt.Sprintf("income %s seems high for a blue-collar profile, please verify", income.StringFixed(0)))
	case inv.Occupation == domain.OccupationWhiteCollar && income.IsPositive() && income.LessThan(wcLowIncome):
		res.AddWarning("monthly_income", fmt.Sprintf("income %s seems low for a white-collar profile, please verify", income.StringFixed(0)))
	}

	if !profile.Matched() {
		return
	}
	min, max, unbounded, ok := v.classifier.IncomeRange(profile)
	if !ok {
		return
	}
	if income.LessThan(min) || (!unbounded && income.GreaterThan(max)) {
		rangeStr := fmt.Sprintf("%s and above", min.StringFixed(0))
		if !unbounded {
			rangeStr = fmt.Sprintf("%s-%s", min.StringFixed(0), max.StringFixed(0))
		}
		res.AddWarning("monthly_income", fmt.Sprintf("income %s is outside the typical range (%s) for profile %s, please verify",
			income.StringFixed(0), rangeStr, profile))
	}
}

// checkEconomicContext flags incomes that look implausible under a
// slowdown and surfaces early-warning suggestions from the snapshot.
func (v *Validator) checkEconomicContext(inv *domain.InvestorInput, ind *domain.EconomicIndicators, res *domain.ValidationResult) {
	gdp := ind.GDPGrowth.Value
	cpi := ind.CPIInflation.Value
	income := inv.MonthlyIncome

	if gdp.LessThan(slowdownGDPThreshold) {
		switch {
		case inv.Occupation == domain.OccupationBlueCollar && income.GreaterThan(bcSlowdownHighIncome):
			res.AddWarning("monthly_income", fmt.Sprintf("given the economic slowdown (GDP growth %s%%), income %s for a blue-collar profile is notably high, please double-check",
				gdp.String(), income.StringFixed(0)))
		case inv.Occupation == domain.OccupationWhiteCollar && income.GreaterThan(wcSlowdownHighIncome):
			res.AddWarning("monthly_income", fmt.Sprintf("given the economic slowdown (GDP growth %s%%), income %s for a white-collar profile is notably high, please double-check",
				gdp.String(), income.StringFixed(0)))
		}
		res.Suggestions = append(res.Suggestions, fmt.Sprintf("GDP growth is below %s%% (%s%% in %s); prefer conservative savings and debt reduction",
			slowdownGDPThreshold.String(), gdp.String(), ind.GDPGrowth.Period))
	}
	if cpi.GreaterThan(warningCPIThreshold) {
		res.Suggestions = append(res.Suggestions, fmt.Sprintf("CPI inflation is above %s%% (%s%% in %s); review essential-expense assumptions and emergency reserves",
			warningCPIThreshold.String(), cpi.String(), ind.CPIInflation.Period))
	}
}
