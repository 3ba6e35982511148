package calculation

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/finplan/finplan/internal/domain"
)

var (
	roundStepSmall     = decimal.NewFromInt(100)
	roundStepLarge     = decimal.NewFromInt(500)
	roundStepThreshold = decimal.NewFromInt(4000)
	hundredPct         = decimal.NewFromInt(100)
)

// SavingsCalculator derives a recommended monthly savings amount from
// disposable income, an occupation-specific base rate and additive
// modifier bonuses.
type SavingsCalculator struct {
	log zerolog.Logger
}

func NewSavingsCalculator(log zerolog.Logger) *SavingsCalculator {
	return &SavingsCalculator{log: log.With().Str("component", "savings").Logger()}
}

// Compute runs the full savings pipeline: dependent deduction,
// disposable income, base rate lookup, modifier bonuses, floor and
// display rounding. Zero or negative household income yields an
// all-zero detail rather than an error.
func (sc *SavingsCalculator) Compute(inv *domain.InvestorInput) domain.SavingsDetail {
	household := inv.HouseholdIncome()
	d := domain.SavingsDetail{HouseholdIncome: household}
	if !household.IsPositive() {
		return d
	}

	d.DependentDeductionRate = dependentDeductionRate(inv.Dependents)
	d.DependentDeduction = household.Mul(d.DependentDeductionRate)

	// Disposable income, clamped to [0, 70% of household].
	disposable := household.Sub(inv.MonthlyRent).Sub(inv.MonthlyEMI).Sub(d.DependentDeduction)
	if disposable.IsNegative() {
		disposable = decimal.Zero
	}
	if limit := household.Mul(maxDisposableFraction); disposable.GreaterThan(limit) {
		disposable = limit
	}
	d.DisposableIncome = disposable

	d.BaseRate = baseSavingsRate(disposable, inv.Occupation)
	d.ModifierBonusRate = sc.modifierBonus(inv)
	d.FinalRate = d.BaseRate.Add(d.ModifierBonusRate)
	if one := decimal.NewFromInt(1); d.FinalRate.GreaterThan(one) {
		d.FinalRate = one
	}

	d.RawSavings = disposable.Mul(d.FinalRate)
	if disposable.IsPositive() {
		d.MinimumSavings = household.Mul(minSavingsRateOfHousehold)
	}

	final := decimal.Max(d.RawSavings, d.MinimumSavings)
	d.FinalSavings = roundToDisplay(final)

	d.BlendedRate = d.FinalSavings.Div(household).Mul(hundredPct).Round(2)
	d.FeasibilityIndex = feasibilityIndex(disposable, d.FinalSavings)

	sc.log.Debug().
		Str("disposable", disposable.StringFixed(2)).
		Str("final_rate", d.FinalRate.StringFixed(4)).
		Str("final_savings", d.FinalSavings.StringFixed(2)).
		Msg("computed savings")

	return d
}

// dependentDeductionRate sums per-dependent age-band rates, capped at
// the household-wide maximum.
func dependentDeductionRate(deps []domain.Dependent) decimal.Decimal {
	total := decimal.Zero
	for _, dep := range deps {
		for _, band := range dependentDeductionBands {
			if dep.Age >= band.minAge && (band.maxAge < 0 || dep.Age <= band.maxAge) {
				total = total.Add(band.rate)
				break
			}
		}
	}
	if total.GreaterThan(maxDependentDeductionRate) {
		return maxDependentDeductionRate
	}
	return total
}

// baseSavingsRate looks up the disposable-income slab for the
// occupation. Occupation Other uses the blue-collar slabs.
func baseSavingsRate(disposable decimal.Decimal, occ domain.Occupation) decimal.Decimal {
	slabs := blueCollarSavingsSlabs
	if occ == domain.OccupationWhiteCollar {
		slabs = whiteCollarSavingsSlabs
	}
	for _, s := range slabs {
		if s.maxDisposable.Equal(noMax) || disposable.LessThanOrEqual(s.maxDisposable) {
			return s.rate
		}
	}
	return slabs[len(slabs)-1].rate
}

// modifierBonus sums the additive rate bonuses: rural residence, home
// ownership, zero EMI, completed dependent goals (capped) and the
// spouse-income-ratio tier.
func (sc *SavingsCalculator) modifierBonus(inv *domain.InvestorInput) decimal.Decimal {
	bonus := decimal.Zero
	if inv.Residence == domain.ResidenceRural {
		bonus = bonus.Add(ruralBonusRate)
	}
	if inv.OwnsHome {
		bonus = bonus.Add(homeOwnershipBonusRate)
	}
	if inv.MonthlyEMI.IsZero() {
		bonus = bonus.Add(noEMIBonusRate)
	}

	if inv.CompletedDependentGoals > 0 {
		goalBonus := goalCompletedBonusRate.Mul(decimal.NewFromInt(int64(inv.CompletedDependentGoals)))
		if goalBonus.GreaterThan(maxGoalCompletedBonus) {
			goalBonus = maxGoalCompletedBonus
		}
		bonus = bonus.Add(goalBonus)
	}

	bonus = bonus.Add(spouseBonus(inv))
	return bonus
}

// spouseBonus awards a tiered bonus by the spouse/household income
// ratio. With no primary income the ratio is 1 and the top tier applies.
func spouseBonus(inv *domain.InvestorInput) decimal.Decimal {
	household := inv.HouseholdIncome()
	if !inv.SpouseMonthlyIncome.IsPositive() || !household.IsPositive() {
		return decimal.Zero
	}
	tiers := bcSpouseModifiers
	if inv.Occupation == domain.OccupationWhiteCollar {
		tiers = wcSpouseModifiers
	}
	ratio := inv.SpouseMonthlyIncome.Div(household)
	for _, t := range tiers {
		if t.maxRatio.Equal(noMax) || ratio.LessThanOrEqual(t.maxRatio) {
			return t.bonus
		}
	}
	return tiers[len(tiers)-1].bonus
}

// roundToDisplay rounds to the nearest 100 below 4000, otherwise to
// the nearest 500, with ties going to the even multiple. The threshold
// comparison uses the pre-rounded value.
func roundToDisplay(v decimal.Decimal) decimal.Decimal {
	step := roundStepLarge
	if v.LessThan(roundStepThreshold) {
		step = roundStepSmall
	}
	return v.Div(step).RoundBank(0).Mul(step)
}

// feasibilityIndex is the share of disposable income left after saving,
// as a 0-100 percentage, floored at 0.
func feasibilityIndex(disposable, finalSavings decimal.Decimal) decimal.Decimal {
	if !disposable.IsPositive() {
		return decimal.Zero
	}
	idx := disposable.Sub(finalSavings).Div(disposable).Mul(hundredPct)
	if idx.IsNegative() {
		return decimal.Zero
	}
	return idx.Round(2)
}
