package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finplan/finplan/internal/domain"
)

// noMax marks an unbounded upper limit in a bracket definition.
var noMax = decimal.NewFromInt(-1)

func inr(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// lifeStageBand is one life-cycle bucket. Bands overlap at the boundaries
// (28-30, 35, 50, 60); assignment is first match in declared order, so the
// order below is load-bearing.
type lifeStageBand struct {
	stage  domain.LifeStage
	minAge int
	maxAge int // -1 means unbounded
}

var lifeStageBands = []lifeStageBand{
	{domain.StageYoungAdult, 22, 30},
	{domain.StageYoungFamily, 28, 35},
	{domain.StageMidCareer, 35, 50},
	{domain.StagePreRetire, 50, 60},
	{domain.StageRetirement, 60, -1},
}

// LifeStageFor returns the life-cycle bucket for an age, first match wins.
// Ages below 22 are unclassified.
func LifeStageFor(age int) domain.LifeStage {
	for _, b := range lifeStageBands {
		if age >= b.minAge && (b.maxAge < 0 || age <= b.maxAge) {
			return b.stage
		}
	}
	return domain.StageUnclassified
}

// profileDef is one row of the ordered classification table. All range
// bounds are inclusive; maxAge/maxDeps of -1 and maxIncome of noMax mean
// unbounded.
type profileDef struct {
	code      domain.ProfileCode
	stage     domain.LifeStage
	tier      domain.IncomeLevel
	minAge    int
	maxAge    int
	minIncome decimal.Decimal
	maxIncome decimal.Decimal
	minDeps   int
	maxDeps   int
	desc      string
}

func (p *profileDef) matches(age int, income decimal.Decimal, deps int) bool {
	if age < p.minAge || (p.maxAge >= 0 && age > p.maxAge) {
		return false
	}
	if income.LessThan(p.minIncome) {
		return false
	}
	if !p.maxIncome.Equal(noMax) && income.GreaterThan(p.maxIncome) {
		return false
	}
	if deps < p.minDeps || (p.maxDeps >= 0 && deps > p.maxDeps) {
		return false
	}
	return true
}

// whiteCollarProfiles is the ordered white-collar classification table.
// Age ranges overlap across stages (e.g. 28-30, 35); the first matching
// row wins, so row order is part of the contract.
var whiteCollarProfiles = []profileDef{
	{"W1", domain.StageYoungAdult, domain.IncomeLow, 22, 30, inr(0), inr(30000), 0, 1, "Limited savings; starting career, possible debt."},
	{"W2", domain.StageYoungAdult, domain.IncomeSufficient, 22, 30, inr(30001), inr(60000), 0, 1, "Moderate savings; building emergency fund."},
	{"W3", domain.StageYoungAdult, domain.IncomeGood, 22, 30, inr(60001), noMax, 0, 1, "High savings; early retirement planning."},
	{"W4", domain.StageYoungFamily, domain.IncomeLow, 28, 35, inr(0), inr(45000), 1, 2, "Tight budget; focus on emergency fund, education."},
	{"W5", domain.StageYoungFamily, domain.IncomeSufficient, 28, 35, inr(45001), inr(90000), 1, 2, "Balanced savings; home purchase, education goals."},
	{"W6", domain.StageYoungFamily, domain.IncomeGood, 28, 35, inr(90001), noMax, 1, 2, "Strong savings; aggressive education, retirement."},
	{"W7", domain.StageMidCareer, domain.IncomeLow, 35, 50, inr(0), inr(67500), 2, 3, "High expenses; education, marriage, debt challenges."},
	{"W8", domain.StageMidCareer, domain.IncomeSufficient, 35, 50, inr(67501), inr(135000), 2, 3, "Stable savings; education, marriage, retirement focus."},
	{"W9", domain.StageMidCareer, domain.IncomeGood, 35, 50, inr(135001), noMax, 2, 3, "High savings; multiple goals, early retirement."},
	{"W10", domain.StagePreRetire, domain.IncomeLow, 50, 60, inr(0), inr(101250), 0, 2, "Limited savings; urgent retirement planning."},
	{"W11", domain.StagePreRetire, domain.IncomeSufficient, 50, 60, inr(101251), inr(202500), 0, 2, "Moderate savings; retirement, marriage goals."},
	{"W12", domain.StagePreRetire, domain.IncomeGood, 50, 60, inr(202501), noMax, 0, 2, "Strong savings; robust retirement planning."},
	{"W13", domain.StageRetirement, domain.IncomeLow, 60, -1, inr(0), inr(101250), 0, 1, "Reliant on savings/pension; preservation focus."},
	{"W14", domain.StageRetirement, domain.IncomeSufficient, 60, -1, inr(101251), inr(202500), 0, 1, "Stable income; balanced retirement spending."},
	{"W15", domain.StageRetirement, domain.IncomeGood, 60, -1, inr(202501), noMax, 0, 1, "High savings; comfortable retirement lifestyle."},
}

// blueCollarProfiles is the ordered blue-collar classification table.
var blueCollarProfiles = []profileDef{
	{"B1", domain.StageYoungAdult, domain.IncomeLow, 22, 30, inr(0), inr(12000), 0, 1, "Minimal savings; high debt risk."},
	{"B2", domain.StageYoungAdult, domain.IncomeSufficient, 22, 30, inr(12001), inr(20000), 0, 1, "Limited savings; emergency fund, small retirement."},
	{"B3", domain.StageYoungAdult, domain.IncomeGood, 22, 30, inr(20001), noMax, 0, 1, "Moderate savings; home purchase, retirement plans."},
	{"B4", domain.StageYoungFamily, domain.IncomeLow, 28, 35, inr(0), inr(18000), 1, 2, "Tight budget; debt reduction, emergency fund focus."},
	{"B5", domain.StageYoungFamily, domain.IncomeSufficient, 28, 35, inr(18001), inr(30000), 1, 2, "Modest savings; education, home purchase goals."},
	{"B6", domain.StageYoungFamily, domain.IncomeGood, 28, 35, inr(30001), noMax, 1, 2, "Decent savings; education, home, retirement planning."},
	{"B7", domain.StageMidCareer, domain.IncomeLow, 35, 50, inr(0), inr(27000), 2, 3, "High debt risk; education, marriage focus."},
	{"B8", domain.StageMidCareer, domain.IncomeSufficient, 35, 50, inr(27001), inr(45000), 2, 3, "Balanced savings; education, marriage, retirement."},
	{"B9", domain.StageMidCareer, domain.IncomeGood, 35, 50, inr(45001), noMax, 2, 3, "Strong savings; multiple goals."},
	{"B10", domain.StagePreRetire, domain.IncomeLow, 50, 60, inr(0), inr(40500), 0, 2, "Minimal savings; urgent retirement, debt challenges."},
	{"B11", domain.StagePreRetire, domain.IncomeSufficient, 50, 60, inr(40501), inr(67500), 0, 2, "Modest savings; retirement, marriage goals."},
	{"B12", domain.StagePreRetire, domain.IncomeGood, 50, 60, inr(67501), noMax, 0, 2, "Decent savings; comfortable retirement planning."},
	{"B13", domain.StageRetirement, domain.IncomeLow, 60, -1, inr(0), inr(40500), 0, 1, "Limited savings; preservation focus."},
	{"B14", domain.StageRetirement, domain.IncomeSufficient, 60, -1, inr(40501), inr(67500), 0, 1, "Stable savings; modest retirement lifestyle."},
	{"B15", domain.StageRetirement, domain.IncomeGood, 60, -1, inr(67501), noMax, 0, 1, "High savings; secure retirement lifestyle."},
}

func profileTableFor(occ domain.Occupation) []profileDef {
	switch occ {
	case domain.OccupationWhiteCollar:
		return whiteCollarProfiles
	case domain.OccupationBlueCollar:
		return blueCollarProfiles
	default:
		return nil
	}
}

func profileByCode(code domain.ProfileCode) (profileDef, bool) {
	for _, table := range [][]profileDef{whiteCollarProfiles, blueCollarProfiles} {
		for _, p := range table {
			if p.code == code {
				return p, true
			}
		}
	}
	return profileDef{}, false
}

// Income-level thresholds are expressed as daily income (monthly x 12 / 365).
var (
	wcDailyLow  = inr(1000)
	wcDailyGood = inr(2500)
	bcDailyLow  = inr(400)
	bcDailyGood = inr(1000)
)

// incomeLevelFor buckets monthly income into Low/Sufficient/Good using
// occupation-specific daily-income thresholds. Occupation Other uses the
// blue-collar thresholds.
func incomeLevelFor(monthly decimal.Decimal, occ domain.Occupation) domain.IncomeLevel {
	daily := monthly.Mul(inr(12)).Div(inr(365))
	low, good := bcDailyLow, bcDailyGood
	if occ == domain.OccupationWhiteCollar {
		low, good = wcDailyLow, wcDailyGood
	}
	switch {
	case daily.LessThan(low):
		return domain.IncomeLow
	case daily.LessThanOrEqual(good):
		return domain.IncomeSufficient
	default:
		return domain.IncomeGood
	}
}

// savingsSlab is one disposable-income bracket with its base savings rate.
type savingsSlab struct {
	maxDisposable decimal.Decimal // noMax means unbounded
	rate          decimal.Decimal
}

var blueCollarSavingsSlabs = []savingsSlab{
	{inr(15000), decimal.NewFromFloat(0.10)},
	{inr(25000), decimal.NewFromFloat(0.15)},
	{inr(30000), decimal.NewFromFloat(0.20)},
	{noMax, decimal.NewFromFloat(0.25)},
}

var whiteCollarSavingsSlabs = []savingsSlab{
	{inr(15000), decimal.NewFromFloat(0.15)},
	{inr(30000), decimal.NewFromFloat(0.17)},
	{inr(45000), decimal.NewFromFloat(0.20)},
	{noMax, decimal.NewFromFloat(0.25)},
}

// Savings modifier bonuses, all additive on the base rate.
var (
	ruralBonusRate         = decimal.NewFromFloat(0.03)
	homeOwnershipBonusRate = decimal.NewFromFloat(0.02)
	noEMIBonusRate         = decimal.NewFromFloat(0.01)
	goalCompletedBonusRate = decimal.NewFromFloat(0.01)
	maxGoalCompletedBonus  = decimal.NewFromFloat(0.03)
)

// spouseModifier is one spouse-income-ratio tier with its bonus rate.
type spouseModifier struct {
	maxRatio decimal.Decimal // noMax means unbounded
	bonus    decimal.Decimal
}

var wcSpouseModifiers = []spouseModifier{
	{decimal.NewFromFloat(0.20), decimal.NewFromFloat(0.005)},
	{decimal.NewFromFloat(0.50), decimal.NewFromFloat(0.01)},
	{noMax, decimal.NewFromFloat(0.02)},
}

var bcSpouseModifiers = []spouseModifier{
	{decimal.NewFromFloat(0.20), decimal.NewFromFloat(0.003)},
	{decimal.NewFromFloat(0.50), decimal.NewFromFloat(0.007)},
	{noMax, decimal.NewFromFloat(0.01)},
}

// dependentDeductionBand maps a dependent's age to a deduction rate on
// household income.
type dependentDeductionBand struct {
	minAge int
	maxAge int // -1 means unbounded
	rate   decimal.Decimal
}

var dependentDeductionBands = []dependentDeductionBand{
	{1, 5, decimal.NewFromFloat(0.05)},
	{6, 10, decimal.NewFromFloat(0.075)},
	{11, -1, decimal.NewFromFloat(0.10)},
}

var (
	maxDependentDeductionRate = decimal.NewFromFloat(0.30)
	maxDisposableFraction     = decimal.NewFromFloat(0.70)
	minSavingsRateOfHousehold = decimal.NewFromFloat(0.10)
)

// fundReturns maps each fund type to its worst/best-case annual return.
// The base case is the arithmetic mean of the two.
var fundReturns = map[domain.FundType][2]decimal.Decimal{
	domain.FundUltraShort:    {decimal.NewFromFloat(0.05), decimal.NewFromFloat(0.065)},
	domain.FundLiquid:        {decimal.NewFromFloat(0.04), decimal.NewFromFloat(0.06)},
	domain.FundBalancedAdv:   {decimal.NewFromFloat(0.06), decimal.NewFromFloat(0.12)},
	domain.FundValue:         {decimal.NewFromFloat(0.07), decimal.NewFromFloat(0.12)},
	domain.FundDividendYield: {decimal.NewFromFloat(0.07), decimal.NewFromFloat(0.12)},
	domain.FundContra:        {decimal.NewFromFloat(0.09), decimal.NewFromFloat(0.16)},
	domain.FundMultiCap:      {decimal.NewFromFloat(0.09), decimal.NewFromFloat(0.16)},
	domain.FundAggressiveHyb: {decimal.NewFromFloat(0.08), decimal.NewFromFloat(0.14)},
}

// Conservative default used when a fund type is missing from the table.
var defaultFundReturns = [2]decimal.Decimal{decimal.NewFromFloat(0.04), decimal.NewFromFloat(0.07)}

// stepUpRates holds the annual savings step-up rate per profile code, with
// a reduced rate under slowdown conditions.
type stepUpRate struct {
	base     decimal.Decimal
	slowdown decimal.Decimal
}

var defaultStepUpRate = stepUpRate{decimal.NewFromFloat(0.05), decimal.NewFromFloat(0.025)}

var stepUpRates = map[domain.ProfileCode]stepUpRate{
	"W1": {decimal.NewFromFloat(0.07), decimal.NewFromFloat(0.035)},
	"B8": {decimal.NewFromFloat(0.04), decimal.NewFromFloat(0.02)},
}

// AnnualStepUpRate returns the yearly savings escalation rate for a
// profile, reduced when the economy is in slowdown.
func AnnualStepUpRate(profile domain.ProfileCode, slowdown bool) decimal.Decimal {
	rates, ok := stepUpRates[profile]
	if !ok {
		rates = defaultStepUpRate
	}
	if slowdown {
		return rates.slowdown
	}
	return rates.base
}
