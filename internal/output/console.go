package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/finplan/finplan/internal/domain"
)

// ConsoleFormatter writes a human-readable plan report.
type ConsoleFormatter struct{}

func NewConsoleFormatter() *ConsoleFormatter { return &ConsoleFormatter{} }

// Write renders the full plan to w.
func (f *ConsoleFormatter) Write(w io.Writer, plan *domain.PlanResult) error {
	var b strings.Builder

	title := "FINANCIAL PLAN"
	if plan.InvestorName != "" {
		title = fmt.Sprintf("FINANCIAL PLAN FOR %s", strings.ToUpper(plan.InvestorName))
	}
	writeHeader(&b, title)
	fmt.Fprintf(&b, "As of: %s\n\n", plan.AsOf.Format("2006-01-02"))

	f.writeProfile(&b, plan)
	f.writeRisk(&b, plan)
	f.writeSavings(&b, plan)
	f.writeGoals(&b, plan)
	f.writeIndicators(&b, plan)
	f.writeValidation(&b, plan)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeHeader(b *strings.Builder, title string) {
	line := strings.Repeat("=", len(title))
	fmt.Fprintf(b, "%s\n%s\n", title, line)
}

func writeSection(b *strings.Builder, title string) {
	fmt.Fprintf(b, "%s\n%s\n", title, strings.Repeat("-", len(title)))
}

func (f *ConsoleFormatter) writeProfile(b *strings.Builder, plan *domain.PlanResult) {
	writeSection(b, "PROFILE")
	if plan.ProfileCode.Matched() {
		fmt.Fprintf(b, "Profile:    %s\n", plan.ProfileCode)
		if plan.ProfileDescription != "" {
			fmt.Fprintf(b, "Summary:    %s\n", plan.ProfileDescription)
		}
	} else {
		fmt.Fprintf(b, "Profile:    no matching profile\n")
	}
	fmt.Fprintf(b, "Life stage: %s\n", plan.LifeStage)
	fmt.Fprintf(b, "Age:        %d\n\n", plan.Age)
}

func (f *ConsoleFormatter) writeRisk(b *strings.Builder, plan *domain.PlanResult) {
	if plan.Risk == nil {
		return
	}
	writeSection(b, "RISK ASSESSMENT")
	r := plan.Risk
	fmt.Fprintf(b, "Base score:          %s / 100\n", r.BaseScore.StringFixed(1))
	fmt.Fprintf(b, "Economic adjustment: %s (%s)\n", r.EconomicAdjustment.StringFixed(0), r.EconomicDetail)
	fmt.Fprintf(b, "Goal adjustment:     %s (%s)\n", r.GoalAdjustment.StringFixed(0), r.GoalDetail)
	fmt.Fprintf(b, "Final score:         %d / 25\n", r.FinalScore)
	fmt.Fprintf(b, "Rating:              %s\n\n", r.Rating)
}

func (f *ConsoleFormatter) writeSavings(b *strings.Builder, plan *domain.PlanResult) {
	writeSection(b, "SAVINGS RECOMMENDATION")
	s := plan.Savings
	fmt.Fprintf(b, "Household income:     %s\n", FormatINR(s.HouseholdIncome))
	fmt.Fprintf(b, "Disposable income:    %s\n", FormatINR(s.DisposableIncome))
	fmt.Fprintf(b, "Savings rate:         %s (base %s + modifiers %s)\n",
		FormatPercent(s.FinalRate), FormatPercent(s.BaseRate), FormatPercent(s.ModifierBonusRate))
	fmt.Fprintf(b, "Recommended savings:  %s / month\n", FormatINR(s.FinalSavings))
	fmt.Fprintf(b, "Feasibility index:    %s / 100\n", s.FeasibilityIndex.StringFixed(1))
	fmt.Fprintf(b, "Annual step-up rate:  %s\n", FormatPercent(plan.AnnualStepUpRate))
	fmt.Fprintf(b, "Emergency fund req.:  %s\n\n", FormatINR(plan.RequiredEmergencyFund))
}

func (f *ConsoleFormatter) writeGoals(b *strings.Builder, plan *domain.PlanResult) {
	if len(plan.Goals) == 0 {
		return
	}
	writeSection(b, "GOALS (BY PRIORITY)")
	for i, g := range plan.Goals {
		name := g.Goal.Name
		if name == "" {
			name = string(g.Goal.Type)
		}
		fmt.Fprintf(b, "%d. %s (%s, %d years)\n", i+1, name, g.Goal.Type, g.Goal.TimelineYears)
		fmt.Fprintf(b, "   Target: %s  Corpus: %s  Fund: %s\n",
			FormatINR(g.Goal.TargetAmount), FormatINR(g.Goal.CurrentCorpus), g.FundType)
		fmt.Fprintf(b, "   Monthly SIP: worst %s @ %s | base %s @ %s | best %s @ %s\n",
			FormatINR(g.Scenarios.Worst.Monthly), FormatPercent(g.Scenarios.Worst.AnnualReturn),
			FormatINR(g.Scenarios.Base.Monthly), FormatPercent(g.Scenarios.Base.AnnualReturn),
			FormatINR(g.Scenarios.Best.Monthly), FormatPercent(g.Scenarios.Best.AnnualReturn))
	}
	b.WriteString("\n")
}

func (f *ConsoleFormatter) writeIndicators(b *strings.Builder, plan *domain.PlanResult) {
	writeSection(b, "ECONOMIC CONTEXT")
	ind := plan.Indicators
	fmt.Fprintf(b, "GDP growth:    %s%% (%s)\n", ind.GDPGrowth.Value.String(), ind.GDPGrowth.Period)
	fmt.Fprintf(b, "CPI inflation: %s%% (%s)\n", ind.CPIInflation.Value.String(), ind.CPIInflation.Period)
	if ind.IsFallback {
		b.WriteString("Note: live indicator data unavailable, fallback constants in use\n")
	}
	b.WriteString("\n")
}

func (f *ConsoleFormatter) writeValidation(b *strings.Builder, plan *domain.PlanResult) {
	v := plan.Validation
	if len(v.Issues) == 0 && len(v.Suggestions) == 0 {
		return
	}
	writeSection(b, "VALIDATION")
	for _, issue := range v.Issues {
		fmt.Fprintf(b, "[%s] %s: %s\n", issue.Kind, issue.Field, issue.Message)
	}
	for _, s := range v.Suggestions {
		fmt.Fprintf(b, "[suggestion] %s\n", s)
	}
	b.WriteString("\n")
}
