package dividend

import (
	"fmt"
	"math"
	"strings"
)

// GoalType selects which summary figure a goal is measured against.
type GoalType string

const (
	GoalAnnual  GoalType = "annual"  // accumulated dividend cash
	GoalMonthly GoalType = "monthly" // monthly average
	GoalMinimum GoalType = "minimum" // monthly minimum
)

// Tier is the achievement band of a goal. It is a pure function of the
// percent, recomputed on every call; nothing ever "stays" done.
type Tier string

const (
	TierNone Tier = "none"
	TierHalf Tier = "half"
	TierDone Tier = "done"
)

func tierOf(percent float64) Tier {
	switch {
	case percent >= 1:
		return TierDone
	case percent >= 0.5:
		return TierHalf
	default:
		return TierNone
	}
}

// Goal is one user-defined cash-flow goal as persisted.
type Goal struct {
	ID       string  `json:"id,omitempty"`
	GoalType string  `json:"goalType"`
	Target   float64 `json:"target"`
	Currency string  `json:"currency,omitempty"`
	Name     string  `json:"name,omitempty"`
}

// GoalSettings is the persisted settings document. Current clients write the
// list; the flat totalTarget/monthlyTarget/minimumTarget trio is the legacy
// single-goal shape and only applies when the list is empty.
type GoalSettings struct {
	CashflowGoals []Goal  `json:"cashflowGoals,omitempty"`
	TotalTarget   float64 `json:"totalTarget,omitempty"`
	MonthlyTarget float64 `json:"monthlyTarget,omitempty"`
	MinimumTarget float64 `json:"minimumTarget,omitempty"`
}

// NormalizedGoal is the canonical in-memory goal.
type NormalizedGoal struct {
	ID     string
	Type   GoalType
	Target Money
	Name   string
}

// supportedGoalCurrencies are the currencies a goal may target directly; any
// other value falls back to the summary's base currency.
var supportedGoalCurrencies = map[string]bool{"TWD": true, "USD": true}

func normalizeGoalType(raw string) GoalType {
	switch GoalType(strings.ToLower(strings.TrimSpace(raw))) {
	case GoalMonthly:
		return GoalMonthly
	case GoalMinimum:
		return GoalMinimum
	default:
		return GoalAnnual
	}
}

func normalizeGoalCurrency(raw, baseCurrency string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if supportedGoalCurrencies[code] {
		return code
	}
	if base := strings.TrimSpace(baseCurrency); base != "" {
		return base
	}
	return DefaultCurrency
}

func sanitizeGoalName(raw string) string {
	name := []rune(strings.TrimSpace(raw))
	if len(name) > 60 {
		name = name[:60]
	}
	return string(name)
}

// NormalizeGoals produces the canonical goal list from persisted settings.
// Goals with a non-positive or non-finite target are dropped. The legacy
// flat shape is consulted only when the list yields nothing, so applying
// NormalizeGoals to its own output never duplicates goals.
func NormalizeGoals(settings GoalSettings, baseCurrency string) []NormalizedGoal {
	var goals []NormalizedGoal
	for i, g := range settings.CashflowGoals {
		if math.IsNaN(g.Target) || math.IsInf(g.Target, 0) || g.Target <= 0 {
			continue
		}
		id := strings.TrimSpace(g.ID)
		if id == "" {
			id = fmt.Sprintf("goal-%d", i)
		}
		goals = append(goals, NormalizedGoal{
			ID:     id,
			Type:   normalizeGoalType(g.GoalType),
			Target: M(g.Target, normalizeGoalCurrency(g.Currency, baseCurrency)),
			Name:   sanitizeGoalName(g.Name),
		})
	}
	if len(goals) > 0 {
		return goals
	}

	legacy := []struct {
		kind   GoalType
		target float64
	}{
		{GoalAnnual, settings.TotalTarget},
		{GoalMonthly, settings.MonthlyTarget},
		{GoalMinimum, settings.MinimumTarget},
	}
	for _, l := range legacy {
		if math.IsNaN(l.target) || math.IsInf(l.target, 0) || l.target <= 0 {
			continue
		}
		goals = append(goals, NormalizedGoal{
			ID:     "legacy-" + string(l.kind),
			Type:   l.kind,
			Target: M(l.target, normalizeGoalCurrency(DefaultCurrency, baseCurrency)),
		})
	}
	return goals
}

// Messages holds the display strings injected by the caller (the string
// catalog itself is not this package's concern). Metrics with an empty label
// are omitted from the view model.
type Messages struct {
	AnnualGoal  string
	MonthlyGoal string
	MinimumGoal string

	GoalDividendAccumulated string
	GoalDividendMonthly     string
	GoalDividendMinimum     string
	GoalTargetAnnual        string
	GoalTargetMonthly       string
	GoalTargetMinimum       string

	GoalDividendYtdLabel     string
	GoalDividendAnnualLabel  string
	GoalDividendMonthlyLabel string
	GoalDividendMinimumLabel string
	GoalAchievementLabel     string

	GoalAnnualHalf  string
	GoalAnnualDone  string
	GoalMonthlyHalf string
	GoalMonthlyDone string
	GoalMinimumHalf string
	GoalMinimumDone string

	GoalEmpty string
}

// DefaultMessages returns the English catalog used by the CLI.
func DefaultMessages() Messages {
	return Messages{
		AnnualGoal:  "Annual goal",
		MonthlyGoal: "Monthly goal",
		MinimumGoal: "Minimum goal",

		GoalDividendAccumulated: "Accumulated: ",
		GoalDividendMonthly:     "Monthly average: ",
		GoalDividendMinimum:     "Monthly minimum: ",
		GoalTargetAnnual:        "Target: ",
		GoalTargetMonthly:       "Target: ",
		GoalTargetMinimum:       "Target: ",

		GoalDividendYtdLabel:     "Accumulated dividends",
		GoalDividendAnnualLabel:  "Annual dividends",
		GoalDividendMonthlyLabel: "Monthly average",
		GoalDividendMinimumLabel: "Monthly minimum",
		GoalAchievementLabel:     "Achievement",

		GoalAnnualHalf:  "Halfway to your annual goal, keep going!",
		GoalAnnualDone:  "Annual goal reached, congratulations!",
		GoalMonthlyHalf: "Halfway to your monthly goal, keep going!",
		GoalMonthlyDone: "Monthly goal reached, congratulations!",
		GoalMinimumHalf: "Halfway to your minimum goal, keep going!",
		GoalMinimumDone: "Minimum goal reached, congratulations!",

		GoalEmpty: "No cash-flow goal set yet.",
	}
}

// GoalRow is the progress of one goal.
type GoalRow struct {
	ID            string
	Label         string
	Current       string // formatted current figure with its label prefix
	Target        string // formatted target with its label prefix
	CurrentValue  Money
	TargetValue   Money
	Percent       float64 // clamped to [0,1]
	PercentLabel  string
	Tier          Tier
	Encouragement string
}

// Metric is one top-line figure of the goal dashboard.
type Metric struct {
	ID              string
	Label           string
	Value           string
	IsActive        bool // the primary goal type highlights its metric
	Highlight       bool
	ShowCelebration bool
}

// GoalViewModel is the derived, display-ready goal dashboard.
type GoalViewModel struct {
	Metrics            []Metric
	Rows               []GoalRow
	EmptyState         string // non-empty only when there is no goal
	PrimaryGoalType    GoalType
	AchievementPercent float64
}

// BuildGoalViewModel maps every goal onto its currency bucket and derives
// the progress rows and top-line metrics. Row order mirrors goal order; the
// first goal determines the primary goal type.
func BuildGoalViewModel(summary *Summary, settings GoalSettings, messages Messages) GoalViewModel {
	goals := NormalizeGoals(settings, summary.BaseCurrency)

	typeLabel := map[GoalType]string{
		GoalAnnual:  messages.AnnualGoal,
		GoalMonthly: messages.MonthlyGoal,
		GoalMinimum: messages.MinimumGoal,
	}
	currentPrefix := map[GoalType]string{
		GoalAnnual:  messages.GoalDividendAccumulated,
		GoalMonthly: messages.GoalDividendMonthly,
		GoalMinimum: messages.GoalDividendMinimum,
	}
	targetPrefix := map[GoalType]string{
		GoalAnnual:  messages.GoalTargetAnnual,
		GoalMonthly: messages.GoalTargetMonthly,
		GoalMinimum: messages.GoalTargetMinimum,
	}
	encouragement := map[GoalType]map[Tier]string{
		GoalAnnual:  {TierHalf: messages.GoalAnnualHalf, TierDone: messages.GoalAnnualDone},
		GoalMonthly: {TierHalf: messages.GoalMonthlyHalf, TierDone: messages.GoalMonthlyDone},
		GoalMinimum: {TierHalf: messages.GoalMinimumHalf, TierDone: messages.GoalMinimumDone},
	}

	rows := make([]GoalRow, 0, len(goals))
	for _, goal := range goals {
		bucket := summary.currencySummary(goal.Target.Currency())
		var current Money
		switch goal.Type {
		case GoalAnnual:
			current = bucket.AccumulatedTotal
		case GoalMonthly:
			current = bucket.MonthlyAverage
		case GoalMinimum:
			current = bucket.MonthlyMinimum
		}

		percent := 0.0
		if goal.Target.IsPositive() {
			percent = math.Min(1, current.InexactFloat64()/goal.Target.InexactFloat64())
		}
		tier := tierOf(percent)

		label := goal.Name
		if label == "" {
			label = typeLabel[goal.Type]
		}
		if label == "" {
			label = string(goal.Type)
		}
		if currencyLabel := CurrencyLabel(goal.Target.Currency()); currencyLabel != "" {
			label = fmt.Sprintf("%s (%s)", label, currencyLabel)
		}

		rows = append(rows, GoalRow{
			ID:            goal.ID,
			Label:         label,
			Current:       currentPrefix[goal.Type] + current.Display(),
			Target:        targetPrefix[goal.Type] + goal.Target.Display(),
			CurrentValue:  current,
			TargetValue:   goal.Target,
			Percent:       percent,
			PercentLabel:  percentLabel(percent),
			Tier:          tier,
			Encouragement: encouragement[goal.Type][tier],
		})
	}

	var primary GoalType
	var achievement float64
	if len(rows) > 0 {
		primary = goals[0].Type
		achievement = rows[0].Percent
	}

	annualLabel := messages.GoalDividendAnnualLabel
	if summary.AnnualTotal.IsPositive() && summary.AnnualYear != 0 {
		annualLabel = fmt.Sprintf("%s (%d)", messages.GoalDividendAnnualLabel, summary.AnnualYear)
	}

	metrics := []Metric{
		{ID: "ytd", Label: messages.GoalDividendYtdLabel, Value: summary.multiCurrencyValue(accumulatedOf)},
		{ID: "annual", Label: annualLabel, Value: summary.multiCurrencyValue(annualOf), IsActive: primary == GoalAnnual},
		{ID: "monthly", Label: messages.GoalDividendMonthlyLabel, Value: summary.multiCurrencyValue(monthlyAverageOf), IsActive: primary == GoalMonthly},
		{ID: "minimum", Label: messages.GoalDividendMinimumLabel, Value: summary.multiCurrencyValue(monthlyMinimumOf), IsActive: primary == GoalMinimum},
		{ID: "achievement", Label: messages.GoalAchievementLabel, Value: percentLabel(achievement), Highlight: achievement >= 0.5, ShowCelebration: achievement >= 1},
	}
	labeled := metrics[:0]
	for _, m := range metrics {
		if m.Label != "" {
			labeled = append(labeled, m)
		}
	}

	emptyState := ""
	if len(rows) == 0 {
		emptyState = messages.GoalEmpty
	}

	return GoalViewModel{
		Metrics:            labeled,
		Rows:               rows,
		EmptyState:         emptyState,
		PrimaryGoalType:    primary,
		AchievementPercent: achievement,
	}
}

func percentLabel(percent float64) string {
	return fmt.Sprintf("%d%%", int(math.Min(100, math.Round(percent*100))))
}

// currencySummary resolves a goal currency to its bucket, falling back to
// the headline figures for the base currency and to zeros otherwise.
func (s *Summary) currencySummary(currency string) CurrencySummary {
	if bucket, ok := s.PerCurrency[currency]; ok {
		return bucket
	}
	if currency == s.BaseCurrency {
		return CurrencySummary{
			AccumulatedTotal: s.AccumulatedTotal,
			AnnualTotal:      s.AnnualTotal,
			MonthlyAverage:   s.MonthlyAverage,
			MonthlyMinimum:   s.MonthlyMinimum,
		}
	}
	return zeroCurrencySummary(currency)
}

func accumulatedOf(c CurrencySummary) Money    { return c.AccumulatedTotal }
func annualOf(c CurrencySummary) Money         { return c.AnnualTotal }
func monthlyAverageOf(c CurrencySummary) Money { return c.MonthlyAverage }
func monthlyMinimumOf(c CurrencySummary) Money { return c.MonthlyMinimum }

// sortedCurrencies returns the summary currencies, base first then
// alphabetical.
func (s *Summary) sortedCurrencies() []string {
	codes := make([]string, 0, len(s.PerCurrency))
	base := false
	for code := range s.PerCurrency {
		if code == s.BaseCurrency {
			base = true
			continue
		}
		codes = append(codes, code)
	}
	codes = SortCurrencies(codes)
	if base {
		codes = append([]string{s.BaseCurrency}, codes...)
	}
	return codes
}

// multiCurrencyValue formats one figure across currencies ("NT$ 2,050.00 +
// US$ 25.00"). Zero-only currencies are dropped unless every currency is
// zero.
func (s *Summary) multiCurrencyValue(pick func(CurrencySummary) Money) string {
	codes := s.sortedCurrencies()
	if len(codes) == 0 {
		return M(0, s.BaseCurrency).Display()
	}
	var positive, all []string
	for _, code := range codes {
		value := pick(s.PerCurrency[code])
		all = append(all, value.Display())
		if value.IsPositive() {
			positive = append(positive, value.Display())
		}
	}
	if len(positive) > 0 {
		return strings.Join(positive, " + ")
	}
	return strings.Join(all, " + ")
}
