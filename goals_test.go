package dividend

import (
	"strings"
	"testing"
)

// summaryFixture fabricates a summary with the given TWD figures.
func summaryFixture(accumulated, annual, monthlyAvg, monthlyMin float64) *Summary {
	cs := CurrencySummary{
		AccumulatedTotal: M(accumulated, "TWD"),
		AnnualTotal:      M(annual, "TWD"),
		MonthlyAverage:   M(monthlyAvg, "TWD"),
		MonthlyMinimum:   M(monthlyMin, "TWD"),
	}
	return &Summary{
		AccumulatedTotal: cs.AccumulatedTotal,
		AnnualTotal:      cs.AnnualTotal,
		AnnualYear:       2024,
		MonthlyAverage:   cs.MonthlyAverage,
		MonthlyMinimum:   cs.MonthlyMinimum,
		BaseCurrency:     "TWD",
		PerCurrency:      map[string]CurrencySummary{"TWD": cs},
		Currencies:       []string{"TWD"},
	}
}

func TestBuildGoalViewModel_AnnualHalfway(t *testing.T) {
	s := summaryFixture(1800, 2400, 200, 120)
	settings := GoalSettings{CashflowGoals: []Goal{
		{GoalType: "annual", Target: 3600},
	}}

	vm := BuildGoalViewModel(s, settings, DefaultMessages())
	if len(vm.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(vm.Rows))
	}
	row := vm.Rows[0]
	// Annual goals measure the accumulated total, not the annual total.
	if got := row.CurrentValue.InexactFloat64(); got != 1800 {
		t.Errorf("CurrentValue = %v, want 1800", got)
	}
	if row.Percent != 0.5 {
		t.Errorf("Percent = %v, want 0.5", row.Percent)
	}
	if row.Tier != TierHalf {
		t.Errorf("Tier = %q, want half", row.Tier)
	}
	if row.Encouragement == "" {
		t.Error("halfway goal should carry an encouragement message")
	}
	if vm.PrimaryGoalType != GoalAnnual {
		t.Errorf("PrimaryGoalType = %q, want annual", vm.PrimaryGoalType)
	}
}

func TestBuildGoalViewModel_TierBands(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		percent float64
		tier    Tier
	}{
		{"not started", 0, 1000, 0, TierNone},
		{"just below half", 499, 1000, 0.499, TierNone},
		{"exactly half", 500, 1000, 0.5, TierHalf},
		{"done", 1000, 1000, 1, TierDone},
		{"overachieved clamps to 1", 1500, 1000, 1, TierDone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := summaryFixture(tc.current, 0, 0, 0)
			settings := GoalSettings{CashflowGoals: []Goal{
				{GoalType: "annual", Target: tc.target},
			}}
			vm := BuildGoalViewModel(s, settings, DefaultMessages())
			row := vm.Rows[0]
			if row.Percent != tc.percent {
				t.Errorf("Percent = %v, want %v", row.Percent, tc.percent)
			}
			if row.Tier != tc.tier {
				t.Errorf("Tier = %q, want %q", row.Tier, tc.tier)
			}
		})
	}
}

func TestBuildGoalViewModel_GoalTypesPickTheirFigure(t *testing.T) {
	s := summaryFixture(1800, 2400, 200, 120)
	settings := GoalSettings{CashflowGoals: []Goal{
		{GoalType: "annual", Target: 3600},
		{GoalType: "monthly", Target: 400},
		{GoalType: "minimum", Target: 240},
	}}

	vm := BuildGoalViewModel(s, settings, DefaultMessages())
	if len(vm.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(vm.Rows))
	}
	wants := []float64{1800, 200, 120}
	for i, want := range wants {
		if got := vm.Rows[i].CurrentValue.InexactFloat64(); got != want {
			t.Errorf("row %d CurrentValue = %v, want %v", i, got, want)
		}
		if vm.Rows[i].Percent != 0.5 {
			t.Errorf("row %d Percent = %v, want 0.5", i, vm.Rows[i].Percent)
		}
	}
}

func TestNormalizeGoals_DropsBadTargets(t *testing.T) {
	settings := GoalSettings{CashflowGoals: []Goal{
		{GoalType: "annual", Target: 0},
		{GoalType: "annual", Target: -5},
		{GoalType: "monthly", Target: 100},
	}}
	goals := NormalizeGoals(settings, "TWD")
	if len(goals) != 1 {
		t.Fatalf("got %d goals, want 1", len(goals))
	}
	if goals[0].Type != GoalMonthly {
		t.Errorf("Type = %q, want monthly", goals[0].Type)
	}
	// The surviving goal keeps its list position in its generated id.
	if goals[0].ID != "goal-2" {
		t.Errorf("ID = %q, want goal-2", goals[0].ID)
	}
}

func TestNormalizeGoals_LegacyFallback(t *testing.T) {
	settings := GoalSettings{
		TotalTarget:   12000,
		MonthlyTarget: 1000,
	}
	goals := NormalizeGoals(settings, "TWD")
	if len(goals) != 2 {
		t.Fatalf("got %d goals, want 2", len(goals))
	}
	if goals[0].ID != "legacy-annual" || goals[1].ID != "legacy-monthly" {
		t.Errorf("ids = %q, %q, want legacy-annual, legacy-monthly", goals[0].ID, goals[1].ID)
	}

	// The legacy shape applies only when the list is empty: with both forms
	// present, normalization never duplicates goals.
	settings.CashflowGoals = []Goal{{GoalType: "annual", Target: 9000}}
	goals = NormalizeGoals(settings, "TWD")
	if len(goals) != 1 {
		t.Fatalf("got %d goals, want 1, legacy fields must not add more", len(goals))
	}
	if got := goals[0].Target.InexactFloat64(); got != 9000 {
		t.Errorf("Target = %v, want 9000 from the list form", got)
	}
}

func TestNormalizeGoals_CurrencyAndName(t *testing.T) {
	long := strings.Repeat("x", 80)
	settings := GoalSettings{CashflowGoals: []Goal{
		{GoalType: "annual", Target: 100, Currency: "usd"},
		{GoalType: "annual", Target: 100, Currency: "EUR"}, // unsupported, falls back
		{GoalType: "annual", Target: 100, Name: "  " + long + "  "},
	}}
	goals := NormalizeGoals(settings, "TWD")

	if got := goals[0].Target.Currency(); got != "USD" {
		t.Errorf("currency = %q, want USD", got)
	}
	if got := goals[1].Target.Currency(); got != "TWD" {
		t.Errorf("currency = %q, want base TWD for unsupported code", got)
	}
	if len([]rune(goals[2].Name)) != 60 {
		t.Errorf("name length = %d, want trimmed to 60 runes", len([]rune(goals[2].Name)))
	}
}

func TestBuildGoalViewModel_EmptyState(t *testing.T) {
	s := summaryFixture(0, 0, 0, 0)
	vm := BuildGoalViewModel(s, GoalSettings{}, DefaultMessages())
	if len(vm.Rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(vm.Rows))
	}
	if vm.EmptyState == "" {
		t.Error("EmptyState must be set when there is no goal")
	}
}

func TestBuildGoalViewModel_MetricsHighlightPrimary(t *testing.T) {
	s := summaryFixture(1800, 2400, 200, 120)
	settings := GoalSettings{CashflowGoals: []Goal{
		{GoalType: "monthly", Target: 400},
	}}
	vm := BuildGoalViewModel(s, settings, DefaultMessages())

	var active []string
	for _, m := range vm.Metrics {
		if m.IsActive {
			active = append(active, m.ID)
		}
	}
	if len(active) != 1 || active[0] != "monthly" {
		t.Errorf("active metrics = %v, want [monthly]", active)
	}
}
