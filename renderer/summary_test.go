package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/dividend"
)

func fprice(p float64) *float64 { return &p }

func TestSummaryMarkdown(t *testing.T) {
	s := dividend.CalculateSummary(dividend.SummaryInput{
		TransactionHistory: []dividend.TransactionRecord{
			{StockID: "0050", Date: "2024-01-01", Quantity: 1000, Price: fprice(120), Type: "buy"},
		},
		DividendEvents: []dividend.DividendRecord{
			{StockID: "0050", Dividend: 1.5, DividendDate: "2024-02-10", Currency: "TWD"},
		},
		AsOf: dividend.NewDate(2024, 3, 1),
	})

	out := SummaryMarkdown(s)
	for _, want := range []string{
		"# Dividend Summary 2024",
		"Base Currency: TWD",
		"NT$ 1,500.00",
		"| TWD",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryMarkdown_Empty(t *testing.T) {
	s := dividend.CalculateSummary(dividend.SummaryInput{AsOf: dividend.NewDate(2024, 3, 1)})
	out := SummaryMarkdown(s)
	if !strings.Contains(out, "No dividends recorded yet.") {
		t.Errorf("empty summary output:\n%s", out)
	}
}

func TestGoalsMarkdown(t *testing.T) {
	s := dividend.CalculateSummary(dividend.SummaryInput{
		TransactionHistory: []dividend.TransactionRecord{
			{StockID: "0050", Date: "2024-01-01", Quantity: 1000, Price: fprice(120), Type: "buy"},
		},
		DividendEvents: []dividend.DividendRecord{
			{StockID: "0050", Dividend: 1.8, DividendDate: "2024-02-10", Currency: "TWD"},
		},
		AsOf: dividend.NewDate(2024, 3, 1),
	})
	settings := dividend.GoalSettings{CashflowGoals: []dividend.Goal{
		{GoalType: "annual", Target: 3600},
	}}
	vm := dividend.BuildGoalViewModel(s, settings, dividend.DefaultMessages())

	out := GoalsMarkdown(vm)
	for _, want := range []string{
		"# Dividend Goals",
		"## Progress",
		"50%",
		"keep going",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGoalsMarkdown_EmptyState(t *testing.T) {
	s := dividend.CalculateSummary(dividend.SummaryInput{AsOf: dividend.NewDate(2024, 3, 1)})
	vm := dividend.BuildGoalViewModel(s, dividend.GoalSettings{}, dividend.DefaultMessages())
	out := GoalsMarkdown(vm)
	if !strings.Contains(out, vm.EmptyState) || vm.EmptyState == "" {
		t.Errorf("empty state missing:\n%s", out)
	}
}

func TestAlertsMarkdown(t *testing.T) {
	alerts := []dividend.DividendAlert{
		{StockID: "0050", StockName: "Taiwan 50", Kind: dividend.AlertEx, PerShare: 1.5, Quantity: dividend.Q(1000), Total: dividend.M(1500, "TWD")},
	}
	out := AlertsMarkdown(alerts, dividend.NewDate(2024, 6, 15))
	for _, want := range []string{"2024-06-15", "goes ex-dividend", "NT$ 1,500.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	out = AlertsMarkdown(nil, dividend.NewDate(2024, 6, 15))
	if !strings.Contains(out, "Nothing happening tomorrow.") {
		t.Errorf("empty alerts output:\n%s", out)
	}
}
