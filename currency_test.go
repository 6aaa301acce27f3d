package dividend

import (
	"reflect"
	"testing"
)

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "TWD"},
		{"  ", "TWD"},
		{"twd", "TWD"},
		{"NTD", "TWD"},
		{"nt$", "TWD"},
		{"NT$", "TWD"},
		{"US$", "USD"},
		{"usd", "USD"},
		{"jpy", "JPY"},
		// Unknown codes pass through uppercased, there is no registry check.
		{"xyz", "XYZ"},
	}
	for _, tc := range tests {
		if got := NormalizeCurrency(tc.in); got != tc.want {
			t.Errorf("NormalizeCurrency(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSortCurrencies(t *testing.T) {
	got := SortCurrencies([]string{"JPY", "USD", "EUR", "TWD"})
	want := []string{"TWD", "USD", "EUR", "JPY"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortCurrencies = %v, want %v", got, want)
	}
}

func TestCurrencyLabel(t *testing.T) {
	if got := CurrencyLabel("TWD"); got != "NT$" {
		t.Errorf("CurrencyLabel(TWD) = %q, want NT$", got)
	}
	if got := CurrencyLabel("USD"); got != "US$" {
		t.Errorf("CurrencyLabel(USD) = %q, want US$", got)
	}
	// Currencies without a dedicated label fall back to their code.
	if got := CurrencyLabel("XYZ"); got != "XYZ" {
		t.Errorf("CurrencyLabel(XYZ) = %q, want XYZ", got)
	}
}
