package dividend

import (
	"slices"
	"strings"
)

// DefaultCurrency is assumed when a record carries no currency at all.
const DefaultCurrency = "TWD"

// SharesPerLot is the Taiwan ETF trading lot. Display convention only, the
// engine arithmetic never rounds to lots.
const SharesPerLot = 1000

// currencyOrder ranks the headline currencies first; anything else sorts
// alphabetically after them.
var currencyOrder = map[string]int{"TWD": 0, "USD": 1}

// currencyLabel is the display prefix used by the view models. It
// intentionally differs from go-money symbols for the two headline
// currencies (the apps always show "NT$" and "US$").
var currencyLabel = map[string]string{
	"TWD": "NT$",
	"USD": "US$",
	"HKD": "HK$",
	"CNY": "CN¥",
	"JPY": "JP¥",
	"EUR": "€",
	"GBP": "£",
	"SGD": "S$",
	"AUD": "A$",
	"CAD": "CA$",
	"KRW": "₩",
	"NZD": "NZ$",
}

// NormalizeCurrency maps a raw currency string to its canonical code.
// Known aliases are rewritten (NTD and NT$ mean TWD, US$ means USD); any
// other code is uppercased and accepted as-is, without a registry check.
// Empty input yields DefaultCurrency.
func NormalizeCurrency(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	switch code {
	case "":
		return DefaultCurrency
	case "NTD", "NT$":
		return "TWD"
	case "US$":
		return "USD"
	}
	return code
}

// CurrencyLabel returns the display prefix for a currency code, falling back
// to the code itself for currencies without a dedicated label.
func CurrencyLabel(code string) string {
	if code == "" {
		return ""
	}
	if label, ok := currencyLabel[code]; ok {
		return label
	}
	return code
}

// SortCurrencies orders currency codes for display: TWD first, then USD,
// then the rest alphabetically. The input slice is not modified.
func SortCurrencies(codes []string) []string {
	sorted := slices.Clone(codes)
	slices.SortFunc(sorted, func(a, b string) int {
		ra, oka := currencyOrder[a]
		rb, okb := currencyOrder[b]
		if !oka {
			ra = len(currencyOrder) + 1
		}
		if !okb {
			rb = len(currencyOrder) + 1
		}
		if ra != rb {
			return ra - rb
		}
		return strings.Compare(a, b)
	})
	return sorted
}
