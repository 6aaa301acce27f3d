package dividend

import "math"

// SummaryInput carries the externally supplied records for one summary
// computation. All slices are read-only for the engine.
type SummaryInput struct {
	TransactionHistory []TransactionRecord
	DividendEvents     []DividendRecord
	Inventory          []InventoryRecord // fallback positions, used only without history
	AsOf               Date              // zero value means today
}

// CurrencySummary is the aggregate dividend cash for one currency.
type CurrencySummary struct {
	AccumulatedTotal Money // every year ever observed
	AnnualTotal      Money // the as-of year only
	MonthlyAverage   Money
	MonthlyMinimum   Money
}

// Summary is the engine output consumed by the goal engine and the
// reports. The top-level figures mirror the base currency's bucket.
type Summary struct {
	AccumulatedTotal Money
	AnnualTotal      Money
	AnnualYear       int
	MonthlyAverage   Money
	MonthlyMinimum   Money
	BaseCurrency     string
	PerCurrency      map[string]CurrencySummary
	Currencies       []string // encounter order of the dividend events
}

// currencyBucket accumulates one currency while replaying dividend events.
type currencyBucket struct {
	totalsByYear  map[int]Money
	monthlyTotals [12]Money // as-of year only
	accumulated   Money
	maxMonthIndex int // highest as-of-year month with a dividend, -1 if none
}

// CalculateSummary attributes every usable dividend event to the position
// held at its reference date and rolls the cash up per currency and per
// calendar month of the as-of year.
//
// Held quantities come from the holdings timeline; when no transaction
// history exists at all, the flat inventory snapshot stands in (a point
// estimate that ignores the dividend's date, reproduced as-is). Malformed
// events are skipped, the function never fails.
func CalculateSummary(input SummaryInput) *Summary {
	now := input.AsOf
	if now.IsZero() {
		now = Today()
	}
	currentYear := now.Year()

	timelines := BuildTimelines(input.TransactionHistory)
	var fallback map[string]Quantity
	if timelines == nil {
		fallback = inventoryHoldings(input.Inventory)
	}

	buckets := make(map[string]*currencyBucket)
	var order []string // first-encounter order decides the base currency

	for _, rec := range input.DividendEvents {
		ev, ok := normalizeDividend(rec)
		if !ok {
			continue
		}
		var quantity Quantity
		if timelines != nil {
			quantity = timelines.QuantityOn(ev.stockID, ev.on)
		} else {
			quantity = fallback[ev.stockID]
		}
		if !quantity.IsPositive() {
			continue // no cash attributed to an empty position
		}

		currency := ev.perShare.Currency()
		bucket, ok := buckets[currency]
		if !ok {
			bucket = &currencyBucket{
				totalsByYear:  make(map[int]Money),
				accumulated:   M(0, currency),
				maxMonthIndex: -1,
			}
			for m := range bucket.monthlyTotals {
				bucket.monthlyTotals[m] = M(0, currency)
			}
			buckets[currency] = bucket
			order = append(order, currency)
		}

		amount := ev.perShare.Mul(quantity)
		year := ev.on.Year()
		if _, ok := bucket.totalsByYear[year]; !ok {
			bucket.totalsByYear[year] = M(0, currency)
		}
		bucket.totalsByYear[year] = bucket.totalsByYear[year].Add(amount)
		bucket.accumulated = bucket.accumulated.Add(amount)

		if year == currentYear {
			month := ev.on.MonthIndex()
			bucket.monthlyTotals[month] = bucket.monthlyTotals[month].Add(amount)
			if month > bucket.maxMonthIndex {
				bucket.maxMonthIndex = month
			}
		}
	}

	perCurrency := make(map[string]CurrencySummary, len(buckets))
	for _, currency := range order {
		perCurrency[currency] = buckets[currency].summarize(currency, now)
	}

	base := DefaultCurrency
	if _, ok := perCurrency[base]; !ok && len(order) > 0 {
		base = order[0]
	}
	headline, ok := perCurrency[base]
	if !ok {
		headline = zeroCurrencySummary(base)
	}

	return &Summary{
		AccumulatedTotal: headline.AccumulatedTotal,
		AnnualTotal:      headline.AnnualTotal,
		AnnualYear:       currentYear,
		MonthlyAverage:   headline.MonthlyAverage,
		MonthlyMinimum:   headline.MonthlyMinimum,
		BaseCurrency:     base,
		PerCurrency:      perCurrency,
		Currencies:       order,
	}
}

// summarize derives the per-currency aggregates as of now.
func (b *currencyBucket) summarize(currency string, now Date) CurrencySummary {
	annualTotal := b.totalsByYear[now.Year()]
	if annualTotal.Currency() == "" {
		annualTotal = M(0, currency)
	}

	// Months elapsed: up to the last month that paid, or up to the as-of
	// month when nothing paid yet this year.
	monthsElapsed := b.maxMonthIndex + 1
	if b.maxMonthIndex < 0 {
		monthsElapsed = now.MonthIndex() + 1
	}
	monthlyAverage := M(0, currency)
	if annualTotal.IsPositive() && monthsElapsed > 0 {
		monthlyAverage = annualTotal.Div(Q(monthsElapsed))
	}

	// Minimum over the months up to the as-of month, counting empty months
	// as zero.
	monthlyMinimum := M(0, currency)
	currentMonthIndex := now.MonthIndex()
	if currentMonthIndex >= 0 {
		min := b.monthlyTotals[0]
		for m := 1; m <= currentMonthIndex; m++ {
			if b.monthlyTotals[m].LessThan(min) {
				min = b.monthlyTotals[m]
			}
		}
		monthlyMinimum = min
	}

	return CurrencySummary{
		AccumulatedTotal: b.accumulated,
		AnnualTotal:      annualTotal,
		MonthlyAverage:   monthlyAverage,
		MonthlyMinimum:   monthlyMinimum,
	}
}

func zeroCurrencySummary(currency string) CurrencySummary {
	zero := M(0, currency)
	return CurrencySummary{
		AccumulatedTotal: zero,
		AnnualTotal:      zero,
		MonthlyAverage:   zero,
		MonthlyMinimum:   zero,
	}
}

// inventoryHoldings builds the fallback position map from the flat snapshot.
// Only strictly positive, finite quantities count.
func inventoryHoldings(inventory []InventoryRecord) map[string]Quantity {
	holdings := make(map[string]Quantity, len(inventory))
	for _, rec := range inventory {
		if rec.StockID == "" {
			continue
		}
		if math.IsNaN(rec.TotalQuantity) || math.IsInf(rec.TotalQuantity, 0) || rec.TotalQuantity <= 0 {
			continue
		}
		holdings[rec.StockID] = Q(rec.TotalQuantity)
	}
	return holdings
}
