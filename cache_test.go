package dividend

import "testing"

func TestSummaryCache(t *testing.T) {
	input := SummaryInput{
		TransactionHistory: []TransactionRecord{
			{StockID: "0050", Date: "2024-01-01", Quantity: 100, Price: fprice(120), Type: TradeBuy},
		},
		DividendEvents: []DividendRecord{
			{StockID: "0050", Dividend: 1.0, DividendDate: "2024-02-10", Currency: "TWD"},
		},
		AsOf: NewDate(2024, 3, 1),
	}
	rev := SummaryRevisions{History: "h1", Dividends: "d1"}

	var cache SummaryCache
	a := cache.Summary(rev, input)
	b := cache.Summary(rev, input)
	if a != b {
		t.Error("same revisions and day must return the cached pointer")
	}

	// A different revision token recomputes even with identical content.
	c := cache.Summary(SummaryRevisions{History: "h2", Dividends: "d1"}, input)
	if a == c {
		t.Error("changed revision must not hit the cache")
	}

	// A different as-of day recomputes too.
	input.AsOf = NewDate(2024, 3, 2)
	d := cache.Summary(rev, input)
	if a == d {
		t.Error("changed day must not hit the cache")
	}

	cache.Invalidate()
	input.AsOf = NewDate(2024, 3, 1)
	e := cache.Summary(rev, input)
	if a == e {
		t.Error("Invalidate must drop cached entries")
	}
}
