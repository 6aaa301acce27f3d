package dividend

import "testing"

func TestBuildTimelines_ClampsAtZero(t *testing.T) {
	// Selling more than was ever recorded never yields a negative balance.
	history := []TransactionRecord{
		{StockID: "0050", Date: "2024-01-01", Quantity: 100, Type: TradeBuy},
		{StockID: "0050", Date: "2024-02-01", Quantity: 300, Type: TradeSell},
		{StockID: "0050", Date: "2024-03-01", Quantity: 50, Type: TradeBuy},
	}

	tl := BuildTimelines(history)["0050"]
	if len(tl) != 3 {
		t.Fatalf("got %d points, want 3", len(tl))
	}
	wants := []float64{100, 0, 50}
	for i, want := range wants {
		if got := tl[i].Quantity.InexactFloat64(); got != want {
			t.Errorf("point %d quantity = %v, want %v", i, got, want)
		}
	}
}

func TestBuildTimelines_SortsByDateThenIndex(t *testing.T) {
	// Unsorted input, with two events on the same day: the original record
	// order breaks the tie.
	history := []TransactionRecord{
		{StockID: "0050", Date: "2024-02-01", Quantity: 10, Type: TradeSell},
		{StockID: "0050", Date: "2024-01-01", Quantity: 100, Type: TradeBuy},
		{StockID: "0050", Date: "2024-02-01", Quantity: 5, Type: TradeBuy},
	}

	tl := BuildTimelines(history)["0050"]
	wants := []float64{100, 90, 95}
	for i, want := range wants {
		if got := tl[i].Quantity.InexactFloat64(); got != want {
			t.Errorf("point %d quantity = %v, want %v", i, got, want)
		}
	}
}

func TestBuildTimelines_NegativeQuantityFlipsDirection(t *testing.T) {
	history := []TransactionRecord{
		{StockID: "0050", Date: "2024-01-01", Quantity: 100, Type: TradeBuy},
		{StockID: "0050", Date: "2024-02-01", Quantity: -30, Type: TradeBuy}, // actually a sell
	}
	tl := BuildTimelines(history)["0050"]
	if got := tl[1].Quantity.InexactFloat64(); got != 70 {
		t.Errorf("final quantity = %v, want 70", got)
	}
}

func TestBuildTimelines_NoUsableRecords(t *testing.T) {
	history := []TransactionRecord{
		{StockID: "", Date: "2024-01-01", Quantity: 100, Type: TradeBuy},
		{StockID: "0050", Date: "not a date", Quantity: 100, Type: TradeBuy},
		{StockID: "0050", Date: "2024-01-01", Quantity: 0, Type: TradeBuy},
	}
	if tls := BuildTimelines(history); tls != nil {
		t.Errorf("BuildTimelines = %v, want nil when nothing is usable", tls)
	}
	if tls := BuildTimelines(nil); tls != nil {
		t.Errorf("BuildTimelines(nil) = %v, want nil", tls)
	}
}

func TestBuildTimelines_PurchasedDateFallback(t *testing.T) {
	history := []TransactionRecord{
		{StockID: "0050", PurchasedDate: "2024-01-01", Quantity: 100, Type: TradeBuy},
	}
	tl := BuildTimelines(history)["0050"]
	if len(tl) != 1 || tl[0].On != NewDate(2024, 1, 1) {
		t.Fatalf("timeline = %v, want one point on 2024-01-01", tl)
	}
}

func TestQuantityOn(t *testing.T) {
	history := []TransactionRecord{
		{StockID: "0050", Date: "2024-01-10", Quantity: 100, Type: TradeBuy},
		{StockID: "0050", Date: "2024-03-10", Quantity: 50, Type: TradeBuy},
		{StockID: "0050", Date: "2024-03-10", Quantity: 30, Type: TradeSell},
		{StockID: "0050", Date: "2024-06-10", Quantity: 120, Type: TradeSell},
	}
	timelines := BuildTimelines(history)

	tests := []struct {
		name string
		on   Date
		want float64
	}{
		{"before any event", NewDate(2024, 1, 1), 0},
		{"on the first event", NewDate(2024, 1, 10), 100},
		{"between events", NewDate(2024, 2, 20), 100},
		{"on a day with two events", NewDate(2024, 3, 10), 120},
		{"after over-sell clamp", NewDate(2024, 7, 1), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := timelines.QuantityOn("0050", tc.on).InexactFloat64(); got != tc.want {
				t.Errorf("QuantityOn(%s) = %v, want %v", tc.on, got, tc.want)
			}
		})
	}

	if got := timelines.QuantityOn("unknown", NewDate(2024, 3, 10)); !got.IsZero() {
		t.Errorf("QuantityOn(unknown) = %v, want 0", got)
	}
}
