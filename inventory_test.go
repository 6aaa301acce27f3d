package dividend

import "testing"

func TestSummarizeInventory(t *testing.T) {
	history := []TransactionRecord{
		{StockID: "2330", StockName: "TSMC", Date: "2024-01-01", Quantity: 100, Price: fprice(500), Type: TradeBuy},
		{StockID: "2330", Date: "2024-02-01", Quantity: 100, Price: fprice(600), Type: TradeBuy},
		{StockID: "0050", Date: "2024-01-15", Quantity: 1000, Price: fprice(120), Type: TradeBuy},
		{StockID: "0050", Date: "2024-03-01", Quantity: 1000, Type: TradeSell}, // closes out
	}

	s := SummarizeInventory(history, nil)
	if len(s.Positions) != 1 {
		t.Fatalf("got %d positions, want 1, closed positions are dropped", len(s.Positions))
	}
	p := s.Positions[0]
	if p.StockID != "2330" || p.StockName != "TSMC" {
		t.Errorf("position = %q %q", p.StockID, p.StockName)
	}
	if got := p.TotalQuantity.InexactFloat64(); got != 200 {
		t.Errorf("TotalQuantity = %v, want 200", got)
	}
	if got := p.AveragePrice.InexactFloat64(); got != 550 {
		t.Errorf("AveragePrice = %v, want 550", got)
	}
	if got := s.TotalInvestment.InexactFloat64(); got != 110000 {
		t.Errorf("TotalInvestment = %v, want 110000", got)
	}
}

func TestSummarizeInventory_LatestPrices(t *testing.T) {
	history := []TransactionRecord{
		{StockID: "2330", Date: "2024-01-01", Quantity: 100, Price: fprice(500), Type: TradeBuy},
	}
	s := SummarizeInventory(history, map[string]float64{"2330": 620})
	if got := s.TotalValue.InexactFloat64(); got != 62000 {
		t.Errorf("TotalValue = %v, want 62000", got)
	}
}

func TestInventoryRecords(t *testing.T) {
	history := []TransactionRecord{
		{StockID: "2330", Date: "2024-01-01", Quantity: 100, Price: fprice(500), Type: TradeBuy},
	}
	records := SummarizeInventory(history, nil).InventoryRecords()
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].StockID != "2330" || records[0].TotalQuantity != 100 {
		t.Errorf("record = %+v", records[0])
	}
}

func TestMonthlyContribution(t *testing.T) {
	history := []TransactionRecord{
		{StockID: "2330", Date: "2024-03-05", Quantity: 100, Price: fprice(500), Type: TradeBuy},
		{StockID: "2330", Date: "2024-03-20", Quantity: 10, Price: fprice(510), Type: TradeBuy},
		{StockID: "2330", Date: "2024-03-25", Quantity: 50, Type: TradeSell},              // sells never count
		{StockID: "0050", Date: "2024-02-05", Quantity: 100, Price: fprice(120), Type: TradeBuy}, // wrong month
	}
	got := MonthlyContribution(history, NewDate(2024, 3, 31)).InexactFloat64()
	if want := 100*500.0 + 10*510; got != want {
		t.Errorf("MonthlyContribution = %v, want %v", got, want)
	}
}
