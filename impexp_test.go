package dividend

import (
	"bytes"
	"strings"
	"testing"
)

func TestImportCSV(t *testing.T) {
	input := `id,stock_id,stock_name,date,quantity,price,type
,0050,Taiwan 50,2024-01-01,1000,120,buy
,0050,,2024-02-01,500,,sell
`
	ledger := NewLedger()
	n, err := ImportCSV(strings.NewReader(input), ledger)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || ledger.Len() != 2 {
		t.Fatalf("imported %d rows, ledger has %d, want 2", n, ledger.Len())
	}
	buy := ledger.Records()[0]
	if buy.Type != TradeBuy || buy.Price == nil || *buy.Price != 120 {
		t.Errorf("buy = %+v", buy)
	}
}

func TestImportCSV_BadRowAborts(t *testing.T) {
	input := `id,stock_id,stock_name,date,quantity,price,type
,0050,Taiwan 50,2024-01-01,1000,120,buy
,,missing stock,2024-02-01,500,,sell
`
	ledger := NewLedger()
	if _, err := ImportCSV(strings.NewReader(input), ledger); err == nil {
		t.Fatal("want error for the malformed row")
	} else if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("error %q does not point at the row", err)
	}
}

func TestExportCSVRoundTrip(t *testing.T) {
	ledger := NewLedger()
	if err := ledger.Append(
		TransactionRecord{StockID: "0050", StockName: "Taiwan 50", Date: "2024-01-01", Quantity: 1000, Price: fprice(120), Type: TradeBuy},
	); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, ledger); err != nil {
		t.Fatal(err)
	}

	reimported := NewLedger()
	if _, err := ImportCSV(&buf, reimported); err != nil {
		t.Fatal(err)
	}
	got := reimported.Records()[0]
	want := ledger.Records()[0]
	if got.StockID != want.StockID || got.Date != want.Date || got.Quantity != want.Quantity {
		t.Errorf("round trip changed the record: %+v vs %+v", got, want)
	}
}
