package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/dividend"
	md "github.com/nao1215/markdown"
)

func TransactionsMarkdown(records []dividend.TransactionRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	if len(records) == 0 {
		doc.PlainText("The ledger is empty.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date", "Stock", "Type", "Quantity", "Price", "ID"},
		Rows:   make([][]string, 0, len(records)),
	}
	for _, rec := range records {
		price := ""
		if rec.Price != nil {
			price = strconv.FormatFloat(*rec.Price, 'f', -1, 64)
		}
		table.Rows = append(table.Rows, []string{
			rec.Date,
			rec.StockID,
			rec.Type,
			strconv.FormatFloat(rec.Quantity, 'f', -1, 64),
			price,
			rec.ID,
		})
	}
	doc.Table(table)

	return doc.String()
}
