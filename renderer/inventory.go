package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/dividend"
	md "github.com/nao1215/markdown"
)

func InventoryMarkdown(s dividend.InventorySummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory")

	if len(s.Positions) == 0 {
		doc.PlainText("No open positions.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Stock", "Name", "Quantity", "Cost", "Avg Price"},
		Rows:   make([][]string, 0, len(s.Positions)),
	}
	for _, p := range s.Positions {
		table.Rows = append(table.Rows, []string{
			p.StockID,
			p.StockName,
			p.TotalQuantity.String(),
			p.TotalCost.Display(),
			p.AveragePrice.Display(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total Investment: %s", s.TotalInvestment.Display()))
	if s.TotalValue.IsPositive() {
		doc.PlainText(fmt.Sprintf("Total Market Value: %s", s.TotalValue.Display()))
	}

	return doc.String()
}

func AlertsMarkdown(alerts []dividend.DividendAlert, on dividend.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dividend Alerts for %s", on))

	if len(alerts) == 0 {
		doc.PlainText("Nothing happening tomorrow.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Stock", "Name", "Event", "Per Share", "Held", "Total"},
		Rows:   make([][]string, 0, len(alerts)),
	}
	for _, a := range alerts {
		event := "goes ex-dividend"
		if a.Kind == dividend.AlertPay {
			event = "pays out"
		}
		table.Rows = append(table.Rows, []string{
			a.StockID,
			a.StockName,
			event,
			fmt.Sprintf("%g", a.PerShare),
			a.Quantity.String(),
			a.Total.Display(),
		})
	}
	doc.Table(table)

	return doc.String()
}
