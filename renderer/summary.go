package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/dividend"
	md "github.com/nao1215/markdown"
)

func SummaryMarkdown(s *dividend.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dividend Summary %d", s.AnnualYear))
	doc.PlainText(fmt.Sprintf("Base Currency: %s", s.BaseCurrency))

	table := md.TableSet{
		Header: []string{"Currency", "Accumulated", fmt.Sprintf("%d Total", s.AnnualYear), "Monthly Avg", "Monthly Min"},
		Rows:   make([][]string, 0, len(s.Currencies)),
	}
	for _, currency := range s.Currencies {
		cs := s.PerCurrency[currency]
		table.Rows = append(table.Rows, []string{
			currency,
			cs.AccumulatedTotal.Display(),
			cs.AnnualTotal.Display(),
			cs.MonthlyAverage.Display(),
			cs.MonthlyMinimum.Display(),
		})
	}
	if len(table.Rows) == 0 {
		doc.PlainText("No dividends recorded yet.")
		return doc.String()
	}
	doc.Table(table)

	return doc.String()
}
