package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/dividend"
	md "github.com/nao1215/markdown"
)

func GoalsMarkdown(vm dividend.GoalViewModel) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dividend Goals")

	if vm.EmptyState != "" {
		doc.PlainText(vm.EmptyState)
		return doc.String()
	}

	metrics := md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows:   make([][]string, 0, len(vm.Metrics)),
	}
	for _, m := range vm.Metrics {
		label := m.Label
		if m.IsActive {
			label = md.Bold(label)
		}
		metrics.Rows = append(metrics.Rows, []string{label, m.Value})
	}
	doc.Table(metrics)

	doc.H2("Progress")
	for _, row := range vm.Rows {
		doc.H3(fmt.Sprintf("%s %s", row.Label, row.PercentLabel))
		doc.PlainText(progressBar(row.Percent))
		doc.BulletList(row.Current, row.Target)
		if row.Encouragement != "" {
			doc.Blockquote(row.Encouragement)
		}
	}

	return doc.String()
}

// progressBar renders a coarse 20-slot text gauge for a [0,1] ratio.
func progressBar(ratio float64) string {
	const slots = 20
	filled := int(ratio * slots)
	if filled > slots {
		filled = slots
	}
	if filled < 0 {
		filled = 0
	}
	bar := make([]rune, slots)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return "`" + string(bar) + "`"
}
