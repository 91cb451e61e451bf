package renderer

import (
	"bytes"
	"fmt"

	"github.com/kvasir-fin/stockfolio"
	md "github.com/nao1215/markdown"
)

// PerformanceMarkdown renders a bucketed performance series as a markdown
// table with a proportional bar chart, one row per bucket boundary.
func PerformanceMarkdown(name string, s stockfolio.Series) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Performance of %s (%s)", name, s.Granularity))

	max := 0.0
	for _, p := range s.Points {
		if v := p.Value.AsFloat(); v > max {
			max = v
		}
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Value", "Chart"},
		Rows:   [][]string{},
	}
	for _, p := range s.Points {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			p.Value.String(),
			bar(p.Value.AsFloat(), max),
		})
	}
	doc.Table(table)
	return doc.String()
}
