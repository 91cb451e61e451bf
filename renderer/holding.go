package renderer

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/kvasir-fin/stockfolio"
	"github.com/kvasir-fin/stockfolio/date"
	md "github.com/nao1215/markdown"
)

// HoldingMarkdown renders the composition of a portfolio on a date as a
// markdown table, one ticker per row with its looked-up price and market
// value. A ticker whose price cannot be found renders "n/a" and is left out
// of the total. Flat positions are not listed.
func HoldingMarkdown(p stockfolio.Portfolio, m *stockfolio.Market, on date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Holding of %s on %s", p.Name(), on))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Position", "Price", "Value"},
		Rows:   [][]string{},
	}

	comp := p.Composition(on)
	total := stockfolio.USD(0)
	for _, ticker := range slices.Sorted(maps.Keys(comp)) {
		qty := comp[ticker]
		if qty.IsZero() {
			continue
		}
		price, err := m.Price(ticker, on)
		if err != nil {
			table.Rows = append(table.Rows, []string{ticker, qty.String(), "n/a", "n/a"})
			continue
		}
		value := stockfolio.USD(price).Mul(qty)
		total = total.Add(value)
		table.Rows = append(table.Rows, []string{
			ticker,
			qty.String(),
			stockfolio.USD(price).String(),
			value.String(),
		})
	}
	table.Rows = append(table.Rows, []string{"**Total**", "", "", total.String()})
	doc.Table(table)
	return doc.String()
}
