package renderer

import (
	"bytes"
	"fmt"

	"github.com/kvasir-fin/stockfolio"
	md "github.com/nao1215/markdown"
)

// TradesMarkdown renders a ledger's trade history as a markdown table in
// chronological order.
func TradesMarkdown(l *stockfolio.LedgerPortfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Trades of %s", l.Name()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Ticker", "Side", "Quantity"},
		Rows:   [][]string{},
	}
	for _, t := range l.Trades() {
		table.Rows = append(table.Rows, []string{
			t.Date.String(),
			t.Ticker,
			t.Side().String(),
			t.Quantity.Abs().String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
