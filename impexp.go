package stockfolio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/kvasir-fin/stockfolio/date"
)

// This file handles the CSV interchange format for trade histories. Rows
// carry an absolute quantity and an explicit BUY/SELL tag, so the files
// stay readable in a spreadsheet.

// csvHeader is the first row of every exported trade file.
var csvHeader = []string{"Stock Name", "Quantity", "Date", "Type of Trade"}

// ExportTrades writes the ledger's trades to 'w' as CSV, in chronological
// order.
func ExportTrades(w io.Writer, l *LedgerPortfolio) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, t := range l.Trades() {
		row := []string{t.Ticker, t.Quantity.Abs().String(), t.Date.String(), t.Side().String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write trade row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportTrades reads a CSV trade history from 'r' and replays it into a new
// ledger portfolio with the given name. Every row goes through the
// ordinary append guard, so a file that oversells is rejected. A leading
// header row is skipped.
func ImportTrades(name string, r io.Reader) (*LedgerPortfolio, error) {
	l, err := NewLedgerPortfolio(name)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	first := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read trade row: %w", err)
		}
		if first {
			first = false
			if row[0] == csvHeader[0] {
				continue
			}
		}
		qty, err := ParseQuantity(row[1])
		if err != nil {
			return nil, err
		}
		on, err := date.Parse(row[2])
		if err != nil {
			return nil, invalidf("invalid trade date %q: %v", row[2], err)
		}
		side, err := ParseSide(row[3])
		if err != nil {
			return nil, err
		}
		if side == Sell {
			qty = qty.Abs().Neg()
		} else {
			qty = qty.Abs()
		}
		t, err := NewTrade(row[0], qty, on)
		if err != nil {
			return nil, err
		}
		if err := l.Append(t); err != nil {
			return nil, err
		}
	}
	return l, nil
}
