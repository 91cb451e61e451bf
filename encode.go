package stockfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// A book is persisted as a JSONL stream of commands, one JSON object per
// line, replayed in order on load. The format is human readable, append
// friendly and easy to merge.

// commandType is a typed string identifying a persisted command.
type commandType string

const (
	cmdCreate     commandType = "create"
	cmdTrade      commandType = "trade"
	cmdCommission commandType = "commission"
)

func encodeLine(w io.Writer, ow *jsonObjectWriter) error {
	data, err := ow.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal command: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write command: %w", err)
	}
	return nil
}

// EncodeLedgerCreation writes the command creating an empty ledger
// portfolio.
func EncodeLedgerCreation(w io.Writer, name string) error {
	var ow jsonObjectWriter
	ow.Append("command", cmdCreate)
	ow.Append("portfolio", name)
	return encodeLine(w, &ow)
}

// EncodeStaticCreation writes the command creating a static portfolio with
// its fixed holdings.
func EncodeStaticCreation(w io.Writer, p *StaticPortfolio) error {
	var ow jsonObjectWriter
	ow.Append("command", cmdCreate)
	ow.Append("portfolio", p.Name())
	ow.Append("holdings", p.Holdings())
	return encodeLine(w, &ow)
}

// EncodeTrade writes the command appending one trade to a ledger
// portfolio.
func EncodeTrade(w io.Writer, portfolio string, t Trade) error {
	var ow jsonObjectWriter
	ow.Append("command", cmdTrade)
	ow.Append("date", t.Date)
	ow.Append("portfolio", portfolio)
	ow.Append("ticker", t.Ticker)
	ow.Append("quantity", t.Quantity)
	return encodeLine(w, &ow)
}

// EncodeCommission writes the command setting the flat per-trade
// commission.
func EncodeCommission(w io.Writer, c Money) error {
	var ow jsonObjectWriter
	ow.Append("command", cmdCommission)
	ow.EmbedFrom(c)
	return encodeLine(w, &ow)
}

// EncodeBook writes the whole book in canonical order: commission first,
// then static portfolios, then each ledger followed by its trades in
// chronological order.
func EncodeBook(w io.Writer, b *Book) error {
	if err := EncodeCommission(w, b.Commission()); err != nil {
		return err
	}
	for _, name := range b.StaticNames() {
		p, _ := b.Static(name)
		if err := EncodeStaticCreation(w, p); err != nil {
			return err
		}
	}
	for _, name := range b.LedgerNames() {
		if err := EncodeLedgerCreation(w, name); err != nil {
			return err
		}
		l, _ := b.Ledger(name)
		for _, t := range l.Trades() {
			if err := EncodeTrade(w, name, t); err != nil {
				return err
			}
		}
	}
	return nil
}

// DecodeBook replays a JSONL command stream into a new book reading prices
// from the given market. Trades go through the ordinary append guard, so a
// tampered stream that oversells is rejected.
func DecodeBook(r io.Reader, m *Market) (*Book, error) {
	b := NewBook(m)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var identifier struct {
			Command commandType `json:"command"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command in line %q: %w", string(line), err)
		}
		var err error
		switch identifier.Command {
		case cmdCreate:
			var temp struct {
				Portfolio string    `json:"portfolio"`
				Holdings  []Holding `json:"holdings"`
			}
			if err = json.Unmarshal(line, &temp); err != nil {
				break
			}
			if len(temp.Holdings) == 0 {
				_, err = b.NewLedger(temp.Portfolio)
			} else {
				_, err = b.NewStatic(temp.Portfolio, temp.Holdings)
			}
		case cmdTrade:
			var temp struct {
				Trade
				Portfolio string `json:"portfolio"`
			}
			if err = json.Unmarshal(line, &temp); err != nil {
				break
			}
			err = b.AddTrade(temp.Portfolio, temp.Ticker, temp.Quantity, temp.Date)
		case cmdCommission:
			var temp struct {
				Amount   decimal.Decimal `json:"amount"`
				Currency string          `json:"currency"`
			}
			if err = json.Unmarshal(line, &temp); err != nil {
				break
			}
			currency := temp.Currency
			if currency == "" {
				currency = DefaultCurrency
			}
			err = b.SetCommission(M(temp.Amount, currency))
		default:
			err = fmt.Errorf("unknown command: %q", identifier.Command)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid line %q: %w", string(line), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return b, nil
}
