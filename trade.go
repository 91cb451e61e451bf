package stockfolio

import (
	"strings"

	"github.com/kvasir-fin/stockfolio/date"
)

// Side tags a trade as a purchase or a sale. It is derived from the sign of
// the quantity, never stored.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Sell {
		return "SELL"
	}
	return "BUY"
}

// ParseSide parses the interchange tag "BUY" or "SELL".
func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return Buy, invalidf("unknown trade side %q", s)
	}
}

// Trade is a dated, signed exchange of a single instrument: a positive
// quantity is a buy, a negative one a sell. Trades are immutable once
// created and owned by the ledger that recorded them.
type Trade struct {
	Ticker   string
	Quantity Quantity
	Date     date.Date
}

// NewTrade builds a validated trade. The ticker must be non-blank, the
// quantity non-zero and the date set.
func NewTrade(ticker string, quantity Quantity, on date.Date) (Trade, error) {
	if strings.TrimSpace(ticker) == "" {
		return Trade{}, invalidf("trade ticker is blank")
	}
	if quantity.IsZero() {
		return Trade{}, invalidf("trade quantity for %s is zero", ticker)
	}
	if on.IsZero() {
		return Trade{}, invalidf("trade date for %s is not set", ticker)
	}
	return Trade{Ticker: ticker, Quantity: quantity, Date: on}, nil
}

// Side returns Buy for positive quantities and Sell for negative ones.
func (t Trade) Side() Side {
	if t.Quantity.IsNegative() {
		return Sell
	}
	return Buy
}

// MarshalJSON writes the trade with a canonical key order.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Append("ticker", t.Ticker)
	w.Append("quantity", t.Quantity)
	return w.MarshalJSON()
}
