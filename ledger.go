package stockfolio

import (
	"iter"
	"slices"
	"sort"
	"strings"

	"github.com/kvasir-fin/stockfolio/date"
)

// LedgerPortfolio is a named, append-only sequence of dated signed trades.
// Composition, cost basis and value are always derived from the sequence,
// never stored redundantly.
//
// The trade sequence is kept in chronological order; same-day trades keep
// their append order.
type LedgerPortfolio struct {
	name   string
	trades []Trade
}

// NewLedgerPortfolio creates an empty ledger portfolio.
func NewLedgerPortfolio(name string) (*LedgerPortfolio, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalidf("portfolio name is blank")
	}
	return &LedgerPortfolio{name: name, trades: make([]Trade, 0)}, nil
}

// Name returns the portfolio name.
func (l *LedgerPortfolio) Name() string { return l.name }

// stableSortTrades sorts trades by date. The sort is stable, so same-day
// trades keep their relative order.
func stableSortTrades(trades []Trade) {
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].Date.Before(trades[j].Date)
	})
}

// checkConsistency replays a date-sorted trade sequence and fails on the
// first prefix where any ticker's running position goes negative.
func checkConsistency(trades []Trade) error {
	running := make(map[string]Quantity)
	for _, t := range trades {
		q := running[t.Ticker].Add(t.Quantity)
		if q.IsNegative() {
			return &TradeConsistencyError{Ticker: t.Ticker, On: t.Date}
		}
		running[t.Ticker] = q
	}
	return nil
}

// Append records a trade. The full history including the candidate is
// re-sorted and replayed first: a sell may carry a date earlier than
// already-recorded buys, so checking only the chronological tail would not
// be enough. On rejection the ledger is left untouched.
func (l *LedgerPortfolio) Append(t Trade) error {
	return l.appendAll([]Trade{t})
}

// appendAll records a batch of trades atomically: either every trade passes
// the consistency check and all are committed, or none is.
func (l *LedgerPortfolio) appendAll(trades []Trade) error {
	next := make([]Trade, 0, len(l.trades)+len(trades))
	next = append(next, l.trades...)
	next = append(next, trades...)
	stableSortTrades(next)
	if err := checkConsistency(next); err != nil {
		return err
	}
	l.trades = next
	return nil
}

// Trades returns an iterator over the trades in chronological order.
func (l *LedgerPortfolio) Trades() iter.Seq2[int, Trade] {
	return func(yield func(int, Trade) bool) {
		for i, t := range l.trades {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Len returns the number of recorded trades.
func (l *LedgerPortfolio) Len() int { return len(l.trades) }

// OldestTradeDate returns the date of the earliest trade, or the zero date
// for an empty ledger.
func (l *LedgerPortfolio) OldestTradeDate() date.Date {
	if len(l.trades) == 0 {
		return date.Date{}
	}
	return l.trades[0].Date
}

// NewestTradeDate returns the date of the latest trade, or the zero date
// for an empty ledger.
func (l *LedgerPortfolio) NewestTradeDate() date.Date {
	if len(l.trades) == 0 {
		return date.Date{}
	}
	return l.trades[len(l.trades)-1].Date
}

// Composition returns the net quantity per ticker over trades dated on or
// before the given date.
func (l *LedgerPortfolio) Composition(on date.Date) map[string]Quantity {
	return composition(l.trades, on)
}

// Position returns the net quantity of one ticker as of a date.
func (l *LedgerPortfolio) Position(ticker string, on date.Date) Quantity {
	var pos Quantity
	for _, t := range l.trades {
		if t.Date.After(on) {
			break
		}
		if t.Ticker == ticker {
			pos = pos.Add(t.Quantity)
		}
	}
	return pos
}

// Tickers returns every ticker ever traded, in lexical order.
func (l *LedgerPortfolio) Tickers() []string {
	seen := make(map[string]struct{})
	for _, t := range l.trades {
		seen[t.Ticker] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for ticker := range seen {
		out = append(out, ticker)
	}
	slices.Sort(out)
	return out
}

// Value computes the market value of the composition on the given date.
func (l *LedgerPortfolio) Value(m *Market, on date.Date) (Money, error) {
	return valueOf(l.Composition(on), m, on)
}

// CostBasis computes the capital committed by the given date: for every buy
// dated on or before it, the purchase price (looked up at the trade's own
// date) times the quantity, plus the flat commission once per trade, buy or
// sell. An empty ledger costs nothing. The result never decreases as the
// date advances.
func (l *LedgerPortfolio) CostBasis(m *Market, on date.Date, commission Money) (Money, error) {
	total := M(0, DefaultCurrency)
	for _, t := range l.trades {
		if t.Date.After(on) {
			break
		}
		if t.Quantity.IsPositive() {
			price, err := m.Price(t.Ticker, t.Date)
			if err != nil {
				return Money{}, err
			}
			total = total.Add(M(price, DefaultCurrency).Mul(t.Quantity))
		}
		total = total.Add(commission)
	}
	return total, nil
}
