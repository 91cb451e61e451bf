package stockfolio

import (
	"strings"

	"github.com/kvasir-fin/stockfolio/date"
)

// Holding is a fixed (ticker, quantity) pair of a static portfolio.
type Holding struct {
	Ticker   string
	Quantity Quantity
}

// NewHolding builds a validated holding: non-blank ticker, non-zero
// quantity.
func NewHolding(ticker string, quantity Quantity) (Holding, error) {
	if strings.TrimSpace(ticker) == "" {
		return Holding{}, invalidf("holding ticker is blank")
	}
	if quantity.IsZero() {
		return Holding{}, invalidf("holding quantity for %s is zero", ticker)
	}
	return Holding{Ticker: ticker, Quantity: quantity}, nil
}

func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ticker", h.Ticker)
	w.Append("quantity", h.Quantity)
	return w.MarshalJSON()
}

// composition accumulates net quantities per ticker over trades dated on or
// before asOf. The trades slice must already be in chronological order.
// Tickers whose position nets out to zero stay in the map at zero.
func composition(trades []Trade, asOf date.Date) map[string]Quantity {
	comp := make(map[string]Quantity)
	for _, t := range trades {
		if t.Date.After(asOf) {
			// trades are sorted by date, so it is safe to stop here.
			break
		}
		comp[t.Ticker] = comp[t.Ticker].Add(t.Quantity)
	}
	return comp
}

// StaticPortfolio is an immutable named collection of holdings, fixed at
// creation. Its composition does not depend on the date.
type StaticPortfolio struct {
	name     string
	holdings []Holding
}

// NewStaticPortfolio builds a static portfolio. The name must be non-blank,
// the holdings non-empty with unique tickers.
func NewStaticPortfolio(name string, holdings []Holding) (*StaticPortfolio, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalidf("portfolio name is blank")
	}
	if len(holdings) == 0 {
		return nil, invalidf("portfolio %q has no holdings", name)
	}
	seen := make(map[string]struct{}, len(holdings))
	for _, h := range holdings {
		if _, err := NewHolding(h.Ticker, h.Quantity); err != nil {
			return nil, err
		}
		if _, dup := seen[h.Ticker]; dup {
			return nil, invalidf("portfolio %q holds %s twice", name, h.Ticker)
		}
		seen[h.Ticker] = struct{}{}
	}
	p := &StaticPortfolio{name: name}
	p.holdings = append(p.holdings, holdings...)
	return p, nil
}

// Name returns the portfolio name.
func (p *StaticPortfolio) Name() string { return p.name }

// Holdings returns a copy of the fixed holdings.
func (p *StaticPortfolio) Holdings() []Holding {
	out := make([]Holding, len(p.holdings))
	copy(out, p.holdings)
	return out
}

// Composition returns the fixed holdings as a ticker to quantity map. The
// date is ignored: a static portfolio never changes.
func (p *StaticPortfolio) Composition(date.Date) map[string]Quantity {
	comp := make(map[string]Quantity, len(p.holdings))
	for _, h := range p.holdings {
		comp[h.Ticker] = h.Quantity
	}
	return comp
}

// Value computes the market value of the holdings on the given date.
func (p *StaticPortfolio) Value(m *Market, on date.Date) (Money, error) {
	return valueOf(p.Composition(on), m, on)
}
