package stockfolio

import (
	"maps"
	"slices"
	"strings"

	"github.com/kvasir-fin/stockfolio/date"
)

// lookbackDays is the width of the backward scan used when a price is
// missing for a requested date: the date itself and the 99 days before it.
// It models "most recent prior trading-day close" without the engine
// knowing market calendars.
const lookbackDays = 100

// Security holds the daily closing prices of one tradable instrument.
type Security struct {
	ticker string
	prices date.History[float64]
}

// Ticker returns the instrument identifier.
func (s *Security) Ticker() string { return s.ticker }

// Prices returns the security's daily close history.
func (s *Security) Prices() *date.History[float64] { return &s.prices }

// Market is the price oracle: a read-only source of daily closing prices
// keyed by ticker and date. It is populated by an external collaborator
// (a fetcher, an import) and consumed by the valuation engine.
type Market struct {
	securities []*Security
	index      map[string]*Security
}

// NewMarket returns a new empty market data collection.
func NewMarket() *Market {
	return &Market{
		securities: make([]*Security, 0),
		index:      make(map[string]*Security),
	}
}

// Has reports whether the market knows the ticker.
func (m *Market) Has(ticker string) bool {
	_, ok := m.index[ticker]
	return ok
}

// Get returns the security for the ticker, or nil if unknown.
func (m *Market) Get(ticker string) *Security { return m.index[ticker] }

// Add declares a ticker and returns its security. Adding an existing ticker
// returns the existing security.
func (m *Market) Add(ticker string) *Security {
	if sec, ok := m.index[ticker]; ok {
		return sec
	}
	sec := &Security{ticker: ticker}
	m.securities = append(m.securities, sec)
	m.index[ticker] = sec
	slices.SortFunc(m.securities, func(a, b *Security) int {
		return strings.Compare(a.ticker, b.ticker)
	})
	return sec
}

// SetPrice records the closing price of a ticker on a day, declaring the
// ticker if needed. An existing price for that day is overwritten.
func (m *Market) SetPrice(ticker string, on date.Date, price float64) error {
	if strings.TrimSpace(ticker) == "" {
		return invalidf("ticker is blank")
	}
	if price < 0 {
		return invalidf("negative price %v for %s on %s", price, ticker, on)
	}
	if on.IsZero() {
		return invalidf("price date for %s is not set", ticker)
	}
	m.Add(ticker).prices.Append(on, price)
	return nil
}

// Tickers returns all known tickers in lexical order.
func (m *Market) Tickers() []string {
	return slices.Sorted(maps.Keys(m.index))
}

// Quote returns the exact closing price for (ticker, on), with no lookback.
func (m *Market) Quote(ticker string, on date.Date) (float64, bool) {
	sec, ok := m.index[ticker]
	if !ok {
		return 0, false
	}
	return sec.prices.Get(on)
}

// Price returns the closing price for the ticker on the given date, or the
// most recent one within the lookback window before it. When the window is
// exhausted, or the ticker is unknown, it fails with a
// PriceUnavailableError.
func (m *Market) Price(ticker string, on date.Date) (float64, error) {
	sec, ok := m.index[ticker]
	if !ok {
		return 0, &PriceUnavailableError{Ticker: ticker, On: on}
	}
	for i := 0; i < lookbackDays; i++ {
		if price, ok := sec.prices.Get(on.Add(-i)); ok {
			return price, nil
		}
	}
	return 0, &PriceUnavailableError{Ticker: ticker, On: on}
}

// IsTradingDay reports whether any security has an exact price on the given
// day. Strategies use it as the trading calendar, so date generation does
// not depend on a single ticker's possibly gapped history.
func (m *Market) IsTradingDay(on date.Date) bool {
	for _, sec := range m.securities {
		if _, ok := sec.prices.Get(on); ok {
			return true
		}
	}
	return false
}
