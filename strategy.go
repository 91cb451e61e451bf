package stockfolio

import (
	"math"
	"strings"

	"github.com/kvasir-fin/stockfolio/date"
)

// Weight allocates a percentage of an invested amount to one ticker.
type Weight struct {
	Ticker  string
	Percent float64
}

// Allocation is an ordered proportional split of an amount across tickers.
type Allocation []Weight

// proportionTolerance is how far the percents may sum from 100. The
// original contract was exact floating-point equality; the tolerance is a
// deliberate, documented deviation so that sums off by float noise do not
// flap.
const proportionTolerance = 1e-9

// Validate checks the allocation: at least one weight, unique non-blank
// tickers, every percent strictly positive, and a total of 100.
func (a Allocation) Validate() error {
	if len(a) == 0 {
		return invalidf("allocation is empty")
	}
	seen := make(map[string]struct{}, len(a))
	sum := 0.0
	for _, w := range a {
		if strings.TrimSpace(w.Ticker) == "" {
			return invalidf("allocation ticker is blank")
		}
		if _, dup := seen[w.Ticker]; dup {
			return invalidf("allocation lists %s twice", w.Ticker)
		}
		seen[w.Ticker] = struct{}{}
		if w.Percent <= 0 {
			return invalidf("allocation for %s is %v, must be positive", w.Ticker, w.Percent)
		}
		sum += w.Percent
	}
	if math.Abs(sum-100) > proportionTolerance {
		return invalidf("allocation percents sum to %v, must sum to 100", sum)
	}
	return nil
}

// proportionalTrades prices every ticker of the allocation on the given
// date and builds one trade per ticker: (percent/100 × amount) / price
// units. The exact day's quote is required, no lookback: an investment can
// only happen on a day the instrument actually traded.
func proportionalTrades(m *Market, amount float64, alloc Allocation, on date.Date) ([]Trade, error) {
	trades := make([]Trade, 0, len(alloc))
	for _, w := range alloc {
		price, ok := m.Quote(w.Ticker, on)
		if !ok {
			return nil, &PriceUnavailableError{Ticker: w.Ticker, On: on}
		}
		if price == 0 {
			return nil, invalidf("%s quotes at zero on %s, cannot size a trade", w.Ticker, on)
		}
		qty := Q(w.Percent / 100 * amount / price)
		t, err := NewTrade(w.Ticker, qty, on)
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, nil
}

// Invest applies one proportional multi-ticker trade to the ledger: every
// ticker of the allocation is priced and sized first, and the batch is
// committed atomically. A failure on any ticker commits nothing.
func Invest(l *LedgerPortfolio, m *Market, amount float64, alloc Allocation, on date.Date) error {
	if amount <= 0 {
		return invalidf("investment amount %v must be positive", amount)
	}
	if err := alloc.Validate(); err != nil {
		return err
	}
	if on.IsZero() {
		return invalidf("investment date is not set")
	}
	trades, err := proportionalTrades(m, amount, alloc, on)
	if err != nil {
		return err
	}
	return l.appendAll(trades)
}

// Strategy is a recurring proportional investment: a fixed amount split by
// the allocation, invested periodically between From and To. A zero To
// means today.
type Strategy struct {
	Amount     float64
	Allocation Allocation
	From       date.Date
	To         date.Date
	Period     date.Period
}

// Validate checks the strategy parameters. Only weekly and monthly
// periodicities are supported.
func (s Strategy) Validate() error {
	if s.Amount <= 0 {
		return invalidf("strategy amount %v must be positive", s.Amount)
	}
	if err := s.Allocation.Validate(); err != nil {
		return err
	}
	if s.From.IsZero() {
		return invalidf("strategy start date is not set")
	}
	if s.Period != date.Weekly && s.Period != date.Monthly {
		return invalidf("unsupported strategy period %q", s.Period)
	}
	if !s.To.IsZero() && s.From.After(s.To) {
		return invalidf("strategy start %s is after end %s", s.From, s.To)
	}
	return nil
}

// horizon returns the end of the strategy window, defaulting to today.
func (s Strategy) horizon() date.Date {
	if s.To.IsZero() {
		return date.Today()
	}
	return s.To
}

// Dates expands the strategy into its concrete investment dates, walking
// the market's trading calendar:
//   - weekly: from the start, the first trading day is accepted, then the
//     walk jumps a week minus the days already spent skipping closed days;
//   - monthly: each accepted date is followed by a candidate a whole number
//     of months after the original start, not after the accepted date, so
//     the schedule does not drift.
//
// A jump can land on or before the last accepted date when the market was
// closed for longer than the period; the walk then re-reaches that date,
// but every date appears at most once in the result. The walk stops once
// it reaches or passes the horizon.
func (s Strategy) Dates(m *Market) ([]date.Date, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	to := s.horizon()
	var out []date.Date
	// accept records an investment date. Re-reached dates still advance
	// the walk but are not recorded twice.
	accept := func(on date.Date) {
		if n := len(out); n == 0 || out[n-1].Before(on) {
			out = append(out, on)
		}
	}
	switch s.Period {
	case date.Weekly:
		on, skipped := s.From, 0
		for on.Before(to) {
			if m.IsTradingDay(on) {
				accept(on)
				on = on.Add(7 - skipped)
				skipped = 0
			} else {
				on = on.Add(1)
				skipped++
			}
		}
	case date.Monthly:
		on, months := s.From, 0
		for on.Before(to) {
			if m.IsTradingDay(on) {
				accept(on)
				months++
				on = s.From.AddMonth(months)
			} else {
				on = on.Add(1)
			}
		}
	}
	return out, nil
}

// Apply expands the strategy and replays one proportional multi-ticker
// trade per investment date on the ledger. All dates are priced and sized
// before anything is committed: a failure anywhere commits nothing.
func (s Strategy) Apply(l *LedgerPortfolio, m *Market) error {
	dates, err := s.Dates(m)
	if err != nil {
		return err
	}
	var trades []Trade
	for _, on := range dates {
		batch, err := proportionalTrades(m, s.Amount, s.Allocation, on)
		if err != nil {
			return err
		}
		trades = append(trades, batch...)
	}
	return l.appendAll(trades)
}
