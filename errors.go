package stockfolio

import (
	"fmt"

	"github.com/kvasir-fin/stockfolio/date"
)

// The engine reports failures through a small set of error kinds so that
// callers can branch on the failure class with errors.As. None of them is
// retried internally.

// ValidationError reports invalid caller input: blank identifiers,
// non-positive amounts, malformed dates, or proportions that do not sum to
// one hundred.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// invalidf builds a ValidationError the way fmt.Errorf builds an error.
func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// TradeConsistencyError reports a rejected trade append: the sell would
// drive the ticker's cumulative position negative as of the reported date.
type TradeConsistencyError struct {
	Ticker string
	On     date.Date
}

func (e *TradeConsistencyError) Error() string {
	return fmt.Sprintf("cannot sell more %s than held on %s", e.Ticker, e.On)
}

// PriceUnavailableError reports that no price could be found for a ticker,
// neither on the requested date nor within the lookback window before it.
type PriceUnavailableError struct {
	Ticker string
	On     date.Date
}

func (e *PriceUnavailableError) Error() string {
	return fmt.Sprintf("no price for %s on %s or the %d days before it", e.Ticker, e.On, lookbackDays-1)
}

// LookupError reports that a named portfolio does not exist.
type LookupError struct {
	Kind string // "portfolio"
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %q does not exist", e.Kind, e.Name)
}
