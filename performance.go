package stockfolio

import (
	"errors"
	"time"

	"github.com/kvasir-fin/stockfolio/date"
)

// Weekly buckets close on Fridays, the last trading day of a regular week.
const friday = time.Friday

// Point is one sample of a performance series: the portfolio value on a
// bucket boundary date.
type Point struct {
	Date  date.Date
	Value Money
}

// Series is a time-bucketed performance report. The granularity is chosen
// from the range length, one point per bucket boundary. Scaling and
// rendering of the raw values is the caller's concern.
type Series struct {
	Granularity date.Period
	Points      []Point
}

// granularityFor selects the sampling interval from the span in calendar
// days between the range boundaries.
func granularityFor(days int) date.Period {
	switch {
	case days < 30:
		return date.Daily
	case days < 210:
		return date.Weekly
	case days < 900:
		return date.Monthly
	default:
		return date.Yearly
	}
}

// abortsOnMissing reports whether a missing price for a bucket date aborts
// the whole series instead of degrading that bucket to zero. Only the
// yearly granularity aborts; the asymmetry is a kept behavior, expressed
// here as an explicit per-granularity policy.
func abortsOnMissing(g date.Period) bool { return g == date.Yearly }

// bucketDates generates the bucket boundary dates of a range at a
// granularity:
//   - daily: every calendar date of the range;
//   - weekly: every Friday from the first Friday on/after the start through
//     the last Friday on/before the end;
//   - monthly: the last calendar day of each month, start month through end
//     month inclusive;
//   - yearly: the last calendar day of each year, start year through end
//     year inclusive.
func bucketDates(r date.Range, g date.Period) []date.Date {
	var out []date.Date
	switch g {
	case date.Daily:
		for on := r.From; !on.After(r.To); on = on.Add(1) {
			out = append(out, on)
		}
	case date.Weekly:
		on := r.From
		for on.Weekday() != friday {
			on = on.Add(1)
		}
		for ; !on.After(r.To); on = on.Add(7) {
			out = append(out, on)
		}
	case date.Monthly:
		last := r.To.EndOfMonth()
		for on := r.From.EndOfMonth(); !on.After(last); on = on.Add(1).EndOfMonth() {
			out = append(out, on)
		}
	case date.Yearly:
		last := r.To.EndOfYear()
		for on := r.From.EndOfYear(); !on.After(last); on = on.Add(1).EndOfYear() {
			out = append(out, on)
		}
	}
	return out
}

// Performance values the portfolio on every bucket boundary of the range.
// The range end must be strictly after its start. A bucket whose valuation
// fails on missing price data is recorded as zero, unless the granularity's
// policy aborts the whole series.
func Performance(p Portfolio, m *Market, r date.Range) (Series, error) {
	if err := r.Validate(); err != nil {
		return Series{}, invalidf("invalid performance range: %v", err)
	}
	g := granularityFor(r.Days())
	s := Series{Granularity: g}
	for _, on := range bucketDates(r, g) {
		value, err := p.Value(m, on)
		if err != nil {
			var missing *PriceUnavailableError
			if errors.As(err, &missing) && !abortsOnMissing(g) {
				s.Points = append(s.Points, Point{Date: on, Value: M(0, DefaultCurrency)})
				continue
			}
			return Series{}, err
		}
		s.Points = append(s.Points, Point{Date: on, Value: value})
	}
	return s, nil
}
