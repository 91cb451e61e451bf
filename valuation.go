package stockfolio

import (
	"maps"
	"slices"

	"github.com/kvasir-fin/stockfolio/date"
)

// Portfolio is the read side shared by both portfolio kinds: a name, a
// composition as of a date, and a market value on a date.
type Portfolio interface {
	Name() string
	Composition(on date.Date) map[string]Quantity
	Value(m *Market, on date.Date) (Money, error)
}

// valueOf sums quantity times price over a composition. Entries whose net
// quantity is zero contribute nothing and trigger no price lookup, so a
// fully sold ticker cannot fail an otherwise priceable valuation.
func valueOf(comp map[string]Quantity, m *Market, on date.Date) (Money, error) {
	total := M(0, DefaultCurrency)
	for _, ticker := range slices.Sorted(maps.Keys(comp)) {
		qty := comp[ticker]
		if qty.IsZero() {
			continue
		}
		price, err := m.Price(ticker, on)
		if err != nil {
			return Money{}, err
		}
		total = total.Add(M(price, DefaultCurrency).Mul(qty))
	}
	return total, nil
}
