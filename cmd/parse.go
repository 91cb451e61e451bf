package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kvasir-fin/stockfolio"
)

// parseHoldings parses "TICKER:QUANTITY" arguments.
func parseHoldings(args []string) ([]stockfolio.Holding, error) {
	holdings := make([]stockfolio.Holding, 0, len(args))
	for _, arg := range args {
		ticker, qty, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("invalid holding %q, want TICKER:QUANTITY", arg)
		}
		q, err := stockfolio.ParseQuantity(qty)
		if err != nil {
			return nil, err
		}
		h, err := stockfolio.NewHolding(ticker, q)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, nil
}

// parseAllocation parses "TICKER:PERCENT" arguments into an allocation. The
// percents are validated later, together, by the allocation itself.
func parseAllocation(args []string) (stockfolio.Allocation, error) {
	alloc := make(stockfolio.Allocation, 0, len(args))
	for _, arg := range args {
		ticker, pct, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("invalid weight %q, want TICKER:PERCENT", arg)
		}
		percent, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid percent in %q: %w", arg, err)
		}
		alloc = append(alloc, stockfolio.Weight{Ticker: ticker, Percent: percent})
	}
	return alloc, nil
}
