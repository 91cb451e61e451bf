package stockfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kvasir-fin/stockfolio/date"
)

// Market data is persisted as a JSONL file, one security per line: the
// property 'ticker' holds the instrument identifier and 'history' a single
// object mapping ISO dates to closing prices.

// jsecurity is the readable line shape of the market format.
type jsecurity struct {
	Ticker  string             `json:"ticker"`
	History map[string]float64 `json:"history"`
}

// DecodeMarket reads market data from 'r' in the JSONL market format.
func DecodeMarket(r io.Reader) (*Market, error) {
	m := NewMarket()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var js jsecurity
		if err := json.Unmarshal(line, &js); err != nil {
			return nil, fmt.Errorf("cannot parse line of market format: %q: %w", string(line), err)
		}
		if strings.TrimSpace(js.Ticker) == "" {
			return nil, fmt.Errorf("market line without ticker: %q", string(line))
		}
		for day, price := range js.History {
			on, err := date.Parse(day)
			if err != nil {
				return nil, fmt.Errorf("cannot parse date in history of %q: %w", js.Ticker, err)
			}
			if err := m.SetPrice(js.Ticker, on, price); err != nil {
				return nil, err
			}
		}
		// A ticker can be known without any price yet.
		m.Add(js.Ticker)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading market data: %w", err)
	}
	return m, nil
}

// EncodeMarket writes the market data to 'w' in the JSONL market format,
// one security per line in lexical ticker order.
func EncodeMarket(w io.Writer, m *Market) error {
	for _, ticker := range m.Tickers() {
		sec := m.Get(ticker)
		js := jsecurity{Ticker: ticker, History: make(map[string]float64)}
		for day, price := range sec.Prices().Values() {
			js.History[day.String()] = price
		}
		data, err := json.Marshal(js)
		if err != nil {
			return fmt.Errorf("cannot marshal security %q: %w", ticker, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write market format: %w", err)
		}
	}
	return nil
}
