package renderer

import (
	"strings"
	"testing"

	"github.com/kvasir-fin/stockfolio"
	"github.com/kvasir-fin/stockfolio/date"
)

func day(s string) date.Date { return date.MustParse(s) }

func testMarket(t *testing.T) *stockfolio.Market {
	t.Helper()
	m := stockfolio.NewMarket()
	if err := m.SetPrice("AAPL", day("2022-11-08"), 3.0); err != nil {
		t.Fatal(err)
	}
	if err := m.SetPrice("GOOG", day("2022-11-08"), 4.0); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestHoldingMarkdown(t *testing.T) {
	m := testMarket(t)
	p, err := stockfolio.NewStaticPortfolio("savings", []stockfolio.Holding{
		{Ticker: "AAPL", Quantity: stockfolio.Q(10)},
		{Ticker: "GOOG", Quantity: stockfolio.Q(5)},
	})
	if err != nil {
		t.Fatal(err)
	}

	got := HoldingMarkdown(p, m, day("2022-11-08"))
	for _, want := range []string{
		"# Holding of savings on 2022-11-08",
		"AAPL",
		"GOOG",
		"$30.00",
		"$20.00",
		"$50.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HoldingMarkdown misses %q:\n%s", want, got)
		}
	}
}

func TestHoldingMarkdown_UnpriceableTicker(t *testing.T) {
	m := testMarket(t)
	p, err := stockfolio.NewStaticPortfolio("savings", []stockfolio.Holding{
		{Ticker: "AAPL", Quantity: stockfolio.Q(10)},
		{Ticker: "MYST", Quantity: stockfolio.Q(1)},
	})
	if err != nil {
		t.Fatal(err)
	}

	got := HoldingMarkdown(p, m, day("2022-11-08"))
	if !strings.Contains(got, "n/a") {
		t.Errorf("unpriceable ticker not marked n/a:\n%s", got)
	}
	// The total only sums priced rows.
	if !strings.Contains(got, "$30.00") {
		t.Errorf("total misses the priced rows:\n%s", got)
	}
}

func TestPerformanceMarkdown(t *testing.T) {
	s := stockfolio.Series{
		Granularity: date.Daily,
		Points: []stockfolio.Point{
			{Date: day("2022-11-08"), Value: stockfolio.USD(34)},
			{Date: day("2022-11-09"), Value: stockfolio.USD(24)},
			{Date: day("2022-11-10"), Value: stockfolio.USD(105)},
		},
	}
	got := PerformanceMarkdown("retirement", s)
	for _, want := range []string{
		"# Performance of retirement (daily)",
		"2022-11-09",
		"$105.00",
		"█",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("PerformanceMarkdown misses %q:\n%s", want, got)
		}
	}
}

func TestBar(t *testing.T) {
	testCases := []struct {
		name  string
		value float64
		max   float64
		want  int
	}{
		{"max fills the chart", 10, 10, chartWidth},
		{"half fills half", 5, 10, chartWidth / 2},
		{"zero is empty", 0, 10, 0},
		{"zero max is empty", 5, 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := strings.Count(bar(tc.value, tc.max), "█")
			if got != tc.want {
				t.Errorf("bar(%v, %v) has %d blocks, want %d", tc.value, tc.max, got, tc.want)
			}
		})
	}
}

func TestTradesMarkdown(t *testing.T) {
	l, err := stockfolio.NewLedgerPortfolio("retirement")
	if err != nil {
		t.Fatal(err)
	}
	buy, _ := stockfolio.NewTrade("AAPL", stockfolio.Q(10), day("2022-11-08"))
	sell, _ := stockfolio.NewTrade("AAPL", stockfolio.Q(-4), day("2022-11-09"))
	if err := l.Append(buy); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(sell); err != nil {
		t.Fatal(err)
	}

	got := TradesMarkdown(l)
	for _, want := range []string{"# Trades of retirement", "BUY", "SELL", "2022-11-09"} {
		if !strings.Contains(got, want) {
			t.Errorf("TradesMarkdown misses %q:\n%s", want, got)
		}
	}
}
