package stockfolio

import (
	"errors"
	"reflect"
	"testing"
)

func TestMarket_Price_Lookback(t *testing.T) {
	m := NewMarket()
	if err := m.SetPrice("T", day("2022-11-08"), 1.0); err != nil {
		t.Fatal(err)
	}
	if err := m.SetPrice("T", day("2022-11-09"), 2.0); err != nil {
		t.Fatal(err)
	}
	if err := m.SetPrice("T", day("2022-11-10"), 3.0); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name      string
		on        string
		want      float64
		expectErr bool
	}{
		{"exact hit", "2022-11-09", 2.0, false},
		{"latest exact hit", "2022-11-10", 3.0, false},
		{"one day after last price", "2022-11-11", 3.0, false},
		{"99 days after last price", "2023-02-17", 3.0, false},
		{"100 days after last price", "2023-02-18", 0, true},
		{"before first price", "2022-11-07", 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.Price("T", day(tc.on))
			if (err != nil) != tc.expectErr {
				t.Fatalf("Price(T, %s) error = %v, want error: %v", tc.on, err, tc.expectErr)
			}
			if err != nil {
				var missing *PriceUnavailableError
				if !errors.As(err, &missing) {
					t.Fatalf("Price(T, %s) error = %T, want *PriceUnavailableError", tc.on, err)
				}
				return
			}
			if got != tc.want {
				t.Errorf("Price(T, %s) = %v, want %v", tc.on, got, tc.want)
			}
		})
	}
}

func TestMarket_Price_UnknownTicker(t *testing.T) {
	m := NewMarket()
	m.SetPrice("T", day("2022-11-08"), 1.0)

	_, err := m.Price("UNKNOWN", day("2022-11-08"))
	var missing *PriceUnavailableError
	if !errors.As(err, &missing) {
		t.Fatalf("Price on unknown ticker: got %v, want *PriceUnavailableError", err)
	}
	if missing.Ticker != "UNKNOWN" {
		t.Errorf("error ticker = %q, want %q", missing.Ticker, "UNKNOWN")
	}
}

func TestMarket_Quote_NoLookback(t *testing.T) {
	m := NewMarket()
	m.SetPrice("T", day("2022-11-08"), 44.0)

	if price, ok := m.Quote("T", day("2022-11-08")); !ok || price != 44.0 {
		t.Errorf("Quote on priced day = %v, %v, want 44.0, true", price, ok)
	}
	if _, ok := m.Quote("T", day("2022-11-09")); ok {
		t.Error("Quote on unpriced day succeeded, want a miss")
	}
}

func TestMarket_SetPrice_Validation(t *testing.T) {
	testCases := []struct {
		name   string
		ticker string
		on     string
		price  float64
	}{
		{"blank ticker", "  ", "2022-11-08", 1.0},
		{"negative price", "T", "2022-11-08", -1.0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMarket()
			err := m.SetPrice(tc.ticker, day(tc.on), tc.price)
			var invalid *ValidationError
			if !errors.As(err, &invalid) {
				t.Errorf("SetPrice(%q, %s, %v) error = %v, want *ValidationError", tc.ticker, tc.on, tc.price, err)
			}
		})
	}
}

func TestMarket_SetPrice_Overwrites(t *testing.T) {
	m := NewMarket()
	m.SetPrice("T", day("2022-11-08"), 1.0)
	m.SetPrice("T", day("2022-11-08"), 5.0)

	if price, _ := m.Quote("T", day("2022-11-08")); price != 5.0 {
		t.Errorf("Quote after overwrite = %v, want 5.0", price)
	}
}

func TestMarket_Tickers_Sorted(t *testing.T) {
	m := NewMarket()
	m.Add("MSFT")
	m.Add("AAPL")
	m.Add("GOOG")
	m.Add("AAPL") // Adding twice must not duplicate.

	want := []string{"AAPL", "GOOG", "MSFT"}
	if got := m.Tickers(); !reflect.DeepEqual(got, want) {
		t.Errorf("Tickers() = %v, want %v", got, want)
	}
}

func TestMarket_IsTradingDay(t *testing.T) {
	m := NewMarket()
	m.SetPrice("A", day("2022-11-08"), 1.0)
	m.SetPrice("B", day("2022-11-09"), 2.0)

	testCases := []struct {
		on   string
		want bool
	}{
		{"2022-11-08", true}, // only A traded
		{"2022-11-09", true}, // only B traded
		{"2022-11-10", false},
	}
	for _, tc := range testCases {
		if got := m.IsTradingDay(day(tc.on)); got != tc.want {
			t.Errorf("IsTradingDay(%s) = %v, want %v", tc.on, got, tc.want)
		}
	}
}
