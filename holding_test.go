package stockfolio

import (
	"errors"
	"testing"
)

func TestNewStaticPortfolio_Validation(t *testing.T) {
	testCases := []struct {
		name      string
		pname     string
		holdings  []Holding
		expectErr bool
	}{
		{"valid", "savings", []Holding{{"AAPL", Q(10)}, {"GOOG", Q(5)}}, false},
		{"blank name", "  ", []Holding{{"AAPL", Q(10)}}, true},
		{"no holdings", "savings", nil, true},
		{"blank ticker", "savings", []Holding{{" ", Q(10)}}, true},
		{"zero quantity", "savings", []Holding{{"AAPL", Q(0)}}, true},
		{"duplicate ticker", "savings", []Holding{{"AAPL", Q(10)}, {"AAPL", Q(5)}}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewStaticPortfolio(tc.pname, tc.holdings)
			if (err != nil) != tc.expectErr {
				t.Errorf("NewStaticPortfolio(%q, %v) error = %v, want error: %v", tc.pname, tc.holdings, err, tc.expectErr)
			}
			if err != nil {
				var invalid *ValidationError
				if !errors.As(err, &invalid) {
					t.Errorf("error = %T, want *ValidationError", err)
				}
			}
		})
	}
}

func TestStaticPortfolio_CompositionIgnoresDate(t *testing.T) {
	p, err := NewStaticPortfolio("savings", []Holding{{"AAPL", Q(10)}, {"GOOG", Q(5)}})
	if err != nil {
		t.Fatal(err)
	}
	early := p.Composition(day("1990-01-01"))
	late := p.Composition(day("2050-01-01"))
	for _, comp := range []map[string]Quantity{early, late} {
		if len(comp) != 2 || !comp["AAPL"].Equal(Q(10)) || !comp["GOOG"].Equal(Q(5)) {
			t.Errorf("Composition = %v, want {AAPL:10 GOOG:5}", comp)
		}
	}
}

func TestStaticPortfolio_Value(t *testing.T) {
	m := NewMarket()
	m.SetPrice("AAPL", day("2022-11-08"), 3.0)
	m.SetPrice("GOOG", day("2022-11-08"), 4.0)

	p, err := NewStaticPortfolio("savings", []Holding{{"AAPL", Q(10)}, {"GOOG", Q(5)}})
	if err != nil {
		t.Fatal(err)
	}
	value, err := p.Value(m, day("2022-11-08"))
	if err != nil {
		t.Fatal(err)
	}
	if !value.Equal(USD(50)) {
		t.Errorf("Value = %s, want %s", value, USD(50))
	}
}

func TestStaticPortfolio_HoldingsIsACopy(t *testing.T) {
	p, err := NewStaticPortfolio("savings", []Holding{{"AAPL", Q(10)}})
	if err != nil {
		t.Fatal(err)
	}
	got := p.Holdings()
	got[0].Quantity = Q(999)
	if !p.Holdings()[0].Quantity.Equal(Q(10)) {
		t.Error("mutating the returned holdings changed the portfolio")
	}
}
