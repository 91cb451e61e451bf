package stockfolio

import (
	"strings"
	"testing"
)

func TestEncodeBook_CanonicalOrder(t *testing.T) {
	b := NewBook(threeDayMarket())
	b.NewStatic("savings", []Holding{{"AAPL", Q(10)}})
	b.NewLedger("retirement")
	b.AddTrade("retirement", "T1", Q(12), day("2022-11-08"))

	var buf strings.Builder
	if err := EncodeBook(&buf, b); err != nil {
		t.Fatal(err)
	}
	want := `{"command":"commission","amount":10,"currency":"USD"}
{"command":"create","portfolio":"savings","holdings":[{"ticker":"AAPL","quantity":10}]}
{"command":"create","portfolio":"retirement"}
{"command":"trade","date":"2022-11-08","portfolio":"retirement","ticker":"T1","quantity":12}
`
	if buf.String() != want {
		t.Errorf("EncodeBook:\ngot:\n%swant:\n%s", buf.String(), want)
	}
}

func TestBook_RoundTrip(t *testing.T) {
	m := threeDayMarket()
	b := NewBook(m)
	b.SetCommission(USD(7.5))
	b.NewStatic("savings", []Holding{{"AAPL", Q(10)}, {"GOOG", Q(2.5)}})
	b.NewLedger("retirement")
	for _, tr := range []struct {
		ticker string
		qty    float64
		on     string
	}{
		{"T1", 12, "2022-11-08"},
		{"T2", 22, "2022-11-08"},
		{"T2", -22, "2022-11-09"},
	} {
		if err := b.AddTrade("retirement", tr.ticker, Q(tr.qty), day(tr.on)); err != nil {
			t.Fatal(err)
		}
	}

	var buf strings.Builder
	if err := EncodeBook(&buf, b); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeBook(strings.NewReader(buf.String()), m)
	if err != nil {
		t.Fatal(err)
	}

	if !got.Commission().Equal(USD(7.5)) {
		t.Errorf("commission = %s, want %s", got.Commission(), USD(7.5))
	}
	savings, err := got.Static("savings")
	if err != nil {
		t.Fatal(err)
	}
	if holdings := savings.Holdings(); len(holdings) != 2 || !holdings[1].Quantity.Equal(Q(2.5)) {
		t.Errorf("holdings = %v", holdings)
	}
	retirement, err := got.Ledger("retirement")
	if err != nil {
		t.Fatal(err)
	}
	if retirement.Len() != 3 {
		t.Fatalf("ledger has %d trades, want 3", retirement.Len())
	}
	if pos := retirement.Position("T2", day("2022-11-09")); !pos.IsZero() {
		t.Errorf("T2 position = %s, want 0", pos)
	}
}

func TestDecodeBook_RejectsTamperedStream(t *testing.T) {
	// The trade sequence oversells T1; the replay must refuse it.
	stream := `{"command":"create","portfolio":"retirement"}
{"command":"trade","date":"2022-11-08","portfolio":"retirement","ticker":"T1","quantity":5}
{"command":"trade","date":"2022-11-09","portfolio":"retirement","ticker":"T1","quantity":-6}
`
	if _, err := DecodeBook(strings.NewReader(stream), NewMarket()); err == nil {
		t.Error("oversold stream decoded without error")
	}
}

func TestDecodeBook_UnknownCommand(t *testing.T) {
	stream := `{"command":"frobnicate"}` + "\n"
	if _, err := DecodeBook(strings.NewReader(stream), NewMarket()); err == nil {
		t.Error("unknown command decoded without error")
	}
}

func TestDecodeBook_SkipsBlankLines(t *testing.T) {
	stream := "\n" + `{"command":"create","portfolio":"retirement"}` + "\n\n"
	b, err := DecodeBook(strings.NewReader(stream), NewMarket())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Ledger("retirement"); err != nil {
		t.Errorf("Ledger(retirement): %v", err)
	}
}

func TestDecodeBook_CommissionWithoutCurrency(t *testing.T) {
	stream := `{"command":"commission","amount":3}` + "\n"
	b, err := DecodeBook(strings.NewReader(stream), NewMarket())
	if err != nil {
		t.Fatal(err)
	}
	if !b.Commission().Equal(USD(3)) {
		t.Errorf("commission = %s, want %s", b.Commission(), USD(3))
	}
}

func TestMarket_RoundTrip(t *testing.T) {
	m := NewMarket()
	m.SetPrice("T1", day("2022-11-08"), 1.0)
	m.SetPrice("T1", day("2022-11-09"), 2.5)
	m.SetPrice("T2", day("2022-11-08"), 3.0)
	m.Add("EMPTY")

	var buf strings.Builder
	if err := EncodeMarket(&buf, m); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeMarket(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatal(err)
	}

	if tickers := got.Tickers(); len(tickers) != 3 {
		t.Fatalf("Tickers = %v, want 3 entries", tickers)
	}
	if price, ok := got.Quote("T1", day("2022-11-09")); !ok || price != 2.5 {
		t.Errorf("Quote(T1, 2022-11-09) = %v, %v, want 2.5", price, ok)
	}
	if price, ok := got.Quote("T2", day("2022-11-08")); !ok || price != 3.0 {
		t.Errorf("Quote(T2, 2022-11-08) = %v, %v, want 3.0", price, ok)
	}
	if !got.Has("EMPTY") {
		t.Error("priceless ticker lost in the round trip")
	}
}

func TestDecodeMarket_RejectsBlankTicker(t *testing.T) {
	stream := `{"ticker":"  ","history":{"2022-11-08":1}}` + "\n"
	if _, err := DecodeMarket(strings.NewReader(stream)); err == nil {
		t.Error("blank ticker decoded without error")
	}
}
