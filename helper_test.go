package stockfolio

import "github.com/kvasir-fin/stockfolio/date"

// day is a test shorthand for date.MustParse.
func day(s string) date.Date { return date.MustParse(s) }

// threeDayMarket prices both tickers of the end-to-end scenario at
// 1.0/2.0/3.0 on 2022-11-08..10.
func threeDayMarket() *Market {
	m := NewMarket()
	for i, price := range []float64{1.0, 2.0, 3.0} {
		on := day("2022-11-08").Add(i)
		m.SetPrice("T1", on, price)
		m.SetPrice("T2", on, price)
	}
	return m
}

// scenarioLedger builds the end-to-end scenario ledger: two buys, a full
// sell of T2, then two more buys.
func scenarioLedger() *LedgerPortfolio {
	l, _ := NewLedgerPortfolio("retirement")
	for _, t := range []struct {
		ticker string
		qty    float64
		on     string
	}{
		{"T1", 12, "2022-11-08"},
		{"T2", 22, "2022-11-08"},
		{"T2", -22, "2022-11-09"},
		{"T1", 13, "2022-11-10"},
		{"T2", 10, "2022-11-10"},
	} {
		trade, err := NewTrade(t.ticker, Q(t.qty), day(t.on))
		if err != nil {
			panic(err)
		}
		if err := l.Append(trade); err != nil {
			panic(err)
		}
	}
	return l
}
