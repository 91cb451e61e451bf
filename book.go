package stockfolio

import (
	"maps"
	"slices"

	"github.com/kvasir-fin/stockfolio/date"
)

// defaultCommission is the flat per-trade charge a new book starts with.
const defaultCommission = 10.0

// Book holds one user's portfolios by name, the market the valuations read
// from, and the commission configuration. It is the operation façade the
// command layer talks to.
//
// Static and ledger portfolios share one namespace: a name identifies
// exactly one portfolio of either kind.
type Book struct {
	statics    map[string]*StaticPortfolio
	ledgers    map[string]*LedgerPortfolio
	market     *Market
	commission Money
}

// NewBook creates an empty book reading prices from the given market.
func NewBook(m *Market) *Book {
	return &Book{
		statics:    make(map[string]*StaticPortfolio),
		ledgers:    make(map[string]*LedgerPortfolio),
		market:     m,
		commission: M(defaultCommission, DefaultCurrency),
	}
}

// Market returns the price oracle the book values against.
func (b *Book) Market() *Market { return b.market }

// Commission returns the flat per-trade charge used by cost basis.
func (b *Book) Commission() Money { return b.commission }

// SetCommission replaces the flat per-trade charge. It must not be
// negative.
func (b *Book) SetCommission(c Money) error {
	if c.IsNegative() {
		return invalidf("commission %s is negative", c)
	}
	b.commission = c
	return nil
}

func (b *Book) exists(name string) bool {
	_, static := b.statics[name]
	_, ledger := b.ledgers[name]
	return static || ledger
}

// NewStatic creates and registers a static portfolio.
func (b *Book) NewStatic(name string, holdings []Holding) (*StaticPortfolio, error) {
	if b.exists(name) {
		return nil, invalidf("portfolio %q already exists", name)
	}
	p, err := NewStaticPortfolio(name, holdings)
	if err != nil {
		return nil, err
	}
	b.statics[name] = p
	return p, nil
}

// NewLedger creates and registers an empty ledger portfolio.
func (b *Book) NewLedger(name string) (*LedgerPortfolio, error) {
	if b.exists(name) {
		return nil, invalidf("portfolio %q already exists", name)
	}
	l, err := NewLedgerPortfolio(name)
	if err != nil {
		return nil, err
	}
	b.ledgers[name] = l
	return l, nil
}

// Ledger returns the named ledger portfolio.
func (b *Book) Ledger(name string) (*LedgerPortfolio, error) {
	l, ok := b.ledgers[name]
	if !ok {
		return nil, &LookupError{Kind: "portfolio", Name: name}
	}
	return l, nil
}

// Static returns the named static portfolio.
func (b *Book) Static(name string) (*StaticPortfolio, error) {
	p, ok := b.statics[name]
	if !ok {
		return nil, &LookupError{Kind: "portfolio", Name: name}
	}
	return p, nil
}

// Portfolio returns the named portfolio of either kind.
func (b *Book) Portfolio(name string) (Portfolio, error) {
	if p, ok := b.statics[name]; ok {
		return p, nil
	}
	if l, ok := b.ledgers[name]; ok {
		return l, nil
	}
	return nil, &LookupError{Kind: "portfolio", Name: name}
}

// StaticNames returns the names of all static portfolios in lexical order.
func (b *Book) StaticNames() []string { return slices.Sorted(maps.Keys(b.statics)) }

// LedgerNames returns the names of all ledger portfolios in lexical order.
func (b *Book) LedgerNames() []string { return slices.Sorted(maps.Keys(b.ledgers)) }

// AddTrade appends a signed trade to the named ledger portfolio.
func (b *Book) AddTrade(portfolio, ticker string, quantity Quantity, on date.Date) error {
	l, err := b.Ledger(portfolio)
	if err != nil {
		return err
	}
	t, err := NewTrade(ticker, quantity, on)
	if err != nil {
		return err
	}
	return l.Append(t)
}

// Composition returns the named portfolio's net quantity per ticker as of a
// date.
func (b *Book) Composition(name string, on date.Date) (map[string]Quantity, error) {
	p, err := b.Portfolio(name)
	if err != nil {
		return nil, err
	}
	return p.Composition(on), nil
}

// Value returns the named portfolio's market value on a date.
func (b *Book) Value(name string, on date.Date) (Money, error) {
	p, err := b.Portfolio(name)
	if err != nil {
		return Money{}, err
	}
	return p.Value(b.market, on)
}

// CostBasis returns the capital committed to the named ledger portfolio by
// a date, using the book's commission.
func (b *Book) CostBasis(name string, on date.Date) (Money, error) {
	l, err := b.Ledger(name)
	if err != nil {
		return Money{}, err
	}
	return l.CostBasis(b.market, on, b.commission)
}

// Performance returns the named portfolio's bucketed value series over a
// range.
func (b *Book) Performance(name string, r date.Range) (Series, error) {
	p, err := b.Portfolio(name)
	if err != nil {
		return Series{}, err
	}
	return Performance(p, b.market, r)
}

// Invest applies a one-shot proportional multi-ticker trade to the named
// ledger portfolio.
func (b *Book) Invest(name string, amount float64, alloc Allocation, on date.Date) error {
	l, err := b.Ledger(name)
	if err != nil {
		return err
	}
	return Invest(l, b.market, amount, alloc, on)
}

// AddStrategy expands a recurring investment strategy on the named ledger
// portfolio.
func (b *Book) AddStrategy(name string, s Strategy) error {
	l, err := b.Ledger(name)
	if err != nil {
		return err
	}
	return s.Apply(l, b.market)
}
