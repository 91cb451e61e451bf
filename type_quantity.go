package stockfolio

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is a number of shares or units. Trades carry signed quantities:
// positive buys, negative sells.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Equal(p Quantity) bool    { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool { return q.value.LessThan(p.value) }
func (q Quantity) Add(p Quantity) Quantity  { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity  { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Neg() Quantity            { return Quantity{value: q.value.Neg()} }
func (q Quantity) Abs() Quantity            { return Quantity{value: q.value.Abs()} }
func (q Quantity) IsNegative() bool         { return q.value.IsNegative() }
func (q Quantity) IsPositive() bool         { return q.value.IsPositive() }
func (q Quantity) IsZero() bool             { return q.value.IsZero() }
func (q Quantity) String() string           { return q.value.String() }

// ParseQuantity parses a decimal quantity string.
func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, invalidf("invalid quantity %q: %v", s, err)
	}
	return Quantity{value: d}, nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	return q.value.UnmarshalJSON(b)
}
