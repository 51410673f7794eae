package investwise

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a single currency.
type Money struct {
	value decimal.Decimal // major unit value
	cur   string
}

// M builds a Money from any numeric value and a currency code.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

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
		panic("unsupported numeric type")
	}
}

// currency returns the full currency definition, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the value with its currency symbol and grouping,
// e.g. "$1,050.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Fixed returns the bare value rounded to two decimals, for fixed-width
// tabular artifacts.
func (m Money) Fixed() string { return m.value.StringFixed(2) }

func (m Money) Amount() decimal.Decimal { return m.value }
func (m Money) Currency() string        { return m.cur }
func (m Money) IsZero() bool            { return m.value.IsZero() }
func (m Money) IsNegative() bool        { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool      { return m.value.Equal(n.value) && m.cur == n.cur }

// MulInt scales the value by an integer quantity.
func (m Money) MulInt(n int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(n))), cur: m.cur}
}

// MulDecimal scales the value by an arbitrary decimal factor.
func (m Money) MulDecimal(d decimal.Decimal) Money {
	return Money{value: m.value.Mul(d), cur: m.cur}
}

// Add sums two amounts. The empty currency is weak: it takes the other
// operand's currency. Mismatched non-empty currencies panic, amounts of
// different currencies must never meet in this domain.
func (m Money) Add(n Money) Money {
	return Money{value: m.value.Add(n.value), cur: cur(m, n)}
}

func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + " != " + b.cur)
	}
	return a.cur
}
