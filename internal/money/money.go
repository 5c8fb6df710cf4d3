// Package money fixes the arithmetic and serialization rules for every
// monetary value and percentage in the system. All derivations (line totals,
// discounts, aggregates, stock valuations) go through this package so that the
// same rounding rule — round half up at two decimals — applies everywhere and
// invoice identities hold exactly rather than approximately.
package money

import (
	"database/sql/driver"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept on every monetary value.
const Scale = 2

// Money is a fixed-point monetary amount. It embeds decimal.Decimal so GORM's
// Valuer/Scanner and the decimal arithmetic are available directly, but JSON
// output is always a fixed two-decimal string (the frontend feeds responses
// into Number(x).toFixed(2) and expects "380.00", not 380 or "380").
type Money struct {
	decimal.Decimal
}

func New(d decimal.Decimal) Money { return Money{d.Round(Scale)} }

func FromInt(n int64) Money { return Money{decimal.NewFromInt(n)} }

// RequireFromString parses a decimal literal and panics on malformed input.
// Intended for constants and test fixtures only.
func RequireFromString(s string) Money {
	return Money{decimal.RequireFromString(s)}
}

func Zero() Money { return Money{decimal.Zero} }

func (m Money) Add(o Money) Money { return Money{m.Decimal.Add(o.Decimal)} }

func (m Money) Sub(o Money) Money { return Money{m.Decimal.Sub(o.Decimal)} }

// MulQty multiplies a unit price by a whole quantity, rounded to Scale.
func (m Money) MulQty(qty int) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(int64(qty))).Round(Scale)}
}

// ApplyPercent returns m × p / 100, rounded half up at Scale. The division by
// 100 happens after the multiplication to avoid losing precision.
func (m Money) ApplyPercent(p Percent) Money {
	return Money{m.Decimal.Mul(p.Decimal).Div(decimal.NewFromInt(100)).Round(Scale)}
}

func (m Money) IsNegative() bool { return m.Decimal.IsNegative() }

func (m Money) Equal(o Money) bool { return m.Decimal.Equal(o.Decimal) }

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.Decimal.StringFixed(Scale) + `"`), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	m.Decimal = d
	return nil
}

// UnmarshalParam parses a form or query value. Gin's form binding uses this
// for multipart uploads, where prices arrive as text fields.
func (m *Money) UnmarshalParam(param string) error {
	d, err := decimal.NewFromString(param)
	if err != nil {
		return err
	}
	m.Decimal = d
	return nil
}

func (m Money) Value() (driver.Value, error) { return m.Decimal.Value() }

func (m *Money) Scan(v interface{}) error { return m.Decimal.Scan(v) }

// Percent is a percentage in [0,100] with the same fixed-point representation
// as Money. Range validation is the caller's job via InRange — a Percent loaded
// from the database is trusted.
type Percent struct {
	decimal.Decimal
}

func PercentFromInt(n int64) Percent { return Percent{decimal.NewFromInt(n)} }

func RequirePercentFromString(s string) Percent {
	return Percent{decimal.RequireFromString(s)}
}

var hundred = decimal.NewFromInt(100)

func (p Percent) InRange() bool {
	return !p.Decimal.IsNegative() && p.Decimal.LessThanOrEqual(hundred)
}

func (p Percent) Equal(o Percent) bool { return p.Decimal.Equal(o.Decimal) }

func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.Decimal.StringFixed(Scale) + `"`), nil
}

func (p *Percent) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	p.Decimal = d
	return nil
}

func (p *Percent) UnmarshalParam(param string) error {
	d, err := decimal.NewFromString(param)
	if err != nil {
		return err
	}
	p.Decimal = d
	return nil
}

func (p Percent) Value() (driver.Value, error) { return p.Decimal.Value() }

func (p *Percent) Scan(v interface{}) error { return p.Decimal.Scan(v) }
