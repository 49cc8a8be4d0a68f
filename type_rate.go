package brokerage

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rate is a fractional rate: R(0.1) is 10%. Kept as an exact decimal so
// that repeated 0.01 steps stay exact.
type Rate struct {
	value decimal.Decimal
}

func R[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

func (r Rate) Equal(s Rate) bool       { return r.value.Equal(s.value) }
func (r Rate) GreaterThan(s Rate) bool { return r.value.GreaterThan(s.value) }
func (r Rate) IsNegative() bool        { return r.value.IsNegative() }
func (r Rate) Add(s Rate) Rate         { return Rate{value: r.value.Add(s.value)} }
func (r Rate) Sub(s Rate) Rate         { return Rate{value: r.value.Sub(s.value)} }

// String renders the rate as a percentage, e.g. "10.00%".
func (r Rate) String() string {
	return fmt.Sprintf("%s%%", r.value.Shift(2).StringFixed(2))
}
