package domain

import "math"

type ID string

func ValidateID(id string) bool {
	return len(id) == 24
}

// Amount is a monetary value in cents.
type Amount int64

func NewAmountFromCents(cents int64) Amount {
	return Amount(cents)
}

func NewAmountFromValue(value int64) Amount {
	return Amount(value * 100)
}

// NewAmountFromFloat converts a currency-unit value as it arrives on the
// wire to cents, rounding half away from zero.
func NewAmountFromFloat(value float64) Amount {
	return Amount(math.Round(value * 100))
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Sub(b Amount) Amount {
	return a - b
}

func (a Amount) Multiply(b int) Amount {
	return a * Amount(b)
}

func (a Amount) ToValue() int64 {
	return int64(a) / 100
}

func (a Amount) ToFloat() float64 {
	return float64(a) / 100
}

// centsEpsilon tolerates one cent of drift; the wire carries currency-unit
// floats and clients round independently.
const centsEpsilon = 1

func (a Amount) ApproxEqual(b Amount) bool {
	diff := int64(a) - int64(b)
	if diff < 0 {
		diff = -diff
	}
	return diff <= centsEpsilon
}

type Event interface {
	GetName() string
	GetEntityName() string
}
