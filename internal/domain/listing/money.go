package listing

import "fmt"

// Money is a whole-rupee display amount. The marketplace quotes prices in
// whole rupees with no paise component, so there is no minor unit here.
type Money struct {
	rupees int64
}

func NewMoney(rupees int64) Money {
	return Money{rupees: rupees}
}

func (m Money) Rupees() int64 {
	return m.rupees
}

func (m Money) Add(other Money) Money {
	return Money{rupees: m.rupees + other.rupees}
}

func (m Money) String() string {
	return fmt.Sprintf("₹%d", m.rupees)
}
