package booking

import (
	"errors"
	"strings"
)

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

// PaymentMethod is how the customer settles the booking. The wire values
// match what the mobile client sends.
type PaymentMethod string

const (
	PaymentCashOnCompletion PaymentMethod = "cod"
	PaymentOnline           PaymentMethod = "online"
	PaymentWallet           PaymentMethod = "wallet"
)

// DefaultPaymentMethod applies when the draft never touches the payment
// selector: pay the provider in cash once the job is done.
const DefaultPaymentMethod = PaymentCashOnCompletion

func NewPaymentMethod(value string) (PaymentMethod, error) {
	switch PaymentMethod(value) {
	case PaymentCashOnCompletion, PaymentOnline, PaymentWallet:
		return PaymentMethod(value), nil
	case "":
		return DefaultPaymentMethod, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

func (p PaymentMethod) String() string {
	return string(p)
}

// Address is the free-text service address. Construction trims surrounding
// whitespace; emptiness checks happen on the trimmed value so that a
// whitespace-only input counts as missing.
type Address struct {
	value string
}

func NewAddress(value string) Address {
	return Address{value: strings.TrimSpace(value)}
}

func (a Address) String() string {
	return a.value
}

func (a Address) IsEmpty() bool {
	return a.value == ""
}

type Status string

const (
	// StatusConfirmed is assigned server-side on create. The booking workflow
	// never mutates a record afterwards; later lifecycle states belong to the
	// provider-side system.
	StatusConfirmed Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}
