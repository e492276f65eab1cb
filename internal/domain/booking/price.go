package booking

import "giggo-server/internal/domain/listing"

// PlatformFeeRupees is the flat convenience fee added to every displayed
// total. It is a quote-time figure only: the persisted booking price stays
// the bare listing price.
const PlatformFeeRupees = 49

// Quote is what the customer sees on the confirm bar: base price plus the
// platform fee.
type Quote struct {
	Base  listing.Money
	Fee   listing.Money
	Total listing.Money
}

type PriceCalculator interface {
	Quote(base listing.Money) Quote
}

type PlatformFeeCalculator struct {
	feeRupees int64
}

func NewPlatformFeeCalculator() *PlatformFeeCalculator {
	return &PlatformFeeCalculator{feeRupees: PlatformFeeRupees}
}

func (c *PlatformFeeCalculator) Quote(base listing.Money) Quote {
	fee := listing.NewMoney(c.feeRupees)
	return Quote{
		Base:  base,
		Fee:   fee,
		Total: base.Add(fee),
	}
}
