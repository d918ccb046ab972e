package catalog

import "math"

// Default pricing parameters applied when a request leaves them unset.
const (
	DefaultMarginPercent = 30.0
	DefaultVATPercent    = 19.0

	// MaxMarginPercent bounds the accepted margin; anything above is a data
	// entry error, not a price.
	MaxMarginPercent = 1000.0
)

// Pricing is the computed price breakdown for a product.
type Pricing struct {
	NetPrice  float64
	Margin    float64
	VAT       float64
	SalePrice float64
}

// ComputePricing derives the sale price from the purchase price and margin.
// The margin is applied to the net price and VAT is charged on top of the
// margin-inclusive amount. All components are rounded to cents.
func ComputePricing(purchasePrice, marginPercent, vatPercent float64) Pricing {
	net := roundCents(purchasePrice)
	margin := roundCents(net * marginPercent / 100)
	vat := roundCents((net + margin) * vatPercent / 100)

	return Pricing{
		NetPrice:  net,
		Margin:    margin,
		VAT:       vat,
		SalePrice: roundCents(net + margin + vat),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
