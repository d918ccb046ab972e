package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autofiltro/catalog/modules/catalog"
)

func TestComputePricing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		purchase float64
		margin   float64
		vat      float64
		want     catalog.Pricing
	}{
		{
			name:     "default percentages",
			purchase: 100,
			margin:   catalog.DefaultMarginPercent,
			vat:      catalog.DefaultVATPercent,
			want:     catalog.Pricing{NetPrice: 100, Margin: 30, VAT: 24.70, SalePrice: 154.70},
		},
		{
			name:     "rounds every intermediate to cents",
			purchase: 33.33,
			margin:   30,
			vat:      19,
			want:     catalog.Pricing{NetPrice: 33.33, Margin: 10, VAT: 8.23, SalePrice: 51.56},
		},
		{
			name:     "zero margin",
			purchase: 50,
			margin:   0,
			vat:      19,
			want:     catalog.Pricing{NetPrice: 50, Margin: 0, VAT: 9.50, SalePrice: 59.50},
		},
		{
			name:     "zero vat",
			purchase: 80,
			margin:   25,
			vat:      0,
			want:     catalog.Pricing{NetPrice: 80, Margin: 20, VAT: 0, SalePrice: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := catalog.ComputePricing(tt.purchase, tt.margin, tt.vat)
			assert.InDelta(t, tt.want.NetPrice, got.NetPrice, 0.001)
			assert.InDelta(t, tt.want.Margin, got.Margin, 0.001)
			assert.InDelta(t, tt.want.VAT, got.VAT, 0.001)
			assert.InDelta(t, tt.want.SalePrice, got.SalePrice, 0.001)
		})
	}
}
