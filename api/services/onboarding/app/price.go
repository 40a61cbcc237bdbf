package app

import (
	"strings"

	gw "github.com/apptiva/subsheet/api/services/onboarding/gateway"
)

// PriceResolver finds an existing price matching a target amount so repeated
// runs at the same amount and currency never pile up duplicate price objects
// on the billing platform.
type PriceResolver struct {
	gw gw.Billing
}

func NewPriceResolver(g gw.Billing) PriceResolver { return PriceResolver{gw: g} }

// Resolve scans every price attached to the product and returns the first
// whose amount equals amountMinorUnits exactly and whose currency matches
// case-insensitively. The boolean is false when no price matches; that is
// not an error, and no price is ever created here.
func (r PriceResolver) Resolve(amountMinorUnits int64, productID, currency string) (gw.Price, bool, error) {
	prices, err := r.gw.FetchPricesForProduct(productID)
	if err != nil {
		return gw.Price{}, false, err
	}
	for _, p := range prices {
		if p.UnitAmount == amountMinorUnits && strings.EqualFold(p.Currency, currency) {
			return p, true, nil
		}
	}
	return gw.Price{}, false, nil
}
