package helper

import (
	"math"

	"hotel_roomservice/constants"
	"hotel_roomservice/model"
)

// Pricing is computed at full float64 precision; Round2 is for display
// contexts only (emails, reports) so rounding error never compounds.

func Subtotal(entries []model.CartEntry) float64 {
	total := 0.0
	for _, entry := range entries {
		total += entry.Price * float64(entry.Quantity)
	}
	return total
}

func Tax(subtotal float64) float64 {
	return subtotal * constants.TaxRate
}

func ServiceCharge(subtotal float64) float64 {
	return subtotal * constants.ServiceChargeRate
}

func Total(subtotal float64) float64 {
	return subtotal + Tax(subtotal) + ServiceCharge(subtotal)
}

func Round2(val float64) float64 {
	return math.Round(val*100) / 100
}
