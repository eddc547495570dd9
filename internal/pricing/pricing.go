// Package pricing derives the permit price and validity window from route
// and vehicle inputs. Both derivations are pure and total: malformed
// inputs contribute safe defaults instead of errors.
package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/szekelyhub/transit-permit-service/internal/domain"
)

// Calculate computes the permit price in whole RON.
//
// Base 50; zone A adds 20, zone B adds 10; weight above 10 tonnes adds
// 5 per tonne over the threshold; the period multiplier is applied to the
// subtotal and the result is rounded to the nearest whole unit. An
// unparseable weight contributes no surcharge and an unset period counts
// as daily, so the function never fails.
func Calculate(zone domain.Zone, period domain.Period, maxWeightTonnes string) int64 {
	price := float64(domain.BasePrice)

	switch zone {
	case domain.ZoneA:
		price += float64(domain.ZoneASurcharge)
	case domain.ZoneB:
		price += float64(domain.ZoneBSurcharge)
	}

	if w, err := strconv.ParseFloat(strings.TrimSpace(maxWeightTonnes), 64); err == nil && w > domain.WeightThresholdTonnes {
		price += (w - domain.WeightThresholdTonnes) * domain.WeightSurchargePerTonne
	}

	switch period {
	case domain.PeriodMonthly:
		price *= domain.MultiplierMonthly
	case domain.PeriodSemiAnnual:
		price *= domain.MultiplierSemiAnnual
	case domain.PeriodAnnual:
		price *= domain.MultiplierAnnual
	}

	return int64(math.Round(price))
}

// Recompute overwrites the derived price on the application from its
// current vehicle and route sections.
func Recompute(app *domain.Application) {
	app.Price = Calculate(app.Route.Zone, app.Route.Period, app.Vehicle.MaxWeightTonnes)
}
