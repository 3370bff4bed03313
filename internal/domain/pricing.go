package domain

import "math"

// JetSkiPrice returns the price of renting the given number of jet skis for
// the given duration. The canonical short durations (15 min, 30 min) have
// fixed prices; one hour and above bill the hourly base rate with fractional
// overage rounded up to the next full hour.
func JetSkiPrice(units int, hours float64) float64 {
	if units <= 0 || hours <= 0 {
		return 0
	}

	var perUnit float64
	switch {
	case hours <= 0.25:
		perUnit = JetSkiPriceQuarterHour
	case hours <= 0.5:
		perUnit = JetSkiPriceHalfHour
	default:
		perUnit = JetSkiHourlyRate * math.Ceil(hours)
	}

	return float64(units) * perUnit
}

// BoatPrice returns the flat trip price for a boat rental. Durations missing
// from the flat-rate table price at the average hourly rate; this is the
// documented fallback branch, not a silent default.
func BoatPrice(hours float64) float64 {
	if hours <= 0 {
		return 0
	}

	if hours == math.Trunc(hours) {
		if rate, ok := BoatFlatRates[int(hours)]; ok {
			return rate
		}
	}

	return hours * BoatAverageHourlyRate
}

// PackagePrice returns the combined boat+jet-ski package price for the given
// configuration, interpolated within the package band. The second return
// value is false when no package is offered for the combination (or the
// duration exceeds the 6-hour full-day trip the bands describe); callers
// then fall back to independent boat + jet-ski pricing.
func PackagePrice(pickup Pickup, destination Destination, jetSkis int, hours float64) (float64, bool) {
	band, ok := PackageBands[PackageKey{Pickup: pickup, Destination: destination, JetSkis: jetSkis}]
	if !ok {
		return 0, false
	}

	minDuration, ok := boatMinDuration(pickup, destination)
	if !ok {
		return 0, false
	}

	// Fixed 6-hour crossings always price at the band max
	if minDuration >= PackageMaxDurationHours {
		return band.Max, true
	}

	if hours < float64(minDuration) || hours > PackageMaxDurationHours {
		return 0, false
	}

	span := float64(PackageMaxDurationHours - minDuration)
	fraction := (hours - float64(minDuration)) / span
	return math.Round(band.Min + (band.Max-band.Min)*fraction), true
}

// WaterSportPrice returns the flat per-participant price of a water sport.
// Participant counts are clamped to the legal range. The second return value
// is false for a sport missing from the rate table.
func WaterSportPrice(sport WaterSport, participants int) (float64, bool) {
	rate, ok := WaterSportRates[sport]
	if !ok {
		return 0, false
	}
	return float64(clampParticipants(participants)) * rate.Cost, true
}

func clampParticipants(n int) int {
	if n < MinSportParticipants {
		return MinSportParticipants
	}
	if n > MaxSportParticipants {
		return MaxSportParticipants
	}
	return n
}

// Quote computes the full cost breakdown of a configuration. It is pure and
// total: invalid configurations price through the documented fallback rules,
// validation happens separately before checkout.
//
// Discount order is load-bearing and matches the business rule exactly:
// tax on the subtotal, then the resident discount, then the code discount,
// each applied to the already-discounted running total (compounding, never
// additive).
func Quote(cfg RentalConfig) CostBreakdown {
	var rental float64

	switch cfg.RentalType {
	case RentalJetSki:
		rental = JetSkiPrice(cfg.JetSkis, cfg.DurationHours)
	case RentalBoat:
		rental = BoatPrice(cfg.DurationHours)
	case RentalBoatAndJetSki:
		if pkg, ok := PackagePrice(cfg.Pickup, cfg.Destination, cfg.JetSkis, cfg.DurationHours); ok {
			rental = pkg
		} else {
			rental = BoatPrice(cfg.DurationHours) + JetSkiPrice(cfg.JetSkis, cfg.DurationHours)
		}
	}

	var sports float64
	for sport, participants := range cfg.WaterSports {
		if price, ok := WaterSportPrice(sport, participants); ok {
			sports += price
		}
	}

	subtotal := rental + sports
	tax := subtotal * TaxRate

	total := subtotal + tax
	if cfg.ResidentDiscount {
		total -= total * ResidentDiscountPct / 100
	}
	if cfg.DiscountPct != nil {
		total -= total * (*cfg.DiscountPct) / 100
	}

	return CostBreakdown{
		Subtotal:       subtotal,
		Tax:            tax,
		DiscountAmount: subtotal + tax - total,
		Total:          total,
	}
}

// PackageApplies reports whether the configuration prices through a package
// band rather than independent sums
func PackageApplies(cfg RentalConfig) bool {
	if cfg.RentalType != RentalBoatAndJetSki {
		return false
	}
	_, ok := PackagePrice(cfg.Pickup, cfg.Destination, cfg.JetSkis, cfg.DurationHours)
	return ok
}

// HasComplimentaryAmenities reports whether the configuration includes the
// full-day amenity package (boat trips of 6 hours and longer)
func HasComplimentaryAmenities(cfg RentalConfig) bool {
	return cfg.RentalType.HasBoat() && cfg.DurationHours >= ComplimentaryAmenitiesMinHours
}

// AmountInCents converts a dollar total to minor currency units for the
// payment collaborator
func AmountInCents(total float64) int64 {
	return int64(math.Round(total * 100))
}
