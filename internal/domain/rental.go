package domain

import (
	"errors"
	"fmt"
)

// RentalType determines which pricing and availability rules apply
type RentalType string

const (
	RentalJetSki        RentalType = "jet_ski"
	RentalBoat          RentalType = "boat"
	RentalBoatAndJetSki RentalType = "boat_jet_ski"
)

// ErrUnknownRentalType is returned when a rental type string cannot be parsed
var ErrUnknownRentalType = errors.New("unknown rental type")

// ParseRentalType parses a rental type from its wire representation
func ParseRentalType(s string) (RentalType, error) {
	switch RentalType(s) {
	case RentalJetSki, RentalBoat, RentalBoatAndJetSki:
		return RentalType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRentalType, s)
	}
}

// HasJetSkis returns true if the rental includes jet skis
func (t RentalType) HasJetSkis() bool {
	return t == RentalJetSki || t == RentalBoatAndJetSki
}

// HasBoat returns true if the rental includes the boat
func (t RentalType) HasBoat() bool {
	return t == RentalBoat || t == RentalBoatAndJetSki
}

// NeedsDestination returns true if the rental requires a destination
// (boat trips are point-to-point, jet ski rentals are not)
func (t RentalType) NeedsDestination() bool {
	return t.HasBoat()
}

// Pickup is one of the fixed set of pickup locations
type Pickup string

const (
	PickupSanJuan  Pickup = "San Juan"
	PickupLuquillo Pickup = "Luquillo"
	PickupFajardo  Pickup = "Fajardo"
	PickupCeiba    Pickup = "Ceiba"
	PickupNaguabo  Pickup = "Naguabo"
)

// Pickups lists every pickup location in display order
var Pickups = []Pickup{PickupSanJuan, PickupLuquillo, PickupFajardo, PickupCeiba, PickupNaguabo}

// ErrUnknownPickup is returned when a pickup string is not in the fixed set
var ErrUnknownPickup = errors.New("unknown pickup location")

// ParsePickup parses a pickup location, failing loudly on an unknown name
func ParsePickup(s string) (Pickup, error) {
	for _, p := range Pickups {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPickup, s)
}

// Destination is one of the fixed set of boat destinations
type Destination string

const (
	DestinationIcacos   Destination = "Icacos"
	DestinationPalomino Destination = "Palomino"
	DestinationPinero   Destination = "Piñero"
	DestinationCulebra  Destination = "Culebra"
)

// Destinations lists every boat destination in display order
var Destinations = []Destination{DestinationIcacos, DestinationPalomino, DestinationPinero, DestinationCulebra}

// ErrUnknownDestination is returned when a destination string is not in the fixed set
var ErrUnknownDestination = errors.New("unknown destination")

// ParseDestination parses a destination, failing loudly on an unknown name
func ParseDestination(s string) (Destination, error) {
	for _, d := range Destinations {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDestination, s)
}

// WaterSport is a bookable water-sport add-on
type WaterSport string

const (
	SportFishing        WaterSport = "Fishing"
	SportSnorkelling    WaterSport = "Snorkelling"
	SportPaddleboarding WaterSport = "Paddleboarding"
	SportKayaking       WaterSport = "Kayaking"
	SportWakeboarding   WaterSport = "Wakeboarding"
)

// ErrUnknownWaterSport is returned when a sport string is not in the fixed set
var ErrUnknownWaterSport = errors.New("unknown water sport")

// ParseWaterSport parses a water sport, failing loudly on an unknown name
func ParseWaterSport(s string) (WaterSport, error) {
	if _, ok := WaterSportRates[WaterSport(s)]; ok {
		return WaterSport(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWaterSport, s)
}

// AllowedWaterSports returns the sports bookable with the given rental type:
// jet ski trips carry only small gear, boat trips offer the full set
func AllowedWaterSports(t RentalType) []WaterSport {
	if t == RentalJetSki {
		return JetSkiWaterSports
	}
	return BoatWaterSports
}

// WaterSportAllowed returns true if the sport can be added to the rental type
func WaterSportAllowed(t RentalType, sport WaterSport) bool {
	for _, s := range AllowedWaterSports(t) {
		if s == sport {
			return true
		}
	}
	return false
}

// RentalConfig is a candidate booking configuration assembled by the caller.
// It is passed by value between the pure engine functions and recomputed on
// every input change; nothing in the engine mutates it.
type RentalConfig struct {
	RentalType    RentalType
	Pickup        Pickup
	Destination   Destination // empty for jet-ski-only rentals
	DurationHours float64
	JetSkis       int
	Boats         int
	People        int
	WaterSports   map[WaterSport]int // sport -> participant count

	// Discounts; both are applied to the running total, compounding
	ResidentDiscount bool
	DiscountPct      *float64
}

// CostBreakdown is the derived cost of a configuration. It is recomputed
// whenever inputs change and never independently mutated.
type CostBreakdown struct {
	Subtotal       float64
	Tax            float64
	DiscountAmount float64
	Total          float64
}

// MaxPeople computes the passenger capacity of a rental configuration:
// 2 per jet ski, 6 paying passengers on the boat
func MaxPeople(t RentalType, jetSkis int) int {
	switch t {
	case RentalJetSki:
		return jetSkis * JetSkiSeats
	case RentalBoat:
		return BoatPassengerCapacity
	case RentalBoatAndJetSki:
		return BoatPassengerCapacity + jetSkis*JetSkiSeats
	default:
		return 0
	}
}
