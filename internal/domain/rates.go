package domain

// Rate tables ported from the business pricing sheet. Locations and sports
// are closed enumerations; lookups on unknown keys fail loudly at the parse
// boundary, and the documented fallback branches below cover missing
// durations.

// JetSkiRates maps pickup -> duration (hours) -> per-unit price.
// A pickup with no entry does not offer jet skis at all.
var JetSkiRates = map[Pickup]map[float64]float64{
	PickupSanJuan: {}, // not available
	PickupLuquillo: {
		0.5: 75,
		1:   120, 2: 240, 3: 360, 4: 480, 5: 600, 6: 720, 7: 840, 8: 960, 9: 1080,
	},
	PickupFajardo: {
		0.25: 50,
		0.5:  75,
		1:    120, 2: 240, 3: 360, 4: 480, 5: 600, 6: 720, 7: 840, 8: 960, 9: 1080,
	},
	PickupCeiba: {
		0.5: 75,
		1:   120, 2: 240, 3: 360, 4: 480, 5: 600, 6: 720, 7: 840, 8: 960, 9: 1080,
	},
	PickupNaguabo: {
		0.25: 50,
		0.5:  75,
		1:    120, 2: 240, 3: 360, 4: 480, 5: 600, 6: 720, 7: 840, 8: 960, 9: 1080,
	},
}

// Canonical jet-ski per-unit prices and the hourly base used above one hour
const (
	JetSkiPriceQuarterHour = 50.0
	JetSkiPriceHalfHour    = 75.0
	JetSkiHourlyRate       = 120.0
)

// BoatFlatRates maps whole-hour boat durations to the flat trip price
var BoatFlatRates = map[int]float64{
	1: 150,
	2: 300,
	3: 350,
	4: 500,
	5: 600,
	6: 650,
	7: 750,
	8: 850,
	9: 960,
}

// BoatMinDurations maps (pickup, destination) to the minimum legal boat trip
// length in hours. Legal durations are the integers [min, 9].
var BoatMinDurations = map[Pickup]map[Destination]int{
	PickupSanJuan: {
		DestinationIcacos:   3,
		DestinationPalomino: 3,
		DestinationPinero:   3,
		DestinationCulebra:  6,
	},
	PickupLuquillo: {
		DestinationIcacos:   1,
		DestinationPalomino: 1,
		DestinationPinero:   3,
		DestinationCulebra:  6,
	},
	PickupFajardo: {
		DestinationIcacos:   1,
		DestinationPalomino: 1,
		DestinationPinero:   3,
		DestinationCulebra:  6,
	},
	PickupCeiba: {
		DestinationIcacos:   3,
		DestinationPalomino: 3,
		DestinationPinero:   1,
		DestinationCulebra:  6,
	},
	PickupNaguabo: {
		DestinationIcacos:   3,
		DestinationPalomino: 3,
		DestinationPinero:   3,
		DestinationCulebra:  6,
	},
}

// WaterSportRate is the per-participant price of a water-sport add-on.
// Unit is informational only: every sport bills a flat per-participant
// amount regardless of trip duration (observed billing behaviour).
type WaterSportRate struct {
	Cost float64
	Unit string
}

// WaterSportRates maps sport -> rate
var WaterSportRates = map[WaterSport]WaterSportRate{
	SportPaddleboarding: {Cost: 40, Unit: "per day"},
	SportKayaking:       {Cost: 50, Unit: "per day"},
	SportSnorkelling:    {Cost: 30, Unit: "per day"},
	SportFishing:        {Cost: 40, Unit: "per day"},
	SportWakeboarding:   {Cost: 70, Unit: "per hour"},
}

// JetSkiWaterSports are the sports bookable on jet-ski-only trips
var JetSkiWaterSports = []WaterSport{SportFishing, SportSnorkelling}

// BoatWaterSports are the sports bookable on boat trips
var BoatWaterSports = []WaterSport{
	SportPaddleboarding,
	SportKayaking,
	SportSnorkelling,
	SportFishing,
	SportWakeboarding,
}

// PackageKey identifies a combined boat+jet-ski package offer
type PackageKey struct {
	Pickup      Pickup
	Destination Destination
	JetSkis     int
}

// PackageBand is a package price band: Min is the price at the pair's
// minimum duration, Max the price of the 6-hour full-day trip. Durations
// in between interpolate linearly.
type PackageBand struct {
	Min float64
	Max float64
}

// PackageBands maps package offers to their price bands. Pairs with a fixed
// 6-hour crossing (Culebra) have Min == Max. Combinations without an entry
// price as independent boat + jet-ski sums.
var PackageBands = map[PackageKey]PackageBand{
	// Fajardo
	{PickupFajardo, DestinationIcacos, 1}:   {Min: 250, Max: 1275},
	{PickupFajardo, DestinationIcacos, 2}:   {Min: 360, Max: 1945},
	{PickupFajardo, DestinationIcacos, 3}:   {Min: 475, Max: 2610},
	{PickupFajardo, DestinationPalomino, 1}: {Min: 255, Max: 1285},
	{PickupFajardo, DestinationPalomino, 2}: {Min: 370, Max: 1955},
	{PickupFajardo, DestinationPalomino, 3}: {Min: 485, Max: 2625},
	{PickupFajardo, DestinationCulebra, 1}:  {Min: 1275, Max: 1275},
	{PickupFajardo, DestinationCulebra, 2}:  {Min: 1945, Max: 1945},
	{PickupFajardo, DestinationCulebra, 3}:  {Min: 2610, Max: 2610},

	// Luquillo
	{PickupLuquillo, DestinationIcacos, 1}:   {Min: 250, Max: 1275},
	{PickupLuquillo, DestinationIcacos, 2}:   {Min: 360, Max: 1945},
	{PickupLuquillo, DestinationIcacos, 3}:   {Min: 475, Max: 2610},
	{PickupLuquillo, DestinationPalomino, 1}: {Min: 255, Max: 1285},
	{PickupLuquillo, DestinationPalomino, 2}: {Min: 370, Max: 1955},
	{PickupLuquillo, DestinationPalomino, 3}: {Min: 485, Max: 2625},
	{PickupLuquillo, DestinationCulebra, 1}:  {Min: 1275, Max: 1275},
	{PickupLuquillo, DestinationCulebra, 2}:  {Min: 1945, Max: 1945},
	{PickupLuquillo, DestinationCulebra, 3}:  {Min: 2610, Max: 2610},

	// San Juan (3-hour minimum to the east coast cays)
	{PickupSanJuan, DestinationIcacos, 1}: {Min: 660, Max: 1275},
	{PickupSanJuan, DestinationIcacos, 2}: {Min: 995, Max: 1945},
	{PickupSanJuan, DestinationIcacos, 3}: {Min: 1330, Max: 2610},

	// Ceiba
	{PickupCeiba, DestinationPinero, 1}: {Min: 250, Max: 1260},
	{PickupCeiba, DestinationPinero, 2}: {Min: 365, Max: 1940},
	{PickupCeiba, DestinationPinero, 3}: {Min: 480, Max: 2615},
}

// BookingPolicies are shown on the booking form and repeated in the
// confirmation mail
var BookingPolicies = []string{
	"All bookings can be customized to your needs and to many other destinations as long as there is availability and all safety regulations are abided by at all times.",
	"Jet skis to be returned by sunset.",
	"Boat will only navigate in waves up to 5ft, winds up to 20mph.",
	"We recommend island hopping jet ski tours to be taken with more than 1 jet ski.",
}

// ComplimentaryAmenities are included with full-day boat trips
var ComplimentaryAmenities = []string{
	"Water, sodas, beer",
	"Floaties and snorkelling gear",
	"Fishing gear",
	"Underwater GoPro and drone photos/videos",
}
