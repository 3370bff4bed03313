package domain

// Tax and discount constants
const (
	// TaxRate is the Puerto Rico sales tax applied to every subtotal
	TaxRate = 0.115

	// ResidentDiscountPct is the discount for Puerto Rico residents,
	// applied to the running total before any promo code
	ResidentDiscountPct = 5.0
)

// Fleet limits: units physically owned by the business
const (
	FleetJetSkis = 3
	FleetBoats   = 1
)

// Per-booking limits
const (
	MaxJetSkisPerBooking = 3
	MaxBoatsPerBooking   = 1

	MinSportParticipants = 1
	MaxSportParticipants = 6

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Capacity constants
const (
	// BoatPassengerCapacity is the number of paying passengers allowed on the
	// boat (vessel capacity is 10, only 6 paying passengers permitted)
	BoatPassengerCapacity = 6

	// JetSkiSeats is the passenger capacity of a single jet ski
	JetSkiSeats = 2
)

// Duration limits (hours)
const (
	MaxRentalDurationHours = 9

	// ComplimentaryAmenitiesMinHours is the boat trip length from which the
	// complimentary amenities package is included
	ComplimentaryAmenitiesMinHours = 6

	// PackageMaxDurationHours is the longest trip the boat+jet-ski package
	// bands describe (the full-day trip). It equals the amenities threshold
	// today but the two rules are independent.
	PackageMaxDurationHours = 6
)

// BoatAverageHourlyRate is the fallback rate for boat durations missing from
// the flat-rate table (documented fallback branch, not a silent default)
const BoatAverageHourlyRate = 115.0

// Working hours (minutes from midnight)
const (
	OpeningMinutes     = 9 * 60  // 09:00 every day
	ClosingMinutesMoTh = 17 * 60 // 17:00 Monday-Thursday
	ClosingMinutesFrSu = 18 * 60 // 18:00 Friday-Sunday
	PickupStepMinutes  = 15
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
