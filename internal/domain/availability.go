package domain

import (
	"time"

	"github.com/caribeazul/CAB-BookingService/pkg/types"
)

// DayType buckets weekdays by working hours
type DayType string

const (
	DayTypeMonThu DayType = "mon_thu"
	DayTypeFriSun DayType = "fri_sun"
)

// DayTypeFor returns the working-hours bucket of a date. Friday belongs to
// the weekend bucket and closes at 18:00.
func DayTypeFor(date time.Time) DayType {
	switch date.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return DayTypeFriSun
	default:
		return DayTypeMonThu
	}
}

// ClosingMinutes returns the closing time of a date in minutes from midnight
func ClosingMinutes(date time.Time) int {
	if DayTypeFor(date) == DayTypeFriSun {
		return ClosingMinutesFrSu
	}
	return ClosingMinutesMoTh
}

// boatMinDuration returns the minimum legal boat trip length for a pair.
// The second return value is false for pairs the boat does not serve.
func boatMinDuration(pickup Pickup, destination Destination) (int, bool) {
	byDest, ok := BoatMinDurations[pickup]
	if !ok {
		return 0, false
	}
	min, ok := byDest[destination]
	return min, ok
}

// BoatMinDuration is the exported lookup used by validation and the catalog
func BoatMinDuration(pickup Pickup, destination Destination) (int, bool) {
	return boatMinDuration(pickup, destination)
}

// JetSkiDurations returns the jet-ski durations offered at a pickup in
// ascending order. Empty for pickups without jet skis.
func JetSkiDurations(pickup Pickup) []float64 {
	rates, ok := JetSkiRates[pickup]
	if !ok || len(rates) == 0 {
		return nil
	}

	durations := make([]float64, 0, len(rates))
	if _, ok := rates[0.25]; ok {
		durations = append(durations, 0.25)
	}
	if _, ok := rates[0.5]; ok {
		durations = append(durations, 0.5)
	}
	for h := 1; h <= MaxRentalDurationHours; h++ {
		if _, ok := rates[float64(h)]; ok {
			durations = append(durations, float64(h))
		}
	}
	return durations
}

// BoatDurations returns the boat durations offered for a pair in ascending
// order: the whole hours from the pair minimum up to the daily maximum.
// Empty for pairs the boat does not serve.
func BoatDurations(pickup Pickup, destination Destination) []float64 {
	min, ok := boatMinDuration(pickup, destination)
	if !ok {
		return nil
	}

	durations := make([]float64, 0, MaxRentalDurationHours-min+1)
	for h := min; h <= MaxRentalDurationHours; h++ {
		durations = append(durations, float64(h))
	}
	return durations
}

// AvailableDurations returns the legal durations for a rental configuration.
// Combined rentals follow the boat rules: the boat constrains the trip.
func AvailableDurations(t RentalType, pickup Pickup, destination Destination) []float64 {
	if t.HasBoat() {
		return BoatDurations(pickup, destination)
	}
	return JetSkiDurations(pickup)
}

// DurationAvailable reports whether a duration is legal for the configuration
func DurationAvailable(t RentalType, pickup Pickup, destination Destination, hours float64) bool {
	for _, d := range AvailableDurations(t, pickup, destination) {
		if d == hours {
			return true
		}
	}
	return false
}

// AvailableStartTimes returns the pickup times legal on a date for a given
// duration: every 15 minutes from opening, keeping only starts from which
// the full rental fits before closing. An empty slice means the duration
// does not fit the day at all.
func AvailableStartTimes(date time.Time, durationHours float64) []types.TimeString {
	closing := ClosingMinutes(date)
	durationMinutes := int(durationHours * 60)

	var times []types.TimeString
	for start := OpeningMinutes; start+durationMinutes <= closing; start += PickupStepMinutes {
		ts, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			break
		}
		times = append(times, ts)
	}
	return times
}

// StartTimeLegal reports whether a rental starting at the given time on the
// given date ends by closing
func StartTimeLegal(date time.Time, start types.TimeString, durationHours float64) bool {
	startMinutes, err := start.Minutes()
	if err != nil {
		return false
	}
	if startMinutes < OpeningMinutes {
		return false
	}
	return startMinutes+int(durationHours*60) <= ClosingMinutes(date)
}
