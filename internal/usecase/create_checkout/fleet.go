package create_checkout

import (
	"github.com/caribeazul/CAB-BookingService/internal/domain"
	"github.com/caribeazul/CAB-BookingService/pkg/types"
)

// fleetFits проверяет, что запрошенные единицы помещаются во флот
// с учётом активных бронирований, пересекающихся с интервалом [start, end)
// Пересечение проверяется строгими неравенствами - стыкующиеся аренды не конфликтуют
func fleetFits(bookings []*domain.Booking, start, end types.TimeString, wantJetSkis, wantBoats int) bool {
	usedJetSkis, usedBoats := 0, 0

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		bookingEnd, err := booking.EndTime()
		if err != nil {
			continue
		}

		if booking.StartTime.IsBefore(end) && bookingEnd.IsAfter(start) {
			usedJetSkis += booking.JetSkis
			usedBoats += booking.Boats
		}
	}

	return usedJetSkis+wantJetSkis <= domain.FleetJetSkis &&
		usedBoats+wantBoats <= domain.FleetBoats
}
