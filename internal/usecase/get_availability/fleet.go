package get_availability

import (
	"github.com/caribeazul/CAB-BookingService/internal/domain"
	"github.com/caribeazul/CAB-BookingService/pkg/types"
)

// unitsInUse считает занятые единицы флота в интервале [start, end)
// Пересечение проверяется строгими неравенствами - стыкующиеся аренды не конфликтуют
func unitsInUse(bookings []*domain.Booking, start, end types.TimeString) (jetSkis, boats int) {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		bookingEnd, err := booking.EndTime()
		if err != nil {
			// Некорректное время в записи не должно блокировать выдачу
			continue
		}

		if booking.StartTime.IsBefore(end) && bookingEnd.IsAfter(start) {
			jetSkis += booking.JetSkis
			boats += booking.Boats
		}
	}
	return jetSkis, boats
}

// fleetFits проверяет, что запрошенные единицы помещаются во флот
// с учётом уже занятых в интервале
func fleetFits(bookings []*domain.Booking, start, end types.TimeString, wantJetSkis, wantBoats int) bool {
	usedJetSkis, usedBoats := unitsInUse(bookings, start, end)
	return usedJetSkis+wantJetSkis <= domain.FleetJetSkis &&
		usedBoats+wantBoats <= domain.FleetBoats
}
