package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribeazul/CAB-BookingService/pkg/types"
)

func TestBooking_StatusPredicates(t *testing.T) {
	booking := &Booking{Status: StatusPendingPayment}
	assert.True(t, booking.IsActive())
	assert.True(t, booking.CanBeCancelled())
	assert.True(t, booking.CanBeConfirmed())
	assert.False(t, booking.IsCancelled())

	booking.Status = StatusConfirmed
	assert.True(t, booking.IsActive())
	assert.True(t, booking.CanBeCancelled())
	assert.False(t, booking.CanBeConfirmed())

	booking.Status = StatusPaymentFailed
	assert.False(t, booking.IsActive())
	assert.False(t, booking.CanBeCancelled())
	assert.False(t, booking.IsCancelled())

	booking.Status = StatusCancelledByCustomer
	assert.False(t, booking.IsActive())
	assert.True(t, booking.IsCancelled())

	booking.Status = StatusCancelledByOperator
	assert.False(t, booking.IsActive())
	assert.True(t, booking.IsCancelled())
}

func TestBooking_EndTime(t *testing.T) {
	booking := &Booking{
		StartTime:     types.TimeString("10:30"),
		DurationHours: 2.5,
	}

	assert.Equal(t, 150, booking.DurationMinutes())

	end, err := booking.EndTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("13:00"), end)
}

func TestBooking_Config(t *testing.T) {
	destination := DestinationIcacos
	booking := &Booking{
		RentalType:       RentalBoatAndJetSki,
		Pickup:           PickupFajardo,
		Destination:      &destination,
		DurationHours:    3,
		JetSkis:          2,
		Boats:            1,
		People:           8,
		WaterSports:      map[WaterSport]int{SportSnorkelling: 4},
		ResidentDiscount: true,
	}

	cfg := booking.Config()
	assert.Equal(t, RentalBoatAndJetSki, cfg.RentalType)
	assert.Equal(t, DestinationIcacos, cfg.Destination)
	assert.Equal(t, 2, cfg.JetSkis)
	assert.True(t, cfg.ResidentDiscount)

	// Без направления конфигурация остаётся с пустым значением
	booking.Destination = nil
	assert.Equal(t, Destination(""), booking.Config().Destination)
}
