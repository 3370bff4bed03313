package domain

import (
	"time"

	"github.com/caribeazul/CAB-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPendingPayment      BookingStatus = "pending_payment"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusPaymentFailed       BookingStatus = "payment_failed"
	StatusCancelledByCustomer BookingStatus = "cancelled_by_customer"
	StatusCancelledByOperator BookingStatus = "cancelled_by_operator"
)

// InactiveStatuses are the statuses that release fleet units back to the pool
var InactiveStatuses = []BookingStatus{
	StatusPaymentFailed,
	StatusCancelledByCustomer,
	StatusCancelledByOperator,
}

// Booking represents a paid rental reservation in the system
type Booking struct {
	ID            string // uuid
	RentalType    RentalType
	Pickup        Pickup
	Destination   *Destination // nil for jet-ski-only rentals
	BookingDate   time.Time
	StartTime     types.TimeString
	DurationHours float64
	JetSkis       int
	Boats         int
	People        int
	WaterSports   map[WaterSport]int

	// Priced breakdown frozen at checkout time
	Subtotal       float64
	Tax            float64
	DiscountAmount float64
	Total          float64

	DiscountCode     *string
	ResidentDiscount bool

	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	Notes           *string
	PaymentIntentID *string
	Status          BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking holds fleet units
func (b *Booking) IsActive() bool {
	for _, s := range InactiveStatuses {
		if b.Status == s {
			return false
		}
	}
	return true
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPendingPayment || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if a payment confirmation may transition the
// booking to confirmed. A booking already confirmed is handled idempotently
// by the caller.
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPendingPayment
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByCustomer || b.Status == StatusCancelledByOperator
}

// DurationMinutes returns the rental length in minutes
func (b *Booking) DurationMinutes() int {
	return int(b.DurationHours * 60)
}

// EndTime returns the pickup time plus the rental duration
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes())
}

// Config reconstructs the rental configuration the booking was priced from
func (b *Booking) Config() RentalConfig {
	cfg := RentalConfig{
		RentalType:       b.RentalType,
		Pickup:           b.Pickup,
		DurationHours:    b.DurationHours,
		JetSkis:          b.JetSkis,
		Boats:            b.Boats,
		People:           b.People,
		WaterSports:      b.WaterSports,
		ResidentDiscount: b.ResidentDiscount,
	}
	if b.Destination != nil {
		cfg.Destination = *b.Destination
	}
	return cfg
}

// BookingsFilter фильтр для выборки бронирований оператором
type BookingsFilter struct {
	StartDate       *time.Time     // Начало периода (опционально, если nil - без ограничения)
	EndDate         *time.Time     // Конец периода (опционально, если nil - без ограничения)
	Pickup          *Pickup        // Фильтр по точке выдачи (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	CustomerEmail   *string        // Фильтр по email клиента (опционально)
	IncludeInactive bool           // Включать ли неактивные бронирования (отмененные, неоплаченные)
}
