package models

import (
	"errors"
	"time"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
	ByOperator         bool   `json:"-"` // Кто отменяет: заполняется хендлером по маршруту
}

// ListBookingsRequest запрос на получение бронирований с фильтрацией
type ListBookingsRequest struct {
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Pickup          *string    `json:"pickup,omitempty"`          // Фильтр по точке выдачи (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	CustomerEmail   *string    `json:"customerEmail,omitempty"`   // Фильтр по email клиента (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые и неоплаченные
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		CustomerEmail:   r.CustomerEmail,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Pickup != nil {
		pickup, err := domain.ParsePickup(*r.Pickup)
		if err != nil {
			return filter, err
		}
		filter.Pickup = &pickup
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	switch status {
	case domain.StatusPendingPayment,
		domain.StatusConfirmed,
		domain.StatusPaymentFailed,
		domain.StatusCancelledByCustomer,
		domain.StatusCancelledByOperator:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Response модели

// WaterSportEntry позиция водного развлечения в бронировании
type WaterSportEntry struct {
	Sport        string `json:"sport"`
	Participants int    `json:"participants"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string            `json:"id"`
	RentalType    string            `json:"rentalType"`
	Pickup        string            `json:"pickup"`
	Destination   *string           `json:"destination,omitempty"`
	BookingDate   string            `json:"bookingDate"` // "2025-10-15"
	StartTime     string            `json:"startTime"`   // "10:00"
	DurationHours float64           `json:"durationHours"`
	JetSkis       int               `json:"jetSkis"`
	Boats         int               `json:"boats"`
	People        int               `json:"people"`
	WaterSports   []WaterSportEntry `json:"waterSports"`

	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	DiscountAmount float64 `json:"discountAmount"`
	Total          float64 `json:"total"`

	DiscountCode     *string `json:"discountCode,omitempty"`
	ResidentDiscount bool    `json:"residentDiscount"`

	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	Status        string  `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		RentalType:         string(b.RentalType),
		Pickup:             string(b.Pickup),
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationHours:      b.DurationHours,
		JetSkis:            b.JetSkis,
		Boats:              b.Boats,
		People:             b.People,
		WaterSports:        make([]WaterSportEntry, 0, len(b.WaterSports)),
		Subtotal:           b.Subtotal,
		Tax:                b.Tax,
		DiscountAmount:     b.DiscountAmount,
		Total:              b.Total,
		DiscountCode:       b.DiscountCode,
		ResidentDiscount:   b.ResidentDiscount,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		Notes:              b.Notes,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.Destination != nil {
		destination := string(*b.Destination)
		resp.Destination = &destination
	}

	for sport, participants := range b.WaterSports {
		resp.WaterSports = append(resp.WaterSports, WaterSportEntry{
			Sport:        string(sport),
			Participants: participants,
		})
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}
