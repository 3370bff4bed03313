package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	"github.com/caribeazul/CAB-BookingService/pkg/types"
)

// UseCase use case для получения доступных длительностей и времён начала
type UseCase struct {
	bookingRepo     BookingRepository
	maintenanceRepo MaintenanceRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	maintenanceRepo MaintenanceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		maintenanceRepo: maintenanceRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: type=%s, pickup=%s, date=%s, duration=%.2f, jet_skis=%d",
		req.RentalType, req.Pickup, req.Date.Format(domain.DateFormat), req.DurationHours, req.JetSkis)

	// 1. Валидация входных данных
	rentalType, pickup, destination, err := parseRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не может быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailability: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Проверяем техобслуживание - в эти даты флот недоступен целиком
	maintenance, err := uc.maintenanceRepo.Exists(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to check maintenance date: %v", err)
		return nil, fmt.Errorf("%w: failed to check maintenance date: %v", ErrInternal, err)
	}

	if maintenance {
		uc.logger.Info("GetAvailability: %s is a maintenance date", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:        req.Date,
			Maintenance: true,
			Durations:   []float64{},
			Slots:       []Slot{},
		}, nil
	}

	// 4. Легальные длительности определяются конфигурацией, не загрузкой флота
	durations := domain.AvailableDurations(rentalType, pickup, destination)

	response := &Response{
		Date:      req.Date,
		Durations: durations,
		Slots:     []Slot{},
	}

	// 5. Без длительности времена начала не считаем
	if req.DurationHours <= 0 {
		return response, nil
	}

	if !domain.DurationAvailable(rentalType, pickup, destination, req.DurationHours) {
		uc.logger.Warn("GetAvailability: duration %.2f not offered for this configuration", req.DurationHours)
		return nil, fmt.Errorf("%w: duration %.2f is not offered", ErrInvalidInput, req.DurationHours)
	}

	// 6. Получаем активные бронирования на дату и фильтруем времена по флоту
	bookings, err := uc.bookingRepo.GetActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	wantJetSkis, wantBoats := requestedUnits(rentalType, req.JetSkis)
	durationMinutes := int(req.DurationHours * 60)

	for _, start := range domain.AvailableStartTimes(req.Date, req.DurationHours) {
		// Для сегодняшней даты прошедшие времена не предлагаем
		if isSameDay(req.Date, now) && start.IsBefore(types.NewTimeString(now)) {
			continue
		}

		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			continue
		}

		if fleetFits(bookings, start, end, wantJetSkis, wantBoats) {
			response.Slots = append(response.Slots, Slot{StartTime: start, EndTime: end})
		}
	}

	uc.logger.Info("GetAvailability: %d slots available on %s", len(response.Slots), req.Date.Format(domain.DateFormat))

	return response, nil
}

// parseRequest разбирает и валидирует параметры запроса
func parseRequest(req *Request) (domain.RentalType, domain.Pickup, domain.Destination, error) {
	rentalType, err := domain.ParseRentalType(req.RentalType)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	pickup, err := domain.ParsePickup(req.Pickup)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var destination domain.Destination
	if rentalType.NeedsDestination() {
		if req.Destination == nil {
			return "", "", "", fmt.Errorf("%w: destination is required for boat rentals", ErrInvalidInput)
		}
		destination, err = domain.ParseDestination(*req.Destination)
		if err != nil {
			return "", "", "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if req.Date.IsZero() {
		return "", "", "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if rentalType.HasJetSkis() && (req.JetSkis < 1 || req.JetSkis > domain.MaxJetSkisPerBooking) {
		return "", "", "", fmt.Errorf("%w: jet skis must be between 1 and %d", ErrInvalidInput, domain.MaxJetSkisPerBooking)
	}

	return rentalType, pickup, destination, nil
}

// requestedUnits определяет запрашиваемые единицы флота по типу аренды
func requestedUnits(t domain.RentalType, jetSkis int) (wantJetSkis, wantBoats int) {
	if t.HasJetSkis() {
		wantJetSkis = jetSkis
	}
	if t.HasBoat() {
		wantBoats = 1
	}
	return wantJetSkis, wantBoats
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
