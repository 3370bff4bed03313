package create_checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	"github.com/caribeazul/CAB-BookingService/pkg/types"
)

// validateInput проверяет обязательные поля до разбора конфигурации
func validateInput(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if !strings.Contains(req.CustomerEmail, "@") {
		return fmt.Errorf("%w: customerEmail is invalid", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// parseConfig собирает доменную конфигурацию из запроса
func parseConfig(req *Request) (domain.RentalConfig, error) {
	rentalType, err := domain.ParseRentalType(req.RentalType)
	if err != nil {
		return domain.RentalConfig{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	pickup, err := domain.ParsePickup(req.Pickup)
	if err != nil {
		return domain.RentalConfig{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	cfg := domain.RentalConfig{
		RentalType:       rentalType,
		Pickup:           pickup,
		DurationHours:    req.DurationHours,
		JetSkis:          req.JetSkis,
		People:           req.People,
		ResidentDiscount: req.ResidentDiscount,
	}

	if rentalType.HasBoat() {
		cfg.Boats = 1
	}
	if !rentalType.HasJetSkis() {
		cfg.JetSkis = 0
	}

	if req.Destination != nil {
		destination, err := domain.ParseDestination(*req.Destination)
		if err != nil {
			return domain.RentalConfig{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		cfg.Destination = destination
	}

	if len(req.WaterSports) > 0 {
		cfg.WaterSports = make(map[domain.WaterSport]int, len(req.WaterSports))
		for name, participants := range req.WaterSports {
			sport, err := domain.ParseWaterSport(name)
			if err != nil {
				return domain.RentalConfig{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			cfg.WaterSports[sport] = participants
		}
	}

	return cfg, nil
}

// collectViolations проверяет конфигурацию по всем бизнес-правилам сразу
// Нарушения не прерывают проверку: клиент получает полный список одним ответом
func collectViolations(cfg domain.RentalConfig, date time.Time, startTime types.TimeString) []string {
	var violations []string

	// Состав флота в заявке
	if cfg.RentalType.HasJetSkis() {
		if cfg.JetSkis < 1 || cfg.JetSkis > domain.MaxJetSkisPerBooking {
			violations = append(violations,
				fmt.Sprintf("jet skis must be between 1 and %d", domain.MaxJetSkisPerBooking))
		}
	}

	// Пункт назначения
	if cfg.RentalType.NeedsDestination() {
		if cfg.Destination == "" {
			violations = append(violations, "destination is required for boat rentals")
		} else if _, ok := domain.BoatMinDuration(cfg.Pickup, cfg.Destination); !ok {
			violations = append(violations,
				fmt.Sprintf("no boat trips from %s to %s", cfg.Pickup, cfg.Destination))
		}
	}

	// Длительность
	if !domain.DurationAvailable(cfg.RentalType, cfg.Pickup, cfg.Destination, cfg.DurationHours) {
		violations = append(violations,
			fmt.Sprintf("duration %.2g hours is not offered for this configuration", cfg.DurationHours))
	}

	// Количество человек против вместимости
	maxPeople := domain.MaxPeople(cfg.RentalType, cfg.JetSkis)
	if cfg.People < 1 {
		violations = append(violations, "at least one person is required")
	} else if cfg.People > maxPeople {
		violations = append(violations,
			fmt.Sprintf("%d people exceed the capacity of %d for this configuration", cfg.People, maxPeople))
	}

	// Водные развлечения
	for sport, participants := range cfg.WaterSports {
		if !domain.WaterSportAllowed(cfg.RentalType, sport) {
			violations = append(violations,
				fmt.Sprintf("%s is not available for this rental type", sport))
		}
		if participants < domain.MinSportParticipants || participants > domain.MaxSportParticipants {
			violations = append(violations,
				fmt.Sprintf("%s participants must be between %d and %d",
					sport, domain.MinSportParticipants, domain.MaxSportParticipants))
		}
	}

	// Время начала: шаг 15 минут в рамках рабочих часов, окончание до закрытия
	if minutes, err := startTime.Minutes(); err != nil || minutes%domain.PickupStepMinutes != 0 {
		violations = append(violations,
			fmt.Sprintf("start time must be in %d-minute steps", domain.PickupStepMinutes))
	} else if !domain.StartTimeLegal(date, startTime, cfg.DurationHours) {
		violations = append(violations,
			fmt.Sprintf("rental starting at %s does not fit the working hours", startTime))
	}

	return violations
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
