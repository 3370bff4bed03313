package maintenance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	maintenanceRepo "github.com/caribeazul/CAB-BookingService/internal/infra/storage/maintenance"
)

// Service сервис управления датами технического обслуживания
// В даты обслуживания весь флот недоступен и новые бронирования не принимаются
type Service struct {
	repo         MaintenanceRepository
	logger       Logger
	timeProvider TimeProvider
}

// NewService создает новый экземпляр сервиса дат обслуживания
func NewService(repo MaintenanceRepository, logger Logger, timeProvider TimeProvider) *Service {
	return &Service{
		repo:         repo,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// ListUpcoming возвращает даты обслуживания начиная с сегодняшнего дня
func (s *Service) ListUpcoming(ctx context.Context) ([]string, error) {
	today := truncateToDay(s.timeProvider.Now())

	dates, err := s.repo.ListFrom(ctx, today)
	if err != nil {
		s.logger.Error("ListUpcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	formatted := make([]string, len(dates))
	for i, date := range dates {
		formatted[i] = date.Format(domain.DateFormat)
	}

	s.logger.Info("ListUpcoming: %d upcoming maintenance dates", len(formatted))
	return formatted, nil
}

// Add назначает обслуживание на дату
// Уже существующие на эту дату бронирования не затрагиваются,
// оператор отменяет их отдельно
func (s *Service) Add(ctx context.Context, rawDate string) error {
	date, err := parseDate(rawDate)
	if err != nil {
		return err
	}

	if date.Before(truncateToDay(s.timeProvider.Now())) {
		s.logger.Warn("Add: maintenance date %s is in the past", rawDate)
		return ErrDateInPast
	}

	if err := s.repo.Add(ctx, date); err != nil {
		s.logger.Error("Add: repository error for date %s: %v", rawDate, err)
		return fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: maintenance scheduled for %s", rawDate)
	return nil
}

// Remove снимает обслуживание с даты
func (s *Service) Remove(ctx context.Context, rawDate string) error {
	date, err := parseDate(rawDate)
	if err != nil {
		return err
	}

	if err := s.repo.Remove(ctx, date); err != nil {
		if errors.Is(err, maintenanceRepo.ErrDateNotFound) {
			s.logger.Warn("Remove: no maintenance scheduled for %s", rawDate)
			return ErrDateNotFound
		}
		s.logger.Error("Remove: repository error for date %s: %v", rawDate, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: maintenance removed for %s", rawDate)
	return nil
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, raw)
	}
	return date, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
