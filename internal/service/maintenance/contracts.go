package maintenance

import (
	"context"
	"time"
)

// MaintenanceRepository интерфейс репозитория дат обслуживания
type MaintenanceRepository interface {
	ListFrom(ctx context.Context, from time.Time) ([]time.Time, error)
	Add(ctx context.Context, date time.Time) error
	Remove(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестируемости)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
