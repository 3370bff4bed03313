package maintenance_dates

import "context"

type MaintenanceService interface {
	ListUpcoming(ctx context.Context) ([]string, error)
	Add(ctx context.Context, date string) error
	Remove(ctx context.Context, date string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
