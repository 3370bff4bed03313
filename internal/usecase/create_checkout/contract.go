package create_checkout

import (
	"context"
	"time"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	"github.com/caribeazul/CAB-BookingService/internal/integrations/geoip"
	"github.com/caribeazul/CAB-BookingService/internal/integrations/payments"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	SetPaymentIntent(ctx context.Context, id string, paymentIntentID string) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// DiscountRepository интерфейс репозитория промокодов
type DiscountRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.DiscountCode, error)
}

// MaintenanceRepository интерфейс репозитория дат обслуживания
type MaintenanceRepository interface {
	Exists(ctx context.Context, date time.Time) (bool, error)
}

// PaymentsClient интерфейс платёжного клиента
type PaymentsClient interface {
	CreateIntent(bookingID string, amountCents int64) (*payments.Intent, error)
}

// GeoIPClient интерфейс geoip-клиента
type GeoIPClient interface {
	LookupWithGracefulDegradation(ctx context.Context, ip string) (*geoip.Location, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// IDGenerator интерфейс генерации идентификаторов бронирований (для тестирования)
type IDGenerator interface {
	NewID() string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
