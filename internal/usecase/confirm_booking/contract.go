package confirm_booking

import (
	"context"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	"github.com/caribeazul/CAB-BookingService/internal/integrations/payments"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// DiscountRepository интерфейс репозитория промокодов
type DiscountRepository interface {
	IncrementUsage(ctx context.Context, code string) error
}

// PaymentsClient интерфейс платёжного клиента
type PaymentsClient interface {
	VerifySucceeded(intentID string) (*payments.Intent, error)
}

// Mailer интерфейс почтового клиента
type Mailer interface {
	SendCustomerConfirmation(booking *domain.Booking) error
	SendOperatorNotification(booking *domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
