package list_bookings

import (
	"context"

	"github.com/caribeazul/CAB-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
