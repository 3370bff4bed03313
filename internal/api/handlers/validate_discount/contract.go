package validate_discount

import (
	"context"

	validateDiscount "github.com/caribeazul/CAB-BookingService/internal/usecase/validate_discount"
)

type ValidateDiscountUseCase interface {
	Execute(ctx context.Context, req *validateDiscount.Request) (*validateDiscount.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
