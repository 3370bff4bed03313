package validate_discount

import (
	"context"
	"errors"
	"fmt"
	"strings"

	discountRepo "github.com/caribeazul/CAB-BookingService/internal/infra/storage/discount"
)

// UseCase use case для проверки промокода
// Возвращает точную причину отказа - клиент показывает её в форме бронирования
type UseCase struct {
	discountRepo DiscountRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(discountRepo DiscountRepository, logger Logger) *UseCase {
	return &UseCase{
		discountRepo: discountRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case проверки промокода
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	code := strings.TrimSpace(req.Code)
	uc.logger.Info("ValidateDiscount: code=%q", code)

	// 1. Валидация входных данных
	if code == "" {
		uc.logger.Warn("ValidateDiscount: empty code")
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	// 2. Получаем промокод
	discount, err := uc.discountRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, discountRepo.ErrCodeNotFound) {
			uc.logger.Info("ValidateDiscount: code %q not found", code)
			return nil, ErrCodeNotFound
		}
		uc.logger.Error("ValidateDiscount: failed to get code %q: %v", code, err)
		return nil, fmt.Errorf("%w: failed to get discount code: %v", ErrInternal, err)
	}

	// 3. Проверяем условия применимости - порядок проверок фиксирован,
	// клиент получает первую подходящую причину отказа
	now := uc.timeProvider.Now()

	if !discount.Active {
		uc.logger.Info("ValidateDiscount: code %q is inactive", code)
		return nil, ErrCodeInactive
	}

	if discount.NotYetValid(now) {
		uc.logger.Info("ValidateDiscount: code %q not yet valid", code)
		return nil, ErrCodeNotYetValid
	}

	if discount.Expired(now) {
		uc.logger.Info("ValidateDiscount: code %q expired", code)
		return nil, ErrCodeExpired
	}

	if discount.UsageExhausted() {
		uc.logger.Info("ValidateDiscount: code %q usage limit reached", code)
		return nil, ErrCodeUsageLimitReached
	}

	uc.logger.Info("ValidateDiscount: code %q valid, percent=%.1f", discount.Code, discount.Percent)

	return &Response{
		Code:    discount.Code,
		Percent: discount.Percent,
	}, nil
}
