package get_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	discountRepo "github.com/caribeazul/CAB-BookingService/internal/infra/storage/discount"
)

// UseCase use case для расчёта стоимости аренды
// Расчёт чистый: при любом изменении параметров клиент запрашивает его заново
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

// Execute выполняет use case расчёта стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetQuote: type=%s, pickup=%s, duration=%.2f, jet_skis=%d",
		req.RentalType, req.Pickup, req.DurationHours, req.JetSkis)

	// 1. Парсим и валидируем конфигурацию
	cfg, err := req.parseConfig()
	if err != nil {
		uc.logger.Warn("GetQuote: invalid configuration: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.DurationHours <= 0 {
		uc.logger.Warn("GetQuote: non-positive duration %.2f", req.DurationHours)
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}

	// 2. Подтягиваем промокод, если указан
	// Невалидный код не роняет расчёт: скидка просто не применяется,
	// детальную причину клиент получает через validate_discount
	discountApplied := false
	if req.DiscountCode != nil && *req.DiscountCode != "" {
		code, err := uc.discountRepo.GetByCode(ctx, *req.DiscountCode)
		switch {
		case err == nil && code.Usable(uc.timeProvider.Now()):
			cfg.DiscountPct = &code.Percent
			discountApplied = true
		case err != nil && !errors.Is(err, discountRepo.ErrCodeNotFound):
			uc.logger.Error("GetQuote: failed to get discount code: %v", err)
			return nil, fmt.Errorf("%w: failed to get discount code: %v", ErrInternal, err)
		default:
			uc.logger.Info("GetQuote: discount code %q not applied", *req.DiscountCode)
		}
	}

	// 3. Считаем стоимость
	breakdown := domain.Quote(cfg)

	response := &Response{
		Subtotal:        breakdown.Subtotal,
		Tax:             breakdown.Tax,
		DiscountAmount:  breakdown.DiscountAmount,
		Total:           breakdown.Total,
		DiscountApplied: discountApplied,
		PackageApplied:  domain.PackageApplies(cfg),
	}

	if domain.HasComplimentaryAmenities(cfg) {
		response.Amenities = domain.ComplimentaryAmenities
	}

	return response, nil
}
