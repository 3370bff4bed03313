package create_checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	discountRepo "github.com/caribeazul/CAB-BookingService/internal/infra/storage/discount"
	"github.com/caribeazul/CAB-BookingService/pkg/ptr"
)

// UseCase use case для оформления бронирования с оплатой
// Создаёт бронирование в статусе pending_payment и платёжный intent;
// подтверждение оплаты обрабатывает confirm_booking
type UseCase struct {
	bookingRepo     BookingRepository
	discountRepo    DiscountRepository
	maintenanceRepo MaintenanceRepository
	paymentsClient  PaymentsClient
	geoipClient     GeoIPClient
	txManager       TransactionManager
	idGenerator     IDGenerator
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	discountRepo DiscountRepository,
	maintenanceRepo MaintenanceRepository,
	paymentsClient PaymentsClient,
	geoipClient GeoIPClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		discountRepo:    discountRepo,
		maintenanceRepo: maintenanceRepo,
		paymentsClient:  paymentsClient,
		geoipClient:     geoipClient,
		txManager:       txManager,
		idGenerator:     &uuidGenerator{},
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

// Execute выполняет use case оформления бронирования
// Проверка флота и вставка идут в сериализуемой транзакции -
// две одновременные заявки на последние единицы не пройдут обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCheckout: type=%s, pickup=%s, date=%s, time=%s, duration=%.2f, email=%s",
		req.RentalType, req.Pickup, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours, req.CustomerEmail)

	// 1. Валидация обязательных полей
	if err := validateInput(req); err != nil {
		uc.logger.Warn("CreateCheckout: input validation failed: %v", err)
		return nil, err
	}

	// 2. Разбор конфигурации
	cfg, err := parseConfig(req)
	if err != nil {
		uc.logger.Warn("CreateCheckout: failed to parse configuration: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		return nil, &ValidationError{Violations: []string{"booking date is in the past"}}
	}

	// 3. Проверяем все бизнес-правила разом и возвращаем полный список нарушений
	if violations := collectViolations(cfg, req.Date, req.StartTime); len(violations) > 0 {
		uc.logger.Warn("CreateCheckout: %d violations: %v", len(violations), violations)
		return nil, &ValidationError{Violations: violations}
	}

	// 4. Мягкая проверка резидентства по IP
	// Geoip недоступен - верим заявлению клиента; сервис определённо говорит
	// "не Пуэрто-Рико" - скидку снимаем
	if cfg.ResidentDiscount && req.ClientIP != "" {
		location, err := uc.geoipClient.LookupWithGracefulDegradation(ctx, req.ClientIP)
		if err == nil && !location.IsPuertoRico() {
			uc.logger.Warn("CreateCheckout: resident discount claimed from outside PR (ip=%s, country=%s), dropping",
				req.ClientIP, location.CountryCode)
			cfg.ResidentDiscount = false
		}
	}

	// 5. Промокод: невалидный код не блокирует оформление - бронирование
	// идёт без скидки, причину отказа клиент видит в ответе
	var discountCode *string
	var discountWarning *string
	if req.DiscountCode != nil && *req.DiscountCode != "" {
		code, err := uc.discountRepo.GetByCode(ctx, *req.DiscountCode)
		switch {
		case err == nil && code.Usable(now):
			cfg.DiscountPct = &code.Percent
			discountCode = ptr.Ptr(code.Code)
		case err != nil && !errors.Is(err, discountRepo.ErrCodeNotFound):
			uc.logger.Error("CreateCheckout: failed to get discount code: %v", err)
			return nil, fmt.Errorf("%w: failed to get discount code: %v", ErrInternal, err)
		case err != nil:
			uc.logger.Warn("CreateCheckout: discount code %q not found, proceeding without it", *req.DiscountCode)
			discountWarning = ptr.Ptr("discount code not found, total priced without discount")
		default:
			reason := discountRefusalReason(code, now)
			uc.logger.Warn("CreateCheckout: discount code %q %s, proceeding without it", *req.DiscountCode, reason)
			discountWarning = ptr.Ptr(fmt.Sprintf("discount code %s, total priced without discount", reason))
		}
	}

	// 6. Считаем стоимость - цена фиксируется в бронировании
	breakdown := domain.Quote(cfg)

	// 7. Создаём бронирование в сериализуемой транзакции с проверкой флота
	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Техобслуживание проверяем в транзакции - дата, добавленная
		// оператором параллельно, не должна проскочить
		maintenance, err := uc.maintenanceRepo.Exists(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateCheckout: failed to check maintenance date: %v", err)
			return fmt.Errorf("%w: failed to check maintenance date: %v", ErrInternal, err)
		}
		if maintenance {
			uc.logger.Warn("CreateCheckout: %s is a maintenance date", req.Date.Format(domain.DateFormat))
			return ErrMaintenanceDate
		}

		// 7.2. Активные бронирования на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateCheckout: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.3. Проверяем, что запрошенные единицы помещаются во флот
		end, err := req.StartTime.AddMinutes(int(req.DurationHours * 60))
		if err != nil {
			return fmt.Errorf("%w: failed to compute rental end: %v", ErrInternal, err)
		}

		if !fleetFits(bookings, req.StartTime, end, cfg.JetSkis, cfg.Boats) {
			uc.logger.Warn("CreateCheckout: fleet unavailable on %s at %s",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrFleetUnavailable
		}

		// 7.4. Сохраняем бронирование
		booking := &domain.Booking{
			ID:               uc.idGenerator.NewID(),
			RentalType:       cfg.RentalType,
			Pickup:           cfg.Pickup,
			BookingDate:      req.Date,
			StartTime:        req.StartTime,
			DurationHours:    req.DurationHours,
			JetSkis:          cfg.JetSkis,
			Boats:            cfg.Boats,
			People:           cfg.People,
			WaterSports:      cfg.WaterSports,
			Subtotal:         breakdown.Subtotal,
			Tax:              breakdown.Tax,
			DiscountAmount:   breakdown.DiscountAmount,
			Total:            breakdown.Total,
			DiscountCode:     discountCode,
			ResidentDiscount: cfg.ResidentDiscount,
			CustomerName:     req.CustomerName,
			CustomerEmail:    req.CustomerEmail,
			CustomerPhone:    req.CustomerPhone,
			Notes:            req.Notes,
			Status:           domain.StatusPendingPayment,
		}
		if cfg.RentalType.NeedsDestination() {
			booking.Destination = ptr.Ptr(cfg.Destination)
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateCheckout: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 8. Создаём платёжный intent - вне транзакции, провайдер внешний
	intent, err := uc.paymentsClient.CreateIntent(result.ID, domain.AmountInCents(result.Total))
	if err != nil {
		uc.logger.Error("CreateCheckout: failed to create payment intent for booking id=%s: %v", result.ID, err)

		// Бронирование без intent оплатить нельзя - освобождаем флот
		if updErr := uc.bookingRepo.UpdateStatus(ctx, result.ID, domain.StatusPaymentFailed); updErr != nil {
			uc.logger.Error("CreateCheckout: failed to mark booking id=%s as payment_failed: %v", result.ID, updErr)
		}

		return nil, fmt.Errorf("%w: %v", ErrPaymentIntent, err)
	}

	// 9. Привязываем intent к бронированию
	if err := uc.bookingRepo.SetPaymentIntent(ctx, result.ID, intent.ID); err != nil {
		uc.logger.Error("CreateCheckout: failed to set payment intent for booking id=%s: %v", result.ID, err)
		return nil, fmt.Errorf("%w: failed to set payment intent: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateCheckout: created booking id=%s, total=%.2f, intent=%s", result.ID, result.Total, intent.ID)

	return &Response{
		BookingID:       result.ID,
		Status:          string(result.Status),
		ClientSecret:    intent.ClientSecret,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationHours:   result.DurationHours,
		Subtotal:        result.Subtotal,
		Tax:             result.Tax,
		DiscountAmount:  result.DiscountAmount,
		Total:           result.Total,
		DiscountApplied: discountCode != nil,
		DiscountWarning: discountWarning,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// discountRefusalReason повторяет порядок проверок validate_discount -
// в предупреждении клиент видит ту же первую подходящую причину
func discountRefusalReason(code *domain.DiscountCode, now time.Time) string {
	switch {
	case !code.Active:
		return "is inactive"
	case code.NotYetValid(now):
		return "is not valid yet"
	case code.Expired(now):
		return "has expired"
	default:
		return "has reached its usage limit"
	}
}
