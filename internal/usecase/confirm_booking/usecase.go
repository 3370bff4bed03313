package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	bookingRepo "github.com/caribeazul/CAB-BookingService/internal/infra/storage/booking"
)

// UseCase use case для подтверждения оплаты бронирования
// Вызывается клиентом после завершения оплаты; сверяет статус intent
// у платёжного провайдера, а не верит клиенту на слово
type UseCase struct {
	bookingRepo    BookingRepository
	discountRepo   DiscountRepository
	paymentsClient PaymentsClient
	mailer         Mailer
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	discountRepo DiscountRepository,
	paymentsClient PaymentsClient,
	mailer Mailer,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		discountRepo:   discountRepo,
		paymentsClient: paymentsClient,
		mailer:         mailer,
		logger:         logger,
	}
}

// Execute выполняет use case подтверждения оплаты
// Повторный вызов для уже подтверждённого бронирования идемпотентен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: id=%s", req.BookingID)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.BookingID) == "" {
		return nil, fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmBooking: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Идемпотентность: уже подтверждённое бронирование - успех без побочных эффектов
	if booking.Status == domain.StatusConfirmed {
		uc.logger.Info("ConfirmBooking: booking id=%s already confirmed", req.BookingID)
		return &Response{
			BookingID: booking.ID,
			Status:    string(booking.Status),
		}, nil
	}

	if !booking.CanBeConfirmed() {
		uc.logger.Warn("ConfirmBooking: booking id=%s in status %s cannot be confirmed", req.BookingID, booking.Status)
		return nil, ErrNotConfirmable
	}

	// 4. Сверяем оплату с платёжным провайдером
	if booking.PaymentIntentID == nil {
		uc.logger.Warn("ConfirmBooking: booking id=%s has no payment intent", req.BookingID)
		return nil, ErrNoPaymentIntent
	}

	if _, err := uc.paymentsClient.VerifySucceeded(*booking.PaymentIntentID); err != nil {
		uc.logger.Warn("ConfirmBooking: payment not succeeded for booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentNotSucceeded, err)
	}

	// 5. Подтверждаем бронирование
	if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusConfirmed); err != nil {
		uc.logger.Error("ConfirmBooking: failed to confirm booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}
	booking.Status = domain.StatusConfirmed

	response := &Response{
		BookingID: booking.ID,
		Status:    string(booking.Status),
	}

	// 6. Списываем использование промокода
	// Оплата уже принята - ошибка здесь не откатывает подтверждение
	if booking.DiscountCode != nil {
		if err := uc.discountRepo.IncrementUsage(ctx, *booking.DiscountCode); err != nil {
			uc.logger.Error("ConfirmBooking: failed to increment usage for code %q: %v", *booking.DiscountCode, err)
			response.Warnings = append(response.Warnings, "discount usage was not recorded")
		}
	}

	// 7. Письма клиенту и оператору - тоже нефатальны
	if err := uc.mailer.SendCustomerConfirmation(booking); err != nil {
		uc.logger.Error("ConfirmBooking: failed to send customer confirmation for id=%s: %v", booking.ID, err)
		response.Warnings = append(response.Warnings, "confirmation email was not sent")
	}

	if err := uc.mailer.SendOperatorNotification(booking); err != nil {
		uc.logger.Error("ConfirmBooking: failed to send operator notification for id=%s: %v", booking.ID, err)
		response.Warnings = append(response.Warnings, "operator notification was not sent")
	}

	uc.logger.Info("ConfirmBooking: booking id=%s confirmed", booking.ID)

	return response, nil
}
