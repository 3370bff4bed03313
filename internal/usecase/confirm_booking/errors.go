package confirm_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_booking: booking not found")

	// ErrNoPaymentIntent возвращается, когда у бронирования нет платёжного intent
	ErrNoPaymentIntent = errors.New("confirm_booking: booking has no payment intent")

	// ErrPaymentNotSucceeded возвращается, когда оплата по intent не прошла
	ErrPaymentNotSucceeded = errors.New("confirm_booking: payment has not succeeded")

	// ErrNotConfirmable возвращается, когда бронирование нельзя подтвердить
	// (например, оно уже отменено)
	ErrNotConfirmable = errors.New("confirm_booking: booking cannot be confirmed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
