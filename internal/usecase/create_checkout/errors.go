package create_checkout

import "errors"

var (
	// ErrValidation возвращается при нарушениях бизнес-правил конфигурации
	// Все нарушения собираются в одном ответе - клиент показывает полный список
	ErrValidation = errors.New("create_checkout: configuration is invalid")

	// ErrMaintenanceDate возвращается при попытке бронирования на дату техобслуживания
	ErrMaintenanceDate = errors.New("create_checkout: fleet is under maintenance on this date")

	// ErrFleetUnavailable возвращается, когда запрошенные единицы флота заняты
	ErrFleetUnavailable = errors.New("create_checkout: requested units are not available")

	// ErrPaymentIntent возвращается при ошибке создания платёжного intent
	// Бронирование при этом переводится в статус payment_failed
	ErrPaymentIntent = errors.New("create_checkout: failed to create payment intent")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_checkout: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_checkout: internal error")
)

// ValidationError ошибка валидации со списком нарушений
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error()
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
