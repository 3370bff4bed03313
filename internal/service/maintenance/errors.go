package maintenance

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("maintenance service: invalid input")

	// ErrDateInPast возвращается при попытке назначить обслуживание на прошедшую дату
	ErrDateInPast = errors.New("maintenance service: date is in the past")

	// ErrDateNotFound возвращается, когда на дату не назначено обслуживание
	ErrDateNotFound = errors.New("maintenance service: date not found")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("maintenance service: internal error")
)
