package validate_discount

import "errors"

var (
	// ErrCodeNotFound возвращается, когда промокод не существует
	ErrCodeNotFound = errors.New("validate_discount: discount code not found")

	// ErrCodeInactive возвращается, когда промокод отключён оператором
	ErrCodeInactive = errors.New("validate_discount: discount code is inactive")

	// ErrCodeNotYetValid возвращается, когда окно действия промокода ещё не открылось
	ErrCodeNotYetValid = errors.New("validate_discount: discount code is not yet valid")

	// ErrCodeExpired возвращается, когда окно действия промокода закрылось
	ErrCodeExpired = errors.New("validate_discount: discount code has expired")

	// ErrCodeUsageLimitReached возвращается, когда промокод исчерпал лимит использований
	ErrCodeUsageLimitReached = errors.New("validate_discount: discount code usage limit reached")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("validate_discount: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_discount: internal error")
)
