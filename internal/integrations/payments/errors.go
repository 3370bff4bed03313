package payments

import "errors"

var (
	// ErrCreateIntent возвращается при ошибке создания платёжного intent
	ErrCreateIntent = errors.New("payments client: failed to create payment intent")

	// ErrGetIntent возвращается при ошибке получения платёжного intent
	ErrGetIntent = errors.New("payments client: failed to fetch payment intent")

	// ErrIntentNotSucceeded возвращается, когда intent существует, но оплата не прошла
	ErrIntentNotSucceeded = errors.New("payments client: payment intent not succeeded")
)
