package validate_discount

// Request модель запроса на проверку промокода
type Request struct {
	Code string // Промокод (нечувствителен к регистру)
}

// Response модель ответа с параметрами действующего промокода
type Response struct {
	Code    string  // Нормализованный промокод
	Percent float64 // Размер скидки в процентах
}
