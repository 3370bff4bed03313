package confirm_booking

// Request модель запроса на подтверждение оплаты бронирования
type Request struct {
	BookingID string // ID бронирования
}

// Response модель ответа с подтверждённым бронированием
type Response struct {
	BookingID string // ID бронирования
	Status    string // Статус после подтверждения (confirmed)

	// Warnings содержит нефатальные проблемы: оплата принята и бронирование
	// подтверждено, но, например, письмо отправить не удалось
	Warnings []string
}
