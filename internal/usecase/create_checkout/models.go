package create_checkout

import (
	"time"

	"github.com/caribeazul/CAB-BookingService/pkg/types"
)

// Request модель запроса на оформление бронирования
type Request struct {
	RentalType    string           // Тип аренды: jet_ski, boat, boat_jet_ski
	Pickup        string           // Точка выдачи
	Destination   *string          // Пункт назначения (обязателен для аренды с лодкой)
	Date          time.Time        // Дата аренды (без времени)
	StartTime     types.TimeString // Время начала (например, "10:30")
	DurationHours float64          // Длительность в часах
	JetSkis       int              // Количество гидроциклов
	People        int              // Количество человек
	WaterSports   map[string]int   // Водные развлечения: название -> количество участников

	ResidentDiscount bool    // Заявленная скидка резидента Пуэрто-Рико
	DiscountCode     *string // Промокод (опционально)

	CustomerName  string  // Имя клиента
	CustomerEmail string  // Email клиента
	CustomerPhone *string // Телефон (опционально)
	Notes         *string // Пожелания клиента (опционально)
	ClientIP      string  // IP клиента для проверки резидентства
}

// Response модель ответа с созданным бронированием и платёжными реквизитами
type Response struct {
	BookingID     string           // ID бронирования
	Status        string           // Статус (pending_payment)
	ClientSecret  string           // Секрет платёжного intent для завершения оплаты
	BookingDate   time.Time        // Дата аренды
	StartTime     types.TimeString // Время начала
	DurationHours float64          // Длительность

	Subtotal       float64 // Стоимость до налога
	Tax            float64 // Налог
	DiscountAmount float64 // Суммарная скидка
	Total          float64 // Итоговая стоимость

	DiscountApplied bool    // Промокод применён к итоговой стоимости
	DiscountWarning *string // Причина, по которой промокод не применён

	CreatedAt time.Time // Время создания
}
