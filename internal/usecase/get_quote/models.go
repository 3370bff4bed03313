package get_quote

import "github.com/caribeazul/CAB-BookingService/internal/domain"

// Request модель запроса на расчёт стоимости
type Request struct {
	RentalType    string         // Тип аренды: jet_ski, boat, boat_jet_ski
	Pickup        string         // Точка выдачи
	Destination   *string        // Пункт назначения (обязателен для аренды с лодкой)
	DurationHours float64        // Длительность в часах
	JetSkis       int            // Количество гидроциклов
	People        int            // Количество человек
	WaterSports   map[string]int // Водные развлечения: название -> количество участников

	ResidentDiscount bool    // Заявленная скидка резидента Пуэрто-Рико
	DiscountCode     *string // Промокод (опционально)
}

// Response модель ответа с расчётом стоимости
type Response struct {
	Subtotal       float64 // Стоимость до налога
	Tax            float64 // Налог (11.5%)
	DiscountAmount float64 // Суммарная скидка
	Total          float64 // Итоговая стоимость

	DiscountApplied bool     // Применён ли промокод
	PackageApplied  bool     // Применён ли пакетный тариф boat + jet ski
	Amenities       []string // Бесплатные удобства (для поездок от 6 часов)
}

// parseConfig собирает доменную конфигурацию из запроса
func (r *Request) parseConfig() (domain.RentalConfig, error) {
	rentalType, err := domain.ParseRentalType(r.RentalType)
	if err != nil {
		return domain.RentalConfig{}, err
	}

	pickup, err := domain.ParsePickup(r.Pickup)
	if err != nil {
		return domain.RentalConfig{}, err
	}

	cfg := domain.RentalConfig{
		RentalType:       rentalType,
		Pickup:           pickup,
		DurationHours:    r.DurationHours,
		JetSkis:          r.JetSkis,
		People:           r.People,
		ResidentDiscount: r.ResidentDiscount,
	}

	if rentalType.HasBoat() {
		cfg.Boats = 1
	}

	if r.Destination != nil {
		destination, err := domain.ParseDestination(*r.Destination)
		if err != nil {
			return domain.RentalConfig{}, err
		}
		cfg.Destination = destination
	}

	if len(r.WaterSports) > 0 {
		cfg.WaterSports = make(map[domain.WaterSport]int, len(r.WaterSports))
		for name, participants := range r.WaterSports {
			sport, err := domain.ParseWaterSport(name)
			if err != nil {
				return domain.RentalConfig{}, err
			}
			cfg.WaterSports[sport] = participants
		}
	}

	return cfg, nil
}
