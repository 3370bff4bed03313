package get_availability

import (
	"time"

	"github.com/caribeazul/CAB-BookingService/pkg/types"
)

// Request модель запроса доступности
// Если DurationHours > 0, в ответ включаются доступные времена начала
type Request struct {
	RentalType    string  // Тип аренды: jet_ski, boat, boat_jet_ski
	Pickup        string  // Точка выдачи
	Destination   *string // Пункт назначения (обязателен для аренды с лодкой)
	Date          time.Time
	DurationHours float64 // Длительность (опционально)
	JetSkis       int     // Запрашиваемое количество гидроциклов
}

// Slot доступное время начала аренды
type Slot struct {
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания
}

// Response модель ответа с доступными длительностями и временами
type Response struct {
	Date        time.Time
	Maintenance bool      // Дата закрыта на техобслуживание
	Durations   []float64 // Легальные длительности для конфигурации
	Slots       []Slot    // Доступные времена начала (если указана длительность)
}
