package get_catalog

// CatalogResponse HTTP response model
type CatalogResponse struct {
	RentalTypes  []string           `json:"rentalTypes"`
	Pickups      []PickupInfo       `json:"pickups"`
	WaterSports  []WaterSportInfo   `json:"waterSports"`
	WorkingHours []WorkingHoursInfo `json:"workingHours"`
	Policies     []string           `json:"policies"`
	Amenities    []string           `json:"amenities"`
	Limits       LimitsInfo         `json:"limits"`
}

// PickupInfo точка выдачи с доступными направлениями и длительностями
type PickupInfo struct {
	Name            string            `json:"name"`
	JetSkiDurations []float64         `json:"jetSkiDurations"` // Пустой список - гидроциклы не выдаются
	Destinations    []DestinationInfo `json:"destinations"`
}

// DestinationInfo направление с минимальной длительностью поездки
type DestinationInfo struct {
	Name             string `json:"name"`
	MinDurationHours int    `json:"minDurationHours"`
}

// WaterSportInfo водное развлечение с тарифом
type WaterSportInfo struct {
	Name          string  `json:"name"`
	Cost          float64 `json:"cost"`
	Unit          string  `json:"unit"`
	JetSkiAllowed bool    `json:"jetSkiAllowed"` // Доступно ли на аренде только гидроциклов
}

// WorkingHoursInfo рабочие часы по дням недели
type WorkingHoursInfo struct {
	Days  string `json:"days"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// LimitsInfo лимиты бронирования
type LimitsInfo struct {
	MaxJetSkis            int     `json:"maxJetSkis"`
	MaxBoats              int     `json:"maxBoats"`
	BoatPassengerCapacity int     `json:"boatPassengerCapacity"`
	JetSkiSeats           int     `json:"jetSkiSeats"`
	TaxRate               float64 `json:"taxRate"`
	ResidentDiscountPct   float64 `json:"residentDiscountPct"`
}
