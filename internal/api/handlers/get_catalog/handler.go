package get_catalog

import (
	"net/http"

	"github.com/caribeazul/CAB-BookingService/internal/api/handlers"
	"github.com/caribeazul/CAB-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/catalog
// Каталог статичен: точки выдачи, направления, тарифы и правила
// определяются конфигурацией бизнеса, а не состоянием флота
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /catalog")

	handlers.RespondJSON(w, http.StatusOK, buildCatalog())
}

func buildCatalog() *CatalogResponse {
	catalog := &CatalogResponse{
		RentalTypes: []string{
			string(domain.RentalJetSki),
			string(domain.RentalBoat),
			string(domain.RentalBoatAndJetSki),
		},
		Pickups:     make([]PickupInfo, 0, len(domain.Pickups)),
		WaterSports: make([]WaterSportInfo, 0, len(domain.WaterSportRates)),
		WorkingHours: []WorkingHoursInfo{
			{Days: "Monday - Thursday", Open: "09:00", Close: "17:00"},
			{Days: "Friday - Sunday", Open: "09:00", Close: "18:00"},
		},
		Policies:  domain.BookingPolicies,
		Amenities: domain.ComplimentaryAmenities,
		Limits: LimitsInfo{
			MaxJetSkis:            domain.MaxJetSkisPerBooking,
			MaxBoats:              domain.MaxBoatsPerBooking,
			BoatPassengerCapacity: domain.BoatPassengerCapacity,
			JetSkiSeats:           domain.JetSkiSeats,
			TaxRate:               domain.TaxRate,
			ResidentDiscountPct:   domain.ResidentDiscountPct,
		},
	}

	for _, pickup := range domain.Pickups {
		info := PickupInfo{
			Name:            string(pickup),
			JetSkiDurations: domain.JetSkiDurations(pickup),
			Destinations:    make([]DestinationInfo, 0, len(domain.Destinations)),
		}
		for _, destination := range domain.Destinations {
			if minDuration, ok := domain.BoatMinDuration(pickup, destination); ok {
				info.Destinations = append(info.Destinations, DestinationInfo{
					Name:             string(destination),
					MinDurationHours: minDuration,
				})
			}
		}
		catalog.Pickups = append(catalog.Pickups, info)
	}

	for _, sport := range domain.BoatWaterSports {
		rate := domain.WaterSportRates[sport]
		catalog.WaterSports = append(catalog.WaterSports, WaterSportInfo{
			Name:          string(sport),
			Cost:          rate.Cost,
			Unit:          rate.Unit,
			JetSkiAllowed: domain.WaterSportAllowed(domain.RentalJetSki, sport),
		})
	}

	return catalog
}
