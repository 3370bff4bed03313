package get_availability

import (
	"net/url"
	"strconv"
	"time"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	getAvailability "github.com/caribeazul/CAB-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date        string     `json:"date"`
	Maintenance bool       `json:"maintenance"`
	Durations   []float64  `json:"durations"`
	Slots       []SlotInfo `json:"slots"`
}

// SlotInfo доступное время начала
type SlotInfo struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ParseQuery собирает запрос use case из query-параметров
// GET /availability?rentalType=boat&pickup=Fajardo&destination=Icacos&date=2025-10-15&duration=3&jetSkis=2
func ParseQuery(query url.Values) (*getAvailability.Request, error) {
	req := &getAvailability.Request{
		RentalType: query.Get("rentalType"),
		Pickup:     query.Get("pickup"),
	}

	if destination := query.Get("destination"); destination != "" {
		req.Destination = &destination
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		return nil, err
	}
	req.Date = date

	if raw := query.Get("duration"); raw != "" {
		duration, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		req.DurationHours = duration
	}

	if raw := query.Get("jetSkis"); raw != "" {
		jetSkis, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		req.JetSkis = jetSkis
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	response := &AvailabilityResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		Maintenance: resp.Maintenance,
		Durations:   resp.Durations,
		Slots:       make([]SlotInfo, 0, len(resp.Slots)),
	}
	if response.Durations == nil {
		response.Durations = []float64{}
	}

	for _, slot := range resp.Slots {
		response.Slots = append(response.Slots, SlotInfo{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		})
	}

	return response
}
