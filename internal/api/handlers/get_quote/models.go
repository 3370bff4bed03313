package get_quote

import (
	getQuote "github.com/caribeazul/CAB-BookingService/internal/usecase/get_quote"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	RentalType    string         `json:"rentalType"`
	Pickup        string         `json:"pickup"`
	Destination   *string        `json:"destination,omitempty"`
	DurationHours float64        `json:"durationHours"`
	JetSkis       int            `json:"jetSkis,omitempty"`
	People        int            `json:"people,omitempty"`
	WaterSports   map[string]int `json:"waterSports,omitempty"`

	ResidentDiscount bool    `json:"residentDiscount,omitempty"`
	DiscountCode     *string `json:"discountCode,omitempty"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	DiscountAmount float64 `json:"discountAmount"`
	Total          float64 `json:"total"`

	DiscountApplied bool     `json:"discountApplied"`
	PackageApplied  bool     `json:"packageApplied"`
	Amenities       []string `json:"amenities,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *getQuote.Request {
	return &getQuote.Request{
		RentalType:       r.RentalType,
		Pickup:           r.Pickup,
		Destination:      r.Destination,
		DurationHours:    r.DurationHours,
		JetSkis:          r.JetSkis,
		People:           r.People,
		WaterSports:      r.WaterSports,
		ResidentDiscount: r.ResidentDiscount,
		DiscountCode:     r.DiscountCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		Subtotal:        resp.Subtotal,
		Tax:             resp.Tax,
		DiscountAmount:  resp.DiscountAmount,
		Total:           resp.Total,
		DiscountApplied: resp.DiscountApplied,
		PackageApplied:  resp.PackageApplied,
		Amenities:       resp.Amenities,
	}
}
