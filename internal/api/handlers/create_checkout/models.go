package create_checkout

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	createCheckout "github.com/caribeazul/CAB-BookingService/internal/usecase/create_checkout"
	"github.com/caribeazul/CAB-BookingService/pkg/types"
)

// CheckoutRequest HTTP request model
type CheckoutRequest struct {
	RentalType    string         `json:"rentalType"`
	Pickup        string         `json:"pickup"`
	Destination   *string        `json:"destination,omitempty"`
	BookingDate   string         `json:"bookingDate"` // "2025-10-15"
	StartTime     string         `json:"startTime"`   // "10:30"
	DurationHours float64        `json:"durationHours"`
	JetSkis       int            `json:"jetSkis,omitempty"`
	People        int            `json:"people"`
	WaterSports   map[string]int `json:"waterSports,omitempty"`

	ResidentDiscount bool    `json:"residentDiscount,omitempty"`
	DiscountCode     *string `json:"discountCode,omitempty"`

	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	BookingID     string  `json:"bookingId"`
	Status        string  `json:"status"`
	ClientSecret  string  `json:"clientSecret"`
	BookingDate   string  `json:"bookingDate"`
	StartTime     string  `json:"startTime"`
	DurationHours float64 `json:"durationHours"`

	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	DiscountAmount float64 `json:"discountAmount"`
	Total          float64 `json:"total"`

	DiscountApplied bool    `json:"discountApplied"`
	DiscountWarning *string `json:"discountWarning,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CheckoutRequest) ToUseCaseRequest(httpReq *http.Request) (*createCheckout.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createCheckout.Request{
		RentalType:       r.RentalType,
		Pickup:           r.Pickup,
		Destination:      r.Destination,
		Date:             bookingDate,
		StartTime:        startTime,
		DurationHours:    r.DurationHours,
		JetSkis:          r.JetSkis,
		People:           r.People,
		WaterSports:      r.WaterSports,
		ResidentDiscount: r.ResidentDiscount,
		DiscountCode:     r.DiscountCode,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerPhone:    r.CustomerPhone,
		Notes:            r.Notes,
		ClientIP:         clientIP(httpReq),
	}, nil
}

// clientIP извлекает IP клиента с учётом прокси
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// Первый адрес в списке - исходный клиент
		if idx := strings.IndexByte(forwarded, ','); idx > 0 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return strings.TrimSpace(forwarded)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createCheckout.Response) *CheckoutResponse {
	return &CheckoutResponse{
		BookingID:       resp.BookingID,
		Status:          resp.Status,
		ClientSecret:    resp.ClientSecret,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationHours:   resp.DurationHours,
		Subtotal:        resp.Subtotal,
		Tax:             resp.Tax,
		DiscountAmount:  resp.DiscountAmount,
		Total:           resp.Total,
		DiscountApplied: resp.DiscountApplied,
		DiscountWarning: resp.DiscountWarning,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
