package list_bookings

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	"github.com/caribeazul/CAB-BookingService/internal/service/bookings/models"
)

// ParseQuery разбирает query-параметры фильтра списка бронирований
//
// Поддерживаемые параметры:
//   - startDate, endDate: период в формате YYYY-MM-DD
//   - date: сокращение для startDate=endDate (расписание на день)
//   - pickup, status, customerEmail: точечные фильтры
//   - includeInactive: включить отменённые и неоплаченные
func ParseQuery(values url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if date := values.Get("date"); date != "" {
		parsed, err := time.Parse(domain.DateFormat, date)
		if err != nil {
			return nil, err
		}
		req.StartDate = &parsed
		req.EndDate = &parsed
	}

	if startDate := values.Get("startDate"); startDate != "" {
		parsed, err := time.Parse(domain.DateFormat, startDate)
		if err != nil {
			return nil, err
		}
		req.StartDate = &parsed
	}

	if endDate := values.Get("endDate"); endDate != "" {
		parsed, err := time.Parse(domain.DateFormat, endDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = &parsed
	}

	if pickup := values.Get("pickup"); pickup != "" {
		req.Pickup = &pickup
	}

	if status := values.Get("status"); status != "" {
		req.Status = &status
	}

	if email := strings.TrimSpace(values.Get("customerEmail")); email != "" {
		req.CustomerEmail = &email
	}

	if raw := values.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
