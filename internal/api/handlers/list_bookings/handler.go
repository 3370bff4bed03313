package list_bookings

import (
	"errors"
	"net/http"

	"github.com/caribeazul/CAB-BookingService/internal/api/handlers"
	"github.com/caribeazul/CAB-BookingService/internal/service/bookings"
)

const (
	msgInvalidQuery = "invalid query parameters"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Доступно только оператору (маршрут закрыт админским middleware)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /admin/bookings - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - OK, %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
