package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/caribeazul/CAB-BookingService/internal/api/handlers"
	"github.com/caribeazul/CAB-BookingService/internal/service/bookings"
)

const (
	msgBookingNotFound = "booking not found"
	msgInvalidID       = "invalid booking id"
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

// Handle GET /api/v1/bookings/{id}
// ID бронирования - непубличный uuid, ссылка с ID и есть право доступа
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/%s - Invalid id", bookingID)
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/%s - Not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/%s - Failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/%s - OK", bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
