package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/caribeazul/CAB-BookingService/internal/api/handlers"
	"github.com/caribeazul/CAB-BookingService/internal/service/bookings"
	"github.com/caribeazul/CAB-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgCannotCancel       = "booking cannot be cancelled"
	msgInvalidInput       = "invalid cancellation request"
	msgBookingCancelled   = "booking cancelled"
)

type Handler struct {
	service    BookingsService
	logger     Logger
	byOperator bool
}

// NewHandler создает хендлер отмены клиентом (POST /bookings/{id}/cancel)
func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// NewOperatorHandler создает хендлер отмены оператором (POST /admin/bookings/{id}/cancel)
func NewOperatorHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service:    service,
		logger:     logger,
		byOperator: true,
	}
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Message string `json:"message"`
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]

	var req models.CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		// Причина отмены опциональна, пустое тело допустимо
		h.logger.Warn("POST /bookings/%s/cancel - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.ByOperator = h.byOperator

	if err := h.service.Cancel(r.Context(), bookingID, &req); err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/%s/cancel - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/%s/cancel - Not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("POST /bookings/%s/cancel - Cannot cancel", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("POST /bookings/%s/cancel - Failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%s/cancel - Cancelled, byOperator=%t", bookingID, h.byOperator)
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{Message: msgBookingCancelled})
}
