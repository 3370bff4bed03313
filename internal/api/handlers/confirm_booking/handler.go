package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/caribeazul/CAB-BookingService/internal/api/handlers"
	confirmBooking "github.com/caribeazul/CAB-BookingService/internal/usecase/confirm_booking"
)

const (
	msgBookingNotFound     = "booking not found"
	msgNoPaymentIntent     = "booking has no payment attached"
	msgPaymentNotSucceeded = "payment has not succeeded yet"
	msgNotConfirmable      = "booking cannot be confirmed"
	msgInvalidBookingID    = "booking id is required"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	BookingID string   `json:"bookingId"`
	Status    string   `json:"status"`
	Warnings  []string `json:"warnings,omitempty"`
}

// Handle POST /api/v1/bookings/{id}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/%s/confirm - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, confirmBooking.ErrNoPaymentIntent):
			h.logger.Warn("POST /bookings/%s/confirm - No payment intent", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNoPaymentIntent)

		case errors.Is(err, confirmBooking.ErrPaymentNotSucceeded):
			h.logger.Warn("POST /bookings/%s/confirm - Payment not succeeded", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgPaymentNotSucceeded)

		case errors.Is(err, confirmBooking.ErrNotConfirmable):
			h.logger.Warn("POST /bookings/%s/confirm - Not confirmable", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotConfirmable)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("POST /bookings/%s/confirm - Failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%s/confirm - Confirmed, %d warnings", bookingID, len(result.Warnings))
	handlers.RespondJSON(w, http.StatusOK, ConfirmBookingResponse{
		BookingID: result.BookingID,
		Status:    result.Status,
		Warnings:  result.Warnings,
	})
}
