package create_checkout

import (
	"errors"
	"net/http"

	"github.com/caribeazul/CAB-BookingService/internal/api/handlers"
	createCheckout "github.com/caribeazul/CAB-BookingService/internal/usecase/create_checkout"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDateOrTime    = "invalid bookingDate or startTime, expected YYYY-MM-DD and HH:MM"
	msgInvalidInput         = "invalid checkout request"
	msgConfigurationInvalid = "rental configuration is invalid"
	msgMaintenanceDate      = "fleet is under maintenance on this date"
	msgFleetUnavailable     = "requested units are not available at this time"
	msgPaymentFailed        = "failed to initialize payment, please try again"
)

type Handler struct {
	useCase CreateCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CreateCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(r)
	if err != nil {
		h.logger.Warn("POST /checkout - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Нарушения бизнес-правил отдаём полным списком
		var validationErr *createCheckout.ValidationError
		if errors.As(err, &validationErr) {
			h.logger.Warn("POST /checkout - %d violations: %v", len(validationErr.Violations), validationErr.Violations)
			handlers.RespondValidationErrors(w, msgConfigurationInvalid, validationErr.Violations)
			return
		}

		switch {
		case errors.Is(err, createCheckout.ErrInvalidInput):
			h.logger.Warn("POST /checkout - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createCheckout.ErrMaintenanceDate):
			h.logger.Warn("POST /checkout - Maintenance date: %s", req.BookingDate)
			handlers.RespondError(w, http.StatusConflict, msgMaintenanceDate)

		case errors.Is(err, createCheckout.ErrFleetUnavailable):
			h.logger.Warn("POST /checkout - Fleet unavailable: date=%s, time=%s", req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgFleetUnavailable)

		case errors.Is(err, createCheckout.ErrPaymentIntent):
			h.logger.Error("POST /checkout - Payment intent failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentFailed)

		default:
			h.logger.Error("POST /checkout - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout - Booking created: booking_id=%s, total=%.2f", result.BookingID, result.Total)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
