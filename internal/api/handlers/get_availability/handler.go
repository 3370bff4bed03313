package get_availability

import (
	"errors"
	"net/http"

	"github.com/caribeazul/CAB-BookingService/internal/api/handlers"
	getAvailability "github.com/caribeazul/CAB-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidQuery = "invalid query parameters, expected rentalType, pickup, date=YYYY-MM-DD"
	msgInvalidInput = "invalid availability request"
	msgInvalidDate  = "booking date is in the past"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /availability - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /availability - Date in the past")
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - %d durations, %d slots", len(result.Durations), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
