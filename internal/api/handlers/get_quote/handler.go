package get_quote

import (
	"errors"
	"net/http"

	"github.com/caribeazul/CAB-BookingService/internal/api/handlers"
	getQuote "github.com/caribeazul/CAB-BookingService/internal/usecase/get_quote"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid rental configuration"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /quotes - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote computed: total=%.2f", result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
