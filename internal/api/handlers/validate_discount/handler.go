package validate_discount

import (
	"errors"
	"net/http"

	"github.com/caribeazul/CAB-BookingService/internal/api/handlers"
	validateDiscount "github.com/caribeazul/CAB-BookingService/internal/usecase/validate_discount"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgCodeRequired       = "discount code is required"
	msgCodeNotFound       = "discount code not found"
	msgCodeInactive       = "discount code is inactive"
	msgCodeNotYetValid    = "discount code is not yet valid"
	msgCodeExpired        = "discount code has expired"
	msgCodeUsageLimit     = "discount code usage limit reached"
)

type Handler struct {
	useCase ValidateDiscountUseCase
	logger  Logger
}

func NewHandler(useCase ValidateDiscountUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// ValidateDiscountRequest HTTP request model
type ValidateDiscountRequest struct {
	Code string `json:"code"`
}

// ValidateDiscountResponse HTTP response model
type ValidateDiscountResponse struct {
	Code    string  `json:"code"`
	Percent float64 `json:"percent"`
}

// Handle POST /api/v1/discounts/validate
// Каждая причина отказа возвращается отдельным сообщением -
// форма бронирования показывает её клиенту как есть
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateDiscountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /discounts/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &validateDiscount.Request{Code: req.Code})
	if err != nil {
		switch {
		case errors.Is(err, validateDiscount.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgCodeRequired)

		case errors.Is(err, validateDiscount.ErrCodeNotFound):
			handlers.RespondNotFound(w, msgCodeNotFound)

		case errors.Is(err, validateDiscount.ErrCodeInactive):
			handlers.RespondError(w, http.StatusConflict, msgCodeInactive)

		case errors.Is(err, validateDiscount.ErrCodeNotYetValid):
			handlers.RespondError(w, http.StatusConflict, msgCodeNotYetValid)

		case errors.Is(err, validateDiscount.ErrCodeExpired):
			handlers.RespondError(w, http.StatusConflict, msgCodeExpired)

		case errors.Is(err, validateDiscount.ErrCodeUsageLimitReached):
			handlers.RespondError(w, http.StatusConflict, msgCodeUsageLimit)

		default:
			h.logger.Error("POST /discounts/validate - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /discounts/validate - Code %s valid, percent=%.1f", result.Code, result.Percent)
	handlers.RespondJSON(w, http.StatusOK, ValidateDiscountResponse{
		Code:    result.Code,
		Percent: result.Percent,
	})
}
