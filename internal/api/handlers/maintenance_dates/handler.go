package maintenance_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/caribeazul/CAB-BookingService/internal/api/handlers"
	"github.com/caribeazul/CAB-BookingService/internal/service/maintenance"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgDateInPast         = "maintenance date is in the past"
	msgDateNotFound       = "no maintenance scheduled for this date"
	msgDateScheduled      = "maintenance date scheduled"
	msgDateRemoved        = "maintenance date removed"
)

type Handler struct {
	service MaintenanceService
	logger  Logger
}

func NewHandler(service MaintenanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// MaintenanceDateRequest запрос на назначение обслуживания
type MaintenanceDateRequest struct {
	Date string `json:"date"` // "2025-10-15"
}

// MaintenanceDatesResponse список назначенных дат обслуживания
type MaintenanceDatesResponse struct {
	Dates []string `json:"dates"`
}

// MessageResponse ответ с сообщением о результате операции
type MessageResponse struct {
	Message string `json:"message"`
}

// HandleList GET /api/v1/admin/maintenance
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	dates, err := h.service.ListUpcoming(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/maintenance - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/maintenance - OK, %d dates", len(dates))
	handlers.RespondJSON(w, http.StatusOK, MaintenanceDatesResponse{Dates: dates})
}

// HandleAdd POST /api/v1/admin/maintenance
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req MaintenanceDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/maintenance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Add(r.Context(), req.Date); err != nil {
		switch {
		case errors.Is(err, maintenance.ErrInvalidInput):
			h.logger.Warn("POST /admin/maintenance - Invalid date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, maintenance.ErrDateInPast):
			h.logger.Warn("POST /admin/maintenance - Date in past: %s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDateInPast)

		default:
			h.logger.Error("POST /admin/maintenance - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/maintenance - Scheduled: %s", req.Date)
	handlers.RespondJSON(w, http.StatusCreated, MessageResponse{Message: msgDateScheduled})
}

// HandleRemove DELETE /api/v1/admin/maintenance/{date}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	if err := h.service.Remove(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, maintenance.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/maintenance/%s - Invalid date", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, maintenance.ErrDateNotFound):
			h.logger.Warn("DELETE /admin/maintenance/%s - Not found", date)
			handlers.RespondNotFound(w, msgDateNotFound)

		default:
			h.logger.Error("DELETE /admin/maintenance/%s - Failed: %v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/maintenance/%s - Removed", date)
	handlers.RespondJSON(w, http.StatusOK, MessageResponse{Message: msgDateRemoved})
}
