package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrEmptyBody возвращается при пустом теле запроса
var ErrEmptyBody = errors.New("handlers: empty request body")

// ErrorResponse стандартный формат ошибки API
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse формат ошибки валидации со списком нарушений
type ValidationErrorResponse struct {
	Error      string   `json:"error"`
	Violations []string `json:"violations"`
}

// DecodeJSON декодирует тело запроса в v
// Неизвестные поля считаются ошибкой - опечатка в имени поля не должна
// молча превращаться в дефолтное значение
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}

// RespondJSON пишет ответ в формате JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v != nil {
		// Заголовки уже отправлены, ошибку кодирования можно только проигнорировать
		_ = json.NewEncoder(w).Encode(v)
	}
}

// RespondError пишет ошибку с указанным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest пишет ошибку 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound пишет ошибку 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondValidationErrors пишет ошибку 422 со списком нарушений бизнес-правил
func RespondValidationErrors(w http.ResponseWriter, message string, violations []string) {
	RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:      message,
		Violations: violations,
	})
}

// RespondInternalError пишет ошибку 500 без деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal server error")
}
