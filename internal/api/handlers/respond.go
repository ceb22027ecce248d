package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/avkostin/studio-booking/internal/domain"
)

// ErrorResponse стандартное тело ошибки
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldError нарушение по одному полю
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse тело ответа с нарушениями по полям
type ValidationErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields"`
}

// DecodeJSON декодирует тело запроса, запрещая неизвестные поля
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return io.EOF
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// DecodeJSONAllowEmpty как DecodeJSON, но пустое тело не является ошибкой
func DecodeJSONAllowEmpty(r *http.Request, dst interface{}) error {
	err := DecodeJSON(r, dst)
	if err == io.EOF {
		return nil
	}
	return err
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет ошибку с указанным статусом и кодом
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// RespondBadRequest пишет 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, "bad_request", message)
}

// RespondNotFound пишет 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, "not_found", message)
}

// RespondConflict пишет 409 (окно уже занято)
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, "time_taken", message)
}

// RespondUnauthorized пишет 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, "admin_unauthorized", message)
}

// RespondInternalError пишет 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal_error", "внутренняя ошибка сервера")
}

// RespondValidationError пишет 422 со списком всех нарушений по полям
func RespondValidationError(w http.ResponseWriter, verr domain.ValidationError) {
	fields := make([]FieldError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, FieldError{Field: f.Field, Message: f.Message})
	}
	RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Code:    "validation_error",
		Message: "ошибка валидации",
		Fields:  fields,
	})
}
