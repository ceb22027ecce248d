package cancel_booking

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/avkostin/studio-booking/internal/api/handlers"
	"github.com/avkostin/studio-booking/internal/domain"
	"github.com/avkostin/studio-booking/internal/service/bookings"
	"github.com/avkostin/studio-booking/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgReasonTooLong      = "причина отмены не должна превышать 500 символов"
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

// Handle PATCH /api/v1/admin/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["bookingId"]

	id, err := uuid.Parse(idStr)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/cancel - Invalid booking id %q: %v", idStr, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSONAllowEmpty(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reason := normalizeReason(req.Reason)
	if reason != nil && utf8.RuneCountInString(*reason) > domain.MaxCancelReasonLength {
		verr := domain.ValidationError{}.Add("reason", msgReasonTooLong)
		handlers.RespondValidationError(w, verr)
		return
	}

	booking, err := h.service.Cancel(r.Context(), &models.CancelBookingRequest{
		ID:     id,
		Reason: reason,
	})
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("PATCH /admin/bookings/{id}/cancel - Service error for id=%s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(booking))
}

// normalizeReason обрезает пробелы; пустая причина трактуется как отсутствующая
func normalizeReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
