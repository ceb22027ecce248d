package get_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/avkostin/studio-booking/internal/api/handlers"
	"github.com/avkostin/studio-booking/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный идентификатор бронирования"
	msgBookingNotFound  = "бронирование не найдено"
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

// Handle GET /api/v1/admin/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["bookingId"]

	id, err := uuid.Parse(idStr)
	if err != nil {
		h.logger.Warn("GET /admin/bookings/{id} - Invalid booking id %q: %v", idStr, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("GET /admin/bookings/{id} - Service error for id=%s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(booking))
}
