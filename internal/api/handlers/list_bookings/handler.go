package list_bookings

import (
	"net/http"
	"time"

	"github.com/avkostin/studio-booking/internal/api/handlers"
	"github.com/avkostin/studio-booking/internal/domain"
	"github.com/avkostin/studio-booking/internal/service/bookings/models"
)

const (
	msgMissingDate   = "параметр date обязателен"
	msgInvalidDate   = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidStatus = "некорректный фильтр status, допустимы all, active, cancelled"
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

// Handle GET /api/v1/admin/bookings?date=YYYY-MM-DD&status=all|active|cancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	status, err := models.ParseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid status filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	list, err := h.service.ListByDate(r.Context(), &models.ListBookingsRequest{
		Date:   date,
		Status: status,
	})
	if err != nil {
		h.logger.Error("GET /admin/bookings - Service error for date=%s: %v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(dateStr, list))
}
