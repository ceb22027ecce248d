package get_free_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/avkostin/studio-booking/internal/api/handlers"
	"github.com/avkostin/studio-booking/internal/domain"
	getFreeSlots "github.com/avkostin/studio-booking/internal/usecase/get_free_slots"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getFreeSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots - Failed to get free slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
