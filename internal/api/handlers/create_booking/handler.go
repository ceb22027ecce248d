package create_booking

import (
	"errors"
	"net/http"

	"github.com/avkostin/studio-booking/internal/api/handlers"
	"github.com/avkostin/studio-booking/internal/domain"
	createBooking "github.com/avkostin/studio-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotTaken          = "слот уже занят, выберите другое время"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, verr := req.ToUseCaseRequest()
	if !verr.IsEmpty() {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", verr)
		handlers.RespondValidationError(w, verr)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr domain.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Validation failed: %v", validationErr)
			handlers.RespondValidationError(w, validationErr)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: date=%s, time=%s",
				req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s, time=%s",
		result.ID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
