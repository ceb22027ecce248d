package get_config

import (
	"net/http"

	"github.com/avkostin/studio-booking/internal/api/handlers"
	"github.com/avkostin/studio-booking/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Response публичные правила записи (для построения сетки на клиенте)
type Response struct {
	Timezone          string `json:"timezone"`
	WorkingDays       []int  `json:"working_days"` // ISO 1-7
	WorkStart         string `json:"work_start"`   // "09:00"
	WorkEnd           string `json:"work_end"`     // "18:00"
	SlotMinutes       int    `json:"slot_minutes"`
	BookingWindowDays int    `json:"booking_window_days"`
	MaxSessionMinutes int    `json:"max_session_minutes"`
}

type Handler struct {
	rules  domain.ScheduleRules
	logger Logger
}

func NewHandler(rules domain.ScheduleRules, logger Logger) *Handler {
	return &Handler{rules: rules, logger: logger}
}

// Handle GET /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{
		Timezone:          h.rules.Location.String(),
		WorkingDays:       h.rules.WorkingWeekdays,
		WorkStart:         h.rules.WorkStart.String(),
		WorkEnd:           h.rules.WorkEnd.String(),
		SlotMinutes:       h.rules.SlotMinutes,
		BookingWindowDays: h.rules.BookingWindowDays,
		MaxSessionMinutes: h.rules.MaxSessionMinutes,
	})
}
