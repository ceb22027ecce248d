package admin_login

import (
	"crypto/subtle"
	"net/http"

	"github.com/avkostin/studio-booking/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgWrongPassword      = "неверный пароль"
)

// Config настройки обработчика входа
type Config struct {
	AdminPassword string
	CookieName    string
	SecureCookie  bool
	SessionMaxAge int // секунды
}

type Handler struct {
	sessions SessionIssuer
	cfg      Config
	logger   Logger
}

func NewHandler(sessions SessionIssuer, cfg Config, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/session/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/session/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Password == "" ||
		subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) != 1 {
		h.logger.Warn("POST /admin/session/login - Wrong password attempt")
		handlers.RespondUnauthorized(w, msgWrongPassword)
		return
	}

	token, err := h.sessions.Issue()
	if err != nil {
		h.logger.Error("POST /admin/session/login - Failed to issue session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cfg.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.cfg.SecureCookie,
	})

	h.logger.Info("POST /admin/session/login - Admin session established")
	w.WriteHeader(http.StatusNoContent)
}
