package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionScope = "admin"

var (
	// ErrInvalidSession возвращается для отсутствующего, просроченного
	// или подделанного токена сессии
	ErrInvalidSession = errors.New("auth: invalid session token")
)

// SessionManager выпускает и проверяет токены административных сессий
// Токен - подписанный HS256 JWT, который кладется в HttpOnly cookie;
// серверного состояния сессии нет
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionManager создает менеджер сессий
func NewSessionManager(secret string, ttl time.Duration) (*SessionManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("auth: session secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("auth: session ttl must be > 0")
	}
	return &SessionManager{secret: []byte(secret), ttl: ttl}, nil
}

// Issue выпускает новый токен сессии
func (m *SessionManager) Issue() (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"scope": sessionScope,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign session token: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись, срок действия и scope токена
func (m *SessionManager) Verify(raw string) error {
	if raw == "" {
		return ErrInvalidSession
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidSession
	}
	if scope, _ := claims["scope"].(string); scope != sessionScope {
		return ErrInvalidSession
	}

	return nil
}

// TTL возвращает время жизни сессии (для Max-Age cookie)
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}
