package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation sentinel для проверки через errors.Is
var ErrValidation = errors.New("validation error")

// FieldError описывает нарушение по одному полю
type FieldError struct {
	Field   string
	Message string
}

// ValidationError набор нарушений по полям
// Все нарушения собираются и возвращаются одним списком, без fail-fast,
// чтобы клиент мог подсветить все невалидные поля за один запрос
type ValidationError struct {
	Fields []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	var b strings.Builder
	b.WriteString("validation error: ")
	for i, fe := range e.Fields {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", fe.Field, fe.Message)
	}
	return b.String()
}

func (e ValidationError) Unwrap() error { return ErrValidation }

// Add добавляет нарушение по полю
func (e ValidationError) Add(field, message string) ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// IsEmpty возвращает true, если нарушений нет
func (e ValidationError) IsEmpty() bool { return len(e.Fields) == 0 }
