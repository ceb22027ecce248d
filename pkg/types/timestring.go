package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeString время в формате "HH:MM" (wall-clock, без даты и таймзоны)
type TimeString string

// NewTimeString создает TimeString из time.Time (обрезает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("types: minutes out of range: %d", minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет формат "HH:MM"
func (t TimeString) Validate() error {
	if _, err := t.Minutes(); err != nil {
		return err
	}
	return nil
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("types: invalid time string format: %q", s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("types: invalid time string format: %q", s)
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	if hh > 23 || mm > 59 {
		return 0, fmt.Errorf("types: invalid time value: %q", s)
	}
	return hh*60 + mm, nil
}

// AddMinutes возвращает время, сдвинутое на delta минут вперед
// Ошибка, если результат выходит за пределы суток
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(m + delta)
}

// IsBefore строгое сравнение: t < other
func (t TimeString) IsBefore(other TimeString) bool {
	tm, err1 := t.Minutes()
	om, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return tm < om
}

// IsAfter строгое сравнение: t > other
func (t TimeString) IsAfter(other TimeString) bool {
	tm, err1 := t.Minutes()
	om, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return tm > om
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает строки "HH:MM", "HH:MM:SS" и time.Time (колонки типа TIME)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	// "HH:MM:SS" обрезаем до "HH:MM"
	if len(s) >= 5 {
		s = s[:5]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
