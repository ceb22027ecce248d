package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/avkostin/studio-booking/internal/domain"
	"github.com/avkostin/studio-booking/pkg/types"
)

var phoneRe = regexp.MustCompile(`^\+7\d{10}$`)

// validateRequest валидирует запрос целиком и возвращает ВСЕ нарушения
// одним списком, без остановки на первой ошибке
func validateRequest(req *Request, rules domain.ScheduleRules, now time.Time) domain.ValidationError {
	verr := domain.ValidationError{}

	verr = validateDate(verr, req.Date, rules, now)
	verr = validateStartTime(verr, req, rules, now)
	verr = validateDuration(verr, req, rules)
	verr = validateClient(verr, req)

	return verr
}

// validateDate проверяет, что дата - рабочий день в пределах окна записи
func validateDate(verr domain.ValidationError, date time.Time, rules domain.ScheduleRules, now time.Time) domain.ValidationError {
	if date.IsZero() {
		return verr.Add("date", "Дата обязательна")
	}

	d := rules.DateOnly(date)
	today := rules.DateOnly(now)

	if d.Before(today) {
		return verr.Add("date", "Дата не может быть в прошлом")
	}

	limit := today.AddDate(0, 0, rules.BookingWindowDays)
	if d.After(limit) {
		return verr.Add("date", fmt.Sprintf("Дата должна быть в пределах %d дней", rules.BookingWindowDays))
	}

	if !rules.IsWorkingDay(d) {
		return verr.Add("date", "Доступны только рабочие дни")
	}

	return verr
}

// validateStartTime проверяет, что время начала лежит на сетке слотов
// и для сегодняшней даты еще не прошло
func validateStartTime(verr domain.ValidationError, req *Request, rules domain.ScheduleRules, now time.Time) domain.ValidationError {
	if req.StartTime.IsZero() {
		return verr.Add("start_time", "Время начала обязательно")
	}
	if err := req.StartTime.Validate(); err != nil {
		return verr.Add("start_time", "Время должно быть в формате HH:MM")
	}
	if !rules.IsOnGrid(req.StartTime) {
		return verr.Add("start_time", fmt.Sprintf("Время должно быть кратно %d минутам в пределах рабочего дня", rules.SlotMinutes))
	}

	// Для сегодняшней даты нельзя выбрать уже прошедший слот
	if !req.Date.IsZero() && rules.DateOnly(req.Date).Equal(rules.DateOnly(now)) {
		nowTime := types.NewTimeString(now.In(rules.Location))
		if req.StartTime.IsBefore(nowTime) {
			return verr.Add("start_time", "Нельзя записаться на прошедшее время")
		}
	}

	return verr
}

// validateDuration проверяет длительность сессии
func validateDuration(verr domain.ValidationError, req *Request, rules domain.ScheduleRules) domain.ValidationError {
	d := req.DurationMinutes

	if d < rules.SlotMinutes || d%rules.SlotMinutes != 0 {
		return verr.Add("duration_minutes", fmt.Sprintf("Длительность должна быть кратна %d минутам и не меньше %d", rules.SlotMinutes, rules.SlotMinutes))
	}
	if d > rules.MaxSessionMinutes {
		return verr.Add("duration_minutes", fmt.Sprintf("Длительность не может превышать %d минут", rules.MaxSessionMinutes))
	}

	// Конец сессии не должен выходить за пределы рабочего дня
	if !req.StartTime.IsZero() && req.StartTime.Validate() == nil {
		end, err := req.StartTime.AddMinutes(d)
		if err != nil || end.IsAfter(rules.WorkEnd) {
			return verr.Add("duration_minutes", "Интервал выходит за пределы рабочего времени")
		}
	}

	return verr
}

// validateClient проверяет контактные поля клиента
func validateClient(verr domain.ValidationError, req *Request) domain.ValidationError {
	name := strings.TrimSpace(req.ClientName)
	if len([]rune(name)) < domain.MinClientNameLength {
		verr = verr.Add("name", fmt.Sprintf("Имя должно содержать не менее %d символов", domain.MinClientNameLength))
	} else if len([]rune(name)) > domain.MaxClientNameLength {
		verr = verr.Add("name", "Имя слишком длинное")
	}

	if !phoneRe.MatchString(strings.TrimSpace(req.ClientPhone)) {
		verr = verr.Add("phone", "Телефон должен быть в формате +7XXXXXXXXXX")
	}

	if req.Comment != nil && len([]rune(strings.TrimSpace(*req.Comment))) > domain.MaxCommentLength {
		verr = verr.Add("comment", fmt.Sprintf("Комментарий не может превышать %d символов", domain.MaxCommentLength))
	}

	return verr
}
