package domain

import (
	"fmt"
	"time"

	"github.com/avkostin/studio-booking/pkg/types"
)

// ScheduleRules represents the studio working schedule
// Передается явно при конструировании сервисов, никогда не читается из
// глобального состояния
type ScheduleRules struct {
	Location          *time.Location
	WorkingWeekdays   []int // ISO 1-7 (понедельник = 1)
	WorkStart         types.TimeString
	WorkEnd           types.TimeString
	SlotMinutes       int
	BookingWindowDays int
	MaxSessionMinutes int
}

// Validate checks the schedule invariants
func (r ScheduleRules) Validate() error {
	if r.Location == nil {
		return fmt.Errorf("schedule: Location is required")
	}
	if len(r.WorkingWeekdays) == 0 {
		return fmt.Errorf("schedule: WorkingWeekdays is required")
	}
	for _, d := range r.WorkingWeekdays {
		if d < 1 || d > 7 {
			return fmt.Errorf("schedule: working weekday out of ISO range 1-7: %d", d)
		}
	}
	if r.SlotMinutes <= 0 {
		return fmt.Errorf("schedule: SlotMinutes must be > 0")
	}

	start, err := r.WorkStart.Minutes()
	if err != nil {
		return fmt.Errorf("schedule: invalid WorkStart: %w", err)
	}
	end, err := r.WorkEnd.Minutes()
	if err != nil {
		return fmt.Errorf("schedule: invalid WorkEnd: %w", err)
	}
	if end <= start {
		return fmt.Errorf("schedule: WorkEnd must be after WorkStart")
	}
	if (end-start)%r.SlotMinutes != 0 {
		return fmt.Errorf("schedule: working span must be a multiple of SlotMinutes")
	}

	if r.BookingWindowDays <= 0 {
		return fmt.Errorf("schedule: BookingWindowDays must be > 0")
	}
	if r.MaxSessionMinutes < r.SlotMinutes || r.MaxSessionMinutes%r.SlotMinutes != 0 {
		return fmt.Errorf("schedule: MaxSessionMinutes must be a multiple of SlotMinutes and >= SlotMinutes")
	}

	return nil
}

// BuildSlotGrid генерирует упорядоченный список времен начала слотов:
// от workStart с шагом stepMinutes, пока конец слота не выходит за workEnd
// Чистая детерминированная функция, без I/O
func BuildSlotGrid(workStart, workEnd types.TimeString, stepMinutes int) ([]types.TimeString, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("schedule: stepMinutes must be > 0")
	}

	start, err := workStart.Minutes()
	if err != nil {
		return nil, fmt.Errorf("schedule: invalid workStart: %w", err)
	}
	end, err := workEnd.Minutes()
	if err != nil {
		return nil, fmt.Errorf("schedule: invalid workEnd: %w", err)
	}
	if end <= start {
		return nil, fmt.Errorf("schedule: workEnd must be after workStart")
	}

	grid := make([]types.TimeString, 0, (end-start)/stepMinutes)
	for t := start; t+stepMinutes <= end; t += stepMinutes {
		slot, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			return nil, err
		}
		grid = append(grid, slot)
	}

	return grid, nil
}

// SlotGrid возвращает сетку слотов рабочего дня по правилам расписания
func (r ScheduleRules) SlotGrid() ([]types.TimeString, error) {
	return BuildSlotGrid(r.WorkStart, r.WorkEnd, r.SlotMinutes)
}

// ISOWeekday converts time.Weekday to ISO numbering (Monday = 1, Sunday = 7)
func ISOWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// IsWorkingDay reports whether the date falls on a configured working weekday
// Дата интерпретируется в таймзоне студии
func (r ScheduleRules) IsWorkingDay(date time.Time) bool {
	wd := ISOWeekday(date.In(r.Location).Weekday())
	for _, d := range r.WorkingWeekdays {
		if d == wd {
			return true
		}
	}
	return false
}

// IsOnGrid reports whether t is one of the grid slot start times
func (r ScheduleRules) IsOnGrid(t types.TimeString) bool {
	tm, err := t.Minutes()
	if err != nil {
		return false
	}
	start, err := r.WorkStart.Minutes()
	if err != nil {
		return false
	}
	end, err := r.WorkEnd.Minutes()
	if err != nil {
		return false
	}
	if tm < start || tm+r.SlotMinutes > end {
		return false
	}
	return (tm-start)%r.SlotMinutes == 0
}

// DateOnly обнуляет время, оставляя календарную дату в таймзоне студии
func (r ScheduleRules) DateOnly(t time.Time) time.Time {
	tt := t.In(r.Location)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, r.Location)
}
