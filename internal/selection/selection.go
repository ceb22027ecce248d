// Package selection реализует клиентскую модель выбора непрерывного
// диапазона свободных слотов в сетке одного дня
//
// Модель чистая: переходы выражены функциями Click и Reconcile над
// неизменяемым значением Selection, что позволяет тестировать правила
// инвалидации независимо от UI
package selection

import (
	"github.com/avkostin/studio-booking/pkg/types"
)

// Selection непрерывный диапазон выбранных индексов сетки:
// [StartIndex, StartIndex+Count)
// Нулевое значение (None) означает отсутствие выбора
type Selection struct {
	StartIndex int
	Count      int
}

// None отсутствие выбора
var None = Selection{}

// IsNone возвращает true, если ничего не выбрано
func (s Selection) IsNone() bool {
	return s.Count == 0
}

// Covers возвращает true, если индекс i входит в выбранный диапазон
func (s Selection) Covers(i int) bool {
	return !s.IsNone() && i >= s.StartIndex && i < s.StartIndex+s.Count
}

// FreeSet множество свободных индексов сетки
type FreeSet map[int]struct{}

// NewFreeSet строит множество свободных индексов по сетке и списку
// свободных времен
func NewFreeSet(grid []types.TimeString, freeSlots []types.TimeString) FreeSet {
	free := make(map[types.TimeString]struct{}, len(freeSlots))
	for _, t := range freeSlots {
		free[t] = struct{}{}
	}

	set := make(FreeSet, len(freeSlots))
	for i, t := range grid {
		if _, ok := free[t]; ok {
			set[i] = struct{}{}
		}
	}
	return set
}

// Has возвращает true, если слот с индексом i свободен
func (f FreeSet) Has(i int) bool {
	_, ok := f[i]
	return ok
}

// Click обрабатывает клик по слоту i
//
// Переходы:
//   - клик по занятому слоту игнорируется
//   - из пустого выбора: одиночный выбор {i, 1}
//   - клик по единственному выбранному слоту: сброс выбора
//   - клик по последнему слоту диапазона (count > 1): диапазон укорачивается на один
//   - клик по слоту сразу за диапазоном (если свободен): диапазон растет на один
//   - любой другой клик: новый одиночный выбор {i, 1}
func Click(s Selection, i int, free FreeSet) Selection {
	if i < 0 || !free.Has(i) {
		return s
	}

	if s.IsNone() {
		return Selection{StartIndex: i, Count: 1}
	}

	endExclusive := s.StartIndex + s.Count

	if i == endExclusive-1 && s.Count > 1 {
		return Selection{StartIndex: s.StartIndex, Count: s.Count - 1}
	}

	if i == s.StartIndex && s.Count == 1 {
		return None
	}

	if i == endExclusive {
		return Selection{StartIndex: s.StartIndex, Count: s.Count + 1}
	}

	return Selection{StartIndex: i, Count: 1}
}

// Reconcile сверяет выбор с актуальным множеством свободных слотов
// Если хотя бы один покрытый индекс перестал быть свободным, выбор
// сбрасывается: нельзя отправить устаревший диапазон
//
// Вызывается при каждом обновлении доступности активной даты
func Reconcile(s Selection, free FreeSet) Selection {
	if s.IsNone() {
		return None
	}
	for k := 0; k < s.Count; k++ {
		if !free.Has(s.StartIndex + k) {
			return None
		}
	}
	return s
}

// StartTime возвращает время начала выбора по сетке
func (s Selection) StartTime(grid []types.TimeString) (types.TimeString, bool) {
	if s.IsNone() || s.StartIndex >= len(grid) {
		return "", false
	}
	return grid[s.StartIndex], true
}

// DurationMinutes возвращает длительность выбора
func (s Selection) DurationMinutes(stepMinutes int) int {
	return s.Count * stepMinutes
}

// EndTime возвращает время окончания выбора (начало + длительность)
func (s Selection) EndTime(grid []types.TimeString, stepMinutes int) (types.TimeString, bool) {
	start, ok := s.StartTime(grid)
	if !ok {
		return "", false
	}
	end, err := start.AddMinutes(s.DurationMinutes(stepMinutes))
	if err != nil {
		return "", false
	}
	return end, true
}
