package get_free_slots

import (
	"context"
	"fmt"

	"github.com/avkostin/studio-booking/internal/domain"
	"github.com/avkostin/studio-booking/pkg/types"
)

// UseCase use case для получения свободных слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	rules        domain.ScheduleRules
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	rules domain.ScheduleRules,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		rules:        rules,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute возвращает свободные слоты даты в порядке сетки
//
// Нерабочий день дает пустой список без обращения к хранилищу
// Ошибка хранилища возвращается как есть, а не как "слотов нет":
// пустой список означал бы ложную полную занятость
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	dateLocal := uc.rules.DateOnly(req.Date)
	uc.logger.Info("GetFreeSlots: date=%s", dateLocal.Format(domain.DateFormat))

	// Нерабочий день - сетка есть, доступности нет
	if !uc.rules.IsWorkingDay(dateLocal) {
		uc.logger.Info("GetFreeSlots: %s is not a working day", dateLocal.Format(domain.DateFormat))
		return &Response{Date: dateLocal, FreeSlots: []types.TimeString{}}, nil
	}

	now := uc.timeProvider.Now()
	today := uc.rules.DateOnly(now)

	// Для прошедших дат свободных слотов не бывает
	if dateLocal.Before(today) {
		return &Response{Date: dateLocal, FreeSlots: []types.TimeString{}}, nil
	}

	grid, err := uc.rules.SlotGrid()
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to build slot grid: %v", err)
		return nil, fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.ListByDate(ctx, domain.BookingsFilter{
		Date:            dateLocal,
		IncludeInactive: false,
	})
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	free := filterFreeSlots(grid, uc.rules.SlotMinutes, bookings)

	// Для сегодняшней даты уже начавшиеся слоты недоступны
	if dateLocal.Equal(today) {
		nowTime := types.NewTimeString(now.In(uc.rules.Location))
		free = filterPastSlots(free, nowTime)
	}

	uc.logger.Info("GetFreeSlots: date=%s, free=%d/%d",
		dateLocal.Format(domain.DateFormat), len(free), len(grid))

	return &Response{Date: dateLocal, FreeSlots: free}, nil
}

// filterFreeSlots оставляет слоты, чье окно [start, start+step) не пересекается
// ни с одним активным бронированием
func filterFreeSlots(grid []types.TimeString, stepMinutes int, bookings []*domain.Booking) []types.TimeString {
	free := make([]types.TimeString, 0, len(grid))

	for _, slot := range grid {
		slotEnd, err := slot.AddMinutes(stepMinutes)
		if err != nil {
			continue
		}

		taken := false
		for _, b := range bookings {
			if !b.IsActive() {
				continue
			}
			if b.Overlaps(slot, slotEnd) {
				taken = true
				break
			}
		}

		if !taken {
			free = append(free, slot)
		}
	}

	return free
}

// filterPastSlots убирает слоты, начинающиеся раньше nowTime
func filterPastSlots(slots []types.TimeString, nowTime types.TimeString) []types.TimeString {
	out := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		if !s.IsBefore(nowTime) {
			out = append(out, s)
		}
	}
	return out
}
