package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/avkostin/studio-booking/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	rules        domain.ScheduleRules
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	rules domain.ScheduleRules,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		rules:        rules,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
//
// Проверка "окно свободно" и вставка выполняются в одной сериализуемой
// транзакции с блокировкой бронирований даты (FOR UPDATE): два конкурентных
// запроса на пересекающиеся окна не могут зафиксироваться оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, duration=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных - до любого обращения к хранилищу
	// Все нарушения по полям собираются и возвращаются одним списком
	if verr := validateRequest(req, uc.rules, now); !verr.IsEmpty() {
		uc.logger.Warn("CreateBooking: validation failed: %v", verr)
		return nil, verr
	}

	dateLocal := uc.rules.DateOnly(req.Date)

	requestEnd, err := req.StartTime.AddMinutes(req.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 2. Атомарная проверка доступности окна и вставка
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Активные бронирования даты с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.ListByDate(txCtx, domain.BookingsFilter{
			Date:            dateLocal,
			IncludeInactive: false,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 2.2. Проверяем пересечение запрошенного окна [start, end)
		// с каждым активным бронированием
		for _, b := range bookings {
			if b.Overlaps(req.StartTime, requestEnd) {
				uc.logger.Warn("CreateBooking: window %s-%s overlaps booking id=%s",
					req.StartTime, requestEnd, b.ID)
				return ErrSlotTaken
			}
		}

		// 2.3. Окно свободно - сохраняем бронирование
		booking := &domain.Booking{
			BookingDate:     dateLocal,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			Status:          domain.StatusActive,
			ClientName:      strings.TrimSpace(req.ClientName),
			ClientPhone:     strings.TrimSpace(req.ClientPhone),
			Comment:         req.Comment,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)
	return fromDomainBooking(result), nil
}
