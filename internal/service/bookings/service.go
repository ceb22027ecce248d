package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/avkostin/studio-booking/internal/domain"
	bookingRepo "github.com/avkostin/studio-booking/internal/infra/storage/booking"
	"github.com/avkostin/studio-booking/internal/service/bookings/models"
)

// Service сервис административных операций с бронированиями
type Service struct {
	bookingRepo BookingRepository
	rules       domain.ScheduleRules
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, rules domain.ScheduleRules, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		rules:       rules,
		logger:      logger,
	}
}

// GetByID получает полную карточку бронирования
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListByDate получает бронирования на дату, упорядоченные по времени начала
// Поддерживает фильтр по статусу (all/active/cancelled)
func (s *Service) ListByDate(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	dateLocal := s.rules.DateOnly(req.Date)
	s.logger.Info("ListByDate: date=%s, status=%s", dateLocal.Format(domain.DateFormat), req.Status)

	filter := req.ToDomainFilter()
	filter.Date = dateLocal

	items, err := s.bookingRepo.ListByDate(ctx, filter)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v",
			dateLocal.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: fetched %d bookings for date=%s",
		len(items), dateLocal.Format(domain.DateFormat))
	return models.FromDomainBookingList(items), nil
}

// Cancel отменяет бронирование
// Отмена уже отмененного бронирования - идемпотентный no-op: возвращается
// сохраненная запись без изменений (причина и время первой отмены сохраняются)
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", req.ID)

	booking, err := s.bookingRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", req.ID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.IsCancelled() {
		s.logger.Info("Cancel: booking id=%s already cancelled", req.ID)
		return models.FromDomainBooking(booking), nil
	}

	err = s.bookingRepo.Cancel(ctx, req.ID, req.Reason)
	if err != nil && !errors.Is(err, bookingRepo.ErrAlreadyCancelled) {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	updated, err := s.bookingRepo.GetByID(ctx, req.ID)
	if err != nil {
		s.logger.Error("Cancel: failed to reload booking id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", req.ID)
	return models.FromDomainBooking(updated), nil
}
